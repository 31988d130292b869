package workflow

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/agent/workflowagents/sequentialagent"
	"google.golang.org/adk/model"
	"google.golang.org/adk/session"
	"google.golang.org/genai"

	"github.com/vitormoschetta/adk-patterns/internal/agents"
	"github.com/vitormoschetta/adk-patterns/internal/chat"
)

// SloganPrompt é a tarefa padrão do fluxo escritor/revisor
const SloganPrompt = "Create a slogan for a new electric SUV that is affordable and fun to drive."

// WriterReviewer encadeia um agente escritor e um revisor; o revisor lê o
// texto do escritor no histórico da sessão.
func WriterReviewer(m model.LLM) (agent.Agent, error) {
	writer, err := llmagent.New(llmagent.Config{
		Name:        "Writer",
		Model:       m,
		Description: "Writes and edits content.",
		Instruction: "You are an excellent content writer. You create new content and edit contents based on the feedback.",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create writer: %w", err)
	}

	reviewer, err := llmagent.New(llmagent.Config{
		Name:        "Reviewer",
		Model:       m,
		Description: "Reviews content and gives feedback.",
		Instruction: "You are an excellent content reviewer. " +
			"Provide actionable feedback to the writer about the provided content. " +
			"Provide the feedback in the most concise manner possible.",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create reviewer: %w", err)
	}

	seq, err := sequentialagent.New(sequentialagent.Config{
		AgentConfig: agent.Config{
			Name:        "writer_reviewer",
			Description: "Writer followed by reviewer.",
			SubAgents:   []agent.Agent{writer, reviewer},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create sequential agent: %w", err)
	}
	return seq, nil
}

// RunStreaming executa a, escrevendo em out o texto de cada evento prefixado
// pelo autor sempre que o autor muda, e por fim a saída final.
func RunStreaming(ctx context.Context, a agent.Agent, prompt string, out io.Writer) (string, error) {
	conv, err := agents.NewConversation(ctx, a)
	if err != nil {
		return "", err
	}

	var lastAuthor string
	final, err := conv.Stream(ctx, genai.NewContentFromText(prompt, genai.RoleUser), func(event *session.Event) {
		if event.Partial || event.Content == nil {
			return
		}
		text := chat.Text(event.Content)
		if text == "" {
			return
		}
		if event.Author != lastAuthor {
			if lastAuthor != "" {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%s: ", event.Author)
			lastAuthor = event.Author
		}
		fmt.Fprint(out, text)
	})
	if err != nil {
		return "", err
	}

	fmt.Fprintln(out, "\n===== Final output =====")
	fmt.Fprintln(out, final)
	return final, nil
}
