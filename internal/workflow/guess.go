package workflow

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model"
	"google.golang.org/genai"

	"github.com/vitormoschetta/adk-patterns/internal/chat"
	"github.com/vitormoschetta/adk-patterns/internal/console"
)

// GuessOutput é a saída estruturada do agente adivinho
type GuessOutput struct {
	Guess int `json:"guess" jsonschema:"The guessed number between 1 and 10."`
}

// FeedbackRequest é o pedido feito ao humano a cada palpite
type FeedbackRequest struct {
	Prompt string
	// Guess é nil quando a resposta do agente não pôde ser interpretada
	Guess *int
}

// GuessAgent cria o agente que tenta adivinhar um número de 1 a 10
func GuessAgent(m model.LLM) (agent.Agent, error) {
	a, err := llmagent.New(llmagent.Config{
		Name:        "guess_agent",
		Model:       m,
		Description: "Guesses a number between 1 and 10.",
		Instruction: "You guess a number between 1 and 10. " +
			"If the user says 'higher' or 'lower', adjust your next guess. " +
			`You MUST return ONLY a JSON object exactly matching this schema: {"guess": <integer 1..10>}. ` +
			"No explanations or additional text.",
		OutputSchema: &genai.Schema{
			Type:       genai.TypeObject,
			Properties: map[string]*genai.Schema{"guess": {Type: genai.TypeInteger}},
			Required:   []string{"guess"},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create guess agent: %w", err)
	}
	return a, nil
}

// TurnManager alterna os turnos entre o agente e o jogador humano
type TurnManager struct {
	Agent    Sender
	Human    console.Prompter
	Out      io.Writer
	MaxTurns int
}

// Play conduz o jogo. Devolve "Guessed correctly: N" quando o jogador
// confirma o palpite, ou "" quando ele digita exit.
func (t *TurnManager) Play(ctx context.Context) (string, error) {
	out := t.Out
	if out == nil {
		out = io.Discard
	}
	maxTurns := t.MaxTurns
	if maxTurns <= 0 {
		maxTurns = 20
	}

	message := "Start by making your first guess."
	for turn := 0; turn < maxTurns; turn++ {
		reply, err := t.Agent.SendText(ctx, message)
		if err != nil {
			return "", fmt.Errorf("agent failed to guess: %w", err)
		}

		req := NewFeedbackRequest(reply)
		fmt.Fprintf(out, "\n🤖 %s\n", req.Prompt)
		answer, err := t.Human.Prompt("👤 Enter higher/lower/correct/exit: ")
		if err != nil {
			return "", err
		}

		feedback := strings.ToLower(strings.TrimSpace(answer))
		switch feedback {
		case "exit":
			fmt.Fprintln(out, "👋 Exiting...")
			return "", nil
		case "correct":
			return "Guessed correctly: " + req.guessText(reply), nil
		}
		message = fmt.Sprintf(`Feedback: %s. Return ONLY a JSON object matching the schema {"guess": <int 1..10>}.`, feedback)
	}
	return "", fmt.Errorf("no correct guess after %d turns", maxTurns)
}

// NewFeedbackRequest monta o pedido ao humano a partir da resposta do agente
func NewFeedbackRequest(reply string) FeedbackRequest {
	req := FeedbackRequest{}
	shown := reply
	if g, err := chat.Decode[GuessOutput](reply); err == nil {
		req.Guess = &g.Guess
		shown = strconv.Itoa(g.Guess)
	}
	req.Prompt = fmt.Sprintf("The agent guessed: %s. "+
		"Type one of: higher (your number is higher than this guess), "+
		"lower (your number is lower than this guess), correct, or exit.", shown)
	return req
}

func (r FeedbackRequest) guessText(reply string) string {
	if r.Guess == nil {
		return reply
	}
	return strconv.Itoa(*r.Guess)
}
