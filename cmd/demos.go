package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/cmd/launcher"
	"google.golang.org/adk/cmd/launcher/full"
	"google.golang.org/adk/model"
	"google.golang.org/adk/tool"
	"google.golang.org/genai"

	"github.com/vitormoschetta/adk-patterns/internal/agents"
	"github.com/vitormoschetta/adk-patterns/internal/chat"
	"github.com/vitormoschetta/adk-patterns/internal/completion"
	"github.com/vitormoschetta/adk-patterns/internal/config"
	"github.com/vitormoschetta/adk-patterns/internal/console"
	"github.com/vitormoschetta/adk-patterns/internal/handler"
	"github.com/vitormoschetta/adk-patterns/internal/logger"
	"github.com/vitormoschetta/adk-patterns/internal/mcpserver"
	"github.com/vitormoschetta/adk-patterns/internal/server"
	"github.com/vitormoschetta/adk-patterns/internal/speech"
	"github.com/vitormoschetta/adk-patterns/internal/thread"
	"github.com/vitormoschetta/adk-patterns/internal/tools"
	"github.com/vitormoschetta/adk-patterns/internal/workflow"
)

const sampleEmail = `Subject: Team Meeting Follow-up

Hi team,

Thanks for joining yesterday's planning meeting. Could you send me your updated
estimates for the Q3 roadmap items by Friday? I'd like to consolidate them before
the review with leadership next week.

Best regards,
Alex`

// commands guarda o que todos os comandos compartilham
type commands struct {
	cfg *config.Config
	out io.Writer
	in  io.Reader
}

// llm valida as credenciais e cria o modelo configurado
func (rt *commands) llm(c *cli.Context) (model.LLM, error) {
	if err := rt.cfg.Validate(); err != nil {
		return nil, err
	}
	return chat.NewModel(c.Context, rt.cfg.Model)
}

func (rt *commands) kit(lang tools.Lang) *tools.Kit {
	return tools.NewKit(rt.out, lang)
}

// ask executa o agente com uma mensagem de texto e imprime a resposta
func (rt *commands) ask(c *cli.Context, a agent.Agent, text string) error {
	reply, err := agents.InvokeText(c.Context, a, text)
	if err != nil {
		return err
	}
	fmt.Fprintln(rt.out, reply)
	return nil
}

func (rt *commands) firstPrompt(c *cli.Context) error {
	m, err := rt.llm(c)
	if err != nil {
		return err
	}
	reply, err := completion.FirstPrompt(c.Context, chat.NewClient(m))
	if err != nil {
		return err
	}
	fmt.Fprintln(rt.out, reply)
	return nil
}

func (rt *commands) dates(c *cli.Context) error {
	m, err := rt.llm(c)
	if err != nil {
		return err
	}
	fmt.Fprintf(rt.out, "Usando el modelo: %s\n", rt.cfg.Model.Name)
	client := chat.NewClient(m)
	for _, text := range completion.SampleTexts {
		dates, err := completion.ExtractDates(c.Context, client, text)
		if err != nil {
			return err
		}
		fmt.Fprintln(rt.out, dates)
	}
	return nil
}

func (rt *commands) intent(c *cli.Context) error {
	m, err := rt.llm(c)
	if err != nil {
		return err
	}
	client := chat.NewClient(m)
	err = console.New(rt.in, rt.out).Loop("Usuario: ", func(line string) error {
		intent, err := completion.ClassifyIntent(c.Context, client, line)
		if err != nil {
			return err
		}
		fmt.Fprintln(rt.out, "Asistente:", intent)
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(rt.out, "Saliendo del programa.")
	return nil
}

func (rt *commands) debate(c *cli.Context) error {
	m, err := rt.llm(c)
	if err != nil {
		return err
	}
	d := completion.NewDebate(rt.out)
	d.Iterations = c.Int("iterations")
	_, err = d.Run(c.Context, chat.NewClient(m))
	return err
}

func (rt *commands) basic(c *cli.Context) error {
	m, err := rt.llm(c)
	if err != nil {
		return err
	}
	a, err := agents.Joker(m)
	if err != nil {
		return err
	}
	return rt.ask(c, a, "Tell me a joke about a pirate.")
}

func (rt *commands) informational(c *cli.Context) error {
	m, err := rt.llm(c)
	if err != nil {
		return err
	}
	a, err := agents.Informational(m)
	if err != nil {
		return err
	}
	return rt.ask(c, a, "Whats weather today in San Francisco?")
}

func (rt *commands) weather(c *cli.Context) error {
	m, err := rt.llm(c)
	if err != nil {
		return err
	}
	a, err := agents.WeatherReporter(m, rt.kit(tools.English))
	if err != nil {
		return err
	}
	return rt.ask(c, a, "Whats weather today in sf?")
}

func (rt *commands) weekend(c *cli.Context) error {
	m, err := rt.llm(c)
	if err != nil {
		return err
	}
	a, err := agents.WeekendPlanner(m, rt.kit(tools.English))
	if err != nil {
		return err
	}
	return rt.ask(c, a, "hii what can I do this weekend in San Francisco?")
}

func (rt *commands) supervisor(c *cli.Context) error {
	m, err := rt.llm(c)
	if err != nil {
		return err
	}
	lang := tools.Lang(c.String("lang"))
	query := "What can I do this weekend and what can I cook for lunch?"
	switch lang {
	case tools.English:
	case tools.German:
		query = "Was kann ich dieses Wochenende unternehmen und was kann ich zum Mittagessen kochen?"
	default:
		return fmt.Errorf("unsupported language %q", lang)
	}
	a, err := agents.Supervisor(m, rt.kit(lang))
	if err != nil {
		return err
	}
	return rt.ask(c, a, query)
}

func (rt *commands) french(c *cli.Context) error {
	m, err := rt.llm(c)
	if err != nil {
		return err
	}
	a, err := agents.FrenchAssistant(m, rt.kit(tools.English))
	if err != nil {
		return err
	}
	return rt.ask(c, a, "What is the weather like in Amsterdam?")
}

func (rt *commands) clock(c *cli.Context) error {
	m, err := rt.llm(c)
	if err != nil {
		return err
	}
	a, err := agents.Clock(m, rt.kit(tools.English), rt.out)
	if err != nil {
		return err
	}
	return rt.ask(c, a, "What time is it?")
}

func (rt *commands) greeting(c *cli.Context) error {
	m, err := rt.llm(c)
	if err != nil {
		return err
	}
	a, err := agents.Greeter(m, rt.out)
	if err != nil {
		return err
	}
	return rt.ask(c, a, "Hello!")
}

func (rt *commands) vision(c *cli.Context) error {
	m, err := rt.llm(c)
	if err != nil {
		return err
	}
	image, err := chat.ImagePart(c.String("image"))
	if err != nil {
		return err
	}
	a, err := agents.Vision(m)
	if err != nil {
		return err
	}
	content := genai.NewContentFromParts([]*genai.Part{
		genai.NewPartFromText("¿Qué ves en esta imagen?"),
		image,
	}, genai.RoleUser)
	reply, err := agents.Invoke(c.Context, a, content)
	if err != nil {
		return err
	}
	fmt.Fprintln(rt.out, reply)
	return nil
}

func (rt *commands) coding(c *cli.Context) error {
	m, err := rt.llm(c)
	if err != nil {
		return err
	}
	a, err := agents.Coder(m)
	if err != nil {
		return err
	}
	return rt.ask(c, a, "Calculate the factorial of 20 using Python code.")
}

func (rt *commands) multiturn(c *cli.Context) error {
	m, err := rt.llm(c)
	if err != nil {
		return err
	}
	client := chat.NewClient(m, chat.WithName("MultiturnAgent"), chat.WithInstructions("Eres un agente útil que cuenta buenos chistes"))
	th := thread.New()

	err = console.New(rt.in, rt.out).Loop("Tú: ", func(line string) error {
		reply, err := client.Send(c.Context, th, genai.NewPartFromText(line))
		if err != nil {
			return err
		}
		fmt.Fprintln(rt.out, "Agente:", reply)
		return nil
	}, "salir")
	if err != nil {
		return err
	}
	fmt.Fprintln(rt.out, "Terminando la conversación.")
	return nil
}

func (rt *commands) persistence(c *cli.Context) error {
	if err := rt.cfg.ValidateThreadStore(); err != nil {
		return err
	}
	m, err := rt.llm(c)
	if err != nil {
		return err
	}
	store, closeStore, err := thread.Open(c.Context, rt.cfg.Thread)
	if err != nil {
		return err
	}
	defer closeStore()

	client := chat.NewClient(m, chat.WithName("Assistant"), chat.WithInstructions("You are a helpful assistant."))
	th := thread.New()

	reply, err := client.SendAndSave(c.Context, store, th, "Tell me a short pirate joke.")
	if err != nil {
		return err
	}
	fmt.Fprintln(rt.out, reply)

	if fs, ok := store.(*thread.FileStore); ok {
		fmt.Fprintf(rt.out, "Saving thread state to %s\n", fs.Path(th.ID))
	} else {
		fmt.Fprintf(rt.out, "Saving thread state to %s store (id %s)\n", rt.cfg.Thread.Store, th.ID)
	}

	reply, _, err = client.Resume(c.Context, store, th.ID, "Now tell that joke in the voice of a pirate.")
	if err != nil {
		return err
	}
	fmt.Fprintln(rt.out, reply)
	return nil
}

func (rt *commands) pipeline(c *cli.Context) error {
	p, err := workflow.TextPipeline()
	if err != nil {
		return err
	}
	result, err := workflow.RunStreaming(c.Context, p, c.String("text"), rt.out)
	if err != nil {
		return err
	}
	logger.Named("workflow").Info("workflow completed", "result", result)
	return nil
}

func (rt *commands) writerReviewer(c *cli.Context) error {
	m, err := rt.llm(c)
	if err != nil {
		return err
	}
	a, err := workflow.WriterReviewer(m)
	if err != nil {
		return err
	}
	_, err = workflow.RunStreaming(c.Context, a, workflow.SloganPrompt, rt.out)
	return err
}

func (rt *commands) triage(c *cli.Context) error {
	email := sampleEmail
	if path := c.String("email"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read email: %w", err)
		}
		email = string(data)
	}

	m, err := rt.llm(c)
	if err != nil {
		return err
	}
	tr, err := workflow.NewTriage(c.Context, m)
	if err != nil {
		return err
	}
	out, err := tr.Run(c.Context, email)
	if err != nil {
		return err
	}
	fmt.Fprintf(rt.out, "Workflow output: %s\n", out)
	return nil
}

func (rt *commands) guess(c *cli.Context) error {
	m, err := rt.llm(c)
	if err != nil {
		return err
	}
	a, err := workflow.GuessAgent(m)
	if err != nil {
		return err
	}
	conv, err := agents.NewConversation(c.Context, a)
	if err != nil {
		return err
	}

	fmt.Fprintln(rt.out, "🎯 Number Guessing Game")
	fmt.Fprintln(rt.out, "Think of a number between 1 and 10, and I'll try to guess it!")
	fmt.Fprintln(rt.out, strings.Repeat("-", 50))

	tm := &workflow.TurnManager{Agent: conv, Human: console.New(rt.in, rt.out), Out: rt.out}
	result, err := tm.Play(c.Context)
	if err != nil {
		return err
	}
	if result != "" {
		fmt.Fprintf(rt.out, "\n🎉 %s\n", result)
	}
	return nil
}

func (rt *commands) speech(c *cli.Context) error {
	if err := rt.cfg.Validate(); err != nil {
		return err
	}
	m, err := chat.NewModelNamed(c.Context, rt.cfg.Speech.Model, rt.cfg.Model)
	if err != nil {
		return err
	}
	fmt.Fprintf(rt.out, "Reconociendo %s (%s)...\n", c.String("audio"), rt.cfg.Speech.Language)
	result, err := speech.NewRecognizer(m, rt.cfg.Speech.Language).RecognizeFile(c.Context, c.String("audio"))
	if err != nil {
		return err
	}
	fmt.Fprintln(rt.out, result)
	return nil
}

func (rt *commands) serve(c *cli.Context) error {
	if err := rt.cfg.Validate(); err != nil {
		return err
	}
	srv, err := server.NewServer(c.Context, rt.cfg)
	if err != nil {
		return err
	}
	srv.Deps.Kit = rt.kit(tools.English)

	handler.NewHandler(srv).Register()
	return srv.Start(c.Context)
}

func (rt *commands) mcp(c *cli.Context) error {
	m, err := rt.llm(c)
	if err != nil {
		return err
	}
	// stdout pertence ao protocolo MCP; as ferramentas não imprimem nada
	kit := tools.NewKit(io.Discard, tools.English)
	restaurant, err := agents.Restaurant(m, kit)
	if err != nil {
		return err
	}
	return mcpserver.Serve(c.Context, mcpserver.New(kit, restaurant))
}

func (rt *commands) launch(c *cli.Context) error {
	m, err := rt.llm(c)
	if err != nil {
		return err
	}

	var toolsets []tool.Toolset
	if rt.cfg.MCP.Endpoint != "" {
		ts, err := agents.MCPToolset(rt.cfg.MCP)
		if err != nil {
			return err
		}
		toolsets = append(toolsets, ts)
	}

	a, err := agents.Build(c.String("agent"), agents.Deps{
		Model:    m,
		Kit:      rt.kit(tools.English),
		Out:      rt.out,
		Toolsets: toolsets,
	})
	if err != nil {
		return err
	}

	cfg := &launcher.Config{
		AgentLoader: agent.NewSingleLoader(a),
	}
	l := full.NewLauncher()
	if err := l.Execute(c.Context, cfg, c.Args().Slice()); err != nil {
		return fmt.Errorf("run failed: %w\n\n%s", err, l.CommandLineSyntax())
	}
	return nil
}
