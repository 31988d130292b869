package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/urfave/cli/v2"

	"github.com/vitormoschetta/adk-patterns/internal/config"
	"github.com/vitormoschetta/adk-patterns/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		logger.L().Error("command failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	rt := &commands{out: os.Stdout, in: os.Stdin}

	return &cli.App{
		Name:  "adk-patterns",
		Usage: "LLM and agent patterns on Gemini and the Agent Development Kit",
		Before: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, File: cfg.Log.File})
			rt.cfg = cfg
			return nil
		},
		After: func(c *cli.Context) error {
			return logger.Close()
		},
		Commands: []*cli.Command{
			{
				Name:     "first-prompt",
				Category: "completion",
				Usage:    "System and user prompt in a single completion",
				Action:   rt.firstPrompt,
			},
			{
				Name:     "dates",
				Category: "completion",
				Usage:    "Extract dates from sample texts with a few-shot prompt",
				Action:   rt.dates,
			},
			{
				Name:     "intent",
				Category: "completion",
				Usage:    "Classify bank customer intents until salir/exit/quit",
				Action:   rt.intent,
			},
			{
				Name:     "debate",
				Category: "completion",
				Usage:    "Two personas debating with mirrored histories",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "iterations", Value: 10, Usage: "number of rounds"},
				},
				Action: rt.debate,
			},
			{
				Name:     "basic",
				Category: "agents",
				Usage:    "Joke agent, single turn",
				Action:   rt.basic,
			},
			{
				Name:     "informational",
				Category: "agents",
				Usage:    "Cheerful informational agent without tools",
				Action:   rt.informational,
			},
			{
				Name:     "tool",
				Category: "agents",
				Usage:    "Weather agent with a function tool",
				Action:   rt.weather,
			},
			{
				Name:     "weekend",
				Category: "agents",
				Usage:    "Weekend planner with weather, activities and date tools",
				Action:   rt.weekend,
			},
			{
				Name:     "supervisor",
				Category: "agents",
				Usage:    "Supervisor delegating to weekend and meal planners",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "lang", Value: "en", Usage: "en or de"},
				},
				Action: rt.supervisor,
			},
			{
				Name:     "french",
				Category: "agents",
				Usage:    "French assistant using a weather agent as a tool",
				Action:   rt.french,
			},
			{
				Name:     "time",
				Category: "agents",
				Usage:    "Time agent with function logging hooks",
				Action:   rt.clock,
			},
			{
				Name:     "greeting",
				Category: "agents",
				Usage:    "Greeting agent with run logging hooks",
				Action:   rt.greeting,
			},
			{
				Name:     "vision",
				Category: "agents",
				Usage:    "Describe a local image",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "image", Value: "images/Goku.jpg", Usage: "image path"},
				},
				Action: rt.vision,
			},
			{
				Name:     "coding",
				Category: "agents",
				Usage:    "Agent with hosted code execution",
				Action:   rt.coding,
			},
			{
				Name:     "multiturn",
				Category: "chat",
				Usage:    "Multi-turn chat until salir",
				Action:   rt.multiturn,
			},
			{
				Name:     "persistence",
				Category: "chat",
				Usage:    "Persist a thread, reload it and continue the conversation",
				Action:   rt.persistence,
			},
			{
				Name:     "pipeline",
				Category: "workflow",
				Usage:    "Upper-case then reverse text",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "text", Value: "hello world"},
				},
				Action: rt.pipeline,
			},
			{
				Name:     "writer-reviewer",
				Category: "workflow",
				Usage:    "Writer agent followed by a reviewer agent",
				Action:   rt.writerReviewer,
			},
			{
				Name:     "triage",
				Category: "workflow",
				Usage:    "Conditional spam triage of an email",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Usage: "email file (defaults to a built-in sample)"},
				},
				Action: rt.triage,
			},
			{
				Name:     "guess",
				Category: "workflow",
				Usage:    "Number guessing game with a human in the loop",
				Action:   rt.guess,
			},
			{
				Name:     "speech",
				Category: "speech",
				Usage:    "Transcribe an audio file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "audio", Required: true, Usage: "wav, mp3, flac, ogg, aac or aiff file"},
				},
				Action: rt.speech,
			},
			{
				Name:     "serve",
				Category: "servers",
				Usage:    "HTTP chat API",
				Action:   rt.serve,
			},
			{
				Name:     "mcp",
				Category: "servers",
				Usage:    "Restaurant agent exposed as an MCP stdio server",
				Action:   rt.mcp,
			},
			{
				Name:      "launch",
				Category:  "servers",
				Usage:     "Run a registered agent under the ADK launcher",
				ArgsUsage: "[launcher args, e.g. console or web api webui]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "agent", Value: "helper", Usage: "registered agent name"},
				},
				Action: rt.launch,
			},
		},
	}
}
