package agents

import (
	"fmt"
	"io"
	"sort"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/model"
	"google.golang.org/adk/tool"

	"github.com/vitormoschetta/adk-patterns/internal/tools"
)

// DefaultAgent é usado quando nenhum agente é informado
const DefaultAgent = "helper"

// Deps agrupa o que os construtores de agentes precisam
type Deps struct {
	Model    model.LLM
	Kit      *tools.Kit
	Out      io.Writer
	Toolsets []tool.Toolset
}

type builder func(Deps) (agent.Agent, error)

var registry = map[string]builder{
	"informational": func(d Deps) (agent.Agent, error) { return Informational(d.Model) },
	"joker":         func(d Deps) (agent.Agent, error) { return Joker(d.Model) },
	"weather":       func(d Deps) (agent.Agent, error) { return WeatherReporter(d.Model, d.Kit) },
	"weekend":       func(d Deps) (agent.Agent, error) { return WeekendPlanner(d.Model, d.Kit) },
	"meal":          func(d Deps) (agent.Agent, error) { return MealPlanner(d.Model, d.Kit) },
	"supervisor":    func(d Deps) (agent.Agent, error) { return Supervisor(d.Model, d.Kit) },
	"french":        func(d Deps) (agent.Agent, error) { return FrenchAssistant(d.Model, d.Kit) },
	"time":          func(d Deps) (agent.Agent, error) { return Clock(d.Model, d.Kit, d.Out) },
	"greeting":      func(d Deps) (agent.Agent, error) { return Greeter(d.Model, d.Out) },
	"vision":        func(d Deps) (agent.Agent, error) { return Vision(d.Model) },
	"coding":        func(d Deps) (agent.Agent, error) { return Coder(d.Model) },
	"restaurant":    func(d Deps) (agent.Agent, error) { return Restaurant(d.Model, d.Kit) },
	"helper":        func(d Deps) (agent.Agent, error) { return Helper(d.Model, d.Toolsets...) },
}

// Names lista os agentes registrados em ordem alfabética
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build constrói o agente registrado com o nome informado
func Build(name string, d Deps) (agent.Agent, error) {
	if name == "" {
		name = DefaultAgent
	}
	b, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown agent %q (available: %v)", name, Names())
	}
	if d.Kit == nil {
		d.Kit = tools.NewKit(d.Out, tools.English)
	}
	if d.Out == nil {
		d.Out = io.Discard
	}
	return b(d)
}
