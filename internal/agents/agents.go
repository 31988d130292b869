// Package agents monta os agentes ADK usados pelas demonstrações: agentes
// simples, com ferramentas, supervisores que usam especialistas como
// ferramentas e agentes com ganchos de log.
package agents

import (
	"fmt"
	"io"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model"
	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/agenttool"
	"google.golang.org/adk/tool/geminitool"
	"google.golang.org/genai"

	"github.com/vitormoschetta/adk-patterns/internal/tools"
)

// Informational responde perguntas gerais de forma animada, sem ferramentas
func Informational(m model.LLM) (agent.Agent, error) {
	return newAgent(llmagent.Config{
		Name:        "informational_agent",
		Model:       m,
		Description: "Answers general questions.",
		Instruction: "You're an informational agent. Answer questions cheerfully.",
	})
}

// Joker conta piadas
func Joker(m model.LLM) (agent.Agent, error) {
	return newAgent(llmagent.Config{
		Name:        "joke_agent",
		Model:       m,
		Description: "Tells jokes.",
		Instruction: "You are good at telling jokes.",
	})
}

// WeatherReporter usa a ferramenta get_weather simples
func WeatherReporter(m model.LLM, kit *tools.Kit) (agent.Agent, error) {
	ts, err := kit.WeatherTools()
	if err != nil {
		return nil, err
	}
	return newAgent(llmagent.Config{
		Name:        "weather_reporter",
		Model:       m,
		Description: "Answers questions about today's weather.",
		Instruction: "You're an informational agent. Answer questions cheerfully.",
		Tools:       ts,
	})
}

// WeekendPlanner sugere atividades de acordo com o clima
func WeekendPlanner(m model.LLM, kit *tools.Kit) (agent.Agent, error) {
	ts, err := kit.WeekendTools()
	if err != nil {
		return nil, err
	}
	instruction := "You help users plan their weekends and choose the best activities for the given weather. " +
		"If an activity would be unpleasant in the weather, don't suggest it. " +
		"Include the date of the weekend in your response."
	if kit.Lang == tools.German {
		instruction = "Sie helfen Benutzern bei der Planung ihrer Wochenenden und der Auswahl der besten Aktivitäten für das jeweilige Wetter. " +
			"Wenn eine Aktivität bei dem Wetter unangenehm wäre, schlagen Sie sie nicht vor. " +
			"Fügen Sie das Datum des Wochenendes in Ihrer Antwort ein."
	}
	return newAgent(llmagent.Config{
		Name:        "weekend_planner",
		Model:       m,
		Description: "Plans weekend activities based on the weather.",
		Instruction: instruction,
		Tools:       ts,
	})
}

// MealPlanner escolhe receitas e lista o que falta comprar
func MealPlanner(m model.LLM, kit *tools.Kit) (agent.Agent, error) {
	ts, err := kit.MealTools()
	if err != nil {
		return nil, err
	}
	instruction := "You help users plan meals and choose the best recipes. " +
		"Include the ingredients and cooking instructions in your response. " +
		"Indicate what the user needs to buy from the store when their fridge is missing ingredients."
	if kit.Lang == tools.German {
		instruction = "Sie helfen Benutzern bei der Planung von Mahlzeiten und der Auswahl der besten Rezepte. " +
			"Fügen Sie die Zutaten und Kochanweisungen in Ihre Antwort ein. " +
			"Geben Sie an, was der Benutzer im Geschäft kaufen muss, wenn Zutaten im Kühlschrank fehlen."
	}
	return newAgent(llmagent.Config{
		Name:        "meal_planner",
		Model:       m,
		Description: "Plans meals from recipes and the fridge contents.",
		Instruction: instruction,
		Tools:       ts,
	})
}

// Supervisor delega para os planejadores de fim de semana e de refeições,
// expostos como ferramentas.
func Supervisor(m model.LLM, kit *tools.Kit) (agent.Agent, error) {
	weekend, err := WeekendPlanner(m, kit)
	if err != nil {
		return nil, err
	}
	meal, err := MealPlanner(m, kit)
	if err != nil {
		return nil, err
	}

	instruction := "You are a supervisor managing two specialist agents: a weekend planning agent and a meal planning agent. " +
		"Break down the user's request, decide which specialist (or both) to call via the available tools, " +
		"and then synthesize a final helpful answer. When invoking a tool, provide clear, concise queries."
	if kit.Lang == tools.German {
		instruction = "Sie sind ein Supervisor, der zwei Spezialagenten verwaltet: einen Wochenendplanungsagenten und einen Mahlzeitplanungsagenten. " +
			"Analysieren Sie die Anfrage des Benutzers, entscheiden Sie, welchen Spezialisten (oder beide) Sie über die verfügbaren Tools aufrufen möchten, " +
			"und erstellen Sie dann eine hilfreiche Endantwort. Verwenden Sie bei der Verwendung eines Tools klare, präzise Anfragen."
	}

	return newAgent(llmagent.Config{
		Name:        "supervisor",
		Model:       m,
		Description: "Coordinates the weekend and meal specialists.",
		Instruction: instruction,
		Tools: []tool.Tool{
			agenttool.New(weekend, nil),
			agenttool.New(meal, nil),
		},
	})
}

// FrenchAssistant responde em francês consultando um agente de clima que é
// usado como ferramenta.
func FrenchAssistant(m model.LLM, kit *tools.Kit) (agent.Agent, error) {
	ts, err := kit.ForecastTools()
	if err != nil {
		return nil, err
	}
	weather, err := newAgent(llmagent.Config{
		Name:        "weather_agent",
		Model:       m,
		Description: "An agent that answers questions about the weather.",
		Instruction: "You answer questions about the weather.",
		Tools:       ts,
	})
	if err != nil {
		return nil, err
	}
	return newAgent(llmagent.Config{
		Name:        "french_assistant",
		Model:       m,
		Description: "A helpful assistant who responds in French.",
		Instruction: "You are a helpful assistant who responds in French.",
		Tools:       []tool.Tool{agenttool.New(weather, nil)},
	})
}

// Clock informa a hora atual e registra cada chamada de função em out
func Clock(m model.LLM, kit *tools.Kit, out io.Writer) (agent.Agent, error) {
	ts, err := kit.TimeTools()
	if err != nil {
		return nil, err
	}
	hooks := FunctionLogger(out)
	return newAgent(llmagent.Config{
		Name:                "time_agent",
		Model:               m,
		Description:         "Tells the current time.",
		Instruction:         "You can tell the current time.",
		Tools:               ts,
		BeforeToolCallbacks: []llmagent.BeforeToolCallback{hooks.Before},
		AfterToolCallbacks:  []llmagent.AfterToolCallback{hooks.After},
	})
}

// Greeter cumprimenta o usuário e registra início e fim da execução em out
func Greeter(m model.LLM, out io.Writer) (agent.Agent, error) {
	hooks := AgentLogger(out)
	return newAgent(llmagent.Config{
		Name:                 "greeting_agent",
		Model:                m,
		Description:          "A friendly greeting assistant.",
		Instruction:          "You are a friendly greeting assistant.",
		BeforeAgentCallbacks: []agent.BeforeAgentCallback{hooks.Before},
		AfterAgentCallbacks:  []agent.AfterAgentCallback{hooks.After},
	})
}

// Vision analisa imagens enviadas junto com a mensagem
func Vision(m model.LLM) (agent.Agent, error) {
	return newAgent(llmagent.Config{
		Name:        "vision_agent",
		Model:       m,
		Description: "Analyses images.",
		Instruction: "Eres un agente útil que puede analizar imágenes",
	})
}

// Coder escreve e executa código Python com a ferramenta hospedada de
// execução de código do Gemini.
func Coder(m model.LLM) (agent.Agent, error) {
	return newAgent(llmagent.Config{
		Name:        "coding_agent",
		Model:       m,
		Description: "Writes and executes Python code.",
		Instruction: "You are a helpful assistant that can write and execute Python code.",
		Tools: []tool.Tool{
			geminitool.New("code_execution", &genai.Tool{CodeExecution: &genai.ToolCodeExecution{}}),
		},
	})
}

// Restaurant responde perguntas sobre o cardápio
func Restaurant(m model.LLM, kit *tools.Kit) (agent.Agent, error) {
	ts, err := kit.MenuTools()
	if err != nil {
		return nil, err
	}
	return newAgent(llmagent.Config{
		Name:        "restaurant_agent",
		Model:       m,
		Description: "Answer questions about the menu.",
		Instruction: "You answer questions about the restaurant menu using the available tools.",
		Tools:       ts,
	})
}

// Helper é o assistente genérico, com as ferramentas MCP quando houver
func Helper(m model.LLM, toolsets ...tool.Toolset) (agent.Agent, error) {
	instruction := "You are a helpful assistant that helps users with various tasks."
	if len(toolsets) > 0 {
		instruction = "You are a helpful assistant that helps users with various tasks using MCP tools."
	}
	return newAgent(llmagent.Config{
		Name:        "helper_agent",
		Model:       m,
		Description: "Helper agent.",
		Instruction: instruction,
		Toolsets:    toolsets,
	})
}

func newAgent(cfg llmagent.Config) (agent.Agent, error) {
	a, err := llmagent.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create agent %s: %w", cfg.Name, err)
	}
	return a, nil
}
