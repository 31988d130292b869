// Package workflow compõe executores (funções simples ou agentes ADK) em
// grafos: sequências, desvios condicionais e ciclos com intervenção humana.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/model"
	"google.golang.org/adk/session"
	"google.golang.org/genai"

	"github.com/vitormoschetta/adk-patterns/internal/chat"
)

// Step é um executor de texto identificado por ID
type Step struct {
	ID string
	Fn func(ctx context.Context, text string) (string, error)
}

// UpperCase transforma o texto em maiúsculas
var UpperCase = Step{
	ID: "upper_case_executor",
	Fn: func(_ context.Context, text string) (string, error) {
		return cases.Upper(language.Und).String(text), nil
	},
}

// Reverse inverte o texto, runa a runa
var Reverse = Step{
	ID: "reverse_text_executor",
	Fn: func(_ context.Context, text string) (string, error) {
		r := []rune(text)
		for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
			r[i], r[j] = r[j], r[i]
		}
		return string(r), nil
	},
}

// NewPipeline cria um agente que passa a mensagem do usuário por cada passo
// em ordem, emitindo um evento por passo. O texto do último evento é a saída.
func NewPipeline(name string, steps ...Step) (agent.Agent, error) {
	if len(steps) == 0 {
		return nil, errors.New("pipeline needs at least one step")
	}
	return agent.New(agent.Config{
		Name:        name,
		Description: "Runs text through a fixed sequence of steps.",
		Run: func(ctx agent.InvocationContext) iter.Seq2[*session.Event, error] {
			return func(yield func(*session.Event, error) bool) {
				text := chat.Text(ctx.UserContent())
				for _, step := range steps {
					out, err := step.Fn(ctx, text)
					if err != nil {
						yield(nil, fmt.Errorf("step %s failed: %w", step.ID, err))
						return
					}
					text = out

					event := session.NewEvent(ctx.InvocationID())
					event.Author = step.ID
					event.LLMResponse = model.LLMResponse{
						Content:      genai.NewContentFromText(text, genai.RoleModel),
						TurnComplete: true,
					}
					if !yield(event, nil) {
						return
					}
				}
			}
		},
	})
}

// TextPipeline é o fluxo básico: maiúsculas e depois inversão
func TextPipeline() (agent.Agent, error) {
	return NewPipeline("text_pipeline", UpperCase, Reverse)
}
