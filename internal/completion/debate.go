package completion

import (
	"context"
	"fmt"
	"io"

	"github.com/vitormoschetta/adk-patterns/internal/chat"
)

const (
	DebateTopic = "¿Quien es mejor equipo: el Real Madrid o el FC Barcelona?"
	MadridFan   = "Soy del Real Madrid y tengo muy mala leche. Soy maleducado y borde. No soporto al FC Barcelona."
	BarcaFan    = "Soy del FC Barcelona y me gusta mucho pinchar a los del Real Madrid. Soy sarcástico y bromista. Muchas veces soy insoportable."
	// DefaultIterations é o número de rodadas do debate
	DefaultIterations = 10
)

// Turn é uma fala do debate
type Turn struct {
	Speaker int
	Text    string
}

// Debate coloca duas personalidades para conversar sobre um tema. Cada
// assistente tem o próprio histórico: a fala de um entra como mensagem de
// usuário no histórico do outro.
type Debate struct {
	First, Second string
	Topic         string
	Iterations    int
	Out           io.Writer
}

// NewDebate cria o debate Real Madrid x FC Barcelona
func NewDebate(out io.Writer) *Debate {
	return &Debate{First: MadridFan, Second: BarcaFan, Topic: DebateTopic, Iterations: DefaultIterations, Out: out}
}

// Run executa o debate; o assistente 2 sempre fala primeiro
func (d *Debate) Run(ctx context.Context, c Completer) ([]Turn, error) {
	out := d.Out
	if out == nil {
		out = io.Discard
	}

	fmt.Fprintln(out, "Iniciando conversación entre dos asistentes...")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Asistente 1: ", d.First)
	fmt.Fprintln(out, "Asistente 2: ", d.Second)
	fmt.Fprintln(out, "---")
	fmt.Fprintln(out, "Tema a tratar: ", d.Topic)

	first := []chat.Message{{Role: chat.RoleSystem, Content: d.First}}
	second := []chat.Message{
		{Role: chat.RoleSystem, Content: d.Second},
		{Role: chat.RoleUser, Content: d.Topic},
	}

	var turns []Turn
	for i := 0; i < d.Iterations; i++ {
		text, err := c.Complete(ctx, second)
		if err != nil {
			return turns, fmt.Errorf("assistant 2 failed: %w", err)
		}
		second = append(second, chat.Message{Role: chat.RoleAssistant, Content: text})
		first = append(first, chat.Message{Role: chat.RoleUser, Content: text})
		turns = append(turns, Turn{Speaker: 2, Text: text})
		fmt.Fprintln(out, "Asistente 2: ", text)

		text, err = c.Complete(ctx, first)
		if err != nil {
			return turns, fmt.Errorf("assistant 1 failed: %w", err)
		}
		first = append(first, chat.Message{Role: chat.RoleAssistant, Content: text})
		second = append(second, chat.Message{Role: chat.RoleUser, Content: text})
		turns = append(turns, Turn{Speaker: 1, Text: text})
		fmt.Fprintln(out, "Asistente 1: ", text)
	}
	return turns, nil
}
