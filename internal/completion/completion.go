// Package completion reúne as demonstrações de chat completion "cru": uma
// lista explícita de mensagens system/user/assistant enviada ao modelo.
package completion

import (
	"context"

	"github.com/vitormoschetta/adk-patterns/internal/chat"
)

// Completer envia uma lista de mensagens e devolve o texto da resposta
type Completer interface {
	Complete(ctx context.Context, messages []chat.Message) (string, error)
}

const (
	StorySystemPrompt = "Contestar de forma educada y en español"
	StoryUserPrompt   = "Cuentame una historia de un gato y un perro que son amigos, en 100 palabras"
)

// FirstPrompt é o primeiro prompt: uma instrução de sistema e um pedido
func FirstPrompt(ctx context.Context, c Completer) (string, error) {
	return c.Complete(ctx, []chat.Message{
		{Role: chat.RoleSystem, Content: StorySystemPrompt},
		{Role: chat.RoleUser, Content: StoryUserPrompt},
	})
}
