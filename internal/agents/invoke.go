package agents

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
	"google.golang.org/genai"

	"github.com/vitormoschetta/adk-patterns/internal/chat"
	"github.com/vitormoschetta/adk-patterns/internal/logger"
)

const (
	AppName     = "adk-patterns"
	DefaultUser = "default-user"
)

// ErrNoText indica que a execução terminou sem nenhuma resposta em texto
var ErrNoText = errors.New("agent returned no text")

// Conversation mantém uma sessão em memória do runner, de modo que chamadas
// sucessivas a Send compartilham o histórico.
type Conversation struct {
	runner    *runner.Runner
	sessionID string
	userID    string
}

// NewConversation cria o runner e a sessão para o agente
func NewConversation(ctx context.Context, a agent.Agent) (*Conversation, error) {
	sessionService := session.InMemoryService()

	r, err := runner.New(runner.Config{
		AppName:        AppName,
		Agent:          a,
		SessionService: sessionService,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create runner: %w", err)
	}

	sessionID := uuid.NewString()
	if _, err := sessionService.Create(ctx, &session.CreateRequest{
		AppName:   AppName,
		UserID:    DefaultUser,
		SessionID: sessionID,
	}); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &Conversation{runner: r, sessionID: sessionID, userID: DefaultUser}, nil
}

func (c *Conversation) SessionID() string { return c.sessionID }

// Send executa o agente e devolve o último texto produzido
func (c *Conversation) Send(ctx context.Context, content *genai.Content) (string, error) {
	return c.Stream(ctx, content, nil)
}

// SendText é um atalho para mensagens só de texto
func (c *Conversation) SendText(ctx context.Context, text string) (string, error) {
	return c.Send(ctx, genai.NewContentFromText(text, genai.RoleUser))
}

// Stream executa o agente chamando onEvent para cada evento recebido
func (c *Conversation) Stream(ctx context.Context, content *genai.Content, onEvent func(*session.Event)) (string, error) {
	log := logger.Named("agents")

	var last string
	for event, err := range c.runner.Run(ctx, c.userID, c.sessionID, content, agent.RunConfig{}) {
		if err != nil {
			log.Error("agent run failed", "session", c.sessionID, "error", err)
			return "", fmt.Errorf("failed to run agent: %w", err)
		}
		if event == nil {
			continue
		}
		if onEvent != nil {
			onEvent(event)
		}
		if event.Partial || event.Content == nil {
			continue
		}
		if text := chat.Text(event.Content); text != "" {
			last = text
			log.Debug("agent event", "session", c.sessionID, "author", event.Author)
		}
	}
	if last == "" {
		return "", ErrNoText
	}
	return last, nil
}

// Invoke executa o agente uma única vez numa sessão nova
func Invoke(ctx context.Context, a agent.Agent, content *genai.Content) (string, error) {
	conv, err := NewConversation(ctx, a)
	if err != nil {
		return "", err
	}
	return conv.Send(ctx, content)
}

// InvokeText é Invoke com uma mensagem de texto
func InvokeText(ctx context.Context, a agent.Agent, text string) (string, error) {
	return Invoke(ctx, a, genai.NewContentFromText(text, genai.RoleUser))
}
