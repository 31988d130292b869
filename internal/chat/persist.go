package chat

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/vitormoschetta/adk-patterns/internal/thread"
)

// SendAndSave envia a mensagem na thread e persiste o resultado no store
func (c *Client) SendAndSave(ctx context.Context, store thread.Store, th *thread.Thread, text string) (string, error) {
	reply, err := c.Send(ctx, th, genai.NewPartFromText(text))
	if err != nil {
		return "", err
	}
	if err := store.Save(ctx, th); err != nil {
		return "", fmt.Errorf("failed to save thread %s: %w", th.ID, err)
	}
	return reply, nil
}

// Resume carrega a thread persistida e continua a conversa a partir dela
func (c *Client) Resume(ctx context.Context, store thread.Store, id, text string) (string, *thread.Thread, error) {
	th, err := store.Load(ctx, id)
	if err != nil {
		return "", nil, fmt.Errorf("failed to load thread %s: %w", id, err)
	}
	reply, err := c.SendAndSave(ctx, store, th, text)
	if err != nil {
		return "", th, err
	}
	return reply, th, nil
}
