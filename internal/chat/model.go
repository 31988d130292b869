package chat

import (
	"context"
	"fmt"

	"google.golang.org/adk/model"
	"google.golang.org/adk/model/gemini"
	"google.golang.org/genai"

	"github.com/vitormoschetta/adk-patterns/internal/config"
)

// NewModel cria o modelo Gemini a partir da configuração, usando a API do
// Gemini ou o Vertex AI.
func NewModel(ctx context.Context, cfg config.ModelConfig) (model.LLM, error) {
	return newModel(ctx, cfg.Name, cfg)
}

// NewModelNamed cria um modelo com o mesmo backend de cfg mas outro nome
func NewModelNamed(ctx context.Context, name string, cfg config.ModelConfig) (model.LLM, error) {
	return newModel(ctx, name, cfg)
}

func newModel(ctx context.Context, name string, cfg config.ModelConfig) (model.LLM, error) {
	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.VertexAI {
		clientConfig = &genai.ClientConfig{
			Backend:  genai.BackendVertexAI,
			Project:  cfg.Project,
			Location: cfg.Location,
		}
	}

	m, err := gemini.NewModel(ctx, name, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create model: %w", err)
	}
	return m, nil
}
