package chat

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"

	"google.golang.org/adk/model"
	"google.golang.org/genai"

	"github.com/vitormoschetta/adk-patterns/internal/logger"
	"github.com/vitormoschetta/adk-patterns/internal/thread"
)

// ErrEmptyResponse indica que o modelo terminou sem devolver conteúdo
var ErrEmptyResponse = errors.New("model returned no content")

// Client conversa diretamente com um model.LLM, mantendo o histórico numa
// thread.Thread em vez de uma sessão do runner.
type Client struct {
	model        model.LLM
	name         string
	instructions string
	config       *genai.GenerateContentConfig
}

type Option func(*Client)

// WithInstructions define a instrução de sistema enviada em cada chamada
func WithInstructions(instructions string) Option {
	return func(c *Client) {
		c.instructions = instructions
	}
}

// WithName identifica o cliente nos logs
func WithName(name string) Option {
	return func(c *Client) {
		c.name = name
	}
}

// WithConfig permite ajustar temperatura, schema de saída etc.
func WithConfig(cfg *genai.GenerateContentConfig) Option {
	return func(c *Client) {
		c.config = cfg
	}
}

func NewClient(m model.LLM, opts ...Option) *Client {
	c := &Client{model: m, name: "assistant"}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Name() string { return c.name }

// Ask executa uma única rodada com histórico vazio
func (c *Client) Ask(ctx context.Context, text string) (string, error) {
	return c.Send(ctx, thread.New(), genai.NewPartFromText(text))
}

// Send acrescenta a mensagem do usuário à thread, chama o modelo com todo o
// histórico e acrescenta a resposta. Em caso de erro a thread não muda.
func (c *Client) Send(ctx context.Context, th *thread.Thread, parts ...*genai.Part) (string, error) {
	if len(parts) == 0 {
		return "", errors.New("message has no parts")
	}
	userContent := genai.NewContentFromParts(parts, genai.RoleUser)

	contents := append(append([]*genai.Content(nil), th.Messages...), userContent)
	reply, err := c.generate(ctx, contents, c.instructions)
	if err != nil {
		return "", err
	}

	th.Append(userContent, reply)
	return Text(reply), nil
}

// Message é uma mensagem no formato papel + texto das APIs de chat completion
type Message struct {
	Role    string
	Content string
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Complete envia uma lista explícita de mensagens. Mensagens "system" viram a
// instrução de sistema; "assistant" viram conteúdo do modelo.
func (c *Client) Complete(ctx context.Context, messages []Message) (string, error) {
	var system []string
	if c.instructions != "" {
		system = append(system, c.instructions)
	}
	contents := make([]*genai.Content, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case RoleSystem:
			system = append(system, msg.Content)
		case RoleAssistant:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleModel))
		case RoleUser:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleUser))
		default:
			return "", fmt.Errorf("unknown message role %q", msg.Role)
		}
	}
	if len(contents) == 0 {
		return "", errors.New("no user or assistant messages to send")
	}

	reply, err := c.generate(ctx, contents, strings.Join(system, "\n\n"))
	if err != nil {
		return "", err
	}
	return Text(reply), nil
}

func (c *Client) generate(ctx context.Context, contents []*genai.Content, instructions string) (*genai.Content, error) {
	cfg := &genai.GenerateContentConfig{}
	if c.config != nil {
		copied := *c.config
		cfg = &copied
	}
	if instructions != "" {
		cfg.SystemInstruction = genai.NewContentFromText(instructions, genai.RoleUser)
	}

	req := &model.LLMRequest{
		Model:    c.model.Name(),
		Contents: contents,
		Config:   cfg,
	}

	logger.Named("chat").Debug("sending request", "client", c.name, "messages", len(contents))

	reply, err := Collect(c.model.GenerateContent(ctx, req, false))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}
	return reply, nil
}

// Collect consome a sequência de respostas e devolve o último conteúdo
// completo, concatenando as partes parciais quando houver streaming.
func Collect(seq iter.Seq2[*model.LLMResponse, error]) (*genai.Content, error) {
	var partial []*genai.Part
	var last *genai.Content
	for resp, err := range seq {
		if err != nil {
			return nil, err
		}
		if resp == nil || resp.Content == nil {
			continue
		}
		if resp.Partial {
			partial = append(partial, resp.Content.Parts...)
			continue
		}
		last = resp.Content
	}
	if last == nil && len(partial) > 0 {
		last = genai.NewContentFromParts(partial, genai.RoleModel)
	}
	if last == nil {
		return nil, ErrEmptyResponse
	}
	if last.Role == "" {
		last.Role = string(genai.RoleModel)
	}
	return last, nil
}

// Text concatena as partes de texto de um conteúdo, ignorando pensamentos
func Text(content *genai.Content) string {
	if content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	return sb.String()
}
