package workflow

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model"
	"google.golang.org/genai"

	"github.com/vitormoschetta/adk-patterns/internal/agents"
	"github.com/vitormoschetta/adk-patterns/internal/chat"
	"github.com/vitormoschetta/adk-patterns/internal/logger"
)

// DetectionResult é a saída estruturada do detector de spam
type DetectionResult struct {
	IsSpam       bool   `json:"is_spam" jsonschema:"Whether the email is spam."`
	Reason       string `json:"reason" jsonschema:"Human readable rationale."`
	EmailContent string `json:"email_content" jsonschema:"The original email content."`
}

// EmailResponse é a resposta redigida pelo assistente de e-mail
type EmailResponse struct {
	Response string `json:"response" jsonschema:"The drafted reply."`
}

var (
	// ErrNotSpam indica que o manipulador de spam recebeu um e-mail legítimo,
	// ou seja, condição e executor estão dessincronizados.
	ErrNotSpam = errors.New("this executor should only handle spam messages")
	// ErrNoOutput indica que nenhuma aresta foi ativada
	ErrNoOutput = errors.New("workflow produced no output")
)

// Sender envia uma mensagem a um agente e devolve o texto da resposta
type Sender interface {
	SendText(ctx context.Context, text string) (string, error)
}

// AgentResponse é a mensagem que sai de um executor agente
type AgentResponse struct {
	Executor string
	Text     string
}

// Condition cria o predicado de aresta que roteia pelo campo is_spam.
// Mensagens que não vêm de um agente deixam a aresta passar; JSON inválido
// nunca ativa a aresta.
func Condition(expected bool) func(msg any) bool {
	return func(msg any) bool {
		resp, ok := msg.(AgentResponse)
		if !ok {
			return true
		}
		detection, err := chat.Decode[DetectionResult](resp.Text)
		if err != nil {
			return false
		}
		return detection.IsSpam == expected
	}
}

// ToEmailRequest extrai o conteúdo original do e-mail para o assistente
func ToEmailRequest(resp AgentResponse) (string, error) {
	detection, err := chat.Decode[DetectionResult](resp.Text)
	if err != nil {
		return "", err
	}
	return detection.EmailContent, nil
}

// SendEmail finaliza o caminho legítimo
func SendEmail(resp AgentResponse) (string, error) {
	email, err := chat.Decode[EmailResponse](resp.Text)
	if err != nil {
		return "", err
	}
	return "Email sent:\n" + email.Response, nil
}

// HandleSpam finaliza o caminho de spam
func HandleSpam(resp AgentResponse) (string, error) {
	detection, err := chat.Decode[DetectionResult](resp.Text)
	if err != nil {
		return "", err
	}
	if !detection.IsSpam {
		return "", ErrNotSpam
	}
	return "Email marked as spam: " + detection.Reason, nil
}

// Triage é o fluxo condicional: detector de spam na entrada, assistente de
// e-mail no caminho legítimo e o manipulador de spam no outro.
type Triage struct {
	Detector  Sender
	Assistant Sender
}

// Run executa o fluxo para o e-mail e devolve a primeira saída produzida
func (t *Triage) Run(ctx context.Context, email string) (string, error) {
	log := logger.Named("triage")

	text, err := t.Detector.SendText(ctx, email)
	if err != nil {
		return "", fmt.Errorf("spam detection failed: %w", err)
	}
	detection := AgentResponse{Executor: "spam_detection_agent", Text: text}

	var outputs []string
	if Condition(false)(detection) {
		log.Debug("routing", "edge", "to_email_assistant_request")
		content, err := ToEmailRequest(detection)
		if err != nil {
			return "", err
		}
		reply, err := t.Assistant.SendText(ctx, content)
		if err != nil {
			return "", fmt.Errorf("email assistant failed: %w", err)
		}
		out, err := SendEmail(AgentResponse{Executor: "email_assistant_agent", Text: reply})
		if err != nil {
			return "", err
		}
		outputs = append(outputs, out)
	}
	if Condition(true)(detection) {
		log.Debug("routing", "edge", "handle_spam")
		out, err := HandleSpam(detection)
		if err != nil {
			return "", err
		}
		outputs = append(outputs, out)
	}

	if len(outputs) == 0 {
		log.Warn("no edge activated", "detector_output", text)
		return "", ErrNoOutput
	}
	return outputs[0], nil
}

// NewTriage monta os dois agentes com saída estruturada, cada um na sua sessão
func NewTriage(ctx context.Context, m model.LLM) (*Triage, error) {
	detector, err := llmagent.New(llmagent.Config{
		Name:        "spam_detection_agent",
		Model:       m,
		Description: "Classifies spam emails.",
		Instruction: "You are a spam detection assistant that identifies spam emails. " +
			"Always return JSON with fields is_spam (bool), reason (string), and email_content (string). " +
			"Include the original email content in email_content.",
		OutputSchema: detectionSchema(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create spam detector: %w", err)
	}

	assistant, err := llmagent.New(llmagent.Config{
		Name:        "email_assistant_agent",
		Model:       m,
		Description: "Drafts professional email replies.",
		Instruction: "You are an email assistant that helps users draft professional responses to emails. " +
			"Your input might be a JSON object that includes 'email_content'; base your reply on that content. " +
			"Return JSON with a single field 'response' containing the drafted reply.",
		OutputSchema: emailSchema(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create email assistant: %w", err)
	}

	d, err := agents.NewConversation(ctx, detector)
	if err != nil {
		return nil, err
	}
	a, err := agents.NewConversation(ctx, assistant)
	if err != nil {
		return nil, err
	}
	return &Triage{Detector: d, Assistant: a}, nil
}

func detectionSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"is_spam":       {Type: genai.TypeBoolean},
			"reason":        {Type: genai.TypeString},
			"email_content": {Type: genai.TypeString},
		},
		Required: []string{"is_spam", "reason", "email_content"},
	}
}

func emailSchema() *genai.Schema {
	return &genai.Schema{
		Type:       genai.TypeObject,
		Properties: map[string]*genai.Schema{"response": {Type: genai.TypeString}},
		Required:   []string{"response"},
	}
}
