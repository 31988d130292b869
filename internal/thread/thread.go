package thread

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

// ErrNotFound é devolvido pelos stores quando a thread não existe
var ErrNotFound = errors.New("thread not found")

// Thread é o histórico ordenado de uma conversação
type Thread struct {
	ID        string           `json:"id"`
	Messages  []*genai.Content `json:"messages"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

func New() *Thread {
	now := time.Now().UTC()
	return &Thread{
		ID:        uuid.NewString(),
		Messages:  []*genai.Content{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Append acrescenta mensagens ao fim do histórico
func (t *Thread) Append(messages ...*genai.Content) {
	t.Messages = append(t.Messages, messages...)
	t.UpdatedAt = time.Now().UTC()
}

func (t *Thread) Len() int { return len(t.Messages) }

// Serialize codifica a thread em JSON
func (t *Thread) Serialize() ([]byte, error) {
	data, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize thread: %w", err)
	}
	return data, nil
}

// Deserialize reconstrói uma thread a partir do JSON produzido por Serialize
func Deserialize(data []byte) (*Thread, error) {
	var t Thread
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to deserialize thread: %w", err)
	}
	if t.ID == "" {
		return nil, errors.New("thread has no id")
	}
	for i, msg := range t.Messages {
		if msg == nil || msg.Role == "" {
			return nil, fmt.Errorf("message %d has no role", i)
		}
	}
	if t.Messages == nil {
		t.Messages = []*genai.Content{}
	}
	return &t, nil
}
