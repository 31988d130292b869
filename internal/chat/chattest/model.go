// Package chattest fornece um model.LLM falso para testes offline.
package chattest

import (
	"context"
	"errors"
	"iter"
	"sync"

	"google.golang.org/adk/model"
	"google.golang.org/genai"
)

// ErrNoReply é devolvido quando o roteiro de respostas acabou
var ErrNoReply = errors.New("chattest: no scripted reply left")

// Model responde com textos roteirizados, na ordem, e registra cada requisição
type Model struct {
	mu       sync.Mutex
	replies  []string
	requests []*model.LLMRequest

	// Respond, quando definido, substitui o roteiro
	Respond func(req *model.LLMRequest) (*genai.Content, error)
}

func New(replies ...string) *Model {
	return &Model{replies: replies}
}

func (m *Model) Name() string { return "chattest" }

func (m *Model) GenerateContent(ctx context.Context, req *model.LLMRequest, stream bool) iter.Seq2[*model.LLMResponse, error] {
	return func(yield func(*model.LLMResponse, error) bool) {
		content, err := m.next(req)
		if err != nil {
			yield(nil, err)
			return
		}
		yield(&model.LLMResponse{Content: content, TurnComplete: true}, nil)
	}
}

func (m *Model) next(req *model.LLMRequest) (*genai.Content, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot := *req
	snapshot.Contents = append([]*genai.Content(nil), req.Contents...)
	m.requests = append(m.requests, &snapshot)

	if m.Respond != nil {
		return m.Respond(req)
	}
	if len(m.replies) == 0 {
		return nil, ErrNoReply
	}
	text := m.replies[0]
	m.replies = m.replies[1:]
	return genai.NewContentFromText(text, genai.RoleModel), nil
}

// Requests devolve uma cópia das requisições recebidas
func (m *Model) Requests() []*model.LLMRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*model.LLMRequest(nil), m.requests...)
}

// LastText devolve o texto da última mensagem da última requisição
func (m *Model) LastText() string {
	reqs := m.Requests()
	if len(reqs) == 0 {
		return ""
	}
	contents := reqs[len(reqs)-1].Contents
	if len(contents) == 0 {
		return ""
	}
	var out string
	for _, p := range contents[len(contents)-1].Parts {
		out += p.Text
	}
	return out
}
