package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"google.golang.org/adk/agent"

	"github.com/vitormoschetta/adk-patterns/internal/agents"
)

// ErrAgentMismatch indica que a sessão pertence a outro agente
var ErrAgentMismatch = errors.New("session belongs to another agent")

// ChatSession representa uma sessão de conversação HTTP
type ChatSession struct {
	ID           string
	AgentName    string
	Conversation *agents.Conversation
	Mu           sync.Mutex
}

// SessionManager gerencia sessões de conversação HTTP
type SessionManager struct {
	sessions map[string]*ChatSession
	mu       sync.RWMutex
}

func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*ChatSession),
	}
}

// GetOrCreate obtém uma sessão existente ou cria uma nova conversa com o agente
func (sm *SessionManager) GetOrCreate(ctx context.Context, sessionID, agentName string, a agent.Agent) (*ChatSession, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	if chatSession, exists := sm.sessions[sessionID]; exists {
		if chatSession.AgentName != agentName {
			return nil, fmt.Errorf("%w: %s", ErrAgentMismatch, chatSession.AgentName)
		}
		return chatSession, nil
	}

	conv, err := agents.NewConversation(ctx, a)
	if err != nil {
		return nil, err
	}
	chatSession := &ChatSession{
		ID:           sessionID,
		AgentName:    agentName,
		Conversation: conv,
	}
	sm.sessions[sessionID] = chatSession
	return chatSession, nil
}

// Len devolve o número de sessões ativas
func (sm *SessionManager) Len() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}
