package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/vitormoschetta/adk-patterns/internal/agents"
	"github.com/vitormoschetta/adk-patterns/internal/logger"
	"github.com/vitormoschetta/adk-patterns/internal/model"
	"github.com/vitormoschetta/adk-patterns/internal/server"
	"github.com/vitormoschetta/adk-patterns/internal/service"
	"github.com/vitormoschetta/adk-patterns/internal/tools"
)

// emptyReply é devolvido quando o agente não produz texto
const emptyReply = "O agente processou a mensagem, mas não retornou uma resposta."

// Handler contém as dependências necessárias para os handlers HTTP
type Handler struct {
	server *server.Server
}

// NewHandler cria uma nova instância do Handler
func NewHandler(srv *server.Server) *Handler {
	return &Handler{
		server: srv,
	}
}

// Register liga os handlers às rotas do servidor
func (h *Handler) Register() {
	h.server.SetupRouter(h.HandleRoot, h.HandleHealth, h.HandleChat, h.HandleTools, h.HandleAgents)
}

// HandleRoot retorna informações sobre o serviço
func (h *Handler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	base := "http://" + r.Host
	response := map[string]any{
		"service": "ADK Patterns agents",
		"endpoints": map[string]any{
			"chat": map[string]any{
				"url":         base + "/api/chat",
				"method":      "POST",
				"description": "Send a message to an agent",
				"example": map[string]string{
					"message":    "Hello, how can you help me?",
					"session_id": "optional-session-id",
					"agent":      agents.DefaultAgent,
				},
			},
			"health": map[string]any{
				"url":         base + "/health",
				"method":      "GET",
				"description": "Health check endpoint",
			},
			"tools": map[string]any{
				"url":         base + "/api/tools",
				"method":      "GET",
				"description": "List available tools",
			},
			"agents": map[string]any{
				"url":         base + "/api/agents",
				"method":      "GET",
				"description": "List available agents",
			},
		},
	}
	writeJSON(w, http.StatusOK, response)
}

// HandleHealth retorna o status de saúde do servidor
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// HandleTools lista as ferramentas locais e o endpoint MCP, se houver
func (h *Handler) HandleTools(w http.ResponseWriter, r *http.Request) {
	kit := h.server.Deps.Kit
	if kit == nil {
		kit = tools.NewKit(io.Discard, tools.English)
	}
	all, err := kit.All()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	response := model.ToolsResponse{MCPEndpoint: h.server.McpEndpoint}
	for _, t := range all {
		response.Tools = append(response.Tools, model.ToolInfo{Name: t.Name(), Description: t.Description()})
	}
	if h.server.McpEndpoint != "" {
		response.Note = "MCP tools are available through the helper agent; ask it 'What tools do you have available?'"
	}
	writeJSON(w, http.StatusOK, response)
}

// HandleAgents lista os agentes que podem ser escolhidos no chat
func (h *Handler) HandleAgents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.AgentsResponse{Agents: agents.Names(), Default: agents.DefaultAgent})
}

// HandleChat processa mensagens enviadas ao agente
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	log := logger.Named("handler")
	defer r.Body.Close()

	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("error parsing JSON", "error", err)
		writeJSON(w, http.StatusBadRequest, model.ChatResponse{Error: "Invalid JSON format"})
		return
	}
	if req.Message == "" {
		writeJSON(w, http.StatusBadRequest, model.ChatResponse{Error: "Message is required"})
		return
	}

	name, a, err := h.server.Agent(req.Agent)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, model.ChatResponse{Error: err.Error(), SessionID: req.SessionID})
		return
	}

	chatSess, err := h.server.SessionManager.GetOrCreate(r.Context(), req.SessionID, name, a)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrAgentMismatch) {
			status = http.StatusConflict
		}
		writeJSON(w, status, model.ChatResponse{
			Error:     fmt.Sprintf("Failed to create session: %v", err),
			SessionID: req.SessionID,
		})
		return
	}

	chatSess.Mu.Lock()
	defer chatSess.Mu.Unlock()

	log.Info("processing message", "session", chatSess.ID, "agent", name)

	reply, err := chatSess.Conversation.SendText(r.Context(), req.Message)
	switch {
	case errors.Is(err, agents.ErrNoText):
		reply = emptyReply
	case err != nil:
		log.Error("error running agent", "session", chatSess.ID, "error", err)
		writeJSON(w, http.StatusBadGateway, model.ChatResponse{
			Error:     fmt.Sprintf("Failed to process message: %v", err),
			SessionID: chatSess.ID,
			Agent:     name,
		})
		return
	}

	log.Debug("agent response", "session", chatSess.ID, "response", reply)

	writeJSON(w, http.StatusOK, model.ChatResponse{
		Response:  reply,
		SessionID: chatSess.ID,
		Agent:     name,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Named("handler").Error("failed to encode response", "error", err)
	}
}
