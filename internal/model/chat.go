package model

// ChatRequest representa a requisição para o endpoint de chat
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
	// Agent escolhe o agente registrado; vazio usa o padrão
	Agent string `json:"agent,omitempty"`
}

// ChatResponse representa a resposta do endpoint de chat
type ChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
	Agent     string `json:"agent,omitempty"`
	Error     string `json:"error,omitempty"`
}

// ToolInfo descreve uma ferramenta local disponível aos agentes
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ToolsResponse struct {
	Tools       []ToolInfo `json:"tools"`
	MCPEndpoint string     `json:"mcp_endpoint,omitempty"`
	Note        string     `json:"note,omitempty"`
}

type AgentsResponse struct {
	Agents  []string `json:"agents"`
	Default string   `json:"default"`
}
