package agents

import (
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/mcptoolset"

	"github.com/vitormoschetta/adk-patterns/internal/config"
	"github.com/vitormoschetta/adk-patterns/internal/logger"
)

// TokenHeader é o header de autenticação esperado pelo servidor MCP remoto
const TokenHeader = "X-Tiger-Token"

// AuthenticatedTransport adiciona o token de autenticação às requisições HTTP
type AuthenticatedTransport struct {
	Base  http.RoundTripper
	Token string
}

func (t *AuthenticatedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clonar a requisição para não modificar a original
	reqCopy := req.Clone(req.Context())
	if t.Token != "" {
		reqCopy.Header.Set(TokenHeader, t.Token)
	}

	logger.Named("mcp").Debug("mcp request", "method", reqCopy.Method, "url", reqCopy.URL.String())

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(reqCopy)
}

// MCPToolset conecta ao endpoint MCP configurado usando um cliente HTTP autenticado
func MCPToolset(cfg config.MCPConfig) (tool.Toolset, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("MCP_ENDPOINT is not set")
	}
	if cfg.Token == "" {
		logger.Named("mcp").Warn("X_TIGER_TOKEN is not set - MCP requests may fail with 403")
	}

	httpClient := &http.Client{
		Transport: &AuthenticatedTransport{Base: http.DefaultTransport, Token: cfg.Token},
		Timeout:   30 * time.Second,
	}

	ts, err := mcptoolset.New(mcptoolset.Config{
		Transport: &mcp.StreamableClientTransport{
			Endpoint:   cfg.Endpoint,
			HTTPClient: httpClient,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MCP tool set: %w", err)
	}
	return ts, nil
}
