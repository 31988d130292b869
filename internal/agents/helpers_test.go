package agents

import (
	"net/http"

	"github.com/vitormoschetta/adk-patterns/internal/config"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func configMCP(endpoint, token string) config.MCPConfig {
	return config.MCPConfig{Endpoint: endpoint, Token: token}
}
