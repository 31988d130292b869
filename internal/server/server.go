package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/tool"

	"github.com/vitormoschetta/adk-patterns/internal/agents"
	"github.com/vitormoschetta/adk-patterns/internal/chat"
	"github.com/vitormoschetta/adk-patterns/internal/config"
	"github.com/vitormoschetta/adk-patterns/internal/logger"
	"github.com/vitormoschetta/adk-patterns/internal/service"
)

// Server representa o servidor HTTP com todas as dependências
type Server struct {
	Deps           agents.Deps
	SessionManager *service.SessionManager
	McpEndpoint    string
	Addr           string
	Router         chi.Router

	mu     sync.Mutex
	agents map[string]agent.Agent
}

// New cria o servidor a partir de dependências já montadas
func New(deps agents.Deps, addr, mcpEndpoint string) *Server {
	if addr == "" {
		addr = config.DefaultAddr
	}
	return &Server{
		Deps:           deps,
		SessionManager: service.NewSessionManager(),
		McpEndpoint:    mcpEndpoint,
		Addr:           addr,
		agents:         make(map[string]agent.Agent),
	}
}

// NewServer cria o modelo e, quando MCP_ENDPOINT estiver definido, o toolset
// MCP autenticado usado pelo agente helper.
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	llmModel, err := chat.NewModel(ctx, cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to create model: %w", err)
	}

	var toolsets []tool.Toolset
	if cfg.MCP.Endpoint != "" {
		logger.Named("server").Info("connecting to MCP endpoint", "endpoint", cfg.MCP.Endpoint)
		ts, err := agents.MCPToolset(cfg.MCP)
		if err != nil {
			return nil, err
		}
		toolsets = append(toolsets, ts)
	}

	return New(agents.Deps{Model: llmModel, Toolsets: toolsets}, cfg.HTTP.Addr, cfg.MCP.Endpoint), nil
}

// Agent devolve o agente registrado com o nome, construindo-o uma única vez
func (s *Server) Agent(name string) (string, agent.Agent, error) {
	if name == "" {
		name = agents.DefaultAgent
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if a, ok := s.agents[name]; ok {
		return name, a, nil
	}
	a, err := agents.Build(name, s.Deps)
	if err != nil {
		return name, nil, err
	}
	s.agents[name] = a
	return name, a, nil
}

// SetupRouter configura as rotas e middlewares do Chi
func (s *Server) SetupRouter(
	handleRoot func(http.ResponseWriter, *http.Request),
	handleHealth func(http.ResponseWriter, *http.Request),
	handleChat func(http.ResponseWriter, *http.Request),
	handleTools func(http.ResponseWriter, *http.Request),
	handleAgents func(http.ResponseWriter, *http.Request),
) {
	r := chi.NewRouter()

	// Middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// Rotas
	r.Get("/", handleRoot)
	r.Get("/health", handleHealth)

	// API Routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", handleChat)
		r.Get("/tools", handleTools)
		r.Get("/agents", handleAgents)
	})

	s.Router = r
}

// Start inicia o servidor HTTP e faz o graceful shutdown quando ctx termina
func (s *Server) Start(ctx context.Context) error {
	log := logger.Named("server")

	httpServer := &http.Server{
		Addr:         s.Addr,
		Handler:      s.Router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("HTTP server started", "addr", s.Addr, "router", "chi v5")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		log.Info("server stopped gracefully")
		return nil
	})
	return g.Wait()
}
