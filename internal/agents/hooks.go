package agents

import (
	"fmt"
	"io"
	"log/slog"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/tool"
	"google.golang.org/genai"

	"github.com/vitormoschetta/adk-patterns/internal/logger"
)

// ToolHooks registra cada chamada de função antes e depois da execução
type ToolHooks struct {
	out io.Writer
	log *slog.Logger
}

// FunctionLogger cria os ganchos de log de função escrevendo em out
func FunctionLogger(out io.Writer) *ToolHooks {
	return &ToolHooks{out: out, log: logger.Named("tool-hooks")}
}

// Before é chamado antes da ferramenta; retornar nil mantém a execução normal
func (h *ToolHooks) Before(ctx tool.Context, t tool.Tool, args map[string]any) (map[string]any, error) {
	fmt.Fprintf(h.out, "Calling function: %s\n", t.Name())
	h.log.Debug("tool call", "tool", t.Name(), "args", args)
	return nil, nil
}

// After é chamado com o resultado (ou o erro) da ferramenta
func (h *ToolHooks) After(ctx tool.Context, t tool.Tool, args, result map[string]any, err error) (map[string]any, error) {
	if err != nil {
		fmt.Fprintf(h.out, "Function %s failed: %v\n", t.Name(), err)
		h.log.Warn("tool failed", "tool", t.Name(), "error", err)
		return nil, nil
	}
	fmt.Fprintf(h.out, "Function result: %v\n", result)
	return nil, nil
}

// AgentHooks registra início e fim de cada execução do agente
type AgentHooks struct {
	out io.Writer
	log *slog.Logger
}

// AgentLogger cria os ganchos de log de agente escrevendo em out
func AgentLogger(out io.Writer) *AgentHooks {
	return &AgentHooks{out: out, log: logger.Named("agent-hooks")}
}

func (h *AgentHooks) Before(ctx agent.CallbackContext) (*genai.Content, error) {
	fmt.Fprintln(h.out, "Agent starting...")
	h.log.Debug("agent start", "agent", ctx.AgentName(), "invocation", ctx.InvocationID())
	return nil, nil
}

func (h *AgentHooks) After(ctx agent.CallbackContext) (*genai.Content, error) {
	fmt.Fprintln(h.out, "Agent finished!")
	h.log.Debug("agent end", "agent", ctx.AgentName(), "invocation", ctx.InvocationID())
	return nil, nil
}
