// Package mcpserver expõe as ferramentas do cardápio e o agente do
// restaurante como um servidor MCP.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/adk/agent"

	"github.com/vitormoschetta/adk-patterns/internal/agents"
	"github.com/vitormoschetta/adk-patterns/internal/logger"
	"github.com/vitormoschetta/adk-patterns/internal/tools"
)

const (
	Name    = "restaurant-mcp"
	Version = "1.0.0"
)

// QuestionArgs é a entrada da ferramenta ask_restaurant_agent
type QuestionArgs struct {
	Question string `json:"question" jsonschema:"The question about the restaurant menu."`
}

type Answer struct {
	Answer string `json:"answer"`
}

// New cria o servidor com get_specials, get_item_price e ask_restaurant_agent
func New(kit *tools.Kit, restaurant agent.Agent) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: Name, Version: Version}, nil)
	log := logger.Named("mcpserver")

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_specials",
		Description: "Returns the specials from the menu.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, _ tools.NoArgs) (*mcp.CallToolResult, tools.Specials, error) {
		specials, err := kit.Specials(nil, tools.NoArgs{})
		if err != nil {
			return nil, tools.Specials{}, err
		}
		return jsonResult(specials), specials, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_item_price",
		Description: "Returns the price of the menu item.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args tools.MenuItemArgs) (*mcp.CallToolResult, tools.Price, error) {
		price, err := kit.ItemPrice(nil, args)
		if err != nil {
			return nil, tools.Price{}, err
		}
		return jsonResult(price), price, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "ask_restaurant_agent",
		Description: "Answer questions about the menu.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args QuestionArgs) (*mcp.CallToolResult, Answer, error) {
		if args.Question == "" {
			return nil, Answer{}, fmt.Errorf("question is required")
		}
		log.Info("asking restaurant agent", "question", args.Question)
		text, err := agents.InvokeText(ctx, restaurant, args.Question)
		if err != nil {
			return nil, Answer{}, err
		}
		return &mcp.CallToolResult{Content: []mcp.Content{&mcp.TextContent{Text: text}}}, Answer{Answer: text}, nil
	})

	return server
}

// Serve executa o servidor sobre stdin/stdout até o contexto terminar
func Serve(ctx context.Context, server *mcp.Server) error {
	logger.Named("mcpserver").Info("serving MCP over stdio", "name", Name)
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("mcp server failed: %w", err)
	}
	return nil
}

func jsonResult(v any) *mcp.CallToolResult {
	data, err := json.Marshal(v)
	if err != nil {
		return &mcp.CallToolResult{IsError: true, Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}}}
	}
	return &mcp.CallToolResult{Content: []mcp.Content{&mcp.TextContent{Text: string(data)}}}
}
