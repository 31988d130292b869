package mcpserver

import (
	"context"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/vitormoschetta/adk-patterns/internal/agents"
	"github.com/vitormoschetta/adk-patterns/internal/chat/chattest"
	"github.com/vitormoschetta/adk-patterns/internal/tools"
)

func connect(t *testing.T, reply string) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	kit := tools.NewKit(nil, tools.English)
	restaurant, err := agents.Restaurant(chattest.New(reply), kit)
	if err != nil {
		t.Fatal(err)
	}
	server := New(kit, restaurant)

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	if _, err := server.Connect(ctx, serverTransport, nil); err != nil {
		t.Fatalf("server connect: %v", err)
	}
	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { session.Close() })
	return session
}

func callText(t *testing.T, session *mcp.ClientSession, name string, args map[string]any) string {
	t.Helper()
	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		t.Fatalf("CallTool(%s) error = %v", name, err)
	}
	if res.IsError {
		t.Fatalf("CallTool(%s) returned a tool error: %+v", name, res.Content)
	}
	var sb strings.Builder
	for _, c := range res.Content {
		if tc, ok := c.(*mcp.TextContent); ok {
			sb.WriteString(tc.Text)
		}
	}
	return sb.String()
}

func TestListTools(t *testing.T) {
	session := connect(t, "")
	res, err := session.ListTools(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	got := map[string]bool{}
	for _, tool := range res.Tools {
		got[tool.Name] = true
	}
	for _, name := range []string{"get_specials", "get_item_price", "ask_restaurant_agent"} {
		if !got[name] {
			t.Errorf("tool %s not listed", name)
		}
	}
}

func TestMenuTools(t *testing.T) {
	session := connect(t, "")

	specials := callText(t, session, "get_specials", map[string]any{})
	if !strings.Contains(specials, "Clam Chowder") {
		t.Errorf("get_specials = %q", specials)
	}

	price := callText(t, session, "get_item_price", map[string]any{"menu_item": "Chai Tea"})
	if !strings.Contains(price, "$9.99") || !strings.Contains(price, "Chai Tea") {
		t.Errorf("get_item_price = %q", price)
	}
}

func TestAskRestaurantAgent(t *testing.T) {
	session := connect(t, "The soup of the day is Clam Chowder.")
	got := callText(t, session, "ask_restaurant_agent", map[string]any{"question": "What is the soup of the day?"})
	if got != "The soup of the day is Clam Chowder." {
		t.Errorf("ask_restaurant_agent = %q", got)
	}
}
