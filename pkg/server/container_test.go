package server

import (
	"context"
	"strings"
	"testing"

	"github.com/redfive410/dinnercaster3-aws/internal/config"
	"github.com/redfive410/dinnercaster3-aws/internal/handlers"
	"github.com/redfive410/dinnercaster3-aws/pkg/lambda"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		Port:        "0",
		MCP:         config.MCPConfig{Name: "dinner-test", Version: "0.0.1"},
		Tool:        config.ToolConfig{Vocabulary: []string{"Tacos"}},
		Log:         config.LogConfig{Level: "info", Format: "text"},
	}
}

// TestNewContainerRequiresConfig tests that a nil config is rejected
func TestNewContainerRequiresConfig(t *testing.T) {
	if _, err := NewContainer(nil); err == nil {
		t.Fatal("Expected NewContainer(nil) to fail")
	}
}

// TestNewContainerWiring tests that the container registers the dinner tool
func TestNewContainerWiring(t *testing.T) {
	container, err := NewContainer(testConfig())
	if err != nil {
		t.Fatalf("NewContainer failed: %v", err)
	}

	if container.Dispatcher == nil {
		t.Fatal("Expected a dispatcher")
	}
	if container.DinnerCaster == nil {
		t.Fatal("Expected a dinner caster")
	}
	if got := container.DinnerCaster.Suggest(); got != "Tacos" {
		t.Errorf("Expected suggestion 'Tacos', got '%s'", got)
	}
}

// TestContainerEndToEnd tests a tools/call flowing through shim and dispatcher
func TestContainerEndToEnd(t *testing.T) {
	container, err := NewContainer(testConfig())
	if err != nil {
		t.Fatalf("NewContainer failed: %v", err)
	}

	handler := handlers.NewMCPHandler(container.Dispatcher)
	payload := `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"dinnercaster","arguments":{}}}`
	req := &lambda.Request{
		Method: "POST",
		Path:   "/mcp",
		Body:   lambda.TextBody(payload),
	}

	resp := handler.HandleInvoke(context.Background(), req)
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status 200, got %d: %s", resp.StatusCode, resp.Body)
	}
	if !strings.Contains(string(resp.Body), "Tacos") {
		t.Errorf("Expected the suggestion in the response, got %q", resp.Body)
	}
}
