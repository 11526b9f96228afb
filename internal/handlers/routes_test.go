package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(dispatcher Dispatcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRoutes(router, NewMCPHandler(dispatcher), "1.0.0")
	return router
}

// TestHealthEndpoint tests the health check route
func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(&stubDispatcher{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "healthy") {
		t.Errorf("Expected health payload, got %q", w.Body.String())
	}
}

// TestMCPEndpointInvalidJSON tests that the HTTP surface returns the shim's 400
func TestMCPEndpointInvalidJSON(t *testing.T) {
	dispatcher := &stubDispatcher{}
	router := newTestRouter(dispatcher)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/mcp", strings.NewReader("{invalid"))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid JSON in request body") {
		t.Errorf("Expected shim error body, got %q", w.Body.String())
	}
	if dispatcher.called {
		t.Error("Expected dispatcher not to be called for rejected body")
	}
}

// TestMCPEndpointDelegates tests that a clean payload reaches the dispatcher
func TestMCPEndpointDelegates(t *testing.T) {
	dispatcher := &stubDispatcher{}
	router := newTestRouter(dispatcher)

	payload := `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/mcp", strings.NewReader(payload))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if string(dispatcher.lastPayload) != payload {
		t.Errorf("Expected payload %q to reach the dispatcher, got %q", payload, dispatcher.lastPayload)
	}
}

// TestMCPEndpointEmptyBody tests that a bodyless POST still dispatches
func TestMCPEndpointEmptyBody(t *testing.T) {
	dispatcher := &stubDispatcher{}
	router := newTestRouter(dispatcher)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/mcp", nil)
	router.ServeHTTP(w, req)

	if !dispatcher.called {
		t.Fatal("Expected dispatcher to be called")
	}
	if dispatcher.lastPayload != nil {
		t.Errorf("Expected nil payload, got %q", dispatcher.lastPayload)
	}
}
