package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(mw...)
	router.POST("/mcp", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

// TestRequestIDGenerated tests that a request ID is minted when none arrives
func TestRequestIDGenerated(t *testing.T) {
	router := newRouter(RequestID())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/mcp", nil)
	router.ServeHTTP(w, req)

	if w.Header().Get("X-Request-ID") == "" {
		t.Error("Expected a generated X-Request-ID header")
	}
}

// TestRequestIDPreserved tests that an inbound request ID is echoed back
func TestRequestIDPreserved(t *testing.T) {
	router := newRouter(RequestID())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/mcp", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	router.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Errorf("Expected request ID 'abc-123', got '%s'", got)
	}
}

// TestRateLimiterRejects tests that requests beyond the burst are refused
func TestRateLimiterRejects(t *testing.T) {
	router := newRouter(RateLimiter(0.0001, 1))

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest("POST", "/mcp", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("Expected first request to pass, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest("POST", "/mcp", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("Expected status 429, got %d", second.Code)
	}
}

// TestContentTypeValidation tests JSON-only enforcement on posts
func TestContentTypeValidation(t *testing.T) {
	router := newRouter(ContentTypeValidation())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/mcp", nil)
	req.Header.Set("Content-Type", "text/xml")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("Expected status 415, got %d", w.Code)
	}

	ok := httptest.NewRecorder()
	jsonReq := httptest.NewRequest("POST", "/mcp", nil)
	jsonReq.Header.Set("Content-Type", "application/json; charset=utf-8")
	router.ServeHTTP(ok, jsonReq)

	if ok.Code != http.StatusOK {
		t.Errorf("Expected JSON content type to pass, got %d", ok.Code)
	}
}

// TestCORSPreflight tests that OPTIONS requests short-circuit
func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS())
	router.POST("/mcp", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest("OPTIONS", "/mcp", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("Expected status 204 for preflight, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("Expected CORS headers on preflight response")
	}
}
