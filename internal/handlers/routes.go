package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/redfive410/dinnercaster3-aws/pkg/lambda"
)

// SetupRoutes wires the MCP endpoint and health check onto the router
func SetupRoutes(router *gin.Engine, handler *MCPHandler, version string) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC(),
			"version":   version,
		})
	})

	router.POST("/mcp", func(c *gin.Context) {
		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error:   "Internal server error",
				Details: err.Error(),
			})
			return
		}

		req := &lambda.Request{
			Method:  c.Request.Method,
			Path:    c.Request.URL.Path,
			Headers: flattenHeaders(c.Request.Header),
			Body:    bodyFromHTTP(raw),
		}

		resp := handler.HandleInvoke(c.Request.Context(), req)
		c.Data(resp.StatusCode, "application/json", resp.Body)
	})
}

// bodyFromHTTP maps an HTTP payload onto the body variants. HTTP bodies are
// byte streams, so anything present arrives as the binary variant and goes
// through UTF-8 validation like any other transport payload.
func bodyFromHTTP(raw []byte) lambda.Body {
	if len(raw) == 0 {
		return lambda.NoBody()
	}
	return lambda.BinaryBody(raw)
}

func flattenHeaders(header http.Header) map[string]string {
	flat := make(map[string]string, len(header))
	for key := range header {
		flat[key] = header.Get(key)
	}
	return flat
}
