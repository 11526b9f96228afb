package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/redfive410/dinnercaster3-aws/internal/config"
	"github.com/redfive410/dinnercaster3-aws/internal/handlers"
	"github.com/redfive410/dinnercaster3-aws/internal/middleware"
	"github.com/redfive410/dinnercaster3-aws/pkg/server"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	config.ConfigureLogging(cfg)

	// Initialize dependencies
	container, err := server.NewContainer(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	// Setup Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RateLimiter(50, 100))
	router.Use(middleware.ContentTypeValidation())

	mcpHandler := handlers.NewMCPHandler(container.Dispatcher)
	handlers.SetupRoutes(router, mcpHandler, cfg.MCP.Version)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	log.Printf("MCP server %s %s listening on :%s", cfg.MCP.Name, cfg.MCP.Version, cfg.Port)

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
}
