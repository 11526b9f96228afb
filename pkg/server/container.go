package server

import (
	"fmt"

	"github.com/redfive410/dinnercaster3-aws/internal/config"
	"github.com/redfive410/dinnercaster3-aws/internal/mcp"
	"github.com/redfive410/dinnercaster3-aws/internal/tools"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	Dispatcher   *mcp.Server
	DinnerCaster *tools.DinnerCaster
}

// NewContainer creates a new dependency injection container. Tool registration
// happens here, explicitly, so the dispatcher is fully populated before any
// request is handled; nothing registers at import time.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	caster := tools.NewDinnerCaster(cfg.Tool.Vocabulary)

	dispatcher := mcp.NewServer(cfg.MCP.Name, cfg.MCP.Version)
	dispatcher.RegisterTool(tools.ToolName, tools.ToolDescription, caster.Suggest)

	return &Container{
		Config:       cfg,
		Dispatcher:   dispatcher,
		DinnerCaster: caster,
	}, nil
}
