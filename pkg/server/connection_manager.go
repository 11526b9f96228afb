package server

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redfive410/dinnercaster3-aws/internal/config"
)

// ConnectionManager holds the service container across warm Lambda
// invocations. The container itself is stateless per request; only the
// registered dispatcher survives between calls.
type ConnectionManager struct {
	container   *Container
	lastUsed    time.Time
	mu          sync.RWMutex
	initialized bool
	initOnce    sync.Once
	config      *config.Config
}

var (
	globalConnectionManager *ConnectionManager
	connectionManagerOnce   sync.Once
)

// GetConnectionManager returns the global connection manager instance
func GetConnectionManager() *ConnectionManager {
	connectionManagerOnce.Do(func() {
		globalConnectionManager = &ConnectionManager{}
	})
	return globalConnectionManager
}

// Initialize initializes the connection manager with configuration
func (cm *ConnectionManager) Initialize(cfg *config.Config) error {
	var initErr error
	cm.initOnce.Do(func() {
		cm.mu.Lock()
		defer cm.mu.Unlock()

		cm.config = cfg
		container, err := NewContainer(cfg)
		if err != nil {
			initErr = err
			return
		}

		cm.container = container
		cm.lastUsed = time.Now()
		cm.initialized = true
	})

	return initErr
}

// GetContainer returns the service container, refreshing the last-used mark
func (cm *ConnectionManager) GetContainer(ctx context.Context) (*Container, error) {
	cm.mu.RLock()
	if cm.initialized && cm.container != nil {
		container := cm.container
		cm.mu.RUnlock()

		cm.mu.Lock()
		cm.lastUsed = time.Now()
		cm.mu.Unlock()

		return container, nil
	}
	cm.mu.RUnlock()

	return nil, fmt.Errorf("connection manager not initialized")
}

// LastUsed reports when the container was last handed out
func (cm *ConnectionManager) LastUsed() time.Time {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.lastUsed
}
