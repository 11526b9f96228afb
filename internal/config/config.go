package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `validate:"required"`
	Port        string `validate:"required"`
	MCP         MCPConfig
	Tool        ToolConfig
	Log         LogConfig
}

// MCPConfig identifies the MCP server to protocol clients
type MCPConfig struct {
	Name    string `validate:"required"`
	Version string `validate:"required"`
}

// ToolConfig holds the dinner tool configuration
type ToolConfig struct {
	Vocabulary []string `validate:"min=1,dive,required"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `validate:"required"`
	Format string `validate:"oneof=text json"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Set up Viper
	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8081")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("MCP_SERVER_NAME", "mcp-lambda-server")
	viper.SetDefault("MCP_SERVER_VERSION", "1.0.0")
	viper.SetDefault("DINNER_VOCABULARY", "Tacos")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		MCP: MCPConfig{
			Name:    viper.GetString("MCP_SERVER_NAME"),
			Version: viper.GetString("MCP_SERVER_VERSION"),
		},
		Tool: ToolConfig{
			Vocabulary: splitVocabulary(viper.GetString("DINNER_VOCABULARY")),
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// ConfigureLogging applies the log configuration to the global logger
func ConfigureLogging(cfg *Config) {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if cfg.Log.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{})
	}
}

// splitVocabulary parses a comma-separated suggestion list, dropping blanks
func splitVocabulary(raw string) []string {
	var vocabulary []string
	for _, entry := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(entry); trimmed != "" {
			vocabulary = append(vocabulary, trimmed)
		}
	}
	return vocabulary
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
