// ABOUTME: Centralized configuration for the clarification pipeline
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration for the clarification pipeline.
type Config struct {
	// OpenAI settings
	OpenAIKey string
	ChatModel string
	Timeout   time.Duration

	// Generation settings
	MaxQuestions        int
	ValidationThreshold float64
	FallbackEnabled     bool
	DefaultLanguage     string

	// Surfaces
	HTTPAddr string
	DBPath   string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		OpenAIKey:           os.Getenv("OPENAI_API_KEY"),
		ChatModel:           getEnv("CLARIFY_OPENAI_MODEL", "gpt-4o-mini"),
		Timeout:             getEnvDuration("OPENAI_TIMEOUT", 25*time.Second),
		MaxQuestions:        getEnvInt("CLARIFY_MAX_QUESTIONS", 4),
		ValidationThreshold: getEnvFloat("CLARIFY_VALIDATION_THRESHOLD", 0.5),
		FallbackEnabled:     getEnvBool("CLARIFY_FALLBACK", true),
		DefaultLanguage:     getEnv("CLARIFY_DEFAULT_LANGUAGE", "fr"),
		HTTPAddr:            getEnv("CLARIFY_HTTP_ADDR", ":8080"),
		DBPath:              getEnv("CLARIFY_DB", DefaultDBPath()),
	}

	return cfg, cfg.Validate()
}

// Validate checks configured values against their allowed ranges.
func (c *Config) Validate() error {
	if c.MaxQuestions < 1 || c.MaxQuestions > 10 {
		return fmt.Errorf("CLARIFY_MAX_QUESTIONS must be 1-10, got %d", c.MaxQuestions)
	}
	if c.ValidationThreshold < 0 || c.ValidationThreshold > 1 {
		return fmt.Errorf("CLARIFY_VALIDATION_THRESHOLD must be 0-1, got %f", c.ValidationThreshold)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("OPENAI_TIMEOUT must be positive, got %s", c.Timeout)
	}
	return nil
}

// DefaultDBPath returns the default stats database path following XDG spec.
func DefaultDBPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(".local", "share", "clarify", "clarify.db")
		}
		dataHome = filepath.Join(homeDir, ".local", "share")
	}
	return filepath.Join(dataHome, "clarify", "clarify.db")
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	return v == "true" || v == "1"
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
