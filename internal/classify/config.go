// Package classify turns clothing photos into structured wardrobe
// classifications using Gemini vision models.
package classify

import (
	"errors"
	"os"
)

// ErrMissingAPIKey is returned when GEMINI_API_KEY is not set.
var ErrMissingAPIKey = errors.New("missing GEMINI_API_KEY environment variable")

// Config holds Gemini API configuration.
type Config struct {
	APIKey string
}

// LoadConfig reads Gemini configuration from environment variables.
// Returns ErrMissingAPIKey if GEMINI_API_KEY is not set.
func LoadConfig() (*Config, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	return &Config{APIKey: apiKey}, nil
}
