// Package stylist generates outfit combinations, purchase recommendations,
// daily picks and occasion looks from a user's wardrobe through the Groq
// chat-completions API.
package stylist

import (
	"errors"
	"os"
)

// ErrMissingAPIKey is returned when GROQ_API_KEY is not set.
var ErrMissingAPIKey = errors.New("missing GROQ_API_KEY environment variable")

// Config holds Groq API configuration.
type Config struct {
	APIKey string
}

// LoadConfig reads Groq configuration from environment variables.
// Returns ErrMissingAPIKey if GROQ_API_KEY is not set.
func LoadConfig() (*Config, error) {
	apiKey := os.Getenv("GROQ_API_KEY")
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	return &Config{APIKey: apiKey}, nil
}
