package stylist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/stylesync-app/stylesync/internal/extract"
)

const (
	defaultBaseURL = "https://api.groq.com/openai/v1"

	model       = "llama-3.3-70b-versatile"
	temperature = 0.8
	maxTokens   = 4096

	// chatRetries is the number of extra attempts after a failed request.
	chatRetries = 1
)

// RecentWearDays is the exclusion window for the daily pick: items worn
// within this many days are steered away from. A policy choice inherited
// from the original product, not a structural requirement.
const RecentWearDays = 7

// Client calls the Groq chat-completions API.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a Groq client from the provided configuration.
func NewClient(cfg *Config) *Client {
	return &Client{
		apiKey: cfg.APIKey,
		httpClient: &http.Client{
			// Generation over a large wardrobe can take a while.
			Timeout: 90 * time.Second,
		},
		baseURL: defaultBaseURL,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// complete runs one chat completion and extracts the JSON value from the
// model's reply. A failed attempt — request or extraction — is retried once
// before the error surfaces to the caller.
func (c *Client) complete(ctx context.Context, systemPrompt, userMessage string) (json.RawMessage, error) {
	if c.apiKey == "" {
		return nil, errors.New("groq API key is not configured, add GROQ_API_KEY to your environment")
	}

	var lastErr error
	for attempt := 0; attempt <= chatRetries; attempt++ {
		text, err := c.send(ctx, systemPrompt, userMessage)
		if err == nil {
			raw, extractErr := extract.JSON(text)
			if extractErr == nil {
				return raw, nil
			}
			err = extractErr
		}
		lastErr = err
	}
	return nil, lastErr
}

func (c *Client) send(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("encoding chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling groq: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading groq response: %w", err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("groq API returned status %d", resp.StatusCode)
		}
		return "", fmt.Errorf("parsing groq response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil && parsed.Error.Message != "" {
			return "", fmt.Errorf("groq API error: %s", parsed.Error.Message)
		}
		return "", fmt.Errorf("groq API returned status %d", resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("groq response has no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}
