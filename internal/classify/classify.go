package classify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/stylesync-app/stylesync/internal/extract"
	"github.com/stylesync-app/stylesync/internal/wardrobe"
)

// Models are tried in order. Quota exhaustion or an incomplete answer moves
// on to the next entry; any other failure aborts.
var Models = []string{"gemini-2.0-flash", "gemini-2.0-flash-lite"}

var errMissingField = errors.New("classification missing required field")

// Service classifies clothing images through the Gemini API.
type Service struct {
	apiKey string
	models []string
}

// New creates a classification service from the provided configuration.
func New(cfg *Config) *Service {
	return &Service{
		apiKey: cfg.APIKey,
		models: Models,
	}
}

// ClassifyItem sends the image to the first available Gemini model and
// returns the parsed classification with its category normalized onto the
// closed set.
func (s *Service) ClassifyItem(ctx context.Context, image []byte, mimeType string) (*wardrobe.Classification, error) {
	if s.apiKey == "" {
		return nil, errors.New("gemini API key is not configured, add GEMINI_API_KEY to your environment")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	defer client.Close()

	// The SDK wants the bare format, not the full MIME type.
	format := strings.TrimPrefix(mimeType, "image/")

	var lastErr error
	for _, name := range s.models {
		model := client.GenerativeModel(name)
		model.SetTemperature(0.2)
		model.SetTopP(0.8)
		model.SetMaxOutputTokens(1024)

		classification, err := classifyWith(ctx, model, format, image)
		if err == nil {
			return classification, nil
		}
		lastErr = err
		if !fallthroughWorthy(err) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("all gemini models are rate-limited, wait a few minutes and try again: %w", lastErr)
}

func classifyWith(ctx context.Context, model *genai.GenerativeModel, format string, image []byte) (*wardrobe.Classification, error) {
	resp, err := model.GenerateContent(ctx,
		genai.Text(classificationPrompt),
		genai.ImageData(format, image),
	)
	if err != nil {
		return nil, fmt.Errorf("generating classification: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return nil, errors.New("empty classification response")
	}

	var c wardrobe.Classification
	if err := extract.Unmarshal(text, &c); err != nil {
		return nil, fmt.Errorf("parsing classification: %w", err)
	}

	if field := missingField(&c); field != "" {
		return nil, fmt.Errorf("%w: %s", errMissingField, field)
	}

	c.Category = NormalizeCategory(c.Category)
	return &c, nil
}

// missingField returns the name of the first required field the model left
// empty, or "" when the classification is complete.
func missingField(c *wardrobe.Classification) string {
	required := []struct {
		name  string
		value string
	}{
		{"category", c.Category},
		{"subcategory", c.Subcategory},
		{"color", c.Color},
		{"pattern", c.Pattern},
		{"fabric_guess", c.FabricGuess},
		{"formality", c.Formality},
		{"season", c.Season},
		{"description", c.Description},
	}
	for _, f := range required {
		if f.value == "" {
			return f.name
		}
	}
	return ""
}

// fallthroughWorthy reports whether the next model in the list should be
// tried: free-tier quota exhaustion and incomplete model output both warrant
// a fallback, anything else does not.
func fallthroughWorthy(err error) bool {
	if errors.Is(err, errMissingField) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota")
}

func responseText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String()
}
