// Package apiclient is the Go client for the StyleSync API, used by the CLI.
// It distinguishes an unreachable server from an application error so callers
// can word their messages accordingly.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"time"

	"github.com/stylesync-app/stylesync/internal/stylist"
	"github.com/stylesync-app/stylesync/internal/wardrobe"
	"github.com/stylesync-app/stylesync/internal/weather"
)

// ErrUnreachable means the server could not be contacted at all.
var ErrUnreachable = errors.New("unable to reach the server, check your connection")

// APIError is an error the server itself reported.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// Client calls the StyleSync API server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the server at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			// Outfit generation waits on an upstream LLM.
			Timeout: 120 * time.Second,
		},
	}
}

// Recommendations is the answer to a wardrobe-gap analysis.
type Recommendations struct {
	WardrobeAnalysis json.RawMessage `json:"wardrobe_analysis"`
	Recommendations  json.RawMessage `json:"recommendations"`
}

// Classify uploads a clothing photo and returns its classification.
func (c *Client) Classify(ctx context.Context, image []byte, mimeType, filename string) (*wardrobe.Classification, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filename))
	header.Set("Content-Type", mimeType)
	part, err := mw.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("building upload: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return nil, fmt.Errorf("building upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("building upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/classify", &buf)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var parsed struct {
		Classification *wardrobe.Classification `json:"classification"`
	}
	if err := c.do(req, &parsed); err != nil {
		return nil, err
	}
	return parsed.Classification, nil
}

// OutfitIdeas asks the server for outfit combinations.
func (c *Client) OutfitIdeas(ctx context.Context, items []wardrobe.Item, profile *wardrobe.Profile, filters stylist.Filters) (json.RawMessage, error) {
	var parsed struct {
		Outfits json.RawMessage `json:"outfits"`
	}
	err := c.postJSON(ctx, "/api/outfits", map[string]any{
		"wardrobe": items,
		"profile":  profile,
		"filters":  filters,
	}, &parsed)
	if err != nil {
		return nil, err
	}
	return parsed.Outfits, nil
}

// Recommend asks the server for wardrobe-gap analysis and purchase
// suggestions.
func (c *Client) Recommend(ctx context.Context, items []wardrobe.Item, profile *wardrobe.Profile) (*Recommendations, error) {
	var parsed Recommendations
	err := c.postJSON(ctx, "/api/recommend", map[string]any{
		"wardrobe": items,
		"profile":  profile,
	}, &parsed)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// TodayPick asks the server for today's outfit.
func (c *Client) TodayPick(ctx context.Context, items []wardrobe.Item, profile *wardrobe.Profile, forecast json.RawMessage, history []wardrobe.WearEntry, rejected []json.RawMessage) (json.RawMessage, error) {
	var parsed struct {
		Outfit json.RawMessage `json:"outfit"`
	}
	err := c.postJSON(ctx, "/api/today-pick", map[string]any{
		"wardrobe":      items,
		"profile":       profile,
		"weather":       forecast,
		"wearHistory":   history,
		"rejectedPicks": rejected,
	}, &parsed)
	if err != nil {
		return nil, err
	}
	return parsed.Outfit, nil
}

// OccasionOutfits asks the server for event-specific outfit options.
func (c *Client) OccasionOutfits(ctx context.Context, items []wardrobe.Item, profile *wardrobe.Profile, event stylist.Event) (json.RawMessage, error) {
	var parsed struct {
		Outfits json.RawMessage `json:"outfits"`
	}
	err := c.postJSON(ctx, "/api/occasion-stylist", map[string]any{
		"wardrobe": items,
		"profile":  profile,
		"event":    event,
	}, &parsed)
	if err != nil {
		return nil, err
	}
	return parsed.Outfits, nil
}

// Weather fetches the forecast for a city.
func (c *Client) Weather(ctx context.Context, city string) (*weather.Forecast, error) {
	query := url.Values{}
	query.Set("city", city)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/api/weather?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	var parsed weather.Forecast
	if err := c.do(req, &parsed); err != nil {
		return nil, err
	}
	return &parsed, nil
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

// do sends the request and decodes a success envelope into out. A transport
// failure maps to ErrUnreachable, a non-2xx answer to *APIError carrying the
// server's message.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var envelope struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(data, &envelope); err == nil {
			apiErr.Message = envelope.Error
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
