package web

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/stylesync-app/stylesync/internal/stylist"
	"github.com/stylesync-app/stylesync/internal/wardrobe"
	"github.com/stylesync-app/stylesync/internal/weather"
)

// maxImageSize caps classification uploads at 5MB.
const maxImageSize = 5 << 20

// Classifier turns a clothing photo into a structured classification.
type Classifier interface {
	ClassifyItem(ctx context.Context, image []byte, mimeType string) (*wardrobe.Classification, error)
}

// Stylist generates outfits and shopping advice from a wardrobe.
type Stylist interface {
	OutfitIdeas(ctx context.Context, items []wardrobe.Item, profile *wardrobe.Profile, filters stylist.Filters) (json.RawMessage, error)
	Recommendations(ctx context.Context, items []wardrobe.Item, profile *wardrobe.Profile) (json.RawMessage, error)
	TodayPick(ctx context.Context, items []wardrobe.Item, profile *wardrobe.Profile, weather json.RawMessage, history []wardrobe.WearEntry, rejected []json.RawMessage) (json.RawMessage, error)
	OccasionOutfits(ctx context.Context, items []wardrobe.Item, profile *wardrobe.Profile, event stylist.Event) (json.RawMessage, error)
}

// WeatherProvider resolves a city to its forecast.
type WeatherProvider interface {
	Forecast(ctx context.Context, city string) (*weather.Forecast, error)
}

// Handlers holds HTTP handlers for the API.
type Handlers struct {
	classifier Classifier
	stylist    Stylist
	weather    WeatherProvider
	logger     *zap.Logger
}

// NewHandlers creates handlers with the given services.
func NewHandlers(classifier Classifier, st Stylist, weather WeatherProvider, logger *zap.Logger) *Handlers {
	return &Handlers{
		classifier: classifier,
		stylist:    st,
		weather:    weather,
		logger:     logger,
	}
}

// respond writes a success envelope. Extra fields are merged next to
// "success": true.
func (h *Handlers) respond(w http.ResponseWriter, fields map[string]any) {
	body := map[string]any{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("encoding response", zap.Error(err))
	}
}

// fail writes an error envelope with the given status.
func (h *Handlers) fail(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   message,
	}); err != nil {
		h.logger.Error("encoding error response", zap.Error(err))
	}
}

// Root reports the API identity.
func (h *Handlers) Root(w http.ResponseWriter, r *http.Request) {
	h.respond(w, map[string]any{
		"name":    "StyleSync API",
		"version": "1.0.0",
		"status":  "running",
	})
}

// Health is the health check endpoint.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		h.logger.Error("encoding health response", zap.Error(err))
	}
}

// Weather returns the 7-day forecast for ?city=.
func (h *Handlers) Weather(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	if city == "" {
		h.fail(w, http.StatusBadRequest, "City parameter is required. Use ?city=CityName")
		return
	}

	forecast, err := h.weather.Forecast(r.Context(), city)
	if err != nil {
		h.logger.Error("weather lookup failed", zap.String("city", city), zap.Error(err))
		h.fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respond(w, map[string]any{
		"location": forecast.Location,
		"forecast": forecast.Days,
	})
}

// Classify accepts a multipart image upload and returns its classification.
func (h *Handlers) Classify(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize)

	file, header, err := r.FormFile("image")
	if err != nil {
		h.fail(w, http.StatusBadRequest, "No image file provided")
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		h.fail(w, http.StatusBadRequest, "Failed to read the uploaded image")
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	classification, err := h.classifier.ClassifyItem(r.Context(), image, mimeType)
	if err != nil {
		h.logger.Error("classification failed", zap.Error(err))
		h.fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respond(w, map[string]any{"classification": classification})
}

type outfitsRequest struct {
	Wardrobe []wardrobe.Item   `json:"wardrobe"`
	Profile  *wardrobe.Profile `json:"profile"`
	Filters  stylist.Filters   `json:"filters"`
}

// Outfits generates outfit combinations from the posted wardrobe.
func (h *Handlers) Outfits(w http.ResponseWriter, r *http.Request) {
	var req outfitsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, http.StatusBadRequest, "Invalid JSON request body")
		return
	}
	if len(req.Wardrobe) == 0 {
		h.fail(w, http.StatusBadRequest, "Wardrobe is required and must be a non-empty array of clothing items.")
		return
	}
	if req.Profile == nil {
		h.fail(w, http.StatusBadRequest, "Profile is required to generate personalized outfits.")
		return
	}

	outfits, err := h.stylist.OutfitIdeas(r.Context(), req.Wardrobe, req.Profile, req.Filters)
	if err != nil {
		h.logger.Error("outfit generation failed", zap.Error(err))
		h.fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respond(w, map[string]any{"outfits": outfits})
}

type recommendRequest struct {
	Wardrobe []wardrobe.Item   `json:"wardrobe"`
	Profile  *wardrobe.Profile `json:"profile"`
}

// recommendResult mirrors the stylist's answer so its two sections can sit
// directly in the response envelope.
type recommendResult struct {
	WardrobeAnalysis json.RawMessage `json:"wardrobe_analysis"`
	Recommendations  json.RawMessage `json:"recommendations"`
}

// Recommend analyzes wardrobe gaps and suggests purchases.
func (h *Handlers) Recommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, http.StatusBadRequest, "Invalid JSON request body")
		return
	}
	if len(req.Wardrobe) == 0 {
		h.fail(w, http.StatusBadRequest, "Wardrobe is required and must be a non-empty array of clothing items.")
		return
	}
	if req.Profile == nil {
		h.fail(w, http.StatusBadRequest, "Profile is required to generate personalized recommendations.")
		return
	}

	raw, err := h.stylist.Recommendations(r.Context(), req.Wardrobe, req.Profile)
	if err != nil {
		h.logger.Error("recommendation failed", zap.Error(err))
		h.fail(w, http.StatusInternalServerError, "Failed to generate recommendations. Please try again.")
		return
	}

	var result recommendResult
	if err := json.Unmarshal(raw, &result); err != nil {
		h.logger.Error("recommendation result malformed", zap.Error(err))
		h.fail(w, http.StatusInternalServerError, "Failed to generate recommendations. Please try again.")
		return
	}

	h.respond(w, map[string]any{
		"wardrobe_analysis": result.WardrobeAnalysis,
		"recommendations":   result.Recommendations,
	})
}

type todayPickRequest struct {
	Wardrobe      []wardrobe.Item      `json:"wardrobe"`
	Profile       *wardrobe.Profile    `json:"profile"`
	Weather       json.RawMessage      `json:"weather"`
	WearHistory   []wardrobe.WearEntry `json:"wearHistory"`
	RejectedPicks []json.RawMessage    `json:"rejectedPicks"`
}

// TodayPick picks one outfit for today.
func (h *Handlers) TodayPick(w http.ResponseWriter, r *http.Request) {
	var req todayPickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, http.StatusBadRequest, "Invalid JSON request body")
		return
	}
	if len(req.Wardrobe) == 0 {
		h.fail(w, http.StatusBadRequest, "Wardrobe is required and must be a non-empty array of clothing items.")
		return
	}
	if req.Profile == nil {
		h.fail(w, http.StatusBadRequest, "Profile is required to generate your daily outfit pick.")
		return
	}

	outfit, err := h.stylist.TodayPick(r.Context(), req.Wardrobe, req.Profile, req.Weather, req.WearHistory, req.RejectedPicks)
	if err != nil {
		h.logger.Error("today-pick generation failed", zap.Error(err))
		h.fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respond(w, map[string]any{"outfit": outfit})
}

type occasionRequest struct {
	Wardrobe []wardrobe.Item   `json:"wardrobe"`
	Profile  *wardrobe.Profile `json:"profile"`
	Event    *stylist.Event    `json:"event"`
}

// OccasionStylist generates outfit options for a specific event.
func (h *Handlers) OccasionStylist(w http.ResponseWriter, r *http.Request) {
	var req occasionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, http.StatusBadRequest, "Invalid JSON request body")
		return
	}
	if len(req.Wardrobe) == 0 {
		h.fail(w, http.StatusBadRequest, "Wardrobe is required and must be a non-empty array of clothing items.")
		return
	}
	if req.Profile == nil {
		h.fail(w, http.StatusBadRequest, "Profile is required to generate occasion-specific outfits.")
		return
	}
	if req.Event == nil || req.Event.Type == "" {
		h.fail(w, http.StatusBadRequest, "Event details with at least an event type are required.")
		return
	}

	outfits, err := h.stylist.OccasionOutfits(r.Context(), req.Wardrobe, req.Profile, *req.Event)
	if err != nil {
		h.logger.Error("occasion styling failed", zap.Error(err))
		h.fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respond(w, map[string]any{"outfits": outfits})
}
