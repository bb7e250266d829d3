package stylist

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/stylesync-app/stylesync/internal/wardrobe"
)

// Filters narrow outfit generation. Zero values fall back to the most
// permissive setting.
type Filters struct {
	Occasion string `json:"occasion"`
	Season   string `json:"season"`
	Mood     string `json:"mood"`
}

func (f Filters) withDefaults() Filters {
	if f.Occasion == "" {
		f.Occasion = "any"
	}
	if f.Season == "" {
		f.Season = "all_season"
	}
	if f.Mood == "" {
		f.Mood = "versatile"
	}
	return f
}

// Event describes the occasion the user is dressing for.
type Event struct {
	Type    string         `json:"type"`
	Details map[string]any `json:"details,omitempty"`
}

// OutfitIdeas generates outfit combinations from the user's wardrobe,
// optionally narrowed by filters. The result is the model's JSON array of
// outfit objects, passed through untouched.
func (c *Client) OutfitIdeas(ctx context.Context, items []wardrobe.Item, profile *wardrobe.Profile, filters Filters) (json.RawMessage, error) {
	filters = filters.withDefaults()

	payload, err := json.Marshal(map[string]any{
		"wardrobe": wardrobe.Summarize(items),
		"profile":  profile,
		"filters":  filters,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding outfit request: %w", err)
	}

	return c.complete(ctx, outfitIdeasPrompt(filters), string(payload))
}

// Recommendations analyzes the wardrobe for gaps and suggests items to buy.
func (c *Client) Recommendations(ctx context.Context, items []wardrobe.Item, profile *wardrobe.Profile) (json.RawMessage, error) {
	payload, err := json.Marshal(map[string]any{
		"wardrobe": wardrobe.Summarize(items),
		"profile":  profile,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding recommendation request: %w", err)
	}

	return c.complete(ctx, recommendationsPrompt, string(payload))
}

// TodayPick selects one outfit for today, steering away from items worn in
// the last RecentWearDays and from picks the user already rejected today.
// weather may be nil when no forecast is available.
func (c *Client) TodayPick(ctx context.Context, items []wardrobe.Item, profile *wardrobe.Profile, weather json.RawMessage, history []wardrobe.WearEntry, rejected []json.RawMessage) (json.RawMessage, error) {
	payload, err := json.Marshal(map[string]any{
		"wardrobe":               wardrobe.Summarize(items),
		"profile":                profile,
		"weather":                weather,
		"recently_worn_item_ids": recentlyWorn(history, time.Now(), RecentWearDays),
		"rejected_picks":         rejected,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding today-pick request: %w", err)
	}

	return c.complete(ctx, todayPickPrompt, string(payload))
}

// OccasionOutfits generates a ranked set of outfit options for a specific
// event.
func (c *Client) OccasionOutfits(ctx context.Context, items []wardrobe.Item, profile *wardrobe.Profile, event Event) (json.RawMessage, error) {
	payload, err := json.Marshal(map[string]any{
		"wardrobe": wardrobe.Summarize(items),
		"profile":  profile,
		"event":    event,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding occasion request: %w", err)
	}

	return c.complete(ctx, occasionPrompt, string(payload))
}

// recentlyWorn collects the distinct item IDs worn within the last `days`
// days. Entries with unparseable dates are skipped.
func recentlyWorn(history []wardrobe.WearEntry, now time.Time, days int) []string {
	// Compare whole calendar days so an entry from exactly `days` days ago
	// still counts as recent.
	y, m, d := now.AddDate(0, 0, -days).Date()
	cutoff := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	seen := make(map[string]struct{})
	ids := []string{}
	for _, entry := range history {
		worn, err := time.ParseInLocation("2006-01-02", entry.Date, now.Location())
		if err != nil || worn.Before(cutoff) {
			continue
		}
		for _, id := range entry.OutfitItems {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}
