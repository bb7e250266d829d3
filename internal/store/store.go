// Package store implements the local persistence layer for all user state:
// wardrobe, style profile, outfit plan, wear history and the cached daily
// pick. Collections live under fixed string keys on a swappable Backend.
//
// Reads are fail-open: absent data, corrupt data and backend read failures
// all degrade to the documented zero value and never surface an error, so a
// single bad record cannot block the rest of the application. Writes are
// best-effort: failures are logged and swallowed, because losing one save of
// low-stakes data beats failing the caller.
package store

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stylesync-app/stylesync/internal/wardrobe"
)

// Storage keys, one per collection.
const (
	keyWardrobe    = "stylesync_wardrobe"
	keyProfile     = "stylesync_profile"
	keyOutfits     = "stylesync_outfits"
	keyWearHistory = "stylesync_wear_history"
	keyTodayPick   = "stylesync_today_pick"
)

// DefaultWearHistoryDays is the trailing window kept by AddWearEntry. The 90
// days are a policy choice inherited from the original product, not a
// structural requirement.
const DefaultWearHistoryDays = 90

const dateLayout = "2006-01-02"

// TodayPick is the cached daily outfit suggestion, valid only on the
// calendar date it was generated. The outfit payload belongs to the stylist
// service and stays opaque here.
type TodayPick struct {
	Date   string          `json:"date"`
	Outfit json.RawMessage `json:"outfit"`
}

// ItemPatch is a partial update for a wardrobe item. Nil fields are left
// untouched. The item id is immutable and cannot be patched.
type ItemPatch struct {
	Category           *string   `json:"category,omitempty"`
	Subcategory        *string   `json:"subcategory,omitempty"`
	Color              *string   `json:"color,omitempty"`
	Pattern            *string   `json:"pattern,omitempty"`
	FabricGuess        *string   `json:"fabric_guess,omitempty"`
	Formality          *string   `json:"formality,omitempty"`
	Season             *string   `json:"season,omitempty"`
	WeatherSuitability *string   `json:"weather_suitability,omitempty"`
	Fit                *string   `json:"fit,omitempty"`
	Condition          *string   `json:"condition,omitempty"`
	Versatility        *int      `json:"versatility,omitempty"`
	OccasionTags       *[]string `json:"occasion_tags,omitempty"`
	CareTip            *string   `json:"care_tip,omitempty"`
	Description        *string   `json:"description,omitempty"`
	Image              *string   `json:"image,omitempty"`
}

func (p ItemPatch) apply(item *wardrobe.Item) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&item.Category, p.Category)
	set(&item.Subcategory, p.Subcategory)
	set(&item.Color, p.Color)
	set(&item.Pattern, p.Pattern)
	set(&item.FabricGuess, p.FabricGuess)
	set(&item.Formality, p.Formality)
	set(&item.Season, p.Season)
	set(&item.WeatherSuitability, p.WeatherSuitability)
	set(&item.Fit, p.Fit)
	set(&item.Condition, p.Condition)
	set(&item.CareTip, p.CareTip)
	set(&item.Description, p.Description)
	set(&item.Image, p.Image)
	if p.Versatility != nil {
		item.Versatility = *p.Versatility
	}
	if p.OccasionTags != nil {
		item.OccasionTags = *p.OccasionTags
	}
}

// Store persists the five user collections through a Backend. A mutex
// serializes read-modify-write sequences so concurrent callers within one
// process cannot interleave.
type Store struct {
	// WearHistoryDays bounds the trailing window kept by AddWearEntry.
	// Defaults to DefaultWearHistoryDays; override before first use.
	WearHistoryDays int

	mu      sync.Mutex
	backend Backend
	logger  *zap.Logger
	now     func() time.Time
	newID   func() string
}

// New creates a Store over backend. A nil logger disables write-failure
// logging.
func New(backend Backend, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		WearHistoryDays: DefaultWearHistoryDays,
		backend:         backend,
		logger:          logger,
		now:             time.Now,
		newID:           uuid.NewString,
	}
}

// Wardrobe returns the stored wardrobe, or an empty sequence when the
// collection is absent or corrupt.
func (s *Store) Wardrobe() []wardrobe.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wardrobe()
}

// SaveWardrobe replaces the stored wardrobe with items.
func (s *Store) SaveWardrobe(items []wardrobe.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(keyWardrobe, items)
}

// AddItem assigns a fresh id to a copy of item, appends it to the wardrobe
// and persists. It returns nil when the append could not be persisted.
func (s *Store) AddItem(item wardrobe.Item) *wardrobe.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = s.newID()
	items := append(s.wardrobe(), item)
	if !s.put(keyWardrobe, items) {
		return nil
	}
	return &item
}

// RemoveItem deletes the item with the given id and persists the result,
// returning the remaining wardrobe. An unknown id is a no-op.
func (s *Store) RemoveItem(id string) []wardrobe.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.wardrobe()
	filtered := make([]wardrobe.Item, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			filtered = append(filtered, item)
		}
	}
	s.put(keyWardrobe, filtered)
	return filtered
}

// UpdateItem shallow-merges patch onto the item with the given id and
// returns the updated record. It returns nil when no item matches: callers
// must treat that as "not found", not as an error.
func (s *Store) UpdateItem(id string, patch ItemPatch) *wardrobe.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.wardrobe()
	for i := range items {
		if items[i].ID != id {
			continue
		}
		patch.apply(&items[i])
		s.put(keyWardrobe, items)
		updated := items[i]
		return &updated
	}
	return nil
}

// Profile returns the stored style profile, or nil when absent or corrupt.
func (s *Store) Profile() *wardrobe.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	var profile wardrobe.Profile
	if !s.get(keyProfile, &profile) {
		return nil
	}
	return &profile
}

// SaveProfile replaces the stored profile wholesale.
func (s *Store) SaveProfile(profile wardrobe.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(keyProfile, profile)
}

// OutfitPlan returns the stored outfit plan, or nil when absent or corrupt.
// The plan structure belongs to the stylist service and stays opaque here.
func (s *Store) OutfitPlan() json.RawMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	var plan json.RawMessage
	if !s.get(keyOutfits, &plan) {
		return nil
	}
	if string(plan) == "null" {
		return nil
	}
	return plan
}

// SaveOutfitPlan replaces the stored plan wholesale.
func (s *Store) SaveOutfitPlan(plan json.RawMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(keyOutfits, plan)
}

// WearHistory returns the stored history, or an empty sequence when absent
// or corrupt.
func (s *Store) WearHistory() []wardrobe.WearEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wearHistory()
}

// AddWearEntry appends an entry dated today and prunes the history to the
// trailing WearHistoryDays window, inclusive. Pruning runs on every append,
// not on read.
func (s *Store) AddWearEntry(itemIDs []string, outfitName string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entries := append(s.wearHistory(), wardrobe.WearEntry{
		Date:        now.Format(dateLayout),
		OutfitItems: itemIDs,
		OutfitName:  outfitName,
	})

	// ISO dates compare lexicographically. Entries with unparseable dates
	// fall out of the window, matching the original behavior.
	cutoff := now.AddDate(0, 0, -s.WearHistoryDays).Format(dateLayout)
	kept := make([]wardrobe.WearEntry, 0, len(entries))
	for _, e := range entries {
		if _, err := time.Parse(dateLayout, e.Date); err != nil {
			continue
		}
		if e.Date >= cutoff {
			kept = append(kept, e)
		}
	}
	s.put(keyWearHistory, kept)
}

// TodayPick returns the cached pick when its stored date matches today's
// calendar date, otherwise nil. Yesterday's pick is a cache miss, not an
// error.
func (s *Store) TodayPick() *TodayPick {
	s.mu.Lock()
	defer s.mu.Unlock()

	var pick TodayPick
	if !s.get(keyTodayPick, &pick) {
		return nil
	}
	if pick.Date != s.now().Format(dateLayout) {
		return nil
	}
	return &pick
}

// SaveTodayPick caches outfit under today's date, replacing any prior pick.
func (s *Store) SaveTodayPick(outfit json.RawMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(keyTodayPick, TodayPick{
		Date:   s.now().Format(dateLayout),
		Outfit: outfit,
	})
}

func (s *Store) wardrobe() []wardrobe.Item {
	var items []wardrobe.Item
	if !s.get(keyWardrobe, &items) || items == nil {
		return []wardrobe.Item{}
	}
	return items
}

func (s *Store) wearHistory() []wardrobe.WearEntry {
	var entries []wardrobe.WearEntry
	if !s.get(keyWearHistory, &entries) || entries == nil {
		return []wardrobe.WearEntry{}
	}
	return entries
}

// get unmarshals the value under key into v. It reports false on absence,
// corruption or a backend read failure; the caller substitutes its default.
func (s *Store) get(key string, v any) bool {
	raw, ok, err := s.backend.Get(key)
	if err != nil || !ok {
		return false
	}
	return json.Unmarshal([]byte(raw), v) == nil
}

// put serializes v under key, logging and swallowing any failure.
func (s *Store) put(key string, v any) bool {
	data, err := json.Marshal(v)
	if err == nil {
		err = s.backend.Set(key, string(data))
	}
	if err != nil {
		s.logger.Warn("failed to save collection",
			zap.String("key", key),
			zap.Error(err),
		)
		return false
	}
	return true
}
