package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/stylesync-app/stylesync/internal/wardrobe"
)

// failingBackend simulates a broken storage medium.
type failingBackend struct {
	readErr  error
	writeErr error
	values   map[string]string
}

func (b *failingBackend) Get(key string) (string, bool, error) {
	if b.readErr != nil {
		return "", false, b.readErr
	}
	v, ok := b.values[key]
	return v, ok, nil
}

func (b *failingBackend) Set(key, value string) error {
	if b.writeErr != nil {
		return b.writeErr
	}
	if b.values == nil {
		b.values = make(map[string]string)
	}
	b.values[key] = value
	return nil
}

func newTestStore(t *testing.T) (*Store, *MemBackend) {
	t.Helper()
	backend := NewMemBackend()
	s := New(backend, nil)
	i := 0
	s.newID = func() string {
		i++
		return fmt.Sprintf("id-%d", i)
	}
	return s, backend
}

func item(color string) wardrobe.Item {
	return wardrobe.Item{
		Classification: wardrobe.Classification{
			Category:    "top",
			Subcategory: "t-shirt",
			Color:       color,
			Description: color + " t-shirt",
		},
	}
}

func TestWardrobeRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)

	items := []wardrobe.Item{
		{ID: "a", Classification: wardrobe.Classification{Category: "top", Color: "navy"}},
		{ID: "b", Classification: wardrobe.Classification{Category: "footwear", Color: "white", OccasionTags: []string{"office"}}},
	}
	s.SaveWardrobe(items)

	got := s.Wardrobe()
	if !reflect.DeepEqual(got, items) {
		t.Errorf("Wardrobe() = %+v, want %+v", got, items)
	}
}

func TestGettersDefaultOnCorruptData(t *testing.T) {
	backend := NewMemBackend()
	for _, key := range []string{keyWardrobe, keyProfile, keyOutfits, keyWearHistory, keyTodayPick} {
		if err := backend.Set(key, "{not json"); err != nil {
			t.Fatal(err)
		}
	}
	s := New(backend, nil)

	if got := s.Wardrobe(); len(got) != 0 {
		t.Errorf("Wardrobe() on corrupt data = %v, want empty", got)
	}
	if got := s.Profile(); got != nil {
		t.Errorf("Profile() on corrupt data = %v, want nil", got)
	}
	if got := s.OutfitPlan(); got != nil {
		t.Errorf("OutfitPlan() on corrupt data = %v, want nil", got)
	}
	if got := s.WearHistory(); len(got) != 0 {
		t.Errorf("WearHistory() on corrupt data = %v, want empty", got)
	}
	if got := s.TodayPick(); got != nil {
		t.Errorf("TodayPick() on corrupt data = %v, want nil", got)
	}
}

func TestGettersDefaultOnBackendFailure(t *testing.T) {
	s := New(&failingBackend{readErr: errors.New("disk on fire")}, nil)

	if got := s.Wardrobe(); len(got) != 0 {
		t.Errorf("Wardrobe() on backend failure = %v, want empty", got)
	}
	if got := s.Profile(); got != nil {
		t.Errorf("Profile() on backend failure = %v, want nil", got)
	}
}

func TestAddItem(t *testing.T) {
	s, _ := newTestStore(t)

	first := s.AddItem(item("navy"))
	if first == nil {
		t.Fatal("AddItem returned nil")
	}
	if first.ID == "" {
		t.Error("AddItem returned record without id")
	}
	if first.Color != "navy" || first.Category != "top" {
		t.Errorf("AddItem changed non-id fields: %+v", first)
	}

	second := s.AddItem(item("white"))
	if second == nil {
		t.Fatal("AddItem returned nil")
	}
	if second.ID == first.ID {
		t.Errorf("ids not unique: %q", second.ID)
	}

	got := s.Wardrobe()
	if len(got) != 2 {
		t.Fatalf("wardrobe has %d items, want 2", len(got))
	}
	if got[0].ID != first.ID || got[1].ID != second.ID {
		t.Errorf("append order lost: %q, %q", got[0].ID, got[1].ID)
	}
}

func TestAddItemReturnsNilOnPersistFailure(t *testing.T) {
	s := New(&failingBackend{writeErr: errors.New("disk full")}, nil)
	if got := s.AddItem(item("navy")); got != nil {
		t.Errorf("AddItem with failing backend = %+v, want nil", got)
	}
}

func TestRemoveItem(t *testing.T) {
	s, _ := newTestStore(t)
	a := s.AddItem(item("navy"))
	b := s.AddItem(item("white"))

	got := s.RemoveItem(a.ID)
	if len(got) != 1 || got[0].ID != b.ID {
		t.Errorf("RemoveItem(%q) = %+v, want only %q", a.ID, got, b.ID)
	}
	if stored := s.Wardrobe(); len(stored) != 1 {
		t.Errorf("removal not persisted: %+v", stored)
	}
}

func TestRemoveItemUnknownIDIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddItem(item("navy"))
	before := s.Wardrobe()

	got := s.RemoveItem("no-such-id")
	if !reflect.DeepEqual(got, before) {
		t.Errorf("RemoveItem(unknown) = %+v, want unchanged %+v", got, before)
	}
}

func TestUpdateItem(t *testing.T) {
	s, _ := newTestStore(t)
	added := s.AddItem(item("navy"))

	color := "midnight blue"
	versatility := 4
	updated := s.UpdateItem(added.ID, ItemPatch{Color: &color, Versatility: &versatility})
	if updated == nil {
		t.Fatal("UpdateItem returned nil for existing id")
	}
	if updated.Color != "midnight blue" || updated.Versatility != 4 {
		t.Errorf("patch not applied: %+v", updated)
	}
	if updated.Category != "top" || updated.Subcategory != "t-shirt" {
		t.Errorf("unpatched fields changed: %+v", updated)
	}
	if updated.ID != added.ID {
		t.Errorf("id changed from %q to %q", added.ID, updated.ID)
	}

	stored := s.Wardrobe()
	if stored[0].Color != "midnight blue" {
		t.Errorf("update not persisted: %+v", stored[0])
	}
}

func TestUpdateItemUnknownIDReturnsNil(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddItem(item("navy"))
	before := s.Wardrobe()

	color := "red"
	if got := s.UpdateItem("no-such-id", ItemPatch{Color: &color}); got != nil {
		t.Errorf("UpdateItem(unknown) = %+v, want nil", got)
	}
	if after := s.Wardrobe(); !reflect.DeepEqual(after, before) {
		t.Errorf("UpdateItem(unknown) modified stored wardrobe: %+v", after)
	}
}

func TestProfileRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)

	if got := s.Profile(); got != nil {
		t.Errorf("Profile() when absent = %+v, want nil", got)
	}

	profile := wardrobe.Profile{
		Gender:   "male",
		Location: "Mumbai",
		Styles:   []string{"smart_casual", "ethnic"},
		Budget:   "mid_range",
		Schedule: map[string]string{"monday": "office", "sunday": "casual_outing"},
	}
	s.SaveProfile(profile)

	got := s.Profile()
	if got == nil || !reflect.DeepEqual(*got, profile) {
		t.Errorf("Profile() = %+v, want %+v", got, profile)
	}
}

func TestOutfitPlanRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)

	if got := s.OutfitPlan(); got != nil {
		t.Errorf("OutfitPlan() when absent = %s, want nil", got)
	}

	plan := json.RawMessage(`[{"outfit_name":"The Monday Minimalist","vibe":"office_ready"}]`)
	s.SaveOutfitPlan(plan)

	got := s.OutfitPlan()
	if string(got) != string(plan) {
		t.Errorf("OutfitPlan() = %s, want %s", got, plan)
	}
}

func TestAddWearEntryPrunesWindow(t *testing.T) {
	s, backend := newTestStore(t)
	now := time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	old := []wardrobe.WearEntry{
		{Date: "2025-01-01", OutfitItems: []string{"a"}, OutfitName: "ancient"},
		{Date: now.AddDate(0, 0, -s.WearHistoryDays).Format(dateLayout), OutfitItems: []string{"b"}, OutfitName: "boundary"},
		{Date: now.AddDate(0, 0, -s.WearHistoryDays-1).Format(dateLayout), OutfitItems: []string{"c"}, OutfitName: "just outside"},
		{Date: "not-a-date", OutfitItems: []string{"d"}, OutfitName: "garbage"},
		{Date: now.AddDate(0, 0, -1).Format(dateLayout), OutfitItems: []string{"e"}, OutfitName: "yesterday"},
	}
	data, _ := json.Marshal(old)
	if err := backend.Set(keyWearHistory, string(data)); err != nil {
		t.Fatal(err)
	}

	s.AddWearEntry([]string{"x", "y"}, "fresh")

	got := s.WearHistory()
	names := make([]string, len(got))
	for i, e := range got {
		names[i] = e.OutfitName
	}
	want := []string{"boundary", "yesterday", "fresh"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("history after append = %v, want %v", names, want)
	}

	cutoff := now.AddDate(0, 0, -s.WearHistoryDays).Format(dateLayout)
	for _, e := range got {
		if e.Date < cutoff {
			t.Errorf("entry %q dated %s is outside the %d-day window", e.OutfitName, e.Date, s.WearHistoryDays)
		}
	}

	last := got[len(got)-1]
	if last.Date != now.Format(dateLayout) {
		t.Errorf("new entry dated %s, want %s", last.Date, now.Format(dateLayout))
	}
	if !reflect.DeepEqual(last.OutfitItems, []string{"x", "y"}) || last.OutfitName != "fresh" {
		t.Errorf("new entry = %+v", last)
	}
}

func TestTodayPick(t *testing.T) {
	s, _ := newTestStore(t)
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	if got := s.TodayPick(); got != nil {
		t.Errorf("TodayPick() when absent = %+v, want nil", got)
	}

	outfit := json.RawMessage(`{"outfit_name":"Rainy Day Ready"}`)
	s.SaveTodayPick(outfit)

	got := s.TodayPick()
	if got == nil {
		t.Fatal("TodayPick() = nil right after save")
	}
	if got.Date != "2026-08-28" {
		t.Errorf("pick date = %q, want 2026-08-28", got.Date)
	}
	if string(got.Outfit) != string(outfit) {
		t.Errorf("pick outfit = %s, want %s", got.Outfit, outfit)
	}

	// The same record is a cache miss the next day.
	s.now = func() time.Time { return now.AddDate(0, 0, 1) }
	if got := s.TodayPick(); got != nil {
		t.Errorf("TodayPick() on the next day = %+v, want nil", got)
	}
}

func TestWritesSwallowBackendFailure(t *testing.T) {
	s := New(&failingBackend{writeErr: errors.New("disk full")}, nil)

	// None of these may panic or surface the error.
	s.SaveWardrobe([]wardrobe.Item{item("navy")})
	s.SaveProfile(wardrobe.Profile{Location: "Delhi"})
	s.SaveOutfitPlan(json.RawMessage(`[]`))
	s.AddWearEntry([]string{"a"}, "outfit")
	s.SaveTodayPick(json.RawMessage(`{}`))
}
