package classify

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stylesync-app/stylesync/internal/wardrobe"
)

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"top", "top"},
		{"ethnic_set", "ethnic_set"},
		{"shirt", "top"},
		{"T-Shirt", "top"},
		{"Kurta", "ethnic_top"},
		{"JEANS", "bottom"},
		{"saree", "ethnic_set"},
		{"hoodie", "outerwear"},
		{"kolhapuri", "footwear"},
		{"dupatta", "accessory"},
		{"socks", "innerwear"},
		{"spaceship", "accessory"},
		{"", "accessory"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeCategory(tt.input); got != tt.want {
				t.Errorf("NormalizeCategory(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMissingField(t *testing.T) {
	complete := wardrobe.Classification{
		Category:    "top",
		Subcategory: "oxford shirt",
		Color:       "white",
		Pattern:     "solid",
		FabricGuess: "pure cotton",
		Formality:   "smart_casual",
		Season:      "all_season",
		Description: "Crisp white oxford shirt",
	}
	if got := missingField(&complete); got != "" {
		t.Errorf("missingField(complete) = %q, want empty", got)
	}

	tests := []struct {
		clear func(*wardrobe.Classification)
		want  string
	}{
		{func(c *wardrobe.Classification) { c.Category = "" }, "category"},
		{func(c *wardrobe.Classification) { c.Pattern = "" }, "pattern"},
		{func(c *wardrobe.Classification) { c.FabricGuess = "" }, "fabric_guess"},
		{func(c *wardrobe.Classification) { c.Description = "" }, "description"},
	}
	for _, tt := range tests {
		c := complete
		tt.clear(&c)
		if got := missingField(&c); got != tt.want {
			t.Errorf("missingField = %q, want %q", got, tt.want)
		}
	}
}

func TestFallthroughWorthy(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{fmt.Errorf("%w: pattern", errMissingField), true},
		{errors.New("googleapi: Error 429: quota exceeded"), true},
		{errors.New("daily quota exhausted"), true},
		{errors.New("invalid API key"), false},
		{errors.New("context deadline exceeded"), false},
	}
	for _, tt := range tests {
		if got := fallthroughWorthy(tt.err); got != tt.want {
			t.Errorf("fallthroughWorthy(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
