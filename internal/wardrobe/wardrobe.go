// Package wardrobe defines the clothing records shared by the persistence
// store, the stylist prompts and the HTTP API.
package wardrobe

// Garment categories recognized by the classifier.
var Categories = []string{
	"top",
	"bottom",
	"outerwear",
	"footwear",
	"accessory",
	"innerwear",
	"ethnic_top",
	"ethnic_bottom",
	"ethnic_set",
}

// Classification holds the attributes the vision model derives from a photo
// of one clothing item.
type Classification struct {
	Category           string   `json:"category"`
	Subcategory        string   `json:"subcategory"`
	Color              string   `json:"color"`
	Pattern            string   `json:"pattern"`
	FabricGuess        string   `json:"fabric_guess"`
	Formality          string   `json:"formality"`
	Season             string   `json:"season"`
	WeatherSuitability string   `json:"weather_suitability"`
	Fit                string   `json:"fit,omitempty"`
	Condition          string   `json:"condition,omitempty"`
	Versatility        int      `json:"versatility,omitempty"`
	OccasionTags       []string `json:"occasion_tags,omitempty"`
	CareTip            string   `json:"care_tip,omitempty"`
	Description        string   `json:"description"`
}

// Item is one wardrobe entry: a classification plus the id assigned by the
// store and an optional embedded photo (data URI). The id is immutable after
// creation and unique within the wardrobe.
type Item struct {
	ID string `json:"id"`
	Classification
	Image string `json:"image,omitempty"`
}

// Profile is the singleton style profile captured during onboarding. It is
// replaced wholesale on each save.
type Profile struct {
	Gender   string            `json:"gender"`
	Location string            `json:"location"`
	Styles   []string          `json:"styles"`
	Budget   string            `json:"budget"`
	Schedule map[string]string `json:"schedule"` // weekday name -> occasion
}

// WearEntry records that a set of items was worn together on a calendar
// date. Items are referenced by id only; deleting an item does not rewrite
// history.
type WearEntry struct {
	Date        string   `json:"date"` // 2006-01-02
	OutfitItems []string `json:"outfit_items"`
	OutfitName  string   `json:"outfit_name"`
}
