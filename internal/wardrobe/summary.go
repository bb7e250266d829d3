package wardrobe

// ItemSummary is the projection of an Item that accompanies every
// text-generation prompt. It carries the classification-relevant fields
// only: the embedded image payload never leaves the process inside a
// prompt, which also keeps the outbound request small.
type ItemSummary struct {
	ID                 string   `json:"id"`
	Category           string   `json:"category"`
	Subcategory        string   `json:"subcategory"`
	Color              string   `json:"color"`
	Pattern            string   `json:"pattern"`
	FabricGuess        string   `json:"fabric_guess"`
	Formality          string   `json:"formality"`
	Season             string   `json:"season"`
	WeatherSuitability string   `json:"weather_suitability"`
	OccasionTags       []string `json:"occasion_tags"`
	Description        string   `json:"description"`
}

// Summarize projects items down to their classification-relevant fields,
// preserving order and length.
func Summarize(items []Item) []ItemSummary {
	summaries := make([]ItemSummary, len(items))
	for i, item := range items {
		summaries[i] = ItemSummary{
			ID:                 item.ID,
			Category:           item.Category,
			Subcategory:        item.Subcategory,
			Color:              item.Color,
			Pattern:            item.Pattern,
			FabricGuess:        item.FabricGuess,
			Formality:          item.Formality,
			Season:             item.Season,
			WeatherSuitability: item.WeatherSuitability,
			OccasionTags:       item.OccasionTags,
			Description:        item.Description,
		}
	}
	return summaries
}
