package classify

import (
	"strings"

	"github.com/stylesync-app/stylesync/internal/wardrobe"
)

// categorySynonyms maps common model answers onto the closed category set.
var categorySynonyms = map[string]string{
	"shirt": "top", "tshirt": "top", "t-shirt": "top", "blouse": "top",
	"kurta": "ethnic_top", "kurti": "ethnic_top",
	"pants": "bottom", "jeans": "bottom", "shorts": "bottom",
	"skirt": "bottom", "trousers": "bottom", "chinos": "bottom",
	"churidar": "ethnic_bottom", "salwar": "ethnic_bottom",
	"palazzo": "ethnic_bottom", "patiala": "ethnic_bottom",
	"dhoti": "ethnic_bottom", "leggings": "ethnic_bottom",
	"saree": "ethnic_set", "lehenga": "ethnic_set",
	"sherwani": "ethnic_set", "anarkali": "ethnic_set",
	"jacket": "outerwear", "coat": "outerwear", "hoodie": "outerwear",
	"sweater": "outerwear", "blazer": "outerwear",
	"nehru_jacket": "outerwear", "waistcoat": "outerwear",
	"shoes": "footwear", "boots": "footwear", "sandals": "footwear",
	"sneakers": "footwear", "chappal": "footwear", "juttis": "footwear",
	"mojari": "footwear", "kolhapuri": "footwear", "floaters": "footwear",
	"watch": "accessory", "hat": "accessory", "bag": "accessory",
	"belt": "accessory", "dupatta": "accessory", "stole": "accessory",
	"sunglasses": "accessory",
	"underwear": "innerwear", "socks": "innerwear", "bra": "innerwear",
	"vest": "innerwear",
}

// NormalizeCategory coerces a model-supplied category onto the closed
// category set, mapping common synonyms and falling back to "accessory" for
// anything unrecognized.
func NormalizeCategory(category string) string {
	for _, c := range wardrobe.Categories {
		if category == c {
			return category
		}
	}
	if mapped, ok := categorySynonyms[strings.ToLower(category)]; ok {
		return mapped
	}
	return "accessory"
}
