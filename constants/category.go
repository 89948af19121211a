package constants

import (
	"strings"
)

// Category is a pantry category assigned to parsed receipt items.
type Category string

const (
	Produce     Category = "produce"
	Dairy       Category = "dairy"
	Meat        Category = "meat"
	Seafood     Category = "seafood"
	Grains      Category = "grains"
	CannedGoods Category = "canned-goods"
	Frozen      Category = "frozen"
	Beverages   Category = "beverages"
	Snacks      Category = "snacks"
	Condiments  Category = "condiments"
	Spices      Category = "spices"
	Baking      Category = "baking"
	Other       Category = "other"
)

var allCategories = []Category{
	Produce,
	Dairy,
	Meat,
	Seafood,
	Grains,
	CannedGoods,
	Frozen,
	Beverages,
	Snacks,
	Condiments,
	Spices,
	Baking,
	Other,
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// Canonicalize maps a free-form category label onto the fixed enum.
// Returns Other and false when the label is unknown.
func Canonicalize(input string) (Category, bool) {
	if input == "" {
		return Other, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]Category{
		"vegetables":   Produce,
		"fruit":        Produce,
		"fruits":       Produce,
		"deli":         Meat,
		"fish":         Seafood,
		"bread":        Grains,
		"bakery":       Grains,
		"canned":       CannedGoods,
		"canned goods": CannedGoods,
		"drinks":       Beverages,
		"soda":         Beverages,
		"sauces":       Condiments,
		"seasoning":    Spices,
		"misc":         Other,
		"grocery":      Other,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	// check if it matches any category string
	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return Other, false
}
