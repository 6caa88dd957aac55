// Package inference derives cuisine, meal type, diet tags, difficulty
// and prep-time bucket from canonical recipes. Explicit, schema-valid
// fields always win; keyword inference is the fallback for missing or
// free-form data. Derived tags are never persisted.
package inference

import (
	"strings"

	"github.com/forkcast/backend/internal/normalize"
	"github.com/forkcast/backend/internal/types"
)

// Cuisine returns the recipe's cuisine: the explicit area field verbatim
// when it is a member of the vocabulary, otherwise the first cuisine
// whose keywords hit the text bag, otherwise "".
func Cuisine(r types.Recipe) string {
	area := strings.TrimSpace(r.Area)
	if area != "" && isKnownCuisine(area) {
		return area
	}

	bag := normalize.TextBag(r)
	for _, cuisine := range Cuisines {
		for _, kw := range cuisineKeywords[cuisine] {
			if strings.Contains(bag, kw) {
				return cuisine
			}
		}
	}
	return ""
}

func isKnownCuisine(area string) bool {
	for _, c := range Cuisines {
		if strings.EqualFold(c, area) {
			return true
		}
	}
	return false
}

// MealType returns the recipe's meal type: the explicit category when it
// names a vocabulary entry, otherwise the first keyword hit, otherwise
// "Dinner" for categories containing "main", otherwise "".
// The explicit check requires exact (case-insensitive) equality with a
// vocabulary entry, so a category like "Dinner party" is not taken at
// face value and falls through to the keyword and "main" steps.
func MealType(r types.Recipe) string {
	category := strings.TrimSpace(r.Category)
	for _, mt := range MealTypes {
		if strings.EqualFold(mt, category) {
			return mt
		}
	}

	bag := normalize.TextBag(r)
	for _, mt := range MealTypes {
		for _, kw := range mealTypeKeywords[mt] {
			if strings.Contains(bag, kw) {
				return mt
			}
		}
	}

	if strings.Contains(strings.ToLower(category), "main") {
		return "Dinner"
	}
	return ""
}

// FilterMealTypeMatch reports whether the recipe's text bag contains any
// keyword of the given meal type from the filter keyword table. The
// filter table is wider than the inference table and is OR-combined
// with strict inference by callers to favor recall.
func FilterMealTypeMatch(r types.Recipe, mealType string) bool {
	var kws []string
	for _, mt := range MealTypes {
		if strings.EqualFold(mt, mealType) {
			kws = filterMealTypeKeywords[mt]
			break
		}
	}
	if len(kws) == 0 {
		return false
	}
	bag := normalize.TextBag(r)
	for _, kw := range kws {
		if strings.Contains(bag, kw) {
			return true
		}
	}
	return false
}

// filterMealTypeKeywords intentionally diverges from mealTypeKeywords;
// the two tables are maintained separately.
var filterMealTypeKeywords = map[string][]string{
	"Breakfast": {"breakfast", "pancake", "waffle", "omelette", "omelet", "toast", "porridge", "oat", "granola", "smoothie", "brunch", "egg"},
	"Lunch":     {"lunch", "sandwich", "wrap", "salad", "soup", "bowl"},
	"Dinner":    {"dinner", "roast", "stew", "casserole", "curry", "grill", "bake", "pie", "main"},
	"Snack":     {"snack", "bite", "dip", "chips", "cracker", "popcorn"},
	"Dessert":   {"dessert", "cake", "cookie", "pudding", "ice cream", "sweet", "chocolate", "brownie", "custard"},
}

// Difficulty levels ordered Easy < Medium < Hard
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// Difficulty buckets a recipe by step count
func Difficulty(stepCount int) string {
	switch {
	case stepCount <= 4:
		return DifficultyEasy
	case stepCount <= 7:
		return DifficultyMedium
	default:
		return DifficultyHard
	}
}

// PrepBucket is a coarse prep-time estimate in minutes; PrepUnknown
// means the estimate could not be computed.
type PrepBucket int

const (
	PrepUnknown PrepBucket = 0
	Prep15      PrepBucket = 15
	Prep30      PrepBucket = 30
	Prep60      PrepBucket = 60
)

// PrepBucketFor estimates preparation time from ingredient count. Used
// only when the recipe has no explicit prep-time field. A zero count
// still lands in the 15-minute bucket.
func PrepBucketFor(ingredientCount int) PrepBucket {
	switch {
	case ingredientCount < 0:
		return PrepUnknown
	case ingredientCount <= 5:
		return Prep15
	case ingredientCount <= 8:
		return Prep30
	default:
		return Prep60
	}
}
