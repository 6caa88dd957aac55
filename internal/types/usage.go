package types

// Usage event kinds
const (
	UsageView   = "view"
	UsageSearch = "search"
)

// UsageEvent is one entry in the append-only usage log. Type selects
// which of the remaining fields are meaningful.
type UsageEvent struct {
	Type     string `json:"type"`
	RecipeID string `json:"recipe_id,omitempty"`
	Area     string `json:"area,omitempty"`
	Query    string `json:"query,omitempty"`
	TS       int64  `json:"ts"`
}

// RecipeCount pairs a recipe with its view count for ranking
type RecipeCount struct {
	RecipeID string `json:"recipe_id"`
	Count    int    `json:"count"`
}

// CuisineProgress reports achievement progress for one cuisine
type CuisineProgress struct {
	Cuisine    string `json:"cuisine"`
	Progress   int    `json:"progress"`
	Goal       int    `json:"goal"`
	Unlocked   bool   `json:"unlocked"`
	UnlockedAt int64  `json:"unlocked_at,omitempty"`
}
