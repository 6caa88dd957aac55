package types

// UserPreferences is the single persisted taste record for a user,
// created at onboarding and read on every feed load.
type UserPreferences struct {
	LikedAreas      []string `json:"liked_areas"`
	LikedCategories []string `json:"liked_categories"`
	Diets           []string `json:"diets"`
	Dislikes        []string `json:"dislikes"`
}

// HistoryEntry records a completed recipe
type HistoryEntry struct {
	RecipeID string `json:"recipe_id"`
	TS       int64  `json:"ts"`
}

// ShoppingListItem is one line on the user's shopping list
type ShoppingListItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	RecipeID string `json:"recipe_id,omitempty"`
	Checked  bool   `json:"checked"`
}
