package api

import (
	"github.com/forkcast/backend/internal/inference"
	"github.com/forkcast/backend/internal/types"
)

// RecipeView is a recipe enriched with the derived tags the clients
// render as chips and filter chips.
type RecipeView struct {
	types.Recipe

	Cuisine    string   `json:"cuisine,omitempty"`
	MealType   string   `json:"meal_type,omitempty"`
	DietTags   []string `json:"diet_tags"`
	Difficulty string   `json:"difficulty"`
	PrepBucket int      `json:"prep_bucket_minutes,omitempty"`
}

func viewOf(r types.Recipe) RecipeView {
	return RecipeView{
		Recipe:     r,
		Cuisine:    inference.Cuisine(r),
		MealType:   inference.MealType(r),
		DietTags:   inference.DietTags(r),
		Difficulty: inference.Difficulty(len(r.Steps)),
		PrepBucket: int(inference.PrepBucketFor(len(r.Ingredients))),
	}
}

func viewsOf(recipes []types.Recipe) []RecipeView {
	out := make([]RecipeView, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, viewOf(r))
	}
	return out
}
