// Package filter evaluates user-selected filter sets against derived
// recipe tags. Every set field is an independent AND-ed constraint;
// empty fields and "All …" sentinels impose nothing.
package filter

import (
	"strings"

	"github.com/forkcast/backend/internal/inference"
	"github.com/forkcast/backend/internal/types"
)

// Set is a user-selected filter combination
type Set struct {
	Cuisine    string `json:"cuisine,omitempty" form:"cuisine"`
	MealType   string `json:"meal_type,omitempty" form:"meal_type"`
	Difficulty string `json:"difficulty,omitempty" form:"difficulty"`
	Diet       string `json:"diet,omitempty" form:"diet"`

	// MaxPrepMinutes of 0 means unconstrained
	MaxPrepMinutes int `json:"max_prep_minutes,omitempty" form:"max_prep_minutes"`
}

// Matches reports whether the recipe passes every active constraint
func (s Set) Matches(r types.Recipe) bool {
	if active(s.Cuisine) && !cuisineMatches(r, s.Cuisine) {
		return false
	}
	if active(s.MealType) && !mealTypeMatches(r, s.MealType) {
		return false
	}
	if active(s.Difficulty) && !strings.EqualFold(s.Difficulty, inference.Difficulty(len(r.Steps))) {
		return false
	}
	if active(s.Diet) && !dietMatches(r, s.Diet) {
		return false
	}
	if s.MaxPrepMinutes > 0 && !prepWithin(r, s.MaxPrepMinutes) {
		return false
	}
	return true
}

// Apply narrows a candidate list to the recipes passing the set
func (s Set) Apply(recipes []types.Recipe) []types.Recipe {
	out := make([]types.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if s.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// active reports whether a filter value constrains anything; "All
// cuisines" style sentinels from option lists do not.
func active(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && !strings.HasPrefix(strings.ToLower(v), "all")
}

func cuisineMatches(r types.Recipe, want string) bool {
	got := inference.Cuisine(r)
	if got == "" {
		got = r.Area
	}
	return strings.EqualFold(want, got)
}

// mealTypeMatches accepts either a strict inference match or a hit in
// the wider filter keyword table, trading precision for recall.
func mealTypeMatches(r types.Recipe, want string) bool {
	if strings.EqualFold(want, inference.MealType(r)) {
		return true
	}
	return inference.FilterMealTypeMatch(r, want)
}

func dietMatches(r types.Recipe, want string) bool {
	for _, tag := range inference.DietTags(r) {
		if tagEqual(tag, want) {
			return true
		}
	}
	return false
}

// tagEqual compares diet tags ignoring case and the hyphen/space
// spelling difference between the tag vocabulary ("Gluten-Free") and
// onboarding option labels ("Gluten free")
func tagEqual(a, b string) bool {
	norm := func(s string) string {
		s = strings.ToLower(s)
		s = strings.ReplaceAll(s, "-", "")
		s = strings.ReplaceAll(s, " ", "")
		return s
	}
	return norm(a) == norm(b)
}

func prepWithin(r types.Recipe, maxMinutes int) bool {
	if r.PrepMinutes > 0 {
		return r.PrepMinutes <= maxMinutes
	}
	bucket := inference.PrepBucketFor(len(r.Ingredients))
	if bucket == inference.PrepUnknown {
		return false
	}
	return int(bucket) <= maxMinutes
}
