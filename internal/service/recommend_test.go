package service

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/forkcast/backend/internal/store"
	"github.com/forkcast/backend/internal/types"
)

func newRecommendService(cat *fakeCatalog, kv store.KV) *RecommendService {
	return NewRecommendService(cat, kv, zap.NewNop(), rand.New(rand.NewSource(42)))
}

func seedPrefs(t *testing.T, kv store.KV, userID string, prefs types.UserPreferences) {
	t.Helper()
	require.NoError(t, NewPrefsService(kv).Put(context.Background(), userID, prefs))
}

func recipeIDs(recipes []types.Recipe) []string {
	ids := make([]string, 0, len(recipes))
	for _, r := range recipes {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestRecommendedUsesLikedAreas(t *testing.T) {
	cat := &fakeCatalog{recipes: []types.Recipe{
		{ID: "sushi", Title: "Sushi", Area: "Japanese"},
		{ID: "ramen", Title: "Ramen", Area: "Japanese"},
		{ID: "tacos", Title: "Tacos", Area: "Mexican"},
	}}
	kv := store.NewMemoryKV()
	seedPrefs(t, kv, "u1", types.UserPreferences{LikedAreas: []string{"Japanese"}})
	svc := newRecommendService(cat, kv)

	got := svc.Recommended(context.Background(), "u1", 5, nil)

	assert.Len(t, got, 2)
	assert.ElementsMatch(t, []string{"sushi", "ramen"}, recipeIDs(got))
}

func TestRecommendedFallsBackToCategoriesOnFailure(t *testing.T) {
	cat := &fakeCatalog{
		recipes: []types.Recipe{
			{ID: "brownies", Title: "Brownies", Area: "American", Category: "Dessert"},
			{ID: "tacos", Title: "Tacos", Area: "Mexican", Category: "Beef"},
		},
		failAreas: true,
	}
	kv := store.NewMemoryKV()
	seedPrefs(t, kv, "u1", types.UserPreferences{
		LikedAreas:      []string{"American"},
		LikedCategories: []string{"Dessert"},
	})
	svc := newRecommendService(cat, kv)

	got := svc.Recommended(context.Background(), "u1", 5, nil)

	assert.Equal(t, []string{"brownies"}, recipeIDs(got))
}

func TestRecommendedEmptyWhenLikedAreasMatchNothing(t *testing.T) {
	cat := &fakeCatalog{recipes: []types.Recipe{
		{ID: "tacos", Title: "Tacos", Area: "Mexican"},
	}}
	kv := store.NewMemoryKV()
	seedPrefs(t, kv, "u1", types.UserPreferences{LikedAreas: []string{"Thai"}})
	svc := newRecommendService(cat, kv)

	// The area query succeeded; an empty result is final, not a reason
	// to fall through to discovery.
	got := svc.Recommended(context.Background(), "u1", 5, nil)

	assert.Empty(t, got)
	assert.Zero(t, cat.prefixCalls)
}

func TestRecommendedColdStartDiscovery(t *testing.T) {
	cat := &fakeCatalog{recipes: []types.Recipe{
		{ID: "apple-pie", Title: "Apple Pie"},
		{ID: "banana-bread", Title: "Banana Bread"},
		{ID: "carbonara", Title: "Carbonara"},
	}}
	kv := store.NewMemoryKV()
	svc := newRecommendService(cat, kv)

	got := svc.Recommended(context.Background(), "newcomer", 3, nil)

	assert.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), 3)
	seen := make(map[string]bool)
	for _, r := range got {
		assert.False(t, seen[r.ID], "duplicate recipe %s", r.ID)
		seen[r.ID] = true
	}
}

func TestRecommendedTopsUpShortDiscoveryFromScan(t *testing.T) {
	pinned := types.Recipe{ID: "stew", Title: "Stew"}
	cat := &fakeCatalog{
		recipes: []types.Recipe{
			pinned,
			{ID: "pie", Title: "Pie"},
			{ID: "soup", Title: "Soup"},
		},
		// Every probe lands on the same recipe, leaving discovery short.
		prefixOverride: []types.Recipe{pinned},
	}
	svc := newRecommendService(cat, store.NewMemoryKV())

	got := svc.Recommended(context.Background(), "newcomer", 3, nil)

	assert.Len(t, got, 3)
	assert.Contains(t, recipeIDs(got), "stew")
}

func TestRecommendedScanWhenDiscoveryFails(t *testing.T) {
	cat := &fakeCatalog{
		recipes:    []types.Recipe{{ID: "stew", Title: "Stew"}},
		failPrefix: true,
	}
	svc := newRecommendService(cat, store.NewMemoryKV())

	got := svc.Recommended(context.Background(), "newcomer", 3, nil)

	assert.Equal(t, []string{"stew"}, recipeIDs(got))
}

func TestRecommendedNeverErrorsWhenEverythingFails(t *testing.T) {
	cat := &fakeCatalog{
		failAreas:      true,
		failCategories: true,
		failPrefix:     true,
		failScan:       true,
	}
	kv := store.NewMemoryKV()
	seedPrefs(t, kv, "u1", types.UserPreferences{LikedAreas: []string{"Japanese"}})
	svc := newRecommendService(cat, kv)

	got := svc.Recommended(context.Background(), "u1", 4, nil)

	assert.Empty(t, got)
}

func TestRecommendedAppliesExclusionsAndDislikes(t *testing.T) {
	cat := &fakeCatalog{recipes: []types.Recipe{
		{ID: "sushi", Title: "Sushi", Area: "Japanese"},
		{ID: "shrimp-ramen", Title: "Shrimp Ramen", Area: "Japanese",
			Ingredients: []types.Ingredient{{Name: "Shrimp"}}},
		{ID: "katsu", Title: "Katsu", Area: "Japanese"},
	}}
	kv := store.NewMemoryKV()
	seedPrefs(t, kv, "u1", types.UserPreferences{
		LikedAreas: []string{"Japanese"},
		Dislikes:   []string{"shrimp"},
	})
	svc := newRecommendService(cat, kv)

	got := svc.Recommended(context.Background(), "u1", 5, []string{"sushi"})

	assert.Equal(t, []string{"katsu"}, recipeIDs(got))
}

func TestRecommendedTruncatesToRequestedCount(t *testing.T) {
	var recipes []types.Recipe
	for _, id := range []string{"a", "b", "c", "d", "e", "f"} {
		recipes = append(recipes, types.Recipe{ID: id, Title: id, Area: "Italian"})
	}
	cat := &fakeCatalog{recipes: recipes}
	kv := store.NewMemoryKV()
	seedPrefs(t, kv, "u1", types.UserPreferences{LikedAreas: []string{"Italian"}})
	svc := newRecommendService(cat, kv)

	got := svc.Recommended(context.Background(), "u1", 2, nil)

	assert.Len(t, got, 2)
}

func TestMatchesDislike(t *testing.T) {
	r := types.Recipe{
		Title: "Creamy Mushroom Pasta",
		Ingredients: []types.Ingredient{
			{Name: "Mushrooms"},
			{Name: "Heavy Cream"},
		},
	}
	assert.True(t, MatchesDislike(r, []string{"mushroom"}))
	assert.True(t, MatchesDislike(r, []string{"CREAM"}))
	assert.False(t, MatchesDislike(r, []string{"anchovy"}))
	assert.False(t, MatchesDislike(r, nil))
	assert.False(t, MatchesDislike(r, []string{"  "}))
}
