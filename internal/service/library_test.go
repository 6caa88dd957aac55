package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forkcast/backend/internal/store"
)

func TestToggleFavorite(t *testing.T) {
	svc := NewLibraryService(store.NewMemoryKV())
	ctx := context.Background()

	on, err := svc.ToggleFavorite(ctx, "u1", "sushi")
	require.NoError(t, err)
	assert.True(t, on)

	on, err = svc.ToggleFavorite(ctx, "u1", "ramen")
	require.NoError(t, err)
	assert.True(t, on)

	ids, err := svc.Favorites(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"ramen", "sushi"}, ids)

	on, err = svc.ToggleFavorite(ctx, "u1", "sushi")
	require.NoError(t, err)
	assert.False(t, on)

	ids, err = svc.Favorites(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"ramen"}, ids)
}

func TestRecordViewAppendsOncePerRecipe(t *testing.T) {
	svc := NewLibraryService(store.NewMemoryKV())
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, svc.RecordView(ctx, "u1", "sushi", now))
	require.NoError(t, svc.RecordView(ctx, "u1", "ramen", now.Add(time.Minute)))
	// A repeat view neither reorders the entry nor rewrites its timestamp.
	require.NoError(t, svc.RecordView(ctx, "u1", "sushi", now.Add(2*time.Minute)))

	entries, err := svc.History(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "ramen", entries[0].RecipeID)
	assert.Equal(t, "sushi", entries[1].RecipeID)
	assert.Equal(t, now.UnixMilli(), entries[1].TS)
}

func TestRecordViewCapsHistory(t *testing.T) {
	svc := NewLibraryService(store.NewMemoryKV())
	ctx := context.Background()
	now := time.Now()

	for i := 0; i < historyCap+20; i++ {
		require.NoError(t, svc.RecordView(ctx, "u1", fmt.Sprintf("r%d", i), now))
	}
	entries, err := svc.History(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, entries, historyCap)
}

func TestShoppingListLifecycle(t *testing.T) {
	svc := NewLibraryService(store.NewMemoryKV())
	ctx := context.Background()

	items, err := svc.AddShoppingItems(ctx, "u1", "sushi", []string{"Rice", "Nori", ""})
	require.NoError(t, err)
	require.Len(t, items, 2)

	// Same unchecked names for the same recipe are not duplicated.
	items, err = svc.AddShoppingItems(ctx, "u1", "sushi", []string{"rice", "Salmon"})
	require.NoError(t, err)
	require.Len(t, items, 3)

	items, err = svc.ToggleShoppingItem(ctx, "u1", items[0].ID)
	require.NoError(t, err)
	assert.True(t, items[0].Checked)

	items, err = svc.ClearCheckedShoppingItems(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 2)

	items, err = svc.RemoveShoppingItem(ctx, "u1", items[0].ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestStepState(t *testing.T) {
	svc := NewLibraryService(store.NewMemoryKV())
	ctx := context.Background()

	done, err := svc.StepState(ctx, "u1", "sushi")
	require.NoError(t, err)
	assert.Empty(t, done)

	require.NoError(t, svc.PutStepState(ctx, "u1", "sushi", []int{0, 2}))
	done, err = svc.StepState(ctx, "u1", "sushi")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, done)

	require.NoError(t, svc.PutStepState(ctx, "u1", "sushi", nil))
	done, err = svc.StepState(ctx, "u1", "sushi")
	require.NoError(t, err)
	assert.Empty(t, done)
}

func TestRecordSearchDedupAndCap(t *testing.T) {
	svc := NewLibraryService(store.NewMemoryKV())
	ctx := context.Background()

	require.NoError(t, svc.RecordSearch(ctx, "u1", "Chicken"))
	require.NoError(t, svc.RecordSearch(ctx, "u1", "pasta"))
	require.NoError(t, svc.RecordSearch(ctx, "u1", "chicken"))

	terms, err := svc.RecentSearches(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"chicken", "pasta"}, terms)

	for i := 0; i < recentSearchCap+5; i++ {
		require.NoError(t, svc.RecordSearch(ctx, "u1", fmt.Sprintf("term-%d", i)))
	}
	terms, err = svc.RecentSearches(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, terms, recentSearchCap)

	require.NoError(t, svc.RecordSearch(ctx, "u1", "   "))
	after, err := svc.RecentSearches(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, terms, after)

	require.NoError(t, svc.ClearRecentSearches(ctx, "u1"))
	terms, err = svc.RecentSearches(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, terms)
}
