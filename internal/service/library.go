package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/forkcast/backend/internal/store"
	"github.com/forkcast/backend/internal/types"
)

const (
	historyCap      = 500
	recentSearchCap = 10
)

// LibraryService manages per-user saved state: favorites, viewing
// history, the shopping list, step progress and recent searches.
type LibraryService struct {
	kv store.KV
}

func NewLibraryService(kv store.KV) *LibraryService {
	return &LibraryService{kv: kv}
}

// Favorites returns the user's favorite recipe IDs, newest first.
func (s *LibraryService) Favorites(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	if _, err := s.kv.Get(ctx, favoritesKey(userID), &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// ToggleFavorite flips membership of recipeID in the favorites list and
// returns the resulting state (true when the recipe is now a favorite).
func (s *LibraryService) ToggleFavorite(ctx context.Context, userID, recipeID string) (bool, error) {
	ids, err := s.Favorites(ctx, userID)
	if err != nil {
		return false, err
	}
	next := make([]string, 0, len(ids)+1)
	removed := false
	for _, id := range ids {
		if id == recipeID {
			removed = true
			continue
		}
		next = append(next, id)
	}
	if !removed {
		next = append([]string{recipeID}, next...)
	}
	if err := s.kv.Set(ctx, favoritesKey(userID), next); err != nil {
		return false, err
	}
	return !removed, nil
}

// History returns the user's viewing history, newest first.
func (s *LibraryService) History(ctx context.Context, userID string) ([]types.HistoryEntry, error) {
	var entries []types.HistoryEntry
	if _, err := s.kv.Get(ctx, historyKey(userID), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// RecordView prepends recipeID to the history. A recipe already present
// keeps its position and timestamp; the call is then a no-op.
func (s *LibraryService) RecordView(ctx context.Context, userID, recipeID string, now time.Time) error {
	entries, err := s.History(ctx, userID)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.RecipeID == recipeID {
			return nil
		}
	}
	next := make([]types.HistoryEntry, 0, len(entries)+1)
	next = append(next, types.HistoryEntry{RecipeID: recipeID, TS: now.UnixMilli()})
	next = append(next, entries...)
	if len(next) > historyCap {
		next = next[:historyCap]
	}
	return s.kv.Set(ctx, historyKey(userID), next)
}

// ShoppingList returns the user's shopping list items.
func (s *LibraryService) ShoppingList(ctx context.Context, userID string) ([]types.ShoppingListItem, error) {
	var items []types.ShoppingListItem
	if _, err := s.kv.Get(ctx, shoppingKey(userID), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddShoppingItems appends the named ingredients, skipping names that
// are already present unchecked for the same recipe.
func (s *LibraryService) AddShoppingItems(ctx context.Context, userID, recipeID string, names []string) ([]types.ShoppingListItem, error) {
	items, err := s.ShoppingList(ctx, userID)
	if err != nil {
		return nil, err
	}
	existing := make(map[string]bool, len(items))
	for _, it := range items {
		if it.RecipeID == recipeID && !it.Checked {
			existing[strings.ToLower(it.Name)] = true
		}
	}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || existing[strings.ToLower(name)] {
			continue
		}
		items = append(items, types.ShoppingListItem{
			ID:       uuid.NewString(),
			Name:     name,
			RecipeID: recipeID,
		})
		existing[strings.ToLower(name)] = true
	}
	if err := s.kv.Set(ctx, shoppingKey(userID), items); err != nil {
		return nil, err
	}
	return items, nil
}

// ToggleShoppingItem flips the checked state of a single item.
func (s *LibraryService) ToggleShoppingItem(ctx context.Context, userID, itemID string) ([]types.ShoppingListItem, error) {
	items, err := s.ShoppingList(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == itemID {
			items[i].Checked = !items[i].Checked
			break
		}
	}
	if err := s.kv.Set(ctx, shoppingKey(userID), items); err != nil {
		return nil, err
	}
	return items, nil
}

// RemoveShoppingItem deletes a single item by ID.
func (s *LibraryService) RemoveShoppingItem(ctx context.Context, userID, itemID string) ([]types.ShoppingListItem, error) {
	items, err := s.ShoppingList(ctx, userID)
	if err != nil {
		return nil, err
	}
	next := items[:0]
	for _, it := range items {
		if it.ID != itemID {
			next = append(next, it)
		}
	}
	if err := s.kv.Set(ctx, shoppingKey(userID), next); err != nil {
		return nil, err
	}
	return next, nil
}

// ClearCheckedShoppingItems removes every checked item.
func (s *LibraryService) ClearCheckedShoppingItems(ctx context.Context, userID string) ([]types.ShoppingListItem, error) {
	items, err := s.ShoppingList(ctx, userID)
	if err != nil {
		return nil, err
	}
	next := items[:0]
	for _, it := range items {
		if !it.Checked {
			next = append(next, it)
		}
	}
	if err := s.kv.Set(ctx, shoppingKey(userID), next); err != nil {
		return nil, err
	}
	return next, nil
}

// StepState returns the set of completed step indexes for a recipe.
func (s *LibraryService) StepState(ctx context.Context, userID, recipeID string) ([]int, error) {
	var done []int
	if _, err := s.kv.Get(ctx, stepStateKey(userID, recipeID), &done); err != nil {
		return nil, err
	}
	return done, nil
}

// PutStepState replaces the completed step indexes for a recipe. An
// empty set clears the stored value.
func (s *LibraryService) PutStepState(ctx context.Context, userID, recipeID string, done []int) error {
	if len(done) == 0 {
		return s.kv.Delete(ctx, stepStateKey(userID, recipeID))
	}
	return s.kv.Set(ctx, stepStateKey(userID, recipeID), done)
}

// RecentSearches returns the user's recent search terms, newest first.
func (s *LibraryService) RecentSearches(ctx context.Context, userID string) ([]string, error) {
	var terms []string
	if _, err := s.kv.Get(ctx, recentKey(userID), &terms); err != nil {
		return nil, err
	}
	return terms, nil
}

// RecordSearch moves term to the front of the recent list, deduplicating
// case-insensitively and trimming to the cap. Blank terms are ignored.
func (s *LibraryService) RecordSearch(ctx context.Context, userID, term string) error {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}
	terms, err := s.RecentSearches(ctx, userID)
	if err != nil {
		return err
	}
	next := make([]string, 0, len(terms)+1)
	next = append(next, term)
	for _, t := range terms {
		if strings.EqualFold(t, term) {
			continue
		}
		next = append(next, t)
	}
	if len(next) > recentSearchCap {
		next = next[:recentSearchCap]
	}
	return s.kv.Set(ctx, recentKey(userID), next)
}

// ClearRecentSearches drops the stored recent search terms.
func (s *LibraryService) ClearRecentSearches(ctx context.Context, userID string) error {
	return s.kv.Delete(ctx, recentKey(userID))
}
