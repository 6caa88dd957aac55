package service

import (
	"context"
	"strings"

	"github.com/forkcast/backend/internal/store"
	"github.com/forkcast/backend/internal/types"
)

// PrefsService persists per-user taste preferences.
type PrefsService struct {
	kv store.KV
}

func NewPrefsService(kv store.KV) *PrefsService {
	return &PrefsService{kv: kv}
}

// Get returns the stored preferences, or a zero value when none exist.
func (s *PrefsService) Get(ctx context.Context, userID string) (types.UserPreferences, error) {
	var prefs types.UserPreferences
	if _, err := s.kv.Get(ctx, prefsKey(userID), &prefs); err != nil {
		return types.UserPreferences{}, err
	}
	return prefs, nil
}

// Put replaces the stored preferences wholesale.
func (s *PrefsService) Put(ctx context.Context, userID string, prefs types.UserPreferences) error {
	return s.kv.Set(ctx, prefsKey(userID), prefs)
}

// MatchesDislike reports whether any disliked term appears as a
// case-insensitive substring of the recipe title or an ingredient name.
func MatchesDislike(r types.Recipe, dislikes []string) bool {
	if len(dislikes) == 0 {
		return false
	}
	title := strings.ToLower(r.Title)
	names := make([]string, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		names = append(names, strings.ToLower(ing.Name))
	}
	for _, d := range dislikes {
		term := strings.ToLower(strings.TrimSpace(d))
		if term == "" {
			continue
		}
		if strings.Contains(title, term) {
			return true
		}
		for _, n := range names {
			if strings.Contains(n, term) {
				return true
			}
		}
	}
	return false
}
