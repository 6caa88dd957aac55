package service

import (
	"context"
	"sort"
	"strings"

	"github.com/forkcast/backend/internal/catalog"
	"github.com/forkcast/backend/internal/types"
)

// fakeCatalog serves preloaded recipes from memory. Individual
// operations can be forced to fail to exercise fallback paths.
type fakeCatalog struct {
	recipes []types.Recipe

	failAreas      bool
	failCategories bool
	failPrefix     bool
	failScan       bool

	// prefixOverride, when set, is returned by every TitlePrefix call
	// regardless of the prefix.
	prefixOverride []types.Recipe

	prefixCalls int
}

func (f *fakeCatalog) ByID(ctx context.Context, id string) (*types.Recipe, error) {
	for i := range f.recipes {
		if f.recipes[i].ID == id {
			r := f.recipes[i]
			return &r, nil
		}
	}
	return nil, catalog.ErrNotFound
}

func (f *fakeCatalog) TitlePrefix(ctx context.Context, prefix string, limit int) ([]types.Recipe, error) {
	f.prefixCalls++
	if f.failPrefix {
		return nil, context.DeadlineExceeded
	}
	if f.prefixOverride != nil {
		return f.prefixOverride, nil
	}
	var out []types.Recipe
	for _, r := range f.recipes {
		if strings.HasPrefix(strings.ToLower(r.Title), prefix) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeCatalog) ByAreas(ctx context.Context, areas []string, limit int) ([]types.Recipe, error) {
	if f.failAreas {
		return nil, context.DeadlineExceeded
	}
	return f.byField(func(r types.Recipe) string { return r.Area }, areas, limit), nil
}

func (f *fakeCatalog) ByCategories(ctx context.Context, categories []string, limit int) ([]types.Recipe, error) {
	if f.failCategories {
		return nil, context.DeadlineExceeded
	}
	return f.byField(func(r types.Recipe) string { return r.Category }, categories, limit), nil
}

func (f *fakeCatalog) Scan(ctx context.Context, limit int) ([]types.Recipe, error) {
	if f.failScan {
		return nil, context.DeadlineExceeded
	}
	out := append([]types.Recipe(nil), f.recipes...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeCatalog) byField(field func(types.Recipe) string, values []string, limit int) []types.Recipe {
	want := make(map[string]bool, len(values))
	for _, v := range values {
		want[v] = true
	}
	var out []types.Recipe
	for _, r := range f.recipes {
		if want[field(r)] {
			out = append(out, r)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
