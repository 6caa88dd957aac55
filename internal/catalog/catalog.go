// Package catalog provides access to the remote recipe collection. The
// query surface is deliberately narrow: point lookup, lexicographic
// prefix scan on the lowercase title index, membership filters on
// cuisine or category, and a bounded unfiltered scan.
package catalog

import (
	"context"
	"errors"

	"github.com/forkcast/backend/internal/types"
)

// ErrNotFound is returned by ByID for unknown identifiers
var ErrNotFound = errors.New("recipe not found")

// MaxMembershipValues caps "in" filters, matching store query limits
const MaxMembershipValues = 10

// Catalog is the remote recipe collection
type Catalog interface {
	// ByID looks up a single recipe; ErrNotFound when absent
	ByID(ctx context.Context, id string) (*types.Recipe, error)

	// TitlePrefix returns up to limit recipes whose lowercase title
	// starts with prefix, in title order
	TitlePrefix(ctx context.Context, prefix string, limit int) ([]types.Recipe, error)

	// ByAreas returns up to limit recipes whose cuisine is among areas
	// (at most MaxMembershipValues are used)
	ByAreas(ctx context.Context, areas []string, limit int) ([]types.Recipe, error)

	// ByCategories returns up to limit recipes whose category is among
	// categories (at most MaxMembershipValues are used)
	ByCategories(ctx context.Context, categories []string, limit int) ([]types.Recipe, error)

	// Scan returns up to limit recipes with no filter
	Scan(ctx context.Context, limit int) ([]types.Recipe, error)
}
