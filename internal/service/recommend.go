package service

import (
	"context"
	"math/rand"
	"sync"

	"go.uber.org/zap"

	"github.com/forkcast/backend/internal/catalog"
	"github.com/forkcast/backend/internal/store"
	"github.com/forkcast/backend/internal/types"
)

const (
	// Candidate pools are over-fetched relative to the requested count
	// so that exclusions and shuffling still leave enough variety.
	overFetchFactor = 3

	coldStartAttempts = 8
	coldStartWindow   = 12
)

var prefixAlphabet = []rune("abcdefghijklmnopqrstuvwxyz0123456789")

// RecommendService assembles recommendation candidate pools from the
// catalog, falling back through progressively weaker strategies. It
// never returns an error: a failed stage demotes to the next one, and a
// total failure yields an empty list.
type RecommendService struct {
	catalog catalog.Catalog
	prefs   *PrefsService
	logger  *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

func NewRecommendService(cat catalog.Catalog, kv store.KV, logger *zap.Logger, rng *rand.Rand) *RecommendService {
	return &RecommendService{
		catalog: cat,
		prefs:   NewPrefsService(kv),
		logger:  logger,
		rng:     rng,
	}
}

// Recommended returns up to n recipes for the user. Recipes whose ID is
// in exclude, or which match one of the user's dislikes, are dropped
// before shuffling and truncation.
func (s *RecommendService) Recommended(ctx context.Context, userID string, n int, exclude []string) []types.Recipe {
	if n <= 0 {
		return nil
	}
	prefs, err := s.prefs.Get(ctx, userID)
	if err != nil {
		s.logger.Warn("preferences unavailable, recommending cold", zap.Error(err))
		prefs = types.UserPreferences{}
	}

	pool := s.candidates(ctx, prefs, n)
	pool = s.filter(pool, prefs.Dislikes, exclude)
	s.shuffle(pool)
	if len(pool) > n {
		pool = pool[:n]
	}
	return pool
}

// candidates picks the strongest strategy the user's preferences allow.
// A stage is skipped only when its preference signal is absent or its
// query fails; an empty result from a successful query is final, so a
// user whose liked areas match nothing gets an empty feed rather than
// strangers' recipes.
func (s *RecommendService) candidates(ctx context.Context, prefs types.UserPreferences, n int) []types.Recipe {
	want := n * overFetchFactor

	if len(prefs.LikedAreas) > 0 {
		pool, err := s.catalog.ByAreas(ctx, clip(prefs.LikedAreas, catalog.MaxMembershipValues), want)
		if err == nil {
			return pool
		}
		s.logger.Warn("area lookup failed, trying categories", zap.Error(err))
	}

	if len(prefs.LikedCategories) > 0 {
		pool, err := s.catalog.ByCategories(ctx, clip(prefs.LikedCategories, catalog.MaxMembershipValues), want)
		if err == nil {
			return pool
		}
		s.logger.Warn("category lookup failed, trying discovery", zap.Error(err))
	}

	pool := s.discover(ctx, want)
	if len(pool) < want {
		pool = s.topUp(ctx, pool, want)
	}
	return pool
}

// topUp fills a short discovery pool from an unfiltered scan, keeping
// the pool deduplicated by identifier.
func (s *RecommendService) topUp(ctx context.Context, pool []types.Recipe, want int) []types.Recipe {
	scanned, err := s.catalog.Scan(ctx, want)
	if err != nil {
		s.logger.Warn("catalog scan failed", zap.Error(err))
		return pool
	}
	seen := make(map[string]bool, len(pool))
	for _, r := range pool {
		seen[r.ID] = true
	}
	for _, r := range scanned {
		if len(pool) >= want {
			break
		}
		if seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		pool = append(pool, r)
	}
	return pool
}

// discover samples the catalog by random title prefixes. Short prefixes
// are favored because they match broad slices of the title space.
func (s *RecommendService) discover(ctx context.Context, want int) []types.Recipe {
	seen := make(map[string]bool)
	var pool []types.Recipe
	for attempt := 0; attempt < coldStartAttempts && len(pool) < want; attempt++ {
		batch, err := s.catalog.TitlePrefix(ctx, s.randomPrefix(), coldStartWindow)
		if err != nil {
			s.logger.Warn("discovery probe failed", zap.Error(err))
			continue
		}
		for _, r := range batch {
			if seen[r.ID] {
				continue
			}
			seen[r.ID] = true
			pool = append(pool, r)
		}
	}
	return pool
}

func (s *RecommendService) randomPrefix() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	length := 1
	if s.rng.Float64() >= 0.7 {
		length = 2
	}
	out := make([]rune, length)
	for i := range out {
		out[i] = prefixAlphabet[s.rng.Intn(len(prefixAlphabet))]
	}
	return string(out)
}

func (s *RecommendService) filter(pool []types.Recipe, dislikes, exclude []string) []types.Recipe {
	excluded := make(map[string]bool, len(exclude))
	for _, id := range exclude {
		excluded[id] = true
	}
	seen := make(map[string]bool, len(pool))
	out := pool[:0]
	for _, r := range pool {
		if excluded[r.ID] || seen[r.ID] {
			continue
		}
		if MatchesDislike(r, dislikes) {
			continue
		}
		seen[r.ID] = true
		out = append(out, r)
	}
	return out
}

func (s *RecommendService) shuffle(pool []types.Recipe) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
}

func clip(values []string, max int) []string {
	if len(values) > max {
		return values[:max]
	}
	return values
}
