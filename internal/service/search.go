package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/forkcast/backend/internal/catalog"
	"github.com/forkcast/backend/internal/timer"
	"github.com/forkcast/backend/internal/types"
)

const (
	searchLimit     = 24
	suggestLimit    = 8
	minSuggestRunes = 2
)

// ErrSearchTimeout is returned when the catalog does not answer within
// the configured search deadline.
var ErrSearchTimeout = errors.New("search timed out")

// ErrSuggestSuperseded is returned when a newer suggestion request for
// the same user arrives before the debounce delay elapses.
var ErrSuggestSuperseded = timer.ErrSuperseded

// SearchService runs prefix searches over the catalog. Suggestions are
// debounced per user so that rapid keystrokes only hit the catalog once.
type SearchService struct {
	catalog  catalog.Catalog
	library  *LibraryService
	usage    *UsageService
	logger   *zap.Logger
	timeout  time.Duration
	debounce *timer.Debouncer
	delay    time.Duration
}

func NewSearchService(cat catalog.Catalog, library *LibraryService, usage *UsageService, logger *zap.Logger, timeout, debounce time.Duration) *SearchService {
	return &SearchService{
		catalog:  cat,
		library:  library,
		usage:    usage,
		logger:   logger,
		timeout:  timeout,
		debounce: timer.NewDebouncer(),
		delay:    debounce,
	}
}

// Search finds recipes whose title starts with the query. The query is
// always recorded in the user's recent searches and usage log, even
// when the lookup itself times out.
func (s *SearchService) Search(ctx context.Context, userID, query string) ([]types.Recipe, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	now := time.Now()
	if err := s.library.RecordSearch(ctx, userID, query); err != nil {
		s.logger.Warn("recording recent search failed", zap.Error(err))
	}
	if err := s.usage.RecordSearch(ctx, userID, query, now); err != nil {
		s.logger.Warn("recording search event failed", zap.Error(err))
	}

	lookupCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	results, err := s.catalog.TitlePrefix(lookupCtx, strings.ToLower(query), searchLimit)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrSearchTimeout
		}
		return nil, err
	}
	return results, nil
}

// Suggest returns up to eight prefix matches for an in-progress query.
// Queries shorter than two runes yield nothing. The call blocks for the
// debounce delay; if the same user issues a newer query meanwhile, the
// older call returns ErrSuggestSuperseded.
func (s *SearchService) Suggest(ctx context.Context, userID, query string) ([]types.Recipe, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minSuggestRunes {
		return nil, nil
	}
	if err := s.debounce.Wait(ctx, userID, s.delay); err != nil {
		return nil, err
	}

	lookupCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	results, err := s.catalog.TitlePrefix(lookupCtx, strings.ToLower(query), suggestLimit)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrSearchTimeout
		}
		return nil, err
	}
	return results, nil
}
