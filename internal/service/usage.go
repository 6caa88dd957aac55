package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/forkcast/backend/internal/inference"
	"github.com/forkcast/backend/internal/store"
	"github.com/forkcast/backend/internal/types"
)

const (
	usageLogCap     = 2000
	unlockThreshold = 3
	weeklyWindow    = 7 * 24 * time.Hour
)

// UsageService records usage events and derives weekly popularity and
// cuisine achievements from them.
type UsageService struct {
	kv     store.KV
	logger *zap.Logger
}

func NewUsageService(kv store.KV, logger *zap.Logger) *UsageService {
	return &UsageService{kv: kv, logger: logger}
}

func (s *UsageService) events(ctx context.Context, userID string) ([]types.UsageEvent, error) {
	var log []types.UsageEvent
	if _, err := s.kv.Get(ctx, usageLogKey(userID), &log); err != nil {
		return nil, err
	}
	return log, nil
}

// Append adds an event to the user's usage log, evicting the oldest
// entries once the log exceeds its cap.
func (s *UsageService) Append(ctx context.Context, userID string, ev types.UsageEvent) error {
	log, err := s.events(ctx, userID)
	if err != nil {
		return err
	}
	log = append(log, ev)
	if len(log) > usageLogCap {
		log = log[len(log)-usageLogCap:]
	}
	return s.kv.Set(ctx, usageLogKey(userID), log)
}

// WeeklyTop counts view events in the trailing seven days and returns
// per-recipe counts in descending order, capped at limit. Counting is
// restricted to candidateIDs when non-empty. Ties keep the order in
// which recipes were first seen in the log.
func (s *UsageService) WeeklyTop(ctx context.Context, userID string, now time.Time, candidateIDs []string, limit int) ([]types.RecipeCount, error) {
	log, err := s.events(ctx, userID)
	if err != nil {
		return nil, err
	}
	var candidates map[string]bool
	if len(candidateIDs) > 0 {
		candidates = make(map[string]bool, len(candidateIDs))
		for _, id := range candidateIDs {
			candidates[id] = true
		}
	}
	cutoff := now.Add(-weeklyWindow).UnixMilli()
	counts := make(map[string]int)
	var order []string
	for _, ev := range log {
		if ev.Type != types.UsageView || ev.RecipeID == "" || ev.TS < cutoff {
			continue
		}
		if candidates != nil && !candidates[ev.RecipeID] {
			continue
		}
		if _, seen := counts[ev.RecipeID]; !seen {
			order = append(order, ev.RecipeID)
		}
		counts[ev.RecipeID]++
	}
	out := make([]types.RecipeCount, 0, len(order))
	for _, id := range order {
		out = append(out, types.RecipeCount{RecipeID: id, Count: counts[id]})
	}
	// Insertion sort keeps first-seen order among equal counts.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Count > out[j-1].Count; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// RecordView logs a view event and updates cuisine achievement progress.
// A cuisine unlocks once the user has viewed three distinct recipes from
// it; unlocks are permanent even if the underlying log rolls over.
func (s *UsageService) RecordView(ctx context.Context, userID string, r types.Recipe, now time.Time) error {
	cuisine := inference.Cuisine(r)
	if err := s.Append(ctx, userID, types.UsageEvent{
		Type:     types.UsageView,
		RecipeID: r.ID,
		Area:     cuisine,
		TS:       now.UnixMilli(),
	}); err != nil {
		return err
	}
	if cuisine == "" {
		return nil
	}

	sets := make(map[string][]string)
	if _, err := s.kv.Get(ctx, areaSetsKey(userID), &sets); err != nil {
		return err
	}
	set := sets[cuisine]
	for _, id := range set {
		if id == r.ID {
			return nil
		}
	}
	set = append(set, r.ID)
	sets[cuisine] = set
	if err := s.kv.Set(ctx, areaSetsKey(userID), sets); err != nil {
		return err
	}
	if len(set) < unlockThreshold {
		return nil
	}

	unlocked := make(map[string]int64)
	if _, err := s.kv.Get(ctx, achievementsKey(userID), &unlocked); err != nil {
		return err
	}
	if _, done := unlocked[cuisine]; done {
		return nil
	}
	unlocked[cuisine] = now.UnixMilli()
	if err := s.kv.Set(ctx, achievementsKey(userID), unlocked); err != nil {
		return err
	}
	s.logger.Info("cuisine achievement unlocked",
		zap.String("user_id", userID),
		zap.String("cuisine", cuisine))
	return nil
}

// RecordSearch logs a search event.
func (s *UsageService) RecordSearch(ctx context.Context, userID, query string, now time.Time) error {
	return s.Append(ctx, userID, types.UsageEvent{
		Type:  types.UsageSearch,
		Query: query,
		TS:    now.UnixMilli(),
	})
}

// Achievements reports progress for every known cuisine, unlocked or
// not. Progress is capped at the unlock threshold.
func (s *UsageService) Achievements(ctx context.Context, userID string) ([]types.CuisineProgress, error) {
	sets := make(map[string][]string)
	if _, err := s.kv.Get(ctx, areaSetsKey(userID), &sets); err != nil {
		return nil, err
	}
	unlocked := make(map[string]int64)
	if _, err := s.kv.Get(ctx, achievementsKey(userID), &unlocked); err != nil {
		return nil, err
	}
	out := make([]types.CuisineProgress, 0, len(inference.Cuisines))
	for _, cuisine := range inference.Cuisines {
		progress := len(sets[cuisine])
		if progress > unlockThreshold {
			progress = unlockThreshold
		}
		ts, done := unlocked[cuisine]
		// A persisted unlock outranks whatever the rolling set says.
		if done {
			progress = unlockThreshold
		}
		out = append(out, types.CuisineProgress{
			Cuisine:    cuisine,
			Progress:   progress,
			Goal:       unlockThreshold,
			Unlocked:   done,
			UnlockedAt: ts,
		})
	}
	return out, nil
}
