// Package notify schedules one-shot user reminders. Delivery is
// fire-and-forget; scheduling a new reminder replaces the user's
// pending one.
package notify

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/forkcast/backend/internal/timer"
)

// Scheduler holds at most one pending reminder per user
type Scheduler struct {
	mu      sync.Mutex
	pending map[string]*timer.Handle
	logger  *zap.Logger
	deliver func(userID, title string)
}

// NewScheduler creates a reminder scheduler. deliver is invoked when a
// reminder fires; nil falls back to logging only.
func NewScheduler(logger *zap.Logger, deliver func(userID, title string)) *Scheduler {
	return &Scheduler{
		pending: make(map[string]*timer.Handle),
		logger:  logger,
		deliver: deliver,
	}
}

// Schedule queues a reminder for the user after delay, cancelling any
// reminder already pending for them
func (s *Scheduler) Schedule(userID, title string, delay time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.pending[userID]; ok {
		prev.Cancel()
	}

	var h *timer.Handle
	h = timer.After(delay, func() {
		s.mu.Lock()
		if s.pending[userID] == h {
			delete(s.pending, userID)
		}
		s.mu.Unlock()

		s.logger.Info("reminder fired",
			zap.String("user_id", userID), zap.String("title", title))
		if s.deliver != nil {
			s.deliver(userID, title)
		}
	})
	s.pending[userID] = h
}

// Cancel drops the user's pending reminder, if any
func (s *Scheduler) Cancel(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.pending[userID]; ok {
		prev.Cancel()
		delete(s.pending, userID)
	}
}
