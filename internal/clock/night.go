// Package clock derives the cosmetic night-mode flag from wall-clock time
// in the classroom's timezone.
package clock

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const checkInterval = time.Minute

// NightEvaluator polls local time in a fixed target timezone and exposes a
// boolean sleeping flag for the window [21:30, 06:00). The flag only drives
// avatar animation; nothing else reads it.
type NightEvaluator struct {
	loc      *time.Location
	now      func() time.Time
	interval time.Duration

	mu       sync.RWMutex
	sleeping bool
}

func NewNightEvaluator(loc *time.Location) *NightEvaluator {
	return &NightEvaluator{
		loc:      loc,
		now:      time.Now,
		interval: checkInterval,
	}
}

// IsNight reports whether t falls in the sleep window [21:30, 06:00).
func IsNight(t time.Time) bool {
	h, m := t.Hour(), t.Minute()

	return (h == 21 && m >= 30) || h >= 22 || h < 6
}

// Sleeping returns the last evaluated flag.
func (e *NightEvaluator) Sleeping() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.sleeping
}

// Run evaluates once immediately and then once per minute until ctx is
// cancelled. The tick never overlaps with itself.
func (e *NightEvaluator) Run(ctx context.Context) {
	e.check()

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.check()
		}
	}
}

func (e *NightEvaluator) check() {
	sleeping := IsNight(e.now().In(e.loc))

	e.mu.Lock()
	changed := sleeping != e.sleeping
	e.sleeping = sleeping
	e.mu.Unlock()

	if changed {
		zap.L().Info("night mode changed", zap.Bool("sleeping", sleeping))
	}
}
