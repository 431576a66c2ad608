package calendar

import (
	"sync"
	"time"

	"schedule-planner/pkg/logger"
	"schedule-planner/services/planner/internal/entity"
)

// DateRange is an inclusive visible window.
type DateRange struct {
	Start string
	End   string
}

type FetchFunc func(r DateRange) ([]*entity.Post, error)

type DeliverFunc func(r DateRange, posts []*entity.Post)

// Reloader coalesces bursts of range-changed signals into a single fetch.
// Switching views fires several signals in quick succession; without
// coalescing, a slow in-flight fetch for an earlier range can overwrite the
// results of a later one. The reloader debounces to the last signal of a
// burst, and every fetch is tagged with the range it was issued for so a
// completion whose range no longer matches the latest request is dropped.
type Reloader struct {
	settle  time.Duration
	fetch   FetchFunc
	deliver DeliverFunc
	log     *logger.Logger

	mu     sync.Mutex
	timer  *time.Timer
	latest DateRange
}

func NewReloader(settle time.Duration, fetch FetchFunc, deliver DeliverFunc, log *logger.Logger) *Reloader {
	return &Reloader{
		settle:  settle,
		fetch:   fetch,
		deliver: deliver,
		log:     log,
	}
}

// RangeChanged records the most recent visible window and restarts the
// settle timer. Superseded timers never fire.
func (r *Reloader) RangeChanged(start, end string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.latest = DateRange{Start: entity.NormalizeDate(start), End: entity.NormalizeDate(end)}
	if r.timer != nil {
		r.timer.Stop()
	}
	r.timer = time.AfterFunc(r.settle, r.fire)
}

// Stop cancels any pending reload. In-flight fetches are not interrupted;
// their results fall to the staleness check.
func (r *Reloader) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

func (r *Reloader) fire() {
	r.mu.Lock()
	rng := r.latest
	r.timer = nil
	r.mu.Unlock()

	posts, err := r.fetch(rng)
	if err != nil {
		r.log.Error("Range reload fetch failed for %s..%s: %v", rng.Start, rng.End, err)
		return
	}

	r.mu.Lock()
	stale := rng != r.latest
	r.mu.Unlock()
	if stale {
		// A newer range was requested while this fetch was in flight.
		return
	}

	r.deliver(rng, posts)
}
