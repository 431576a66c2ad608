package calendar

import (
	"sync"
	"testing"
	"time"

	"schedule-planner/pkg/logger"
	"schedule-planner/services/planner/internal/entity"

	"github.com/stretchr/testify/assert"
)

type fetchRecorder struct {
	mu      sync.Mutex
	ranges  []DateRange
	delay   time.Duration
	results []*entity.Post
}

func (f *fetchRecorder) fetch(r DateRange) ([]*entity.Post, error) {
	f.mu.Lock()
	f.ranges = append(f.ranges, r)
	f.mu.Unlock()
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	return f.results, nil
}

func (f *fetchRecorder) fetched() []DateRange {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]DateRange, len(f.ranges))
	copy(out, f.ranges)
	return out
}

type deliverRecorder struct {
	mu         sync.Mutex
	deliveries []DateRange
}

func (d *deliverRecorder) deliver(r DateRange, posts []*entity.Post) {
	d.mu.Lock()
	d.deliveries = append(d.deliveries, r)
	d.mu.Unlock()
}

func (d *deliverRecorder) delivered() []DateRange {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]DateRange, len(d.deliveries))
	copy(out, d.deliveries)
	return out
}

func TestReloader_SingleSignalSingleFetch(t *testing.T) {
	fetcher := &fetchRecorder{}
	delivery := &deliverRecorder{}
	reloader := NewReloader(50*time.Millisecond, fetcher.fetch, delivery.deliver, logger.New())

	reloader.RangeChanged("2025-03-01", "2025-03-31")
	time.Sleep(150 * time.Millisecond)

	assert.Len(t, fetcher.fetched(), 1)
	assert.Equal(t, DateRange{Start: "2025-03-01", End: "2025-03-31"}, fetcher.fetched()[0])
	assert.Len(t, delivery.delivered(), 1)
}

func TestReloader_BurstCoalescesToLastRange(t *testing.T) {
	fetcher := &fetchRecorder{}
	delivery := &deliverRecorder{}
	reloader := NewReloader(150*time.Millisecond, fetcher.fetch, delivery.deliver, logger.New())

	// Signals at t=0, 40, 90, 260 with a 150ms settle interval: the t=90
	// signal settles and fetches; t=260 starts a fresh window. Two fetches
	// total, not four.
	reloader.RangeChanged("2025-03-01", "2025-03-31")
	time.Sleep(40 * time.Millisecond)
	reloader.RangeChanged("2025-03-03", "2025-03-09")
	time.Sleep(50 * time.Millisecond)
	reloader.RangeChanged("2025-03-10", "2025-03-16")
	time.Sleep(170 * time.Millisecond)
	reloader.RangeChanged("2025-03-17", "2025-03-23")
	time.Sleep(250 * time.Millisecond)

	fetched := fetcher.fetched()
	assert.Len(t, fetched, 2)
	assert.Equal(t, DateRange{Start: "2025-03-10", End: "2025-03-16"}, fetched[0])
	assert.Equal(t, DateRange{Start: "2025-03-17", End: "2025-03-23"}, fetched[1])
}

func TestReloader_StaleFetchDiscarded(t *testing.T) {
	fetcher := &fetchRecorder{delay: 120 * time.Millisecond}
	delivery := &deliverRecorder{}
	reloader := NewReloader(30*time.Millisecond, fetcher.fetch, delivery.deliver, logger.New())

	reloader.RangeChanged("2025-03-01", "2025-03-31")
	// Let the first fetch start, then request a newer range while it is
	// still in flight.
	time.Sleep(60 * time.Millisecond)
	reloader.RangeChanged("2025-04-01", "2025-04-30")
	time.Sleep(400 * time.Millisecond)

	delivered := delivery.delivered()
	assert.Len(t, delivered, 1)
	assert.Equal(t, DateRange{Start: "2025-04-01", End: "2025-04-30"}, delivered[0])
}

func TestReloader_StopCancelsPending(t *testing.T) {
	fetcher := &fetchRecorder{}
	delivery := &deliverRecorder{}
	reloader := NewReloader(50*time.Millisecond, fetcher.fetch, delivery.deliver, logger.New())

	reloader.RangeChanged("2025-03-01", "2025-03-31")
	reloader.Stop()
	time.Sleep(120 * time.Millisecond)

	assert.Empty(t, fetcher.fetched())
	assert.Empty(t, delivery.delivered())
}

func TestReloader_NormalizesRangeDates(t *testing.T) {
	fetcher := &fetchRecorder{}
	delivery := &deliverRecorder{}
	reloader := NewReloader(30*time.Millisecond, fetcher.fetch, delivery.deliver, logger.New())

	reloader.RangeChanged("2025-03-01T00:00:00", "2025-03-31T23:59:59")
	time.Sleep(100 * time.Millisecond)

	fetched := fetcher.fetched()
	assert.Len(t, fetched, 1)
	assert.Equal(t, DateRange{Start: "2025-03-01", End: "2025-03-31"}, fetched[0])
}
