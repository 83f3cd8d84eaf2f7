package source

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"autosuggest/internal/domain"
)

// Delayed simulates a remote source: every fetch waits latency plus a
// random share of jitter, so replies can come back out of order.
type Delayed struct {
	next    Source
	latency time.Duration
	jitter  time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewDelayed wraps next with simulated latency
func NewDelayed(next Source, latency, jitter time.Duration) *Delayed {
	return &Delayed{
		next:    next,
		latency: latency,
		jitter:  jitter,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (d *Delayed) Fetch(ctx context.Context, query, previous string) ([]domain.SuggestionItem, error) {
	timer := time.NewTimer(d.delay())
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return d.next.Fetch(ctx, query, previous)
}

func (d *Delayed) delay() time.Duration {
	if d.jitter <= 0 {
		return d.latency
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.latency + time.Duration(d.rng.Int63n(int64(d.jitter)))
}
