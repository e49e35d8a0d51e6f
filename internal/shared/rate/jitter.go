package rate

import (
	"context"

	"go.uber.org/ratelimit"
)

// Jitter paces invocation starts: a background provider takes permits from a
// leaky-bucket limiter and hands them out through a small buffered channel,
// which absorbs short bursts of about 10% of the limit.
type Jitter struct {
	ch    chan struct{}
	l     ratelimit.Limiter
	limit int
}

func NewJitter(ctx context.Context, limit int) *Jitter {
	if limit < 1 {
		limit = 1
	}
	brst := int(float64(limit) * 0.1)
	if brst < 1 {
		brst = 1
	}
	jitter := &Jitter{
		limit: limit,
		ch:    make(chan struct{}, brst),
		l:     ratelimit.New(limit),
	}
	go jitter.provider(ctx)
	return jitter
}

func (l *Jitter) provider(ctx context.Context) {
	defer close(l.ch)
	for {
		l.l.Take()
		select {
		case <-ctx.Done():
			return
		case l.ch <- struct{}{}:
		}
	}
}

// Take blocks until a permit is available. It returns false once ctx is done
// (either the caller's or the one the Jitter was created with).
func (l *Jitter) Take(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case _, ok := <-l.ch:
		return ok
	}
}

func (l *Jitter) Limit() int {
	return l.limit
}
