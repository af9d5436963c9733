package llm

import (
	"context"
	"time"
)

// rpsLimiter paces outbound model calls with a token bucket refilled on a
// fixed tick. Each Acquire consumes one token.
type rpsLimiter struct {
	tokens chan struct{}
	stopCh chan struct{}
}

// newRPSLimiter starts a limiter refilling at rps tokens per second, holding
// at most burst tokens. rps <= 0 disables limiting entirely: the returned nil
// limiter accepts Acquire and Stop as no-ops.
func newRPSLimiter(rps float64, burst int) *rpsLimiter {
	if rps <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}

	l := &rpsLimiter{
		tokens: make(chan struct{}, burst),
		stopCh: make(chan struct{}),
	}
	for i := 0; i < burst; i++ {
		l.tokens <- struct{}{}
	}

	period := time.Duration(float64(time.Second) / rps)
	if period <= 0 {
		period = time.Millisecond
	}
	ticker := time.NewTicker(period)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				select {
				case l.tokens <- struct{}{}:
				default:
					// bucket already full
				}
			case <-l.stopCh:
				return
			}
		}
	}()

	return l
}

// Acquire takes one token, blocking until one is free, the context is
// canceled, or the limiter is stopped.
func (l *rpsLimiter) Acquire(ctx context.Context) error {
	if l == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-l.stopCh:
		return context.Canceled
	case <-l.tokens:
		return nil
	}
}

// Stop shuts down the refill goroutine and unblocks pending Acquires.
func (l *rpsLimiter) Stop() {
	if l == nil {
		return
	}
	close(l.stopCh)
}
