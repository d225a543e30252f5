package courtlistener

import (
	"context"
	"math"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/roivaz/courtlistener-mcp/internal/logging"
)

// Backoff retries transient failures a bounded number of times with
// exponential delays: base, 2*base, 4*base... plus up to 10% jitter.
type Backoff struct {
	Attempts int
	Base     time.Duration

	sleep func(ctx context.Context, d time.Duration) error
}

func (b Backoff) Do(ctx context.Context, log logging.Logger, operation func(ctx context.Context) error) error {
	attempts := b.Attempts
	if attempts <= 0 {
		attempts = 1
	}
	sleep := b.sleep
	if sleep == nil {
		sleep = sleepContext
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		err := operation(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		typed, ok := AsError(err)
		if !ok || !typed.Retryable() || ctx.Err() != nil {
			return err
		}
		if attempt == attempts-1 {
			break
		}

		delay := b.delay(attempt)
		log.Debug("retrying upstream request", "attempt", attempt+1, "delay", delay, "error", err.Error())
		if err := sleep(ctx, delay); err != nil {
			return lastErr
		}
	}

	if typed, ok := AsError(lastErr); ok && attempts > 1 {
		return &Error{
			Kind:       typed.Kind,
			Message:    typed.Message + " after " + strconv.Itoa(attempts) + " attempts",
			StatusCode: typed.StatusCode,
			Cause:      typed.Cause,
		}
	}
	return lastErr
}

func (b Backoff) delay(attempt int) time.Duration {
	backoff := b.Base * time.Duration(math.Pow(2, float64(attempt)))
	jitter := time.Duration(float64(backoff) * 0.1 * rand.Float64())
	return backoff + jitter
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
