package stealpool

import (
	"context"
	"time"

	boff "github.com/Andrej220/go-utils/backoff"
	lg "github.com/Andrej220/go-utils/zlog"
)

const (
	defaultAttempts     = 3
	defaultInitialRetry = 200 * time.Millisecond
	defaultMaxRetry     = 5 * time.Second
)

// RetryPolicy describes how many times and how often a task should be
// retried. Zero values are treated as "use defaults".
type RetryPolicy struct {
	// Attempts is the maximum number of tries for a task.
	Attempts int

	// Initial is the first backoff duration.
	Initial time.Duration

	// Max is the cap for backoff duration.
	Max time.Duration
}

// GetDefaultRP returns a pointer to the default retry policy.
// Useful in tests or when constructing callers with the same defaults.
func GetDefaultRP() *RetryPolicy {
	rp := RetryPolicy{
		Attempts: defaultAttempts,
		Initial:  defaultInitialRetry,
		Max:      defaultMaxRetry,
	}
	return &rp
}

func (rp *RetryPolicy) fillDefaults() {
	if rp.Attempts <= 0 {
		rp.Attempts = defaultAttempts
	}
	if rp.Initial <= 0 {
		rp.Initial = defaultInitialRetry
	}
	if rp.Max <= 0 {
		rp.Max = defaultMaxRetry
	}
}

// SubmitRetry runs fn through the pool up to pol.Attempts times,
// resubmitting on failure. The pool itself never retries anything;
// each attempt is an ordinary submission, and the waiting plus the
// backoff sleep happen on the caller's goroutine. A ctx cancellation
// releases the caller between attempts; an attempt already running on
// a worker is not interrupted.
func SubmitRetry[R any](ctx context.Context, p *Pool, pol RetryPolicy, fn func() (R, error)) (R, error) {
	pol.fillDefaults()

	var zero R
	logger := lg.FromContext(ctx)
	bo := boff.New(pol.Initial, pol.Max, time.Now().UnixNano())

	for attempt := 1; ; attempt++ {
		h, err := SubmitContext(p, ctx, fn)
		if err != nil {
			// Pool stopped or nil task: retrying cannot help.
			return zero, err
		}

		v, err := h.GetContext(ctx)
		if err == nil {
			return v, nil
		}
		if attempt == pol.Attempts || ctx.Err() != nil {
			logger.Error("task failed", lg.Int("attempt", attempt), lg.Any("error", err))
			return zero, err
		}

		delay := bo.Next()
		logger.Warn("task attempt failed; backing off",
			lg.Int("attempt", attempt),
			lg.String("sleep", delay.String()),
			lg.Any("error", err),
		)
		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			if !timer.Stop() {
				<-timer.C // drain if timer already fired
			}
			logger.Info("retry canceled", lg.Any("reason", ctx.Err()))
			return zero, ctx.Err()
		}
	}
}
