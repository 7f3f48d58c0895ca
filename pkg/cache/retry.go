package cache

import (
	"context"
	"errors"
	"time"
)

// ErrBackend is wrapped around transient backend failures (connection
// resets, timeouts) so callers can tell them from bad requests.
var ErrBackend = errors.New("cache backend unavailable")

// transientError marks an error worth retrying.
type transientError struct{ err error }

func (e transientError) Error() string { return e.err.Error() }
func (e transientError) Unwrap() error { return e.err }

// transient marks err as retryable. It returns nil for nil.
func transient(err error) error {
	if err == nil {
		return nil
	}
	return transientError{err}
}

// IsTransient reports whether err was marked as retryable by a backend.
func IsTransient(err error) bool {
	var te transientError
	return errors.As(err, &te)
}

// Backoff retries transient failures with exponentially growing pauses.
type Backoff struct {
	Attempts int           // total calls, including the first
	Delay    time.Duration // pause before the second call; doubles after each retry
}

// DefaultBackoff makes three attempts, 100ms then 200ms apart.
var DefaultBackoff = Backoff{Attempts: 3, Delay: 100 * time.Millisecond}

// Do calls fn until it succeeds, fails with an error that is not transient,
// runs out of attempts or ctx is done. It returns the last error.
func (b Backoff) Do(ctx context.Context, fn func() error) error {
	delay := b.Delay
	var err error
	for attempt := 1; ; attempt++ {
		if err = fn(); err == nil || !IsTransient(err) || attempt >= b.Attempts {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}
}
