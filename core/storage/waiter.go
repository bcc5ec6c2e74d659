package storage

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrWaitTimeout is returned when a bucket did not reach the expected state
// within the configured number of polls.
var ErrWaitTimeout = errors.New("timed out waiting for bucket state")

// BucketChecker reports whether a bucket currently exists.
type BucketChecker interface {
	BucketExists(ctx context.Context, bucket string) (bool, error)
}

// Waiter polls a bucket at a fixed interval until it reaches the expected
// existence state or MaxAttempts polls have been made.
type Waiter struct {
	Interval    time.Duration
	MaxAttempts int
}

// NewWaiter creates a Waiter from the storage configuration.
func NewWaiter(cfg Config) Waiter {
	return Waiter{
		Interval:    time.Duration(cfg.WaitIntervalMillis) * time.Millisecond,
		MaxAttempts: cfg.WaitMaxAttempts,
	}
}

// WaitForExists blocks until the bucket is observable.
func (w Waiter) WaitForExists(ctx context.Context, checker BucketChecker, bucket string) error {
	return w.wait(ctx, checker, bucket, true)
}

// WaitForNotExists blocks until the bucket is no longer observable.
func (w Waiter) WaitForNotExists(ctx context.Context, checker BucketChecker, bucket string) error {
	return w.wait(ctx, checker, bucket, false)
}

func (w Waiter) wait(ctx context.Context, checker BucketChecker, bucket string, want bool) error {
	attempts := w.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}

	for attempt := 1; ; attempt++ {
		exists, err := checker.BucketExists(ctx, bucket)
		if err != nil {
			return fmt.Errorf("failed to check bucket %s: %w", bucket, err)
		}
		if exists == want {
			return nil
		}
		if attempt >= attempts {
			return fmt.Errorf("bucket %s did not reach exists=%t after %d attempts: %w", bucket, want, attempts, ErrWaitTimeout)
		}

		timer := time.NewTimer(w.Interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
