// Package retry re-runs read-modify-write cycles that lost an optimistic
// version check against a concurrent writer.
package retry

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/daya-2619/fitnesstracking/internal/apperr"
)

const (
	DefaultMaxRetries      = 3
	DefaultInitialInterval = 10 * time.Millisecond
	DefaultMaxInterval     = 200 * time.Millisecond
)

type Policy struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

func DefaultPolicy() Policy {
	return Policy{
		MaxRetries:      DefaultMaxRetries,
		InitialInterval: DefaultInitialInterval,
		MaxInterval:     DefaultMaxInterval,
	}
}

type Retrier struct {
	policy Policy
	// optional, counts every retried attempt
	counterRetries prometheus.Counter
}

func NewRetrier(policy Policy, counterRetries prometheus.Counter) *Retrier {
	if policy.MaxRetries < 0 {
		policy.MaxRetries = 0
	}
	if policy.InitialInterval <= 0 {
		policy.InitialInterval = DefaultInitialInterval
	}
	if policy.MaxInterval < policy.InitialInterval {
		policy.MaxInterval = policy.InitialInterval
	}
	return &Retrier{
		policy:         policy,
		counterRetries: counterRetries,
	}
}

// Do runs op and repeats it, at most MaxRetries more times, as long as it fails
// with apperr.ErrConflictRetryable. Any other error stops the loop and is
// returned as is. When retries are exhausted the last conflict error is returned.
func (r *Retrier) Do(ctx context.Context, op func(ctx context.Context) error) error {
	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = r.policy.InitialInterval
	expBackoff.MaxInterval = r.policy.MaxInterval
	expBackoff.MaxElapsedTime = 0
	expBackoff.Reset()

	b := backoff.WithContext(
		backoff.WithMaxRetries(expBackoff, uint64(r.policy.MaxRetries)),
		ctx,
	)

	return backoff.RetryNotify(
		func() error {
			err := op(ctx)
			if err == nil {
				return nil
			}
			if errors.Is(err, apperr.ErrConflictRetryable) {
				return err
			}
			return backoff.Permanent(err)
		},
		b,
		func(err error, next time.Duration) {
			log.Debugf("retrying after conflict in %s: %s", next, err)
			if r.counterRetries != nil {
				r.counterRetries.Inc()
			}
		},
	)
}
