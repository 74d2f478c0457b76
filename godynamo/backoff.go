package godynamo

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// maxBatchRetries bounds the retries of one batch whatever the FailConfig.
const maxBatchRetries = 10

// FailConfig holds the exponential backoff parameters for retrying
// unprocessed batch items, in milliseconds. Base is the first wait and
// doubles on each retry, Cap bounds both a single wait and the total time
// spent retrying, and Jitter adds up to that many milliseconds to each wait.
type FailConfig struct {
	Base   int64 `json:"base"`
	Cap    int64 `json:"cap"`
	Jitter int64 `json:"jitter"`
}

func NewFailConfig(base, cap, jitter int64) *FailConfig {
	return &FailConfig{Base: base, Cap: cap, Jitter: jitter}
}

// DefaultFailConfig waits 50ms before the first retry and gives up after a
// total of one minute.
var DefaultFailConfig = &FailConfig{Base: 50, Cap: 60000, Jitter: 250}

// newRetries starts a backoff sequence. A Cap of zero or less disables
// retries; a Base of zero or less is raised to one millisecond.
func (f *FailConfig) newRetries() *retries {
	if f.Cap <= 0 {
		return &retries{b: &backoff.StopBackOff{}}
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Duration(max(f.Base, 1)) * time.Millisecond
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxInterval = time.Duration(f.Cap) * time.Millisecond
	b.MaxElapsedTime = time.Duration(f.Cap) * time.Millisecond
	b.Reset()

	return &retries{
		b:      backoff.WithMaxRetries(b, maxBatchRetries),
		jitter: max(f.Jitter, 0),
	}
}

// retries tracks one backoff sequence.
type retries struct {
	b      backoff.BackOff
	jitter int64
}

// wait sleeps for the next backoff interval. It returns false once the
// sequence is exhausted or ctx is done.
func (r *retries) wait(ctx context.Context) bool {
	d := r.b.NextBackOff()
	if d == backoff.Stop {
		return false
	}
	if r.jitter > 0 {
		d += time.Duration(rand.Int64N(r.jitter)) * time.Millisecond
	}

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
