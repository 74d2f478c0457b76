package godynamo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func countWaits(ctx context.Context, fc *FailConfig) int {
	r := fc.newRetries()
	n := 0
	for r.wait(ctx) {
		n++
		if n > 1000 {
			break
		}
	}
	return n
}

func TestFailConfig_Retries(t *testing.T) {
	tests := []struct {
		name     string
		fc       *FailConfig
		minWaits int
		maxWaits int
	}{
		{name: "ZeroBaseEnds", fc: NewFailConfig(0, 20, 0), minWaits: 1, maxWaits: maxBatchRetries},
		{name: "NegativeBaseEnds", fc: NewFailConfig(-5, 20, 0), minWaits: 1, maxWaits: maxBatchRetries},
		{name: "RetryCap", fc: NewFailConfig(1, 60000, 0), minWaits: maxBatchRetries, maxWaits: maxBatchRetries},
		{name: "ZeroCapDisablesRetries", fc: NewFailConfig(50, 0, 0), minWaits: 0, maxWaits: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			n := countWaits(context.Background(), tt.fc)
			assert.GreaterOrEqual(t, n, tt.minWaits)
			assert.LessOrEqual(t, n, tt.maxWaits)
		})
	}
}

func TestFailConfig_ElapsedBoundedByCap(t *testing.T) {
	t.Parallel()

	start := time.Now()
	countWaits(context.Background(), NewFailConfig(5, 100, 0))
	assert.Less(t, time.Since(start), time.Second)
}

func TestRetries_StopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, NewFailConfig(50, 60000, 250).newRetries().wait(ctx))
}
