package resource_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shophub/shopkit/pkg/resource"
)

func TestRun(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("success applies payload and marks succeeded", func(t *testing.T) {
		t.Parallel()
		var mu sync.Mutex
		var tracker resource.Tracker
		var data []string

		err := resource.Run(ctx, &mu, &tracker, "fallback",
			func(ctx context.Context) ([]string, error) { return []string{"a", "b"}, nil },
			func(payload []string) { data = payload },
		)

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, data)
		assert.Equal(t, resource.StatusSucceeded, tracker.Status())
		assert.Empty(t, tracker.Err())
	})

	t.Run("failure keeps data and captures fallback message", func(t *testing.T) {
		t.Parallel()
		var mu sync.Mutex
		var tracker resource.Tracker
		data := []string{"stale"}

		callErr := errors.New("boom")
		err := resource.Run(ctx, &mu, &tracker, "Failed to fetch things",
			func(ctx context.Context) ([]string, error) { return nil, callErr },
			func(payload []string) { data = payload },
		)

		assert.ErrorIs(t, err, callErr)
		assert.Equal(t, []string{"stale"}, data)
		assert.Equal(t, resource.StatusFailed, tracker.Status())
		assert.Equal(t, "Failed to fetch things", tracker.Err())
	})

	t.Run("begin clears stale error", func(t *testing.T) {
		t.Parallel()
		var mu sync.Mutex
		var tracker resource.Tracker
		tracker.Fail("old failure")

		started := make(chan struct{})
		release := make(chan struct{})
		done := make(chan struct{})

		go func() {
			defer close(done)
			_ = resource.Run(ctx, &mu, &tracker, "fallback",
				func(ctx context.Context) (int, error) {
					close(started)
					<-release
					return 1, nil
				},
				func(int) {},
			)
		}()

		<-started
		mu.Lock()
		assert.Equal(t, resource.StatusPending, tracker.Status())
		assert.Empty(t, tracker.Err())
		mu.Unlock()

		close(release)
		<-done
		assert.Equal(t, resource.StatusSucceeded, tracker.Status())
	})

	t.Run("overlapping requests are last writer wins", func(t *testing.T) {
		t.Parallel()
		var mu sync.Mutex
		var tracker resource.Tracker
		var value int

		firstCanFinish := make(chan struct{})
		firstDone := make(chan struct{})

		go func() {
			defer close(firstDone)
			_ = resource.Run(ctx, &mu, &tracker, "fallback",
				func(ctx context.Context) (int, error) {
					<-firstCanFinish
					return 1, nil
				},
				func(v int) { value = v },
			)
		}()

		// Second request starts after the first and resolves before it
		err := resource.Run(ctx, &mu, &tracker, "fallback",
			func(ctx context.Context) (int, error) { return 2, nil },
			func(v int) { value = v },
		)
		require.NoError(t, err)

		close(firstCanFinish)
		<-firstDone

		// The slower first request resolved last and won
		assert.Equal(t, 1, value)
	})
}

func TestStatusString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "idle", resource.StatusIdle.String())
	assert.Equal(t, "pending", resource.StatusPending.String())
	assert.Equal(t, "succeeded", resource.StatusSucceeded.String())
	assert.Equal(t, "failed", resource.StatusFailed.String())
}
