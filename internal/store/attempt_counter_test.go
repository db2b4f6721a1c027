package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestAttemptCounterBasics(t *testing.T) {
	counter := NewAttemptCounter(4)

	require.Equal(t, 0, counter.Get("alice"))
	require.Equal(t, 1, counter.Increment("alice"))
	require.Equal(t, 2, counter.Increment("alice"))
	require.Equal(t, 2, counter.Get("alice"))

	// Independent keys do not interfere.
	require.Equal(t, 1, counter.Increment("bob"))
	require.Equal(t, 2, counter.Get("alice"))

	counter.Reset("alice")
	require.Equal(t, 0, counter.Get("alice"))
	require.Equal(t, 1, counter.Get("bob"))
}

// TestAttemptCounterConcurrentIncrements verifies that concurrent failures
// for the same username never lose updates.
func TestAttemptCounterConcurrentIncrements(t *testing.T) {
	counter := NewAttemptCounter(16)

	const workers = 100
	var g errgroup.Group
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			counter.Increment("alice")
			return nil
		})
	}
	require.NoError(t, g.Wait())

	require.Equal(t, workers, counter.Get("alice"))
}

func TestAttemptCounterConcurrentDistinctKeys(t *testing.T) {
	counter := NewAttemptCounter(16)

	var g errgroup.Group
	for i := 0; i < 50; i++ {
		username := fmt.Sprintf("user-%d", i)
		g.Go(func() error {
			for j := 0; j < 10; j++ {
				counter.Increment(username)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i := 0; i < 50; i++ {
		require.Equal(t, 10, counter.Get(fmt.Sprintf("user-%d", i)))
	}
}
