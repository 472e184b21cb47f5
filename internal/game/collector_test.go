package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollect_FirstMatchStopsReading(t *testing.T) {
	in := make(chan int, 5)
	for _, v := range []int{1, 3, 8, 9, 10} {
		in <- v
	}

	var seen []int
	result, err := Collect(context.Background(), in, func(v int) bool {
		seen = append(seen, v)
		return v > 5
	}, CollectOptions{MaxMatches: 1, Timeout: time.Second})

	require.NoError(t, err)
	assert.False(t, result.TimedOut)
	assert.Equal(t, []int{8}, result.Matched)
	assert.Equal(t, []int{1, 3, 8}, seen, "items after the match are never considered")
	assert.Len(t, in, 2)
}

func TestCollect_MaxMatches(t *testing.T) {
	in := make(chan int, 4)
	for _, v := range []int{2, 4, 5, 6} {
		in <- v
	}

	result, err := Collect(context.Background(), in, func(v int) bool { return v%2 == 0 },
		CollectOptions{MaxMatches: 3, Timeout: time.Second})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 6}, result.Matched)
}

func TestCollect_TimesOut(t *testing.T) {
	in := make(chan string)

	start := time.Now()
	result, err := Collect(context.Background(), in, func(string) bool { return true },
		CollectOptions{MaxMatches: 1, Timeout: 30 * time.Millisecond})

	require.NoError(t, err)
	assert.True(t, result.TimedOut)
	_, ok := result.First()
	assert.False(t, ok)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestCollect_PartialMatchesOnTimeout(t *testing.T) {
	in := make(chan int, 1)
	in <- 7

	result, err := Collect(context.Background(), in, func(int) bool { return true },
		CollectOptions{MaxMatches: 2, Timeout: 20 * time.Millisecond})
	require.NoError(t, err)
	assert.True(t, result.TimedOut)
	assert.Equal(t, []int{7}, result.Matched)
}

func TestCollect_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Collect(ctx, make(chan int), func(int) bool { return true },
		CollectOptions{MaxMatches: 1, Timeout: time.Minute})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCollect_ClosedStream(t *testing.T) {
	in := make(chan int)
	close(in)

	_, err := Collect(context.Background(), in, func(int) bool { return true },
		CollectOptions{MaxMatches: 1, Timeout: time.Minute})
	assert.ErrorIs(t, err, errStreamClosed)
}

func TestSleep(t *testing.T) {
	assert.NoError(t, sleep(context.Background(), 0))
	assert.NoError(t, sleep(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sleep(ctx, time.Minute), context.Canceled)
}
