package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickerSchedulerRunsJob(t *testing.T) {
	s := NewTickerScheduler(5 * time.Millisecond)

	var runs atomic.Int32
	require.NoError(t, s.Start(context.Background(), func(time.Time) { runs.Add(1) }))
	// Starting twice keeps the first loop.
	require.NoError(t, s.Start(context.Background(), func(time.Time) { t.Error("second job must not run") }))

	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, time.Second, 5*time.Millisecond)
	require.NoError(t, s.Stop(context.Background()))

	after := runs.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, runs.Load())
}

func TestTickerSchedulerStopsWithContext(t *testing.T) {
	s := NewTickerScheduler(time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, s.Start(ctx, func(time.Time) {}))
	cancel()

	require.NoError(t, s.Stop(context.Background()))
}

func TestTickerSchedulerNoops(t *testing.T) {
	assert.NoError(t, NewTickerScheduler(0).Start(context.Background(), func(time.Time) { t.Error("must not run") }))
	assert.NoError(t, NewTickerScheduler(time.Second).Start(context.Background(), nil))
	assert.NoError(t, NewTickerScheduler(time.Second).Stop(context.Background()))
}
