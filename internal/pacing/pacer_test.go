package pacing

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedIntervalPacerBlocksForInterval(t *testing.T) {
	p := NewFixedIntervalPacer(30 * time.Millisecond)

	start := time.Now()
	err := p.Wait(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestFixedIntervalPacerReturnsOnCancel(t *testing.T) {
	p := NewFixedIntervalPacer(time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := p.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNopPacerDoesNotBlock(t *testing.T) {
	assert.NoError(t, NopPacer{}.Wait(context.Background()))
}

func newTestRedisPacer(t *testing.T, limit int, window, poll time.Duration) *RedisPacer {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisPacer(rdb, "pacing:test", limit, window, poll)
}

func TestRedisPacerAllowsWithinLimit(t *testing.T) {
	p := newTestRedisPacer(t, 2, time.Minute, 10*time.Millisecond)
	ctx := context.Background()

	start := time.Now()
	require.NoError(t, p.Wait(ctx))
	require.NoError(t, p.Wait(ctx))
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestRedisPacerBlocksUntilWindowFrees(t *testing.T) {
	p := newTestRedisPacer(t, 1, 150*time.Millisecond, 10*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, p.Wait(ctx))

	// 配额占满，第二次需等待窗口过期
	start := time.Now()
	require.NoError(t, p.Wait(ctx))
	assert.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond)
}

func TestRedisPacerReturnsOnCancel(t *testing.T) {
	p := newTestRedisPacer(t, 1, time.Minute, 10*time.Millisecond)

	require.NoError(t, p.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	err := p.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
