package lifecycle_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/qit/pkg/lifecycle"
)

func TestNotReadyBeforeStartup(t *testing.T) {
	lc := lifecycle.New()
	assert.False(t, lc.Ready())
}

func TestReadyAfterStartup(t *testing.T) {
	lc := lifecycle.New()
	lc.WaitForStartup()
	assert.True(t, lc.Ready())
}

func TestStartupHooksExecute(t *testing.T) {
	lc := lifecycle.New()

	var count atomic.Int32
	for range 3 {
		lc.OnStartup(func() {
			count.Add(1)
		})
	}

	lc.WaitForStartup()
	assert.Equal(t, int32(3), count.Load())
}

func TestReadinessChecks(t *testing.T) {
	lc := lifecycle.New()

	var rulesLoaded atomic.Bool
	lc.Check("rules", lifecycle.ReadinessFunc(rulesLoaded.Load))
	lc.Check("http", lifecycle.ReadinessFunc(func() bool { return true }))
	lc.WaitForStartup()

	assert.False(t, lc.Ready())
	assert.Equal(t, []string{"rules"}, lc.Pending())

	rulesLoaded.Store(true)
	assert.True(t, lc.Ready())
	assert.Empty(t, lc.Pending())
}

func TestShutdownHooksExecute(t *testing.T) {
	lc := lifecycle.New()

	var cleaned atomic.Bool
	lc.OnShutdown(func(ctx context.Context) {
		assert.Error(t, ctx.Err())
		cleaned.Store(true)
	})

	lc.WaitForStartup()
	require.NoError(t, lc.Shutdown(5*time.Second))
	assert.True(t, cleaned.Load())
}

func TestShutdownHooksWaitForShutdown(t *testing.T) {
	lc := lifecycle.New()

	var ran atomic.Bool
	lc.OnShutdown(func(context.Context) {
		ran.Store(true)
	})

	lc.WaitForStartup()
	time.Sleep(20 * time.Millisecond)
	assert.False(t, ran.Load())

	require.NoError(t, lc.Shutdown(5*time.Second))
	assert.True(t, ran.Load())
}

func TestShutdownTimeout(t *testing.T) {
	lc := lifecycle.New()

	lc.OnShutdown(func(context.Context) {
		time.Sleep(500 * time.Millisecond)
	})

	lc.WaitForStartup()
	assert.Error(t, lc.Shutdown(50*time.Millisecond))
}

func TestContextCancelledOnShutdown(t *testing.T) {
	lc := lifecycle.New()
	lc.WaitForStartup()

	require.NoError(t, lc.Shutdown(5*time.Second))

	select {
	case <-lc.Context().Done():
	default:
		t.Error("context should be cancelled after shutdown")
	}
}
