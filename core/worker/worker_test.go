package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blockUntilDone(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestGroupShutdown(t *testing.T) {
	var cleaned []string
	g := NewGroup().
		Go("a", RunnerFunc(blockUntilDone)).
		Go("b", RunnerFunc(blockUntilDone)).
		OnShutdown(func(context.Context) error { cleaned = append(cleaned, "first"); return nil }).
		OnShutdown(func(context.Context) error { cleaned = append(cleaned, "second"); return nil })

	errCh := make(chan error, 1)
	go func() { errCh <- g.Run(context.Background()) }()

	require.Eventually(t, func() bool {
		g.mu.Lock()
		defer g.mu.Unlock()
		return g.running
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, g.Shutdown())
	require.NoError(t, <-errCh)
	assert.Equal(t, []string{"second", "first"}, cleaned)
}

func TestGroupFailingRunner(t *testing.T) {
	var stopped atomic.Bool
	boom := errors.New("boom")
	g := NewGroup().
		Go("healthy", RunnerFunc(func(ctx context.Context) error {
			<-ctx.Done()
			stopped.Store(true)
			return nil
		})).
		Go("broken", RunnerFunc(func(context.Context) error { return boom }))

	err := g.Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.True(t, stopped.Load(), "a failing runner must stop its siblings")
}

func TestGroupShutdownWithoutRun(t *testing.T) {
	cleaned := false
	g := NewGroup().OnShutdown(func(context.Context) error {
		cleaned = true
		return nil
	})
	require.NoError(t, g.Shutdown())
	assert.True(t, cleaned)

	assert.Error(t, g.Run(context.Background()), "a stopped group cannot run")
}
