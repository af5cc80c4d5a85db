// Package worker runs the background loops of a module as one unit of lifecycle.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orb-forge/common/errs"
	"github.com/gaze-network/orb-forge/pkg/logger"
	"github.com/gaze-network/orb-forge/pkg/logger/slogx"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 60 * time.Second

// Worker is a long-running module process.
type Worker interface {
	Run(ctx context.Context) error
	ShutdownWithContext(ctx context.Context) error
}

// Runner is a single background loop. Run blocks until ctx is done or the loop fails.
type Runner interface {
	Run(ctx context.Context) error
}

// RunnerFunc adapts a function to Runner.
type RunnerFunc func(ctx context.Context) error

func (f RunnerFunc) Run(ctx context.Context) error {
	return f(ctx)
}

// Group runs named runners together. A failing runner stops the whole group.
// Cleanup functions run in reverse order once every runner has returned.
type Group struct {
	names    []string
	runners  []Runner
	cleanups []func(context.Context) error

	mu       sync.Mutex
	running  bool
	stopped  bool
	quitOnce sync.Once
	quit     chan struct{}
	done     chan struct{}
}

func NewGroup() *Group {
	return &Group{
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
}

// Go registers a runner. It must be called before Run.
func (g *Group) Go(name string, runner Runner) *Group {
	g.names = append(g.names, name)
	g.runners = append(g.runners, runner)
	return g
}

// OnShutdown registers a cleanup function.
func (g *Group) OnShutdown(cleanup func(context.Context) error) *Group {
	g.cleanups = append(g.cleanups, cleanup)
	return g
}

func (g *Group) Run(ctx context.Context) (err error) {
	g.mu.Lock()
	if g.stopped || g.running {
		g.mu.Unlock()
		return errors.Wrap(errs.Unsupported, "worker group is already running or stopped")
	}
	g.running = true
	g.mu.Unlock()

	defer close(g.done)
	defer func() {
		if cerr := g.cleanup(context.WithoutCancel(ctx)); cerr != nil && err == nil {
			err = cerr
		}
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-g.quit:
			cancel()
		case <-ctx.Done():
		}
	}()

	eg, ctx := errgroup.WithContext(ctx)
	for i, runner := range g.runners {
		runner := runner
		name := g.names[i]
		eg.Go(func() error {
			ctx := logger.WithContext(ctx, slogx.String("runner", name))
			logger.InfoContext(ctx, "Worker started")
			if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return errors.Wrapf(err, "runner %q failed", name)
			}
			logger.InfoContext(ctx, "Worker stopped")
			return nil
		})
	}
	return errors.WithStack(eg.Wait())
}

func (g *Group) cleanup(ctx context.Context) error {
	var errList []error
	for i := len(g.cleanups) - 1; i >= 0; i-- {
		if err := g.cleanups[i](ctx); err != nil {
			logger.ErrorContext(ctx, "Failed to clean up worker resource", err)
			errList = append(errList, err)
		}
	}
	if len(errList) > 0 {
		return errors.Wrap(errors.Join(errList...), "cleanup failed")
	}
	return nil
}

func (g *Group) Shutdown() error {
	return g.ShutdownWithContext(context.Background())
}

// ShutdownWithContext stops every runner and waits for cleanup to finish.
// A group that never ran only runs its cleanup functions.
func (g *Group) ShutdownWithContext(ctx context.Context) (err error) {
	g.quitOnce.Do(func() {
		g.mu.Lock()
		g.stopped = true
		running := g.running
		g.mu.Unlock()

		close(g.quit)
		if !running {
			err = g.cleanup(ctx)
			return
		}
		select {
		case <-g.done:
		case <-time.After(shutdownTimeout):
			err = errors.Wrap(errs.Timeout, "worker shutdown timeout")
		case <-ctx.Done():
			err = errors.Wrap(ctx.Err(), "worker shutdown context canceled")
		}
	})
	return
}
