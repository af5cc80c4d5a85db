package usecase

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orb-forge/common/errs"
	"github.com/gaze-network/orb-forge/pkg/logger"
	"github.com/gaze-network/orb-forge/pkg/logger/slogx"
)

const (
	maxConflictRetries = 5
	conflictBackoff    = 20 * time.Millisecond
)

// retryOnConflict runs fn until it succeeds, fails with anything but errs.Conflict,
// or maxConflictRetries attempts are spent.
func retryOnConflict(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxConflictRetries; attempt++ {
		err = fn()
		if !errors.Is(err, errs.Conflict) {
			return err
		}
		logger.DebugContext(ctx, "storage write conflict, retrying", slogx.Int("attempt", attempt), slogx.Error(err))

		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-time.After(time.Duration(attempt) * conflictBackoff):
		}
	}
	return errors.Wrapf(err, "gave up after %d attempts", maxConflictRetries)
}
