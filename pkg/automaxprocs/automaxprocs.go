// Package automaxprocs aligns GOMAXPROCS with the container CPU quota and logs the change.
package automaxprocs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orb-forge/pkg/logger"
	"github.com/gaze-network/orb-forge/pkg/logger/slogx"
	"go.uber.org/automaxprocs/maxprocs"
)

// Init sets GOMAXPROCS from the CPU quota. It is a no-op outside Linux containers with a quota,
// and an explicit GOMAXPROCS environment variable always wins.
func Init(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx).With(
		slogx.String("package", "automaxprocs"),
		slogx.String("event", "set_gomaxprocs"),
		slogx.Int("prevMaxprocs", Current()),
	)

	printf := func(format string, v ...any) {
		var attrs []slog.Attr
		// maxprocs passes the resulting value as the only argument
		if val, ok := utils.Optional(v); ok {
			if _, exists := os.LookupEnv("GOMAXPROCS"); exists {
				val = Current()
			}
			if n, ok := val.(int); ok {
				attrs = append(attrs, slogx.Int("maxprocs", n))
			}
		}
		log.LogAttrs(ctx, slog.LevelInfo, fmt.Sprintf(format, v...), attrs...)
	}

	if _, err := maxprocs.Set(maxprocs.Logger(printf), maxprocs.Min(1)); err != nil {
		return Current(), errors.WithStack(err)
	}
	return Current(), nil
}

// Current returns the current value of GOMAXPROCS.
func Current() int {
	return runtime.GOMAXPROCS(0)
}
