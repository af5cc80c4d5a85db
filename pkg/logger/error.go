package logger

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/errors/errbase"
)

// errorAttrReplacer renders error values as their message only.
func errorAttrReplacer(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) == 0 && attr.Key == ErrorKey {
		if err, ok := attr.Value.Any().(error); ok && err != nil {
			attr.Value = slog.StringValue(err.Error())
		}
	}
	return attr
}

// middlewareErrorStackTrace adds the verbose error and its stack trace to records that carry an error.
func middlewareErrorStackTrace() middleware {
	return func(next handleFunc) handleFunc {
		return func(ctx context.Context, rec slog.Record) error {
			var extra []slog.Attr
			rec.Attrs(func(attr slog.Attr) bool {
				if attr.Key != ErrorKey && attr.Key != "err" {
					return true
				}
				err, ok := attr.Value.Any().(error)
				if !ok || err == nil {
					return true
				}
				extra = append(extra, slog.String(ErrorVerboseKey, fmt.Sprintf("%+v", err)))
				var st errbase.StackTraceProvider
				if errors.As(err, &st) {
					extra = append(extra, slog.Any(ErrorStackTraceKey, traceLines(st.StackTrace())))
				}
				return false
			})
			rec.AddAttrs(extra...)
			return next(ctx, rec)
		}
	}
}

func traceLines(frames errbase.StackTrace) []string {
	lines := make([]string, 0, len(frames))

	// walk from the bottom to drop the runtime frames that start every goroutine
	skipping := true
	for i := len(frames) - 1; i >= 0; i-- {
		pc := uintptr(frames[i]) - 1
		fn := runtime.FuncForPC(pc)
		if fn == nil {
			lines = append(lines, "unknown")
			skipping = false
			continue
		}
		name := fn.Name()
		if skipping && strings.HasPrefix(name, "runtime.") {
			continue
		}
		skipping = false
		file, line := fn.FileLine(pc)
		lines = append(lines, fmt.Sprintf("%s %s:%d", name, file, line))
	}
	return lines
}
