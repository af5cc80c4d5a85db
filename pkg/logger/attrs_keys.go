package logger

import "github.com/gaze-network/orb-forge/pkg/logger/slogx"

// Keys for log attributes.
const (
	ErrorKey           = slogx.ErrorKey
	ErrorVerboseKey    = "error_verbose"
	ErrorStackTraceKey = "error_stacktrace"
)
