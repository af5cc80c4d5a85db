package migrate

import (
	"fmt"
	"io"

	"github.com/golang-migrate/migrate/v4"
)

var _ migrate.Logger = (*consoleLogger)(nil)

// consoleLogger prints migration progress to the command output, prefixed by module name.
type consoleLogger struct {
	out     io.Writer
	prefix  string
	verbose bool
}

func (l *consoleLogger) Printf(format string, v ...interface{}) {
	fmt.Fprintf(l.out, l.prefix+format, v...)
}

func (l *consoleLogger) Verbose() bool {
	return l.verbose
}
