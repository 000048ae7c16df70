package harness

import (
	"fmt"
	"io"
)

// Logger receives debug messages describing what the harness is doing, such
// as the exact command lines it runs.
type Logger interface {
	Printf(message string, args ...interface{})
}

type nullLogger struct{}

func (n nullLogger) Printf(message string, args ...interface{}) {}

func NullLogger() Logger { return nullLogger{} }

// CapturedOutput is the accumulated debug output for a single fixture run.
type CapturedOutput []string

// CapturingLogger is a Logger that retains messages so they can be dumped
// later, normally only when the fixture they belong to has failed. The run
// loop is strictly sequential, so there is a single writer and no locking.
type CapturingLogger struct {
	output CapturedOutput
}

func (l *CapturingLogger) Printf(message string, args ...interface{}) {
	l.output = append(l.output, fmt.Sprintf(message, args...))
}

func (l *CapturingLogger) Output() CapturedOutput {
	return append(CapturedOutput(nil), l.output...)
}

func (output CapturedOutput) Dump(dest io.Writer, prefix string) {
	for _, m := range output {
		fmt.Fprintf(dest, "%s%s\n", prefix, m)
	}
}
