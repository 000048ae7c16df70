package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/vincent-prz/rox-vm/harness"
)

// ConsoleReporter prints one line per fixture as it completes, then the
// summary. Failure statuses are highlighted so they stand out in a long run.
type ConsoleReporter struct {
	Output               io.Writer
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
	DisableColor         bool
}

func (c *ConsoleReporter) statusText(outcome harness.Outcome) string {
	var col *color.Color
	switch outcome {
	case harness.Mismatch:
		col = color.New(color.FgRed, color.Bold)
	case harness.Crash:
		col = color.New(color.FgYellow, color.Bold)
	default:
		return outcome.String()
	}
	if c.DisableColor {
		col.DisableColor()
	}
	return col.Sprint(outcome.String())
}

func (c *ConsoleReporter) CaseFinished(id string, outcome harness.Outcome, debugOutput harness.CapturedOutput) {
	fmt.Fprintf(c.Output, "%s: %s\n", id, c.statusText(outcome))

	failed := outcome.Failed()
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(c.Output, "    DEBUG ")
	}
}

func (c *ConsoleReporter) RunFinished(summary harness.Summary) {
	if summary.Failed == 0 {
		fmt.Fprintf(c.Output, "All good, %d tests passed.\n", summary.Total)
	} else {
		fmt.Fprintf(c.Output, "%d tests failed out of %d.\n", summary.Failed, summary.Total)
	}
}
