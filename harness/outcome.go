package harness

import (
	"bytes"
	"os"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Outcome is the classification of one fixture run.
type Outcome int

const (
	// Pass: the subject terminated normally and its output matched the
	// recorded expectation byte for byte.
	Pass Outcome = iota
	// Mismatch: normal termination, but the output differed from the
	// expectation, or the expectation file could not be read.
	Mismatch
	// Crash: the subject's runtime aborted while processing the fixture.
	Crash
)

func (o Outcome) Failed() bool { return o != Pass }

func (o Outcome) String() string {
	switch o {
	case Pass:
		return "OK"
	case Mismatch:
		return "KO"
	case Crash:
		return "PANICKED"
	}
	return "UNKNOWN"
}

// Classify decides the Outcome for one run. Crash detection comes first and
// is final: the expectation file is never read for an aborted run, since the
// captured output of a crashed process proves nothing even if it happens to
// match. The comparison is exact, with no whitespace normalization, so a
// missing or extra trailing newline is a mismatch.
func Classify(run RunResult, expectedPath string, debugLogger Logger) Outcome {
	if debugLogger == nil {
		debugLogger = NullLogger()
	}
	if run.Aborted {
		return Crash
	}
	expected, err := os.ReadFile(expectedPath)
	if err != nil {
		debugLogger.Printf("cannot read expected output %s: %s", expectedPath, err)
		return Mismatch
	}
	if bytes.Equal(expected, run.Stdout) {
		return Pass
	}
	logDiff(debugLogger, expected, run.Stdout)
	return Mismatch
}

func logDiff(logger Logger, expected, actual []byte) {
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(expected)),
		B:        difflib.SplitLines(string(actual)),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  3,
	})
	if err != nil {
		logger.Printf("cannot compute diff: %s", err)
		return
	}
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		logger.Printf("%s", line)
	}
}

// CaseResult ties an Outcome to the fixture it belongs to.
type CaseResult struct {
	ID      string
	Outcome Outcome
}

// Results accumulates every classified case over one harness run.
type Results struct {
	Cases    []CaseResult
	Failures []CaseResult
}

func (r *Results) record(c CaseResult) {
	r.Cases = append(r.Cases, c)
	if c.Outcome.Failed() {
		r.Failures = append(r.Failures, c)
	}
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

func (r Results) Summary() Summary {
	return Summary{Total: len(r.Cases), Failed: len(r.Failures)}
}

// Summary is the pair of counters behind the final verdict line.
type Summary struct {
	Total  int
	Failed int
}
