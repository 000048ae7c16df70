package harness

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectedFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "expected")
	writeFile(t, path, contents)
	return path
}

func TestClassifyExactMatchIsPass(t *testing.T) {
	run := RunResult{Stdout: []byte("1\n2\n")}
	assert.Equal(t, Pass, Classify(run, expectedFile(t, "1\n2\n"), nil))
}

func TestClassifyDifferentOutputIsMismatch(t *testing.T) {
	run := RunResult{Stdout: []byte("1\n3\n")}
	assert.Equal(t, Mismatch, Classify(run, expectedFile(t, "1\n2\n"), nil))
}

func TestClassifyTrailingNewlineIsSignificant(t *testing.T) {
	run := RunResult{Stdout: []byte("1\n2")}
	assert.Equal(t, Mismatch, Classify(run, expectedFile(t, "1\n2\n"), nil))
}

func TestClassifyMissingExpectedFileIsMismatch(t *testing.T) {
	run := RunResult{Stdout: []byte("anything")}
	missing := filepath.Join(t.TempDir(), "no-such-file")

	var logger CapturingLogger
	assert.Equal(t, Mismatch, Classify(run, missing, &logger))
	require.NotEmpty(t, logger.Output())
	assert.Contains(t, logger.Output()[0], missing)
}

func TestClassifyAbortIsAlwaysCrash(t *testing.T) {
	// Even an empty expectation that would compare equal to the (discarded)
	// output must not turn an aborted run into a pass.
	run := RunResult{Aborted: true, ExitCode: 101}
	assert.Equal(t, Crash, Classify(run, expectedFile(t, ""), nil))
}

func TestClassifyCrashNeverReadsExpectedFile(t *testing.T) {
	run := RunResult{Aborted: true, ExitCode: 101}
	missing := filepath.Join(t.TempDir(), "no-such-file")
	assert.Equal(t, Crash, Classify(run, missing, nil))
}

func TestClassifyMismatchLogsUnifiedDiff(t *testing.T) {
	run := RunResult{Stdout: []byte("actual line\n")}
	var logger CapturingLogger

	require.Equal(t, Mismatch, Classify(run, expectedFile(t, "expected line\n"), &logger))
	dump := strings.Join(logger.Output(), "\n")
	assert.Contains(t, dump, "-expected line")
	assert.Contains(t, dump, "+actual line")
}

func TestOutcomeStatusWords(t *testing.T) {
	assert.Equal(t, "OK", Pass.String())
	assert.Equal(t, "KO", Mismatch.String())
	assert.Equal(t, "PANICKED", Crash.String())
	assert.False(t, Pass.Failed())
	assert.True(t, Mismatch.Failed())
	assert.True(t, Crash.Failed())
}

func TestResultsSummaryCountsFailures(t *testing.T) {
	var results Results
	results.record(CaseResult{ID: "a", Outcome: Pass})
	results.record(CaseResult{ID: "b", Outcome: Mismatch})
	results.record(CaseResult{ID: "c", Outcome: Crash})

	assert.False(t, results.OK())
	assert.Equal(t, Summary{Total: 3, Failed: 2}, results.Summary())
	require.Len(t, results.Failures, 2)
	assert.Equal(t, "b", results.Failures[0].ID)
	assert.Equal(t, "c", results.Failures[1].ID)
}
