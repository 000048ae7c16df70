package harness

import (
	"bytes"
	"errors"
	"os/exec"
)

// DefaultPanicExitCode is the exit status the Rust runtime uses when the
// subject panics. It is a convention of that runtime, not of this harness,
// which is why Invoker carries it as a field rather than hardcoding it.
const DefaultPanicExitCode = 101

// RunResult is what one invocation of the subject program produced. It is
// consumed immediately by Classify and not retained.
type RunResult struct {
	Stdout   []byte
	Aborted  bool
	ExitCode int
}

// Invoker runs the subject binary against one input file at a time.
type Invoker struct {
	BinaryPath    string
	PanicExitCode int
	Logger        Logger
}

// Invoke spawns the subject as "<binary> <inputPath>" with no stdin, captures
// its entire standard output, and blocks until it terminates. A non-zero exit
// other than the panic sentinel is still a normal termination: the subject
// exits non-zero for scripts it rejects, and the recorded expected output is
// what decides pass or fail. Only the sentinel (or death by signal) marks the
// run as aborted. If the process cannot be started at all, Invoke returns a
// *LaunchError, which the caller treats as fatal to the whole run.
func (inv *Invoker) Invoke(inputPath string) (RunResult, error) {
	logger := inv.Logger
	if logger == nil {
		logger = NullLogger()
	}
	argv := []string{inv.BinaryPath, inputPath}
	logger.Printf("running %s", describeCommand(argv))

	var stdout bytes.Buffer
	cmd := exec.Command(inv.BinaryPath, inputPath)
	cmd.Stdout = &stdout

	err := cmd.Run()
	if err == nil {
		return RunResult{Stdout: stdout.Bytes(), ExitCode: 0}, nil
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return RunResult{}, &LaunchError{Command: describeCommand(argv), Err: err}
	}

	code := exitErr.ExitCode()
	sentinel := inv.PanicExitCode
	if sentinel == 0 {
		sentinel = DefaultPanicExitCode
	}
	if code == sentinel || code == -1 {
		// Output from a panicked process is meaningless; drop it so it can
		// never be mistaken for a comparable result.
		logger.Printf("subject aborted with exit code %d", code)
		return RunResult{Aborted: true, ExitCode: code}, nil
	}
	return RunResult{Stdout: stdout.Bytes(), ExitCode: code}, nil
}
