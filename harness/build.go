package harness

import (
	"errors"
	"io"
	"os/exec"
)

// BuildStep is the external command that prepares the subject binary before
// any fixture runs, typically "cargo build". Its own output is passed through
// to Output so that compiler errors remain visible.
type BuildStep struct {
	Command []string
	Dir     string
	Output  io.Writer
	Logger  Logger
}

// Run executes the build command and waits for it. A spawn failure or a
// non-zero exit both come back as a *BuildError; either one aborts the whole
// harness run.
func (b *BuildStep) Run() error {
	if len(b.Command) == 0 {
		return errors.New("no build command configured")
	}
	logger := b.Logger
	if logger == nil {
		logger = NullLogger()
	}
	logger.Printf("building subject: %s", describeCommand(b.Command))

	cmd := exec.Command(b.Command[0], b.Command[1:]...)
	cmd.Dir = b.Dir
	cmd.Stdout = b.Output
	cmd.Stderr = b.Output
	if err := cmd.Run(); err != nil {
		return &BuildError{Command: describeCommand(b.Command), Err: err}
	}
	return nil
}
