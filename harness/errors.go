package harness

import "fmt"

// FixtureLoadError means the fixture input directory could not be enumerated.
// It is fatal: without the list of fixtures there is nothing to run.
type FixtureLoadError struct {
	Dir string
	Err error
}

func (e *FixtureLoadError) Error() string {
	return fmt.Sprintf("cannot load fixtures from %s: %s", e.Dir, e.Err)
}

func (e *FixtureLoadError) Unwrap() error { return e.Err }

// BuildError means the precondition build step for the subject program
// failed. It is fatal: no fixtures are run.
type BuildError struct {
	Command string
	Err     error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build step %s failed: %s", e.Command, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

// LaunchError means the subject binary could not be started at all. Unlike a
// crash of the subject, this indicates a broken environment, so it aborts the
// whole run rather than counting against one fixture.
type LaunchError struct {
	Command string
	Err     error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("cannot launch subject as %s: %s", e.Command, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }
