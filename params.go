package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/vincent-prz/rox-vm/harness"
)

// Defaults match the repository layout, so a bare invocation from the
// repository root needs no arguments at all.
const defaultBinaryPath = "target/debug/rox"
const defaultInputDir = "tests/cases"
const defaultExpectedDir = "tests/expected_output"
const defaultBuildCommand = "cargo build"

type commandParams struct {
	binaryPath    string
	inputDir      string
	expectedDir   string
	buildCommand  string
	panicExitCode int
	jsonOutput    string
	noColor       bool
	debug         bool
	debugAll      bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.binaryPath, "bin", defaultBinaryPath, "path to the interpreter binary under test")
	fs.StringVar(&c.inputDir, "tests", defaultInputDir, "directory of input scripts")
	fs.StringVar(&c.expectedDir, "expected", defaultExpectedDir, "directory of recorded expected outputs")
	fs.StringVar(&c.buildCommand, "build", defaultBuildCommand, "build command run before the tests (empty to skip building)")
	fs.IntVar(&c.panicExitCode, "panic-exit-code", harness.DefaultPanicExitCode,
		"exit code the subject's runtime uses for an unrecoverable abort")
	fs.StringVar(&c.jsonOutput, "json-output", "", "write a machine-readable results file to this path")
	fs.BoolVar(&c.noColor, "no-color", false, "disable colored status output")
	fs.BoolVar(&c.debug, "debug", false, "show captured debug output for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "show captured debug output for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	return true
}

func (c commandParams) buildArgv() []string {
	return strings.Fields(c.buildCommand)
}
