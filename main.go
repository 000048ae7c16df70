package main

import (
	"fmt"
	"os"

	"github.com/vincent-prz/rox-vm/harness"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	reporter := &ConsoleReporter{
		Output:               os.Stdout,
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
		DisableColor:         params.noColor,
	}

	var build *harness.BuildStep
	if argv := params.buildArgv(); len(argv) > 0 {
		build = &harness.BuildStep{Command: argv, Output: os.Stderr}
	}

	results, err := harness.Run(harness.RunParams{
		Build:       build,
		InputDir:    params.inputDir,
		ExpectedDir: params.expectedDir,
		Invoker: &harness.Invoker{
			BinaryPath:    params.binaryPath,
			PanicExitCode: params.panicExitCode,
		},
		Reporter: reporter,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if params.jsonOutput != "" {
		if err := writeJSONReport(params.jsonOutput, results); err != nil {
			fmt.Fprintf(os.Stderr, "cannot write results file: %s\n", err)
			os.Exit(1)
		}
	}

	if !results.OK() {
		os.Exit(1)
	}
}
