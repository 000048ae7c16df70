// Package harness contains the engine of the golden-file regression harness.
//
// The general model is:
//
// 1. The subject program (the rox interpreter) is built once, as an external
// precondition step, then treated as an opaque binary: the harness only
// observes its standard output and its exit status.
//
// 2. Each fixture pairs an input script with a recorded expected output. The
// harness runs the subject once per fixture and classifies the run as a pass,
// an output mismatch, or a crash of the subject's runtime.
//
// 3. Outcomes are streamed to a Reporter as they happen and accumulated into
// Results, which determine the harness's own exit code.
//
// The code that knows about console formatting and command-line parameters
// lives in the main package on top of this one.
package harness
