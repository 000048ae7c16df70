package harness

// RunParams is everything the run controller needs for one harness run.
// Build may be nil to skip the precondition step.
type RunParams struct {
	Build       *BuildStep
	InputDir    string
	ExpectedDir string
	Invoker     *Invoker
	Reporter    Reporter
}

// Run drives one complete harness run: build the subject, load the fixture
// set, then invoke/classify/report each fixture in order. Per-fixture
// failures (Mismatch, Crash) are recorded and the loop moves on; only
// environment-level problems — a failed build, an unloadable fixture
// directory, a subject binary that cannot be launched — come back as an
// error, and they abort the run where they occur. The Results returned
// alongside a mid-run error cover the fixtures processed up to that point.
func Run(p RunParams) (Results, error) {
	reporter := p.Reporter
	if reporter == nil {
		reporter = NullReporter()
	}

	var results Results

	if p.Build != nil {
		if err := p.Build.Run(); err != nil {
			return results, err
		}
	}

	fixtures, err := LoadFixtureSet(p.InputDir, p.ExpectedDir)
	if err != nil {
		return results, err
	}

	for _, fixture := range fixtures {
		var debugLogger CapturingLogger
		invoker := *p.Invoker
		invoker.Logger = &debugLogger

		run, err := invoker.Invoke(fixture.InputPath)
		if err != nil {
			return results, err
		}
		outcome := Classify(run, fixture.ExpectedPath, &debugLogger)
		reporter.CaseFinished(fixture.ID, outcome, debugLogger.Output())
		results.record(CaseResult{ID: fixture.ID, Outcome: outcome})
	}

	reporter.RunFinished(results.Summary())
	return results, nil
}
