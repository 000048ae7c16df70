package harness

// Reporter receives each case's outcome as soon as it is classified, so a
// long run gives feedback while it is still going, and then the final
// summary. Implementations must not write to the fixture files.
type Reporter interface {
	CaseFinished(id string, outcome Outcome, debugOutput CapturedOutput)
	RunFinished(summary Summary)
}

type nullReporter struct{}

func (n nullReporter) CaseFinished(string, Outcome, CapturedOutput) {}
func (n nullReporter) RunFinished(Summary)                          {}

func NullReporter() Reporter { return nullReporter{} }
