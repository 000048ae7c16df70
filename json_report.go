package main

import (
	"os"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/vincent-prz/rox-vm/harness"
)

// writeJSONReport records the run's results in a machine-readable form for
// pipelines that want more than the process exit code.
func writeJSONReport(path string, results harness.Results) error {
	cases := ldvalue.ArrayBuild()
	for _, c := range results.Cases {
		cases.Add(ldvalue.ObjectBuild().
			Set("name", ldvalue.String(c.ID)).
			Set("status", ldvalue.String(c.Outcome.String())).
			Build())
	}
	summary := results.Summary()
	report := ldvalue.ObjectBuild().
		Set("total", ldvalue.Int(summary.Total)).
		Set("failed", ldvalue.Int(summary.Failed)).
		Set("passed", ldvalue.Bool(results.OK())).
		Set("cases", cases.Build()).
		Build()
	return os.WriteFile(path, []byte(report.JSONString()+"\n"), 0600)
}
