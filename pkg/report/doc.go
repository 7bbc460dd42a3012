// Package report turns validated users into a run report and renders it.
//
// Build evaluates each user once and records whether it is valid, which
// fields failed and, for diagnostics, which addresses failed. Write renders
// the report as console text, JSON or YAML:
//
//	users, err := record.LoadFile("data.json")
//	if err != nil {
//	    return err
//	}
//	r := report.Build("data.json", users)
//	if err := report.Write(os.Stdout, r, report.FormatText); err != nil {
//	    return err
//	}
package report
