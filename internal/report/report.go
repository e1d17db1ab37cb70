// Package report writes lint diagnostics.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rusq/e2ekit/lint"
)

// Report is the JSON document written by WriteJSON.
type Report struct {
	Files       int               `json:"files_with_problems"`
	Problems    int               `json:"problems"`
	Diagnostics []lint.Diagnostic `json:"diagnostics"`
}

func newReport(ds []lint.Diagnostic) Report {
	files := map[string]struct{}{}
	for _, d := range ds {
		files[d.Filename] = struct{}{}
	}
	if ds == nil {
		ds = []lint.Diagnostic{}
	}
	return Report{Files: len(files), Problems: len(ds), Diagnostics: ds}
}

// Write writes ds in format, which is "text" or "json".
func Write(w io.Writer, format string, ds []lint.Diagnostic) error {
	switch format {
	case "json":
		return WriteJSON(w, ds)
	case "text", "":
		return WriteText(w, ds)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

func WriteJSON(w io.Writer, ds []lint.Diagnostic) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newReport(ds))
}

// WriteText writes the diagnostics grouped by file, one per line.
func WriteText(w io.Writer, ds []lint.Diagnostic) error {
	if len(ds) == 0 {
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	var last string
	for _, d := range ds {
		if d.Filename != last {
			if last != "" {
				fmt.Fprintln(tw)
			}
			fmt.Fprintln(tw, d.Filename)
			last = d.Filename
		}
		fmt.Fprintf(tw, "  %d:%d\terror\t%s\t%s\n", d.Line, d.Column, d.Message, d.RuleID)
	}
	r := newReport(ds)
	fmt.Fprintf(tw, "\n%d problem(s) in %d file(s)\n", r.Problems, r.Files)
	return tw.Flush()
}
