package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/abiosoft/lineprefix"
	"github.com/dustin/go-humanize"
	"github.com/samber/lo"

	"github.com/pescuma/reuseify/lib/consoles"
	"github.com/pescuma/reuseify/lib/model"
)

const diagnosticIndent = "         "

// Report accumulates the outcome of each file. Rendering happens only in Print.
type Report struct {
	outcomes []*model.Outcome
}

func New() *Report {
	return &Report{}
}

func (r *Report) Add(outcome *model.Outcome) {
	r.outcomes = append(r.outcomes, outcome)
}

func (r *Report) List(kind model.OutcomeKind) []*model.Outcome {
	return lo.Filter(r.outcomes, func(o *model.Outcome, _ int) bool {
		return o.Kind == kind
	})
}

func (r *Report) Count(kind model.OutcomeKind) int {
	return lo.CountBy(r.outcomes, func(o *model.Outcome) bool {
		return o.Kind == kind
	})
}

func (r *Report) Total() int {
	return len(r.outcomes)
}

func (r *Report) HasFailures() bool {
	return r.Count(model.Failed) > 0
}

// Print writes the annotated, skipped and failed sections followed by the tally.
func (r *Report) Print(w io.Writer, styles *consoles.Styles) {
	if annotated := r.List(model.Annotated); len(annotated) > 0 {
		fmt.Fprintln(w, styles.Bold("Annotated:"))
		for _, o := range annotated {
			fmt.Fprintf(w, "  %v  %v  %v\n", styles.BoldGreen(o.Kind), o.Path,
				styles.Dim("("+strings.Join(o.Authors, ", ")+")"))
		}
		fmt.Fprintln(w)
	}

	if skipped := r.List(model.Skipped); len(skipped) > 0 {
		fmt.Fprintln(w, styles.Bold("Skipped:"))
		for _, o := range skipped {
			fmt.Fprintf(w, "  %v  %v  %v\n", styles.Yellow(o.Kind), o.Path, styles.Dim("("+o.Reason.String()+")"))
		}
		fmt.Fprintln(w)
	}

	if failed := r.List(model.Failed); len(failed) > 0 {
		fmt.Fprintln(w, styles.Bold("Failed:"))
		for _, o := range failed {
			fmt.Fprintf(w, "  %v  %v\n", styles.BoldRed(o.Kind), o.Path)

			if o.Diagnostic != "" {
				diag := lineprefix.New(lineprefix.Writer(w), lineprefix.Prefix(diagnosticIndent))
				for _, line := range strings.Split(o.Diagnostic, "\n") {
					fmt.Fprintln(diag, styles.Red(line))
				}
			}
		}
		fmt.Fprintln(w)
	}

	failedCount := r.Count(model.Failed)
	failedLine := "Failed:  " + humanize.Comma(int64(failedCount))

	fmt.Fprintln(w, strings.Repeat("─", 40))
	fmt.Fprintf(w, "Total:   %v\n", humanize.Comma(int64(r.Total())))
	fmt.Fprintln(w, styles.Green("Success: "+humanize.Comma(int64(r.Count(model.Annotated)))))
	fmt.Fprintln(w, styles.Yellow("Skipped: "+humanize.Comma(int64(r.Count(model.Skipped)))))
	if failedCount > 0 {
		fmt.Fprintln(w, styles.Red(failedLine))
	} else {
		fmt.Fprintln(w, failedLine)
	}
}
