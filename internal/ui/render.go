// Package ui renders benchmark reports, history listings and comparisons
// for the terminal.
package ui

import (
	"fmt"
	"io"
	"text/tabwriter"

	"ubench/internal/history"
	"ubench/internal/report"
)

// RenderRecord writes the structured report as an aligned table.
func RenderRecord(w io.Writer, rec *report.Record) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "METRIC\tVALUE")
	fmt.Fprintf(tw, "mean\t%s\n", rec.Mean)
	fmt.Fprintf(tw, "min\t%s\n", rec.Min)
	fmt.Fprintf(tw, "max\t%s\n", rec.Max)
	fmt.Fprintf(tw, "std\t%s\n", rec.Std)
	tw.Flush()

	if len(rec.Times) == 0 {
		return
	}
	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "ROUND\tTIME")
	for i, t := range rec.Times {
		fmt.Fprintf(tw, "%d\t%s\n", i+1, t)
	}
	tw.Flush()
}

// RenderRuns writes recorded runs as a table, newest first. meanOf
// formats a run's mean so the caller controls units and rounding.
func RenderRuns(w io.Writer, runs []history.Run, meanOf func(history.Run) string) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "ID\tLABEL\tCOMMAND\tROUNDS\tMEAN\tRECORDED")
	for _, r := range runs {
		label := r.Label
		if label == "" {
			label = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%s\n",
			r.ID, label, r.Command, r.Rounds, meanOf(r), r.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	tw.Flush()
}

// RenderComparison writes the delta between two runs with a colored
// PASS / FAIL / IMPR status.
func RenderComparison(w io.Writer, c history.Comparison, threshold float64, meanOf func(history.Run) string) {
	status := c.Status(threshold)

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "\tPREVIOUS\tCURRENT\tDIFF %\tSTATUS")
	fmt.Fprintf(tw, "mean\t%s\t%s\t%+.2f%%\t%s\n",
		meanOf(c.Prev), meanOf(c.Curr), c.MeanDiff, StatusStyle(status).Render(status))
	tw.Flush()
}
