package ui

import (
	"bytes"
	"testing"
	"time"

	"ubench/internal/format"
	"ubench/internal/history"
	"ubench/internal/report"

	"github.com/stretchr/testify/assert"
)

func nsMean(r history.Run) string {
	return format.Format(r.MeanNs, format.UnitNone, 4)
}

func TestRenderRecord(t *testing.T) {
	var buf bytes.Buffer
	RenderRecord(&buf, &report.Record{Mean: "1ms", Min: "1ms", Max: "1ms", Std: "0ns"})

	out := buf.String()
	assert.Contains(t, out, "METRIC")
	assert.Contains(t, out, "mean")
	assert.Contains(t, out, "1ms")
	assert.NotContains(t, out, "ROUND")
}

func TestRenderRecordWithTimes(t *testing.T) {
	var buf bytes.Buffer
	RenderRecord(&buf, &report.Record{
		Mean: "1ms", Min: "1ms", Max: "1ms", Std: "0ns",
		Times: []string{"1ms 2µs", "999µs 998ns"},
	})

	out := buf.String()
	assert.Contains(t, out, "ROUND")
	assert.Contains(t, out, "1ms 2µs")
	assert.Contains(t, out, "999µs 998ns")
}

func TestRenderRuns(t *testing.T) {
	var buf bytes.Buffer
	RenderRuns(&buf, []history.Run{
		{ID: 2, Label: "tuned", Command: "sleep 0.1", Rounds: 50, MeanNs: 95000000, CreatedAt: time.Unix(0, 0).UTC()},
		{ID: 1, Command: "sleep 0.1", Rounds: 50, MeanNs: 104900000, CreatedAt: time.Unix(0, 0).UTC()},
	}, nsMean)

	out := buf.String()
	assert.Contains(t, out, "tuned")
	assert.Contains(t, out, "sleep 0.1")
	assert.Contains(t, out, "95ms")
	// Unlabeled runs render a dash placeholder.
	assert.Contains(t, out, "-")
}

func TestRenderComparison(t *testing.T) {
	var buf bytes.Buffer
	c := history.Compare(
		history.Run{Command: "true", MeanNs: 100},
		history.Run{Command: "true", MeanNs: 150},
	)
	RenderComparison(&buf, c, 10, nsMean)

	out := buf.String()
	assert.Contains(t, out, "+50.00%")
	assert.Contains(t, out, "FAIL")
}
