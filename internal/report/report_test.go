package report

import (
	"encoding/json"
	"testing"

	"ubench/internal/format"
	"ubench/internal/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRecord(t *testing.T) {
	st := stats.Stats{Mean: 1000000, Min: 1000000, Max: 1000000, Std: 0}

	rep := Build(st, []int64{1000000, 1000000, 1000000, 1000000, 1000000}, Options{SignDigits: 4})

	require.NotNil(t, rep.Record)
	assert.Empty(t, rep.Summary)
	assert.Equal(t, "1ms", rep.Record.Mean)
	assert.Equal(t, "1ms", rep.Record.Min)
	assert.Equal(t, "1ms", rep.Record.Max)
	assert.Equal(t, "0ns", rep.Record.Std)
	assert.Nil(t, rep.Record.Times)
}

func TestBuildPretty(t *testing.T) {
	st := stats.Stats{Mean: 716, Min: 167, Max: 1265, Std: 549}

	rep := Build(st, []int64{167, 716, 1265}, Options{SignDigits: 4, Pretty: true})

	require.Nil(t, rep.Record)
	assert.Equal(t, "716ns +/- 549ns", rep.Summary)
}

func TestBuildPrettyIgnoresListTimings(t *testing.T) {
	st := stats.Stats{Mean: 716, Std: 549}

	rep := Build(st, []int64{716}, Options{Pretty: true, ListTimings: true})

	assert.Nil(t, rep.Record)
	assert.Equal(t, "716ns +/- 549ns", rep.Summary)
}

func TestBuildListTimings(t *testing.T) {
	st := stats.Stats{Mean: 1234567, Min: 1000000, Max: 1500000, Std: 200000}

	rep := Build(st, []int64{1234567, 1000000, 1500000}, Options{SignDigits: 4, ListTimings: true})

	require.NotNil(t, rep.Record)
	// Aggregates are rounded to 4 significant digits...
	assert.Equal(t, "1ms 235µs", rep.Record.Mean)
	// ...but the raw per-round timings never are.
	assert.Equal(t, []string{"1ms 234µs 567ns", "1ms", "1ms 500µs"}, rep.Record.Times)
}

func TestBuildListTimingsKeepsUnit(t *testing.T) {
	st := stats.Stats{Mean: 104900000, Min: 103600000, Max: 105900000, Std: 800000}

	rep := Build(st, []int64{103600000, 105900000}, Options{
		Unit:        format.UnitMs,
		SignDigits:  4,
		ListTimings: true,
	})

	require.NotNil(t, rep.Record)
	assert.Equal(t, "104.90 ms", rep.Record.Mean)
	assert.Equal(t, []string{"103.60 ms", "105.90 ms"}, rep.Record.Times)
}

func TestReportJSON(t *testing.T) {
	rec := Report{Record: &Record{Mean: "1ms", Min: "1ms", Max: "1ms", Std: "0ns"}}
	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, `{"mean":"1ms","min":"1ms","max":"1ms","std":"0ns"}`, string(data))

	pretty := Report{Summary: "716ns +/- 549ns"}
	data, err = json.Marshal(pretty)
	require.NoError(t, err)
	assert.Equal(t, `"716ns +/- 549ns"`, string(data))
}
