package main

import (
	"encoding/json"
	"testing"
	"time"

	"ubench/internal/history"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCmdEmpty(t *testing.T) {
	setupTest(t, &mockStore{})

	out, err := execute(t, newHistoryCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "No recorded runs.")
}

func TestHistoryCmdList(t *testing.T) {
	setupTest(t, &mockStore{runs: []history.Run{
		{ID: 2, Label: "tuned", Command: "sleep 0.1", Rounds: 50, MeanNs: 95000000, CreatedAt: time.Unix(0, 0).UTC()},
		{ID: 1, Command: "sleep 0.1", Rounds: 50, MeanNs: 104900000, CreatedAt: time.Unix(0, 0).UTC()},
	}})

	out, err := execute(t, newHistoryCmd())
	require.NoError(t, err)

	assert.Contains(t, out, "COMMAND")
	assert.Contains(t, out, "tuned")
	assert.Contains(t, out, "95ms")
	assert.Contains(t, out, "104ms 900µs")
}

func TestHistoryCmdLimit(t *testing.T) {
	store := &mockStore{runs: []history.Run{
		{ID: 3, Command: "echo three", Rounds: 1, MeanNs: 3},
		{ID: 2, Command: "echo two", Rounds: 1, MeanNs: 2},
		{ID: 1, Command: "echo one", Rounds: 1, MeanNs: 1},
	}}
	setupTest(t, store)

	out, err := execute(t, newHistoryCmd(), "--limit", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "echo three")
	assert.Contains(t, out, "echo two")
	assert.NotContains(t, out, "echo one")
}

func TestHistoryCmdJSON(t *testing.T) {
	setupTest(t, &mockStore{runs: []history.Run{
		{ID: 1, Command: "true", Rounds: 5, MeanNs: 716},
	}})

	out, err := execute(t, newHistoryCmd(), "--json")
	require.NoError(t, err)

	var runs []history.Run
	require.NoError(t, json.Unmarshal([]byte(out), &runs))
	require.Len(t, runs, 1)
	assert.Equal(t, "true", runs[0].Command)
	assert.Equal(t, 716.0, runs[0].MeanNs)
}
