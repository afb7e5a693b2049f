package main

import (
	"bytes"
	"os/exec"
	"testing"

	"ubench/internal/config"
	"ubench/internal/history"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// mockStore is an in-memory history.Store for command tests.
type mockStore struct {
	saved []history.Run
	runs  []history.Run // newest first, like LoadRecent
	err   error
}

func (m *mockStore) Close() error { return nil }

func (m *mockStore) Save(run history.Run) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.saved = append(m.saved, run)
	return int64(len(m.saved)), nil
}

func (m *mockStore) LoadRecent(limit int) ([]history.Run, error) {
	if m.err != nil {
		return nil, m.err
	}
	if limit > len(m.runs) {
		limit = len(m.runs)
	}
	return m.runs[:limit], nil
}

func (m *mockStore) LoadByLabel(label string) (*history.Run, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.runs {
		if m.runs[i].Label == label {
			return &m.runs[i], nil
		}
	}
	return nil, nil
}

// setupTest loads default configuration and restores the injectable
// globals after the test.
func setupTest(t *testing.T, store *mockStore) {
	t.Helper()

	viper.Reset()
	config.Load("")
	t.Cleanup(viper.Reset)

	newStoreFunc = func(path string) (history.Store, error) { return store, nil }
	t.Cleanup(func() {
		newStoreFunc = func(path string) (history.Store, error) { return history.NewSQLiteStore(path) }
		runExecCommand = exec.Command
	})
}

// execute runs a freshly constructed command with args and captures its
// combined output.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}
