package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"rdms/internal/entry"
	"rdms/internal/interchange"
	"rdms/internal/logging"
)

// setupFlags points the global flags at a temp data dir and a missing config.
func setupFlags(t *testing.T) string {
	t.Helper()
	logger = zap.NewNop()
	dir := t.TempDir()
	dataDir = dir
	configPath = filepath.Join(dir, "missing.yaml")
	darkMode = false
	t.Setenv("RDMS_DATA_DIR", "")
	t.Setenv("RDMS_THEME", "")
	t.Setenv("RDMS_DEBUG", "")
	t.Cleanup(func() {
		dataDir = ""
		configPath = ""
		darkMode = false
		logging.CloseAll()
	})
	return dir
}

func writeImport(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, interchange.ImportFile), []byte(content), 0644))
}

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origOut := os.Stdout
	origErr := os.Stderr
	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()
	os.Stdout = wOut
	os.Stderr = wErr

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, rOut)
		_, _ = io.Copy(&buf, rErr)
		done <- buf.String()
	}()

	fn()

	_ = wOut.Close()
	_ = wErr.Close()
	os.Stdout = origOut
	os.Stderr = origErr
	return <-done
}

func TestOpenSessionMissingImport(t *testing.T) {
	dir := setupFlags(t)

	s, err := openSession()
	require.NoError(t, err)

	assert.Equal(t, dir, s.dataDir)
	assert.Equal(t, 0, s.store.Len())
	assert.False(t, s.result.Found)
	assert.Equal(t, "No entries.csv found; starting with an empty list.", s.importSummary())
}

func TestOpenSessionSummaryReportsSkippedRows(t *testing.T) {
	dir := setupFlags(t)
	writeImport(t, dir, "h1,h2,h3,h4\nE1,R1,D1,X1\nbad,row\nE2,R2,D2,X2\n")

	s, err := openSession()
	require.NoError(t, err)

	assert.Equal(t, 2, s.store.Len())
	assert.Equal(t, "Loaded 2 entries from entries.csv. Skipped 1 malformed rows (lines 3).", s.importSummary())
}

func TestOpenSessionDarkFlag(t *testing.T) {
	setupFlags(t)
	darkMode = true

	s, err := openSession()
	require.NoError(t, err)

	opts := formOptions(s)
	assert.True(t, opts.Theme.IsDark)
	assert.Equal(t, s.store, opts.Store)
}

func TestOpenSessionInvalidConfig(t *testing.T) {
	setupFlags(t)
	require.NoError(t, os.WriteFile(configPath, []byte("ui:\n  theme: purple\n"), 0644))

	_, err := openSession()
	assert.Error(t, err)
}

func TestListCmd(t *testing.T) {
	dir := setupFlags(t)
	writeImport(t, dir, "Experiment Name,Researcher Name,Date,Description\nGrowth,Ada,2024-01-01,Plates\nshort\n")

	var runErr error
	out := captureOutput(t, func() {
		runErr = runList(&cobra.Command{}, nil)
	})

	require.NoError(t, runErr)
	assert.Contains(t, out, "Growth")
	assert.Contains(t, out, "Researcher Name")
	assert.Contains(t, out, "skipped: line 3")
}

func TestExportCmd(t *testing.T) {
	dir := setupFlags(t)
	writeImport(t, dir, "a,b,c,d\nGrowth,Ada,2024-01-01,Plates\n")

	var runErr error
	out := captureOutput(t, func() {
		runErr = runExport(&cobra.Command{}, nil)
	})
	require.NoError(t, runErr)
	assert.Contains(t, out, "Entries have been saved to research_data_")

	matches, err := filepath.Glob(filepath.Join(dir, "research_data_*.csv"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Equal(t, "Experiment Name,Researcher Name,Date,Description\nGrowth,Ada,2024-01-01,Plates\n", string(data))
}

func TestExportCmdNoEntries(t *testing.T) {
	setupFlags(t)

	err := runExport(&cobra.Command{}, nil)

	assert.ErrorIs(t, err, interchange.ErrNoEntries)
}

func TestRootCommandWiring(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["list"])
	assert.True(t, names["export"])
	for _, flag := range []string{"config", "data-dir", "dark", "verbose"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(flag), flag)
	}
}

func TestWriteEntryTable(t *testing.T) {
	var buf bytes.Buffer
	writeEntryTable(&buf, []entry.Entry{
		{ExperimentName: "Growth", Researcher: "Ada", Date: "2024-01-01", Description: "Plates"},
		{ExperimentName: "Decay", Researcher: "Grace", Date: "2024-01-02", Description: "Isotopes"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6, buf.String()) // border, header, border, 2 rows, border
	assert.Contains(t, lines[1], "Experiment Name")
	assert.Contains(t, lines[3], "Growth")
	assert.Contains(t, lines[4], "Isotopes")
}

func TestListCmdEmpty(t *testing.T) {
	setupFlags(t)

	var runErr error
	out := captureOutput(t, func() {
		runErr = runList(&cobra.Command{}, nil)
	})

	require.NoError(t, runErr)
	assert.Equal(t, "No entries.\n", out)
}
