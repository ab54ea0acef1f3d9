package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"aoc2024/internal/config"
	"aoc2024/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const day1Input = "3   4\n4   3\n2   5\n1   3\n3   9\n3   3\n"

// captureOutput redirects stdout and stderr while fn runs.
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

// setup resets the global flags and points the config at a temp dir.
func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	cfg = config.DefaultConfig()
	cfg.InputDir = filepath.Join(dir, "inputs")
	cfg.History.Path = filepath.Join(dir, "history.db")
	cfg.SessionFile = filepath.Join(dir, "session")
	logger = zap.NewNop()
	configPath = filepath.Join(dir, "config.yaml")
	verbose = false
	timeout = 0

	runPart, runInput, runExample, runWorkers, runNoHistory = 0, "", false, 0, false
	fetchForce, configForce = false, false
	historyLimit = 20
	return dir
}

func writeInput(t *testing.T, day, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(cfg.InputDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.InputDir, "day"+day+".txt"), []byte(body), 0644))
}

func TestParseDays(t *testing.T) {
	got, err := parseDays([]string{"1", "25"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 25}, got)

	for _, bad := range []string{"0", "26", "x"} {
		_, err := parseDays([]string{bad})
		assert.Error(t, err, bad)
	}
}

func TestRunExamples(t *testing.T) {
	setup(t)
	runExample = true

	var err error
	out := captureOutput(t, func() {
		err = runRun(runCmd, []string{"1", "2"})
	})
	require.NoError(t, err, out)
	assert.Contains(t, out, "Historian Hysteria")
	assert.Contains(t, out, "Red-Nosed Reports")
	assert.Contains(t, out, "4/4 solved")

	_, statErr := os.Stat(cfg.History.Path)
	assert.True(t, os.IsNotExist(statErr), "examples are not recorded")
}

func TestRunRecordsHistory(t *testing.T) {
	setup(t)
	writeInput(t, "01", day1Input)

	var err error
	out := captureOutput(t, func() {
		err = runRun(runCmd, []string{"1"})
	})
	require.NoError(t, err, out)
	assert.Contains(t, out, "11")
	assert.Contains(t, out, "31")

	h, err := store.Open(cfg.History.Path)
	require.NoError(t, err)
	defer h.Close()
	entries, err := h.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	out = captureOutput(t, func() {
		err = runHistory(historyCmd, []string{"1"})
	})
	require.NoError(t, err)
	assert.Contains(t, out, "History")
	assert.Contains(t, out, "31")
}

func TestRunPartAndInputFile(t *testing.T) {
	dir := setup(t)
	path := filepath.Join(dir, "mine.txt")
	require.NoError(t, os.WriteFile(path, []byte(day1Input), 0644))
	runPart = 2
	runInput = path

	var err error
	out := captureOutput(t, func() {
		err = runRun(runCmd, []string{"1"})
	})
	require.NoError(t, err, out)
	assert.Contains(t, out, "31")
	assert.Contains(t, out, "1/1 solved")

	err = runRun(runCmd, []string{"1", "2"})
	assert.ErrorContains(t, err, "exactly one day")

	runInput = ""
	runPart = 3
	assert.Error(t, runRun(runCmd, []string{"1"}))
}

func TestRunMissingInput(t *testing.T) {
	setup(t)

	var err error
	out := captureOutput(t, func() {
		err = runRun(runCmd, []string{"1"})
	})
	assert.EqualError(t, err, "2 of 2 jobs failed")
	assert.Contains(t, out, "aoc fetch 1")
	assert.Equal(t, 1, strings.Count(out, "aoc fetch 1"))
}

func TestHistoryEmpty(t *testing.T) {
	setup(t)
	out := captureOutput(t, func() {
		require.NoError(t, runHistory(historyCmd, nil))
	})
	assert.Contains(t, out, "No runs recorded yet.")
}

func TestFetch(t *testing.T) {
	setup(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2024/day/1/input", r.URL.Path)
		w.Write([]byte(day1Input))
	}))
	defer srv.Close()

	cfg.Fetch.BaseURL = srv.URL
	cfg.Session = "abc"

	var err error
	out := captureOutput(t, func() {
		err = runFetch(fetchCmd, []string{"1"})
	})
	require.NoError(t, err)
	assert.Contains(t, out, "saved")

	data, err := os.ReadFile(filepath.Join(cfg.InputDir, "day01.txt"))
	require.NoError(t, err)
	assert.Equal(t, day1Input, string(data))

	out = captureOutput(t, func() {
		err = runFetch(fetchCmd, []string{"1"})
	})
	require.NoError(t, err)
	assert.Contains(t, out, "already exists")
}

func TestFetchNeedsSession(t *testing.T) {
	setup(t)
	t.Setenv("AOC_SESSION", "")
	err := runFetch(fetchCmd, []string{"1"})
	assert.ErrorIs(t, err, config.ErrNoSession)
}

func TestConfigInit(t *testing.T) {
	setup(t)
	out := captureOutput(t, func() {
		require.NoError(t, configInitCmd.RunE(configInitCmd, nil))
	})
	assert.Contains(t, out, "Wrote")

	loaded, err := config.Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, 2024, loaded.Year)

	assert.Error(t, configInitCmd.RunE(configInitCmd, nil))
	configForce = true
	assert.NoError(t, configInitCmd.RunE(configInitCmd, nil))
}

func TestRootListsDays(t *testing.T) {
	dir := setup(t)
	rootCmd.SetArgs([]string{"--config", filepath.Join(dir, "missing.yaml"), "list"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	var err error
	out := captureOutput(t, func() {
		err = rootCmd.Execute()
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Code Chronicle")
	assert.Contains(t, out, "Red-Nosed Reports")
}
