package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfpath/config"
	"github.com/katalvlaran/wfpath/samplepath"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	color.NoColor = true
	var stdout, stderr bytes.Buffer
	root := newRootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func writeInput(t *testing.T, dir string) string {
	t.Helper()
	name := filepath.Join(dir, "obs.tsv")
	require.NoError(t, os.WriteFile(name, []byte("5 10 1 1\n0 10 0 0\n10 10 2 2\n"), 0o600))

	return name
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "wfpath dev"))
}

func TestGrid(t *testing.T) {
	out, _, err := execute(t, "grid", "--t0", "0", "--t1", "1", "--dt", "0.5", "--min-grid", "4")
	require.NoError(t, err)
	assert.Equal(t, "0\n0.25\n0.5\n0.75\n1\n", out)

	_, _, err = execute(t, "grid", "--t0", "1", "--t1", "1")
	assert.Error(t, err)
}

func TestInit_TSV(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir)

	out, errOut, err := execute(t, "init", "-i", input, "-P", "constant", "--dt", "10", "--min-grid", "4",
		"--log-output", filepath.Join(dir, "run.log"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "trajectory\ttime", lines[0])
	assert.Len(t, lines, 11)
	assert.Contains(t, errOut, "Did not specify either")
}

func TestInit_JSONSnapshot(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir)
	outFile := filepath.Join(dir, "snap.json")

	_, _, err := execute(t, "init", "-i", input, "-P", "constant", "--dt", "10", "--min-grid", "4",
		"-f", "json", "-o", outFile, "--seed", "3", "--log-output", filepath.Join(dir, "run.log"))
	require.NoError(t, err)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	var snap samplepath.Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	assert.Equal(t, []int{0, 4, 9}, snap.SampleIndex)
	_, err = samplepath.Restore(&snap)
	assert.NoError(t, err)
}

func TestInit_PopsizeFileSummaryPlot(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir)
	sizes := filepath.Join(dir, "sizes.txt")
	require.NoError(t, os.WriteFile(sizes, []byte("0 1\n0.5 2\n"), 0o600))
	plot := filepath.Join(dir, "plot.html")

	_, errOut, err := execute(t, "init", "-i", input, "-P", sizes, "--dt", "0.1",
		"--summary", "--plot", plot, "--log-output", filepath.Join(dir, "run.log"))
	require.NoError(t, err)
	assert.Contains(t, errOut, "Log-lik")
	assert.Contains(t, errOut, "wfpath_stitch_bridges_total{status=ok}")

	html, err := os.ReadFile(plot)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Allele frequency trajectory")
}

func TestInit_Errors(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir)

	_, _, err := execute(t, "init", "-P", "constant")
	assert.ErrorIs(t, err, config.ErrMissingInput)

	_, _, err = execute(t, "init", "-i", input)
	assert.ErrorIs(t, err, config.ErrMissingPopsize)

	bad := filepath.Join(dir, "bad.tsv")
	require.NoError(t, os.WriteFile(bad, []byte("11 10 0 0\n"), 0o600))
	_, _, err = execute(t, "init", "-i", bad, "-P", "constant", "--log-output", filepath.Join(dir, "run.log"))
	assert.Error(t, err)
}
