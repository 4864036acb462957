package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs a fresh root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "bfsbench dev"), out)
}

func TestCompare_Generated(t *testing.T) {
	metrics := filepath.Join(t.TempDir(), "bfs.prom")
	out, _, err := execute(t, "compare",
		"--vertices", "200", "--rarity", "5", "--seed", "3", "--start", "0",
		"--engines", "sequential,level,pool:3",
		"--metrics-file", metrics)
	require.NoError(t, err)

	assert.Contains(t, out, "vertices=200")
	assert.Contains(t, out, "pool:3")
	assert.NotContains(t, out, "NO")

	prom, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(prom), `bfsbench_runs_total{engine="pool:3",outcome="ok"} 1`)
}

func TestCompare_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edges.csv")
	require.NoError(t, os.WriteFile(path, []byte("0,1\n1,2\n"), 0o644))

	out, _, err := execute(t, "compare", "--file", path, "--delimiter", ",", "--undirected",
		"--start", "2", "--engines", "sequential,pool:2", "--log-level", "warn")
	require.NoError(t, err)
	assert.Contains(t, out, "vertices=3 edges=4")
	assert.Contains(t, out, "1 1 1")
}

func TestCompare_Errors(t *testing.T) {
	_, _, err := execute(t, "compare", "--engines", "dfs")
	assert.Error(t, err)

	_, _, err = execute(t, "compare", "--vertices", "0")
	assert.Error(t, err)

	_, _, err = execute(t, "compare", "--log-level", "loud")
	assert.Error(t, err)
}

func TestSuite_Config(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "suite.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(`
seed: 1
engines: [sequential, level, "pool:2"]
generated:
  vertex_counts: [20, 40]
  rarities: [1, 10]
`), 0o644))

	outDir := filepath.Join(dir, "out")
	out, stderr, err := execute(t, "suite", "--config", cfg, "--output-dir", outDir, "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "4 cases")
	assert.Contains(t, stderr, `"msg":"suite started"`)

	for _, name := range []string{"impl_time_on_dist.csv", "dist_freq.csv", "wrong_results.csv"} {
		_, err := os.Stat(filepath.Join(outDir, "generated_"+name))
		assert.NoError(t, err, name)
	}
}

func TestTrace(t *testing.T) {
	_, stderr, err := execute(t, "compare", "--vertices", "30", "--seed", "1", "--start", "0",
		"--engines", "sequential,pool:2", "--trace", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"Name":"bfs.sequential"`)
	assert.Contains(t, stderr, `"Name":"bfs.pool"`)
}

func TestMetricExporter(t *testing.T) {
	_, _, err := execute(t, "version", "--metric-exporter", "statsd")
	assert.ErrorIs(t, err, ErrUnknownExporter)

	out, _, err := execute(t, "version", "--metric-exporter", "none")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
