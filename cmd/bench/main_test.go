package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"hyperVNS/internal/bench"
)

func TestRun_WritesCSV(t *testing.T) {
	out := filepath.Join(t.TempDir(), "res", "out.csv")
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{
		"run",
		"--pairs", "6x2,8x3",
		"--variants", "uniform,greedy",
		"--runs", "2",
		"--time_limit", "5ms",
		"--pool_size", "4",
		"--parallel", "2",
		"--out", out,
	}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "Сохранено:")
	assert.Contains(t, stderr.String(), "batch started")

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	// Заголовок + 2 пары * 2 варианта
	require.Len(t, rows, 5)
	assert.Equal(t, "GVNS", rows[1][1])
	assert.Equal(t, "GRVNS", rows[2][1])
	assert.Equal(t, rows[1][0], rows[4][0], "one batch id per invocation")
}

func TestRun_ConfigFileWithOverride(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "plan.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(`
pairs: ["5x2"]
variants: [uniform]
runs: 1
time_limit: 2ms
disable: [crossover, local_search]
out: `+filepath.Join(dir, "from-config.csv")+`
`), 0o600))

	override := filepath.Join(dir, "override.csv")
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"run", "--config", cfg, "--out", override}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	_, err := os.Stat(override)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "from-config.csv"))
	assert.True(t, os.IsNotExist(err))
}

func TestRun_InvalidInput(t *testing.T) {
	tests := map[string][]string{
		"bad pair":     {"run", "--pairs", "5by2"},
		"bad variant":  {"run", "--variants", "tabu"},
		"zero runs":    {"run", "--runs", "0"},
		"missing plan": {"run", "--config", filepath.Join(t.TempDir(), "none.yaml")},
		"unknown flag": {"run", "--algos", "GA"},
		"unknown cmd":  {"solve"},
		"bad category": {"run", "--disable", "annealing"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(context.Background(), args, &stdout, &stderr)
			assert.Equal(t, 1, code)
			assert.Contains(t, stderr.String(), "Ошибка:")
		})
	}
}

func TestPlanCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run(context.Background(), []string{"plan"}, &stdout, &stderr), stderr.String())

	plan := bench.DefaultPlan()
	plan.Pairs = nil
	require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &plan))
	assert.Equal(t, bench.DefaultPlan(), plan)
}
