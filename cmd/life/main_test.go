package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"openlife/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPrintsEachGeneration(t *testing.T) {
	t.Setenv(config.EnvPath, "")
	var out bytes.Buffer
	err := run([]string{"-columns=2", "-rows=2", "-rule=overpopulate", "-density=0", "-generations=2"}, &out)
	require.NoError(t, err)

	want := strings.Join([]string{
		"generation 0 population 0", ". .\n. .",
		"generation 1 population 4", ". .\n. .",
		"generation 2 population 4", ". .\n. .",
	}, "\n") + "\n"
	assert.Equal(t, want, out.String())
}

func TestRunDumpsMetrics(t *testing.T) {
	t.Setenv(config.EnvPath, "")
	var out bytes.Buffer
	err := run([]string{"-topology=3d", "-columns=1", "-rows=1", "-depth=2", "-rule=kill", "-quiet", "-metrics"}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "generation 1 population 0")
	assert.Contains(t, out.String(), `openlife_evolver_verdicts_total{state="dead"} 2`)
	assert.Contains(t, out.String(), "openlife_evolver_steps_total 2")
}

func TestConfigFileWithFlagOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.yaml")
	require.NoError(t, os.WriteFile(path, []byte("topology: 3d\ncolumns: 1\nrows: 1\ndepth: 1\nrule: kill\n"), 0o644))

	opts, err := parseArgs([]string{"-config", path, "-rule=overpopulate"})
	require.NoError(t, err)
	assert.Equal(t, config.Topology3D, opts.cfg.Topology)
	assert.Equal(t, "overpopulate", opts.cfg.Rule)
	assert.Equal(t, 1, opts.cfg.Depth)
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	t.Setenv(config.EnvPath, "")
	err := run([]string{"-columns=0"}, &bytes.Buffer{})
	assert.Error(t, err)

	err = run([]string{"-rule=unknown"}, &bytes.Buffer{})
	assert.Error(t, err)
}
