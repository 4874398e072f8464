package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"openlife/internal/core"
	_ "openlife/pkg/rules"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"topology":      "3d",
		"columns":       "4",
		"rows":          "0",
		"depth":         "2",
		"neighbourhood": "none",
		"rule":          "kill",
		"seed":          "7",
		"density":       "1.5",
		"generations":   "3",
	})
	assert.Equal(t, Topology3D, c.Topology)
	assert.Equal(t, 4, c.Columns)
	assert.Equal(t, DefaultConfig().Rows, c.Rows, "non-positive rows ignored")
	assert.Equal(t, 2, c.Depth)
	assert.Equal(t, NeighbourhoodNone, c.Neighbourhood)
	assert.Equal(t, "kill", c.Rule)
	assert.Equal(t, int64(7), c.Seed)
	assert.Equal(t, DefaultConfig().Density, c.Density, "out of range density ignored")
	assert.Equal(t, 3, c.Generations)

	assert.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestBind(t *testing.T) {
	c := DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-topology=3d", "-depth=5", "-rulestring=B36/S23"}))
	assert.Equal(t, Topology3D, c.Topology)
	assert.Equal(t, 5, c.Depth)
	assert.Equal(t, "B36/S23", c.Rulestring)
	assert.Equal(t, core.Size{Columns: 16, Rows: 16, Depth: 5}, c.Size())
}

func TestValidate(t *testing.T) {
	mutate := func(f func(*Config)) Config {
		c := DefaultConfig()
		f(&c)
		return c
	}

	err := mutate(func(c *Config) { c.Columns = 0 }).Validate()
	assert.ErrorIs(t, err, core.ErrInvalidDimension)

	err = mutate(func(c *Config) { c.Topology = Topology3D; c.Depth = 0 }).Validate()
	assert.ErrorIs(t, err, core.ErrInvalidDimension)

	assert.NoError(t, mutate(func(c *Config) { c.Depth = 0 }).Validate(), "depth unused in 2d")
	assert.Error(t, mutate(func(c *Config) { c.Topology = "4d" }).Validate())
	assert.Error(t, mutate(func(c *Config) { c.Neighbourhood = "hex" }).Validate())
	assert.NoError(t, mutate(func(c *Config) { c.Neighbourhood = NeighbourhoodRow }).Validate())
	assert.Error(t, mutate(func(c *Config) { c.Topology = Topology3D; c.Neighbourhood = NeighbourhoodRow }).Validate())
	assert.Error(t, mutate(func(c *Config) { c.Rule = "" }).Validate())

	err = mutate(func(c *Config) { c.Rule = "rule90" }).Validate()
	assert.ErrorIs(t, err, core.ErrNeighbourhoodMismatch, "elementary rules read left/right neighbours")
	assert.NoError(t, mutate(func(c *Config) { c.Rule = "rule90"; c.Neighbourhood = NeighbourhoodRow }).Validate())
	assert.NoError(t, mutate(func(c *Config) {
		c.Rule = "rule90"
		c.Rulestring = "B3/S23"
	}).Validate(), "rulestring takes precedence over rule")
	assert.Error(t, mutate(func(c *Config) { c.Density = -0.1 }).Validate())
	assert.Error(t, mutate(func(c *Config) { c.Generations = -1 }).Validate())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "life.yaml")
	require.NoError(t, os.WriteFile(path, []byte("topology: 3d\ncolumns: 3\nrows: 2\ndepth: 4\nrule: overpopulate\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Topology3D, c.Topology)
	assert.Equal(t, core.Size{Columns: 3, Rows: 2, Depth: 4}, c.Size())
	assert.Equal(t, "overpopulate", c.Rule)
	assert.Equal(t, DefaultConfig().Seed, c.Seed, "unset keys keep defaults")
}

func TestLoadFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.yaml")
	require.NoError(t, os.WriteFile(path, []byte("columns: 5\n"), 0o644))
	t.Setenv(EnvPath, path)

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 5, c.Columns)
}

func TestLoadDefaultsAndErrors(t *testing.T) {
	t.Setenv(EnvPath, "")
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("columns: [1, 2\n"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)
}
