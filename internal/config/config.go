// Package config holds the parameters of a simulation session.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"openlife/internal/core"
	"openlife/pkg/topology"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable consulted by Load when no path is
// given.
const EnvPath = "OPENLIFE_CONFIG"

const (
	// Topology2D selects a flat grid map.
	Topology2D = "2d"
	// Topology3D selects a layered grid map.
	Topology3D = "3d"

	// NeighbourhoodNone uses positions with an empty neighbourhood.
	NeighbourhoodNone = topology.NameNone
	// NeighbourhoodMoore uses toroidal Moore neighbourhoods.
	NeighbourhoodMoore = topology.NameMoore
	// NeighbourhoodRow uses left/right neighbours within a row (2d only).
	NeighbourhoodRow = topology.NameRow
)

// Config controls map shape, rule selection and seeding.
type Config struct {
	Topology      string  `yaml:"topology"`
	Columns       int     `yaml:"columns"`
	Rows          int     `yaml:"rows"`
	Depth         int     `yaml:"depth"`
	Neighbourhood string  `yaml:"neighbourhood"`
	Rule          string  `yaml:"rule"`
	Rulestring    string  `yaml:"rulestring"`
	Seed          int64   `yaml:"seed"`
	Density       float64 `yaml:"density"`
	Generations   int     `yaml:"generations"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Topology:      Topology2D,
		Columns:       16,
		Rows:          16,
		Depth:         1,
		Neighbourhood: NeighbourhoodMoore,
		Rule:          "life",
		Seed:          42,
		Density:       0.3,
		Generations:   1,
	}
}

// FromMap populates a Config from a string map. Unparsable or out of range
// values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["topology"]; ok && (v == Topology2D || v == Topology3D) {
		c.Topology = v
	}
	if v, ok := cfg["columns"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Columns = parsed
		}
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["depth"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Depth = parsed
		}
	}
	if v, ok := cfg["neighbourhood"]; ok && (v == NeighbourhoodNone || v == NeighbourhoodMoore || v == NeighbourhoodRow) {
		c.Neighbourhood = v
	}
	if v, ok := cfg["rule"]; ok && v != "" {
		c.Rule = v
	}
	if v, ok := cfg["rulestring"]; ok {
		c.Rulestring = v
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["generations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Generations = parsed
		}
	}
	return c
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Topology, "topology", c.Topology, "map topology: 2d or 3d")
	fs.IntVar(&c.Columns, "columns", c.Columns, "grid columns")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows (floors in 3d)")
	fs.IntVar(&c.Depth, "depth", c.Depth, "grid depth (3d only)")
	fs.StringVar(&c.Neighbourhood, "neighbourhood", c.Neighbourhood, "neighbourhood: none, moore or row")
	fs.StringVar(&c.Rule, "rule", c.Rule, "registered rule name")
	fs.StringVar(&c.Rulestring, "rulestring", c.Rulestring, "B/S rulestring, overrides -rule")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial population")
	fs.Float64Var(&c.Density, "density", c.Density, "probability a seeded cell starts alive")
	fs.IntVar(&c.Generations, "generations", c.Generations, "generations to evolve")
}

// Size returns the configured grid dimensions. Depth is zero for 2d maps.
func (c Config) Size() core.Size {
	s := core.Size{Columns: c.Columns, Rows: c.Rows}
	if c.Topology == Topology3D {
		s.Depth = c.Depth
	}
	return s
}

// Validate reports the first precondition violation in c.
func (c Config) Validate() error {
	switch c.Topology {
	case Topology2D:
		if err := core.CheckDimensions(c.Columns, c.Rows); err != nil {
			return err
		}
	case Topology3D:
		if err := core.CheckDimensions(c.Columns, c.Rows, c.Depth); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown topology %q", c.Topology)
	}
	switch c.Neighbourhood {
	case NeighbourhoodNone, NeighbourhoodMoore:
	case NeighbourhoodRow:
		if c.Topology != Topology2D {
			return fmt.Errorf("neighbourhood %q needs topology %q", c.Neighbourhood, Topology2D)
		}
	default:
		return fmt.Errorf("unknown neighbourhood %q", c.Neighbourhood)
	}
	if c.Rule == "" && c.Rulestring == "" {
		return errors.New("no rule selected")
	}
	if c.Rulestring == "" {
		if want := core.RuleNeighbourhood(c.Rule); want != "" && want != c.Neighbourhood {
			return fmt.Errorf("%w: rule %q needs neighbourhood %q, got %q",
				core.ErrNeighbourhoodMismatch, c.Rule, want, c.Neighbourhood)
		}
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("density %v outside [0, 1]", c.Density)
	}
	if c.Generations < 0 {
		return fmt.Errorf("negative generation count %d", c.Generations)
	}
	return nil
}

// Load reads a YAML file over DefaultConfig. An empty path falls back to
// $OPENLIFE_CONFIG; when that is empty too the defaults are returned.
func Load(path string) (Config, error) {
	c := DefaultConfig()
	if path == "" {
		path = os.Getenv(EnvPath)
		if path == "" {
			return c, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}
