package app

import (
	"fmt"

	"openlife/internal/cellmap"
	"openlife/internal/config"
	"openlife/internal/core"
	"openlife/internal/evolver"
	"openlife/pkg/rules"
	"openlife/pkg/topology"

	rng "openlife/pkg/core"
)

// shape is the rendering half of a grid map.
type shape interface {
	Render() string
	Size() core.Size
}

// generation is the read side rules see during a tick: the state of the map
// when the tick started.
type generation struct {
	snap cellmap.Snapshot
}

func (g *generation) Ask(p core.Position) (core.CellState, bool) { return g.snap.Ask(p) }

// Session evolves every position of a grid map once per tick.
type Session struct {
	cfg       config.Config
	cells     *cellmap.Map
	shape     shape
	positions []core.Position
	view      *generation
	evolver   *evolver.Evolver
	rule      string
	tick      int
}

// NewSession builds the map, positions and rule described by cfg. Options are
// passed through to the evolver.
func NewSession(cfg config.Config, opts ...evolver.Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	s := &Session{cfg: cfg, view: &generation{}}

	size := cfg.Size()
	moore := cfg.Neighbourhood == config.NeighbourhoodMoore
	row := cfg.Neighbourhood == config.NeighbourhoodRow
	switch cfg.Topology {
	case config.Topology3D:
		gm, err := cellmap.NewGridMap3D(size.Columns, size.Rows, size.Depth)
		if err != nil {
			return nil, err
		}
		s.cells, s.shape = gm.Map, gm
		if moore {
			s.positions = topology.MooreGrid3D(size.Columns, size.Rows, size.Depth)
		} else {
			s.positions = topology.Grid3D(size.Columns, size.Rows, size.Depth)
		}
	default:
		gm, err := cellmap.NewGridMap2D(size.Columns, size.Rows)
		if err != nil {
			return nil, err
		}
		s.cells, s.shape = gm.Map, gm
		switch {
		case moore:
			s.positions = topology.MooreGrid2D(size.Columns, size.Rows)
		case row:
			s.positions = topology.RowGrid2D(size.Columns, size.Rows)
		default:
			s.positions = topology.Grid2D(size.Columns, size.Rows)
		}
	}
	s.view.snap = s.cells.Snapshot()

	strategy, err := newStrategy(cfg, s.view)
	if err != nil {
		return nil, err
	}
	s.evolver, err = evolver.New(s.cells, strategy, opts...)
	if err != nil {
		return nil, err
	}
	s.rule = describeRule(cfg, strategy)
	return s, nil
}

// describeRule names the rule, adding B/S notation for totalistic rules.
func describeRule(cfg config.Config, strategy core.Strategy) string {
	name := cfg.Rule
	if cfg.Rulestring != "" {
		name = "custom"
	}
	if r, ok := strategy.(interface{ Rulestring() string }); ok {
		return name + " " + r.Rulestring()
	}
	return name
}

func newStrategy(cfg config.Config, cells core.StateReader) (core.Strategy, error) {
	if cfg.Rulestring != "" {
		life, err := rules.ParseLife(cfg.Rulestring, cells)
		if err != nil {
			return nil, err
		}
		return life, nil
	}
	return core.NewRule(cfg.Rule, cells)
}

// Seed sets every position alive with probability cfg.Density and dead
// otherwise, and resets the generation counter.
func (s *Session) Seed(seed int64) {
	r := rng.NewRNG(seed)
	for _, p := range s.positions {
		if r.Chance(s.cfg.Density) {
			s.cells.SetAlive(p)
		} else {
			s.cells.SetDead(p)
		}
	}
	s.tick = 0
}

// Tick evolves every position once against the state at the start of the
// tick.
func (s *Session) Tick() error {
	s.view.snap = s.cells.Snapshot()
	for _, p := range s.positions {
		if _, err := s.evolver.EvolvePosition(p); err != nil {
			return fmt.Errorf("generation %d: %w", s.tick+1, err)
		}
	}
	s.tick++
	return nil
}

// Run performs n ticks.
func (s *Session) Run(n int) error {
	for i := 0; i < n; i++ {
		if err := s.Tick(); err != nil {
			return err
		}
	}
	return nil
}

// Cells exposes the underlying map.
func (s *Session) Cells() *cellmap.Map { return s.cells }

// Positions returns the enumerated positions in evolution order.
func (s *Session) Positions() []core.Position {
	return append([]core.Position(nil), s.positions...)
}

// Generation returns the number of completed ticks since the last seed.
func (s *Session) Generation() int { return s.tick }

// Population counts alive cells.
func (s *Session) Population() int { return s.cells.Population() }

// Size returns the map dimensions.
func (s *Session) Size() core.Size { return s.shape.Size() }

// Render draws the map shape.
func (s *Session) Render() string { return s.shape.Render() }

// Rule describes the active rule, e.g. "life B3/S23" or "kill".
func (s *Session) Rule() string { return s.rule }

// Config returns the configuration the session was built from.
func (s *Session) Config() config.Config { return s.cfg }
