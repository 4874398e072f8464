package core

// CellState is the liveness of a single position.
type CellState uint8

const (
	// Unknown is the zero value. It is never stored in a map and marks
	// positions that were never set.
	Unknown CellState = iota
	// Alive marks a live cell.
	Alive
	// Dead marks a dead cell.
	Dead
)

// String returns the lowercase state name.
func (s CellState) String() string {
	switch s {
	case Alive:
		return "alive"
	case Dead:
		return "dead"
	default:
		return "unknown"
	}
}

// Valid reports whether s is a storable state.
func (s CellState) Valid() bool { return s == Alive || s == Dead }

// Position is a coordinate in some map topology. Implementations must be
// comparable value types: maps key on them directly.
type Position interface {
	// Neighbours returns a freshly allocated slice of adjacent positions.
	Neighbours() []Position
}

// Strategy computes the next state of a position.
type Strategy interface {
	Apply(p Position) CellState
}

// StrategyFunc adapts an ordinary function to the Strategy interface.
type StrategyFunc func(p Position) CellState

// Apply calls f(p).
func (f StrategyFunc) Apply(p Position) CellState { return f(p) }

// StateReader exposes read access to cell state.
type StateReader interface {
	Ask(p Position) (CellState, bool)
}

// Size describes the dimensions of a grid. Depth is zero for flat grids.
type Size struct {
	Columns int
	Rows    int
	Depth   int
}
