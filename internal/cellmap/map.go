package cellmap

import (
	"fmt"

	"openlife/internal/core"
)

// Map is a sparse store of cell state keyed by position. It performs no
// locking; callers sharing a Map across goroutines must synchronise.
type Map struct {
	cells   map[core.Position]core.CellState
	setters map[core.CellState]func(core.Position)
}

// New returns an empty Map.
func New() *Map {
	m := &Map{cells: make(map[core.Position]core.CellState)}
	m.setters = map[core.CellState]func(core.Position){
		core.Alive: m.SetAlive,
		core.Dead:  m.SetDead,
	}
	return m
}

// SetAlive marks p alive, replacing any previous state.
func (m *Map) SetAlive(p core.Position) { m.cells[p] = core.Alive }

// SetDead marks p dead, replacing any previous state.
func (m *Map) SetDead(p core.Position) { m.cells[p] = core.Dead }

// SetState routes s to its setter. States without a setter are rejected and
// nothing is written. A nil *Map reports ErrNilCollaborator.
func (m *Map) SetState(p core.Position, s core.CellState) error {
	if m == nil {
		return fmt.Errorf("cellmap: %w", core.ErrNilCollaborator)
	}
	set, ok := m.setters[s]
	if !ok {
		return fmt.Errorf("%w: %d", core.ErrUnknownState, s)
	}
	set(p)
	return nil
}

// Ask returns the last state set for p. The boolean is false when p was never
// set.
func (m *Map) Ask(p core.Position) (core.CellState, bool) {
	s, ok := m.cells[p]
	return s, ok
}

// Len returns the number of positions with a recorded state.
func (m *Map) Len() int { return len(m.cells) }

// Population counts alive positions.
func (m *Map) Population() int {
	n := 0
	for _, s := range m.cells {
		if s == core.Alive {
			n++
		}
	}
	return n
}

// Snapshot returns a read-only copy of the current state.
func (m *Map) Snapshot() Snapshot {
	cells := make(map[core.Position]core.CellState, len(m.cells))
	for p, s := range m.cells {
		cells[p] = s
	}
	return Snapshot{cells: cells}
}

// Snapshot is a frozen copy of a Map.
type Snapshot struct {
	cells map[core.Position]core.CellState
}

// Ask returns the state p had when the snapshot was taken.
func (s Snapshot) Ask(p core.Position) (core.CellState, bool) {
	st, ok := s.cells[p]
	return st, ok
}
