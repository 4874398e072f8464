// Package evolver drives single positions through a rule strategy and writes
// the verdict back to a map.
package evolver

import (
	"fmt"

	"openlife/internal/core"
)

// Cells is the write side of a map as seen by the evolver.
type Cells interface {
	SetState(p core.Position, s core.CellState) error
}

// Observer is notified after each successful evolution step.
type Observer interface {
	Evolved(p core.Position, s core.CellState)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(p core.Position, s core.CellState)

// Evolved calls f(p, s).
func (f ObserverFunc) Evolved(p core.Position, s core.CellState) { f(p, s) }

// Option configures an Evolver.
type Option func(*Evolver)

// WithObserver registers o. Observers run in registration order.
func WithObserver(o Observer) Option {
	return func(e *Evolver) {
		if o != nil {
			e.observers = append(e.observers, o)
		}
	}
}

// Evolver applies one strategy to positions of one map.
type Evolver struct {
	cells     Cells
	rules     core.Strategy
	observers []Observer
}

// New binds cells and rules. Neither may be nil. A typed nil passes this
// check; it is up to the Cells implementation to fail on use, as
// (*cellmap.Map)(nil) does with ErrNilCollaborator.
func New(cells Cells, rules core.Strategy, opts ...Option) (*Evolver, error) {
	if cells == nil {
		return nil, fmt.Errorf("evolver: map: %w", core.ErrNilCollaborator)
	}
	if rules == nil {
		return nil, fmt.Errorf("evolver: rules: %w", core.ErrNilCollaborator)
	}
	e := &Evolver{cells: cells, rules: rules}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Map returns the map the evolver writes to.
func (e *Evolver) Map() Cells { return e.cells }

// Rules returns the strategy the evolver applies.
func (e *Evolver) Rules() core.Strategy { return e.rules }

// EvolvePosition asks the strategy for p's next state and stores it. The
// verdict is returned even when the map rejects it.
func (e *Evolver) EvolvePosition(p core.Position) (core.CellState, error) {
	next := e.rules.Apply(p)
	if err := e.cells.SetState(p, next); err != nil {
		return next, fmt.Errorf("evolve %v: %w", p, err)
	}
	for _, o := range e.observers {
		o.Evolved(p, next)
	}
	return next, nil
}
