package rules

import (
	"openlife/internal/core"
	"openlife/pkg/topology"
)

// Elementary implements a Wolfram code. The first two neighbours of a position
// are read as its left and right cells; missing ones count as dead.
type Elementary struct {
	Cells core.StateReader
	Rule  uint8
}

// Apply looks up the rule bit for the (left, centre, right) pattern.
func (e Elementary) Apply(p core.Position) core.CellState {
	n := p.Neighbours()
	var left, right uint8
	if len(n) > 0 {
		left = e.bit(n[0])
	}
	if len(n) > 1 {
		right = e.bit(n[1])
	}
	idx := (left << 2) | (e.bit(p) << 1) | right
	if (e.Rule>>idx)&1 == 1 {
		return core.Alive
	}
	return core.Dead
}

func (e Elementary) bit(p core.Position) uint8 {
	if e.Cells == nil {
		return 0
	}
	if s, ok := e.Cells.Ask(p); ok && s == core.Alive {
		return 1
	}
	return 0
}

func init() {
	for name, code := range map[string]uint8{"rule30": 30, "rule90": 90, "rule110": 110} {
		code := code
		core.RegisterRuleWithNeighbourhood(name, topology.NameRow, func(cells core.StateReader) core.Strategy {
			return Elementary{Cells: cells, Rule: code}
		})
	}
}
