// Package rules holds the stock strategies. Every strategy consults the
// position's neighbourhood exactly once per Apply, whether or not its verdict
// depends on it.
package rules

import "openlife/internal/core"

// Kill marks every position dead.
type Kill struct{}

// Apply returns core.Dead.
func (Kill) Apply(p core.Position) core.CellState {
	p.Neighbours()
	return core.Dead
}

// Overpopulate marks every position alive.
type Overpopulate struct{}

// Apply returns core.Alive.
func (Overpopulate) Apply(p core.Position) core.CellState {
	p.Neighbours()
	return core.Alive
}

func init() {
	core.RegisterRule("kill", func(core.StateReader) core.Strategy { return Kill{} })
	core.RegisterRule("overpopulate", func(core.StateReader) core.Strategy { return Overpopulate{} })
	core.RegisterRule("life", func(cells core.StateReader) core.Strategy { return Conway(cells) })
	core.RegisterRule("highlife", func(cells core.StateReader) core.Strategy {
		return Life{Cells: cells, Birth: CountsOf(3, 6), Survive: CountsOf(2, 3)}
	})
	core.RegisterRule("seeds", func(cells core.StateReader) core.Strategy {
		return Life{Cells: cells, Birth: CountsOf(2)}
	})
}
