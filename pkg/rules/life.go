package rules

import (
	"fmt"
	"strconv"
	"strings"

	"openlife/internal/core"
)

// maxCount bounds neighbour counts; a 3D Moore neighbourhood has 26 cells.
const maxCount = 31

// Counts is a set of neighbour counts in [0, 31].
type Counts uint32

// CountsOf builds a set from the given counts. Out of range values are
// ignored.
func CountsOf(ns ...int) Counts {
	var c Counts
	for _, n := range ns {
		if n >= 0 && n <= maxCount {
			c |= 1 << uint(n)
		}
	}
	return c
}

// Has reports whether n is in the set.
func (c Counts) Has(n int) bool {
	return n >= 0 && n <= maxCount && c&(1<<uint(n)) != 0
}

// String lists the counts as digits, or comma separated when any count is
// above 9. A single wide count keeps a trailing comma so it parses back.
func (c Counts) String() string {
	var parts []string
	wide := false
	for n := 0; n <= maxCount; n++ {
		if c.Has(n) {
			parts = append(parts, strconv.Itoa(n))
			if n > 9 {
				wide = true
			}
		}
	}
	if !wide {
		return strings.Join(parts, "")
	}
	if len(parts) == 1 {
		return parts[0] + ","
	}
	return strings.Join(parts, ",")
}

// Life is an outer-totalistic birth/survival rule. It reads the current
// generation through Cells; a nil reader behaves as an empty map.
type Life struct {
	Cells   core.StateReader
	Birth   Counts
	Survive Counts
}

// Conway returns the B3/S23 rule reading from cells.
func Conway(cells core.StateReader) Life {
	return Life{Cells: cells, Birth: CountsOf(3), Survive: CountsOf(2, 3)}
}

// Apply counts alive neighbours and applies the birth or survival set
// depending on the current state of p.
func (l Life) Apply(p core.Position) core.CellState {
	alive := 0
	for _, n := range p.Neighbours() {
		if l.alive(n) {
			alive++
		}
	}
	if l.alive(p) {
		if l.Survive.Has(alive) {
			return core.Alive
		}
		return core.Dead
	}
	if l.Birth.Has(alive) {
		return core.Alive
	}
	return core.Dead
}

func (l Life) alive(p core.Position) bool {
	if l.Cells == nil {
		return false
	}
	s, ok := l.Cells.Ask(p)
	return ok && s == core.Alive
}

// Rulestring renders the rule in B/S notation.
func (l Life) Rulestring() string {
	return "B" + l.Birth.String() + "/S" + l.Survive.String()
}

// ParseLife parses a rulestring such as "B3/S23" or "B5,6,7/S5,6,7,8". Digits
// without commas are single counts; a trailing comma marks a single wide
// count, as in "B10,/S2".
func ParseLife(rulestring string, cells core.StateReader) (Life, error) {
	parts := strings.Split(strings.ToUpper(strings.TrimSpace(rulestring)), "/")
	if len(parts) != 2 || !strings.HasPrefix(parts[0], "B") || !strings.HasPrefix(parts[1], "S") {
		return Life{}, fmt.Errorf("%w %q: want B<counts>/S<counts>", core.ErrInvalidRulestring, rulestring)
	}
	birth, err := parseCounts(parts[0][1:])
	if err != nil {
		return Life{}, fmt.Errorf("%w %q: birth: %v", core.ErrInvalidRulestring, rulestring, err)
	}
	survive, err := parseCounts(parts[1][1:])
	if err != nil {
		return Life{}, fmt.Errorf("%w %q: survive: %v", core.ErrInvalidRulestring, rulestring, err)
	}
	return Life{Cells: cells, Birth: birth, Survive: survive}, nil
}

func parseCounts(s string) (Counts, error) {
	if s == "" {
		return 0, nil
	}
	var fields []string
	if strings.Contains(s, ",") {
		fields = strings.Split(strings.TrimSuffix(s, ","), ",")
	} else {
		fields = strings.Split(s, "")
	}
	var c Counts
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return 0, err
		}
		if n < 0 || n > maxCount {
			return 0, fmt.Errorf("count %d out of range", n)
		}
		c |= CountsOf(n)
	}
	return c, nil
}
