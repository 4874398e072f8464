// Package topology provides concrete positions. Point2D and Point3D carry no
// adjacency; Moore2D and Moore3D wrap around a torus of fixed size.
package topology

import "openlife/internal/core"

// Neighbourhood names, as used in configuration and rule registration.
const (
	NameNone  = "none"
	NameMoore = "moore"
	NameRow   = "row"
)

// Point2D is a flat grid coordinate with an empty neighbourhood.
type Point2D struct {
	X, Y int
}

// Neighbours always returns an empty slice.
func (p Point2D) Neighbours() []core.Position { return []core.Position{} }

// Point3D is a layered grid coordinate with an empty neighbourhood.
type Point3D struct {
	X, Y, Z int
}

// Neighbours always returns an empty slice.
func (p Point3D) Neighbours() []core.Position { return []core.Position{} }

// Grid2D enumerates Point2D positions row by row.
func Grid2D(columns, rows int) []core.Position {
	out := make([]core.Position, 0, columns*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < columns; x++ {
			out = append(out, Point2D{X: x, Y: y})
		}
	}
	return out
}

// Grid3D enumerates Point3D positions floor by floor, far depth first.
func Grid3D(columns, rows, depth int) []core.Position {
	out := make([]core.Position, 0, columns*rows*depth)
	for y := 0; y < rows; y++ {
		for z := depth - 1; z >= 0; z-- {
			for x := 0; x < columns; x++ {
				out = append(out, Point3D{X: x, Y: y, Z: z})
			}
		}
	}
	return out
}

// Row is a cell of one row of a W-wide grid. Its neighbourhood is the cell to
// the left and the cell to the right, wrapping at the edges.
type Row struct {
	X, Y int
	W    int
}

// Neighbours returns the left and right cells, in that order.
func (p Row) Neighbours() []core.Position {
	return []core.Position{
		Row{X: core.Wrap(p.X-1, p.W), Y: p.Y, W: p.W},
		Row{X: core.Wrap(p.X+1, p.W), Y: p.Y, W: p.W},
	}
}

// RowGrid2D enumerates Row positions row by row.
func RowGrid2D(columns, rows int) []core.Position {
	out := make([]core.Position, 0, columns*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < columns; x++ {
			out = append(out, Row{X: x, Y: y, W: columns})
		}
	}
	return out
}
