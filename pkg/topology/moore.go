package topology

import "openlife/internal/core"

// Moore2D is a position on a W x H torus whose neighbourhood is the eight
// surrounding cells. On grids narrower than three cells wrapped duplicates
// and the position itself are dropped.
type Moore2D struct {
	X, Y int
	W, H int
}

// Neighbours returns the distinct wrapped Moore neighbours of p.
func (p Moore2D) Neighbours() []core.Position {
	seen := make(map[Moore2D]struct{}, 8)
	out := make([]core.Position, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := Moore2D{X: core.Wrap(p.X+dx, p.W), Y: core.Wrap(p.Y+dy, p.H), W: p.W, H: p.H}
			if n == p {
				continue
			}
			if _, dup := seen[n]; dup {
				continue
			}
			seen[n] = struct{}{}
			out = append(out, n)
		}
	}
	return out
}

// Moore3D is a position on a W x H x D torus with the 26-cell neighbourhood.
type Moore3D struct {
	X, Y, Z int
	W, H, D int
}

// Neighbours returns the distinct wrapped Moore neighbours of p.
func (p Moore3D) Neighbours() []core.Position {
	seen := make(map[Moore3D]struct{}, 26)
	out := make([]core.Position, 0, 26)
	for dz := -1; dz <= 1; dz++ {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				n := Moore3D{
					X: core.Wrap(p.X+dx, p.W),
					Y: core.Wrap(p.Y+dy, p.H),
					Z: core.Wrap(p.Z+dz, p.D),
					W: p.W, H: p.H, D: p.D,
				}
				if n == p {
					continue
				}
				if _, dup := seen[n]; dup {
					continue
				}
				seen[n] = struct{}{}
				out = append(out, n)
			}
		}
	}
	return out
}

// MooreGrid2D enumerates Moore2D positions of a W x H torus row by row.
func MooreGrid2D(columns, rows int) []core.Position {
	out := make([]core.Position, 0, columns*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < columns; x++ {
			out = append(out, Moore2D{X: x, Y: y, W: columns, H: rows})
		}
	}
	return out
}

// MooreGrid3D enumerates Moore3D positions floor by floor, far depth first.
func MooreGrid3D(columns, rows, depth int) []core.Position {
	out := make([]core.Position, 0, columns*rows*depth)
	for y := 0; y < rows; y++ {
		for z := depth - 1; z >= 0; z-- {
			for x := 0; x < columns; x++ {
				out = append(out, Moore3D{X: x, Y: y, Z: z, W: columns, H: rows, D: depth})
			}
		}
	}
	return out
}
