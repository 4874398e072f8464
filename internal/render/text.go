package render

import (
	"strings"

	"openlife/internal/core"
)

const (
	flatMarker = "."
	cellMarker = "o"

	outerEdge = "==="
	innerEdge = "---"
)

// Renderer produces a textual drawing of a map's shape.
type Renderer interface {
	Render() string
}

// Grid2D draws a flat Columns x Rows grid of markers.
type Grid2D struct {
	Columns int
	Rows    int
}

// NewGrid2D validates the dimensions and returns the renderer.
func NewGrid2D(columns, rows int) (Grid2D, error) {
	if err := core.CheckDimensions(columns, rows); err != nil {
		return Grid2D{}, err
	}
	return Grid2D{Columns: columns, Rows: rows}, nil
}

// Size returns the grid dimensions.
func (g Grid2D) Size() core.Size { return core.Size{Columns: g.Columns, Rows: g.Rows} }

// Render returns Rows lines of Columns space-separated markers.
func (g Grid2D) Render() string {
	line := strings.TrimSpace(strings.Repeat(flatMarker+" ", g.Columns))
	lines := make([]string, g.Rows)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// Grid3D draws a Columns x Rows x Depth grid as stacked isometric floors, one
// floor per row.
type Grid3D struct {
	Columns int
	Rows    int
	Depth   int
}

// NewGrid3D validates the dimensions and returns the renderer.
func NewGrid3D(columns, rows, depth int) (Grid3D, error) {
	if err := core.CheckDimensions(columns, rows, depth); err != nil {
		return Grid3D{}, err
	}
	return Grid3D{Columns: columns, Rows: rows, Depth: depth}, nil
}

// Size returns the grid dimensions.
func (g Grid3D) Size() core.Size {
	return core.Size{Columns: g.Columns, Rows: g.Rows, Depth: g.Depth}
}

// Render returns the floors top to bottom with no blank line between them.
func (g Grid3D) Render() string {
	var b strings.Builder
	for row := 0; row < g.Rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		g.floor(&b)
	}
	return b.String()
}

// floor writes one floor: far edge, depth bands from far to near with inner
// edges between them, near edge flush left.
func (g Grid3D) floor(b *strings.Builder) {
	writeLine(b, 2*g.Depth, edge(g.Columns, outerEdge))
	for level := g.Depth - 1; level >= 0; level-- {
		b.WriteByte('\n')
		writeLine(b, 2*level+1, band(g.Columns))
		if level > 0 {
			b.WriteByte('\n')
			writeLine(b, 2*(level-1)+2, edge(g.Columns, innerEdge))
		}
	}
	b.WriteByte('\n')
	writeLine(b, 0, edge(g.Columns, outerEdge))
}

func writeLine(b *strings.Builder, indent int, content string) {
	b.WriteString(strings.Repeat(" ", indent))
	b.WriteString(content)
}

// edge joins columns+1 junctions with the given segment.
func edge(columns int, segment string) string {
	junctions := make([]string, columns+1)
	for i := range junctions {
		junctions[i] = "+"
	}
	return strings.Join(junctions, segment)
}

// band interleaves columns+1 slashes with centred cell markers.
func band(columns int) string {
	var b strings.Builder
	b.WriteByte('/')
	for i := 0; i < columns; i++ {
		b.WriteString(" " + cellMarker + " /")
	}
	return b.String()
}
