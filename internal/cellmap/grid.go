package cellmap

import (
	"openlife/internal/core"
	"openlife/internal/render"
)

// GridMap2D is a Map shaped as a flat grid.
type GridMap2D struct {
	*Map
	shape render.Grid2D
}

// NewGridMap2D returns an empty grid map. Both dimensions must be positive.
func NewGridMap2D(columns, rows int) (*GridMap2D, error) {
	shape, err := render.NewGrid2D(columns, rows)
	if err != nil {
		return nil, err
	}
	return &GridMap2D{Map: New(), shape: shape}, nil
}

// Size returns the grid dimensions.
func (g *GridMap2D) Size() core.Size { return g.shape.Size() }

// Render draws the grid shape. Cell state is not consulted.
func (g *GridMap2D) Render() string { return g.shape.Render() }

func (g *GridMap2D) String() string { return g.Render() }

// GridMap3D is a Map shaped as a stack of floors.
type GridMap3D struct {
	*Map
	shape render.Grid3D
}

// NewGridMap3D returns an empty grid map. All dimensions must be positive.
func NewGridMap3D(columns, rows, depth int) (*GridMap3D, error) {
	shape, err := render.NewGrid3D(columns, rows, depth)
	if err != nil {
		return nil, err
	}
	return &GridMap3D{Map: New(), shape: shape}, nil
}

// Size returns the grid dimensions.
func (g *GridMap3D) Size() core.Size { return g.shape.Size() }

// Render draws the isometric floors. Cell state is not consulted.
func (g *GridMap3D) Render() string { return g.shape.Render() }

func (g *GridMap3D) String() string { return g.Render() }
