// pkg/grid/grid.go
package grid

import (
	"math"

	"go-card-defense/internal/types"
)

// CellType marks what currently occupies a board cell.
type CellType int

const (
	CellEmpty CellType = iota
	CellPath
	CellTower
	CellWall
)

// Cell is one board square. Occupant is a weak handle into the entity
// store (0 = none); the grid never owns the entity behind it. Blocked
// cells are impassable and excluded from path re-marking even when their
// type is still CellPath (a wall dropped onto the active path keeps the
// path marking underneath it).
type Cell struct {
	Type     CellType
	Occupant types.EntityID
	Blocked  bool
}

// Point is a cell coordinate, 1-based in [1,Width]x[1,Height].
type Point struct {
	X, Y int
}

// Neighbors returns the four orthogonally adjacent points. No diagonals.
func (p Point) Neighbors() [4]Point {
	return [4]Point{
		{p.X + 1, p.Y},
		{p.X - 1, p.Y},
		{p.X, p.Y + 1},
		{p.X, p.Y - 1},
	}
}

// Distance is the Manhattan distance between two points.
func (p Point) Distance(o Point) int {
	dx := p.X - o.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - o.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Grid owns every cell of the board. Dimensions, entry and exit are fixed
// at construction.
type Grid struct {
	Width  int
	Height int
	Start  Point
	End    Point

	cells []Cell
}

// NewGrid builds an all-empty grid. Start and end must be in bounds.
func NewGrid(width, height int, start, end Point) *Grid {
	g := &Grid{
		Width:  width,
		Height: height,
		Start:  start,
		End:    end,
		cells:  make([]Cell, width*height),
	}
	return g
}

// InBounds reports whether (x,y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 1 && x <= g.Width && y >= 1 && y <= g.Height
}

// Get returns the cell at (x,y), or nil,false out of bounds.
func (g *Grid) Get(x, y int) (*Cell, bool) {
	if !g.InBounds(x, y) {
		return nil, false
	}
	return &g.cells[(y-1)*g.Width+(x-1)], true
}

// SetType changes the cell type at (x,y). Out of bounds is a no-op.
func (g *Grid) SetType(x, y int, t CellType) {
	if cell, ok := g.Get(x, y); ok {
		cell.Type = t
	}
}

// Available reports whether (x,y) may receive a construction: in bounds,
// unoccupied, not blocked, and typed empty or path.
func (g *Grid) Available(x, y int) bool {
	cell, ok := g.Get(x, y)
	if !ok {
		return false
	}
	if cell.Occupant != 0 || cell.Blocked {
		return false
	}
	return cell.Type == CellEmpty || cell.Type == CellPath
}

// Walkable reports whether the pathfinder may traverse p. The entry and
// exit stay walkable regardless of their marked type; blocked cells never
// are.
func (g *Grid) Walkable(p Point) bool {
	cell, ok := g.Get(p.X, p.Y)
	if !ok {
		return false
	}
	if cell.Blocked {
		return false
	}
	if p == g.Start || p == g.End {
		return true
	}
	return cell.Type == CellEmpty || cell.Type == CellPath
}

// CellToPixel returns the pixel center of cell (x,y) for a given square
// cell size.
func CellToPixel(x, y int, cellSize float64) (float64, float64) {
	return (float64(x-1) + 0.5) * cellSize, (float64(y-1) + 0.5) * cellSize
}

// PixelToCell converts a continuous position to 1-based cell indices,
// flooring toward the containing cell.
func PixelToCell(px, py, cellSize float64) (int, int) {
	return int(math.Floor(px/cellSize)) + 1, int(math.Floor(py/cellSize)) + 1
}

// ApplyPath rewrites the path markings after a recompute: every cell still
// typed CellPath (except entry, exit and blocked cells) is reset to empty,
// then each node of the new route is marked CellPath unless the cell is
// occupied by a wall or tower.
func (g *Grid) ApplyPath(nodes []Point) {
	for y := 1; y <= g.Height; y++ {
		for x := 1; x <= g.Width; x++ {
			p := Point{x, y}
			if p == g.Start || p == g.End {
				continue
			}
			cell, _ := g.Get(x, y)
			if cell.Type == CellPath && !cell.Blocked {
				cell.Type = CellEmpty
			}
		}
	}
	for _, p := range nodes {
		cell, ok := g.Get(p.X, p.Y)
		if !ok {
			continue
		}
		if cell.Blocked || cell.Type == CellTower || cell.Type == CellWall {
			continue
		}
		cell.Type = CellPath
	}
}
