package sim

import (
	"math"

	"github.com/udisondev/nightveil/internal/ai"
	"github.com/udisondev/nightveil/internal/geom"
)

// Wall blocks one grid column up to Height on Layer.
type Wall struct {
	X, Z   int
	Height float64
	Layer  ai.LayerMask
}

type column struct {
	height float64
	layer  ai.LayerMask
}

// Grid is a flat obstacle map of square cells covering
// [0, width*cellSize) × [0, depth*cellSize) on the XZ plane.
// Read-only after construction.
type Grid struct {
	width, depth int
	cellSize     float64
	walls        map[int]column
}

// NewGrid creates a grid. cellSize below 0.01 is raised to 0.01.
// Walls outside the grid are dropped.
func NewGrid(width, depth int, cellSize float64, walls []Wall) *Grid {
	g := &Grid{
		width:    max(width, 1),
		depth:    max(depth, 1),
		cellSize: math.Max(cellSize, 0.01),
		walls:    make(map[int]column, len(walls)),
	}

	for _, w := range walls {
		if !g.inBounds(w.X, w.Z) {
			continue
		}
		layer := w.Layer
		if layer == 0 {
			layer = 1
		}
		g.walls[g.key(w.X, w.Z)] = column{height: w.Height, layer: layer}
	}

	return g
}

// CellSize returns edge length of one cell.
func (g *Grid) CellSize() float64 { return g.cellSize }

// Cell returns the column indices containing pos.
func (g *Grid) Cell(pos geom.Vec3) (x, z int) {
	return g.toCell(pos.X), g.toCell(pos.Z)
}

// CellCenter returns the center of column (x, z) at height y.
func (g *Grid) CellCenter(x, z int, y float64) geom.Vec3 {
	return geom.V((float64(x)+0.5)*g.cellSize, y, (float64(z)+0.5)*g.cellSize)
}

// IsWalkable reports whether pos is inside the grid and not in a wall.
func (g *Grid) IsWalkable(pos geom.Vec3) bool {
	x, z := g.Cell(pos)
	return g.walkableCell(x, z)
}

// IsObstructed walks the cells between from and to and reports whether any
// wall on mask rises above the ray there. Cells outside the grid never block.
func (g *Grid) IsObstructed(from, to geom.Vec3, mask ai.LayerMask) bool {
	line := newCellLine(
		g.toCell(from.X), g.toCell(from.Y), g.toCell(from.Z),
		g.toCell(to.X), g.toCell(to.Y), g.toCell(to.Z),
	)

	for line.next() {
		w, ok := g.wall(line.x, line.z)
		if !ok || w.layer&mask == 0 {
			continue
		}
		if float64(line.y)*g.cellSize < w.height {
			return true
		}
	}

	return false
}

// NearestWalkable returns pos itself when walkable, else the closest walkable
// cell center within radius (kept at pos.Y).
func (g *Grid) NearestWalkable(pos geom.Vec3, radius float64) (geom.Vec3, bool) {
	if g.IsWalkable(pos) {
		return pos, true
	}

	cx, cz := g.Cell(pos)
	rings := int(math.Ceil(radius/g.cellSize)) + 1

	best := geom.Vec3{}
	bestDist := math.Inf(1)

	for r := 1; r <= rings; r++ {
		for x := cx - r; x <= cx+r; x++ {
			for z := cz - r; z <= cz+r; z++ {
				// ring only
				if absInt(x-cx) != r && absInt(z-cz) != r {
					continue
				}
				if !g.walkableCell(x, z) {
					continue
				}
				c := g.CellCenter(x, z, pos.Y)
				if d := geom.Distance(pos, c); d <= radius && d < bestDist {
					best, bestDist = c, d
				}
			}
		}
	}

	if math.IsInf(bestDist, 1) {
		return geom.Vec3{}, false
	}
	return best, true
}

func (g *Grid) walkableCell(x, z int) bool {
	if !g.inBounds(x, z) {
		return false
	}
	_, blocked := g.walls[g.key(x, z)]
	return !blocked
}

func (g *Grid) wall(x, z int) (column, bool) {
	if !g.inBounds(x, z) {
		return column{}, false
	}
	w, ok := g.walls[g.key(x, z)]
	return w, ok
}

func (g *Grid) inBounds(x, z int) bool {
	return x >= 0 && x < g.width && z >= 0 && z < g.depth
}

func (g *Grid) key(x, z int) int {
	return z*g.width + x
}

func (g *Grid) toCell(v float64) int {
	return int(math.Floor(v / g.cellSize))
}
