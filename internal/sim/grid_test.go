package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/nightveil/internal/ai"
	"github.com/udisondev/nightveil/internal/geom"
)

func TestCellLine_Endpoints(t *testing.T) {
	l := newCellLine(0, 0, 0, 5, 0, 2)

	type cell struct{ x, y, z int }
	var cells []cell
	for l.next() {
		cells = append(cells, cell{l.x, l.y, l.z})
	}

	require.Len(t, cells, 6, "X-dominant line visits dx+1 cells")
	assert.Equal(t, cell{0, 0, 0}, cells[0])
	assert.Equal(t, cell{5, 0, 2}, cells[5])
}

func TestCellLine_SamePoint(t *testing.T) {
	l := newCellLine(3, 3, 3, 3, 3, 3)

	count := 0
	for l.next() {
		count++
	}
	assert.Equal(t, 1, count)
}

func TestCellLine_Negative(t *testing.T) {
	l := newCellLine(4, 0, 4, 0, 0, 1)

	var lastX, lastZ int
	for l.next() {
		lastX, lastZ = l.x, l.z
	}
	assert.Equal(t, 0, lastX)
	assert.Equal(t, 1, lastZ)
}

func wallGrid() *Grid {
	// 20x20 cells of 1 unit, a 3-high wall across x=10 for z in 0..19
	var walls []Wall
	for z := range 20 {
		walls = append(walls, Wall{X: 10, Z: z, Height: 3, Layer: 1})
	}
	return NewGrid(20, 20, 1, walls)
}

func TestGrid_IsObstructed(t *testing.T) {
	g := wallGrid()

	tests := []struct {
		name     string
		from, to geom.Vec3
		mask     ai.LayerMask
		want     bool
	}{
		{"through wall", geom.V(5.5, 1.6, 5.5), geom.V(15.5, 1, 5.5), ai.LayerAll, true},
		{"same side", geom.V(2.5, 1.6, 2.5), geom.V(8.5, 1, 8.5), ai.LayerAll, false},
		{"over the wall", geom.V(5.5, 5, 5.5), geom.V(15.5, 5, 5.5), ai.LayerAll, false},
		{"other layer", geom.V(5.5, 1.6, 5.5), geom.V(15.5, 1, 5.5), 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.IsObstructed(tt.from, tt.to, tt.mask))
		})
	}
}

func TestGrid_IsWalkable(t *testing.T) {
	g := wallGrid()

	assert.True(t, g.IsWalkable(geom.V(5.5, 0, 5.5)))
	assert.False(t, g.IsWalkable(geom.V(10.5, 0, 5.5)), "inside wall")
	assert.False(t, g.IsWalkable(geom.V(-1, 0, 5)), "outside grid")
	assert.False(t, g.IsWalkable(geom.V(25, 0, 5)), "outside grid")
}

func TestGrid_NearestWalkable(t *testing.T) {
	g := wallGrid()

	// Walkable input comes back unchanged
	p, ok := g.NearestWalkable(geom.V(3.2, 0, 4.7), 2)
	require.True(t, ok)
	assert.Equal(t, geom.V(3.2, 0, 4.7), p)

	// Inside the wall: snapped to a neighbouring cell center
	p, ok = g.NearestWalkable(geom.V(10.2, 0, 5.5), 2)
	require.True(t, ok)
	assert.Equal(t, geom.V(9.5, 0, 5.5), p)

	// Far outside: nothing within radius
	_, ok = g.NearestWalkable(geom.V(-50, 0, -50), 2)
	assert.False(t, ok)
}

func TestGrid_DropsOutOfBoundsWalls(t *testing.T) {
	g := NewGrid(5, 5, 1, []Wall{{X: 9, Z: 9, Height: 1}, {X: 1, Z: 1, Height: 1}})

	assert.Len(t, g.walls, 1)
	assert.False(t, g.IsWalkable(geom.V(1.5, 0, 1.5)))
}
