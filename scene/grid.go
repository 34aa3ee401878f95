package scene

import (
	"github.com/mlange-42/ark/ecs"
)

// Neighbor holds a nearby entity with its offset from the query origin.
type Neighbor struct {
	E      ecs.Entity
	DX, DY float32
	DistSq float32
}

// Grid buckets entities into square cells over a bounded area. Positions
// outside the area land in the nearest edge cell.
type Grid struct {
	cellSize float32
	cols     int
	rows     int
	cells    [][]ecs.Entity
}

// NewGrid creates a grid covering [0, width] x [0, height].
func NewGrid(width, height, cellSize float32) *Grid {
	if cellSize <= 0 {
		cellSize = 1
	}
	cols := int(max(width, 0)/cellSize) + 1
	rows := int(max(height, 0)/cellSize) + 1

	cells := make([][]ecs.Entity, cols*rows)
	for i := range cells {
		cells[i] = make([]ecs.Entity, 0, 4)
	}

	return &Grid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		cells:    cells,
	}
}

// Covers reports whether the grid was built for the given extent.
func (g *Grid) Covers(width, height float32) bool {
	return g.cols == int(max(width, 0)/g.cellSize)+1 && g.rows == int(max(height, 0)/g.cellSize)+1
}

// Clear removes all entities from the grid.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert adds an entity at the given position.
func (g *Grid) Insert(e ecs.Entity, x, y float32) {
	idx := g.row(y)*g.cols + g.col(x)
	g.cells[idx] = append(g.cells[idx], e)
}

// QueryRadiusInto appends every entity within radius of (x, y) to dst.
// Reuse dst across calls to avoid allocations.
func (g *Grid) QueryRadiusInto(dst []Neighbor, x, y, radius float32, posMap *ecs.Map[Position]) []Neighbor {
	// Clamping is monotonic, so an in-range entity's clamped cell always falls
	// inside the clamped query range.
	colLo, colHi := g.col(x-radius), g.col(x+radius)
	rowLo, rowHi := g.row(y-radius), g.row(y+radius)
	radiusSq := radius * radius

	for row := rowLo; row <= rowHi; row++ {
		for col := colLo; col <= colHi; col++ {
			for _, e := range g.cells[row*g.cols+col] {
				pos := posMap.Get(e)
				if pos == nil {
					continue
				}
				dx := pos.X - x
				dy := pos.Y - y
				distSq := dx*dx + dy*dy
				if distSq <= radiusSq {
					dst = append(dst, Neighbor{E: e, DX: dx, DY: dy, DistSq: distSq})
				}
			}
		}
	}
	return dst
}

func (g *Grid) col(x float32) int {
	return clampCell(int(x/g.cellSize), g.cols)
}

func (g *Grid) row(y float32) int {
	return clampCell(int(y/g.cellSize), g.rows)
}

func clampCell(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
