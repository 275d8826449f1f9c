package mines

// Cell is one square of the grid.
type Cell struct {
	Hazard bool
	Open   bool
}

// Grid is a square board stored row-major: index = y*Size + x.
type Grid struct {
	Size  int
	Cells []Cell
}

// picker is the subset of *core.Rand used to place hazards.
type picker interface {
	Perm(n int) []int
}

// NewGrid builds a size×size grid with hazards placed uniformly at random
// without replacement.
func NewGrid(size, hazards int, rng picker) Grid {
	g := Grid{Size: size, Cells: make([]Cell, size*size)}
	hazards = min(max(hazards, 0), len(g.Cells))
	for _, idx := range rng.Perm(len(g.Cells))[:hazards] {
		g.Cells[idx].Hazard = true
	}
	return g
}

// InBounds reports whether (x, y) is on the grid.
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Size && y >= 0 && y < g.Size
}

// At returns the cell at (x, y). Callers check InBounds first.
func (g Grid) At(x, y int) Cell {
	return g.Cells[y*g.Size+x]
}

// Neighbors counts hazards at Chebyshev distance 1 from (x, y).
// It is recomputed on every call.
func (g Grid) Neighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if g.InBounds(nx, ny) && g.At(nx, ny).Hazard {
				n++
			}
		}
	}
	return n
}

// HazardCount returns the number of hazard cells.
func (g Grid) HazardCount() int {
	n := 0
	for _, c := range g.Cells {
		if c.Hazard {
			n++
		}
	}
	return n
}

// Hazards returns the indices of hazard cells in ascending order.
func (g Grid) Hazards() []int {
	var out []int
	for i, c := range g.Cells {
		if c.Hazard {
			out = append(out, i)
		}
	}
	return out
}
