// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based simulation.
package world

// Grid is a rectangular map of tract values addressed by (x, z).
// The zero tract value means "unset".
type Grid struct {
	tracts [][]int8
	width  int
	depth  int
}

// NewGrid creates a new grid with the given dimensions
func NewGrid(width, depth int) *Grid {
	g := &Grid{}
	g.Build(width, depth)
	return g
}

// Build initializes the grid with the given dimensions, clearing every tract
func (g *Grid) Build(width, depth int) {
	if width <= 0 || depth <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.width = width
	g.depth = depth

	g.tracts = make([][]int8, width)
	for x := 0; x < width; x++ {
		g.tracts[x] = make([]int8, depth)
	}
}

// Width returns the number of tracts along the x axis
func (g *Grid) Width() int {
	return g.width
}

// Depth returns the number of tracts along the z axis
func (g *Grid) Depth() int {
	return g.depth
}

// Bounds returns the rectangle covering the whole grid
func (g *Grid) Bounds() Rect {
	return Rect{TopLeftX: 0, TopLeftZ: 0, BottomRightX: g.width - 1, BottomRightZ: g.depth - 1}
}

// IsValidPosition checks if an x/z position is within grid bounds
func (g *Grid) IsValidPosition(x, z int) bool {
	return x >= 0 && x < g.width && z >= 0 && z < g.depth
}

// GetTractValue returns the value stored at x/z, or 0 if out of bounds
func (g *Grid) GetTractValue(x, z int) int8 {
	if !g.IsValidPosition(x, z) {
		return 0
	}
	return g.tracts[x][z]
}

// SetTractValue stores a value at x/z. Returns false if out of bounds.
func (g *Grid) SetTractValue(x, z int, value int8) bool {
	if !g.IsValidPosition(x, z) {
		return false
	}
	g.tracts[x][z] = value
	return true
}

// Fill writes value into every in-bounds tract covered by r and returns how many were written
func (g *Grid) Fill(r Rect, value int8) int {
	written := 0
	r.ForEach(func(x, z int) {
		if g.SetTractValue(x, z, value) {
			written++
		}
	})
	return written
}

// ForEachTract iterates over all tracts in the grid, x-major
func (g *Grid) ForEachTract(fn func(x, z int, value int8)) {
	for x := 0; x < g.width; x++ {
		for z := 0; z < g.depth; z++ {
			fn(x, z, g.tracts[x][z])
		}
	}
}

// CountValue returns the number of tracts holding value
func (g *Grid) CountValue(value int8) int {
	count := 0
	g.ForEachTract(func(_, _ int, v int8) {
		if v == value {
			count++
		}
	})
	return count
}
