package world

import "fmt"

// Rect is an axis-aligned footprint on a Grid. Both corners are inclusive.
type Rect struct {
	TopLeftX     int
	TopLeftZ     int
	BottomRightX int
	BottomRightZ int
}

// NewRect creates a rect from two opposite corners in any order
func NewRect(x1, z1, x2, z2 int) Rect {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if z1 > z2 {
		z1, z2 = z2, z1
	}
	return Rect{TopLeftX: x1, TopLeftZ: z1, BottomRightX: x2, BottomRightZ: z2}
}

// IsValid returns true if the top-left corner does not lie past the bottom-right corner
func (r Rect) IsValid() bool {
	return r.TopLeftX <= r.BottomRightX && r.TopLeftZ <= r.BottomRightZ
}

// Width returns the number of tracts covered along x
func (r Rect) Width() int {
	if !r.IsValid() {
		return 0
	}
	return r.BottomRightX - r.TopLeftX + 1
}

// Depth returns the number of tracts covered along z
func (r Rect) Depth() int {
	if !r.IsValid() {
		return 0
	}
	return r.BottomRightZ - r.TopLeftZ + 1
}

// Area returns the number of tracts covered
func (r Rect) Area() int {
	return r.Width() * r.Depth()
}

// Contains returns true if x/z lies inside the rect
func (r Rect) Contains(x, z int) bool {
	return x >= r.TopLeftX && x <= r.BottomRightX && z >= r.TopLeftZ && z <= r.BottomRightZ
}

// Overlaps returns true if the two rects share at least one tract
func (r Rect) Overlaps(o Rect) bool {
	if !r.IsValid() || !o.IsValid() {
		return false
	}
	return r.TopLeftX <= o.BottomRightX && o.TopLeftX <= r.BottomRightX &&
		r.TopLeftZ <= o.BottomRightZ && o.TopLeftZ <= r.BottomRightZ
}

// ForEach calls fn for every tract in the rect, x-major
func (r Rect) ForEach(fn func(x, z int)) {
	for x := r.TopLeftX; x <= r.BottomRightX; x++ {
		for z := r.TopLeftZ; z <= r.BottomRightZ; z++ {
			fn(x, z)
		}
	}
}

// String returns the rect as "(x1,z1)-(x2,z2)"
func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.TopLeftX, r.TopLeftZ, r.BottomRightX, r.BottomRightZ)
}
