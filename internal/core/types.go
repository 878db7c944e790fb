package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Contains reports whether (x, y) lies inside [0,W)×[0,H).
func (s Size) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.W && y < s.H
}

// Area returns the number of cells in the grid.
func (s Size) Area() int { return s.W * s.H }

// Scaled returns the display dimensions for the given pixel scale.
func (s Size) Scaled(scale int) Size {
	return Size{W: s.W * scale, H: s.H * scale}
}
