package core

// Wrap folds a single coordinate into [0,n). Negative values and values past
// the edge both land on the opposite side.
func Wrap(v, n int) int {
	return (v%n + n) % n
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (s Size) Wrap(x, y int) (int, int) {
	return Wrap(x, s.W), Wrap(y, s.H)
}

// Index returns the row-major slice index for coordinates (x, y).
func (s Size) Index(x, y int) int { return y*s.W + x }
