// Package surface holds the fixed-resolution RGBA cell buffer that the life
// engine reads and writes, and paints it into an external rendering sink.
package surface

import (
	"image/color"

	"lifegif/internal/core"
)

var (
	// Alive is the stored color of a live cell.
	Alive = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	// Dead is the stored color of a dead cell and the read value outside the grid.
	Dead = color.RGBA{A: 255}
	// Highlight is the block color painted for every non-black cell.
	Highlight = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Sink receives one filled rectangle per painted cell. Implementations must
// start every frame from a black background.
type Sink interface {
	FillRect(x, y, w, h int, c color.RGBA)
}

// Surface stores a width×height grid of cell colors in row-major order.
type Surface struct {
	size  core.Size
	scale int
	pix   []color.RGBA
}

// New allocates a surface with every cell set to Dead.
func New(w, h, scale int) *Surface {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if scale <= 0 {
		scale = 1
	}
	s := &Surface{size: core.Size{W: w, H: h}, scale: scale, pix: make([]color.RGBA, w*h)}
	s.Clear()
	return s
}

// Width returns the number of columns.
func (s *Surface) Width() int { return s.size.W }

// Height returns the number of rows.
func (s *Surface) Height() int { return s.size.H }

// Scale returns the display scale the surface was created with.
func (s *Surface) Scale() int { return s.scale }

// Size returns the grid dimensions.
func (s *Surface) Size() core.Size { return s.size }

// Clear resets every cell to Dead.
func (s *Surface) Clear() {
	for i := range s.pix {
		s.pix[i] = Dead
	}
}

// Set overwrites the cell at (x, y). Coordinates outside the grid are ignored.
func (s *Surface) Set(x, y int, c color.RGBA) {
	if !s.size.Contains(x, y) {
		return
	}
	s.pix[s.size.Index(x, y)] = c
}

// At returns the cell color at (x, y), or Dead when (x, y) is outside the grid.
func (s *Surface) At(x, y int) color.RGBA {
	if !s.size.Contains(x, y) {
		return Dead
	}
	return s.pix[s.size.Index(x, y)]
}

// Alive reports whether the cell at (x, y) holds exactly the Alive color.
func (s *Surface) Alive(x, y int) bool {
	return s.At(x, y) == Alive
}

// Population counts cells that hold the Alive color.
func (s *Surface) Population() int {
	n := 0
	for _, c := range s.pix {
		if c == Alive {
			n++
		}
	}
	return n
}

// PaintTo draws a scale×scale Highlight block for every cell with a non-zero
// color channel. Black cells are skipped.
func (s *Surface) PaintTo(sink Sink, scale int) {
	if sink == nil {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	w := s.size.W
	for i, c := range s.pix {
		if c.R == 0 && c.G == 0 && c.B == 0 {
			continue
		}
		x, y := i%w, i/w
		sink.FillRect(x*scale, y*scale, scale, scale, Highlight)
	}
}
