//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ScreenSink paints cell blocks straight onto an ebiten image.
type ScreenSink struct {
	dst *ebiten.Image
}

// NewScreenSink wraps dst. Call Reset with the next frame's screen.
func NewScreenSink(dst *ebiten.Image) *ScreenSink {
	return &ScreenSink{dst: dst}
}

// Reset points the sink at dst and clears it to black.
func (s *ScreenSink) Reset(dst *ebiten.Image) {
	s.dst = dst
	if dst != nil {
		dst.Fill(color.Black)
	}
}

// FillRect draws an opaque w×h block at (x, y).
func (s *ScreenSink) FillRect(x, y, w, h int, c color.RGBA) {
	if s.dst == nil {
		return
	}
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}
