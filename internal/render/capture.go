package render

import "lifegif/internal/surface"

// Capture samples s into a displayWidth×displayHeight RGBA buffer. Each
// display pixel takes the color of the cell at (px/scale, py/scale) with alpha
// forced to 255. Pixels that map outside the grid stay transparent black.
func Capture(s *surface.Surface, displayWidth, displayHeight int) []byte {
	if displayWidth <= 0 || displayHeight <= 0 {
		return nil
	}
	buf := make([]byte, displayWidth*displayHeight*4)
	scale := s.Scale()
	w, h := s.Width(), s.Height()
	for py := 0; py < displayHeight; py++ {
		cy := py / scale
		if cy >= h {
			continue
		}
		row := py * displayWidth * 4
		for px := 0; px < displayWidth; px++ {
			cx := px / scale
			if cx >= w {
				continue
			}
			c := s.At(cx, cy)
			base := row + px*4
			buf[base+0] = c.R
			buf[base+1] = c.G
			buf[base+2] = c.B
			buf[base+3] = 255
		}
	}
	return buf
}

// FrameBuffer is an append-only sequence of captured frames with a fixed
// capacity. Appends past capacity are dropped.
type FrameBuffer struct {
	frames [][]byte
	limit  int
}

// NewFrameBuffer returns an empty buffer holding at most limit frames.
func NewFrameBuffer(limit int) *FrameBuffer {
	if limit < 0 {
		limit = 0
	}
	return &FrameBuffer{frames: make([][]byte, 0, limit), limit: limit}
}

// Append stores frame and reports whether it was kept.
func (b *FrameBuffer) Append(frame []byte) bool {
	if b.Full() {
		return false
	}
	b.frames = append(b.frames, frame)
	return true
}

// Len returns the number of captured frames.
func (b *FrameBuffer) Len() int { return len(b.frames) }

// Cap returns the frame limit.
func (b *FrameBuffer) Cap() int { return b.limit }

// Full reports whether the limit has been reached.
func (b *FrameBuffer) Full() bool { return len(b.frames) >= b.limit }

// Frames returns the captured frames in capture order. Callers must not
// modify the returned frames.
func (b *FrameBuffer) Frames() [][]byte { return b.frames }
