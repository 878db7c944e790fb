package render

import (
	"bytes"
	"testing"

	"lifegif/internal/surface"
)

func TestCaptureScalesCells(t *testing.T) {
	const w, h, scale = 10, 8, 6
	s := surface.New(w, h, scale)
	s.Set(3, 4, surface.Alive)

	dw, dh := w*scale, h*scale
	buf := Capture(s, dw, dh)
	if len(buf) != dw*dh*4 {
		t.Fatalf("buffer length %d, expected %d", len(buf), dw*dh*4)
	}
	for py := 0; py < dh; py++ {
		for px := 0; px < dw; px++ {
			i := (py*dw + px) * 4
			got := buf[i : i+4]
			want := []byte{0, 0, 0, 255}
			if px >= 18 && px < 24 && py >= 24 && py < 30 {
				want = []byte{255, 255, 255, 255}
			}
			if !bytes.Equal(got, want) {
				t.Fatalf("pixel (%d,%d) = %v, expected %v", px, py, got, want)
			}
		}
	}
}

func TestCaptureIsPureAndRepeatable(t *testing.T) {
	s := surface.New(5, 5, 2)
	s.Set(1, 1, surface.Alive)
	s.Set(4, 0, surface.Alive)
	a := Capture(s, 10, 10)
	b := Capture(s, 10, 10)
	if !bytes.Equal(a, b) {
		t.Fatal("capturing the same surface twice should yield identical bytes")
	}
	if s.Population() != 2 {
		t.Fatal("capture must not mutate the surface")
	}
}

func TestCaptureOutsideGridStaysZero(t *testing.T) {
	s := surface.New(2, 2, 2)
	buf := Capture(s, 6, 4)
	// Columns 4 and 5 map to cell x=2, past the grid.
	for py := 0; py < 4; py++ {
		for px := 4; px < 6; px++ {
			i := (py*6 + px) * 4
			if !bytes.Equal(buf[i:i+4], []byte{0, 0, 0, 0}) {
				t.Fatalf("pixel (%d,%d) should be transparent black", px, py)
			}
		}
	}
	if buf[3] != 255 {
		t.Fatal("in-grid pixel should have opaque alpha")
	}
}

func TestFrameBufferSaturates(t *testing.T) {
	const limit = 3
	b := NewFrameBuffer(limit)
	for i := 0; i < limit; i++ {
		if !b.Append([]byte{byte(i)}) {
			t.Fatalf("append %d rejected before the limit", i)
		}
	}
	if !b.Full() {
		t.Fatal("buffer should report full at the limit")
	}
	for i := 0; i < 5; i++ {
		if b.Append([]byte{99}) {
			t.Fatal("append past the limit should be dropped")
		}
	}
	if b.Len() != limit || b.Cap() != limit {
		t.Fatalf("len %d cap %d, expected %d", b.Len(), b.Cap(), limit)
	}
	for i, f := range b.Frames() {
		if f[0] != byte(i) {
			t.Fatalf("frame %d out of order: %v", i, f)
		}
	}
}
