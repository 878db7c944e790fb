// Package anim turns captured RGBA frames into a looping two-color GIF.
package anim

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"
	"os"
)

// DefaultDelay is the per-frame delay in hundredths of a second.
const DefaultDelay = 10

var (
	// ErrNoFrames is returned when there is nothing to encode.
	ErrNoFrames = errors.New("anim: no frames")
	// ErrFrameSize is returned when a frame does not hold width*height RGBA pixels.
	ErrFrameSize = errors.New("anim: frame size mismatch")
)

// Palette is shared by every frame: index 0 is black, index 1 is white.
var Palette = color.Palette{
	color.RGBA{A: 255},
	color.RGBA{R: 255, G: 255, B: 255, A: 255},
}

// Quantizer maps one RGBA pixel to a Palette index.
type Quantizer interface {
	Index(r, g, b, a uint8) uint8
}

// Threshold marks a pixel white when its red channel exceeds Level.
type Threshold struct {
	Level uint8
}

// DefaultThreshold is the quantizer used when Options leaves it unset.
var DefaultThreshold = Threshold{Level: 128}

// Index implements Quantizer.
func (t Threshold) Index(r, _, _, _ uint8) uint8 {
	if r > t.Level {
		return 1
	}
	return 0
}

// Options controls encoding.
type Options struct {
	// Delay per frame in hundredths of a second.
	Delay     int
	Quantizer Quantizer
}

func (o Options) withDefaults() Options {
	if o.Delay <= 0 {
		o.Delay = DefaultDelay
	}
	if o.Quantizer == nil {
		o.Quantizer = DefaultThreshold
	}
	return o
}

// Quantize converts one RGBA frame into a paletted image.
func Quantize(frame []byte, width, height int, q Quantizer) (*image.Paletted, error) {
	if width <= 0 || height <= 0 || len(frame) != width*height*4 {
		return nil, fmt.Errorf("%w: got %d bytes for %dx%d", ErrFrameSize, len(frame), width, height)
	}
	img := image.NewPaletted(image.Rect(0, 0, width, height), Palette)
	for i := range img.Pix {
		base := i * 4
		img.Pix[i] = q.Index(frame[base], frame[base+1], frame[base+2], frame[base+3])
	}
	return img, nil
}

// Encode writes frames to w as an infinitely looping GIF in the given order.
func Encode(w io.Writer, frames [][]byte, width, height int, opts Options) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	opts = opts.withDefaults()
	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(frames)),
		Delay:     make([]int, 0, len(frames)),
		LoopCount: 0,
		Config: image.Config{
			ColorModel: Palette,
			Width:      width,
			Height:     height,
		},
	}
	for i, frame := range frames {
		img, err := Quantize(frame, width, height, opts.Quantizer)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		out.Image = append(out.Image, img)
		out.Delay = append(out.Delay, opts.Delay)
	}
	if err := gif.EncodeAll(w, out); err != nil {
		return fmt.Errorf("encoding gif: %w", err)
	}
	return nil
}

// WriteFile encodes frames into a new file at path.
func WriteFile(path string, frames [][]byte, width, height int, opts Options) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Encode(f, frames, width, height, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
