// Package recorder runs the life engine one generation at a time, paints each
// generation into a sink, and records the first frames into a GIF.
package recorder

import (
	"context"
	"log"
	"time"

	"lifegif/internal/anim"
	"lifegif/internal/core"
	"lifegif/internal/life"
	"lifegif/internal/render"
	"lifegif/internal/surface"
)

// Config controls the grid and the recording.
type Config struct {
	Width  int
	Height int
	Scale  int

	// Frames is the number of generations captured into the animation.
	Frames int
	// Delay is the GIF frame delay in hundredths of a second.
	Delay  int
	Output string

	Workers int
}

// DefaultConfig returns the standard 100×100 recording setup.
func DefaultConfig() Config {
	return Config{
		Width:   100,
		Height:  100,
		Scale:   6,
		Frames:  100,
		Delay:   anim.DefaultDelay,
		Output:  "game_of_life.gif",
		Workers: 1,
	}
}

// Saver persists the captured frames once the buffer is full.
type Saver func(frames [][]byte, width, height int) error

// FrameSink is a Sink that must be told when a generation's painting starts
// and ends.
type FrameSink interface {
	surface.Sink
	BeginFrame()
	EndFrame()
}

// Status summarizes the recorder after a tick.
type Status struct {
	Generation int
	Population int
	Captured   int
	Limit      int
	Saved      bool
	Err        error
}

// Done reports whether the one-shot save has been attempted.
func (s Status) Done() bool { return s.Saved || s.Err != nil }

// Recorder drives the engine and owns the capture buffer.
type Recorder struct {
	cfg    Config
	engine *life.Engine
	frames *render.FrameBuffer
	save   Saver
	logger *log.Logger

	flushed bool
	saved   bool
	err     error
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithSaver replaces writing cfg.Output.
func WithSaver(s Saver) Option {
	return func(r *Recorder) { r.save = s }
}

// WithLogger routes progress messages to l.
func WithLogger(l *log.Logger) Option {
	return func(r *Recorder) { r.logger = l }
}

// New builds a recorder with an all-dead grid.
func New(cfg Config, opts ...Option) *Recorder {
	r := &Recorder{
		cfg:    cfg,
		engine: life.New(cfg.Width, cfg.Height, cfg.Scale, life.WithWorkers(cfg.Workers)),
		frames: render.NewFrameBuffer(cfg.Frames),
		logger: log.Default(),
	}
	r.cfg.Scale = r.engine.Current().Scale()
	r.save = r.writeFile
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Config returns the effective configuration.
func (r *Recorder) Config() Config { return r.cfg }

// Engine exposes the simulation, mainly for seeding the first generation.
func (r *Recorder) Engine() *life.Engine { return r.engine }

// Frames exposes the capture buffer.
func (r *Recorder) Frames() *render.FrameBuffer { return r.frames }

// DisplaySize is the grid size multiplied by the scale.
func (r *Recorder) DisplaySize() core.Size {
	return r.engine.Size().Scaled(r.cfg.Scale)
}

// Status reports the current state without advancing.
func (r *Recorder) Status() Status {
	return Status{
		Generation: r.engine.Generation(),
		Population: r.engine.Population(),
		Captured:   r.frames.Len(),
		Limit:      r.frames.Cap(),
		Saved:      r.saved,
		Err:        r.err,
	}
}

// Paint draws the current generation into sink without stepping.
func (r *Recorder) Paint(sink surface.Sink) {
	if sink == nil {
		return
	}
	if fs, ok := sink.(FrameSink); ok {
		fs.BeginFrame()
		defer fs.EndFrame()
	}
	r.engine.Current().PaintTo(sink, r.cfg.Scale)
}

// Tick advances one generation, paints it, and captures it while the buffer
// has room. The tick that fills the buffer also saves it.
func (r *Recorder) Tick(sink surface.Sink) Status {
	r.engine.Step()
	r.Paint(sink)
	if !r.frames.Full() {
		d := r.DisplaySize()
		r.frames.Append(render.Capture(r.engine.Current(), d.W, d.H))
		if r.frames.Full() {
			r.flush()
		}
	}
	return r.Status()
}

// Run ticks until generations have elapsed or ctx is cancelled. A
// non-positive generations runs until cancellation. pace is slept between
// generations.
func (r *Recorder) Run(ctx context.Context, generations int, pace time.Duration, sink surface.Sink) error {
	var timer *time.Timer
	for i := 0; generations <= 0 || i < generations; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		r.Tick(sink)
		if pace <= 0 {
			continue
		}
		if timer == nil {
			timer = time.NewTimer(pace)
			defer timer.Stop()
		} else {
			timer.Reset(pace)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	return nil
}

func (r *Recorder) flush() {
	if r.flushed {
		return
	}
	r.flushed = true
	d := r.DisplaySize()
	r.logger.Printf("saving %d frames (%dx%d)", r.frames.Len(), d.W, d.H)
	if err := r.save(r.frames.Frames(), d.W, d.H); err != nil {
		r.err = err
		r.logger.Printf("gif not saved: %v", err)
		return
	}
	r.saved = true
	r.logger.Printf("gif saved to %s", r.cfg.Output)
}

func (r *Recorder) writeFile(frames [][]byte, width, height int) error {
	return anim.WriteFile(r.cfg.Output, frames, width, height, anim.Options{Delay: r.cfg.Delay})
}
