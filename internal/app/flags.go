package app

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"lifegif/internal/patterns"
	"lifegif/internal/recorder"
	"lifegif/internal/surface"
)

// Config represents the command-line parameters shared by the binaries.
type Config struct {
	Width   int
	Height  int
	Scale   int
	Workers int

	Pace        time.Duration
	Generations int

	Frames int
	Delay  int
	Output string

	Layout  string
	Seed    int64
	Density float64
}

// NewConfig returns a Config populated with the recording defaults.
func NewConfig() *Config {
	rc := recorder.DefaultConfig()
	return &Config{
		Width:   rc.Width,
		Height:  rc.Height,
		Scale:   rc.Scale,
		Workers: rc.Workers,
		Pace:    100 * time.Millisecond,
		Frames:  rc.Frames,
		Delay:   rc.Delay,
		Output:  rc.Output,
		Layout:  "showcase",
		Seed:    42,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row bands evaluated in parallel per generation")
	fs.DurationVar(&c.Pace, "pace", c.Pace, "delay between generations")
	fs.IntVar(&c.Generations, "gens", c.Generations, "generations to run (0 = until the recording is saved or forever in the GUI)")
	fs.IntVar(&c.Frames, "frames", c.Frames, "generations captured into the gif")
	fs.IntVar(&c.Delay, "delay", c.Delay, "gif frame delay in 1/100 s")
	fs.StringVar(&c.Output, "out", c.Output, "output gif path")
	fs.StringVar(&c.Layout, "layout", c.Layout, `initial patterns: "showcase", "" or "name@x,y;name@x,y"`)
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random soup")
	fs.Float64Var(&c.Density, "density", c.Density, "fraction of cells alive in the random soup (0 disables)")
}

// Validate rejects configurations the engine cannot run.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("grid must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale must be positive, got %d", c.Scale))
	}
	if c.Frames < 0 {
		errs = append(errs, fmt.Errorf("frames must not be negative, got %d", c.Frames))
	}
	if c.Density < 0 || c.Density > 1 {
		errs = append(errs, fmt.Errorf("density must be within [0,1], got %g", c.Density))
	}
	if c.Output == "" && c.Frames > 0 {
		errs = append(errs, errors.New("output path is required when recording"))
	}
	return errors.Join(errs...)
}

// Recorder converts the flags into a recorder configuration.
func (c *Config) Recorder() recorder.Config {
	return recorder.Config{
		Width:   c.Width,
		Height:  c.Height,
		Scale:   c.Scale,
		Frames:  c.Frames,
		Delay:   c.Delay,
		Output:  c.Output,
		Workers: c.Workers,
	}
}

// Populate seeds s with the random soup and then the configured layout.
func (c *Config) Populate(s *surface.Surface) error {
	if c.Density > 0 {
		patterns.Random(s, c.Density, c.Seed)
	}
	layout, err := patterns.ParseLayout(c.Layout)
	if err != nil {
		return err
	}
	return layout.Apply(s)
}

// NewRecorder validates the config and returns a seeded recorder.
func (c *Config) NewRecorder(opts ...recorder.Option) (*recorder.Recorder, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	rec := recorder.New(c.Recorder(), opts...)
	if err := c.Populate(rec.Engine().Current()); err != nil {
		return nil, err
	}
	return rec, nil
}
