package core

import "time"

// FixedStep paces generation updates when the render loop ticks faster than
// the simulation should advance.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep that fires once per interval. The first
// call to ShouldStep always fires.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(interval)
	fs.accumulator = fs.step
	return fs
}

// SetInterval changes the pacing. Non-positive intervals step on every call.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval < 0 {
		interval = 0
	}
	f.step = interval
}

// Interval returns the configured pacing.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one generation.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		// Don't bank more than one pending step after a stall.
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
