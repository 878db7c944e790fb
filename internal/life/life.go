// Package life implements Conway's Game of Life on a toroidal grid backed by a
// pair of surfaces that swap roles every generation.
package life

import (
	"golang.org/x/sync/errgroup"

	"lifegif/internal/core"
	"lifegif/internal/surface"
)

// Engine owns the current and next generation surfaces.
type Engine struct {
	size    core.Size
	cur     *surface.Surface
	nxt     *surface.Surface
	workers int
	gen     int
}

// Option configures an Engine.
type Option func(*Engine)

// WithWorkers splits each step into n row bands evaluated concurrently.
// Values below 2 keep the step on the calling goroutine.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n < 1 {
			n = 1
		}
		e.workers = n
	}
}

// New returns an engine with an all-dead w×h grid.
func New(w, h, scale int, opts ...Option) *Engine {
	cur := surface.New(w, h, scale)
	e := &Engine{
		size:    cur.Size(),
		cur:     cur,
		nxt:     surface.New(w, h, scale),
		workers: 1,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.workers > e.size.H {
		e.workers = e.size.H
	}
	return e
}

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return e.size }

// Current exposes the surface holding the latest generation.
func (e *Engine) Current() *surface.Surface { return e.cur }

// Generation returns the number of completed steps.
func (e *Engine) Generation() int { return e.gen }

// Workers returns the number of row bands used per step.
func (e *Engine) Workers() int { return e.workers }

// Population counts live cells in the current generation.
func (e *Engine) Population() int { return e.cur.Population() }

// Neighbors counts live cells among the eight toroidal neighbors of (x, y)
// in the current generation.
func (e *Engine) Neighbors(x, y int) int {
	return neighbors(e.cur, e.size, x, y)
}

// Step advances the simulation by one generation.
func (e *Engine) Step() {
	if e.workers <= 1 {
		e.stepRows(0, e.size.H)
	} else {
		var g errgroup.Group
		h := e.size.H
		for i := 0; i < e.workers; i++ {
			y0 := i * h / e.workers
			y1 := (i + 1) * h / e.workers
			g.Go(func() error {
				e.stepRows(y0, y1)
				return nil
			})
		}
		// Every band has to land in nxt before the swap.
		_ = g.Wait()
	}
	e.cur, e.nxt = e.nxt, e.cur
	e.gen++
}

// stepRows evaluates rows [y0,y1) of cur into nxt.
func (e *Engine) stepRows(y0, y1 int) {
	for y := y0; y < y1; y++ {
		for x := 0; x < e.size.W; x++ {
			n := neighbors(e.cur, e.size, x, y)
			if Next(e.cur.Alive(x, y), n) {
				e.nxt.Set(x, y, surface.Alive)
			} else {
				e.nxt.Set(x, y, surface.Dead)
			}
		}
	}
}

// Next applies the B3/S23 rule.
func Next(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

func neighbors(s *surface.Surface, size core.Size, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := size.Wrap(x+dx, y+dy)
			if s.Alive(nx, ny) {
				count++
			}
		}
	}
	return count
}
