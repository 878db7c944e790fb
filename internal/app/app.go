//go:build ebiten

package app

import (
	"time"

	"lifegif/internal/core"
	"lifegif/internal/recorder"
	"lifegif/internal/render"
	"lifegif/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a recorder to the ebiten.Game interface.
type Game struct {
	rec     *recorder.Recorder
	sink    *render.ScreenSink
	overlay *ui.Overlay
	pacer   *core.FixedStep
	status  recorder.Status

	paused   bool
	tickOnce bool
}

// New constructs a Game that advances one generation per pace.
func New(rec *recorder.Recorder, pace time.Duration) *Game {
	return &Game{
		rec:     rec,
		sink:    render.NewScreenSink(nil),
		overlay: ui.NewOverlay(),
		pacer:   core.NewFixedStep(pace),
		status:  rec.Status(),
	}
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}

	if g.overlay != nil {
		g.overlay.Update()
	}

	if (!g.paused && g.pacer.ShouldStep()) || g.tickOnce {
		g.status = g.rec.Tick(nil)
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.sink.Reset(screen)
	g.rec.Paint(g.sink)
	if g.overlay != nil {
		g.overlay.Draw(screen, g.status)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	d := g.rec.DisplaySize()
	return d.W, d.H
}
