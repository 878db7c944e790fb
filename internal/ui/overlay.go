//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"lifegif/internal/recorder"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	marginX  = 10
	baseline = 23
	lineStep = 16
)

var (
	statsColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	savedColor  = color.RGBA{G: 228, B: 48, A: 255}
	failedColor = color.RGBA{R: 230, G: 41, B: 55, A: 255}
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 200}
)

// Overlay draws the recording status on top of the grid. H toggles the
// statistics line; the save banner is always shown once the gif is done.
type Overlay struct {
	showStats bool
	pixel     *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{showStats: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles overlay key toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showStats = !o.showStats
	}
}

// Draw renders the status lines for st.
func (o *Overlay) Draw(screen *ebiten.Image, st recorder.Status) {
	face := basicfont.Face7x13
	y := baseline
	if o.showStats {
		line := statusLine(st)
		o.backdrop(screen, marginX-4, y-13, len(line)*7+8, lineStep+2)
		text.Draw(screen, line, face, marginX, y, statsColor)
		y += lineStep + 4
	}
	switch {
	case st.Saved:
		text.Draw(screen, "GIF saved!", face, marginX, y, savedColor)
	case st.Err != nil:
		text.Draw(screen, "GIF failed: "+st.Err.Error(), face, marginX, y, failedColor)
	}
}

func (o *Overlay) backdrop(screen *ebiten.Image, x, y, w, h int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(panelColor)
	screen.DrawImage(o.pixel, op)
}

func statusLine(st recorder.Status) string {
	rec := "done"
	if st.Limit == 0 {
		rec = "off"
	} else if !st.Done() {
		rec = fmt.Sprintf("%d/%d", st.Captured, st.Limit)
	}
	return fmt.Sprintf("gen %d  pop %d  rec %s", st.Generation, st.Population, rec)
}
