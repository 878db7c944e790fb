// Package term renders generations into a terminal through tcell.
package term

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// Sink maps painted blocks onto terminal cells. Each grid cell is drawn as two
// columns so cells look roughly square. Blocks are divided by the scale they
// were painted with, so any scale maps back to one grid cell.
type Sink struct {
	screen tcell.Screen
	scale  int
	style  tcell.Style
	status string
}

// NewSink wraps an initialised screen.
func NewSink(screen tcell.Screen, scale int) *Sink {
	if scale <= 0 {
		scale = 1
	}
	return &Sink{
		screen: screen,
		scale:  scale,
		style:  tcell.StyleDefault.Background(tcell.ColorBlack),
	}
}

// SetStatus sets the text shown on the bottom row on the next frame.
func (s *Sink) SetStatus(line string) { s.status = line }

// BeginFrame clears the screen to black.
func (s *Sink) BeginFrame() {
	s.screen.Fill(' ', s.style)
}

// FillRect colors the terminal cells covered by the block.
func (s *Sink) FillRect(x, y, w, h int, c color.RGBA) {
	style := s.style.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	cx0, cy0 := x/s.scale, y/s.scale
	cx1, cy1 := (x+w+s.scale-1)/s.scale, (y+h+s.scale-1)/s.scale
	for cy := cy0; cy < cy1; cy++ {
		for cx := cx0; cx < cx1; cx++ {
			s.screen.SetContent(cx*2, cy, ' ', nil, style)
			s.screen.SetContent(cx*2+1, cy, ' ', nil, style)
		}
	}
}

// EndFrame draws the status line and flushes the screen.
func (s *Sink) EndFrame() {
	if s.status != "" {
		_, rows := s.screen.Size()
		st := tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack)
		for i, r := range s.status {
			s.screen.SetContent(i, rows-1, r, nil, st)
		}
	}
	s.screen.Show()
}
