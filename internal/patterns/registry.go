// Package patterns seeds a surface with named cell templates.
package patterns

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"lifegif/internal/core"
	"lifegif/internal/surface"
)

// ErrUnknownPattern is returned for names that were never registered.
var ErrUnknownPattern = errors.New("unknown pattern")

// Pattern is a list of live-cell offsets relative to the placement origin.
type Pattern [][2]int

// Bounds returns the width and height of the pattern's bounding box.
func (p Pattern) Bounds() core.Size {
	var s core.Size
	for _, c := range p {
		if c[0]+1 > s.W {
			s.W = c[0] + 1
		}
		if c[1]+1 > s.H {
			s.H = c[1] + 1
		}
	}
	return s
}

var registry = map[string]Pattern{}

// Register adds a pattern under the provided name.
func Register(name string, p Pattern) {
	if name == "" || len(p) == 0 {
		return
	}
	registry[name] = p
}

// Lookup returns the pattern registered under name.
func Lookup(name string) (Pattern, bool) {
	p, ok := registry[name]
	return p, ok
}

// Names lists registered patterns in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stamp writes p into s with its origin at (x, y). Cells that land outside the
// surface are dropped.
func Stamp(s *surface.Surface, p Pattern, x, y int) {
	for _, c := range p {
		s.Set(x+c[0], y+c[1], surface.Alive)
	}
}

// Place stamps the named pattern at (x, y).
func Place(s *surface.Surface, name string, x, y int) error {
	p, ok := Lookup(name)
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownPattern, name)
	}
	Stamp(s, p, x, y)
	return nil
}

// Placement positions one named pattern.
type Placement struct {
	Name string
	X, Y int
}

// Layout is an ordered list of placements.
type Layout []Placement

// Apply places every pattern of the layout onto s.
func (l Layout) Apply(s *surface.Surface) error {
	for _, p := range l {
		if err := Place(s, p.Name, p.X, p.Y); err != nil {
			return err
		}
	}
	return nil
}

// ParseLayout reads a layout in "name@x,y;name@x,y" form. The special value
// "showcase" returns the built-in Showcase layout and "" an empty layout.
func ParseLayout(s string) (Layout, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return nil, nil
	case "showcase":
		return append(Layout(nil), Showcase...), nil
	}
	var out Layout
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, pos, ok := strings.Cut(part, "@")
		if !ok {
			return nil, fmt.Errorf("placement %q: missing @x,y", part)
		}
		xs, ys, ok := strings.Cut(pos, ",")
		if !ok {
			return nil, fmt.Errorf("placement %q: position must be x,y", part)
		}
		x, err := strconv.Atoi(strings.TrimSpace(xs))
		if err != nil {
			return nil, fmt.Errorf("placement %q: %w", part, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(ys))
		if err != nil {
			return nil, fmt.Errorf("placement %q: %w", part, err)
		}
		name = strings.TrimSpace(name)
		if _, ok := Lookup(name); !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownPattern, name)
		}
		out = append(out, Placement{Name: name, X: x, Y: y})
	}
	return out, nil
}

// Random fills s with live cells at the given density using a seeded RNG.
// Existing live cells are kept.
func Random(s *surface.Surface, density float64, seed int64) {
	rng := core.NewRNG(seed)
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if rng.Chance(density) {
				s.Set(x, y, surface.Alive)
			}
		}
	}
}
