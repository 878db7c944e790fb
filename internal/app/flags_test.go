package app

import (
	"errors"
	"flag"
	"io"
	"log"
	"testing"
	"time"

	"lifegif/internal/patterns"
	"lifegif/internal/recorder"
)

func TestBindOverridesDefaults(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-w", "20", "-h", "15", "-scale", "2", "-frames", "7", "-pace", "5ms", "-layout", "glider@1,1", "-workers", "3"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	rc := cfg.Recorder()
	want := recorder.Config{Width: 20, Height: 15, Scale: 2, Frames: 7, Delay: 10, Output: "game_of_life.gif", Workers: 3}
	if rc != want {
		t.Fatalf("recorder config %+v, expected %+v", rc, want)
	}
	if cfg.Pace != 5*time.Millisecond {
		t.Fatalf("pace %v, expected 5ms", cfg.Pace)
	}
}

func TestValidate(t *testing.T) {
	if err := NewConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	bad := NewConfig()
	bad.Width = 0
	bad.Scale = -1
	bad.Density = 2
	if err := bad.Validate(); err == nil {
		t.Fatal("expected validation errors")
	}
}

func TestNewRecorderSeedsGrid(t *testing.T) {
	cfg := NewConfig()
	cfg.Width, cfg.Height = 12, 12
	cfg.Layout = "block@2,2;blinker@8,4"
	rec, err := cfg.NewRecorder(recorder.WithLogger(log.New(io.Discard, "", 0)))
	if err != nil {
		t.Fatalf("new recorder: %v", err)
	}
	if got := rec.Engine().Population(); got != 7 {
		t.Fatalf("population %d, expected 7", got)
	}

	cfg.Layout = "spaceship@1,1"
	if _, err := cfg.NewRecorder(); !errors.Is(err, patterns.ErrUnknownPattern) {
		t.Fatalf("expected ErrUnknownPattern, got %v", err)
	}
}
