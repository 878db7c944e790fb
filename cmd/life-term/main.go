package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"

	"lifegif/internal/app"
	"lifegif/internal/recorder"
	"lifegif/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Width, cfg.Height = 60, 30
	cfg.Layout = "glider@2,2;gosper-glider-gun@10,5;pulsar@44,14"
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	rec, err := cfg.NewRecorder(recorder.WithLogger(log.New(io.Discard, "", 0)))
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		defer cancel()
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if key, ok := ev.(*tcell.EventKey); ok {
				if key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC || key.Rune() == 'q' {
					return
				}
			}
		}
	}()

	sink := &statusSink{Sink: term.NewSink(screen, cfg.Scale), rec: rec}
	rec.Paint(sink)
	runErr := rec.Run(ctx, cfg.Generations, cfg.Pace, sink)
	screen.Fini()

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Fatal(runErr)
	}
	st := rec.Status()
	switch {
	case st.Saved:
		fmt.Printf("gif saved to %s after %d generations\n", cfg.Output, st.Generation)
	case st.Err != nil:
		log.Fatalf("recording failed: %v", st.Err)
	}
}

// statusSink refreshes the status line from the recorder before each frame.
type statusSink struct {
	*term.Sink
	rec *recorder.Recorder
}

func (s *statusSink) BeginFrame() {
	st := s.rec.Status()
	line := fmt.Sprintf("gen %d  pop %d  rec %d/%d  q quits", st.Generation, st.Population, st.Captured, st.Limit)
	switch {
	case st.Saved:
		line += "  GIF saved!"
	case st.Err != nil:
		line += "  GIF failed"
	}
	s.SetStatus(line)
	s.Sink.BeginFrame()
}
