package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"lifegif/internal/app"
)

func main() {
	cfg := app.NewConfig()
	cfg.Pace = 0
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	rec, err := cfg.NewRecorder()
	if err != nil {
		log.Fatal(err)
	}

	gens := cfg.Generations
	if gens <= 0 {
		gens = cfg.Frames
	}
	if gens <= 0 {
		log.Fatal("nothing to do: set -gens or -frames")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	if err := rec.Run(ctx, gens, cfg.Pace, nil); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	st := rec.Status()
	log.Printf("ran %d generations in %s, population %d, captured %d/%d",
		st.Generation, time.Since(start).Round(time.Millisecond), st.Population, st.Captured, st.Limit)
	if st.Err != nil {
		log.Fatalf("recording failed: %v", st.Err)
	}
}
