package recorder

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"image/gif"
	"io"
	"log"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"lifegif/internal/patterns"
)

func quietLogger() *log.Logger { return log.New(io.Discard, "", 0) }

func smallConfig(t *testing.T) Config {
	cfg := DefaultConfig()
	cfg.Width = 10
	cfg.Height = 10
	cfg.Scale = 3
	cfg.Frames = 4
	cfg.Output = filepath.Join(t.TempDir(), "life.gif")
	return cfg
}

func TestEndToEndBlinkerAnimation(t *testing.T) {
	cfg := smallConfig(t)
	rec := New(cfg, WithLogger(quietLogger()))
	if err := patterns.Place(rec.Engine().Current(), "blinker", 5, 5); err != nil {
		t.Fatalf("place: %v", err)
	}

	var st Status
	for i := 0; i < 4; i++ {
		st = rec.Tick(nil)
	}
	if !st.Saved || st.Err != nil {
		t.Fatalf("expected saved animation, got %+v", st)
	}

	f, err := os.Open(cfg.Output)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	out, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Image) != 4 {
		t.Fatalf("decoded %d frames, expected 4", len(out.Image))
	}
	if out.Config.Width != 30 || out.Config.Height != 30 {
		t.Fatalf("gif size %dx%d, expected 30x30", out.Config.Width, out.Config.Height)
	}
	black := color.RGBA{A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for i, img := range out.Image {
		if len(img.Palette) != 2 || img.Palette[0] != black || img.Palette[1] != white {
			t.Fatalf("frame %d palette %v, expected [black white]", i, img.Palette)
		}
		if out.Delay[i] != cfg.Delay {
			t.Fatalf("frame %d delay %d, expected %d", i, out.Delay[i], cfg.Delay)
		}
	}
	if slices.Equal(out.Image[0].Pix, out.Image[1].Pix) {
		t.Fatal("frame 0 and frame 1 should differ")
	}
	if !slices.Equal(out.Image[0].Pix, out.Image[2].Pix) {
		t.Fatal("frame 0 and frame 2 should match")
	}
	if !slices.Equal(out.Image[1].Pix, out.Image[3].Pix) {
		t.Fatal("frame 1 and frame 3 should match")
	}
}

func TestFrameCapHoldsAndSavesOnce(t *testing.T) {
	cfg := smallConfig(t)
	cfg.Frames = 3
	calls := 0
	rec := New(cfg, WithLogger(quietLogger()), WithSaver(func(frames [][]byte, w, h int) error {
		calls++
		if len(frames) != 3 || w != 30 || h != 30 {
			t.Fatalf("saver got %d frames %dx%d", len(frames), w, h)
		}
		return nil
	}))
	patterns.Random(rec.Engine().Current(), 0.4, 3)

	for i := 0; i < 12; i++ {
		rec.Tick(nil)
		if got := rec.Frames().Len(); got > 3 {
			t.Fatalf("buffer grew to %d", got)
		}
	}
	if rec.Frames().Len() != 3 {
		t.Fatalf("buffer length %d, expected 3", rec.Frames().Len())
	}
	if calls != 1 {
		t.Fatalf("saver called %d times, expected 1", calls)
	}
	if rec.Status().Generation != 12 {
		t.Fatalf("generation %d, expected 12", rec.Status().Generation)
	}
}

func TestSaveFailureDoesNotStopSimulation(t *testing.T) {
	cfg := smallConfig(t)
	cfg.Frames = 2
	boom := errors.New("disk full")
	calls := 0
	rec := New(cfg, WithLogger(quietLogger()), WithSaver(func([][]byte, int, int) error {
		calls++
		return boom
	}))

	var st Status
	for i := 0; i < 6; i++ {
		st = rec.Tick(nil)
	}
	if !errors.Is(st.Err, boom) || st.Saved {
		t.Fatalf("expected save error, got %+v", st)
	}
	if !st.Done() {
		t.Fatal("status should report the save as attempted")
	}
	if calls != 1 {
		t.Fatalf("saver retried: %d calls", calls)
	}
	if st.Generation != 6 {
		t.Fatalf("generation %d, expected 6", st.Generation)
	}
}

func TestCaptureFollowsStep(t *testing.T) {
	cfg := smallConfig(t)
	cfg.Frames = 1
	var got []byte
	rec := New(cfg, WithLogger(quietLogger()), WithSaver(func(frames [][]byte, _, _ int) error {
		got = frames[0]
		return nil
	}))
	// A lone cell dies on the first step, so the captured frame is all black.
	rec.Engine().Current().Set(4, 4, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	rec.Tick(nil)
	want := bytes.Repeat([]byte{0, 0, 0, 255}, 30*30)
	if !bytes.Equal(got, want) {
		t.Fatal("captured frame should show the stepped generation")
	}
}

type countingSink struct {
	begins, ends, rects int
}

func (c *countingSink) FillRect(int, int, int, int, color.RGBA) { c.rects++ }
func (c *countingSink) BeginFrame()                            { c.begins++ }
func (c *countingSink) EndFrame()                              { c.ends++ }

func TestTickPaintsSink(t *testing.T) {
	cfg := smallConfig(t)
	rec := New(cfg, WithLogger(quietLogger()), WithSaver(func([][]byte, int, int) error { return nil }))
	if err := patterns.Place(rec.Engine().Current(), "block", 1, 1); err != nil {
		t.Fatalf("place: %v", err)
	}
	sink := &countingSink{}
	rec.Tick(sink)
	rec.Tick(sink)
	if sink.begins != 2 || sink.ends != 2 {
		t.Fatalf("frame hooks begin=%d end=%d, expected 2 each", sink.begins, sink.ends)
	}
	if sink.rects != 8 {
		t.Fatalf("painted %d rects, expected 8", sink.rects)
	}
}

func TestRunStopsAfterGenerations(t *testing.T) {
	cfg := smallConfig(t)
	rec := New(cfg, WithLogger(quietLogger()), WithSaver(func([][]byte, int, int) error { return nil }))
	if err := rec.Run(context.Background(), 5, time.Millisecond, nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	if rec.Status().Generation != 5 {
		t.Fatalf("generation %d, expected 5", rec.Status().Generation)
	}
}

func TestRunHonoursCancellation(t *testing.T) {
	cfg := smallConfig(t)
	rec := New(cfg, WithLogger(quietLogger()))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := rec.Run(ctx, 0, 0, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if rec.Status().Generation != 0 {
		t.Fatal("cancelled run should not step")
	}

	ctx, cancel = context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := rec.Run(ctx, 0, 5*time.Millisecond, nil); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if rec.Status().Generation == 0 {
		t.Fatal("run should step until the deadline")
	}
}
