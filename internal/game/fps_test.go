package game

import (
	"testing"
	"time"
)

func TestFPSCounter_UpdatesAfterOneSecond(t *testing.T) {
	start := time.Unix(1000, 0)
	f := NewFPSCounter(start)

	now := start
	for i := 0; i < 59; i++ {
		now = now.Add(16 * time.Millisecond)
		if f.Frame(now) {
			t.Fatalf("frame %d: updated before a second elapsed", i)
		}
	}
	if f.Text() != "" {
		t.Fatalf("text before first window = %q", f.Text())
	}

	now = start.Add(time.Second)
	if !f.Frame(now) {
		t.Fatal("expected update at one second")
	}
	if f.FPS() != 60 || f.Text() != "FPS: 60" {
		t.Fatalf("fps = %d text = %q", f.FPS(), f.Text())
	}
	if f.Pending() != 0 {
		t.Fatalf("counter not reset: %d", f.Pending())
	}

	// Next window is measured from the reset point.
	if f.Frame(now.Add(500 * time.Millisecond)) {
		t.Fatal("second window closed early")
	}
	if !f.Frame(now.Add(2 * time.Second)) {
		t.Fatal("expected second window update")
	}
	if f.Text() != "FPS: 1" {
		t.Fatalf("text = %q, want 2 frames over 2s rounded", f.Text())
	}
}
