package game

import (
	"fmt"
	"math"
	"time"
)

// FPSCounter averages the frame rate over windows of at least one second.
type FPSCounter struct {
	frames int
	last   time.Time
	fps    int
	text   string
}

func NewFPSCounter(start time.Time) *FPSCounter {
	return &FPSCounter{last: start}
}

// Frame counts one frame presented at now. Once a second or more has passed
// since the last update it recomputes the rate, resets the window and
// returns true.
func (f *FPSCounter) Frame(now time.Time) bool {
	f.frames++
	elapsed := now.Sub(f.last)
	if elapsed < time.Second {
		return false
	}
	f.fps = int(math.Round(float64(f.frames) / elapsed.Seconds()))
	f.text = fmt.Sprintf("FPS: %d", f.fps)
	f.last = now
	f.frames = 0
	return true
}

// FPS returns the last computed rate.
func (f *FPSCounter) FPS() int { return f.fps }

// Text returns the HUD string, empty until the first window closes.
func (f *FPSCounter) Text() string { return f.text }

// Pending returns the frames counted in the current window.
func (f *FPSCounter) Pending() int { return f.frames }
