package game

import "github.com/Garsondee/Maze-Caster/internal/raycast"

// Screen is the top-level UI state.
type Screen uint8

const (
	ScreenMenu Screen = iota // waiting for ENTER
	ScreenGame               // exploring
	ScreenWin                // goal reached, waiting for ESC
)

func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "menu"
	case ScreenGame:
		return "game"
	case ScreenWin:
		return "win"
	default:
		return "unknown"
	}
}

// Mode selects the renderer used on the game screen.
type Mode uint8

const (
	Mode3D Mode = iota // first-person raycast view
	Mode2D             // overhead debug view with ray fan
)

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == Mode3D {
		return Mode2D
	}
	return Mode3D
}

func (m Mode) String() string {
	if m == Mode2D {
		return "2D"
	}
	return "3D"
}

// Input is one tick's worth of host input. Enter, ToggleMode and
// CopySnapshot are edge-triggered; the movement keys are held state.
type Input struct {
	raycast.Controls
	Escape       bool
	Enter        bool
	ToggleMode   bool
	CopySnapshot bool

	// MouseX is the cursor column, clamped to the framebuffer. It is only
	// read when HasMouse is set.
	MouseX   float64
	HasMouse bool
}
