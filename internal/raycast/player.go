package raycast

import "math"

// Default player tuning.
const (
	DefaultMoveSpeed        = 10.0
	DefaultRotationSpeed    = math.Pi / 50
	DefaultMouseSensitivity = 0.005
	DefaultFOV              = math.Pi / 3
	DefaultHeading          = math.Pi / 3
)

// Player is the camera: a position in world pixels, a heading and a field of view.
type Player struct {
	Pos Vec2
	A   float64
	FOV float64
}

// NewPlayer returns a player at (150,150) facing π/3 with a π/3 field of view.
func NewPlayer() Player {
	return Player{Pos: Vec2{150, 150}, A: DefaultHeading, FOV: DefaultFOV}
}

// Controls is the held-key state relevant to movement for one tick.
type Controls struct {
	Left, Right, Up, Down bool
}

// Motion holds per-tick movement rates.
type Motion struct {
	MoveSpeed     float64
	RotationSpeed float64
}

// DefaultMotion returns the stock speeds.
func DefaultMotion() Motion {
	return Motion{MoveSpeed: DefaultMoveSpeed, RotationSpeed: DefaultRotationSpeed}
}

// Turn adds delta radians to the heading.
func (p *Player) Turn(delta float64) { p.A += delta }

// Update applies one tick of keyboard input. The translated position is
// accepted only if it lands in an open cell. It reports whether a requested
// move was rejected.
func (p *Player) Update(w *World, c Controls, m Motion) (blocked bool) {
	if c.Left {
		p.A -= m.RotationSpeed
	}
	if c.Right {
		p.A += m.RotationSpeed
	}

	next := p.Pos
	moved := false
	if c.Up {
		next = p.Pos.Add(Heading(p.A).Scale(m.MoveSpeed))
		moved = true
	}
	if c.Down {
		next = p.Pos.Sub(Heading(p.A).Scale(m.MoveSpeed))
		moved = true
	}
	if !moved {
		return false
	}
	if !w.Walkable(next) {
		return true
	}
	p.Pos = next
	return false
}

// RayAngle returns the heading of screen column i out of n.
func (p Player) RayAngle(i, n int) float64 {
	return p.A - p.FOV/2 + p.FOV*(float64(i)/float64(n))
}

// WrapAngle folds a into (-π, π].
func WrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}
