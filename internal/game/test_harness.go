package game

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/Garsondee/Maze-Caster/internal/raycast"
)

// FrameInterval is the nominal tick length at 60 Hz.
const FrameInterval = 16 * time.Millisecond

// Harness drives a Session headlessly with a synthetic clock that advances
// one FrameInterval per step. It never opens a window or polls devices, so
// tests and the headless report can replay input deterministically.
type Harness struct {
	Session *Session
	Clock   time.Time
	Frame   time.Duration
}

// harnessSetup collects options before the Session is built.
type harnessSetup struct {
	maze     []string
	enemies  []raycast.Vec2
	textures raycast.Textures
	opts     Options
}

// HarnessOption is a builder function applied before the Session is built.
type HarnessOption func(*harnessSetup)

// WithMaze replaces the default corridor maze.
func WithMaze(rows ...string) HarnessOption {
	return func(h *harnessSetup) { h.maze = rows }
}

// WithPlayer sets the starting position and heading.
func WithPlayer(x, y, heading float64) HarnessOption {
	return func(h *harnessSetup) {
		h.opts.Player.Pos = raycast.Vec2{X: x, Y: y}
		h.opts.Player.A = heading
	}
}

// WithEnemies places billboards.
func WithEnemies(enemies ...raycast.Vec2) HarnessOption {
	return func(h *harnessSetup) { h.enemies = enemies }
}

// WithFramebuffer sets the render target size.
func WithFramebuffer(w, hgt int) HarnessOption {
	return func(h *harnessSetup) {
		h.opts.Width = w
		h.opts.Height = hgt
	}
}

// WithTextures swaps the placeholder art.
func WithTextures(tex raycast.Textures) HarnessOption {
	return func(h *harnessSetup) { h.textures = tex }
}

// WithMusic installs a Music implementation.
func WithMusic(m Music) HarnessOption {
	return func(h *harnessSetup) { h.opts.Music = m }
}

// WithText installs a glyph renderer.
func WithText(td raycast.TextDrawer) HarnessOption {
	return func(h *harnessSetup) { h.opts.Text = td }
}

// WithLogger routes session logging.
func WithLogger(l *log.Logger) HarnessOption {
	return func(h *harnessSetup) { h.opts.Logger = l }
}

// DefaultHarnessMaze is a short corridor with the goal at its east end.
var DefaultHarnessMaze = []string{
	"+-----+",
	"|    g|",
	"+-----+",
}

// NewHarness builds a Session on a small framebuffer with the stock player
// and motion constants.
func NewHarness(options ...HarnessOption) (*Harness, error) {
	setup := harnessSetup{
		maze:     DefaultHarnessMaze,
		textures: PlaceholderTextures(),
		opts: Options{
			Player:           raycast.NewPlayer(),
			Motion:           raycast.DefaultMotion(),
			MouseSensitivity: raycast.DefaultMouseSensitivity,
			Width:            320,
			Height:           200,
			Background:       0x333355,
		},
	}
	for _, o := range options {
		o(&setup)
	}

	world, err := raycast.NewWorld(raycast.NewMaze(setup.maze...), raycast.DefaultBlockSize, setup.enemies)
	if err != nil {
		return nil, err
	}
	start := time.Unix(0, 0)
	setup.opts.World = world
	setup.opts.Textures = setup.textures
	setup.opts.Start = start

	return &Harness{Session: NewSession(setup.opts), Clock: start, Frame: FrameInterval}, nil
}

// Step advances the clock one frame and feeds in to the session.
func (h *Harness) Step(in Input) (quit bool) {
	h.Clock = h.Clock.Add(h.Frame)
	return h.Session.Step(in, h.Clock)
}

// Run feeds every input in order, stopping early on quit. It returns the
// number of steps taken.
func (h *Harness) Run(inputs []Input) (steps int, quit bool) {
	for _, in := range inputs {
		steps++
		if h.Step(in) {
			return steps, true
		}
	}
	return steps, false
}
