package game

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// Game adapts a Session to ebiten's Update/Draw/Layout loop. The session
// draws into its own framebuffer; Draw only uploads the pixels.
type Game struct {
	session *Session
	logger  *log.Logger
	pixels  []byte

	prevKeys map[ebiten.Key]bool
	clip     func(string) error
}

func New(session *Session, logger *log.Logger) *Game {
	return &Game{
		session:  session,
		logger:   logger,
		prevKeys: make(map[ebiten.Key]bool),
		clip:     CopySnapshot,
	}
}

func (g *Game) Update() error {
	in := g.pollInput()
	if in.CopySnapshot {
		if err := g.clip(g.session.Snapshot()); err != nil {
			g.logger.Warn("snapshot not copied", "error", err)
		} else {
			g.logger.Info("snapshot copied to clipboard")
		}
	}
	if g.session.Step(in, time.Now()) {
		return ebiten.Termination
	}
	return nil
}

// pollInput reads the held movement keys and the edge-triggered ones.
func (g *Game) pollInput() Input {
	var in Input
	currentKeys := map[ebiten.Key]bool{}
	pressed := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !g.prevKeys[k]
	}

	in.Escape = ebiten.IsKeyPressed(ebiten.KeyEscape)
	in.Left = ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	in.Right = ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	in.Up = ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	in.Down = ebiten.IsKeyPressed(ebiten.KeyArrowDown)

	in.Enter = pressed(ebiten.KeyEnter)
	if pressed(ebiten.KeyNumpadEnter) {
		in.Enter = true
	}
	in.ToggleMode = pressed(ebiten.KeyM)
	in.CopySnapshot = pressed(ebiten.KeyF2)

	mx, _ := ebiten.CursorPosition()
	w := g.session.Framebuffer().Width
	in.MouseX = float64(min(max(mx, 0), w))
	in.HasMouse = true

	g.prevKeys = currentKeys
	return in
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.pixels = g.session.Framebuffer().RGBA(g.pixels)
	screen.WritePixels(g.pixels)
}

func (g *Game) Layout(_, _ int) (int, int) {
	fb := g.session.Framebuffer()
	return fb.Width, fb.Height
}
