package game

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Garsondee/Maze-Caster/internal/config"
	"github.com/Garsondee/Maze-Caster/internal/raycast"
)

// HUD colours and font sizes.
const (
	hudColor      uint32 = 0xFFFFFF
	winColor      uint32 = 0x00FF00
	winBackground uint32 = 0x000000
)

const (
	hudScale      = 32.0
	winTitleScale = 48.0
)

// Screen text.
const (
	MenuPrompt  = "Presiona ENTER para comenzar"
	WinTitle    = "¡Felicidades! Has completado el nivel."
	WinSubtitle = "Presiona Esc para salir."
)

// Options configures a Session. World and Textures are required.
type Options struct {
	World    *raycast.World
	Textures raycast.Textures
	Player   raycast.Player
	Motion   raycast.Motion

	MouseSensitivity float64
	Width, Height    int
	Background       uint32
	WallScale        float64
	GoalColor        uint32

	Text   raycast.TextDrawer
	Music  Music
	Logger *log.Logger
	Start  time.Time
}

// OptionsFromConfig copies the tunables out of cfg. World, Textures, Text,
// Music and Logger are left for the caller.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		Player: raycast.Player{
			Pos: raycast.Vec2{X: cfg.Player.StartX, Y: cfg.Player.StartY},
			A:   cfg.Player.Heading(),
			FOV: cfg.Player.FOV(),
		},
		Motion: raycast.Motion{
			MoveSpeed:     cfg.Player.MoveSpeed,
			RotationSpeed: cfg.Player.RotationSpeed(),
		},
		MouseSensitivity: cfg.Player.MouseSensitivity,
		Width:            cfg.Framebuffer.Width,
		Height:           cfg.Framebuffer.Height,
		Background:       cfg.Framebuffer.Background,
		WallScale:        cfg.Render.WallScale,
		GoalColor:        cfg.Render.GoalColor,
	}
}

// Session is the game loop state: the screen machine, the player and the
// frame being drawn. Step is the only mutator and must be called from one
// goroutine.
type Session struct {
	world    *raycast.World
	renderer *raycast.Renderer
	fb       *raycast.Framebuffer
	zbuf     raycast.ZBuffer

	player           raycast.Player
	motion           raycast.Motion
	mouseSensitivity float64
	lastMouseX       float64
	mouseSeen        bool

	screen     Screen
	mode       Mode
	background uint32
	tick       int

	fps    *FPSCounter
	music  Music
	logger *log.Logger
	events *EventLog
}

func NewSession(opts Options) *Session {
	if opts.Music == nil {
		opts.Music = Silence{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Start.IsZero() {
		opts.Start = time.Now()
	}

	r := raycast.NewRenderer(opts.Textures)
	if opts.WallScale > 0 {
		r.WallScale = opts.WallScale
	}
	if opts.GoalColor != 0 {
		r.GoalColor = opts.GoalColor
	}

	fb := raycast.NewFramebuffer(opts.Width, opts.Height)
	fb.SetBackgroundColor(opts.Background)
	fb.SetTextDrawer(opts.Text)

	return &Session{
		world:            opts.World,
		renderer:         r,
		fb:               fb,
		zbuf:             raycast.NewZBuffer(opts.Width),
		player:           opts.Player,
		motion:           opts.Motion,
		mouseSensitivity: opts.MouseSensitivity,
		screen:           ScreenMenu,
		mode:             Mode3D,
		background:       opts.Background,
		fps:              NewFPSCounter(opts.Start),
		music:            opts.Music,
		logger:           opts.Logger,
		events:           NewEventLog(),
	}
}

// Step advances one frame: it applies input, redraws the framebuffer and
// updates the FPS counter. It returns true when the player asked to quit.
func (s *Session) Step(in Input, now time.Time) (quit bool) {
	s.tick++
	if in.Escape {
		s.events.Add(s.tick, CategoryInput, "quit", s.screen.String())
		s.logger.Info("exit requested", "screen", s.screen)
		return true
	}
	if in.CopySnapshot {
		s.events.Add(s.tick, CategoryInput, "snapshot", s.Snapshot())
	}

	if s.screen == ScreenWin {
		s.fb.SetBackgroundColor(winBackground)
	} else {
		s.fb.SetBackgroundColor(s.background)
	}
	s.fb.Clear()

	switch s.screen {
	case ScreenMenu:
		s.fb.DrawText(MenuPrompt, 400, 450, hudScale, hudColor)
		if in.Enter {
			s.setScreen(ScreenGame)
			s.music.Play()
		}
	case ScreenGame:
		s.stepGame(in)
	case ScreenWin:
		s.drawVictory()
	}

	if s.fps.Frame(now) {
		s.events.Add(s.tick, CategoryFPS, "update", s.fps.Text())
	}
	s.fb.DrawText(s.fps.Text(), 10, 10, hudScale, hudColor)
	return false
}

func (s *Session) stepGame(in Input) {
	if in.ToggleMode {
		s.mode = s.mode.Toggle()
		s.events.Add(s.tick, CategoryMode, "toggle", s.mode.String())
		s.logger.Debug("render mode", "mode", s.mode)
	}

	if in.HasMouse {
		if s.mouseSeen {
			s.player.Turn((in.MouseX - s.lastMouseX) * s.mouseSensitivity)
		}
		s.lastMouseX = in.MouseX
		s.mouseSeen = true
	}

	if s.player.Update(s.world, in.Controls, s.motion) {
		s.events.Add(s.tick, CategoryMove, "blocked", fmt.Sprintf("(%.1f,%.1f)", s.player.Pos.X, s.player.Pos.Y))
		s.logger.Debug("move blocked", "x", s.player.Pos.X, "y", s.player.Pos.Y, "heading", s.player.A)
	}

	if s.mode == Mode2D {
		s.renderer.Render2D(s.fb, s.world, s.player)
	} else {
		s.zbuf.Reset()
		s.renderer.Render3D(s.fb, s.world, s.player, s.zbuf)
		s.renderer.RenderSprites(s.fb, s.player, s.world.Enemies, s.zbuf)
	}
	s.renderer.RenderMinimap(s.fb, s.world, s.player)

	if s.world.ReachedGoal(s.player.Pos) {
		s.setScreen(ScreenWin)
		s.music.Pause()
	}
}

func (s *Session) drawVictory() {
	y := s.fb.Height / 2
	s.fb.DrawText(WinTitle, 100, y, winTitleScale, winColor)
	s.fb.DrawText(WinSubtitle, 100, y+60, hudScale, winColor)
}

func (s *Session) setScreen(next Screen) {
	s.events.Add(s.tick, CategoryScreen, "change", fmt.Sprintf("%s -> %s", s.screen, next))
	s.logger.Info("screen change", "from", s.screen, "to", next, "tick", s.tick)
	s.screen = next
}

// Snapshot describes the current state on one line, for bug reports.
func (s *Session) Snapshot() string {
	col, row := s.world.CellOf(s.player.Pos)
	return fmt.Sprintf("tick=%d screen=%s mode=%s pos=(%.1f,%.1f) heading=%.4f cell=(%d,%d) %s",
		s.tick, s.screen, s.mode, s.player.Pos.X, s.player.Pos.Y, s.player.A, col, row, s.fps.Text())
}

func (s *Session) Screen() Screen { return s.screen }
func (s *Session) Mode() Mode { return s.mode }
func (s *Session) Player() raycast.Player { return s.player }
func (s *Session) World() *raycast.World { return s.world }
func (s *Session) Framebuffer() *raycast.Framebuffer { return s.fb }
func (s *Session) ZBuffer() raycast.ZBuffer { return s.zbuf }
func (s *Session) Events() *EventLog { return s.events }
func (s *Session) FPS() *FPSCounter { return s.fps }
func (s *Session) Tick() int { return s.tick }
