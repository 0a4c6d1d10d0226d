package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/Garsondee/Maze-Caster/internal/config"
	"github.com/Garsondee/Maze-Caster/internal/game"
	"github.com/Garsondee/Maze-Caster/internal/raycast"
)

const defaultScript = "ENTER,UP*20,RIGHT*10,UP*20,M,WAIT*5,M,ESC"

type runStats struct {
	steps int
	quit  bool

	screen  game.Screen
	mode    game.Mode
	player  raycast.Player
	cellCol int
	cellRow int

	startTick   int
	winTick     int
	quitTick    int
	blocked     int
	toggles     int
	fpsUpdates  int
	lastFPSText string

	events []game.Event
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(14)
	winStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	lossStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	var cfgPath string
	var mazePath string
	var assetsDir string
	var script string
	var frameDelay time.Duration
	var pngOut string
	var verbose bool

	fs := flag.NewFlagSet("headless-report", flag.ContinueOnError)
	fs.StringVar(&cfgPath, "config", "", "config YAML layered over the defaults")
	fs.StringVar(&mazePath, "maze", "", "maze file (overrides world.maze)")
	fs.StringVar(&assetsDir, "assets", "", "asset directory; empty uses flat placeholder textures")
	fs.StringVar(&script, "script", defaultScript, "comma separated input script, e.g. ENTER,UP*10,M,ESC")
	fs.DurationVar(&frameDelay, "frame-delay", game.FrameInterval, "synthetic clock advance per tick")
	fs.StringVar(&pngOut, "png", "", "write the final frame to this PNG file")
	fs.BoolVar(&verbose, "v", false, "log session events to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if frameDelay <= 0 {
		return fmt.Errorf("-frame-delay must be > 0")
	}

	inputs, err := game.ParseScript(script)
	if err != nil {
		return err
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if mazePath != "" {
		cfg.World.Maze = mazePath
	}

	logger := log.New(io.Discard)
	if verbose {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "headless"})
		logger.SetLevel(log.DebugLevel)
	}

	session, err := newSession(cfg, assetsDir, logger)
	if err != nil {
		return err
	}

	rs := replay(session, inputs, frameDelay)
	fmt.Fprintln(stdout, renderReport(script, cfg.World.Maze, rs))

	if pngOut != "" {
		if err := writePNG(pngOut, session.Framebuffer()); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "final frame written to %s\n", pngOut)
	}
	return nil
}

func newSession(cfg config.Config, assetsDir string, logger *log.Logger) (*game.Session, error) {
	world, err := game.LoadWorld(cfg.World)
	if err != nil {
		return nil, err
	}

	textures := game.PlaceholderTextures()
	if assetsDir != "" {
		cfg.Assets.Dir = assetsDir
		if textures, err = game.LoadTextures(cfg.Assets); err != nil {
			return nil, err
		}
	}
	text, err := raycast.NewGlyphRenderer(nil)
	if err != nil {
		return nil, err
	}

	opts := game.OptionsFromConfig(cfg)
	opts.World = world
	opts.Textures = textures
	opts.Text = text
	opts.Logger = logger
	opts.Start = time.Unix(0, 0)
	return game.NewSession(opts), nil
}

// replay feeds inputs through s on a synthetic clock and summarises the run.
func replay(s *game.Session, inputs []game.Input, frameDelay time.Duration) runStats {
	now := time.Unix(0, 0)
	var rs runStats
	for _, in := range inputs {
		now = now.Add(frameDelay)
		rs.steps++
		if s.Step(in, now) {
			rs.quit = true
			break
		}
	}
	return collectStats(s, rs)
}

func collectStats(s *game.Session, rs runStats) runStats {
	events := s.Events()
	entries := events.Entries()

	rs.screen = s.Screen()
	rs.mode = s.Mode()
	rs.player = s.Player()
	rs.cellCol, rs.cellRow = s.World().CellOf(rs.player.Pos)
	rs.startTick = firstTick(entries, game.CategoryScreen, "change", "-> game")
	rs.winTick = firstTick(entries, game.CategoryScreen, "change", "-> win")
	rs.quitTick = firstTick(entries, game.CategoryInput, "quit", "")
	rs.blocked = events.Count(game.CategoryMove, "blocked")
	rs.toggles = events.Count(game.CategoryMode, "toggle")
	rs.fpsUpdates = events.Count(game.CategoryFPS, "update")
	if e, ok := events.LastOf(game.CategoryFPS, "update"); ok {
		rs.lastFPSText = e.Value
	}
	rs.events = entries
	return rs
}

func firstTick(entries []game.Event, category, key, contains string) int {
	for _, e := range entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if contains == "" || strings.Contains(e.Value, contains) {
			return e.Tick
		}
	}
	return -1
}

func renderReport(script, maze string, rs runStats) string {
	var b strings.Builder
	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(value)
		b.WriteByte('\n')
	}

	row("maze", maze)
	row("script", script)
	row("steps", fmt.Sprintf("%d (quit=%v)", rs.steps, rs.quit))
	row("final screen", outcome(rs))
	row("mode", rs.mode.String())
	row("position", fmt.Sprintf("(%.1f,%.1f) cell=(%d,%d)", rs.player.Pos.X, rs.player.Pos.Y, rs.cellCol, rs.cellRow))
	row("heading", fmt.Sprintf("%.4f rad", rs.player.A))
	row("markers", fmt.Sprintf("start=%d win=%d quit=%d", rs.startTick, rs.winTick, rs.quitTick))
	row("events", fmt.Sprintf("blocked=%d toggles=%d fps_updates=%d %s", rs.blocked, rs.toggles, rs.fpsUpdates, rs.lastFPSText))

	var lines strings.Builder
	for _, e := range rs.events {
		lines.WriteString(e.String())
		lines.WriteByte('\n')
	}
	if lines.Len() == 0 {
		lines.WriteString("(no events)\n")
	}

	return titleStyle.Render("=== Headless Maze Report ===") + "\n" +
		boxStyle.Render(strings.TrimRight(b.String(), "\n")) + "\n" +
		titleStyle.Render("--- event log ---") + "\n" +
		strings.TrimRight(lines.String(), "\n")
}

func outcome(rs runStats) string {
	if rs.screen == game.ScreenWin || rs.winTick >= 0 {
		return winStyle.Render(fmt.Sprintf("%s (goal reached at tick %d)", rs.screen, rs.winTick))
	}
	return lossStyle.Render(rs.screen.String())
}

func writePNG(path string, fb *raycast.Framebuffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, fb.Image()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
