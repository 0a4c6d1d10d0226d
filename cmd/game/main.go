// mazecaster is a first-person raycasting maze explorer.
//
// Usage:
//
//	mazecaster [flags]
//
// Controls: ENTER starts, arrows move and turn, the mouse turns, M toggles
// the overhead view, F2 copies a state snapshot, ESC quits.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/spf13/cobra"

	"github.com/Garsondee/Maze-Caster/internal/config"
	"github.com/Garsondee/Maze-Caster/internal/game"
	"github.com/Garsondee/Maze-Caster/internal/raycast"
)

var (
	flagConfig   string
	flagMaze     string
	flagAssets   string
	flagLogLevel string
	flagMute     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazecaster",
	Short: "Walk a textured maze in first person and find the exit",
	Long: `Maze Caster renders a text-file maze as a textured first-person view.

Controls:
  ENTER        - Start
  Left/Right   - Turn (the mouse turns too)
  Up/Down      - Walk forward/back
  M            - Toggle the overhead ray view
  F2           - Copy a state snapshot to the clipboard
  Esc          - Quit

Examples:
  mazecaster
  mazecaster --maze ./levels/hard.txt
  mazecaster --config ./my.yaml --mute`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config YAML layered over the defaults")
	rootCmd.PersistentFlags().StringVar(&flagMaze, "maze", "", "Maze file (overrides world.maze)")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Asset directory (overrides assets.dir)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable background music")
}

func run(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagMaze != "" {
		cfg.World.Maze = flagMaze
	}
	if flagAssets != "" {
		cfg.Assets.Dir = flagAssets
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "mazecaster",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	logger.SetLevel(level)

	world, err := game.LoadWorld(cfg.World)
	if err != nil {
		return err
	}
	textures, err := game.LoadTextures(cfg.Assets)
	if err != nil {
		return err
	}
	text, err := raycast.NewGlyphRenderer(nil)
	if err != nil {
		return err
	}
	music := game.LoadMusic(audio.NewContext(game.SampleRate), cfg, logger)

	opts := game.OptionsFromConfig(cfg)
	opts.World = world
	opts.Textures = textures
	opts.Text = text
	opts.Music = music
	opts.Logger = logger
	session := game.NewSession(opts)

	logger.Info("starting",
		"maze", cfg.World.Maze,
		"rows", world.Maze.Rows(),
		"goal", fmt.Sprintf("(%.0f,%.0f)", world.Goal.X, world.Goal.Y),
		"enemies", len(world.Enemies),
	)

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetTPS(cfg.Render.TPS)
	if err := ebiten.RunGame(game.New(session, logger)); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	logger.Info("bye", "ticks", session.Tick(), "screen", session.Screen())
	return nil
}
