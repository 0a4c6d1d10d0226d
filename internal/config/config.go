// Package config holds the tunable constants of the maze explorer and loads
// them from YAML.
package config

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
)

// Config is the full runtime configuration.
type Config struct {
	Window      WindowConfig      `yaml:"window"`
	Framebuffer FramebufferConfig `yaml:"framebuffer"`
	World       WorldConfig       `yaml:"world"`
	Player      PlayerConfig      `yaml:"player"`
	Render      RenderConfig      `yaml:"render"`
	Assets      AssetsConfig      `yaml:"assets"`
	Audio       AudioConfig       `yaml:"audio"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type FramebufferConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background uint32 `yaml:"background"`
}

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type WorldConfig struct {
	Maze      string  `yaml:"maze"`
	BlockSize int     `yaml:"block_size"`
	Enemies   []Point `yaml:"enemies"`
}

type PlayerConfig struct {
	StartX           float64 `yaml:"start_x"`
	StartY           float64 `yaml:"start_y"`
	HeadingDeg       float64 `yaml:"heading_deg"`
	FOVDeg           float64 `yaml:"fov_deg"`
	MoveSpeed        float64 `yaml:"move_speed"`
	RotationDeg      float64 `yaml:"rotation_deg"`
	MouseSensitivity float64 `yaml:"mouse_sensitivity"`
}

// Heading returns the start heading in radians.
func (p PlayerConfig) Heading() float64 { return p.HeadingDeg * math.Pi / 180 }

// FOV returns the field of view in radians.
func (p PlayerConfig) FOV() float64 { return p.FOVDeg * math.Pi / 180 }

// RotationSpeed returns the per-tick keyboard turn in radians.
func (p PlayerConfig) RotationSpeed() float64 { return p.RotationDeg * math.Pi / 180 }

type RenderConfig struct {
	WallScale float64 `yaml:"wall_scale"`
	GoalColor uint32  `yaml:"goal_color"`
	TPS       int     `yaml:"tps"`
}

type AssetsConfig struct {
	Dir   string `yaml:"dir"`
	Wall  string `yaml:"wall"`
	Enemy string `yaml:"enemy"`
	Sky   string `yaml:"sky"`
	Floor string `yaml:"floor"`
	Music string `yaml:"music"`
}

// Path joins name onto the asset directory.
func (a AssetsConfig) Path(name string) string { return filepath.Join(a.Dir, name) }

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// Validate rejects configurations the renderer cannot work with.
func (c Config) Validate() error {
	var errs []error
	if c.Framebuffer.Width <= 0 || c.Framebuffer.Height <= 0 {
		errs = append(errs, fmt.Errorf("framebuffer size %dx%d must be positive", c.Framebuffer.Width, c.Framebuffer.Height))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.World.BlockSize <= 0 {
		errs = append(errs, fmt.Errorf("block_size %d must be positive", c.World.BlockSize))
	}
	if c.World.Maze == "" {
		errs = append(errs, errors.New("world.maze path is empty"))
	}
	if c.Player.FOVDeg <= 0 || c.Player.FOVDeg >= 180 {
		errs = append(errs, fmt.Errorf("fov_deg %.1f must be in (0, 180)", c.Player.FOVDeg))
	}
	if c.Render.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps %d must be positive", c.Render.TPS))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio volume %.2f must be in [0, 1]", c.Audio.Volume))
	}
	return errors.Join(errs...)
}
