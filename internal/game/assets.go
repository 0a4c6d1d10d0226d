package game

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/Garsondee/Maze-Caster/internal/config"
	"github.com/Garsondee/Maze-Caster/internal/raycast"
)

// LoadWorld reads the maze file named by cfg and places the configured enemies.
func LoadWorld(cfg config.WorldConfig) (*raycast.World, error) {
	m, err := raycast.LoadMaze(cfg.Maze)
	if err != nil {
		return nil, err
	}
	enemies := make([]raycast.Vec2, 0, len(cfg.Enemies))
	for _, e := range cfg.Enemies {
		enemies = append(enemies, raycast.Vec2{X: e.X, Y: e.Y})
	}
	w, err := raycast.NewWorld(m, cfg.BlockSize, enemies)
	if err != nil {
		return nil, fmt.Errorf("maze %s: %w", cfg.Maze, err)
	}
	return w, nil
}

// LoadTextures decodes the wall, enemy, sky and floor images. Any failure is
// returned; the caller treats it as fatal.
func LoadTextures(a config.AssetsConfig) (raycast.Textures, error) {
	var tex raycast.Textures
	for _, t := range []struct {
		dst  **raycast.Texture
		name string
	}{
		{&tex.Wall, a.Wall},
		{&tex.Enemy, a.Enemy},
		{&tex.Sky, a.Sky},
		{&tex.Floor, a.Floor},
	} {
		loaded, err := raycast.LoadTexture(a.Path(t.name))
		if err != nil {
			return raycast.Textures{}, err
		}
		*t.dst = loaded
	}
	return tex, nil
}

// PlaceholderTextures returns flat-colour art for runs without an asset dir.
func PlaceholderTextures() raycast.Textures {
	return raycast.Textures{
		Wall:  raycast.NewSolidTexture(raycast.TextureSpan, raycast.TextureSpan, 0x8A6F4E),
		Enemy: raycast.NewSolidTexture(raycast.TextureSpan, raycast.TextureSpan, 0xC03030),
		Sky:   raycast.NewSolidTexture(1, 1, 0x6FA8DC),
		Floor: raycast.NewSolidTexture(1, 1, 0x3C7A3C),
	}
}

// LoadMusic opens the background track. Audio is optional: a missing or
// broken file is logged and the game runs silent.
func LoadMusic(ctx *audio.Context, cfg config.Config, logger *log.Logger) Music {
	if !cfg.Audio.Enabled || ctx == nil {
		return Silence{}
	}
	path := cfg.Assets.Path(cfg.Assets.Music)
	track, err := NewLoopingTrack(ctx, path)
	if err != nil {
		logger.Warn("music unavailable, continuing without audio", "path", path, "error", err)
		return Silence{}
	}
	track.SetVolume(cfg.Audio.Volume)
	return track
}
