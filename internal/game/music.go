package game

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
)

// SampleRate is the rate of the shared audio context.
const SampleRate = 44100

// Music is the background track. All calls are idempotent and never fail;
// the track loops forever once started.
type Music interface {
	Play()
	Pause()
	SetVolume(v float64)
}

// Silence is a Music that does nothing.
type Silence struct{}

func (Silence) Play() {}
func (Silence) Pause() {}
func (Silence) SetVolume(float64) {}

// LoopingTrack plays a decoded MP3 through ebiten's audio context, wrapping
// back to the start when it ends.
type LoopingTrack struct {
	player *audio.Player
}

// NewLoopingTrack decodes path and prepares a paused player.
func NewLoopingTrack(ctx *audio.Context, path string) (*LoopingTrack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read music %s: %w", path, err)
	}
	stream, err := mp3.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode music %s: %w", path, err)
	}
	player, err := ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		return nil, fmt.Errorf("create music player: %w", err)
	}
	return &LoopingTrack{player: player}, nil
}

func (t *LoopingTrack) Play() {
	if !t.player.IsPlaying() {
		t.player.Play()
	}
}

func (t *LoopingTrack) Pause() { t.player.Pause() }

// SetVolume clamps v to [0, 1].
func (t *LoopingTrack) SetVolume(v float64) {
	t.player.SetVolume(min(max(v, 0), 1))
}
