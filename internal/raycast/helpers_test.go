package raycast

import "testing"

const (
	testSky   uint32 = 0x0000FF
	testFloor uint32 = 0x00FF00
	testWall  uint32 = 0xAAAAAA
	testEnemy uint32 = 0xFF0000
	testBG    uint32 = 0x333355
)

func solidTextures() Textures {
	return Textures{
		Wall:  NewSolidTexture(128, 128, testWall),
		Enemy: NewSolidTexture(128, 128, testEnemy),
		Sky:   NewSolidTexture(64, 64, testSky),
		Floor: NewSolidTexture(64, 64, testFloor),
	}
}

func newTestWorld(t *testing.T, rows ...string) *World {
	t.Helper()
	w, err := NewWorld(NewMaze(rows...), DefaultBlockSize, nil)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return w
}

// corridorMaze is one row of open cells between two walls, goal at the far end.
var corridorMaze = []string{
	"+++++++",
	"+     g",
	"+++++++",
}

// hallMaze is a tall room whose east wall sits at x=600.
var hallMaze = []string{
	"+++++++",
	"+     +",
	"+     +",
	"+     +",
	"+     +",
	"+     +",
	"+     +",
	"+     +",
	"+     +",
	"+     +",
	"+     +",
	"+     g",
	"+++++++",
}

func countColor(fb *Framebuffer, c uint32) int {
	n := 0
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			if fb.Pixel(x, y) == c {
				n++
			}
		}
	}
	return n
}
