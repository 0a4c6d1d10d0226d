package raycast

import (
	"fmt"
	"image"
	_ "image/jpeg" // WALL2.jpg
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// TextureSpan is the extent of the texture coordinate space used by walls and
// sprites. Coordinates in [0, TextureSpan) are rescaled to the texture size.
const TextureSpan = 128

// Texture is an immutable grid of packed 0xRRGGBB colours.
type Texture struct {
	Width  int
	Height int
	pixels []uint32
}

// LoadTexture decodes a PNG, JPEG, BMP or WebP file.
func LoadTexture(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", path, err)
	}
	return NewTextureFromImage(img), nil
}

// NewTextureFromImage flattens img into a texture, dropping alpha.
func NewTextureFromImage(img image.Image) *Texture {
	b := img.Bounds()
	t := &Texture{
		Width:  b.Dx(),
		Height: b.Dy(),
		pixels: make([]uint32, b.Dx()*b.Dy()),
	}
	for y := 0; y < t.Height; y++ {
		for x := 0; x < t.Width; x++ {
			t.pixels[y*t.Width+x] = pack(img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return t
}

// NewSolidTexture returns a w×h texture of a single colour.
func NewSolidTexture(w, h int, c uint32) *Texture {
	t := &Texture{Width: w, Height: h, pixels: make([]uint32, w*h)}
	for i := range t.pixels {
		t.pixels[i] = c
	}
	return t
}

// Color samples the texel at (tx, ty), clamping both axes to the edge.
func (t *Texture) Color(tx, ty int) uint32 {
	if len(t.pixels) == 0 {
		return 0
	}
	tx = clampInt(tx, 0, t.Width-1)
	ty = clampInt(ty, 0, t.Height-1)
	return t.pixels[ty*t.Width+tx]
}

// SpanColor samples using coordinates in [0, TextureSpan).
func (t *Texture) SpanColor(u, v float64) uint32 {
	return t.Color(int(u*float64(t.Width)/TextureSpan), int(v*float64(t.Height)/TextureSpan))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
