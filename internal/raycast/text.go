package raycast

import (
	"fmt"
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// GlyphRenderer rasterises text onto a Framebuffer with an OpenType font.
// Faces are built lazily, one per pixel size.
type GlyphRenderer struct {
	font *opentype.Font

	mu    sync.Mutex
	faces map[float64]font.Face
}

// NewGlyphRenderer parses ttf. A nil ttf selects the embedded Go Regular font.
func NewGlyphRenderer(ttf []byte) (*GlyphRenderer, error) {
	if ttf == nil {
		ttf = goregular.TTF
	}
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &GlyphRenderer{font: f, faces: make(map[float64]font.Face)}, nil
}

// DrawText draws s with its top-left corner at (x, y), scale pixels tall.
func (g *GlyphRenderer) DrawText(fb *Framebuffer, s string, x, y int, scale float64, color uint32) {
	face, err := g.face(scale)
	if err != nil {
		return
	}
	d := font.Drawer{
		Dst:  fb,
		Src:  image.NewUniform(unpack(color)),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

func (g *GlyphRenderer) face(scale float64) (font.Face, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if f, ok := g.faces[scale]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(g.font, &opentype.FaceOptions{
		Size:    scale,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	g.faces[scale] = f
	return f, nil
}
