package raycast

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func checkerImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 0xFF, A: 0xFF})
	img.Set(1, 0, color.RGBA{G: 0xFF, A: 0xFF})
	img.Set(0, 1, color.RGBA{B: 0xFF, A: 0xFF})
	img.Set(1, 1, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	return img
}

func TestTexture_ClampToEdge(t *testing.T) {
	tex := NewTextureFromImage(checkerImage())
	cases := []struct {
		x, y int
		want uint32
	}{
		{0, 0, 0xFF0000},
		{1, 0, 0x00FF00},
		{-5, -5, 0xFF0000},
		{9, -1, 0x00FF00},
		{-1, 9, 0x0000FF},
		{9, 9, 0xFFFFFF},
	}
	for _, c := range cases {
		if got := tex.Color(c.x, c.y); got != c.want {
			t.Errorf("Color(%d,%d) = %06x, want %06x", c.x, c.y, got, c.want)
		}
	}
}

func TestTexture_SpanColorRescales(t *testing.T) {
	tex := NewTextureFromImage(checkerImage())
	if got := tex.SpanColor(10, 10); got != 0xFF0000 {
		t.Fatalf("top-left quadrant = %06x", got)
	}
	if got := tex.SpanColor(100, 100); got != 0xFFFFFF {
		t.Fatalf("bottom-right quadrant = %06x", got)
	}
}

func TestLoadTexture_PNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tex.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, checkerImage()); err != nil {
		t.Fatal(err)
	}
	f.Close()

	tex, err := LoadTexture(path)
	if err != nil {
		t.Fatalf("LoadTexture: %v", err)
	}
	if tex.Width != 2 || tex.Height != 2 {
		t.Fatalf("size = %dx%d", tex.Width, tex.Height)
	}
	if tex.Color(1, 1) != 0xFFFFFF {
		t.Fatalf("pixel = %06x", tex.Color(1, 1))
	}
}

func TestLoadTexture_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadTexture(filepath.Join(dir, "missing.png")); err == nil {
		t.Fatal("expected error for missing file")
	}
	bad := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(bad, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTexture(bad); err == nil {
		t.Fatal("expected error for undecodable file")
	}
}
