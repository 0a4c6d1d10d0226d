package raycast

import (
	"image"
	"image/color"
)

// TextDrawer rasterises a string onto a framebuffer. (x, y) is the top-left
// corner of the text box and scale is the font size in pixels.
type TextDrawer interface {
	DrawText(fb *Framebuffer, s string, x, y int, scale float64, color uint32)
}

// Framebuffer is a CPU pixel grid of packed 0xRRGGBB colours with a pen.
// It satisfies draw.Image so image/draw and x/image/font can target it.
type Framebuffer struct {
	Width  int
	Height int

	pixels     []uint32
	background uint32
	current    uint32
	text       TextDrawer
}

func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		pixels: make([]uint32, width*height),
	}
}

// SetTextDrawer installs the glyph rasteriser used by DrawText.
func (fb *Framebuffer) SetTextDrawer(td TextDrawer) { fb.text = td }

func (fb *Framebuffer) SetBackgroundColor(c uint32) { fb.background = c }

func (fb *Framebuffer) SetCurrentColor(c uint32) { fb.current = c }

func (fb *Framebuffer) BackgroundColor() uint32 { return fb.background }

// Clear fills every pixel with the background colour.
func (fb *Framebuffer) Clear() {
	for i := range fb.pixels {
		fb.pixels[i] = fb.background
	}
}

// Point writes the current colour at (x, y). Out-of-bounds writes are dropped.
func (fb *Framebuffer) Point(x, y int) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	fb.pixels[y*fb.Width+x] = fb.current
}

// Pixel returns the packed colour at (x, y), or 0 outside the buffer.
func (fb *Framebuffer) Pixel(x, y int) uint32 {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return 0
	}
	return fb.pixels[y*fb.Width+x]
}

// FillRect paints [x, x+w) × [y, y+h) with the current colour, clipped.
func (fb *Framebuffer) FillRect(x, y, w, h int) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, fb.Width), min(y+h, fb.Height)
	for py := y0; py < y1; py++ {
		row := fb.pixels[py*fb.Width : (py+1)*fb.Width]
		for px := x0; px < x1; px++ {
			row[px] = fb.current
		}
	}
}

// DrawText hands the string to the installed TextDrawer, if any.
func (fb *Framebuffer) DrawText(s string, x, y int, scale float64, color uint32) {
	if fb.text == nil || s == "" {
		return
	}
	fb.text.DrawText(fb, s, x, y, scale, color)
}

// RGBA writes the buffer as opaque RGBA bytes into dst, growing it if needed.
func (fb *Framebuffer) RGBA(dst []byte) []byte {
	n := len(fb.pixels) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, p := range fb.pixels {
		dst[i*4] = byte(p >> 16)
		dst[i*4+1] = byte(p >> 8)
		dst[i*4+2] = byte(p)
		dst[i*4+3] = 0xFF
	}
	return dst
}

// Image copies the buffer into a new *image.RGBA.
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	img.Pix = fb.RGBA(img.Pix[:0])
	return img
}

// ColorModel implements draw.Image.
func (fb *Framebuffer) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements draw.Image.
func (fb *Framebuffer) Bounds() image.Rectangle { return image.Rect(0, 0, fb.Width, fb.Height) }

// At implements draw.Image.
func (fb *Framebuffer) At(x, y int) color.Color { return unpack(fb.Pixel(x, y)) }

// Set implements draw.Image. It bypasses the pen.
func (fb *Framebuffer) Set(x, y int, c color.Color) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	fb.pixels[y*fb.Width+x] = pack(c)
}

func pack(c color.Color) uint32 {
	r, g, b, _ := c.RGBA()
	return (r>>8)<<16 | (g>>8)<<8 | b>>8
}

func unpack(p uint32) color.RGBA {
	return color.RGBA{R: uint8(p >> 16), G: uint8(p >> 8), B: uint8(p), A: 0xFF}
}
