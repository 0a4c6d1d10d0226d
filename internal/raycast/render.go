package raycast

import "math"

// Palette.
const (
	GoalColor      uint32 = 0x4C9141
	SpriteKeyColor uint32 = 0x3A4041
	MinimapBG      uint32 = 0x222222
	MinimapGoal    uint32 = 0xFF0000
	MinimapPlayer  uint32 = 0xFF0000
	DebugWallColor uint32 = 0x000000
	DebugPlayerDot uint32 = 0xFFFFFF
	DebugRayColor  uint32 = 0xFFDDDD
	OpenCellColor  uint32 = 0x000000
)

// DefaultWallScale is K in h = H/d*K.
const DefaultWallScale = 70.0

// Sprite tuning.
const (
	spriteMinDistance = 10.0
	spriteScale       = 100.0
)

// Textures is the immutable art set shared by every frame.
type Textures struct {
	Wall  *Texture
	Enemy *Texture
	Sky   *Texture
	Floor *Texture
}

// ZBuffer holds, per screen column, the distance of the nearest surface drawn.
type ZBuffer []float64

// NewZBuffer returns a buffer of width columns, all at +Inf.
func NewZBuffer(width int) ZBuffer {
	z := make(ZBuffer, width)
	z.Reset()
	return z
}

// Reset sets every column back to +Inf.
func (z ZBuffer) Reset() {
	for i := range z {
		z[i] = math.Inf(1)
	}
}

// Renderer draws the first-person and overhead views of a World.
type Renderer struct {
	Textures
	// WallScale converts corrected distance to column height: h = H/d*WallScale.
	WallScale float64
	GoalColor uint32
}

func NewRenderer(tex Textures) *Renderer {
	return &Renderer{Textures: tex, WallScale: DefaultWallScale, GoalColor: GoalColor}
}

// Render3D fills the sky and floor, then draws one textured wall slice per
// column and records each column's corrected distance in zbuf.
func (r *Renderer) Render3D(fb *Framebuffer, w *World, p Player, zbuf ZBuffer) {
	r.drawBackdrop(fb)

	hh := float64(fb.Height) / 2
	for i := 0; i < fb.Width; i++ {
		a := p.RayAngle(i, fb.Width)
		hit := CastRay(fb, w, p, a, false)
		d := hit.Distance * math.Cos(a-p.A)
		if i < len(zbuf) {
			zbuf[i] = d
		}
		if hit.Missed() {
			continue
		}

		// A zero distance would give an infinite column; anything past 2H clips the same.
		h := math.Min(float64(fb.Height)/d*r.WallScale, 2*float64(fb.Height))
		top := clampInt(int(math.Floor(hh-h/2)), 0, fb.Height)
		bot := clampInt(int(math.Floor(hh+h/2)), 0, fb.Height)
		for y := top; y < bot; y++ {
			ty := float64(y-top) / float64(bot-top) * TextureSpan
			fb.SetCurrentColor(r.wallColor(hit.Impact, hit.TX, ty))
			fb.Point(i, y)
		}
	}
}

func (r *Renderer) drawBackdrop(fb *Framebuffer) {
	half := fb.Height / 2
	if half == 0 {
		return
	}
	w, hf := float64(fb.Width), float64(half)
	for i := 0; i < fb.Width; i++ {
		u := float64(i) / w
		for j := 0; j < half; j++ {
			tx := int(u * float64(r.Sky.Width))
			ty := int(float64(j) / hf * float64(r.Sky.Height))
			fb.SetCurrentColor(r.Sky.Color(tx, ty))
			fb.Point(i, j)
		}
		for j := half; j < fb.Height; j++ {
			tx := int(u * float64(r.Floor.Width))
			ty := int(float64(j-half) / hf * float64(r.Floor.Height))
			fb.SetCurrentColor(r.Floor.Color(tx, ty))
			fb.Point(i, j)
		}
	}
}

func (r *Renderer) wallColor(impact byte, tx, ty float64) uint32 {
	switch {
	case impact == CellGoal:
		return r.GoalColor
	case IsWall(impact):
		return r.Wall.SpanColor(tx, ty)
	default:
		return OpenCellColor
	}
}

// RenderSprites draws each enemy as a camera-facing square. A sprite is drawn
// only if it is nearer than the wall at its left screen edge; the columns it
// covers then take its distance.
func (r *Renderer) RenderSprites(fb *Framebuffer, p Player, enemies []Vec2, zbuf ZBuffer) {
	for _, e := range enemies {
		r.renderSprite(fb, p, e, zbuf)
	}
}

// spriteProjection is an enemy's screen square before clipping.
type spriteProjection struct {
	x0, y0 float64
	size   float64
	dist   float64
}

// projectSprite places enemy e on a w×h screen. ok is false when the enemy is
// culled: too close, or at a negative world angle from the player.
func projectSprite(p Player, e Vec2, w, h int) (sp spriteProjection, ok bool) {
	theta := e.Sub(p.Pos).Angle()
	if theta < 0 {
		return sp, false
	}
	ds := p.Pos.Dist(e)
	if ds < spriteMinDistance {
		return sp, false
	}

	sh, sw := float64(h), float64(w)
	size := sh / ds * spriteScale
	return spriteProjection{
		// Wrapped so a heading that has turned full circles projects the same.
		x0:   WrapAngle(theta-p.A)*(sh/p.FOV) + sw/2 - size/2,
		y0:   sh/2 - size/2,
		size: size,
		dist: ds,
	}, true
}

func (r *Renderer) renderSprite(fb *Framebuffer, p Player, e Vec2, zbuf ZBuffer) {
	sp, ok := projectSprite(p, e, fb.Width, fb.Height)
	if !ok {
		return
	}

	endX := min(int(sp.x0+sp.size), fb.Width)
	endY := min(int(sp.y0+sp.size), fb.Height)
	startX := int(math.Max(sp.x0, 0))
	startY := int(math.Max(sp.y0, 0))
	if endX <= 0 || startX >= fb.Width || startX >= len(zbuf) {
		return
	}
	if sp.dist >= zbuf[startX] {
		return
	}

	for x := startX; x < endX; x++ {
		tx := (float64(x) - sp.x0) * TextureSpan / sp.size
		for y := startY; y < endY; y++ {
			ty := (float64(y) - sp.y0) * TextureSpan / sp.size
			c := r.Enemy.SpanColor(tx, ty)
			if c == SpriteKeyColor {
				continue
			}
			fb.SetCurrentColor(c)
			fb.Point(x, y)
		}
		if x < len(zbuf) {
			zbuf[x] = sp.dist
		}
	}
}
