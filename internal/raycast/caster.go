package raycast

import "math"

// MaxRayDistance is reported by rays that leave the maze without a hit.
const MaxRayDistance = 1e6

// Intersect is the result of casting one ray.
type Intersect struct {
	Distance float64 // world pixels from the player to the hit point
	Impact   byte    // cell symbol that was hit, CellOpen on a miss
	TX       float64 // horizontal texture coordinate in [0, TextureSpan)
}

// Missed reports whether the ray left the maze.
func (it Intersect) Missed() bool { return it.Impact == CellOpen }

// CastRay walks a ray from the player along angle a, crossing one cell
// boundary at a time, and stops at the first non-open cell. With debug set the
// traversed path is plotted into fb in its current colour.
func CastRay(fb *Framebuffer, w *World, p Player, a float64, debug bool) Intersect {
	hit := traverse(w, p.Pos, a)
	if debug && fb != nil {
		plotRay(fb, p.Pos, a, math.Min(hit.Distance, w.extent()))
	}
	return hit
}

func traverse(w *World, pos Vec2, a float64) Intersect {
	miss := Intersect{Distance: MaxRayDistance, Impact: CellOpen}
	b := float64(w.BlockSize)
	dir := Heading(a)

	col, row := w.CellOf(pos)
	c, ok := w.Maze.Cell(col, row)
	if !ok {
		return miss
	}
	if c != CellOpen {
		return Intersect{Distance: 0, Impact: c, TX: texCoord(pos.X, b)}
	}

	// Distance along the ray to the next vertical (x) and horizontal (y)
	// boundary, and the distance between successive boundaries.
	stepX, sideX, deltaX := axisSetup(pos.X, dir.X, col, b)
	stepY, sideY, deltaY := axisSetup(pos.Y, dir.Y, row, b)

	for {
		var dist float64
		var vertical bool
		if sideX < sideY {
			dist = sideX
			sideX += deltaX
			col += stepX
			vertical = true
		} else {
			dist = sideY
			sideY += deltaY
			row += stepY
		}

		c, ok := w.Maze.Cell(col, row)
		if !ok {
			return miss
		}
		if c == CellOpen {
			continue
		}

		hitPos := pos.Add(dir.Scale(dist))
		u := hitPos.X
		if vertical {
			u = hitPos.Y
		}
		return Intersect{Distance: dist, Impact: c, TX: texCoord(u, b)}
	}
}

func axisSetup(p, d float64, cell int, b float64) (step int, side, delta float64) {
	switch {
	case d > 0:
		return 1, (float64(cell+1)*b - p) / d, b / d
	case d < 0:
		return -1, (p - float64(cell)*b) / -d, b / -d
	default:
		return 0, math.Inf(1), math.Inf(1)
	}
}

// texCoord maps a world coordinate along a wall face into [0, TextureSpan).
func texCoord(u, b float64) float64 {
	m := math.Mod(u, b)
	if m < 0 {
		m += b
	}
	t := m * TextureSpan / b
	if t >= TextureSpan {
		t = math.Nextafter(TextureSpan, 0)
	}
	return t
}

func plotRay(fb *Framebuffer, from Vec2, a, length float64) {
	dir := Heading(a)
	for t := 0.0; t < length; t++ {
		p := from.Add(dir.Scale(t))
		fb.Point(int(p.X), int(p.Y))
	}
}

// extent is the diagonal of the maze in world pixels.
func (w *World) extent() float64 {
	cols := 0
	for r := 0; r < w.Maze.Rows(); r++ {
		cols = max(cols, w.Maze.RowLen(r))
	}
	b := float64(w.BlockSize)
	return math.Hypot(float64(cols)*b, float64(w.Maze.Rows())*b)
}
