package raycast

// Minimap placement.
const (
	MinimapSize   = 200
	MinimapInsetX = 100
	MinimapInsetY = 10
	DebugRayCount = 100
)

// RenderMinimap draws a scaled top-down copy of the maze near the
// bottom-right corner with the player as a single red pixel. Nothing is drawn
// when the framebuffer is too small to hold it.
func (r *Renderer) RenderMinimap(fb *Framebuffer, w *World, p Player) {
	ox := fb.Width - MinimapSize - MinimapInsetX
	oy := fb.Height - MinimapSize - MinimapInsetY
	if ox < 0 || oy < 0 || w.Maze.Rows() == 0 {
		return
	}

	fb.SetCurrentColor(MinimapBG)
	fb.FillRect(ox, oy, MinimapSize, MinimapSize)

	b := float64(w.BlockSize)
	scale := MinimapSize / (float64(w.Maze.Rows()) * b)
	cell := int(b * scale)
	for row := 0; row < w.Maze.Rows(); row++ {
		for col := 0; col < w.Maze.RowLen(row); col++ {
			c, _ := w.Maze.Cell(col, row)
			fb.SetCurrentColor(r.minimapColor(c))
			fb.FillRect(ox+int(float64(col)*b*scale), oy+int(float64(row)*b*scale), cell, cell)
		}
	}

	fb.SetCurrentColor(MinimapPlayer)
	fb.Point(ox+int(p.Pos.X*scale), oy+int(p.Pos.Y*scale))
}

func (r *Renderer) minimapColor(c byte) uint32 {
	switch {
	case c == CellGoal:
		return MinimapGoal
	case IsWall(c):
		return r.Wall.Color(0, 0)
	default:
		return OpenCellColor
	}
}

// Render2D draws the maze at world scale: every non-open cell as a solid
// block, the player as a white dot, and a fan of DebugRayCount rays.
func (r *Renderer) Render2D(fb *Framebuffer, w *World, p Player) {
	fb.SetCurrentColor(DebugWallColor)
	for row := 0; row < w.Maze.Rows(); row++ {
		for col := 0; col < w.Maze.RowLen(row); col++ {
			if c, _ := w.Maze.Cell(col, row); c == CellOpen {
				continue
			}
			fb.FillRect(col*w.BlockSize, row*w.BlockSize, w.BlockSize, w.BlockSize)
		}
	}

	fb.SetCurrentColor(DebugRayColor)
	for i := 0; i < DebugRayCount; i++ {
		CastRay(fb, w, p, p.RayAngle(i, DebugRayCount), true)
	}

	fb.SetCurrentColor(DebugPlayerDot)
	fb.Point(int(p.Pos.X), int(p.Pos.Y))
}
