// Package raycast draws a grid maze in first person by casting one ray per
// screen column into a software framebuffer.
package raycast

import (
	"errors"
	"math"
)

// DefaultBlockSize is the world-pixel width of one maze cell.
const DefaultBlockSize = 100

// ErrNoGoal is returned by NewWorld when the maze has no goal cell.
var ErrNoGoal = errors.New("maze has no goal cell")

// Vec2 is a point or direction in world pixels.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// Heading returns the unit vector pointing along angle a.
func Heading(a float64) Vec2 { return Vec2{math.Cos(a), math.Sin(a)} }

// World is the static scene: the maze, its cell size, the goal position and
// the enemy billboards.
type World struct {
	Maze      *Maze
	BlockSize int
	Goal      Vec2
	Enemies   []Vec2
}

// NewWorld locates the goal cell and returns the assembled world.
func NewWorld(m *Maze, blockSize int, enemies []Vec2) (*World, error) {
	if blockSize <= 0 {
		return nil, errors.New("block size must be positive")
	}
	col, row, ok := m.Find(CellGoal)
	if !ok {
		return nil, ErrNoGoal
	}
	return &World{
		Maze:      m,
		BlockSize: blockSize,
		Goal:      Vec2{float64(col * blockSize), float64(row * blockSize)},
		Enemies:   enemies,
	}, nil
}

// CellOf returns the cell indices containing world position p.
func (w *World) CellOf(p Vec2) (col, row int) {
	b := float64(w.BlockSize)
	return int(math.Floor(p.X / b)), int(math.Floor(p.Y / b))
}

// Walkable reports whether p lies in an open cell.
func (w *World) Walkable(p Vec2) bool {
	col, row := w.CellOf(p)
	return w.Maze.IsOpen(col, row)
}

// ReachedGoal compares the rounded cell of p with the rounded goal cell.
func (w *World) ReachedGoal(p Vec2) bool {
	b := float64(w.BlockSize)
	return math.Round(p.X/b) == math.Round(w.Goal.X/b) &&
		math.Round(p.Y/b) == math.Round(w.Goal.Y/b)
}
