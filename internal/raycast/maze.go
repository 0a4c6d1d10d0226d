package raycast

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Cell symbols.
const (
	CellOpen       byte = ' '
	CellGoal       byte = 'g'
	CellWallCorner byte = '+'
	CellWallH      byte = '-'
	CellWallV      byte = '|'
)

// ErrEmptyMaze is returned when a maze source has no rows.
var ErrEmptyMaze = errors.New("maze has no rows")

// IsWall reports whether c is a textured wall or the goal wall.
func IsWall(c byte) bool {
	switch c {
	case CellWallCorner, CellWallH, CellWallV, CellGoal:
		return true
	}
	return false
}

// Maze is a grid of cell symbols, indexed [row][col]. Rows may differ in length.
type Maze struct {
	rows [][]byte
}

// NewMaze builds a maze from string rows.
func NewMaze(rows ...string) *Maze {
	m := &Maze{rows: make([][]byte, len(rows))}
	for i, r := range rows {
		m.rows[i] = []byte(r)
	}
	return m
}

// LoadMaze reads a maze file: one row per line, one cell per byte.
func LoadMaze(path string) (*Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open maze %s: %w", path, err)
	}
	defer f.Close()

	m, err := ParseMaze(f)
	if err != nil {
		return nil, fmt.Errorf("parse maze %s: %w", path, err)
	}
	return m, nil
}

// ParseMaze reads rows from r. Trailing spaces are kept; a CR before the
// newline is not.
func ParseMaze(r io.Reader) (*Maze, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyMaze
	}
	return NewMaze(rows...), nil
}

// Rows returns the number of rows.
func (m *Maze) Rows() int { return len(m.rows) }

// RowLen returns the length of row, or 0 if row is out of range.
func (m *Maze) RowLen(row int) int {
	if row < 0 || row >= len(m.rows) {
		return 0
	}
	return len(m.rows[row])
}

// Cell returns the symbol at (col, row). ok is false outside the grid.
func (m *Maze) Cell(col, row int) (c byte, ok bool) {
	if row < 0 || row >= len(m.rows) || col < 0 || col >= len(m.rows[row]) {
		return 0, false
	}
	return m.rows[row][col], true
}

// IsOpen reports whether (col, row) is inside the grid and walkable.
func (m *Maze) IsOpen(col, row int) bool {
	c, ok := m.Cell(col, row)
	return ok && c == CellOpen
}

// Find returns the first cell holding c in row-major order.
func (m *Maze) Find(c byte) (col, row int, ok bool) {
	for r, cells := range m.rows {
		for col, cell := range cells {
			if cell == c {
				return col, r, true
			}
		}
	}
	return 0, 0, false
}

// String renders the maze back to its text form.
func (m *Maze) String() string {
	var sb strings.Builder
	for i, r := range m.rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(r)
	}
	return sb.String()
}
