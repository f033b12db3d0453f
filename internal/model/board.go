package model

import (
	"encoding/json"
	"fmt"
)

// Board is an immutable cols x rows grid of cells. Every change returns a
// new Board; callers never observe in-place mutation
type Board struct {
	cols  int
	rows  int
	cells []TileCell // Row-major: cells[y*cols+x]
}

// NewBoard creates an empty board with the start square at the exact centre
func NewBoard(cols, rows int) Board {
	if cols <= 0 || rows <= 0 {
		panic(fmt.Sprintf("invalid board dimensions %dx%d", cols, rows))
	}

	midX, midY := cols/2, rows/2
	cells := make([]TileCell, cols*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if x == midX && y == midY {
				cells[y*cols+x] = StartCell()
			} else {
				cells[y*cols+x] = EmptyCell()
			}
		}
	}

	b := Board{cols: cols, rows: rows, cells: cells}

	// The row-major fill order matters; make sure the centre came out right
	if b.cells[midY*cols+midX].Kind != TileStart {
		panic("invalid board: centre is not the start square")
	}
	return b
}

// NewStandardBoard creates the standard 15x15 board
func NewStandardBoard() Board {
	return NewBoard(BoardSize, BoardSize)
}

// Cols returns the board width
func (b Board) Cols() int { return b.cols }

// Rows returns the board height
func (b Board) Rows() int { return b.rows }

// Center returns the start square position
func (b Board) Center() Point {
	return Point{X: b.cols / 2, Y: b.rows / 2}
}

// InBounds returns true if the point is on the board
func (b Board) InBounds(p Point) bool {
	return p.X >= 0 && p.X < b.cols && p.Y >= 0 && p.Y < b.rows
}

// TileAt returns the cell at (x, y); ok is false when off the board
func (b Board) TileAt(x, y int) (TileCell, bool) {
	if !b.InBounds(Point{X: x, Y: y}) {
		return TileCell{}, false
	}
	return b.cells[y*b.cols+x], true
}

// IsLetter returns true if a letter has already been placed at p
func (b Board) IsLetter(p Point) bool {
	cell, ok := b.TileAt(p.X, p.Y)
	return ok && cell.IsLetter()
}

// Changed returns a copy of the board with one cell replaced
func (b Board) Changed(cell TileCell, x, y int) Board {
	if !b.InBounds(Point{X: x, Y: y}) {
		panic(fmt.Sprintf("board index out of range: (%d,%d) on %dx%d", x, y, b.cols, b.rows))
	}
	cells := b.Cells()
	cells[y*b.cols+x] = cell
	return Board{cols: b.cols, rows: b.rows, cells: cells}
}

// Replaced returns a board of the same dimensions backed by the given cells
func (b Board) Replaced(cells []TileCell) Board {
	if len(cells) != b.cols*b.rows {
		panic(fmt.Sprintf("replacement grid has %d cells, want %d", len(cells), b.cols*b.rows))
	}
	copied := make([]TileCell, len(cells))
	copy(copied, cells)
	return Board{cols: b.cols, rows: b.rows, cells: copied}
}

// Cells returns a copy of the row-major cell grid
func (b Board) Cells() []TileCell {
	cells := make([]TileCell, len(b.cells))
	copy(cells, b.cells)
	return cells
}

// LetterCount returns the number of letters placed on the board
func (b Board) LetterCount() int {
	count := 0
	for _, c := range b.cells {
		if c.IsLetter() {
			count++
		}
	}
	return count
}

// Bonus classifies the square at (x, y). Only the standard board carries
// the bonus layout; other sizes just have the start square
func (b Board) Bonus(x, y int) Bonus {
	if !b.InBounds(Point{X: x, Y: y}) {
		return BonusNone
	}
	if b.cols == BoardSize && b.rows == BoardSize {
		return BonusAt(x, y)
	}
	if (Point{X: x, Y: y}) == b.Center() {
		return BonusStart
	}
	return BonusNone
}

type boardJSON struct {
	Cols  int        `json:"cols"`
	Rows  int        `json:"rows"`
	Cells []TileCell `json:"cells"`
}

func (b Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(boardJSON{Cols: b.cols, Rows: b.rows, Cells: b.cells})
}

func (b *Board) UnmarshalJSON(data []byte) error {
	var in boardJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if in.Cols <= 0 || in.Rows <= 0 || len(in.Cells) != in.Cols*in.Rows {
		return ErrInvalidSnapshot
	}
	*b = Board{cols: in.Cols, rows: in.Rows, cells: in.Cells}
	return nil
}
