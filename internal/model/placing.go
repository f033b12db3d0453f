package model

// PlacingData is the word a player is assembling before it is committed
type PlacingData struct {
	Origin    Point      `json:"origin"`
	Direction Direction  `json:"direction"`
	Placed    []IdLetter `json:"placed"`
}

// Contains returns true if the tile is already part of the word
func (p PlacingData) Contains(id TileID) bool {
	return IndexOfTile(p.Placed, id) >= 0
}

// Toggled appends the tile if absent, or removes it if present.
// Word order is preserved either way
func (p PlacingData) Toggled(letter IdLetter) PlacingData {
	placed := make([]IdLetter, 0, len(p.Placed)+1)
	if ix := IndexOfTile(p.Placed, letter.ID); ix >= 0 {
		placed = append(placed, p.Placed[:ix]...)
		placed = append(placed, p.Placed[ix+1:]...)
	} else {
		placed = append(placed, p.Placed...)
		placed = append(placed, letter)
	}
	return PlacingData{Origin: p.Origin, Direction: p.Direction, Placed: placed}
}

// FreeCells walks from the origin along the direction and returns up to
// limit on-board cells that do not already hold a letter. Occupied cells
// are passed through, they neither take a write nor use up a slot
func (p PlacingData) FreeCells(board Board, limit int) []Point {
	var cells []Point
	for pt := p.Origin; board.InBounds(pt) && len(cells) < limit; pt = pt.Moved(p.Direction) {
		if board.IsLetter(pt) {
			continue
		}
		cells = append(cells, pt)
	}
	return cells
}

// Targets returns the cell each placed letter will be written to, in word
// order. It is shorter than Placed only if the word runs off the board
func (p PlacingData) Targets(board Board) []Point {
	return p.FreeCells(board, len(p.Placed))
}

// Fits reports whether one more letter would still land on the board
func (p PlacingData) Fits(board Board) bool {
	return len(p.FreeCells(board, len(p.Placed)+1)) > len(p.Placed)
}

// Cursor returns the cell the next letter would go to, if another letter
// may still be placed
func (p PlacingData) Cursor(board Board) (Point, bool) {
	if len(p.Placed) >= RackSize {
		return Point{}, false
	}
	cells := p.FreeCells(board, len(p.Placed)+1)
	if len(cells) <= len(p.Placed) {
		return Point{}, false
	}
	return cells[len(p.Placed)], true
}

// Preview returns the board with the in-progress word written onto it
func (p PlacingData) Preview(board Board) Board {
	cells := board.Cells()
	for i, pt := range p.Targets(board) {
		cells[pt.Y*board.Cols()+pt.X] = LetterCell(p.Placed[i].Letter)
	}
	return board.Replaced(cells)
}
