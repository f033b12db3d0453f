package model

import "encoding/json"

// Point identifies a cell on the board
type Point struct {
	X int `json:"x"` // 0-indexed from left
	Y int `json:"y"` // 0-indexed from top
}

// Moved returns the neighbouring point one step along the direction
func (p Point) Moved(dir Direction) Point {
	if dir == DirectionDown {
		return Point{X: p.X, Y: p.Y + 1}
	}
	return Point{X: p.X + 1, Y: p.Y}
}

// Direction is the axis a word is laid along
type Direction int

const (
	DirectionRight Direction = iota
	DirectionDown
)

// Rotate flips between right and down
func (d Direction) Rotate() Direction {
	if d == DirectionRight {
		return DirectionDown
	}
	return DirectionRight
}

func (d Direction) String() string {
	if d == DirectionDown {
		return "down"
	}
	return "right"
}

// ParseDirection is the inverse of String
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "right":
		return DirectionRight, true
	case "down":
		return DirectionDown, true
	}
	return DirectionRight, false
}

func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Direction) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, ok := ParseDirection(s)
	if !ok {
		return ErrInvalidDirection
	}
	*d = parsed
	return nil
}
