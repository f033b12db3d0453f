package model

import "encoding/json"

// TileKind discriminates the TileCell variants
type TileKind int

const (
	TileEmpty TileKind = iota
	TileStart
	TileLetter
)

func (k TileKind) String() string {
	switch k {
	case TileStart:
		return "start"
	case TileLetter:
		return "letter"
	default:
		return "empty"
	}
}

// TileCell is one board cell: empty, the start square, or a placed letter
type TileCell struct {
	Kind   TileKind
	Letter Letter // Only meaningful when Kind is TileLetter
}

// EmptyCell returns an empty cell
func EmptyCell() TileCell {
	return TileCell{Kind: TileEmpty}
}

// StartCell returns the start cell
func StartCell() TileCell {
	return TileCell{Kind: TileStart}
}

// LetterCell returns a cell holding the given letter
func LetterCell(l Letter) TileCell {
	return TileCell{Kind: TileLetter, Letter: l}
}

// IsLetter reports whether a letter has been placed in the cell
func (c TileCell) IsLetter() bool {
	return c.Kind == TileLetter
}

type tileCellJSON struct {
	Kind   string  `json:"kind"`
	Letter *Letter `json:"letter,omitempty"`
}

func (c TileCell) MarshalJSON() ([]byte, error) {
	out := tileCellJSON{Kind: c.Kind.String()}
	if c.Kind == TileLetter {
		l := c.Letter
		out.Letter = &l
	}
	return json.Marshal(out)
}

func (c *TileCell) UnmarshalJSON(data []byte) error {
	var in tileCellJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	switch in.Kind {
	case "empty":
		*c = EmptyCell()
	case "start":
		*c = StartCell()
	case "letter":
		if in.Letter == nil {
			return ErrInvalidSnapshot
		}
		*c = LetterCell(*in.Letter)
	default:
		return ErrInvalidSnapshot
	}
	return nil
}
