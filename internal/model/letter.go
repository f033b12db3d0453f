package model

import "fmt"

// Letter is a tile face: the displayed value and what it scores
type Letter struct {
	Value  string `json:"value"` // Empty for blank tiles
	Points int    `json:"points"`
}

// IsBlank reports whether the letter is a blank (wildcard) tile
func (l Letter) IsBlank() bool {
	return l.Value == ""
}

func (l Letter) String() string {
	if l.IsBlank() {
		return "_"
	}
	return l.Value
}

// TileID uniquely identifies a physical tile within a match
type TileID int

// IdLetter is a physical tile. Two tiles may share a face value,
// so hands, board and dispenser track them by ID
type IdLetter struct {
	ID     TileID `json:"id"`
	Letter Letter `json:"letter"`
}

func (l IdLetter) String() string {
	return fmt.Sprintf("%s#%d", l.Letter, l.ID)
}

// TileIDs returns the identities of the given tiles, preserving order
func TileIDs(letters []IdLetter) []TileID {
	ids := make([]TileID, len(letters))
	for i, l := range letters {
		ids[i] = l.ID
	}
	return ids
}

// IndexOfTile returns the position of the tile with the given ID, or -1
func IndexOfTile(letters []IdLetter, id TileID) int {
	for i, l := range letters {
		if l.ID == id {
			return i
		}
	}
	return -1
}
