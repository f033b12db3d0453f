package model

// PlayerIndex identifies a seat in a match, 0-indexed in turn order
type PlayerIndex int

// PlayerHand is a player's rack of tiles
type PlayerHand struct {
	ID      PlayerIndex `json:"id"`
	Letters []IdLetter  `json:"letters"`
}

// Contains returns true if the rack holds the tile
func (h PlayerHand) Contains(id TileID) bool {
	return IndexOfTile(h.Letters, id) >= 0
}

// Tile returns the rack tile with the given ID
func (h PlayerHand) Tile(id TileID) (IdLetter, bool) {
	ix := IndexOfTile(h.Letters, id)
	if ix < 0 {
		return IdLetter{}, false
	}
	return h.Letters[ix], true
}

// Missing returns how many tiles the rack is short of being full
func (h PlayerHand) Missing() int {
	if n := RackSize - len(h.Letters); n > 0 {
		return n
	}
	return 0
}

// WithLetters returns a copy of the hand holding the given tiles
func (h PlayerHand) WithLetters(letters []IdLetter) PlayerHand {
	copied := make([]IdLetter, len(letters))
	copy(copied, letters)
	return PlayerHand{ID: h.ID, Letters: copied}
}
