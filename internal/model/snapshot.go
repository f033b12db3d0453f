package model

import "encoding/json"

// Snapshot is an immutable export of everything the engine holds, used to
// persist and restore a match
type Snapshot struct {
	Locale     string       `json:"locale"`
	Board      Board        `json:"board"`
	Dispenser  Dispenser    `json:"dispenser"`
	Hands      []PlayerHand `json:"hands"`
	State      TurnState    `json:"-"`
	TotalTiles int          `json:"total_tiles"`
}

// SettledHands returns the racks as they will be once any pending swap
// has landed
func (s Snapshot) SettledHands() []PlayerHand {
	hands := make([]PlayerHand, len(s.Hands))
	copy(hands, s.Hands)
	if anim, ok := s.State.(AnimatingSwap); ok {
		ix := int(anim.Player)
		if ix >= 0 && ix < len(hands) {
			hands[ix] = anim.Swap.Apply(hands[ix])
		}
	}
	return hands
}

// TileCount counts every tile of the match: bag, racks and board.
// For a consistent match it always equals TotalTiles
func (s Snapshot) TileCount() int {
	count := s.Dispenser.Len() + s.Board.LetterCount()
	for _, h := range s.SettledHands() {
		count += len(h.Letters)
	}
	return count
}

type snapshotJSON struct {
	Locale     string          `json:"locale"`
	Board      Board           `json:"board"`
	Dispenser  Dispenser       `json:"dispenser"`
	Hands      []PlayerHand    `json:"hands"`
	State      json.RawMessage `json:"state"`
	TotalTiles int             `json:"total_tiles"`
}

func (s Snapshot) MarshalJSON() ([]byte, error) {
	state, err := MarshalTurnState(s.State)
	if err != nil {
		return nil, err
	}
	return json.Marshal(snapshotJSON{
		Locale:     s.Locale,
		Board:      s.Board,
		Dispenser:  s.Dispenser,
		Hands:      s.Hands,
		State:      state,
		TotalTiles: s.TotalTiles,
	})
}

func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var in snapshotJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	state, err := UnmarshalTurnState(in.State)
	if err != nil {
		return err
	}
	*s = Snapshot{
		Locale:     in.Locale,
		Board:      in.Board,
		Dispenser:  in.Dispenser,
		Hands:      in.Hands,
		State:      state,
		TotalTiles: in.TotalTiles,
	}
	return nil
}

func marshalLetters(letters []IdLetter) ([]byte, error) {
	if letters == nil {
		letters = []IdLetter{}
	}
	return json.Marshal(letters)
}

func unmarshalLetters(data []byte) ([]IdLetter, error) {
	var letters []IdLetter
	if err := json.Unmarshal(data, &letters); err != nil {
		return nil, err
	}
	return letters, nil
}
