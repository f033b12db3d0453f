package model

// SwapPair is one rack slot flip: From leaves the rack, To replaces it
type SwapPair struct {
	From IdLetter `json:"from"`
	To   IdLetter `json:"to"`
}

// Swap is a pending rack update awaiting its reveal animation.
// Pairs are ordered; the index of a pair is its reveal slot
type Swap struct {
	Pairs []SwapPair `json:"pairs"`
	// Vacated holds placed tiles the bag could not replace on refill.
	// They leave the rack on finalize without a successor
	Vacated []IdLetter `json:"vacated,omitempty"`
}

// NewSwap pairs each tile with its replacement by position. Tiles beyond
// the replacement count are vacated
func NewSwap(from, to []IdLetter) Swap {
	var s Swap
	for i, l := range from {
		if i < len(to) {
			s.Pairs = append(s.Pairs, SwapPair{From: l, To: to[i]})
		} else {
			s.Vacated = append(s.Vacated, l)
		}
	}
	return s
}

// Reveals returns how many per-tile reveal signals must be observed
// before the swap may be finalized
func (s Swap) Reveals() int {
	return len(s.Pairs)
}

// Map returns the chosen-tile to replacement mapping keyed by identity
func (s Swap) Map() map[TileID]IdLetter {
	m := make(map[TileID]IdLetter, len(s.Pairs))
	for _, p := range s.Pairs {
		m[p.From.ID] = p.To
	}
	return m
}

// Involves returns true if the tile leaves the rack when the swap lands
func (s Swap) Involves(id TileID) bool {
	if _, ok := s.Map()[id]; ok {
		return true
	}
	return IndexOfTile(s.Vacated, id) >= 0
}

// Apply returns the rack after the swap lands. Mapped tiles are replaced
// in place, vacated tiles removed, everything else is untouched
func (s Swap) Apply(hand PlayerHand) PlayerHand {
	mapping := s.Map()
	letters := make([]IdLetter, 0, len(hand.Letters))
	for _, l := range hand.Letters {
		if !s.Involves(l.ID) {
			letters = append(letters, l)
			continue
		}
		if to, ok := mapping[l.ID]; ok {
			letters = append(letters, to)
		}
	}
	return PlayerHand{ID: hand.ID, Letters: letters}
}
