package model

// Dispenser is the bag of undrawn tiles. The front of Remaining is drawn
// next. Values are never mutated; every operation returns a new Dispenser
type Dispenser struct {
	remaining []IdLetter
}

// NewDispenser creates a dispenser holding exactly the given tiles, in order
func NewDispenser(letters []IdLetter) Dispenser {
	copied := make([]IdLetter, len(letters))
	copy(copied, letters)
	return Dispenser{remaining: copied}
}

// Remaining returns a copy of the undrawn tiles in draw order
func (d Dispenser) Remaining() []IdLetter {
	out := make([]IdLetter, len(d.remaining))
	copy(out, d.remaining)
	return out
}

// Len returns the number of undrawn tiles
func (d Dispenser) Len() int {
	return len(d.remaining)
}

// Draw takes up to n tiles from the front. A short bag yields fewer tiles
func (d Dispenser) Draw(n int) ([]IdLetter, Dispenser) {
	if n < 0 {
		n = 0
	}
	if n > len(d.remaining) {
		n = len(d.remaining)
	}
	drawn := make([]IdLetter, n)
	copy(drawn, d.remaining[:n])
	return drawn, NewDispenser(d.remaining[n:])
}

// Return puts tiles back at the end of the bag without reshuffling,
// so they are drawn after everything already in it
func (d Dispenser) Return(tiles []IdLetter) Dispenser {
	out := make([]IdLetter, 0, len(d.remaining)+len(tiles))
	out = append(out, d.remaining...)
	out = append(out, tiles...)
	return Dispenser{remaining: out}
}

func (d Dispenser) MarshalJSON() ([]byte, error) {
	return marshalLetters(d.remaining)
}

func (d *Dispenser) UnmarshalJSON(data []byte) error {
	letters, err := unmarshalLetters(data)
	if err != nil {
		return err
	}
	d.remaining = letters
	return nil
}
