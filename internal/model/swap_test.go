package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSwapPairsAndVacates(t *testing.T) {
	from := []IdLetter{letter(1, "A"), letter(2, "B"), letter(3, "C")}
	to := []IdLetter{letter(10, "X")}

	s := NewSwap(from, to)
	assert.Equal(t, 1, s.Reveals())
	assert.Equal(t, []TileID{2, 3}, TileIDs(s.Vacated))
	assert.True(t, s.Involves(1))
	assert.True(t, s.Involves(3))
	assert.False(t, s.Involves(10))
}

func TestSwapApplyReplacesInPlace(t *testing.T) {
	hand := PlayerHand{ID: 1, Letters: []IdLetter{letter(1, "A"), letter(2, "B"), letter(3, "C"), letter(4, "D")}}
	s := NewSwap(
		[]IdLetter{letter(3, "C"), letter(1, "A"), letter(4, "D")},
		[]IdLetter{letter(20, "Y"), letter(21, "Z")},
	)

	got := s.Apply(hand)
	assert.Equal(t, PlayerIndex(1), got.ID)
	assert.Equal(t, []TileID{21, 2, 20}, TileIDs(got.Letters))
	assert.Equal(t, []TileID{1, 2, 3, 4}, TileIDs(hand.Letters))
}

func TestDispenserDrawAndReturn(t *testing.T) {
	d := NewDispenser([]IdLetter{letter(1, "A"), letter(2, "B"), letter(3, "C")})

	drawn, rest := d.Draw(2)
	assert.Equal(t, []TileID{1, 2}, TileIDs(drawn))
	assert.Equal(t, 1, rest.Len())
	assert.Equal(t, 3, d.Len())

	drawn, empty := rest.Draw(5)
	assert.Equal(t, []TileID{3}, TileIDs(drawn))
	assert.Equal(t, 0, empty.Len())

	none, _ := d.Draw(-1)
	assert.Empty(t, none)

	back := rest.Return([]IdLetter{letter(1, "A")})
	assert.Equal(t, []TileID{3, 1}, TileIDs(back.Remaining()))
}

func TestPlayerHandMissing(t *testing.T) {
	hand := PlayerHand{Letters: []IdLetter{letter(1, "A")}}
	assert.Equal(t, RackSize-1, hand.Missing())

	tile, ok := hand.Tile(1)
	assert.True(t, ok)
	assert.Equal(t, "A", tile.Letter.Value)
	_, ok = hand.Tile(2)
	assert.False(t, ok)

	assert.Equal(t, "_#4", IdLetter{ID: 4}.String())
}
