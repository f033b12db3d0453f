package letters

import (
	"fmt"
	"sort"

	"github.com/mcoot/wordtiles/internal/dependencies/random"
	"github.com/mcoot/wordtiles/internal/locale"
	"github.com/mcoot/wordtiles/internal/model"
)

// Frequency is how many tiles of a letter the bag holds and what each scores
type Frequency struct {
	Points int
	Count  int
}

// FrequencyTable maps a face value to its frequency. The empty string is
// the blank tile
type FrequencyTable map[string]Frequency

// EnglishUS is the standard English distribution, 100 tiles
var EnglishUS = FrequencyTable{
	"": {0, 2},

	"E": {1, 12},
	"A": {1, 9},
	"I": {1, 9},
	"O": {1, 8},
	"N": {1, 6},
	"R": {1, 6},
	"T": {1, 6},
	"L": {1, 4},
	"S": {1, 4},
	"U": {1, 4},

	"D": {2, 4},
	"G": {2, 3},

	"B": {3, 2},
	"C": {3, 2},
	"M": {3, 2},
	"P": {3, 2},

	"F": {4, 2},
	"H": {4, 2},
	"V": {4, 2},
	"W": {4, 2},
	"Y": {4, 2},

	"K": {5, 1},

	"J": {8, 1},
	"X": {8, 1},

	"Q": {10, 1},
	"Z": {10, 1},
}

var tables = map[string]FrequencyTable{
	"en-US": EnglishUS,
}

// Table returns the distribution for a locale
func Table(id string) (FrequencyTable, error) {
	norm, err := locale.Normalize(id)
	if err != nil {
		return nil, err
	}
	t, ok := tables[norm]
	if !ok {
		return nil, fmt.Errorf("%w: no letter distribution for %s", model.ErrUnknownLocale, norm)
	}
	return t, nil
}

// Locales lists the locales that have a distribution
func Locales() []string {
	out := make([]string, 0, len(tables))
	for id := range tables {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// TotalTiles returns the number of tiles the table expands to
func (t FrequencyTable) TotalTiles() int {
	total := 0
	for _, f := range t {
		total += f.Count
	}
	return total
}

// Expand turns the table into individually identified tiles. Values are
// walked in sorted order so IDs are stable for a given table
func (t FrequencyTable) Expand() []model.IdLetter {
	values := make([]string, 0, len(t))
	for v := range t {
		values = append(values, v)
	}
	sort.Strings(values)

	tiles := make([]model.IdLetter, 0, t.TotalTiles())
	next := model.TileID(1)
	for _, v := range values {
		f := t[v]
		for i := 0; i < f.Count; i++ {
			tiles = append(tiles, model.IdLetter{
				ID:     next,
				Letter: model.Letter{Value: v, Points: f.Points},
			})
			next++
		}
	}
	return tiles
}

// NewDispenser expands the table and shuffles it uniformly at random
func NewDispenser(t FrequencyTable, rnd random.Random) model.Dispenser {
	tiles := t.Expand()
	rnd.Shuffle(len(tiles), func(i, j int) {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	})
	return model.NewDispenser(tiles)
}
