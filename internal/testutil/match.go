package testutil

import (
	"time"

	"github.com/mcoot/wordtiles/internal/model"
)

// MatchTime is the fixed creation time of SampleMatch
var MatchTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// Tiles builds a run of single-point tiles with sequential IDs from first
func Tiles(first model.TileID, values ...string) []model.IdLetter {
	tiles := make([]model.IdLetter, len(values))
	for i, v := range values {
		tiles[i] = model.IdLetter{ID: first + model.TileID(i), Letter: model.Letter{Value: v, Points: 1}}
	}
	return tiles
}

// SampleMatch returns a small consistent match: one idle player holding
// three tiles and two tiles left in the bag
func SampleMatch(id model.MatchID) *model.Match {
	return &model.Match{
		ID:         id,
		TurnSource: "local",
		Players:    1,
		Snapshot: model.Snapshot{
			Locale:     "en-US",
			Board:      model.NewStandardBoard(),
			Dispenser:  model.NewDispenser(Tiles(4, "D", "E")),
			Hands:      []model.PlayerHand{{ID: 0, Letters: Tiles(1, "A", "B", "C")}},
			State:      model.Idle{Player: 0},
			TotalTiles: 5,
		},
		CreatedAt: MatchTime,
		UpdatedAt: MatchTime,
	}
}
