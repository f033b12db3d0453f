package response

import (
	"time"

	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/services/turn"
)

// Point is a board coordinate
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func pointFromModel(p model.Point) Point {
	return Point{X: p.X, Y: p.Y}
}

// Tile is a physical tile
type Tile struct {
	ID     int    `json:"id"`
	Value  string `json:"value"`
	Points int    `json:"points"`
}

// TileFromModel converts a model.IdLetter
func TileFromModel(l model.IdLetter) Tile {
	return Tile{ID: int(l.ID), Value: l.Letter.Value, Points: l.Letter.Points}
}

func tilesFromModel(letters []model.IdLetter) []Tile {
	tiles := make([]Tile, len(letters))
	for i, l := range letters {
		tiles[i] = TileFromModel(l)
	}
	return tiles
}

// Cell is one board square
type Cell struct {
	Kind   string `json:"kind"`
	Value  string `json:"value,omitempty"`
	Points int    `json:"points,omitempty"`
	Bonus  string `json:"bonus,omitempty"`
}

// Board is the grid in row-major order
type Board struct {
	Cols  int    `json:"cols"`
	Rows  int    `json:"rows"`
	Cells []Cell `json:"cells"`
}

// BoardFromModel converts a model.Board
func BoardFromModel(b model.Board) Board {
	cells := make([]Cell, 0, b.Cols()*b.Rows())
	for y := 0; y < b.Rows(); y++ {
		for x := 0; x < b.Cols(); x++ {
			tile, _ := b.TileAt(x, y)
			cell := Cell{Kind: tile.Kind.String()}
			if tile.IsLetter() {
				cell.Value = tile.Letter.Value
				cell.Points = tile.Letter.Points
			}
			if bonus := b.Bonus(x, y); bonus != model.BonusNone {
				cell.Bonus = bonus.Short()
			}
			cells = append(cells, cell)
		}
	}
	return Board{Cols: b.Cols(), Rows: b.Rows(), Cells: cells}
}

// Hand is a player's rack
type Hand struct {
	Player int    `json:"player"`
	Tiles  []Tile `json:"tiles"`
}

// Placing is the word being assembled
type Placing struct {
	Origin    Point   `json:"origin"`
	Direction string  `json:"direction"`
	Placed    []Tile  `json:"placed"`
	Targets   []Point `json:"targets"`
	Cursor    *Point  `json:"cursor,omitempty"`
}

// SwapPair is one rack slot flip, revealed in slot order
type SwapPair struct {
	Slot int  `json:"slot"`
	From Tile `json:"from"`
	To   Tile `json:"to"`
}

// Swap is a rack update waiting for its reveals
type Swap struct {
	Pairs    []SwapPair `json:"pairs"`
	Vacated  []Tile     `json:"vacated,omitempty"`
	Revealed []int      `json:"revealed"`
}

// TurnState is the active player context
type TurnState struct {
	Phase   string   `json:"phase"`
	Player  int      `json:"player"`
	Placing *Placing `json:"placing,omitempty"`
	Choice  []Tile   `json:"choice,omitempty"`
	Swap    *Swap    `json:"swap,omitempty"`
}

// TurnStateFromModel converts a model.TurnState. The board is needed to
// resolve where placed letters land
func TurnStateFromModel(s model.TurnState, board model.Board, revealed []int) TurnState {
	out := TurnState{Phase: string(s.Phase()), Player: int(s.Owner())}
	switch v := s.(type) {
	case model.Placing:
		placing := &Placing{
			Origin:    pointFromModel(v.Data.Origin),
			Direction: v.Data.Direction.String(),
			Placed:    tilesFromModel(v.Data.Placed),
			Targets:   []Point{},
		}
		for _, p := range v.Data.Targets(board) {
			placing.Targets = append(placing.Targets, pointFromModel(p))
		}
		if cursor, ok := v.Data.Cursor(board); ok {
			p := pointFromModel(cursor)
			placing.Cursor = &p
		}
		out.Placing = placing
	case model.InitializingSwap:
		out.Choice = tilesFromModel(v.Choice)
	case model.AnimatingSwap:
		swap := &Swap{
			Pairs:    make([]SwapPair, len(v.Swap.Pairs)),
			Revealed: append([]int{}, revealed...),
		}
		for i, p := range v.Swap.Pairs {
			swap.Pairs[i] = SwapPair{Slot: i, From: TileFromModel(p.From), To: TileFromModel(p.To)}
		}
		if len(v.Swap.Vacated) > 0 {
			swap.Vacated = tilesFromModel(v.Swap.Vacated)
		}
		out.Swap = swap
	}
	return out
}

// Match is the full view of a match
type Match struct {
	ID         string    `json:"id"`
	Locale     string    `json:"locale"`
	TurnSource string    `json:"turn_source"`
	IsLocal    bool      `json:"is_local"`
	Players    int       `json:"players"`
	BagCount   int       `json:"bag_count"`
	Board      Board     `json:"board"`
	Hands      []Hand    `json:"hands"`
	State      TurnState `json:"state"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// MatchFromModel converts a model.Match played through source
func MatchFromModel(m *model.Match, source turn.Source) Match {
	snap := m.Snapshot
	hands := make([]Hand, len(snap.Hands))
	for i, h := range snap.Hands {
		hands[i] = Hand{Player: int(h.ID), Tiles: tilesFromModel(h.Letters)}
	}

	return Match{
		ID:         string(m.ID),
		Locale:     snap.Locale,
		TurnSource: source.Kind(),
		IsLocal:    source.IsLocal(),
		Players:    m.Players,
		BagCount:   snap.Dispenser.Len(),
		Board:      BoardFromModel(snap.Board),
		Hands:      hands,
		State:      TurnStateFromModel(snap.State, snap.Board, m.Revealed),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// Transition is the response to every turn transition. Rejected
// transitions still carry the current match
type Transition struct {
	Accepted bool  `json:"accepted"`
	Match    Match `json:"match"`
}

// MatchSummary is a match listing entry
type MatchSummary struct {
	ID        string    `json:"id"`
	Locale    string    `json:"locale"`
	Phase     string    `json:"phase"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MatchSummaryFromModel converts a model.MatchSummary
func MatchSummaryFromModel(s model.MatchSummary) MatchSummary {
	return MatchSummary{
		ID:        string(s.ID),
		Locale:    s.Locale,
		Phase:     string(s.Phase),
		UpdatedAt: s.UpdatedAt,
	}
}

// MatchList wraps a match listing
type MatchList struct {
	Matches []MatchSummary `json:"matches"`
}

// Word is a dictionary lookup result
type Word struct {
	Locale string `json:"locale"`
	Word   string `json:"word"`
	Folded string `json:"folded"`
	Prefix bool   `json:"prefix"`
	Valid  bool   `json:"valid"`
}
