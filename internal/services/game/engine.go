package game

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/samber/lo"

	"github.com/mcoot/wordtiles/internal/dependencies/random"
	"github.com/mcoot/wordtiles/internal/locale"
	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/services/letters"
)

// Config describes a new match
type Config struct {
	Players int
	Cols    int
	Rows    int
	Locale  string
}

// DefaultConfig returns a two player game on the standard board
func DefaultConfig() Config {
	return Config{
		Players: 2,
		Cols:    model.BoardSize,
		Rows:    model.BoardSize,
		Locale:  locale.Default,
	}
}

// Engine is the turn state machine of one match. It composes the board,
// the dispenser and the players' racks behind a single TurnState.
//
// Transitions that do not apply to the current state or player are silent
// no-ops: each method reports whether it was accepted, never an error.
// All methods are safe for concurrent use; every transition runs under one
// lock because it is a read-modify-write of the whole state
type Engine struct {
	mu     sync.Mutex
	logger *slog.Logger

	locale    string
	board     model.Board
	dispenser model.Dispenser
	hands     []model.PlayerHand
	state     model.TurnState
	total     int
}

// New deals a fresh match: shuffled bag, empty board, full racks, and the
// first player idle
func New(cfg Config, rnd random.Random, logger *slog.Logger) (*Engine, error) {
	if cfg.Players < 1 || cfg.Players > model.MaxPlayers {
		return nil, fmt.Errorf("%w: %d, want 1 to %d", model.ErrInvalidPlayers, cfg.Players, model.MaxPlayers)
	}
	if cfg.Cols <= 0 || cfg.Rows <= 0 {
		return nil, model.ErrInvalidBoardSize
	}

	localeID, err := locale.Normalize(cfg.Locale)
	if err != nil {
		return nil, err
	}
	table, err := letters.Table(localeID)
	if err != nil {
		return nil, err
	}

	dispenser := letters.NewDispenser(table, rnd)
	hands := make([]model.PlayerHand, cfg.Players)
	for i := range hands {
		hands[i], dispenser = refill(model.PlayerHand{ID: model.PlayerIndex(i)}, dispenser)
	}

	return &Engine{
		logger:    logger,
		locale:    localeID,
		board:     model.NewBoard(cfg.Cols, cfg.Rows),
		dispenser: dispenser,
		hands:     hands,
		state:     model.Idle{Player: 0},
		total:     table.TotalTiles(),
	}, nil
}

// Restore rebuilds an engine from an exported snapshot
func Restore(s model.Snapshot, logger *slog.Logger) (*Engine, error) {
	if s.State == nil || len(s.Hands) == 0 {
		return nil, model.ErrInvalidSnapshot
	}
	if owner := int(s.State.Owner()); owner < 0 || owner >= len(s.Hands) {
		return nil, fmt.Errorf("%w: turn owner %d out of range", model.ErrInvalidSnapshot, owner)
	}
	if count := s.TileCount(); count != s.TotalTiles {
		return nil, fmt.Errorf("%w: %d tiles accounted for, want %d", model.ErrInvalidSnapshot, count, s.TotalTiles)
	}

	hands := make([]model.PlayerHand, len(s.Hands))
	for i, h := range s.Hands {
		hands[i] = h.WithLetters(h.Letters)
	}
	return &Engine{
		logger:    logger,
		locale:    s.Locale,
		board:     s.Board,
		dispenser: s.Dispenser,
		hands:     hands,
		state:     s.State,
		total:     s.TotalTiles,
	}, nil
}

func refill(hand model.PlayerHand, dispenser model.Dispenser) (model.PlayerHand, model.Dispenser) {
	drawn, rest := dispenser.Draw(hand.Missing())
	return hand.WithLetters(append(append([]model.IdLetter{}, hand.Letters...), drawn...)), rest
}

// Snapshot exports the full engine state
func (e *Engine) Snapshot() model.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	hands := make([]model.PlayerHand, len(e.hands))
	for i, h := range e.hands {
		hands[i] = h.WithLetters(h.Letters)
	}
	return model.Snapshot{
		Locale:     e.locale,
		Board:      e.board,
		Dispenser:  e.dispenser,
		Hands:      hands,
		State:      e.state,
		TotalTiles: e.total,
	}
}

// State returns the current turn state
func (e *Engine) State() model.TurnState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Board returns the current board
func (e *Engine) Board() model.Board {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.board
}

// Hand returns a player's rack
func (e *Engine) Hand(p model.PlayerIndex) (model.PlayerHand, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.hasPlayer(p) {
		return model.PlayerHand{}, false
	}
	h := e.hands[p]
	return h.WithLetters(h.Letters), true
}

// Players returns the number of seats
func (e *Engine) Players() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.hands)
}

// PendingReveals returns how many per-tile reveal signals the caller must
// observe before FinalizeSwap, or 0 if p has no swap animating
func (e *Engine) PendingReveals(p model.PlayerIndex) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if s, ok := e.state.(model.AnimatingSwap); ok && s.Player == p {
		return s.Swap.Reveals()
	}
	return 0
}

func (e *Engine) hasPlayer(p model.PlayerIndex) bool {
	return p >= 0 && int(p) < len(e.hands)
}

// transition runs fn under the lock and logs the move when accepted
func (e *Engine) transition(op string, p model.PlayerIndex, fn func() bool) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.hasPlayer(p) {
		return false
	}
	from := e.state.Phase()
	if !fn() {
		return false
	}

	e.logger.Debug("turn transition",
		slog.String("op", op),
		slog.Int("player", int(p)),
		slog.String("from", string(from)),
		slog.String("to", string(e.state.Phase())),
		slog.Int("bag", e.dispenser.Len()),
	)
	return true
}

// StartPlacing anchors a new word at point. Re-anchoring at the current
// origin rotates the direction between right and down
func (e *Engine) StartPlacing(p model.PlayerIndex, point model.Point) bool {
	return e.transition("start_placing", p, func() bool {
		if !e.board.InBounds(point) {
			return false
		}
		switch s := e.state.(type) {
		case model.Idle:
			if s.Player != p {
				return false
			}
			e.state = model.Placing{Player: p, Data: model.PlacingData{
				Origin:    point,
				Direction: model.DirectionRight,
			}}
			return true
		case model.Placing:
			if s.Player != p || s.Data.Origin != point {
				return false
			}
			rotated := model.PlacingData{
				Origin:    s.Data.Origin,
				Direction: s.Data.Direction.Rotate(),
				Placed:    s.Data.Placed,
			}
			// The word so far has to fit along the new axis too
			if len(rotated.Targets(e.board)) < len(rotated.Placed) {
				return false
			}
			e.state = model.Placing{Player: p, Data: rotated}
			return true
		}
		return false
	})
}

// TogglePlace adds a rack tile to the end of the word, or takes it back out
func (e *Engine) TogglePlace(p model.PlayerIndex, id model.TileID) bool {
	return e.transition("toggle_place", p, func() bool {
		s, ok := e.state.(model.Placing)
		if !ok || s.Player != p {
			return false
		}
		tile, ok := e.hands[p].Tile(id)
		if !ok {
			return false
		}
		if !s.Data.Contains(id) {
			if len(s.Data.Placed) >= model.RackSize || !s.Data.Fits(e.board) {
				return false
			}
		}
		e.state = model.Placing{Player: p, Data: s.Data.Toggled(tile)}
		return true
	})
}

// CancelPlacing abandons the word without touching the board
func (e *Engine) CancelPlacing(p model.PlayerIndex) bool {
	return e.transition("cancel_placing", p, func() bool {
		s, ok := e.state.(model.Placing)
		if !ok || s.Player != p {
			return false
		}
		e.state = model.Idle{Player: p}
		return true
	})
}

// ApplyPlacing commits the word. Letters are written to the free cells along
// the line, stepping over letters already on the board. One tile per placed
// letter is drawn to refill the rack, and the refill goes through the same
// reveal protocol as a swap
func (e *Engine) ApplyPlacing(p model.PlayerIndex) bool {
	return e.transition("apply_placing", p, func() bool {
		s, ok := e.state.(model.Placing)
		if !ok || s.Player != p || len(s.Data.Placed) == 0 {
			return false
		}
		if len(s.Data.Targets(e.board)) != len(s.Data.Placed) {
			return false
		}

		e.board = s.Data.Preview(e.board)

		drawn, dispenser := e.dispenser.Draw(len(s.Data.Placed))
		e.dispenser = dispenser
		e.state = model.AnimatingSwap{Player: p, Swap: model.NewSwap(s.Data.Placed, drawn)}
		return true
	})
}

// StartSwapping opens tile selection for an exchange
func (e *Engine) StartSwapping(p model.PlayerIndex) bool {
	return e.transition("start_swapping", p, func() bool {
		s, ok := e.state.(model.Idle)
		if !ok || s.Player != p {
			return false
		}
		e.state = model.InitializingSwap{Player: p}
		return true
	})
}

// ToggleSwapChoice selects or deselects a rack tile for exchange
func (e *Engine) ToggleSwapChoice(p model.PlayerIndex, id model.TileID) bool {
	return e.transition("toggle_swap_choice", p, func() bool {
		s, ok := e.state.(model.InitializingSwap)
		if !ok || s.Player != p {
			return false
		}
		tile, ok := e.hands[p].Tile(id)
		if !ok {
			return false
		}

		var choice []model.IdLetter
		if model.IndexOfTile(s.Choice, id) >= 0 {
			choice = lo.Reject(s.Choice, func(l model.IdLetter, _ int) bool { return l.ID == id })
		} else {
			choice = append(append([]model.IdLetter{}, s.Choice...), tile)
		}
		e.state = model.InitializingSwap{Player: p, Choice: choice}
		return true
	})
}

// InvertSwapState selects exactly the rack tiles that are not selected
func (e *Engine) InvertSwapState(p model.PlayerIndex) bool {
	return e.transition("invert_swap", p, func() bool {
		s, ok := e.state.(model.InitializingSwap)
		if !ok || s.Player != p {
			return false
		}
		choice := lo.Filter(e.hands[p].Letters, func(l model.IdLetter, _ int) bool {
			return model.IndexOfTile(s.Choice, l.ID) < 0
		})
		e.state = model.InitializingSwap{Player: p, Choice: choice}
		return true
	})
}

// CancelSwap closes tile selection without exchanging anything
func (e *Engine) CancelSwap(p model.PlayerIndex) bool {
	return e.transition("cancel_swap", p, func() bool {
		s, ok := e.state.(model.InitializingSwap)
		if !ok || s.Player != p {
			return false
		}
		e.state = model.Idle{Player: p}
		return true
	})
}

// StartSwap debits the bag for the chosen tiles. Replacements come off the
// front, chosen tiles go to the back. The rack itself is left alone until
// FinalizeSwap. A short bag exchanges only the first tiles it can cover
func (e *Engine) StartSwap(p model.PlayerIndex) bool {
	return e.transition("start_swap", p, func() bool {
		s, ok := e.state.(model.InitializingSwap)
		if !ok || s.Player != p || len(s.Choice) == 0 {
			return false
		}

		n := min(len(s.Choice), e.dispenser.Len())
		if n == 0 {
			return false
		}
		swapped := s.Choice[:n]

		drawn, dispenser := e.dispenser.Draw(n)
		e.dispenser = dispenser.Return(swapped)
		e.state = model.AnimatingSwap{Player: p, Swap: model.NewSwap(swapped, drawn)}
		return true
	})
}

// FinalizeSwap lands a pending swap or refill on the rack. Callers invoke it
// once every reveal slot has been observed; calling it in any other state
// does nothing, so repeated calls are harmless
func (e *Engine) FinalizeSwap(p model.PlayerIndex) bool {
	return e.transition("finalize_swap", p, func() bool {
		s, ok := e.state.(model.AnimatingSwap)
		if !ok || s.Player != p {
			return false
		}
		e.hands[p] = s.Swap.Apply(e.hands[p])
		e.state = model.Idle{Player: p}
		return true
	})
}

// PassTurn hands an idle turn to the next seat
func (e *Engine) PassTurn(p model.PlayerIndex) bool {
	return e.transition("pass_turn", p, func() bool {
		s, ok := e.state.(model.Idle)
		if !ok || s.Player != p {
			return false
		}
		e.state = model.Idle{Player: model.PlayerIndex((int(p) + 1) % len(e.hands))}
		return true
	})
}
