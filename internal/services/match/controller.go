package match

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mcoot/wordtiles/internal/dependencies/clock"
	"github.com/mcoot/wordtiles/internal/dependencies/random"
	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/services/game"
	"github.com/mcoot/wordtiles/internal/services/turn"
	"github.com/mcoot/wordtiles/internal/storage"
)

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Controller owns match identity and persistence. Every operation loads
// the match snapshot, runs one engine transition and saves the result
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger

	mu    sync.Mutex
	locks map[model.MatchID]*matchLock
}

// matchLock is held in the lock map only while refs > 0
type matchLock struct {
	mu   sync.Mutex
	refs int
}

// NewController creates a new match Controller
func NewController(
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger,
		locks:   make(map[model.MatchID]*matchLock),
	}
}

// CreateParams describes a new match. Zero values take the defaults
type CreateParams struct {
	Players    int
	Locale     string
	TurnSource string
}

// Result reports whether a transition was accepted along with the match
// as it now stands
type Result struct {
	Accepted bool
	Match    *model.Match
}

// lock serialises operations on one match. The entry is dropped once the
// last holder or waiter releases it, whether or not the match exists
func (c *Controller) lock(id model.MatchID) func() {
	c.mu.Lock()
	l, ok := c.locks[id]
	if !ok {
		l = &matchLock{}
		c.locks[id] = l
	}
	l.refs++
	c.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		c.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(c.locks, id)
		}
		c.mu.Unlock()
	}
}

// CreateMatch deals a new match and stores it
func (c *Controller) CreateMatch(ctx context.Context, params CreateParams) (*model.Match, error) {
	source, err := turn.Parse(params.TurnSource)
	if err != nil {
		return nil, err
	}

	cfg := game.DefaultConfig()
	if params.Players != 0 {
		cfg.Players = params.Players
	}
	if params.Locale != "" {
		cfg.Locale = params.Locale
	}

	engine, err := game.New(cfg, c.random, c.logger)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	match := &model.Match{
		ID:         model.MatchID(c.random.String(12, idAlphabet)),
		TurnSource: source.Kind(),
		Players:    cfg.Players,
		Snapshot:   engine.Snapshot(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := c.storage.SaveMatch(ctx, match); err != nil {
		c.logger.Error("failed to save match",
			slog.String("match_id", string(match.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("match created",
		slog.String("match_id", string(match.ID)),
		slog.String("locale", match.Snapshot.Locale),
		slog.String("turn_source", match.TurnSource),
		slog.Int("player_count", match.Players),
	)

	return match, nil
}

// GetMatch retrieves a match by ID
func (c *Controller) GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error) {
	return c.storage.GetMatch(ctx, id)
}

// ListMatches returns a summary of every stored match
func (c *Controller) ListMatches(ctx context.Context) ([]model.MatchSummary, error) {
	return c.storage.ListMatches(ctx)
}

// DeleteMatch removes a match
func (c *Controller) DeleteMatch(ctx context.Context, id model.MatchID) error {
	unlock := c.lock(id)
	defer unlock()

	if _, err := c.storage.GetMatch(ctx, id); err != nil {
		return err
	}
	if err := c.storage.DeleteMatch(ctx, id); err != nil {
		return err
	}

	c.logger.Info("match deleted", slog.String("match_id", string(id)))
	return nil
}

// TurnSource returns the capability the match was created with. A stored
// kind that no longer parses is treated as local
func (c *Controller) TurnSource(match *model.Match) turn.Source {
	source, err := turn.Parse(match.TurnSource)
	if err != nil {
		c.logger.Warn("unknown turn source",
			slog.String("match_id", string(match.ID)),
			slog.String("turn_source", match.TurnSource),
		)
		return turn.Local{}
	}
	return source
}

// apply runs one engine transition against the stored match. Rejected
// transitions leave storage untouched
func (c *Controller) apply(
	ctx context.Context,
	id model.MatchID,
	player model.PlayerIndex,
	fn func(*game.Engine, *model.Match) bool,
) (*Result, error) {
	unlock := c.lock(id)
	defer unlock()

	match, err := c.storage.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}
	if player < 0 || int(player) >= match.Players {
		return nil, model.ErrPlayerNotFound
	}

	engine, err := game.Restore(match.Snapshot, c.logger)
	if err != nil {
		c.logger.Error("failed to restore match",
			slog.String("match_id", string(id)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	if !fn(engine, match) {
		return &Result{Accepted: false, Match: match}, nil
	}

	// A refill the bag could not cover at all has nothing to reveal
	if engine.State().Phase() == model.PhaseAnimatingSwap && engine.PendingReveals(player) == 0 {
		engine.FinalizeSwap(player)
		match.Revealed = nil
	}

	match.Snapshot = engine.Snapshot()
	match.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveMatch(ctx, match); err != nil {
		c.logger.Error("failed to save match",
			slog.String("match_id", string(id)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	return &Result{Accepted: true, Match: match}, nil
}

// transition wraps an engine call that starts or ends an animation context,
// so any reveals recorded for an earlier swap no longer apply
func (c *Controller) transition(
	ctx context.Context,
	id model.MatchID,
	player model.PlayerIndex,
	fn func(*game.Engine) bool,
) (*Result, error) {
	return c.apply(ctx, id, player, func(e *game.Engine, m *model.Match) bool {
		if !fn(e) {
			return false
		}
		m.Revealed = nil
		return true
	})
}

// StartPlacing anchors a word, or rotates it when point is the current origin
func (c *Controller) StartPlacing(ctx context.Context, id model.MatchID, player model.PlayerIndex, point model.Point) (*Result, error) {
	return c.transition(ctx, id, player, func(e *game.Engine) bool {
		return e.StartPlacing(player, point)
	})
}

// TogglePlace adds or removes a rack tile from the word being placed
func (c *Controller) TogglePlace(ctx context.Context, id model.MatchID, player model.PlayerIndex, tile model.TileID) (*Result, error) {
	return c.transition(ctx, id, player, func(e *game.Engine) bool {
		return e.TogglePlace(player, tile)
	})
}

// ApplyPlacing commits the word and starts the refill reveal
func (c *Controller) ApplyPlacing(ctx context.Context, id model.MatchID, player model.PlayerIndex) (*Result, error) {
	return c.transition(ctx, id, player, func(e *game.Engine) bool {
		return e.ApplyPlacing(player)
	})
}

// CancelPlacing abandons the word being placed
func (c *Controller) CancelPlacing(ctx context.Context, id model.MatchID, player model.PlayerIndex) (*Result, error) {
	return c.transition(ctx, id, player, func(e *game.Engine) bool {
		return e.CancelPlacing(player)
	})
}

// StartSwapping opens swap selection
func (c *Controller) StartSwapping(ctx context.Context, id model.MatchID, player model.PlayerIndex) (*Result, error) {
	return c.transition(ctx, id, player, func(e *game.Engine) bool {
		return e.StartSwapping(player)
	})
}

// ToggleSwapChoice selects or deselects a tile for exchange
func (c *Controller) ToggleSwapChoice(ctx context.Context, id model.MatchID, player model.PlayerIndex, tile model.TileID) (*Result, error) {
	return c.transition(ctx, id, player, func(e *game.Engine) bool {
		return e.ToggleSwapChoice(player, tile)
	})
}

// InvertSwap flips the swap selection
func (c *Controller) InvertSwap(ctx context.Context, id model.MatchID, player model.PlayerIndex) (*Result, error) {
	return c.transition(ctx, id, player, func(e *game.Engine) bool {
		return e.InvertSwapState(player)
	})
}

// CancelSwap closes swap selection
func (c *Controller) CancelSwap(ctx context.Context, id model.MatchID, player model.PlayerIndex) (*Result, error) {
	return c.transition(ctx, id, player, func(e *game.Engine) bool {
		return e.CancelSwap(player)
	})
}

// StartSwap exchanges the selected tiles with the bag
func (c *Controller) StartSwap(ctx context.Context, id model.MatchID, player model.PlayerIndex) (*Result, error) {
	return c.transition(ctx, id, player, func(e *game.Engine) bool {
		return e.StartSwap(player)
	})
}

// PassTurn hands the turn to the next player
func (c *Controller) PassTurn(ctx context.Context, id model.MatchID, player model.PlayerIndex) (*Result, error) {
	return c.transition(ctx, id, player, func(e *game.Engine) bool {
		return e.PassTurn(player)
	})
}

// Reveal records that one replacement tile has been shown. The swap lands
// once every slot has been revealed; duplicate and stray slots are rejected
func (c *Controller) Reveal(ctx context.Context, id model.MatchID, player model.PlayerIndex, slot int) (*Result, error) {
	return c.apply(ctx, id, player, func(e *game.Engine, m *model.Match) bool {
		pending := e.PendingReveals(player)
		if pending == 0 {
			return false
		}

		barrier := game.NewRevealBarrier(pending, m.Revealed...)
		if !barrier.Mark(slot) {
			return false
		}
		if !barrier.Complete() {
			m.Revealed = barrier.Revealed()
			return true
		}

		if !e.FinalizeSwap(player) {
			return false
		}
		m.Revealed = nil
		c.logger.Info("swap finalized",
			slog.String("match_id", string(m.ID)),
			slog.Int("player", int(player)),
			slog.Int("reveals", pending),
		)
		return true
	})
}
