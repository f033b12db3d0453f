package game

import (
	"encoding/binary"
	"encoding/json"
	"sync"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
	"lukechampine.com/frand"

	"github.com/mcoot/wordtiles/internal/dependencies/mocks"
	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/testutil"
)

// With the identity shuffle the bag is dealt in sorted value order:
// two blanks (1-2), nine A (3-11), two B (12-13), two C (14-15), four D (16-19).
// Player 0 holds 1-7, player 1 holds 8-14, and C#15 is next out of the bag.

type EngineSuite struct {
	suite.Suite
	random *mocks.MockRandom
	engine *Engine
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	engine, err := New(DefaultConfig(), s.random, testutil.NopLogger())
	s.Require().NoError(err)
	s.engine = engine
}

func (s *EngineSuite) hand(p model.PlayerIndex) []model.TileID {
	h, ok := s.engine.Hand(p)
	s.Require().True(ok)
	return model.TileIDs(h.Letters)
}

func (s *EngineSuite) assertConserved() {
	snap := s.engine.Snapshot()
	s.Equal(snap.TotalTiles, snap.TileCount())
}

func (s *EngineSuite) assertNoops(ops map[string]func() bool) {
	for name, op := range ops {
		before := s.engine.Snapshot()
		s.False(op(), name)
		s.Equal(before, s.engine.Snapshot(), name)
	}
}

func restoreSmall(hand, bag []model.IdLetter) (*Engine, error) {
	return Restore(model.Snapshot{
		Locale:     "en-US",
		Board:      model.NewStandardBoard(),
		Dispenser:  model.NewDispenser(bag),
		Hands:      []model.PlayerHand{{ID: 0, Letters: hand}},
		State:      model.Idle{Player: 0},
		TotalTiles: len(hand) + len(bag),
	}, testutil.NopLogger())
}

// New tests

func (s *EngineSuite) TestNewDealsFullRacks() {
	s.Equal(1, s.random.ShuffleCalls)
	s.Equal(2, s.engine.Players())
	s.Equal([]model.TileID{1, 2, 3, 4, 5, 6, 7}, s.hand(0))
	s.Equal([]model.TileID{8, 9, 10, 11, 12, 13, 14}, s.hand(1))
	s.Equal(model.Idle{Player: 0}, s.engine.State())

	snap := s.engine.Snapshot()
	s.Equal(86, snap.Dispenser.Len())
	s.Equal(100, snap.TotalTiles)
	s.Equal("en-US", snap.Locale)
	s.Equal(0, snap.Board.LetterCount())
	s.assertConserved()
}

func (s *EngineSuite) TestNewNormalizesLocale() {
	cfg := DefaultConfig()
	cfg.Locale = "en_US"

	engine, err := New(cfg, s.random, testutil.NopLogger())
	s.Require().NoError(err)
	s.Equal("en-US", engine.Snapshot().Locale)
}

func (s *EngineSuite) TestNewRejectsBadConfig() {
	cfg := DefaultConfig()
	cfg.Players = 0
	_, err := New(cfg, s.random, testutil.NopLogger())
	s.ErrorIs(err, model.ErrInvalidPlayers)

	cfg.Players = model.MaxPlayers + 1
	_, err = New(cfg, s.random, testutil.NopLogger())
	s.ErrorIs(err, model.ErrInvalidPlayers)

	cfg.Players = model.MaxPlayers
	_, err = New(cfg, s.random, testutil.NopLogger())
	s.NoError(err)

	cfg = DefaultConfig()
	cfg.Cols = 0
	_, err = New(cfg, s.random, testutil.NopLogger())
	s.ErrorIs(err, model.ErrInvalidBoardSize)

	cfg = DefaultConfig()
	cfg.Locale = "fr-FR"
	_, err = New(cfg, s.random, testutil.NopLogger())
	s.ErrorIs(err, model.ErrUnknownLocale)
}

// Placing tests

func (s *EngineSuite) TestStartPlacingFromIdle() {
	s.True(s.engine.StartPlacing(0, model.Point{X: 7, Y: 7}))

	s.Equal(model.Placing{Player: 0, Data: model.PlacingData{
		Origin:    model.Point{X: 7, Y: 7},
		Direction: model.DirectionRight,
	}}, s.engine.State())
}

func (s *EngineSuite) TestStartPlacingRejectsOtherPlayerAndOffBoard() {
	s.assertNoops(map[string]func() bool{
		"other player": func() bool { return s.engine.StartPlacing(1, model.Point{X: 7, Y: 7}) },
		"off board":    func() bool { return s.engine.StartPlacing(0, model.Point{X: 15, Y: 0}) },
		"negative":     func() bool { return s.engine.StartPlacing(0, model.Point{X: -1, Y: 3}) },
		"no seat":      func() bool { return s.engine.StartPlacing(5, model.Point{X: 7, Y: 7}) },
	})
}

func (s *EngineSuite) TestStartPlacingAtOriginRotates() {
	origin := model.Point{X: 7, Y: 7}
	s.Require().True(s.engine.StartPlacing(0, origin))
	s.Require().True(s.engine.TogglePlace(0, 3))

	s.True(s.engine.StartPlacing(0, origin))
	state := s.engine.State().(model.Placing)
	s.Equal(model.DirectionDown, state.Data.Direction)
	s.Equal([]model.TileID{3}, model.TileIDs(state.Data.Placed))

	s.True(s.engine.StartPlacing(0, origin))
	s.Equal(model.DirectionRight, s.engine.State().(model.Placing).Data.Direction)
}

func (s *EngineSuite) TestStartPlacingElsewhereWhilePlacingIsNoop() {
	s.Require().True(s.engine.StartPlacing(0, model.Point{X: 7, Y: 7}))

	s.assertNoops(map[string]func() bool{
		"other point": func() bool { return s.engine.StartPlacing(0, model.Point{X: 3, Y: 3}) },
	})
}

func (s *EngineSuite) TestRotateRefusedWhenWordWouldRunOffBoard() {
	origin := model.Point{X: 0, Y: 14}
	s.Require().True(s.engine.StartPlacing(0, origin))
	s.Require().True(s.engine.TogglePlace(0, 3))
	s.Require().True(s.engine.TogglePlace(0, 4))

	s.assertNoops(map[string]func() bool{
		"rotate": func() bool { return s.engine.StartPlacing(0, origin) },
	})
}

func (s *EngineSuite) TestTogglePlaceAddsAndRemovesInOrder() {
	s.Require().True(s.engine.StartPlacing(0, model.Point{X: 7, Y: 7}))

	s.True(s.engine.TogglePlace(0, 5))
	s.True(s.engine.TogglePlace(0, 3))
	s.True(s.engine.TogglePlace(0, 6))
	s.True(s.engine.TogglePlace(0, 3))

	state := s.engine.State().(model.Placing)
	s.Equal([]model.TileID{5, 6}, model.TileIDs(state.Data.Placed))
	// The rack is untouched while placing
	s.Equal([]model.TileID{1, 2, 3, 4, 5, 6, 7}, s.hand(0))
}

func (s *EngineSuite) TestTogglePlaceRejectsForeignTiles() {
	s.Require().True(s.engine.StartPlacing(0, model.Point{X: 7, Y: 7}))

	s.assertNoops(map[string]func() bool{
		"opponent tile": func() bool { return s.engine.TogglePlace(0, 8) },
		"bag tile":      func() bool { return s.engine.TogglePlace(0, 15) },
		"other player":  func() bool { return s.engine.TogglePlace(1, 8) },
	})
}

func (s *EngineSuite) TestTogglePlaceStopsAtBoardEdge() {
	s.Require().True(s.engine.StartPlacing(0, model.Point{X: 13, Y: 0}))
	s.Require().True(s.engine.TogglePlace(0, 3))
	s.Require().True(s.engine.TogglePlace(0, 4))

	s.assertNoops(map[string]func() bool{
		"third letter": func() bool { return s.engine.TogglePlace(0, 5) },
	})

	// Removing still works at the edge
	s.True(s.engine.TogglePlace(0, 4))
}

func (s *EngineSuite) TestCancelPlacingLeavesBoardUntouched() {
	s.Require().True(s.engine.StartPlacing(0, model.Point{X: 7, Y: 7}))
	s.Require().True(s.engine.TogglePlace(0, 3))

	s.True(s.engine.CancelPlacing(0))
	s.Equal(model.Idle{Player: 0}, s.engine.State())
	s.Equal(0, s.engine.Board().LetterCount())
	s.Equal([]model.TileID{1, 2, 3, 4, 5, 6, 7}, s.hand(0))
}

func (s *EngineSuite) TestApplyPlacingWritesBoardAndRefills() {
	s.Require().True(s.engine.StartPlacing(0, model.Point{X: 7, Y: 7}))
	s.Require().True(s.engine.TogglePlace(0, 3))
	s.Require().True(s.engine.TogglePlace(0, 4))

	s.True(s.engine.ApplyPlacing(0))

	board := s.engine.Board()
	cell, _ := board.TileAt(7, 7)
	s.Equal(model.LetterCell(model.Letter{Value: "A", Points: 1}), cell)
	cell, _ = board.TileAt(8, 7)
	s.True(cell.IsLetter())
	s.Equal(2, board.LetterCount())

	state, ok := s.engine.State().(model.AnimatingSwap)
	s.Require().True(ok)
	s.Equal(model.PlayerIndex(0), state.Player)
	s.Equal(2, s.engine.PendingReveals(0))
	s.Equal(0, s.engine.PendingReveals(1))
	s.Equal(model.TileID(15), state.Swap.Pairs[0].To.ID)
	s.Equal(model.TileID(16), state.Swap.Pairs[1].To.ID)
	s.Empty(state.Swap.Vacated)

	// Rack still shows the placed tiles until the swap lands
	s.Equal([]model.TileID{1, 2, 3, 4, 5, 6, 7}, s.hand(0))
	s.Equal(84, s.engine.Snapshot().Dispenser.Len())
	s.assertConserved()

	s.True(s.engine.FinalizeSwap(0))
	s.Equal(model.Idle{Player: 0}, s.engine.State())
	s.Equal([]model.TileID{1, 2, 15, 16, 5, 6, 7}, s.hand(0))
	s.assertConserved()
}

func (s *EngineSuite) TestApplyPlacingSkipsOccupiedCells() {
	s.Require().True(s.engine.StartPlacing(0, model.Point{X: 7, Y: 7}))
	s.Require().True(s.engine.TogglePlace(0, 3))
	s.Require().True(s.engine.TogglePlace(0, 4))
	s.Require().True(s.engine.ApplyPlacing(0))
	s.Require().True(s.engine.FinalizeSwap(0))

	s.Require().True(s.engine.StartPlacing(0, model.Point{X: 6, Y: 7}))
	s.Require().True(s.engine.TogglePlace(0, 5))
	s.Require().True(s.engine.TogglePlace(0, 6))
	s.Require().True(s.engine.ApplyPlacing(0))

	board := s.engine.Board()
	s.Equal(4, board.LetterCount())
	for _, x := range []int{6, 7, 8, 9} {
		cell, _ := board.TileAt(x, 7)
		s.True(cell.IsLetter(), "x=%d", x)
	}
	s.assertConserved()
}

func (s *EngineSuite) TestApplyPlacingWithoutLettersIsNoop() {
	s.Require().True(s.engine.StartPlacing(0, model.Point{X: 7, Y: 7}))

	s.assertNoops(map[string]func() bool{
		"empty word": func() bool { return s.engine.ApplyPlacing(0) },
	})
}

func (s *EngineSuite) TestApplyPlacingUnderflowVacatesTiles() {
	engine, err := restoreSmall(testutil.Tiles(1, "A", "B", "C"), testutil.Tiles(4, "D"))
	s.Require().NoError(err)

	s.Require().True(engine.StartPlacing(0, model.Point{X: 7, Y: 7}))
	s.Require().True(engine.TogglePlace(0, 1))
	s.Require().True(engine.TogglePlace(0, 2))
	s.Require().True(engine.ApplyPlacing(0))

	state := engine.State().(model.AnimatingSwap)
	s.Len(state.Swap.Pairs, 1)
	s.Equal([]model.TileID{2}, model.TileIDs(state.Swap.Vacated))
	s.Equal(1, engine.PendingReveals(0))

	snap := engine.Snapshot()
	s.Equal(0, snap.Dispenser.Len())
	s.Equal(snap.TotalTiles, snap.TileCount())

	s.Require().True(engine.FinalizeSwap(0))
	hand, _ := engine.Hand(0)
	s.Equal([]model.TileID{4, 3}, model.TileIDs(hand.Letters))
}

// Swap tests

func (s *EngineSuite) TestSwapSelection() {
	s.True(s.engine.StartSwapping(0))
	s.Equal(model.InitializingSwap{Player: 0}, s.engine.State())

	s.True(s.engine.ToggleSwapChoice(0, 2))
	s.True(s.engine.ToggleSwapChoice(0, 1))
	s.Equal([]model.TileID{2, 1}, model.TileIDs(s.engine.State().(model.InitializingSwap).Choice))

	s.True(s.engine.ToggleSwapChoice(0, 2))
	s.Equal([]model.TileID{1}, model.TileIDs(s.engine.State().(model.InitializingSwap).Choice))

	s.assertNoops(map[string]func() bool{
		"foreign tile": func() bool { return s.engine.ToggleSwapChoice(0, 9) },
		"other player": func() bool { return s.engine.ToggleSwapChoice(1, 9) },
	})
}

func (s *EngineSuite) TestInvertSwapStateFollowsRackOrder() {
	s.Require().True(s.engine.StartSwapping(0))
	s.Require().True(s.engine.ToggleSwapChoice(0, 4))
	s.Require().True(s.engine.ToggleSwapChoice(0, 1))

	s.True(s.engine.InvertSwapState(0))
	s.Equal([]model.TileID{2, 3, 5, 6, 7}, model.TileIDs(s.engine.State().(model.InitializingSwap).Choice))

	s.True(s.engine.InvertSwapState(0))
	s.Equal([]model.TileID{1, 4}, model.TileIDs(s.engine.State().(model.InitializingSwap).Choice))
}

func (s *EngineSuite) TestCancelSwap() {
	s.Require().True(s.engine.StartSwapping(0))
	s.Require().True(s.engine.ToggleSwapChoice(0, 1))

	s.True(s.engine.CancelSwap(0))
	s.Equal(model.Idle{Player: 0}, s.engine.State())
	s.Equal(86, s.engine.Snapshot().Dispenser.Len())
}

func (s *EngineSuite) TestSwapRoundTrip() {
	s.Require().True(s.engine.StartSwapping(0))
	s.Require().True(s.engine.ToggleSwapChoice(0, 1))
	s.Require().True(s.engine.ToggleSwapChoice(0, 2))

	s.True(s.engine.StartSwap(0))

	state := s.engine.State().(model.AnimatingSwap)
	s.Equal(2, state.Swap.Reveals())
	s.Equal(map[model.TileID]model.IdLetter{
		1: state.Swap.Pairs[0].To,
		2: state.Swap.Pairs[1].To,
	}, state.Swap.Map())

	bag := s.engine.Snapshot().Dispenser.Remaining()
	s.Len(bag, 86)
	s.Equal(model.TileID(17), bag[0].ID)
	s.Equal([]model.TileID{1, 2}, model.TileIDs(bag[len(bag)-2:]))
	s.Equal([]model.TileID{1, 2, 3, 4, 5, 6, 7}, s.hand(0))
	s.assertConserved()

	s.True(s.engine.FinalizeSwap(0))
	s.Equal([]model.TileID{15, 16, 3, 4, 5, 6, 7}, s.hand(0))
	s.Equal(model.Idle{Player: 0}, s.engine.State())
	s.assertConserved()
}

func (s *EngineSuite) TestStartSwapWithoutChoiceIsNoop() {
	s.Require().True(s.engine.StartSwapping(0))

	s.assertNoops(map[string]func() bool{
		"empty choice": func() bool { return s.engine.StartSwap(0) },
	})
}

func (s *EngineSuite) TestStartSwapUnderflowExchangesWhatTheBagCovers() {
	engine, err := restoreSmall(testutil.Tiles(1, "A", "B", "C"), testutil.Tiles(4, "D"))
	s.Require().NoError(err)

	s.Require().True(engine.StartSwapping(0))
	s.Require().True(engine.ToggleSwapChoice(0, 3))
	s.Require().True(engine.ToggleSwapChoice(0, 1))
	s.Require().True(engine.StartSwap(0))

	state := engine.State().(model.AnimatingSwap)
	s.Equal(1, state.Swap.Reveals())
	s.Equal(model.TileID(3), state.Swap.Pairs[0].From.ID)
	s.Equal([]model.TileID{3}, model.TileIDs(engine.Snapshot().Dispenser.Remaining()))

	s.Require().True(engine.FinalizeSwap(0))
	hand, _ := engine.Hand(0)
	s.Equal([]model.TileID{1, 2, 4}, model.TileIDs(hand.Letters))
}

func (s *EngineSuite) TestStartSwapWithEmptyBagIsNoop() {
	engine, err := restoreSmall(testutil.Tiles(1, "A", "B"), nil)
	s.Require().NoError(err)
	s.Require().True(engine.StartSwapping(0))
	s.Require().True(engine.ToggleSwapChoice(0, 1))

	s.False(engine.StartSwap(0))
	s.Equal(model.PhaseInitializingSwap, engine.State().Phase())
}

func (s *EngineSuite) TestFinalizeSwapIsIdempotent() {
	s.Require().True(s.engine.StartSwapping(0))
	s.Require().True(s.engine.ToggleSwapChoice(0, 1))
	s.Require().True(s.engine.StartSwap(0))

	s.True(s.engine.FinalizeSwap(0))
	s.assertNoops(map[string]func() bool{
		"second finalize": func() bool { return s.engine.FinalizeSwap(0) },
	})
}

// Pass tests

func (s *EngineSuite) TestPassTurnRotatesSeats() {
	s.True(s.engine.PassTurn(0))
	s.Equal(model.Idle{Player: 1}, s.engine.State())

	s.assertNoops(map[string]func() bool{
		"not owner": func() bool { return s.engine.PassTurn(0) },
	})

	s.True(s.engine.PassTurn(1))
	s.Equal(model.Idle{Player: 0}, s.engine.State())
}

// Transition table

func (s *EngineSuite) TestIllegalTransitionsFromIdle() {
	s.assertNoops(map[string]func() bool{
		"toggle place":   func() bool { return s.engine.TogglePlace(0, 1) },
		"cancel placing": func() bool { return s.engine.CancelPlacing(0) },
		"apply placing":  func() bool { return s.engine.ApplyPlacing(0) },
		"toggle swap":    func() bool { return s.engine.ToggleSwapChoice(0, 1) },
		"invert swap":    func() bool { return s.engine.InvertSwapState(0) },
		"cancel swap":    func() bool { return s.engine.CancelSwap(0) },
		"start swap":     func() bool { return s.engine.StartSwap(0) },
		"finalize swap":  func() bool { return s.engine.FinalizeSwap(0) },
	})
}

func (s *EngineSuite) TestIllegalTransitionsFromPlacing() {
	s.Require().True(s.engine.StartPlacing(0, model.Point{X: 7, Y: 7}))
	s.Require().True(s.engine.TogglePlace(0, 1))

	s.assertNoops(map[string]func() bool{
		"start swapping": func() bool { return s.engine.StartSwapping(0) },
		"toggle swap":    func() bool { return s.engine.ToggleSwapChoice(0, 1) },
		"invert swap":    func() bool { return s.engine.InvertSwapState(0) },
		"cancel swap":    func() bool { return s.engine.CancelSwap(0) },
		"start swap":     func() bool { return s.engine.StartSwap(0) },
		"finalize swap":  func() bool { return s.engine.FinalizeSwap(0) },
		"pass":           func() bool { return s.engine.PassTurn(0) },
		"other cancel":   func() bool { return s.engine.CancelPlacing(1) },
	})
}

func (s *EngineSuite) TestIllegalTransitionsFromInitializingSwap() {
	s.Require().True(s.engine.StartSwapping(0))
	s.Require().True(s.engine.ToggleSwapChoice(0, 1))

	s.assertNoops(map[string]func() bool{
		"start placing":  func() bool { return s.engine.StartPlacing(0, model.Point{X: 7, Y: 7}) },
		"toggle place":   func() bool { return s.engine.TogglePlace(0, 1) },
		"cancel placing": func() bool { return s.engine.CancelPlacing(0) },
		"apply placing":  func() bool { return s.engine.ApplyPlacing(0) },
		"start swapping": func() bool { return s.engine.StartSwapping(0) },
		"finalize swap":  func() bool { return s.engine.FinalizeSwap(0) },
		"pass":           func() bool { return s.engine.PassTurn(0) },
	})
}

func (s *EngineSuite) TestIllegalTransitionsFromAnimatingSwap() {
	s.Require().True(s.engine.StartSwapping(0))
	s.Require().True(s.engine.ToggleSwapChoice(0, 1))
	s.Require().True(s.engine.StartSwap(0))

	s.assertNoops(map[string]func() bool{
		"start placing":  func() bool { return s.engine.StartPlacing(0, model.Point{X: 7, Y: 7}) },
		"toggle place":   func() bool { return s.engine.TogglePlace(0, 2) },
		"apply placing":  func() bool { return s.engine.ApplyPlacing(0) },
		"start swapping": func() bool { return s.engine.StartSwapping(0) },
		"toggle swap":    func() bool { return s.engine.ToggleSwapChoice(0, 2) },
		"invert swap":    func() bool { return s.engine.InvertSwapState(0) },
		"cancel swap":    func() bool { return s.engine.CancelSwap(0) },
		"start swap":     func() bool { return s.engine.StartSwap(0) },
		"pass":           func() bool { return s.engine.PassTurn(0) },
		"other finalize": func() bool { return s.engine.FinalizeSwap(1) },
	})
}

// Snapshot tests

func (s *EngineSuite) TestSnapshotRoundTripMidSwap() {
	s.Require().True(s.engine.StartPlacing(0, model.Point{X: 7, Y: 7}))
	s.Require().True(s.engine.TogglePlace(0, 3))
	s.Require().True(s.engine.ApplyPlacing(0))

	data, err := json.Marshal(s.engine.Snapshot())
	s.Require().NoError(err)

	var snap model.Snapshot
	s.Require().NoError(json.Unmarshal(data, &snap))

	restored, err := Restore(snap, testutil.NopLogger())
	s.Require().NoError(err)
	s.Equal(s.engine.State(), restored.State())
	s.Equal(1, restored.PendingReveals(0))

	s.Require().True(s.engine.FinalizeSwap(0))
	s.Require().True(restored.FinalizeSwap(0))
	original, _ := s.engine.Hand(0)
	other, _ := restored.Hand(0)
	s.Equal(original, other)
	s.Equal(s.engine.Board().Cells(), restored.Board().Cells())
}

func (s *EngineSuite) TestRestoreRejectsInconsistentSnapshots() {
	good := s.engine.Snapshot()

	missing := good
	missing.TotalTiles = 99
	_, err := Restore(missing, testutil.NopLogger())
	s.ErrorIs(err, model.ErrInvalidSnapshot)

	noState := good
	noState.State = nil
	_, err = Restore(noState, testutil.NopLogger())
	s.ErrorIs(err, model.ErrInvalidSnapshot)

	badOwner := good
	badOwner.State = model.Idle{Player: 4}
	_, err = Restore(badOwner, testutil.NopLogger())
	s.ErrorIs(err, model.ErrInvalidSnapshot)
}

func (s *EngineSuite) TestConcurrentTransitionsKeepTilesConserved() {
	s.Require().True(s.engine.StartPlacing(0, model.Point{X: 0, Y: 0}))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id model.TileID) {
			defer wg.Done()
			s.engine.TogglePlace(0, id)
			_ = s.engine.Snapshot()
		}(model.TileID(i%7 + 1))
	}
	wg.Wait()

	s.assertConserved()
	s.Equal(model.PhasePlacing, s.engine.State().Phase())
}

// seededRandom replays the same shuffles and choices for a given seed
type seededRandom struct {
	*frand.RNG
}

func newSeededRandom(seed uint64) seededRandom {
	key := make([]byte, 32)
	binary.LittleEndian.PutUint64(key, seed)
	return seededRandom{frand.NewCustom(key, 1024, 12)}
}

func (r seededRandom) String(length int, alphabet string) string {
	out := make([]byte, length)
	for i := range out {
		out[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(out)
}

func (s *EngineSuite) TestRandomOperationsConserveTiles() {
	for seed := uint64(1); seed <= 50; seed++ {
		rng := newSeededRandom(seed)
		engine, err := New(DefaultConfig(), rng, testutil.NopLogger())
		s.Require().NoError(err)

		for step := 0; step < 400; step++ {
			p := engine.State().Owner()
			if rng.Intn(10) == 0 {
				p = model.PlayerIndex(rng.Intn(engine.Players()))
			}

			id := model.TileID(rng.Intn(engine.Snapshot().TotalTiles) + 1)
			if hand, ok := engine.Hand(p); ok && len(hand.Letters) > 0 && rng.Intn(4) != 0 {
				id = hand.Letters[rng.Intn(len(hand.Letters))].ID
			}

			point := model.Point{X: rng.Intn(model.BoardSize), Y: rng.Intn(model.BoardSize)}
			if placing, ok := engine.State().(model.Placing); ok && rng.Intn(3) == 0 {
				point = placing.Data.Origin
			}

			switch rng.Intn(11) {
			case 0:
				engine.StartPlacing(p, point)
			case 1, 2:
				engine.TogglePlace(p, id)
			case 3:
				engine.ApplyPlacing(p)
			case 4:
				engine.CancelPlacing(p)
			case 5:
				engine.StartSwapping(p)
			case 6:
				engine.ToggleSwapChoice(p, id)
			case 7:
				engine.InvertSwapState(p)
			case 8:
				engine.StartSwap(p)
			case 9:
				engine.FinalizeSwap(p)
			case 10:
				engine.PassTurn(p)
			}

			snap := engine.Snapshot()
			s.Require().Equal(snap.TotalTiles, snap.TileCount(), "seed %d step %d", seed, step)

			ids := model.TileIDs(snap.Dispenser.Remaining())
			for _, h := range snap.SettledHands() {
				ids = append(ids, model.TileIDs(h.Letters)...)
			}
			s.Require().Len(lo.Uniq(ids), len(ids), "seed %d step %d", seed, step)
		}
	}
}
