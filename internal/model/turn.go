package model

import "encoding/json"

// Phase names the active TurnState variant
type Phase string

const (
	PhaseIdle             Phase = "idle"              // Waiting for the player to act
	PhasePlacing          Phase = "placing"           // Assembling a word on the board
	PhaseInitializingSwap Phase = "initializing_swap" // Choosing rack tiles to exchange
	PhaseAnimatingSwap    Phase = "animating_swap"    // Waiting for replacement tiles to be revealed
)

// TurnState is the single active player context of a match.
// Exactly one of Idle, Placing, InitializingSwap or AnimatingSwap
type TurnState interface {
	Owner() PlayerIndex
	Phase() Phase
	isTurnState()
}

// Idle means the player may start placing or swapping
type Idle struct {
	Player PlayerIndex
}

// Placing means the player is assembling a word
type Placing struct {
	Player PlayerIndex
	Data   PlacingData
}

// InitializingSwap means the player is choosing tiles to exchange
type InitializingSwap struct {
	Player PlayerIndex
	Choice []IdLetter
}

// AnimatingSwap means the bag has been debited and the rack update is
// waiting for its reveal signals
type AnimatingSwap struct {
	Player PlayerIndex
	Swap   Swap
}

func (s Idle) Owner() PlayerIndex             { return s.Player }
func (s Placing) Owner() PlayerIndex          { return s.Player }
func (s InitializingSwap) Owner() PlayerIndex { return s.Player }
func (s AnimatingSwap) Owner() PlayerIndex    { return s.Player }

func (Idle) Phase() Phase             { return PhaseIdle }
func (Placing) Phase() Phase          { return PhasePlacing }
func (InitializingSwap) Phase() Phase { return PhaseInitializingSwap }
func (AnimatingSwap) Phase() Phase    { return PhaseAnimatingSwap }

func (Idle) isTurnState()             {}
func (Placing) isTurnState()          {}
func (InitializingSwap) isTurnState() {}
func (AnimatingSwap) isTurnState()    {}

type turnStateJSON struct {
	Phase   Phase        `json:"phase"`
	Player  PlayerIndex  `json:"player"`
	Placing *PlacingData `json:"placing,omitempty"`
	Choice  []IdLetter   `json:"choice,omitempty"`
	Swap    *Swap        `json:"swap,omitempty"`
}

// MarshalTurnState encodes a TurnState as a phase-tagged envelope
func MarshalTurnState(s TurnState) ([]byte, error) {
	if s == nil {
		return nil, ErrInvalidSnapshot
	}
	out := turnStateJSON{Phase: s.Phase(), Player: s.Owner()}
	switch v := s.(type) {
	case Placing:
		data := v.Data
		out.Placing = &data
	case InitializingSwap:
		out.Choice = v.Choice
	case AnimatingSwap:
		swap := v.Swap
		out.Swap = &swap
	}
	return json.Marshal(out)
}

// UnmarshalTurnState decodes the envelope written by MarshalTurnState
func UnmarshalTurnState(data []byte) (TurnState, error) {
	var in turnStateJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, err
	}
	switch in.Phase {
	case PhaseIdle:
		return Idle{Player: in.Player}, nil
	case PhasePlacing:
		if in.Placing == nil {
			return nil, ErrInvalidSnapshot
		}
		return Placing{Player: in.Player, Data: *in.Placing}, nil
	case PhaseInitializingSwap:
		return InitializingSwap{Player: in.Player, Choice: in.Choice}, nil
	case PhaseAnimatingSwap:
		if in.Swap == nil {
			return nil, ErrInvalidSnapshot
		}
		return AnimatingSwap{Player: in.Player, Swap: *in.Swap}, nil
	default:
		return nil, ErrInvalidSnapshot
	}
}
