package model

import "time"

// MatchID uniquely identifies a match. It is owned by the match layer,
// the engine never sees it
type MatchID string

// Match is a persisted game between a fixed set of players
type Match struct {
	ID         MatchID
	TurnSource string // "local" or "remote"
	Players    int
	Snapshot   Snapshot

	// Reveal slots observed for the swap currently animating
	Revealed []int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MatchSummary is a lightweight listing entry
type MatchSummary struct {
	ID        MatchID
	Locale    string
	Phase     Phase
	UpdatedAt time.Time
}
