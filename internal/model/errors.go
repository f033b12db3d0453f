package model

import "errors"

// Common errors used across the application
var (
	// Match errors
	ErrMatchNotFound     = errors.New("match not found")
	ErrInvalidPlayers    = errors.New("invalid player count")
	ErrPlayerNotFound    = errors.New("player not found")
	ErrInvalidTurnSource = errors.New("invalid turn source")
	ErrInvalidBoardSize  = errors.New("invalid board size")

	// Snapshot errors
	ErrInvalidSnapshot  = errors.New("invalid snapshot")
	ErrInvalidDirection = errors.New("invalid direction")

	// Letter errors
	ErrUnknownLocale = errors.New("unknown locale")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
)
