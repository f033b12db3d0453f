package storage

import (
	"context"

	"github.com/mcoot/wordtiles/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Match operations
	SaveMatch(ctx context.Context, match *model.Match) error
	GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error)
	DeleteMatch(ctx context.Context, id model.MatchID) error
	ListMatches(ctx context.Context) ([]model.MatchSummary, error)

	// Dictionary operations, one word list per locale
	GetDictionaryWords(ctx context.Context, locale string) ([]string, error)
	SaveDictionaryWords(ctx context.Context, locale string, words []string) error
}
