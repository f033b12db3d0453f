package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	matches         map[model.MatchID]*model.Match
	dictionaryWords map[string][]string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		matches:         make(map[model.MatchID]*model.Match),
		dictionaryWords: make(map[string][]string),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// cloneMatch copies the slices a caller could mutate after saving
func cloneMatch(m *model.Match) *model.Match {
	out := *m
	out.Revealed = append([]int(nil), m.Revealed...)
	out.Snapshot.Hands = make([]model.PlayerHand, len(m.Snapshot.Hands))
	for i, h := range m.Snapshot.Hands {
		out.Snapshot.Hands[i] = h.WithLetters(h.Letters)
	}
	return &out
}

// Match operations

func (s *Storage) SaveMatch(ctx context.Context, match *model.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches[match.ID] = cloneMatch(match)
	return nil
}

func (s *Storage) GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	match, ok := s.matches[id]
	if !ok {
		return nil, model.ErrMatchNotFound
	}
	return cloneMatch(match), nil
}

func (s *Storage) DeleteMatch(ctx context.Context, id model.MatchID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.matches, id)
	return nil
}

func (s *Storage) ListMatches(ctx context.Context) ([]model.MatchSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	summaries := make([]model.MatchSummary, 0, len(s.matches))
	for _, m := range s.matches {
		summaries = append(summaries, storage.Summarize(m))
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].ID < summaries[j].ID
	})
	return summaries, nil
}

// Dictionary operations

func (s *Storage) GetDictionaryWords(ctx context.Context, locale string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	words, ok := s.dictionaryWords[locale]
	if !ok {
		return nil, model.ErrDictionaryNotLoaded
	}
	result := make([]string, len(words))
	copy(result, words)
	return result, nil
}

func (s *Storage) SaveDictionaryWords(ctx context.Context, locale string, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]string, len(words))
	copy(stored, words)
	s.dictionaryWords[locale] = stored
	return nil
}
