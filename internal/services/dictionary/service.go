package dictionary

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/mcoot/wordtiles/internal/locale"
	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/storage"
)

// Service provides dictionary/word validation functionality, one WordTree
// per locale
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu    sync.RWMutex
	trees map[string]*WordTree
}

// New creates a new DictionaryService
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
		trees:   make(map[string]*WordTree),
	}
}

// LoadFromStorage loads a locale's words from storage
func (s *Service) LoadFromStorage(ctx context.Context, localeID string) error {
	id, err := locale.Normalize(localeID)
	if err != nil {
		return err
	}
	words, err := s.storage.GetDictionaryWords(ctx, id)
	if err != nil {
		return err
	}
	_, err = s.loadWords(id, words)
	return err
}

// LoadFromFile loads a locale's words from a file (one word per line)
func (s *Service) LoadFromFile(ctx context.Context, localeID, path string) error {
	id, err := locale.Normalize(localeID)
	if err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" && !strings.HasPrefix(word, "#") {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	// Save to storage for future use
	if err := s.storage.SaveDictionaryWords(ctx, id, words); err != nil {
		return err
	}

	_, err = s.loadWords(id, words)
	return err
}

// LoadDir loads every <locale>.txt file in dir
func (s *Service) LoadDir(ctx context.Context, dir string) error {
	paths, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return err
	}
	for _, path := range paths {
		localeID := strings.TrimSuffix(filepath.Base(path), ".txt")
		if err := s.LoadFromFile(ctx, localeID, path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}
	return nil
}

// LoadWords directly loads a slice of words and returns how many were
// accepted (useful for testing)
func (s *Service) LoadWords(localeID string, words []string) (int, error) {
	id, err := locale.Normalize(localeID)
	if err != nil {
		return 0, err
	}
	return s.loadWords(id, words)
}

func (s *Service) loadWords(id string, words []string) (int, error) {
	folder, err := NewLocaleFolder(id)
	if err != nil {
		return 0, err
	}

	// Build outside the lock; the tree is read-only once published
	tree := NewWordTree(folder, model.WordLength)
	rejected := 0
	for _, word := range words {
		if !tree.Insert(word) {
			rejected++
		}
	}

	s.mu.Lock()
	s.trees[id] = tree
	s.mu.Unlock()

	s.logger.Info("dictionary loaded",
		slog.String("locale", id),
		slog.Int("words", tree.Count()),
		slog.Int("rejected", rejected),
	)
	return tree.Count(), nil
}

func (s *Service) tree(localeID string) (*WordTree, error) {
	id, err := locale.Normalize(localeID)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	tree, ok := s.trees[id]
	if !ok {
		return nil, model.ErrDictionaryNotLoaded
	}
	return tree, nil
}

// Lookup returns the folded form of a word if the locale's tree matches it
func (s *Service) Lookup(localeID, word string) (string, bool, error) {
	tree, err := s.tree(localeID)
	if err != nil {
		return "", false, err
	}
	match, ok := tree.Contains(word)
	return match, ok, nil
}

// IsValidWord checks if a full-length word exists in the dictionary.
// Prefixes match the tree, so the length is checked here
func (s *Service) IsValidWord(localeID, word string) bool {
	tree, err := s.tree(localeID)
	if err != nil {
		return false
	}
	match, ok := tree.Contains(word)
	return ok && len([]rune(match)) == tree.Length()
}

// IsLoaded returns whether the locale's dictionary has been loaded
func (s *Service) IsLoaded(localeID string) bool {
	_, err := s.tree(localeID)
	return err == nil
}

// WordCount returns the number of words loaded for a locale
func (s *Service) WordCount(localeID string) int {
	tree, err := s.tree(localeID)
	if err != nil {
		return 0
	}
	return tree.Count()
}

// Locales lists the loaded locales
func (s *Service) Locales() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.trees))
	for id := range s.trees {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Interface check
type ServiceInterface interface {
	Lookup(localeID, word string) (string, bool, error)
	IsValidWord(localeID, word string) bool
	IsLoaded(localeID string) bool
	WordCount(localeID string) int
	LoadFromStorage(ctx context.Context, localeID string) error
	LoadFromFile(ctx context.Context, localeID, path string) error
	LoadWords(localeID string, words []string) (int, error)
}

var _ ServiceInterface = (*Service)(nil)
