package factory

import (
	"time"

	"github.com/mcoot/wordtiles/internal/dependencies/mocks"
	"github.com/mcoot/wordtiles/internal/storage/memory"
	"github.com/mcoot/wordtiles/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// The mock random leaves the bag unshuffled, so tiles are dealt in ID order
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestDictionary loads a small English dictionary for testing
func (t *TestApp) LoadTestDictionary() error {
	words := []string{
		"about", "above", "after", "again", "apple", "badge", "beach", "black",
		"board", "bread", "cabin", "candy", "chair", "clean", "crane", "dance",
		"eagle", "earth", "fable", "field", "grape", "green", "heart", "house",
		"image", "juice", "knife", "laser", "lemon", "light", "mango", "metal",
		"night", "ocean", "paint", "piano", "queen", "quiet", "radio", "river",
		"salad", "stone", "table", "tiger", "under", "value", "water", "world",
		"xenon", "yacht", "zebra",
	}
	_, err := t.DictionaryService.LoadWords("en-US", words)
	return err
}
