package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTree(t *testing.T, locale string, words ...string) *WordTree {
	t.Helper()
	folder, err := NewLocaleFolder(locale)
	require.NoError(t, err)
	tree := NewWordTree(folder, 5)
	for _, w := range words {
		tree.Insert(w)
	}
	return tree
}

func TestWordTreeInsertChecksLength(t *testing.T) {
	tree := newTree(t, "en-US")

	assert.True(t, tree.Insert("apple"))
	assert.False(t, tree.Insert("app"))
	assert.False(t, tree.Insert("apples"))
	assert.Equal(t, 1, tree.Count())
	assert.Equal(t, 5, tree.Length())
	assert.Equal(t, "en-US", tree.Locale())
}

func TestWordTreeRejectedInsertLeavesTreeUntouched(t *testing.T) {
	tree := newTree(t, "en-US")

	assert.False(t, tree.Insert("AB"))
	assert.Equal(t, 0, tree.Count())

	_, ok := tree.Contains("A")
	assert.False(t, ok)
	_, ok = tree.Contains("AB")
	assert.False(t, ok)
}

func TestWordTreeCountsDuplicates(t *testing.T) {
	tree := newTree(t, "en-US", "apple", "APPLE")

	assert.Equal(t, 2, tree.Count())
}

func TestWordTreeContains(t *testing.T) {
	tree := newTree(t, "en-US", "apple", "grape")

	tests := []struct {
		query  string
		match  string
		exists bool
	}{
		{"apple", "APPLE", true},
		{"Grape", "GRAPE", true},
		{"lemon", "", false},
		{"appla", "", false},
		// No end-of-word marker, so prefixes match. This is very likely
		// unintended; exact lookups go through Service.IsValidWord, which
		// checks the length first
		{"app", "APP", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			match, ok := tree.Contains(tt.query)
			assert.Equal(t, tt.exists, ok)
			assert.Equal(t, tt.match, match)
		})
	}
}

func TestWordTreeEmptyMatchesOnlyEmpty(t *testing.T) {
	tree := newTree(t, "en-US")

	_, ok := tree.Contains("a")
	assert.False(t, ok)
	_, ok = tree.Contains("")
	assert.True(t, ok)
}

func TestWordTreeFoldsDiacritics(t *testing.T) {
	tree := newTree(t, "en-US", "crème", "naïve")

	match, ok := tree.Contains("CREME")
	assert.True(t, ok)
	assert.Equal(t, "CREME", match)

	_, ok = tree.Contains("naive")
	assert.True(t, ok)

	// Decomposed input is one letter per base character
	_, ok = tree.Contains("cre\u0300me")
	assert.True(t, ok)
}

func TestWordTreeKeepsMarksWhereAlphabetNeedsThem(t *testing.T) {
	tree := newTree(t, "lv-LV", "šķēps")

	_, ok := tree.Contains("ŠĶĒPS")
	assert.True(t, ok)
	_, ok = tree.Contains("skeps")
	assert.False(t, ok)
}
