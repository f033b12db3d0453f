package dictionary

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordtiles/internal/model"
)

func TestLocaleFolderFolds(t *testing.T) {
	tests := []struct {
		locale string
		in     rune
		out    rune
	}{
		{"en-US", 'a', 'A'},
		{"en-US", 'Z', 'Z'},
		{"en-US", 'é', 'E'},
		{"en-US", 'ñ', 'N'},
		{"de-DE", 'ü', 'U'},
		{"lv-LV", 'š', 'Š'},
		{"lv-LV", 'ā', 'Ā'},
		{"pl-PL", 'ł', 'Ł'},
	}
	for _, tt := range tests {
		t.Run(tt.locale+"/"+string(tt.in), func(t *testing.T) {
			f, err := NewLocaleFolder(tt.locale)
			require.NoError(t, err)
			assert.Equal(t, tt.out, f.Fold(tt.in))
			// Second call comes from the cache
			assert.Equal(t, tt.out, f.Fold(tt.in))
		})
	}
}

func TestFoldWordKeepsLength(t *testing.T) {
	f, err := NewLocaleFolder("de-DE")
	require.NoError(t, err)

	word := "straße"
	assert.Len(t, FoldWord(f, word), utf8.RuneCountInString(word))
}

func TestNewLocaleFolderNormalizesIdentifier(t *testing.T) {
	f, err := NewLocaleFolder("en_US")
	require.NoError(t, err)
	assert.Equal(t, "en-US", f.Locale())

	f, err = NewLocaleFolder("")
	require.NoError(t, err)
	assert.Equal(t, "en-US", f.Locale())

	_, err = NewLocaleFolder("!!")
	assert.ErrorIs(t, err, model.ErrUnknownLocale)
}
