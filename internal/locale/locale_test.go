package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcoot/wordtiles/internal/model"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", Default},
		{"en-US", "en-US"},
		{"en_US", "en-US"},
		{"EN-us", "en-US"},
		{"de", "de"},
		{"lv-LV", "lv-LV"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Normalize(tt.in)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeRejectsGarbage(t *testing.T) {
	_, err := Normalize("not a locale!")
	assert.ErrorIs(t, err, model.ErrUnknownLocale)
}
