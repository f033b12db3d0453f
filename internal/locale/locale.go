// Package locale normalises the locale identifiers used to pick letter
// distributions and dictionary folding rules.
package locale

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/mcoot/wordtiles/internal/model"
)

// Default is used when a match does not name a locale
const Default = "en-US"

// Parse accepts BCP 47 tags as well as POSIX-style identifiers (en_US)
func Parse(id string) (language.Tag, error) {
	if id == "" {
		id = Default
	}
	tag, err := language.Parse(id)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q", model.ErrUnknownLocale, id)
	}
	return tag, nil
}

// Normalize returns the canonical string form of a locale identifier
func Normalize(id string) (string, error) {
	tag, err := Parse(id)
	if err != nil {
		return "", err
	}
	return tag.String(), nil
}
