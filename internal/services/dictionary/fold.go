package dictionary

import (
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/unicode/norm"

	"github.com/mcoot/wordtiles/internal/locale"
)

// Folder maps a code point to its locale-normalised form. Two characters
// are equivalent in a locale when they fold to the same rune
type Folder interface {
	Locale() string
	Fold(r rune) rune
}

// Languages whose alphabets treat marked letters as letters in their own
// right (š is not s in Latvian)
var markedAlphabets = map[language.Base]bool{}

func init() {
	for _, id := range []string{"lv", "lt", "pl", "cs", "sk", "is", "et", "hu", "sl", "hr"} {
		base, _ := language.MustParse(id).Base()
		markedAlphabets[base] = true
	}
}

var nonSpacingMarks = runes.In(unicode.Mn)

// LocaleFolder folds case the way the locale does and, unless the locale's
// alphabet says otherwise, strips diacritics
type LocaleFolder struct {
	tag       language.Tag
	keepMarks bool

	mu    sync.RWMutex
	cache map[rune]rune
}

// Ensure LocaleFolder implements Folder
var _ Folder = (*LocaleFolder)(nil)

// NewLocaleFolder creates a folder for the locale identifier
func NewLocaleFolder(id string) (*LocaleFolder, error) {
	tag, err := locale.Parse(id)
	if err != nil {
		return nil, err
	}
	base, _ := tag.Base()
	return &LocaleFolder{
		tag:       tag,
		keepMarks: markedAlphabets[base],
		cache:     make(map[rune]rune),
	}, nil
}

// Locale returns the canonical locale this folder applies
func (f *LocaleFolder) Locale() string {
	return f.tag.String()
}

// Fold returns the normalised form of r
func (f *LocaleFolder) Fold(r rune) rune {
	f.mu.RLock()
	folded, ok := f.cache[r]
	f.mu.RUnlock()
	if ok {
		return folded
	}

	folded = f.fold(r)

	f.mu.Lock()
	f.cache[r] = folded
	f.mu.Unlock()
	return folded
}

func (f *LocaleFolder) fold(r rune) rune {
	// Casers carry state, so each call gets its own
	upper := cases.Upper(f.tag).String(string(r))
	if utf8.RuneCountInString(upper) != 1 {
		// Expansions like ß -> SS would change the word length
		upper = string(unicode.ToUpper(r))
	}

	if f.keepMarks {
		out, _ := utf8.DecodeRuneInString(norm.NFC.String(upper))
		return out
	}

	decomposed := norm.NFD.String(upper)
	base, size := utf8.DecodeRuneInString(decomposed)
	for _, rest := range decomposed[size:] {
		if !nonSpacingMarks.Contains(rest) {
			// Not a plain base+marks sequence; leave it composed
			out, _ := utf8.DecodeRuneInString(norm.NFC.String(upper))
			return out
		}
	}
	return base
}

// FoldWord normalises a word one character at a time. Input is composed
// first so a precomposed é and e+U+0301 count as the same single letter
func FoldWord(f Folder, word string) []rune {
	composed := norm.NFC.String(word)
	out := make([]rune, 0, utf8.RuneCountInString(composed))
	for _, r := range composed {
		out = append(out, f.Fold(r))
	}
	return out
}
