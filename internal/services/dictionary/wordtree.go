package dictionary

// WordTree is a trie over folded characters holding words of one fixed length
type WordTree struct {
	root   *node
	length int
	folder Folder
	count  int
}

type node struct {
	children map[rune]*node
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// NewWordTree creates an empty tree accepting words of exactly length
// characters, compared under the folder's equivalence
func NewWordTree(folder Folder, length int) *WordTree {
	return &WordTree{
		root:   newNode(),
		length: length,
		folder: folder,
	}
}

// Insert adds a word. Words of the wrong length are rejected without
// touching the tree
func (t *WordTree) Insert(word string) bool {
	chars := FoldWord(t.folder, word)
	if len(chars) != t.length {
		return false
	}

	n := t.root
	for _, c := range chars {
		next, ok := n.children[c]
		if !ok {
			next = newNode()
			n.children[c] = next
		}
		n = next
	}

	t.count++
	return true
}

// Contains walks the query through the tree and returns the folded path on
// a match.
//
// No end-of-word marker is kept, so any prefix of an inserted word (the
// empty query included) also matches. That is probably unintended, but
// lookups rely on it. Callers that need exact membership must check the
// length themselves
func (t *WordTree) Contains(word string) (string, bool) {
	chars := FoldWord(t.folder, word)

	n := t.root
	for _, c := range chars {
		next, ok := n.children[c]
		if !ok {
			return "", false
		}
		n = next
	}
	return string(chars), true
}

// Count returns the number of accepted insertions, duplicates included
func (t *WordTree) Count() int {
	return t.count
}

// Length returns the word length the tree accepts
func (t *WordTree) Length() int {
	return t.length
}

// Locale returns the locale whose folding the tree uses
func (t *WordTree) Locale() string {
	return t.folder.Locale()
}
