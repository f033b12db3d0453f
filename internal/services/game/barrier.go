package game

import "sort"

// RevealBarrier collects the per-tile reveal signals of an animating swap.
// Signals can arrive in any order and more than once; the barrier completes
// when every slot has been seen at least once
type RevealBarrier struct {
	expected int
	seen     map[int]struct{}
}

// NewRevealBarrier creates a barrier for the given number of slots,
// pre-marking slots already observed
func NewRevealBarrier(expected int, revealed ...int) *RevealBarrier {
	b := &RevealBarrier{expected: expected, seen: make(map[int]struct{}, expected)}
	for _, slot := range revealed {
		b.Mark(slot)
	}
	return b
}

// Mark records a reveal. It returns false for slots out of range or
// already seen
func (b *RevealBarrier) Mark(slot int) bool {
	if slot < 0 || slot >= b.expected {
		return false
	}
	if _, ok := b.seen[slot]; ok {
		return false
	}
	b.seen[slot] = struct{}{}
	return true
}

// Complete reports whether every slot has been revealed
func (b *RevealBarrier) Complete() bool {
	return len(b.seen) == b.expected
}

// Expected returns the number of slots
func (b *RevealBarrier) Expected() int {
	return b.expected
}

// Revealed returns the seen slots in ascending order
func (b *RevealBarrier) Revealed() []int {
	out := make([]int, 0, len(b.seen))
	for slot := range b.seen {
		out = append(out, slot)
	}
	sort.Ints(out)
	return out
}
