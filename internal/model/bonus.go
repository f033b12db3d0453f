package model

// Bonus classifies a board square by the multiplier it applies
type Bonus int

const (
	BonusNone Bonus = iota
	BonusStart
	BonusDoubleLetter
	BonusTripleLetter
	BonusDoubleWord
	BonusTripleWord
)

func (b Bonus) String() string {
	switch b {
	case BonusStart:
		return "start"
	case BonusDoubleLetter:
		return "double_letter"
	case BonusTripleLetter:
		return "triple_letter"
	case BonusDoubleWord:
		return "double_word"
	case BonusTripleWord:
		return "triple_word"
	default:
		return "none"
	}
}

// Short returns a two-character marker used when rendering boards
func (b Bonus) Short() string {
	switch b {
	case BonusStart:
		return "**"
	case BonusDoubleLetter:
		return "DL"
	case BonusTripleLetter:
		return "TL"
	case BonusDoubleWord:
		return "DW"
	case BonusTripleWord:
		return "TW"
	default:
		return ""
	}
}

var (
	tripleLetterSquares = pointSet(
		Point{5, 1}, Point{9, 1},
		Point{1, 5}, Point{5, 5}, Point{13, 5}, Point{9, 5},
		Point{1, 9}, Point{5, 9}, Point{13, 9}, Point{9, 9},
		Point{5, 13}, Point{9, 13},
	)

	doubleLetterSquares = pointSet(
		Point{3, 0}, Point{11, 0},
		Point{3, 14}, Point{11, 14},
		Point{6, 2}, Point{7, 3}, Point{8, 2},
		Point{6, 12}, Point{7, 11}, Point{8, 12},
		Point{2, 6}, Point{3, 7}, Point{2, 8},
		Point{12, 6}, Point{11, 7}, Point{12, 8},
		Point{0, 3}, Point{14, 3},
		Point{0, 11}, Point{14, 11},

		// Diamond around the centre
		Point{6, 6}, Point{8, 8}, Point{6, 8}, Point{8, 6},
	)

	tripleWordSquares = pointSet(
		Point{0, 0}, Point{7, 0}, Point{14, 0},
		Point{0, 7}, Point{14, 7},
		Point{0, 14}, Point{7, 14}, Point{14, 14},
	)
)

func pointSet(points ...Point) map[Point]struct{} {
	set := make(map[Point]struct{}, len(points))
	for _, p := range points {
		set[p] = struct{}{}
	}
	return set
}

// BonusAt classifies a square of the standard 15x15 board.
// Checks are ordered: an earlier class wins over a later one
func BonusAt(x, y int) Bonus {
	p := Point{X: x, Y: y}
	if p == (Point{7, 7}) {
		return BonusStart
	}
	if _, ok := tripleLetterSquares[p]; ok {
		return BonusTripleLetter
	}
	if _, ok := doubleLetterSquares[p]; ok {
		return BonusDoubleLetter
	}
	if _, ok := tripleWordSquares[p]; ok {
		return BonusTripleWord
	}
	if x*y > 0 && (x == y || x == BoardSize-1-y) {
		return BonusDoubleWord
	}
	return BonusNone
}
