package cross_set

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/xwordsolver/board"
	"github.com/domino14/xwordsolver/lexicon"
	"github.com/domino14/xwordsolver/tilemapping"
)

const (
	// TrivialCrossSet allows every possible letter.
	TrivialCrossSet CrossSet = (1 << tilemapping.NumLetters) - 1
)

// A CrossSet is a bit mask of letters that are allowed on a square. It is
// inherently directional. When generating moves along a row, a letter is
// allowed on an empty square only if it completes a valid word with the
// tiles above and/or below that square.
type CrossSet uint32

func bit(letter rune) CrossSet {
	letter = tilemapping.Normalize(letter)
	if !tilemapping.IsLetter(letter) {
		return 0
	}
	return 1 << uint(letter-'A')
}

func (c CrossSet) Allowed(letter rune) bool {
	return c&bit(letter) != 0
}

func (c *CrossSet) Set(letter rune) {
	*c |= bit(letter)
}

func (c *CrossSet) SetAll() {
	*c = TrivialCrossSet
}

func (c *CrossSet) Clear() {
	*c = 0
}

// Letters returns the allowed letters in alphabetical order.
func (c CrossSet) Letters() string {
	var sb strings.Builder
	for l := 'A'; l <= 'Z'; l++ {
		if c.Allowed(l) {
			sb.WriteRune(l)
		}
	}
	return sb.String()
}

func (c CrossSet) String() string {
	return "[" + c.Letters() + "]"
}

func CrossSetFromString(letters string) CrossSet {
	c := CrossSet(0)
	for _, l := range letters {
		c.Set(l)
	}
	return c
}

// CrossChecks holds the cross sets of the constrained squares of a board,
// keyed by position in the board's current orientation. A square that is
// absent is unconstrained: every letter may be played there.
type CrossChecks map[board.Position]CrossSet

// Allowed returns whether letter may be placed at p.
func (cc CrossChecks) Allowed(p board.Position, letter rune) bool {
	cs, ok := cc[p]
	return !ok || cs.Allowed(letter)
}

// Transpose returns the cross checks with every position transposed.
func (cc CrossChecks) Transpose() CrossChecks {
	t := make(CrossChecks, len(cc))
	for p, cs := range cc {
		t[p.Transpose()] = cs
	}
	return t
}

// Generator computes cross-checks and cross sums for the current
// orientation of a board. There are two implementations:
//   - LexiconCrossSetGenerator{Lexicon}
//   - CrossScoreOnlyGenerator{}
type Generator interface {
	// Generate computes the cross set and cross sum of one square. ok is
	// false if the square is filled or has no tile above or below it.
	Generate(b *board.GameBoard, row int, col int) (cs CrossSet, sum int, ok bool)
	// GenerateAll recomputes every square, replacing the board's cross
	// sums, and returns the cross-checks.
	GenerateAll(b *board.GameBoard) CrossChecks
}

// We have to go through this dance since go will not let us simply provide
// Generator with a default implementation of GenerateAll that calls a given
// implementation of Generate.

type iGenerator interface {
	Generate(b *board.GameBoard, row int, col int) (CrossSet, int, bool)
}

// generateAll goes through the entire board. Cross-checks are never updated
// incrementally; they are stale as soon as a tile is placed.
func generateAll(g iGenerator, b *board.GameBoard) CrossChecks {
	cc := CrossChecks{}
	sums := map[board.Position]int{}
	if b.IsEmpty() {
		b.SetCrossSums(sums)
		return cc
	}
	n := b.Dim()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			cs, sum, ok := g.Generate(b, i, j)
			if !ok {
				continue
			}
			p := board.Position{Row: i, Col: j}
			cc[p] = cs
			sums[p] = sum
		}
	}
	b.SetCrossSums(sums)
	log.Debug().Int("constrained", len(cc)).Bool("transposed", b.IsTransposed()).
		Msg("generated cross-checks")
	return cc
}

// verticalRun returns the letters of the filled squares immediately above
// (prefix) and below (suffix) the square at row, col, and their face value.
func verticalRun(b *board.GameBoard, row int, col int) (prefix, suffix string, score int) {
	top := row
	for b.HasTile(top-1, col) {
		top--
	}
	var pre, suf []rune
	for r := top; r < row; r++ {
		t, _ := b.GetSquare(r, col).Tile()
		pre = append(pre, t.Letter())
		score += t.Value()
	}
	for r := row + 1; b.HasTile(r, col); r++ {
		t, _ := b.GetSquare(r, col).Tile()
		suf = append(suf, t.Letter())
		score += t.Value()
	}
	return string(pre), string(suf), score
}

func constrained(b *board.GameBoard, row int, col int) bool {
	if !b.InBounds(board.Position{Row: row, Col: col}) || b.HasTile(row, col) {
		return false
	}
	return b.HasTile(row-1, col) || b.HasTile(row+1, col)
}

// ----------------------------------------------------------------------
// Use a CrossScoreOnlyGenerator when you don't need cross sets, for
// example to score a play that is already known to be valid.

type CrossScoreOnlyGenerator struct{}

func (g CrossScoreOnlyGenerator) Generate(b *board.GameBoard, row int, col int) (CrossSet, int, bool) {
	if !constrained(b, row, col) {
		return 0, 0, false
	}
	_, _, score := verticalRun(b, row, col)
	return TrivialCrossSet, score, true
}

func (g CrossScoreOnlyGenerator) GenerateAll(b *board.GameBoard) CrossChecks {
	return generateAll(g, b)
}

// ----------------------------------------------------------------------
// LexiconCrossSetGenerator generates cross sets by walking a lexicon.

type LexiconCrossSetGenerator struct {
	Lexicon lexicon.Lexicon
}

// Generate tries every letter L on the square and keeps it if
// prefix + L + suffix is a word. The prefix is walked once and shared by
// all the letters.
func (g LexiconCrossSetGenerator) Generate(b *board.GameBoard, row int, col int) (CrossSet, int, bool) {
	if !constrained(b, row, col) {
		return 0, 0, false
	}
	prefix, suffix, score := verticalRun(b, row, col)
	cs := CrossSet(0)
	node := g.Lexicon.Transition(nil, prefix)
	if node == nil {
		// Nothing on the board extends this prefix, which can happen if
		// a phony stayed on the board.
		return cs, score, true
	}
	for letter, child := range g.Lexicon.Children(node) {
		if g.Lexicon.IsAccepting(g.Lexicon.Transition(child, suffix)) {
			cs.Set(letter)
		}
	}
	return cs, score, true
}

func (g LexiconCrossSetGenerator) GenerateAll(b *board.GameBoard) CrossChecks {
	return generateAll(g, b)
}

// Wrapper functions

// GenerateCrossChecks computes the cross-checks of every empty square in
// the board's current orientation and stores the matching cross sums on
// the board. An empty board has no cross-checks.
func GenerateCrossChecks(b *board.GameBoard, lex lexicon.Lexicon) CrossChecks {
	return LexiconCrossSetGenerator{Lexicon: lex}.GenerateAll(b)
}

// GenerateCrossScores only computes the cross sums of the board.
func GenerateCrossScores(b *board.GameBoard) {
	CrossScoreOnlyGenerator{}.GenerateAll(b)
}
