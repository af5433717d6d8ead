package board

import (
	"fmt"
	"os"

	"github.com/domino14/xwordsolver/tilemapping"
)

var (
	ColorSupport = os.Getenv("XWORDSOLVER_DISABLE_COLOR") != "on"
)

// A BonusSquare is the display marker for a premium square.
type BonusSquare rune

const (
	NoBonus  BonusSquare = ' '
	Bonus4WS BonusSquare = '~'
	Bonus4LS BonusSquare = '^'
	// Bonus3WS is a triple word score
	Bonus3WS BonusSquare = '='
	// Bonus3LS is a triple letter score
	Bonus3LS BonusSquare = '"'
	// Bonus2LS is a double letter score
	Bonus2LS BonusSquare = '\''
	// Bonus2WS is a double word score
	Bonus2WS BonusSquare = '-'
)

// A Square is a single square in a game board. It is either empty, with a
// letter and word multiplier, or filled with a tile. Multipliers are
// consumed once a tile is placed on the square.
type Square struct {
	tile       tilemapping.Tile
	filled     bool
	letterMult int
	wordMult   int
}

func newSquare(letterMult, wordMult int) *Square {
	return &Square{letterMult: letterMult, wordMult: wordMult}
}

func (s Square) String() string {
	if s.filled {
		return fmt.Sprintf("<(%v)>", s.tile)
	}
	return fmt.Sprintf("<(%d.%d)>", s.letterMult, s.wordMult)
}

func (s *Square) IsEmpty() bool {
	return !s.filled
}

// Tile returns the tile on the square and whether there is one.
func (s *Square) Tile() (tilemapping.Tile, bool) {
	return s.tile, s.filled
}

// Letter is the letter on the square, or 0 if it is empty.
func (s *Square) Letter() rune {
	if !s.filled {
		return 0
	}
	return s.tile.Letter()
}

func (s *Square) LetterMultiplier() int {
	return s.letterMult
}

func (s *Square) WordMultiplier() int {
	return s.wordMult
}

func (s *Square) place(t tilemapping.Tile) {
	s.tile = t
	s.filled = true
	s.letterMult = 1
	s.wordMult = 1
}

func (s *Square) equals(s2 *Square) bool {
	return s.filled == s2.filled && s.tile == s2.tile &&
		s.letterMult == s2.letterMult && s.wordMult == s2.wordMult
}

// Bonus returns the display marker for the square's multipliers.
func (s *Square) Bonus() BonusSquare {
	switch {
	case s.wordMult == 4:
		return Bonus4WS
	case s.wordMult == 3:
		return Bonus3WS
	case s.wordMult == 2:
		return Bonus2WS
	case s.letterMult == 4:
		return Bonus4LS
	case s.letterMult == 3:
		return Bonus3LS
	case s.letterMult == 2:
		return Bonus2LS
	}
	return NoBonus
}

func (b BonusSquare) displayString() string {
	if !ColorSupport {
		return string(b)
	}
	switch b {
	case Bonus4WS:
		return fmt.Sprintf("\033[33m%s\033[0m", string(b))
	case Bonus3WS:
		return fmt.Sprintf("\033[31m%s\033[0m", string(b))
	case Bonus2WS:
		return fmt.Sprintf("\033[35m%s\033[0m", string(b))
	case Bonus4LS:
		return fmt.Sprintf("\033[95m%s\033[0m", string(b))
	case Bonus3LS:
		return fmt.Sprintf("\033[34m%s\033[0m", string(b))
	case Bonus2LS:
		return fmt.Sprintf("\033[36m%s\033[0m", string(b))
	default:
		return string(b)
	}
}

func (s *Square) DisplayString() string {
	if s.filled {
		return string(s.tile.UserVisible())
	}
	return s.Bonus().displayString()
}
