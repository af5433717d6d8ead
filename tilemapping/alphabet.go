package tilemapping

import (
	"fmt"
	"unicode"
)

const (
	// BlankToken is the user-friendly representation of a blank.
	BlankToken = '?'
	// AltBlankToken is also accepted for a blank in rack strings and
	// distribution files.
	AltBlankToken = '*'
	// NumLetters is the size of the playable alphabet, A through Z.
	NumLetters = 26
)

// IsLetter returns whether r is a playable (uppercase) letter.
func IsLetter(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// IsBlankToken returns whether r denotes a blank tile.
func IsBlankToken(r rune) bool {
	return r == BlankToken || r == AltBlankToken
}

// Normalize uppercases a single letter.
func Normalize(r rune) rune {
	return unicode.ToUpper(r)
}

// A Tile is an immutable (letter, value) pair. A blank has no letter
// until it is designated, and it is always worth zero points.
type Tile struct {
	letter rune
	value  int
	blank  bool
}

// NewTile creates a natural tile.
func NewTile(letter rune, value int) Tile {
	return Tile{letter: Normalize(letter), value: value}
}

// BlankTile returns an undesignated blank.
func BlankTile() Tile {
	return Tile{blank: true}
}

// Designate returns a copy of a blank tile standing for the given letter.
// It panics if called on a natural tile.
func (t Tile) Designate(letter rune) Tile {
	if !t.blank {
		panic(fmt.Sprintf("cannot designate natural tile %c", t.letter))
	}
	return Tile{letter: Normalize(letter), blank: true}
}

// Letter is the tile's letter, or the designated letter of a blank. An
// undesignated blank returns 0.
func (t Tile) Letter() rune {
	return t.letter
}

func (t Tile) Value() int {
	return t.value
}

func (t Tile) IsBlank() bool {
	return t.blank
}

// Undesignated returns the tile as it would sit on a rack: a blank loses
// its designation.
func (t Tile) Undesignated() Tile {
	if t.blank {
		return BlankTile()
	}
	return t
}

// UserVisible returns the tile as shown on a board: designated blanks are
// lowercase.
func (t Tile) UserVisible() rune {
	switch {
	case t.blank && t.letter == 0:
		return BlankToken
	case t.blank:
		return unicode.ToLower(t.letter)
	}
	return t.letter
}

func (t Tile) String() string {
	return string(t.UserVisible())
}

// TilesString renders a slice of tiles.
func TilesString(tiles []Tile) string {
	rs := make([]rune, len(tiles))
	for i, t := range tiles {
		rs[i] = t.UserVisible()
	}
	return string(rs)
}

// TilesValue sums the values of the given tiles.
func TilesValue(tiles []Tile) int {
	sum := 0
	for _, t := range tiles {
		sum += t.value
	}
	return sum
}
