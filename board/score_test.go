package board

import (
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestScoreOpeningPlay(t *testing.T) {
	is := is.New(t)
	ld := englishDist(t)
	b := StandardBoard()
	s := NewScorer(7, 50)

	tiles, err := ld.ToTiles("CAT")
	is.NoErr(err)
	is.Equal(s.Score(b, "CAT", tiles, Position{7, 6}), 10)

	// A blank standing for the A is worth nothing.
	tiles, err = ld.ToTiles("CaT")
	is.NoErr(err)
	is.Equal(s.Score(b, "CAT", tiles, Position{7, 6}), 8)
}

func TestScoreBingo(t *testing.T) {
	ld := englishDist(t)
	b := StandardBoard()
	tiles, err := ld.ToTiles("RETAINS")
	assert.NoError(t, err)
	// T lands on a double letter, S on the center double word.
	assert.Equal(t, 66, NewScorer(7, 50).Score(b, "RETAINS", tiles, Position{7, 1}))
	assert.Equal(t, 16, NewScorer(8, 50).Score(b, "RETAINS", tiles, Position{7, 1}))
}

func TestScoreThroughTilesAndCrossWords(t *testing.T) {
	is := is.New(t)
	ld := englishDist(t)
	layout := "3\n.. .. ..\n.. .2 2.\n.. A ..\n"
	b, err := ScanLayout(strings.NewReader(layout), ld)
	is.NoErr(err)
	// The T at (1, 1) forms TA downwards.
	b.SetCrossSums(map[Position]int{{1, 1}: 1})
	s := NewScorer(7, 50)

	tiles, _ := ld.ToTiles("ATE")
	// ATE: (1 + 1 + 1*2) * 2 = 8. TA adds the cross sum of its A, unmultiplied.
	is.Equal(s.Score(b, "ATE", tiles, Position{1, 0}), 9)

	// The double word under the T does not apply to the cross sum.
	b.SetCrossSums(map[Position]int{{1, 1}: 4})
	tiles, _ = ld.ToTiles("T")
	is.Equal(s.Score(b, "T", tiles, Position{1, 1}), 1*2+4)

	// AT through the A on the board: the A counts at face value only.
	tiles, _ = ld.ToTiles("T")
	is.Equal(s.Score(b, "AT", tiles, Position{2, 1}), 2)
}

func TestScoreVerticalOnTransposedBoard(t *testing.T) {
	is := is.New(t)
	ld := englishDist(t)
	b := StandardBoard()
	tiles, _ := ld.ToTiles("ZA")
	b.Transpose()
	// Z at (7, 7) down to (8, 7): on the transposed board it is a row.
	is.Equal(NewScorer(7, 50).Score(b, "ZA", tiles, Position{7, 7}), 22)
	b.Transpose()
}
