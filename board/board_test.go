package board

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/xwordsolver/testhelpers"
	"github.com/domino14/xwordsolver/tilemapping"
)

func englishDist(t testing.TB) *tilemapping.LetterDistribution {
	ld, err := tilemapping.ScanLetterDistribution(strings.NewReader(testhelpers.EnglishDistribution))
	if err != nil {
		t.Fatal(err)
	}
	return ld
}

func BenchmarkBoardTranspose(b *testing.B) {
	// Two transpositions are needed per full-board move generation, so we
	// use transposition instead of direction-aware code.
	board := StandardBoard()
	board.SetTile(7, 7, tilemapping.NewTile('A', 1))
	board.SetCrossSums(map[Position]int{{6, 7}: 1, {8, 7}: 1})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board.Transpose()
	}
}

func TestPosition(t *testing.T) {
	is := is.New(t)
	p := Position{3, 4}
	is.Equal(p.Distance(Position{5, 1}), 5)
	is.Equal(p.Distance(p), 0)
	is.Equal(p.DirectionTo(Position{3, 9}), Across)
	is.Equal(p.DirectionTo(Position{0, 4}), Down)
	// A row difference wins over a column difference.
	is.Equal(p.DirectionTo(Position{5, 6}), Down)
	is.Equal(p.DirectionTo(p), Both)
	is.Equal(p.Transpose(), Position{4, 3})
	is.True(Position{1, 9}.Less(Position{2, 0}))
	is.True(!Position{2, 0}.Less(Position{2, 0}))
}

func TestEmptyBoardAnchors(t *testing.T) {
	is := is.New(t)
	b := StandardBoard()
	is.True(b.IsEmpty())
	is.Equal(b.Anchors(), []Position{{7, 7}})
	is.True(b.IsAnchor(7, 7))
	is.True(!b.IsAnchor(7, 8))
}

func TestAnchorsAfterOneTile(t *testing.T) {
	is := is.New(t)
	b := StandardBoard()
	b.SetTile(7, 7, tilemapping.NewTile('Q', 10))
	is.True(!b.IsEmpty())
	is.Equal(b.Anchors(), []Position{{6, 7}, {7, 6}, {7, 8}, {8, 7}})

	b = NewBoard(5)
	b.SetTile(0, 0, tilemapping.NewTile('A', 1))
	is.Equal(b.Anchors(), []Position{{0, 1}, {1, 0}})
	is.True(!b.IsAnchor(0, 0))
	is.True(!b.IsAnchor(-1, 0))
}

func TestAnchorsSymmetricUnderTranspose(t *testing.T) {
	b := StandardBoard()
	b.SetTile(7, 7, tilemapping.NewTile('C', 3))
	b.SetTile(7, 8, tilemapping.NewTile('A', 1))
	b.SetTile(7, 9, tilemapping.NewTile('T', 1))
	before := b.Anchors()
	b.Transpose()
	var transposed []Position
	for _, p := range b.Anchors() {
		transposed = append(transposed, p.Transpose())
	}
	b.Transpose()
	assert.ElementsMatch(t, before, transposed)
	assert.Len(t, before, 8)
}

func TestTranspose(t *testing.T) {
	is := is.New(t)
	b := StandardBoard()
	b.SetTile(2, 5, tilemapping.NewTile('Z', 10))
	b.SetCrossSums(map[Position]int{{3, 5}: 10})
	orig := b.Copy()

	b.Transpose()
	is.True(b.IsTransposed())
	is.True(b.HasTile(5, 2))
	is.True(!b.HasTile(2, 5))
	v, ok := b.CrossSum(Position{5, 3})
	is.True(ok)
	is.Equal(v, 10)
	_, ok = b.CrossSum(Position{3, 5})
	is.True(!ok)
	is.True(!b.Equals(orig))

	b.Transpose()
	is.True(!b.IsTransposed())
	is.True(b.Equals(orig))
}

func TestCopyIsDeep(t *testing.T) {
	is := is.New(t)
	b := NewBoard(5)
	c := b.Copy()
	c.SetTile(2, 2, tilemapping.NewTile('A', 1))
	is.True(b.IsEmpty())
	is.True(!b.HasTile(2, 2))
	is.True(!b.Equals(c))
}

func TestScanLayout(t *testing.T) {
	is := is.New(t)
	b, err := ScanLayout(strings.NewReader(testhelpers.SmallLayout), englishDist(t))
	is.NoErr(err)
	is.Equal(b.Dim(), 5)
	is.True(b.IsEmpty())
	is.Equal(b.GetSquare(0, 0).LetterMultiplier(), 3)
	is.Equal(b.GetSquare(0, 2).WordMultiplier(), 3)
	is.Equal(b.GetSquare(2, 2).WordMultiplier(), 2)
	is.Equal(b.GetSquare(1, 1).LetterMultiplier(), 2)
	is.Equal(b.GetSquare(0, 1).LetterMultiplier(), 1)
	is.Equal(b.GetSquare(0, 1).WordMultiplier(), 1)
	is.Equal(b.ToLayoutText(), testhelpers.SmallLayout)
}

func TestScanLayoutWithTiles(t *testing.T) {
	is := is.New(t)
	layout := "3\n.. .. ..\nC a T\n.. .2 ..\n"
	b, err := ScanLayout(strings.NewReader(layout), englishDist(t))
	is.NoErr(err)
	is.True(!b.IsEmpty())
	tile, ok := b.GetSquare(1, 0).Tile()
	is.True(ok)
	is.Equal(tile.Value(), 3)
	tile, _ = b.GetSquare(1, 1).Tile()
	is.True(tile.IsBlank())
	is.Equal(tile.Letter(), 'A')
	is.Equal(tile.Value(), 0)
	is.Equal(b.ToLayoutText(), layout)
}

func TestReadLayoutLeavesRest(t *testing.T) {
	is := is.New(t)
	ld := englishDist(t)
	// A board followed by a rack, as the solver reads them from stdin.
	input := "\n2\n.. ..\nA ..\nCATS\n"
	sc := bufioScanner(input)
	b, err := ReadLayout(sc, ld)
	is.NoErr(err)
	is.True(b.HasTile(1, 0))
	is.True(sc.Scan())
	is.Equal(sc.Text(), "CATS")

	_, err = ReadLayout(sc, ld)
	is.Equal(err, io.EOF)
}

func TestScanLayoutMalformed(t *testing.T) {
	ld := englishDist(t)
	for _, tc := range []struct {
		name   string
		layout string
	}{
		{"empty", ""},
		{"bad size", "x\n"},
		{"zero size", "0\n"},
		{"missing rows", "3\n.. .. ..\n"},
		{"short row", "2\n.. ..\n..\n"},
		{"bad token", "2\n.. ..\n.. 22\n"},
		{"bad multiplier", "2\n.. ..\n.. x.\n"},
		{"too long", "2\n.. ..\n.. ...\n"},
		{"bad tile", "2\n.. ..\n.. 5\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			b, err := ScanLayout(strings.NewReader(tc.layout), ld)
			assert.Nil(t, b)
			assert.True(t, errors.Is(err, ErrMalformedLayout), "got %v", err)
		})
	}
}

func TestPlayTiles(t *testing.T) {
	is := is.New(t)
	ld := englishDist(t)
	b := StandardBoard()
	tiles, _ := ld.ToTiles("CAT")
	is.NoErr(b.PlayTiles("CAT", tiles, Position{7, 6}, false))
	is.Equal(b.GetLetter(7, 6), 'C')
	is.Equal(b.GetLetter(7, 8), 'T')
	// The center's double word is consumed.
	is.Equal(b.GetSquare(7, 7).WordMultiplier(), 1)

	// Play through the A.
	tiles, _ = ld.ToTiles("Tb")
	is.NoErr(b.PlayTiles("TAB", tiles, Position{6, 7}, true))
	is.Equal(b.GetLetter(6, 7), 'T')
	is.Equal(b.GetLetter(8, 7), 'B')
	sq, _ := b.GetSquare(8, 7).Tile()
	is.True(sq.IsBlank())
}

func TestPlayTilesMismatch(t *testing.T) {
	ld := englishDist(t)
	b := StandardBoard()
	tiles, _ := ld.ToTiles("CAT")
	assert.NoError(t, b.PlayTiles("CAT", tiles, Position{7, 6}, false))
	orig := b.Copy()

	for _, tc := range []struct {
		name     string
		word     string
		tiles    string
		start    Position
		vertical bool
	}{
		{"conflicting letter", "DOG", "DG", Position{6, 7}, true},
		{"off the board", "CATS", "CATS", Position{7, 13}, false},
		{"tile letter differs", "TAB", "TC", Position{6, 7}, true},
		{"too few tiles", "TABS", "TB", Position{6, 7}, true},
		{"unused tiles", "TAB", "TBS", Position{6, 7}, true},
		{"no new tiles", "CAT", "", Position{7, 6}, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ts, err := ld.ToTiles(tc.tiles)
			assert.NoError(t, err)
			err = b.PlayTiles(tc.word, ts, tc.start, tc.vertical)
			assert.ErrorIs(t, err, ErrMoveMismatch)
			assert.True(t, b.Equals(orig))
		})
	}
}

func TestToDisplayText(t *testing.T) {
	ColorSupport = false
	defer func() { ColorSupport = true }()
	b := NewBoard(3)
	b.SetTile(0, 1, tilemapping.NewTile('A', 1))
	b.SetTile(1, 1, tilemapping.BlankTile().Designate('B'))
	b.Transpose()
	txt := b.ToDisplayText()
	assert.True(t, b.IsTransposed())
	assert.Equal(t, "\n   A B C \n   ------\n 1|  A   |\n 2|  b   |\n 3|      |\n   ------\n", txt)
}

func bufioScanner(s string) *bufio.Scanner {
	return bufio.NewScanner(strings.NewReader(s))
}
