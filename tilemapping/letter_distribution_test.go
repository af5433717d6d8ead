package tilemapping

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/xwordsolver/testhelpers"
)

func englishDist(t *testing.T) *LetterDistribution {
	ld, err := ScanLetterDistribution(strings.NewReader(testhelpers.EnglishDistribution))
	if err != nil {
		t.Fatal(err)
	}
	return ld
}

func TestLetterDistributionScores(t *testing.T) {
	is := is.New(t)
	ld := englishDist(t)

	is.Equal(ld.Score('A'), 1)
	is.Equal(ld.Score('a'), 1)
	is.Equal(ld.Score('Q'), 10)
	is.Equal(ld.Score('K'), 5)
	is.Equal(ld.Score('?'), 0)
	is.Equal(ld.Count('E'), 12)
	is.Equal(ld.Count('*'), 2)
	is.Equal(ld.NumTotalTiles(), 100)
	is.Equal(len(ld.Letters()), 26)
}

func TestLetterDistributionWordScore(t *testing.T) {
	is := is.New(t)
	ld := englishDist(t)
	is.Equal(ld.WordScore("CoOKIE"), 11)
}

func TestScanSpacedValue(t *testing.T) {
	is := is.New(t)
	// the value may be followed by a space before the first group.
	ld, err := ScanLetterDistribution(strings.NewReader("1: {2:A,B}\n0: {1:?}\n"))
	is.NoErr(err)
	is.Equal(ld.Score('B'), 1)
	is.Equal(ld.Count('B'), 2)
	is.Equal(ld.NumBlanks(), 1)
	is.Equal(ld.NumTotalTiles(), 5)
}

func TestScanMalformed(t *testing.T) {
	cases := []string{
		"",
		"x:{1:A}",
		"1:{1:A",
		"1:{q:A}",
		"1:{1:AB}",
		"1:{1:A}\n2:{1:A}",
		"3:{1:*}",
		"1:",
	}
	for _, c := range cases {
		_, err := ScanLetterDistribution(strings.NewReader(c))
		if !errors.Is(err, ErrMalformedDistribution) {
			t.Errorf("expected malformed distribution error for %q, got %v", c, err)
		}
	}
}

func TestToTiles(t *testing.T) {
	is := is.New(t)
	ld := englishDist(t)
	tiles, err := ld.ToTiles("Qi?*")
	is.NoErr(err)
	is.Equal(len(tiles), 4)
	is.Equal(tiles[0].Value(), 10)
	is.True(tiles[1].IsBlank())
	is.Equal(tiles[1].Letter(), 'I')
	is.Equal(tiles[1].Value(), 0)
	is.True(tiles[2].IsBlank())
	is.Equal(tiles[3], BlankTile())
	is.Equal(TilesString(tiles), "Qi??")

	_, err = ld.ToTiles("A1")
	is.True(err != nil)
}
