package tilemapping

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestBag(t *testing.T) {
	is := is.New(t)
	ld := englishDist(t)
	bag := NewBag(ld)
	is.Equal(bag.TilesRemaining(), ld.NumTotalTiles())

	counts := map[rune]int{}
	for bag.TilesRemaining() > 0 {
		tiles, err := bag.Draw(1)
		is.NoErr(err)
		counts[tiles[0].UserVisible()]++
	}
	for _, l := range ld.Letters() {
		is.Equal(counts[l], ld.Count(l))
	}
	is.Equal(counts[BlankToken], 2)

	_, err := bag.Draw(1)
	is.True(errors.Is(err, ErrBagEmpty))
}

func TestDrawAtMost(t *testing.T) {
	is := is.New(t)
	ld := englishDist(t)
	bag := NewBag(ld)
	_, err := bag.Draw(95)
	is.NoErr(err)
	tiles := bag.DrawAtMost(7)
	is.Equal(len(tiles), 5)
	is.Equal(bag.TilesRemaining(), 0)
}

func TestExchange(t *testing.T) {
	is := is.New(t)
	ld := englishDist(t)
	bag := NewBag(ld)
	junk, err := ld.ToTiles("UUVVW")
	is.NoErr(err)
	fresh, err := bag.Exchange(junk)
	is.NoErr(err)
	is.Equal(len(fresh), 5)
	is.Equal(bag.TilesRemaining(), 100)
}
