package tilemapping

import (
	"errors"
	"fmt"

	"lukechampine.com/frand"
)

var ErrBagEmpty = errors.New("not enough tiles in the bag")

// A Bag is the bag o'tiles!
type Bag struct {
	tiles []Tile
}

// NewBag creates a full, shuffled bag for the distribution.
func NewBag(ld *LetterDistribution) *Bag {
	b := &Bag{tiles: make([]Tile, 0, ld.NumTotalTiles())}
	for _, l := range ld.Letters() {
		for i := 0; i < ld.Count(l); i++ {
			b.tiles = append(b.tiles, ld.TileFor(l))
		}
	}
	for i := 0; i < ld.NumBlanks(); i++ {
		b.tiles = append(b.tiles, BlankTile())
	}
	b.Shuffle()
	return b
}

// Shuffle shuffles the bag.
func (b *Bag) Shuffle() {
	frand.Shuffle(len(b.tiles), func(i, j int) {
		b.tiles[i], b.tiles[j] = b.tiles[j], b.tiles[i]
	})
}

// Draw draws n tiles from the bag.
func (b *Bag) Draw(n int) ([]Tile, error) {
	if n > len(b.tiles) {
		return nil, fmt.Errorf("%w: tried to draw %v tiles, tile bag has %v",
			ErrBagEmpty, n, len(b.tiles))
	}
	drawn := make([]Tile, n)
	copy(drawn, b.tiles[:n])
	b.tiles = b.tiles[n:]
	return drawn, nil
}

// DrawAtMost draws at most n tiles from the bag. It can draw fewer if there
// are fewer tiles than n, and even draw no tiles at all.
func (b *Bag) DrawAtMost(n int) []Tile {
	if n > len(b.tiles) {
		n = len(b.tiles)
	}
	drawn, _ := b.Draw(n)
	return drawn
}

// PutBack returns tiles to the bag and reshuffles it.
func (b *Bag) PutBack(tiles []Tile) {
	for _, t := range tiles {
		b.tiles = append(b.tiles, t.Undesignated())
	}
	b.Shuffle()
}

// Exchange exchanges the junk in your rack with new tiles.
func (b *Bag) Exchange(tiles []Tile) ([]Tile, error) {
	newTiles, err := b.Draw(len(tiles))
	if err != nil {
		return nil, err
	}
	b.PutBack(tiles)
	return newTiles, nil
}

func (b *Bag) TilesRemaining() int {
	return len(b.tiles)
}
