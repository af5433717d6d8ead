package board

import (
	"fmt"

	"github.com/domino14/xwordsolver/tilemapping"
)

// A Scorer computes the value of a play under the multiplier and bingo
// rules.
type Scorer struct {
	// BingoSize is the number of tiles that earns the bingo bonus, usually
	// the rack capacity.
	BingoSize  int
	BingoBonus int
}

func NewScorer(bingoSize, bingoBonus int) *Scorer {
	return &Scorer{BingoSize: bingoSize, BingoBonus: bingoBonus}
}

// Score returns the value of placing word along the row of start, in the
// board's current orientation. tiles are the rack tiles in play order and
// fill the empty squares of the word from left to right. The board must not
// have been changed since its cross sums were generated.
//
// Newly covered squares apply their multipliers. Tiles already on the board
// count their face value only. A newly covered square adds its cross sum,
// the value of the fixed perpendicular tiles through it, once and without
// any multiplier.
func (s *Scorer) Score(g *GameBoard, word string, tiles []tilemapping.Tile, start Position) int {
	mainScore := 0
	crossScores := 0
	wordMult := 1
	ti := 0
	col := start.Col
	for range word {
		sq := g.squares[start.Row][col]
		if sq.filled {
			mainScore += sq.tile.Value()
			col++
			continue
		}
		if ti >= len(tiles) {
			panic(fmt.Sprintf("not enough tiles to score %s at %v", word, start))
		}
		ls := tiles[ti].Value() * sq.letterMult
		ti++
		mainScore += ls
		wordMult *= sq.wordMult
		if cs, ok := g.crossSums[Position{start.Row, col}]; ok {
			crossScores += cs
		}
		col++
	}
	total := mainScore*wordMult + crossScores
	if s.BingoSize > 0 && ti == s.BingoSize {
		total += s.BingoBonus
	}
	return total
}
