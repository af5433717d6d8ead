// Package movegen contains the move generator. It is an implementation of
// the Appel & Jacobson algorithm: for every anchor square, build every left
// part that fits to the left of the anchor (LeftPart), then extend each one
// to the right through the anchor (ExtendRight). Vertical plays are found by
// transposing the board and running the same code again.
package movegen

import (
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/xwordsolver/board"
	"github.com/domino14/xwordsolver/cross_set"
	"github.com/domino14/xwordsolver/lexicon"
	"github.com/domino14/xwordsolver/move"
	"github.com/domino14/xwordsolver/tilemapping"
)

// Generator generates plays for a board and rack. It is not safe for
// concurrent use; the lexicon it holds may be shared by many generators.
type Generator struct {
	lexicon lexicon.Lexicon
	scorer  *board.Scorer

	board       *board.GameBoard
	rack        *tilemapping.Rack
	crossChecks cross_set.CrossChecks
	vertical    bool
	curRow      int
	anchorCol   int

	// strip holds the user-visible letters of the word being built and
	// placed holds the rack tiles it uses, both in board order.
	strip  []rune
	placed []tilemapping.Tile

	playRecorder PlayRecorderFunc
	plays        []*move.Move
	winner       *move.Move
	legalWords   map[string]struct{}
	numFound     int
}

// NewGenerator creates a generator that records only the top play.
func NewGenerator(lex lexicon.Lexicon, scorer *board.Scorer) *Generator {
	return &Generator{
		lexicon:      lex,
		scorer:       scorer,
		playRecorder: TopPlayOnlyRecorder,
		legalWords:   map[string]struct{}{},
	}
}

func (gen *Generator) SetPlayRecorder(pr PlayRecorderFunc) {
	gen.playRecorder = pr
}

func (gen *Generator) Lexicon() lexicon.Lexicon {
	return gen.lexicon
}

// GenAll generates every legal play for the rack, horizontal plays first,
// then vertical plays on the transposed board. The board and rack are
// mutated during the search and are restored before GenAll returns. The
// board's cross sums are left computed for its original orientation.
func (gen *Generator) GenAll(b *board.GameBoard, rack *tilemapping.Rack) {
	gen.board = b
	gen.rack = rack
	gen.plays = nil
	gen.winner = nil
	gen.numFound = 0
	clear(gen.legalWords)

	gen.vertical = false
	gen.crossChecks = cross_set.GenerateCrossChecks(b, gen.lexicon)
	gen.genByOrientation()

	b.Transpose()
	gen.vertical = true
	gen.crossChecks = cross_set.GenerateCrossChecks(b, gen.lexicon)
	gen.genByOrientation()
	b.Transpose()

	cross_set.GenerateCrossScores(b)
	gen.crossChecks = nil
	gen.board = nil
	gen.rack = nil
	slices.SortFunc(gen.plays, move.Compare)
	log.Debug().Int("found", gen.numFound).Int("recorded", len(gen.plays)).
		Int("words", len(gen.legalWords)).Msg("generated plays")
}

func (gen *Generator) genByOrientation() {
	for _, anchor := range gen.board.Anchors() {
		gen.curRow = anchor.Row
		gen.anchorCol = anchor.Col
		gen.strip = gen.strip[:0]
		gen.placed = gen.placed[:0]

		if gen.board.HasTile(anchor.Row, anchor.Col-1) {
			// The left part is already on the board.
			start := gen.board.WordEdge(anchor.Row, anchor.Col-1, -1)
			for col := start; col < anchor.Col; col++ {
				gen.strip = append(gen.strip, gen.board.GetLetter(anchor.Row, col))
			}
			node := gen.lexicon.Transition(nil, string(gen.strip))
			if node != nil {
				gen.ExtendRight(node, anchor.Col)
			}
			continue
		}
		gen.LeftPart(gen.lexicon.Root(), gen.leftLimit(anchor))
	}
}

// leftLimit counts the empty, non-anchor squares to the left of the anchor,
// up to the size of the rack.
func (gen *Generator) leftLimit(anchor board.Position) int {
	limit := 0
	for col := anchor.Col - 1; col >= 0 && limit < gen.rack.NumTiles(); col-- {
		if gen.board.HasTile(anchor.Row, col) || gen.board.IsAnchor(anchor.Row, col) {
			break
		}
		limit++
	}
	return limit
}

// LeftPart builds every left part of up to limit rack tiles ending just
// left of the anchor, extending each one to the right as it goes.
func (gen *Generator) LeftPart(node lexicon.Node, limit int) {
	gen.ExtendRight(node, gen.anchorCol)
	if limit == 0 {
		return
	}
	for letter, child := range gen.lexicon.Children(node) {
		gen.tryTiles(letter, func() {
			gen.LeftPart(child, limit-1)
		})
	}
}

// ExtendRight extends the partial word in the strip, whose automaton state
// is node, starting at col.
func (gen *Generator) ExtendRight(node lexicon.Node, col int) {
	dim := gen.board.Dim()
	if col >= dim || !gen.board.HasTile(gen.curRow, col) {
		if col > gen.anchorCol && gen.lexicon.IsAccepting(node) {
			gen.recordPlay(col)
		}
		if col >= dim {
			return
		}
		pos := board.Position{Row: gen.curRow, Col: col}
		for letter, child := range gen.lexicon.Children(node) {
			if !gen.crossChecks.Allowed(pos, letter) {
				continue
			}
			gen.tryTiles(letter, func() {
				gen.ExtendRight(child, col+1)
			})
		}
		return
	}
	letter := gen.board.GetLetter(gen.curRow, col)
	next := node.Next(letter)
	if next == nil {
		return
	}
	gen.strip = append(gen.strip, letter)
	gen.ExtendRight(next, col+1)
	gen.strip = gen.strip[:len(gen.strip)-1]
}

// tryTiles calls f once with a natural tile for letter placed, and once
// with a blank standing for letter, for whichever of those are on the
// rack. Each tile is back on the rack before the next one is tried.
func (gen *Generator) tryTiles(letter rune, f func()) {
	if t, ok := gen.rack.TakeLetter(letter); ok {
		gen.push(t)
		f()
		gen.pop()
	}
	if t, ok := gen.rack.TakeBlank(letter); ok {
		gen.push(t)
		f()
		gen.pop()
	}
}

func (gen *Generator) push(t tilemapping.Tile) {
	gen.strip = append(gen.strip, t.UserVisible())
	gen.placed = append(gen.placed, t)
}

func (gen *Generator) pop() {
	t := gen.placed[len(gen.placed)-1]
	gen.placed = gen.placed[:len(gen.placed)-1]
	gen.strip = gen.strip[:len(gen.strip)-1]
	gen.rack.Add(t)
}

// recordPlay records the word in the strip, which ends just before col.
func (gen *Generator) recordPlay(col int) {
	length := len(gen.strip)
	if length < 2 || len(gen.placed) == 0 {
		return
	}
	start := board.Position{Row: gen.curRow, Col: col - length}
	if gen.vertical && len(gen.placed) == 1 {
		// A single tile with neighbors across was already found as a
		// horizontal play.
		if _, ok := gen.crossChecks[gen.singleTilePos(start)]; ok {
			return
		}
	}
	word := string(gen.strip)
	tiles := make([]tilemapping.Tile, len(gen.placed))
	copy(tiles, gen.placed)
	score := gen.scorer.Score(gen.board, word, tiles, start)
	if gen.vertical {
		// We flip it here because we only generate vertical moves when we
		// transpose the board, so the row and col are actually transposed.
		start = start.Transpose()
	}
	gen.numFound++
	m := move.NewScoringMove(score, word, tiles, gen.rack.Tiles(), start, gen.vertical)
	gen.legalWords[m.Word()] = struct{}{}
	gen.playRecorder(gen, m)
}

func (gen *Generator) singleTilePos(start board.Position) board.Position {
	col := start.Col
	for gen.board.HasTile(start.Row, col) {
		col++
	}
	return board.Position{Row: start.Row, Col: col}
}

// Plays returns the recorded plays, best first.
func (gen *Generator) Plays() []*move.Move {
	return gen.plays
}

// Best returns the highest-scoring play found, or nil if there is no legal
// play.
func (gen *Generator) Best() *move.Move {
	if gen.winner != nil {
		return gen.winner
	}
	if len(gen.plays) > 0 {
		return gen.plays[0]
	}
	return nil
}

// LegalWords returns every distinct word formed along a legal play, in
// alphabetical order.
func (gen *Generator) LegalWords() []string {
	words := lo.Keys(gen.legalWords)
	slices.Sort(words)
	return words
}

// NumFound is the number of legal plays found by the last GenAll, including
// plays the recorder discarded.
func (gen *Generator) NumFound() int {
	return gen.numFound
}
