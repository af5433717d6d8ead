package movegen

import (
	"github.com/domino14/xwordsolver/move"
)

// A PlayRecorderFunc is called for every legal play the generator finds.
type PlayRecorderFunc func(*Generator, *move.Move)

func NullPlayRecorder(gen *Generator, m *move.Move) {
}

// AllPlaysRecorder keeps every play. GenAll sorts them best first.
func AllPlaysRecorder(gen *Generator, m *move.Move) {
	gen.plays = append(gen.plays, m)
}

// TopPlayOnlyRecorder only keeps the best play seen so far, using the
// ordering of move.Compare, so the winner does not depend on the order
// plays are found in.
func TopPlayOnlyRecorder(gen *Generator, m *move.Move) {
	if gen.winner == nil || move.Compare(m, gen.winner) < 0 {
		gen.winner = m
		if len(gen.plays) == 0 {
			gen.plays = append(gen.plays, gen.winner)
		} else {
			gen.plays[0] = gen.winner
		}
	}
}
