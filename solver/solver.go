// Package solver runs one turn of the best-move search: generate every play
// on both orientations of the board, confirm the winner's score, then apply
// it and top the rack back up.
package solver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/xwordsolver/board"
	"github.com/domino14/xwordsolver/cache"
	"github.com/domino14/xwordsolver/config"
	"github.com/domino14/xwordsolver/cross_set"
	"github.com/domino14/xwordsolver/lexicon"
	"github.com/domino14/xwordsolver/move"
	"github.com/domino14/xwordsolver/movegen"
	"github.com/domino14/xwordsolver/tilemapping"
)

var (
	ErrNoRack         = errors.New("no rack to solve for")
	ErrNoLexicon      = errors.New("no lexicon path configured")
	ErrTilesNotOnRack = errors.New("tiles are not on the rack")
)

// Solver holds everything that stays fixed for a game: the lexicon, the
// letter distribution, the empty board layout and the scoring rules.
type Solver struct {
	lexicon      lexicon.Lexicon
	dist         *tilemapping.LetterDistribution
	layout       *board.GameBoard
	scorer       *board.Scorer
	rackCapacity int

	topGen *movegen.Generator
	allGen *movegen.Generator
}

// New creates a solver. layout is copied by NewBoard and never modified.
func New(lex lexicon.Lexicon, ld *tilemapping.LetterDistribution, layout *board.GameBoard,
	rackCapacity, bingoBonus int) *Solver {

	scorer := board.NewScorer(rackCapacity, bingoBonus)
	allGen := movegen.NewGenerator(lex, scorer)
	allGen.SetPlayRecorder(movegen.AllPlaysRecorder)
	return &Solver{
		lexicon:      lex,
		dist:         ld,
		layout:       layout,
		scorer:       scorer,
		rackCapacity: rackCapacity,
		topGen:       movegen.NewGenerator(lex, scorer),
		allGen:       allGen,
	}
}

// Load reads the word list, the letter distribution and the board layout
// named by the config. The word list and the distribution are read
// concurrently; the layout is read last since its tiles need letter values.
func Load(ctx context.Context, cfg *config.Config) (*Solver, error) {
	if cfg.GetString(config.ConfigLexiconPath) == "" {
		return nil, ErrNoLexicon
	}
	var (
		lex lexicon.Lexicon
		ld  *tilemapping.LetterDistribution
	)
	t0 := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		lex, err = cache.Load(cfg, lexiconKey(cfg), loadLexicon)
		if err != nil {
			return fmt.Errorf("loading lexicon: %w", err)
		}
		return ctx.Err()
	})
	g.Go(func() error {
		var err error
		ld, err = tilemapping.LoadLetterDistribution(cfg.DistributionPath())
		if err != nil {
			return fmt.Errorf("loading letter distribution: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	layout, err := LoadLayout(cfg, ld)
	if err != nil {
		return nil, err
	}
	log.Debug().Dur("elapsed", time.Since(t0)).Msg("loaded solver resources")
	return New(lex, ld, layout, cfg.GetInt(config.ConfigRackCapacity),
		cfg.GetInt(config.ConfigBingoBonus)), nil
}

func lexiconKey(cfg *config.Config) string {
	return "lexicon:" + cfg.GetString(config.ConfigLexiconType) + ":" +
		cfg.GetString(config.ConfigLexiconEncoding) + ":" + cfg.GetString(config.ConfigLexiconPath)
}

func loadLexicon(cfg *config.Config, key string) (lexicon.Lexicon, error) {
	return lexicon.Load(cfg.GetString(config.ConfigLexiconPath),
		lexicon.Type(cfg.GetString(config.ConfigLexiconType)), cfg.GetString(config.ConfigLexiconEncoding))
}

// LoadLayout reads the board layout named by the config. The name
// "standard" falls back to the built-in layout when there is no such file.
func LoadLayout(cfg *config.Config, ld *tilemapping.LetterDistribution) (*board.GameBoard, error) {
	if cfg.GetString(config.ConfigBoardLayout) == "standard" {
		b, err := board.LoadLayout(cfg.LayoutPath(), ld)
		if err == nil {
			return b, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading board layout: %w", err)
		}
		log.Debug().Str("path", cfg.LayoutPath()).Msg("no standard layout file; using built-in layout")
		return board.StandardBoard(), nil
	}
	b, err := board.LoadLayout(cfg.LayoutPath(), ld)
	if err != nil {
		return nil, fmt.Errorf("loading board layout: %w", err)
	}
	return b, nil
}

func (s *Solver) Lexicon() lexicon.Lexicon {
	return s.lexicon
}

func (s *Solver) LetterDistribution() *tilemapping.LetterDistribution {
	return s.dist
}

func (s *Solver) RackCapacity() int {
	return s.rackCapacity
}

// SetLayout replaces the layout used by NewBoard.
func (s *Solver) SetLayout(layout *board.GameBoard) {
	s.layout = layout
}

// NewBoard returns a fresh copy of the layout.
func (s *Solver) NewBoard() *board.GameBoard {
	return s.layout.Copy()
}

// NewBag returns a full, shuffled bag.
func (s *Solver) NewBag() *tilemapping.Bag {
	return tilemapping.NewBag(s.dist)
}

// NewRack parses a rack such as "AEINST?".
func (s *Solver) NewRack(letters string) (*tilemapping.Rack, error) {
	return tilemapping.RackFromString(letters, s.dist, s.rackCapacity)
}

// Solve finds the best play for the rack. If there is no legal play it
// returns an exchange of the whole rack. The board and rack are left as
// they were.
func (s *Solver) Solve(b *board.GameBoard, rack *tilemapping.Rack) (*move.Move, error) {
	if rack == nil || rack.IsEmpty() {
		return nil, ErrNoRack
	}
	t0 := time.Now()
	s.topGen.GenAll(b, rack)
	best := s.topGen.Best()
	if best == nil {
		log.Debug().Str("rack", rack.String()).Msg("no legal play; exchanging")
		return move.NewExchangeMove(rack.Tiles(), nil), nil
	}
	if confirmed := s.ScoreMove(b, best); confirmed != best.Score() {
		log.Error().Str("move", best.ShortDescription()).Int("generated", best.Score()).
			Int("confirmed", confirmed).Msg("score-mismatch")
		best.SetScore(confirmed)
	}
	log.Debug().Str("best", best.ShortDescription()).Int("score", best.Score()).
		Int("found", s.topGen.NumFound()).Dur("elapsed", time.Since(t0)).Msg("solved")
	return best, nil
}

// AllPlays returns every legal play for the rack, best first.
func (s *Solver) AllPlays(b *board.GameBoard, rack *tilemapping.Rack) ([]*move.Move, error) {
	if rack == nil || rack.IsEmpty() {
		return nil, ErrNoRack
	}
	s.allGen.GenAll(b, rack)
	return s.allGen.Plays(), nil
}

// LegalWords returns the distinct words formed by the plays of the last
// AllPlays call.
func (s *Solver) LegalWords() []string {
	return s.allGen.LegalWords()
}

// ScoreMove scores a play on b from scratch. b must be in its original
// orientation; vertical plays are scored on the transposed board.
func (s *Solver) ScoreMove(b *board.GameBoard, m *move.Move) int {
	if m.Action() != move.MoveTypePlay {
		return 0
	}
	start := m.Start()
	if m.Vertical() {
		b.Transpose()
		defer func() {
			b.Transpose()
			cross_set.GenerateCrossScores(b)
		}()
		start = start.Transpose()
	}
	cross_set.GenerateCrossScores(b)
	return s.scorer.Score(b, m.UserVisibleWord(), m.Tiles(), start)
}

// Play carries out a move. A play is placed on the board and its tiles
// leave the rack; an exchange goes through Exchange. If bag is not nil the
// rack is refilled from it. The tiles drawn are returned.
func (s *Solver) Play(b *board.GameBoard, rack *tilemapping.Rack, bag *tilemapping.Bag,
	m *move.Move) ([]tilemapping.Tile, error) {

	switch m.Action() {
	case move.MoveTypePass:
		return nil, nil
	case move.MoveTypeExchange:
		return s.Exchange(rack, bag, m.Tiles())
	}
	if !rack.Copy().RemoveTiles(m.Tiles()) {
		return nil, fmt.Errorf("%w: %s not in %s", ErrTilesNotOnRack, m.TilesString(), rack.String())
	}
	if err := b.PlayTiles(m.UserVisibleWord(), m.Tiles(), m.Start(), m.Vertical()); err != nil {
		return nil, err
	}
	rack.RemoveTiles(m.Tiles())
	if bag == nil {
		return nil, nil
	}
	drawn := rack.Refill(bag)
	log.Debug().Str("move", m.ShortDescription()).Str("drew", tilemapping.TilesString(drawn)).
		Int("bag", bag.TilesRemaining()).Msg("played")
	return drawn, nil
}

// Exchange throws the given tiles back into the bag and draws as many. If
// tiles is empty the whole rack is exchanged. Nothing changes if the bag
// does not hold enough tiles.
func (s *Solver) Exchange(rack *tilemapping.Rack, bag *tilemapping.Bag,
	tiles []tilemapping.Tile) ([]tilemapping.Tile, error) {

	if bag == nil {
		return nil, fmt.Errorf("%w: no bag to exchange with", tilemapping.ErrBagEmpty)
	}
	if len(tiles) == 0 {
		tiles = rack.Tiles()
	}
	if bag.TilesRemaining() < len(tiles) {
		return nil, fmt.Errorf("%w: cannot exchange %d tiles with %d in the bag",
			tilemapping.ErrBagEmpty, len(tiles), bag.TilesRemaining())
	}
	if !rack.RemoveTiles(tiles) {
		return nil, fmt.Errorf("%w: %s not in %s", ErrTilesNotOnRack,
			tilemapping.TilesString(tiles), rack.String())
	}
	drawn, err := bag.Exchange(lo.Map(tiles, func(t tilemapping.Tile, _ int) tilemapping.Tile {
		return t.Undesignated()
	}))
	if err != nil {
		lo.ForEach(tiles, func(t tilemapping.Tile, _ int) { rack.Add(t) })
		return nil, err
	}
	lo.ForEach(drawn, func(t tilemapping.Tile, _ int) { rack.Add(t) })
	return drawn, nil
}
