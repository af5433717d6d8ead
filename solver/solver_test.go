package solver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/xwordsolver/board"
	"github.com/domino14/xwordsolver/config"
	"github.com/domino14/xwordsolver/lexicon"
	"github.com/domino14/xwordsolver/move"
	"github.com/domino14/xwordsolver/testhelpers"
	"github.com/domino14/xwordsolver/tilemapping"
)

func newTestSolver(t testing.TB, typ lexicon.Type) *Solver {
	ld, err := tilemapping.ScanLetterDistribution(strings.NewReader(testhelpers.EnglishDistribution))
	require.NoError(t, err)
	lex, err := lexicon.Build("test", typ, testhelpers.Words)
	require.NoError(t, err)
	return New(lex, ld, board.StandardBoard(), 7, 50)
}

func mustRack(t testing.TB, s *Solver, letters string) *tilemapping.Rack {
	r, err := s.NewRack(letters)
	require.NoError(t, err)
	return r
}

func TestSolveOpening(t *testing.T) {
	for _, typ := range []lexicon.Type{lexicon.TypeTrie, lexicon.TypeDawg} {
		t.Run(string(typ), func(t *testing.T) {
			is := is.New(t)
			s := newTestSolver(t, typ)
			b := s.NewBoard()
			rack := mustRack(t, s, "RETAINS")
			m, err := s.Solve(b, rack)
			is.NoErr(err)
			is.Equal(m.ShortDescription(), "H2 ANESTRI")
			is.Equal(m.Score(), 66)
			is.True(b.IsEmpty())
			is.True(!b.IsTransposed())
			is.Equal(rack.NumTiles(), 7)
		})
	}
}

func TestSolveNoRack(t *testing.T) {
	is := is.New(t)
	s := newTestSolver(t, lexicon.TypeDawg)
	_, err := s.Solve(s.NewBoard(), nil)
	is.True(errors.Is(err, ErrNoRack))
	_, err = s.Solve(s.NewBoard(), tilemapping.NewRack(7))
	is.True(errors.Is(err, ErrNoRack))
	_, err = s.AllPlays(s.NewBoard(), nil)
	is.True(errors.Is(err, ErrNoRack))
}

func TestSolveNoLegalPlayExchanges(t *testing.T) {
	is := is.New(t)
	s := newTestSolver(t, lexicon.TypeDawg)
	m, err := s.Solve(s.NewBoard(), mustRack(t, s, "VVV"))
	is.NoErr(err)
	is.Equal(m.Action(), move.MoveTypeExchange)
	is.Equal(m.Score(), 0)
	is.Equal(m.TilesString(), "VVV")
}

func TestScoreMoveMatchesGenerator(t *testing.T) {
	s := newTestSolver(t, lexicon.TypeDawg)
	b := s.NewBoard()
	tiles, err := s.LetterDistribution().ToTiles("CARTS")
	require.NoError(t, err)
	require.NoError(t, b.PlayTiles("CARTS", tiles, board.Position{Row: 7, Col: 5}, false))

	plays, err := s.AllPlays(b, mustRack(t, s, "AE?NRST"))
	require.NoError(t, err)
	require.NotEmpty(t, plays)
	vertical := 0
	for _, p := range plays {
		assert.Equal(t, p.Score(), s.ScoreMove(b, p), p.ShortDescription())
		if p.Vertical() {
			vertical++
		}
	}
	assert.Positive(t, vertical)
	assert.False(t, b.IsTransposed())
	assert.NotEmpty(t, s.LegalWords())
}

func TestPlayAppliesMoveAndRefills(t *testing.T) {
	is := is.New(t)
	s := newTestSolver(t, lexicon.TypeDawg)
	b := s.NewBoard()
	bag := s.NewBag()
	rack := mustRack(t, s, "RETAINS")
	m, err := s.Solve(b, rack)
	is.NoErr(err)

	drawn, err := s.Play(b, rack, bag, m)
	is.NoErr(err)
	is.Equal(len(drawn), 7)
	is.Equal(rack.NumTiles(), 7)
	is.Equal(bag.TilesRemaining(), 93)
	is.Equal(b.GetLetter(1, 7), 'A')
	is.Equal(b.GetLetter(7, 7), 'I')
	is.Equal(len(b.TilesOnBoard()), 7)
	// The center's double word was used up.
	is.Equal(b.GetSquare(7, 7).WordMultiplier(), 1)
}

func TestPlayRejectsTilesNotOnRack(t *testing.T) {
	is := is.New(t)
	s := newTestSolver(t, lexicon.TypeDawg)
	b := s.NewBoard()
	m, err := s.Solve(b, mustRack(t, s, "CAT"))
	is.NoErr(err)

	other := mustRack(t, s, "DOG")
	_, err = s.Play(b, other, nil, m)
	is.True(errors.Is(err, ErrTilesNotOnRack))
	is.True(b.IsEmpty())
	is.Equal(other.String(), "DGO")
}

func TestPlayWithoutBag(t *testing.T) {
	is := is.New(t)
	s := newTestSolver(t, lexicon.TypeDawg)
	b := s.NewBoard()
	rack := mustRack(t, s, "CATZ")
	m, err := s.Solve(b, rack)
	is.NoErr(err)
	drawn, err := s.Play(b, rack, nil, m)
	is.NoErr(err)
	is.Equal(len(drawn), 0)
	is.Equal(rack.NumTiles(), 4-m.TilesPlayed())
}

func TestExchange(t *testing.T) {
	is := is.New(t)
	s := newTestSolver(t, lexicon.TypeDawg)
	b := s.NewBoard()
	bag := s.NewBag()
	rack := mustRack(t, s, "VVV")
	m, err := s.Solve(b, rack)
	is.NoErr(err)

	drawn, err := s.Play(b, rack, bag, m)
	is.NoErr(err)
	is.Equal(len(drawn), 3)
	is.Equal(rack.NumTiles(), 3)
	is.Equal(bag.TilesRemaining(), 100)
	is.True(b.IsEmpty())
}

func TestExchangeBagTooSmall(t *testing.T) {
	is := is.New(t)
	s := newTestSolver(t, lexicon.TypeDawg)
	bag := s.NewBag()
	_, err := bag.Draw(98)
	is.NoErr(err)
	rack := mustRack(t, s, "VVV")

	_, err = s.Exchange(rack, bag, nil)
	is.True(errors.Is(err, tilemapping.ErrBagEmpty))
	is.Equal(rack.String(), "VVV")
	is.Equal(bag.TilesRemaining(), 2)

	_, err = s.Exchange(rack, nil, nil)
	is.True(errors.Is(err, tilemapping.ErrBagEmpty))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
		return p
	}
	wordList := write("words.txt", testhelpers.WordList())
	write("letterdistributions/english.txt", testhelpers.EnglishDistribution)
	write("boards/small.txt", testhelpers.SmallLayout)

	type testCase struct {
		name    string
		lexicon string
		layout  string
		dist    string
		dim     int
		wantErr error
	}
	cases := []testCase{
		{"builtin standard layout", wordList, "standard", "english", 15, nil},
		{"layout by name", wordList, "small", "english", 5, nil},
		{"no lexicon", "", "standard", "english", 0, ErrNoLexicon},
		{"missing distribution", wordList, "standard", "klingon", 0, os.ErrNotExist},
		{"missing layout", wordList, "huge", "english", 0, os.ErrNotExist},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Set(config.ConfigDataPath, dir)
			cfg.Set(config.ConfigLexiconPath, tc.lexicon)
			cfg.Set(config.ConfigBoardLayout, tc.layout)
			cfg.Set(config.ConfigLetterDistribution, tc.dist)
			s, err := Load(context.Background(), cfg)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.dim, s.NewBoard().Dim())
			assert.Equal(t, len(testhelpers.Words), s.Lexicon().WordCount())
			assert.Equal(t, "words", s.Lexicon().Name())
			assert.Equal(t, 7, s.RackCapacity())
		})
	}
}
