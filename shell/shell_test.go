package shell

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/xwordsolver/config"
	"github.com/domino14/xwordsolver/testhelpers"
)

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"lexicon -type trie",
			&shellcmd{"lexicon", nil, map[string]string{"type": "trie"}},
			nil},
		{"gen 10",
			&shellcmd{"gen", []string{"10"}, map[string]string{}},
			nil},
		{"lexicon '/path/with space/words.txt' -type dawg -encoding latin1 ",
			&shellcmd{"lexicon",
				[]string{"/path/with space/words.txt"},
				map[string]string{"type": "dawg", "encoding": "latin1"}},
			nil,
		},
		{"lexicon words.txt -type",
			nil, errWrongOptionSyntax},
	}
	for _, t := range cases {
		cmd, err := extractFields(t.line)
		is.Equal(cmd, t.expCmd)
		is.Equal(err, t.expErr)
	}
}

func testController(t *testing.T) (*ShellController, *bytes.Buffer) {
	dir := t.TempDir()
	wordList := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(wordList, []byte(testhelpers.WordList()), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "letterdistributions"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "letterdistributions", "english.txt"),
		[]byte(testhelpers.EnglishDistribution), 0o644))

	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigDataPath, dir)
	cfg.Set(config.ConfigLexiconPath, wordList)
	buf := &bytes.Buffer{}
	sc := &ShellController{config: cfg, out: buf}
	require.NoError(t, sc.loadSolver())
	return sc, buf
}

func TestSolveSession(t *testing.T) {
	sc, buf := testController(t)

	require.NoError(t, sc.executeLine("lexinfo"))
	assert.Contains(t, buf.String(), "words (dawg): ")

	require.NoError(t, sc.executeLine("rack RETAINS"))
	require.NoError(t, sc.executeLine("best"))
	assert.Contains(t, buf.String(), "Best play: H2 ANESTRI for 66 points")

	buf.Reset()
	require.NoError(t, sc.executeLine("gen 3"))
	assert.Contains(t, buf.String(), "  1: H2 ANESTRI")
	assert.NotEmpty(t, sc.curPlays)

	buf.Reset()
	require.NoError(t, sc.executeLine("play #1"))
	assert.Contains(t, buf.String(), "Played H2 ANESTRI for 66 points")
	assert.Equal(t, 7, len(sc.board.TilesOnBoard()))
	assert.Equal(t, 7, sc.rack.NumTiles())
	assert.Equal(t, 93, sc.bag.TilesRemaining())
	assert.Nil(t, sc.curPlays)
}

func TestPlayByCoords(t *testing.T) {
	sc, buf := testController(t)
	require.NoError(t, sc.executeLine("rack CAT"))

	err := sc.executeLine("play 8H DOG")
	assert.ErrorContains(t, err, "not a legal play")
	assert.Empty(t, sc.board.TilesOnBoard())

	require.NoError(t, sc.executeLine("play h6 ACT"))
	assert.Contains(t, buf.String(), "Played H6 ACT for 10 points")
	assert.Equal(t, 'A', sc.board.GetLetter(5, 7))
	assert.Equal(t, 'T', sc.board.GetLetter(7, 7))
}

func TestExchangeAndWords(t *testing.T) {
	sc, buf := testController(t)
	require.NoError(t, sc.executeLine("rack VVV"))
	require.NoError(t, sc.executeLine("words"))
	assert.Contains(t, buf.String(), "0 words")

	require.NoError(t, sc.executeLine("exchange"))
	assert.Equal(t, 3, sc.rack.NumTiles())
	assert.Equal(t, 100, sc.bag.TilesRemaining())

	buf.Reset()
	require.NoError(t, sc.executeLine("rack CAT"))
	require.NoError(t, sc.executeLine("words"))
	assert.Contains(t, buf.String(), "4 words\nACT AT CAT TA")
}

func TestCommandsNeedLexicon(t *testing.T) {
	is := is.New(t)
	sc := &ShellController{config: config.DefaultConfig(), out: &bytes.Buffer{}}
	for _, line := range []string{"best", "gen", "rack AEI", "s", "lexinfo"} {
		is.Equal(sc.executeLine(line), errNoLexicon)
	}
	is.Equal(sc.executeLine("exit"), errQuit)
	is.True(sc.executeLine("frobnicate") != nil)
	is.NoErr(sc.executeLine("help play"))
}

func TestCompleter(t *testing.T) {
	is := is.New(t)
	c := NewShellCompleter(&ShellController{})
	type testCase struct {
		line    string
		matches []string
		length  int
	}
	cases := []testCase{
		{"lex", []string{"icon", "info"}, 3},
		{"lexicon -type ", []string{"dawg", "trie"}, 0},
		{"lexicon -t", []string{"ype"}, 2},
		{"help ex", []string{"change", "port", "it"}, 2},
	}
	for _, tc := range cases {
		matches, length := c.Do([]rune(tc.line), len(tc.line))
		got := make([]string, len(matches))
		for i, m := range matches {
			got[i] = string(m)
		}
		is.Equal(got, tc.matches)
		is.Equal(length, tc.length)
	}
}
