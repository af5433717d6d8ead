package board

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/xwordsolver/tilemapping"
)

var ErrMalformedLayout = errors.New("malformed board layout")

// StandardLayout is the classic 15x15 crossword game board.
const StandardLayout = `15
.3 .. .. 2. .. .. .. .3 .. .. .. 2. .. .. .3
.. .2 .. .. .. 3. .. .. .. 3. .. .. .. .2 ..
.. .. .2 .. .. .. 2. .. 2. .. .. .. .2 .. ..
2. .. .. .2 .. .. .. 2. .. .. .. .2 .. .. 2.
.. .. .. .. .2 .. .. .. .. .. .2 .. .. .. ..
.. 3. .. .. .. 3. .. .. .. 3. .. .. .. 3. ..
.. .. 2. .. .. .. 2. .. 2. .. .. .. 2. .. ..
.3 .. .. 2. .. .. .. .2 .. .. .. 2. .. .. .3
.. .. 2. .. .. .. 2. .. 2. .. .. .. 2. .. ..
.. 3. .. .. .. 3. .. .. .. 3. .. .. .. 3. ..
.. .. .. .. .2 .. .. .. .. .. .2 .. .. .. ..
2. .. .. .2 .. .. .. 2. .. .. .. .2 .. .. 2.
.. .. .2 .. .. .. 2. .. 2. .. .. .. .2 .. ..
.. .2 .. .. .. 3. .. .. .. 3. .. .. .. .2 ..
.3 .. .. 2. .. .. .. .3 .. .. .. 2. .. .. .3
`

// ScanLayout reads a board in layout format: a line with the board size N
// followed by N lines of N space-separated squares. A square is `..` for a
// plain square, a digit and a dot (`2.`) for a letter multiplier, a dot and
// a digit (`.3`) for a word multiplier, or a single letter for a tile that
// is already on the board. A lowercase letter is a designated blank.
func ScanLayout(r io.Reader, ld *tilemapping.LetterDistribution) (*GameBoard, error) {
	g, err := ReadLayout(bufio.NewScanner(r), ld)
	if err == io.EOF {
		return nil, fmt.Errorf("%w: missing board size", ErrMalformedLayout)
	}
	return g, err
}

// ReadLayout reads a single board from sc, consuming exactly the lines that
// make up the board (plus any blank lines before the size). It returns
// io.EOF if sc has nothing left but blank lines.
func ReadLayout(sc *bufio.Scanner, ld *tilemapping.LetterDistribution) (*GameBoard, error) {
	var header string
	for sc.Scan() {
		header = strings.TrimSpace(sc.Text())
		if header != "" {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if header == "" {
		return nil, io.EOF
	}
	n, err := strconv.Atoi(header)
	if err != nil || n < 1 {
		return nil, fmt.Errorf("%w: bad board size %q", ErrMalformedLayout, header)
	}
	g := NewBoard(n)
	for row := 0; row < n; row++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrMalformedLayout, n, row)
		}
		tokens := strings.Fields(sc.Text())
		if len(tokens) != n {
			return nil, fmt.Errorf("%w: row %d has %d squares, want %d",
				ErrMalformedLayout, row+1, len(tokens), n)
		}
		for col, tok := range tokens {
			if err := g.parseSquare(row, col, tok, ld); err != nil {
				return nil, fmt.Errorf("%w: row %d col %d: %v", ErrMalformedLayout, row+1, col+1, err)
			}
		}
	}
	log.Debug().Int("dim", n).Bool("empty", g.IsEmpty()).Msg("loaded board layout")
	return g, nil
}

func (g *GameBoard) parseSquare(row, col int, tok string, ld *tilemapping.LetterDistribution) error {
	switch len(tok) {
	case 1:
		r := rune(tok[0])
		switch {
		case tilemapping.IsLetter(r):
			if !ld.HasLetter(r) {
				return fmt.Errorf("letter %c is not in the distribution", r)
			}
			g.SetTile(row, col, ld.TileFor(r))
		case r >= 'a' && r <= 'z':
			g.SetTile(row, col, tilemapping.BlankTile().Designate(r))
		default:
			return fmt.Errorf("bad tile %q", tok)
		}
	case 2:
		sq := g.squares[row][col]
		switch {
		case tok == "..":
		case tok[1] == '.' && tok[0] >= '1' && tok[0] <= '9':
			sq.letterMult = int(tok[0] - '0')
		case tok[0] == '.' && tok[1] >= '1' && tok[1] <= '9':
			sq.wordMult = int(tok[1] - '0')
		default:
			return fmt.Errorf("bad square %q", tok)
		}
	default:
		return fmt.Errorf("bad square %q", tok)
	}
	return nil
}

// LoadLayout loads a board layout file.
func LoadLayout(path string, ld *tilemapping.LetterDistribution) (*GameBoard, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ScanLayout(f, ld)
}

// StandardBoard creates an empty board with the StandardLayout.
func StandardBoard() *GameBoard {
	g, err := ScanLayout(strings.NewReader(StandardLayout), nil)
	if err != nil {
		panic(err)
	}
	return g
}
