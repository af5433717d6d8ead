package board

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/xwordsolver/tilemapping"
)

var ErrMoveMismatch = errors.New("move does not match the board")

// A GameBoard is the main board structure. It contains all of the Squares,
// with bonuses or filled letters, and the cross sums computed for the
// current orientation. (See Appel & Jacobson paper for the definition of
// cross-checks.)
type GameBoard struct {
	squares    [][]*Square
	transposed bool
	hasTiles   bool // has at least one tile been played?
	// crossSums holds, for each empty square with a perpendicular word
	// through it, the face value of that word's fixed tiles. Keys are in
	// the current orientation.
	crossSums map[Position]int
}

// NewBoard creates an n by n board with no premium squares.
func NewBoard(n int) *GameBoard {
	rows := make([][]*Square, n)
	for i := range rows {
		rows[i] = make([]*Square, n)
		for j := range rows[i] {
			rows[i][j] = newSquare(1, 1)
		}
	}
	return &GameBoard{squares: rows, crossSums: map[Position]int{}}
}

// Dim is the dimension of the board. It assumes the board is square.
func (g *GameBoard) Dim() int {
	return len(g.squares)
}

// Center is the center square, where the first play must go.
func (g *GameBoard) Center() Position {
	c := g.Dim() / 2
	return Position{c, c}
}

func (g *GameBoard) GetSquare(row int, col int) *Square {
	return g.squares[row][col]
}

func (g *GameBoard) posExists(row int, col int) bool {
	d := g.Dim()
	return row >= 0 && row < d && col >= 0 && col < d
}

// InBounds returns whether p is on the board.
func (g *GameBoard) InBounds(p Position) bool {
	return g.posExists(p.Row, p.Col)
}

// HasTile returns whether the square at row, col is on the board and
// filled.
func (g *GameBoard) HasTile(row int, col int) bool {
	return g.posExists(row, col) && g.squares[row][col].filled
}

// GetLetter returns the letter at row, col, or 0 if the square is empty.
func (g *GameBoard) GetLetter(row int, col int) rune {
	return g.squares[row][col].Letter()
}

// SetTile permanently places a tile, consuming the square's multipliers.
func (g *GameBoard) SetTile(row int, col int, t tilemapping.Tile) {
	g.squares[row][col].place(t)
	g.hasTiles = true
}

// IsEmpty returns if the board is empty.
func (g *GameBoard) IsEmpty() bool {
	return !g.hasTiles
}

// Transpose transposes the board, swapping rows and columns. Cross sums
// move along with their squares.
func (g *GameBoard) Transpose() {
	n := g.Dim()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.squares[i][j], g.squares[j][i] = g.squares[j][i], g.squares[i][j]
		}
	}
	if len(g.crossSums) > 0 {
		t := make(map[Position]int, len(g.crossSums))
		for p, v := range g.crossSums {
			t[p.Transpose()] = v
		}
		g.crossSums = t
	}
	g.transposed = !g.transposed
}

func (g *GameBoard) IsTransposed() bool {
	return g.transposed
}

// Anchors returns every square a new play may be anchored on, in row-major
// order. On an empty board that is only the center square; otherwise it is
// every empty square with at least one filled neighbor.
func (g *GameBoard) Anchors() []Position {
	if !g.hasTiles {
		return []Position{g.Center()}
	}
	var anchors []Position
	n := g.Dim()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if g.isAnchor(i, j) {
				anchors = append(anchors, Position{i, j})
			}
		}
	}
	return anchors
}

// IsAnchor returns whether the row/col pair is an anchor. Anchors do not
// depend on the orientation of the board.
func (g *GameBoard) IsAnchor(row int, col int) bool {
	if !g.posExists(row, col) {
		return false
	}
	if !g.hasTiles {
		c := g.Center()
		return row == c.Row && col == c.Col
	}
	return g.isAnchor(row, col)
}

func (g *GameBoard) isAnchor(row, col int) bool {
	if g.squares[row][col].filled {
		return false
	}
	return g.HasTile(row-1, col) || g.HasTile(row+1, col) ||
		g.HasTile(row, col-1) || g.HasTile(row, col+1)
}

// SetCrossSums replaces the cross sums for the current orientation.
func (g *GameBoard) SetCrossSums(sums map[Position]int) {
	if sums == nil {
		sums = map[Position]int{}
	}
	g.crossSums = sums
}

// CrossSum returns the face value of the perpendicular word through p, and
// whether there is one.
func (g *GameBoard) CrossSum(p Position) (int, bool) {
	v, ok := g.crossSums[p]
	return v, ok
}

// ClearCrossSums forgets all cross sums. They are stale after any change
// to the tiles on the board.
func (g *GameBoard) ClearCrossSums() {
	clear(g.crossSums)
}

// WordEdge returns the column of the last filled square of the run of
// tiles that starts at (row, col) and extends in direction step (-1 for
// left, 1 for right).
func (g *GameBoard) WordEdge(row int, col int, step int) int {
	for g.HasTile(row, col) {
		col += step
	}
	return col - step
}

// PlayTiles places a word on the board. word is the full word including
// letters already on the board, and tiles are the rack tiles in play order
// (blanks designated). start is given in the board's current orientation.
// Nothing is changed unless the whole word fits the board.
func (g *GameBoard) PlayTiles(word string, tiles []tilemapping.Tile, start Position, vertical bool) error {
	letters := []rune(word)
	dr, dc := 0, 1
	if vertical {
		dr, dc = 1, 0
	}
	end := Position{start.Row + dr*(len(letters)-1), start.Col + dc*(len(letters)-1)}
	if len(letters) == 0 || !g.InBounds(start) || !g.InBounds(end) {
		return fmt.Errorf("%w: %s at %v does not fit", ErrMoveMismatch, word, start)
	}
	type placement struct {
		row, col int
		tile     tilemapping.Tile
	}
	var placements []placement
	ti := 0
	for i, l := range letters {
		row, col := start.Row+dr*i, start.Col+dc*i
		want := tilemapping.Normalize(l)
		sq := g.squares[row][col]
		if sq.filled {
			if sq.Letter() != want {
				return fmt.Errorf("%w: %c at %v, word has %c", ErrMoveMismatch,
					sq.Letter(), Position{row, col}, want)
			}
			continue
		}
		if ti >= len(tiles) {
			return fmt.Errorf("%w: not enough tiles for %s", ErrMoveMismatch, word)
		}
		t := tiles[ti]
		ti++
		if t.Letter() != want {
			return fmt.Errorf("%w: tile %v does not match %c", ErrMoveMismatch, t, want)
		}
		placements = append(placements, placement{row, col, t})
	}
	if ti != len(tiles) {
		return fmt.Errorf("%w: %d unused tiles", ErrMoveMismatch, len(tiles)-ti)
	}
	if len(placements) == 0 {
		return fmt.Errorf("%w: %s places no tiles", ErrMoveMismatch, word)
	}
	for _, p := range placements {
		g.SetTile(p.row, p.col, p.tile)
	}
	log.Debug().Str("word", word).Int("tiles", len(tiles)).Msg("placed tiles")
	return nil
}

// Copy returns a deep copy of this board.
func (g *GameBoard) Copy() *GameBoard {
	n := g.Dim()
	c := &GameBoard{
		squares:    make([][]*Square, n),
		transposed: g.transposed,
		hasTiles:   g.hasTiles,
		crossSums:  make(map[Position]int, len(g.crossSums)),
	}
	for i := range g.squares {
		c.squares[i] = make([]*Square, n)
		for j, sq := range g.squares[i] {
			cp := *sq
			c.squares[i][j] = &cp
		}
	}
	for p, v := range g.crossSums {
		c.crossSums[p] = v
	}
	return c
}

// Equals checks the boards for equality. Two boards are equal if they have
// the same orientation and all the squares are equal.
func (g *GameBoard) Equals(g2 *GameBoard) bool {
	if g.Dim() != g2.Dim() {
		log.Debug().Msgf("Dims don't match: %v %v", g.Dim(), g2.Dim())
		return false
	}
	if g.transposed != g2.transposed || g.hasTiles != g2.hasTiles {
		log.Debug().Msg("orientation or emptiness doesn't match")
		return false
	}
	for row := 0; row < g.Dim(); row++ {
		for col := 0; col < g.Dim(); col++ {
			if !g.squares[row][col].equals(g2.squares[row][col]) {
				log.Debug().Msgf("> Not equal, row %v col %v", row, col)
				return false
			}
		}
	}
	return true
}

// TilesOnBoard returns every filled position in row-major order.
func (g *GameBoard) TilesOnBoard() []Position {
	var ps []Position
	for i := range g.squares {
		for j, sq := range g.squares[i] {
			if sq.filled {
				ps = append(ps, Position{i, j})
			}
		}
	}
	return ps
}
