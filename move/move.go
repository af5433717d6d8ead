package move

import (
	"cmp"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/domino14/xwordsolver/board"
	"github.com/domino14/xwordsolver/tilemapping"
)

// MoveType is a type of move; a play, an exchange or a pass.
type MoveType uint8

const (
	MoveTypePlay MoveType = iota
	MoveTypeExchange
	MoveTypePass
)

// Move is a candidate move. A play has a word, the rack tiles it uses in
// play order, a start and end position and a score. Positions are always
// in the board's original (untransposed) orientation.
type Move struct {
	action MoveType
	score  int
	// word is user-visible: designated blanks are lowercase.
	word     string
	tiles    []tilemapping.Tile
	leave    []tilemapping.Tile
	start    board.Position
	end      board.Position
	vertical bool
	coords   string
}

var reVertical, reHorizontal *regexp.Regexp

func init() {
	reVertical = regexp.MustCompile(`^(?P<col>[A-Z])(?P<row>[0-9]+)$`)
	reHorizontal = regexp.MustCompile(`^(?P<row>[0-9]+)(?P<col>[A-Z])$`)
}

// NewScoringMove creates a play. word is the whole word formed along the
// play's direction, including tiles already on the board.
func NewScoringMove(score int, word string, tiles, leave []tilemapping.Tile,
	start board.Position, vertical bool) *Move {

	n := len([]rune(word))
	end := board.Position{Row: start.Row, Col: start.Col + n - 1}
	if vertical {
		end = board.Position{Row: start.Row + n - 1, Col: start.Col}
	}
	return &Move{
		action:   MoveTypePlay,
		score:    score,
		word:     word,
		tiles:    tiles,
		leave:    leave,
		start:    start,
		end:      end,
		vertical: vertical,
		coords:   ToBoardGameCoords(start.Row, start.Col, vertical),
	}
}

// NewExchangeMove creates an exchange of the given tiles.
func NewExchangeMove(tiles, leave []tilemapping.Tile) *Move {
	return &Move{
		action: MoveTypeExchange,
		tiles:  tiles,
		leave:  leave,
	}
}

// NewPassMove creates a pass with the given leave.
func NewPassMove(leave []tilemapping.Tile) *Move {
	return &Move{
		action: MoveTypePass,
		leave:  leave,
	}
}

// String provides a string just for debugging purposes.
func (m *Move) String() string {
	switch m.action {
	case MoveTypePlay:
		return fmt.Sprintf("<action: play word: %v %v score: %v tp: %v leave: %v>",
			m.coords, m.word, m.score, len(m.tiles), m.LeaveString())
	case MoveTypeExchange:
		return fmt.Sprintf("<action: exchange %v leave: %v>", m.TilesString(), m.LeaveString())
	case MoveTypePass:
		return fmt.Sprintf("<action: pass leave: %v>", m.LeaveString())
	}
	return "<Unhandled move>"
}

func (m *Move) MoveTypeString() string {
	switch m.action {
	case MoveTypePlay:
		return "Play"
	case MoveTypePass:
		return "Pass"
	case MoveTypeExchange:
		return "Exchange"
	}
	return "UNHANDLED"
}

// ShortDescription provides a short description, useful for logging or
// user display.
func (m *Move) ShortDescription() string {
	switch m.action {
	case MoveTypePlay:
		return fmt.Sprintf("%v %v", m.coords, m.word)
	case MoveTypePass:
		return "(Pass)"
	case MoveTypeExchange:
		return fmt.Sprintf("(exch %v)", m.TilesString())
	}
	return "UNHANDLED"
}

func (m *Move) Action() MoveType {
	return m.action
}

func (m *Move) Score() int {
	return m.score
}

func (m *Move) SetScore(s int) {
	m.score = s
}

// Word is the uppercase word formed by the play.
func (m *Move) Word() string {
	return strings.ToUpper(m.word)
}

// UserVisibleWord is the word with designated blanks in lowercase.
func (m *Move) UserVisibleWord() string {
	return m.word
}

// Tiles are the rack tiles used by a play, in play order, or the tiles
// thrown back by an exchange.
func (m *Move) Tiles() []tilemapping.Tile {
	return m.tiles
}

func (m *Move) TilesString() string {
	return tilemapping.TilesString(m.tiles)
}

func (m *Move) Leave() []tilemapping.Tile {
	return m.leave
}

func (m *Move) LeaveString() string {
	ts := make([]tilemapping.Tile, len(m.leave))
	copy(ts, m.leave)
	tilemapping.SortTiles(ts)
	return tilemapping.TilesString(ts)
}

// TilesPlayed returns the number of tiles played by this move.
func (m *Move) TilesPlayed() int {
	if m.action != MoveTypePlay {
		return 0
	}
	return len(m.tiles)
}

func (m *Move) Start() board.Position {
	return m.start
}

func (m *Move) End() board.Position {
	return m.end
}

func (m *Move) Vertical() bool {
	return m.vertical
}

func (m *Move) CoordsAndVertical() (int, int, bool) {
	return m.start.Row, m.start.Col, m.vertical
}

func (m *Move) BoardCoords() string {
	return m.coords
}

// Covers returns whether the play's span includes p.
func (m *Move) Covers(p board.Position) bool {
	if m.action != MoveTypePlay {
		return false
	}
	if m.vertical {
		return p.Col == m.start.Col && p.Row >= m.start.Row && p.Row <= m.end.Row
	}
	return p.Row == m.start.Row && p.Col >= m.start.Col && p.Col <= m.end.Col
}

// Equals compares the action, placement, word and tiles of two moves.
func (m *Move) Equals(o *Move) bool {
	if m.action != o.action || m.score != o.score || m.word != o.word ||
		m.start != o.start || m.vertical != o.vertical || len(m.tiles) != len(o.tiles) {
		return false
	}
	for i := range m.tiles {
		if m.tiles[i] != o.tiles[i] {
			return false
		}
	}
	return true
}

// Compare orders moves best first: higher score, then word, then start row,
// then start column, then horizontal before vertical.
func Compare(a, b *Move) int {
	if c := cmp.Compare(b.score, a.score); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Word(), b.Word()); c != 0 {
		return c
	}
	if c := cmp.Compare(a.word, b.word); c != 0 {
		return c
	}
	if c := cmp.Compare(a.start.Row, b.start.Row); c != 0 {
		return c
	}
	if c := cmp.Compare(a.start.Col, b.start.Col); c != 0 {
		return c
	}
	switch {
	case a.vertical == b.vertical:
		return 0
	case !a.vertical:
		return -1
	}
	return 1
}

// ToBoardGameCoords converts the row, col, and orientation of the play to
// a coordinate like 5F or G4.
func ToBoardGameCoords(row int, col int, vertical bool) string {
	colCoords := string(rune('A' + col))
	rowCoords := strconv.Itoa(int(row + 1))
	var coords string
	if vertical {
		coords = colCoords + rowCoords
	} else {
		coords = rowCoords + colCoords
	}
	return coords
}

// FromBoardGameCoords does the inverse operation of ToBoardGameCoords above.
// ok is false if c is not a coordinate.
func FromBoardGameCoords(c string) (row int, col int, vertical bool, ok bool) {
	c = strings.ToUpper(c)
	vMatches := reVertical.FindStringSubmatch(c)
	if len(vMatches) == 3 {
		row, _ = strconv.Atoi(vMatches[2])
		col = int(vMatches[1][0] - 'A')
		return row - 1, col, true, row > 0
	}
	hMatches := reHorizontal.FindStringSubmatch(c)
	if len(hMatches) == 3 {
		row, _ = strconv.Atoi(hMatches[1])
		col = int(hMatches[2][0] - 'A')
		return row - 1, col, false, row > 0
	}
	return 0, 0, false, false
}
