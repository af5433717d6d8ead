package board

import "fmt"

// Direction is the orientation of one position relative to another.
type Direction uint8

const (
	// Both means the two positions are the same square.
	Both Direction = iota
	Across
	Down
)

func (d Direction) String() string {
	switch d {
	case Across:
		return "across"
	case Down:
		return "down"
	}
	return "both"
}

// A Position is a (row, col) pair on the board, zero-based.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("{%d, %d}", p.Row, p.Col)
}

// Distance is the Manhattan distance between two positions.
func (p Position) Distance(o Position) int {
	return abs(p.Row-o.Row) + abs(p.Col-o.Col)
}

// DirectionTo returns Down if the rows differ, Across if only the columns
// differ, and Both if the positions are equal.
func (p Position) DirectionTo(o Position) Direction {
	if p.Row != o.Row {
		return Down
	}
	if p.Col != o.Col {
		return Across
	}
	return Both
}

// Transpose swaps the row and column.
func (p Position) Transpose() Position {
	return Position{Row: p.Col, Col: p.Row}
}

// Less orders positions row-major.
func (p Position) Less(o Position) bool {
	if p.Row != o.Row {
		return p.Row < o.Row
	}
	return p.Col < o.Col
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
