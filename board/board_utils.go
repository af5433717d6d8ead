package board

import (
	"fmt"
	"strconv"
	"strings"
)

// ToDisplayText renders the board with column letters and row numbers.
// A transposed board is displayed in its original orientation.
func (g *GameBoard) ToDisplayText() string {
	if g.transposed {
		g.Transpose()
		defer g.Transpose()
	}
	var str string
	n := g.Dim()
	row := "   "
	for i := 0; i < n; i++ {
		row = row + fmt.Sprintf("%c", 'A'+i) + " "
	}
	str = str + row + "\n"
	str = str + "   " + strings.Repeat("-", n*2) + "\n"
	for i := 0; i < n; i++ {
		row := fmt.Sprintf("%2d|", i+1)
		for j := 0; j < n; j++ {
			row = row + g.squares[i][j].DisplayString() + " "
		}
		row = row + "|"
		str = str + row + "\n"
	}
	str = str + "   " + strings.Repeat("-", n*2) + "\n"
	return "\n" + str
}

// ToLayoutText writes the board back out in the layout format read by
// ScanLayout.
func (g *GameBoard) ToLayoutText() string {
	if g.transposed {
		g.Transpose()
		defer g.Transpose()
	}
	var sb strings.Builder
	n := g.Dim()
	sb.WriteString(strconv.Itoa(n))
	sb.WriteByte('\n')
	for i := 0; i < n; i++ {
		toks := make([]string, n)
		for j := 0; j < n; j++ {
			sq := g.squares[i][j]
			switch {
			case sq.filled:
				toks[j] = string(sq.tile.UserVisible())
			case sq.wordMult > 1:
				toks[j] = "." + strconv.Itoa(sq.wordMult)
			case sq.letterMult > 1:
				toks[j] = strconv.Itoa(sq.letterMult) + "."
			default:
				toks[j] = ".."
			}
		}
		sb.WriteString(strings.Join(toks, " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}
