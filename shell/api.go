package shell

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/domino14/xwordsolver/config"
	"github.com/domino14/xwordsolver/lexicon"
	"github.com/domino14/xwordsolver/move"
	"github.com/domino14/xwordsolver/solver"
	"github.com/domino14/xwordsolver/tilemapping"
)

const defaultNumPlays = 15

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

func (sc *ShellController) loadSolver() error {
	s, err := solver.Load(context.Background(), sc.config)
	if err != nil {
		return err
	}
	sc.solver = s
	sc.resetBoard()
	return nil
}

func (sc *ShellController) resetBoard() {
	sc.board = sc.solver.NewBoard()
	sc.bag = sc.solver.NewBag()
	sc.rack = tilemapping.NewRack(sc.solver.RackCapacity())
	sc.curPlays = nil
}

func (sc *ShellController) lexicon(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return sc.lexinfo(cmd)
	}
	sc.config.Set(config.ConfigLexiconPath, cmd.args[0])
	if t, ok := cmd.options["type"]; ok {
		sc.config.Set(config.ConfigLexiconType, t)
	}
	if enc, ok := cmd.options["encoding"]; ok {
		sc.config.Set(config.ConfigLexiconEncoding, enc)
	}
	if err := sc.loadSolver(); err != nil {
		return nil, err
	}
	return sc.lexinfo(cmd)
}

func (sc *ShellController) lexinfo(cmd *shellcmd) (*Response, error) {
	if sc.solver == nil {
		return nil, errNoLexicon
	}
	lex := sc.solver.Lexicon()
	typ := lexicon.TypeDawg
	if _, ok := lex.(*lexicon.Trie); ok {
		typ = lexicon.TypeTrie
	}
	return msg(fmt.Sprintf("%s (%s): %d words, %d nodes",
		lex.Name(), typ, lex.WordCount(), lex.NodeCount())), nil
}

func (sc *ShellController) layout(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("usage: layout <name or path>")
	}
	if sc.solver == nil {
		return nil, errNoLexicon
	}
	sc.config.Set(config.ConfigBoardLayout, cmd.args[0])
	b, err := solver.LoadLayout(sc.config, sc.solver.LetterDistribution())
	if err != nil {
		return nil, err
	}
	sc.solver.SetLayout(b)
	sc.resetBoard()
	return sc.show(cmd)
}

func (sc *ShellController) newBoard(cmd *shellcmd) (*Response, error) {
	if sc.solver == nil {
		return nil, errNoLexicon
	}
	sc.resetBoard()
	return sc.show(cmd)
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if sc.solver == nil {
		return nil, errNoLexicon
	}
	return msg(fmt.Sprintf("%s\nRack: %-9s Bag: %d tiles", sc.board.ToDisplayText(),
		sc.rack.String(), sc.bag.TilesRemaining())), nil
}

func (sc *ShellController) setRack(cmd *shellcmd) (*Response, error) {
	if sc.solver == nil {
		return nil, errNoLexicon
	}
	if len(cmd.args) == 0 {
		return msg(sc.rack.String()), nil
	}
	r, err := sc.solver.NewRack(cmd.args[0])
	if err != nil {
		return nil, err
	}
	sc.rack = r
	sc.curPlays = nil
	return sc.show(cmd)
}

func (sc *ShellController) draw(cmd *shellcmd) (*Response, error) {
	if sc.solver == nil {
		return nil, errNoLexicon
	}
	drawn := sc.rack.Refill(sc.bag)
	return msg(fmt.Sprintf("Drew %s; rack is %s", tilemapping.TilesString(drawn), sc.rack.String())), nil
}

func moveTableHeader() string {
	return "     Move                 Leave    Score"
}

func MoveTableRow(idx int, m *move.Move) string {
	return fmt.Sprintf("%3d: %-21s%-9s%d", idx+1, m.ShortDescription(), m.LeaveString(), m.Score())
}

func (sc *ShellController) generate(cmd *shellcmd) (*Response, error) {
	if sc.solver == nil {
		return nil, errNoLexicon
	}
	numPlays := defaultNumPlays
	if len(cmd.args) > 0 {
		var err error
		numPlays, err = strconv.Atoi(cmd.args[0])
		if err != nil {
			return nil, err
		}
	}
	plays, err := sc.solver.AllPlays(sc.board, sc.rack)
	if err != nil {
		return nil, err
	}
	sc.curPlays = plays
	if len(plays) == 0 {
		return msg("No legal plays."), nil
	}
	var sb strings.Builder
	sb.WriteString(moveTableHeader())
	for i, p := range lo.Slice(plays, 0, numPlays) {
		sb.WriteString("\n")
		sb.WriteString(MoveTableRow(i, p))
	}
	fmt.Fprintf(&sb, "\n%d plays found", len(plays))
	return msg(sb.String()), nil
}

func (sc *ShellController) best(cmd *shellcmd) (*Response, error) {
	if sc.solver == nil {
		return nil, errNoLexicon
	}
	m, err := sc.solver.Solve(sc.board, sc.rack)
	if err != nil {
		return nil, err
	}
	sc.curPlays = []*move.Move{m}
	if m.Action() == move.MoveTypeExchange {
		return msg("No legal plays; best is " + m.ShortDescription()), nil
	}
	return msg(fmt.Sprintf("Best play: %s for %d points", m.ShortDescription(), m.Score())), nil
}

// findPlay parses either "#N", a play from the last list, or "<coords>
// <word>". Designated blanks are written in lowercase.
func (sc *ShellController) findPlay(args []string) (*move.Move, error) {
	if len(args) == 1 && strings.HasPrefix(args[0], "#") {
		idx, err := strconv.Atoi(args[0][1:])
		if err != nil {
			return nil, err
		}
		if idx < 1 || idx > len(sc.curPlays) {
			return nil, errors.New("play outside range")
		}
		return sc.curPlays[idx-1], nil
	}
	if len(args) != 2 {
		return nil, errors.New("usage: play #N or play <coords> <word>")
	}
	row, col, vertical, ok := move.FromBoardGameCoords(args[0])
	if !ok {
		return nil, fmt.Errorf("bad coordinates %v", args[0])
	}
	plays, err := sc.solver.AllPlays(sc.board, sc.rack)
	if err != nil {
		return nil, err
	}
	m, found := lo.Find(plays, func(p *move.Move) bool {
		return p.Start().Row == row && p.Start().Col == col && p.Vertical() == vertical &&
			p.UserVisibleWord() == args[1]
	})
	if !found {
		return nil, fmt.Errorf("%s %s is not a legal play for rack %s", args[0], args[1], sc.rack.String())
	}
	return m, nil
}

func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if sc.solver == nil {
		return nil, errNoLexicon
	}
	m, err := sc.findPlay(cmd.args)
	if err != nil {
		return nil, err
	}
	drawn, err := sc.solver.Play(sc.board, sc.rack, sc.bag, m)
	if err != nil {
		return nil, err
	}
	sc.curPlays = nil
	resp, err := sc.show(cmd)
	if err != nil {
		return nil, err
	}
	resp.message = fmt.Sprintf("Played %s for %d points; drew %s\n%s", m.ShortDescription(),
		m.Score(), tilemapping.TilesString(drawn), resp.message)
	return resp, nil
}

func (sc *ShellController) exchange(cmd *shellcmd) (*Response, error) {
	if sc.solver == nil {
		return nil, errNoLexicon
	}
	var tiles []tilemapping.Tile
	if len(cmd.args) > 0 {
		var err error
		tiles, err = sc.solver.LetterDistribution().ToTiles(cmd.args[0])
		if err != nil {
			return nil, err
		}
	}
	drawn, err := sc.solver.Exchange(sc.rack, sc.bag, tiles)
	if err != nil {
		return nil, err
	}
	sc.curPlays = nil
	return msg(fmt.Sprintf("Drew %s; rack is %s", tilemapping.TilesString(drawn), sc.rack.String())), nil
}

func (sc *ShellController) words(cmd *shellcmd) (*Response, error) {
	if sc.solver == nil {
		return nil, errNoLexicon
	}
	plays, err := sc.solver.AllPlays(sc.board, sc.rack)
	if err != nil {
		return nil, err
	}
	sc.curPlays = plays
	words := sc.solver.LegalWords()
	lines := lo.Map(lo.Chunk(words, 10), func(c []string, _ int) string {
		return strings.Join(c, " ")
	})
	return msg(fmt.Sprintf("%d words\n%s", len(words), strings.Join(lines, "\n"))), nil
}

func (sc *ShellController) export(cmd *shellcmd) (*Response, error) {
	if sc.solver == nil {
		return nil, errNoLexicon
	}
	return msg(sc.board.ToLayoutText() + sc.rack.String()), nil
}
