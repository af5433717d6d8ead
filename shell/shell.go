package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/xwordsolver/board"
	"github.com/domino14/xwordsolver/config"
	"github.com/domino14/xwordsolver/move"
	"github.com/domino14/xwordsolver/solver"
	"github.com/domino14/xwordsolver/tilemapping"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errNoLexicon         = errors.New("please load a lexicon first with the `lexicon` command")
	errQuit              = errors.New("sending quit signal")
)

type ShellController struct {
	l      *readline.Instance
	out    io.Writer
	config *config.Config

	solver   *solver.Solver
	board    *board.GameBoard
	rack     *tilemapping.Rack
	bag      *tilemapping.Bag
	curPlays []*move.Move
}

type shellcmd struct {
	cmd     string
	args    []string
	options map[string]string
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config) *ShellController {
	prompt := "xwordsolver>"
	if os.Getenv("XWORDSOLVER_DISABLE_COLOR") == "" {
		prompt = "\033[31m" + prompt + "\033[0m"
	}
	sc := &ShellController{config: cfg}
	l, err := readline.NewEx(&readline.Config{
		Prompt:          prompt + " ",
		HistoryFile:     "/tmp/xwordsolver_readline.tmp",
		AutoComplete:    NewShellCompleter(sc),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc.l = l
	sc.out = l.Stderr()
	if cfg.GetString(config.ConfigLexiconPath) != "" {
		if err := sc.loadSolver(); err != nil {
			log.Error().Err(err).Msg("could not load lexicon")
		}
	}
	return sc
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// extractFields splits a line into a command, its arguments and its
// -options. Every option takes exactly one value.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := map[string]string{}
	for i := 1; i < len(fields); i++ {
		if strings.HasPrefix(fields[i], "-") && len(fields[i]) > 1 {
			if i == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			options[fields[i][1:]] = fields[i+1]
			i++
			continue
		}
		args = append(args, fields[i])
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

func (sc *ShellController) dispatch(cmd *shellcmd) (*Response, error) {
	switch cmd.cmd {
	case "exit", "bye":
		return nil, errQuit
	case "help":
		return sc.help(cmd)
	case "lexicon":
		return sc.lexicon(cmd)
	case "layout":
		return sc.layout(cmd)
	case "new":
		return sc.newBoard(cmd)
	case "s", "show":
		return sc.show(cmd)
	case "rack":
		return sc.setRack(cmd)
	case "draw":
		return sc.draw(cmd)
	case "gen":
		return sc.generate(cmd)
	case "best":
		return sc.best(cmd)
	case "play":
		return sc.play(cmd)
	case "exchange":
		return sc.exchange(cmd)
	case "words":
		return sc.words(cmd)
	case "lexinfo":
		return sc.lexinfo(cmd)
	case "export":
		return sc.export(cmd)
	}
	log.Debug().Msgf("you said: %v", strconv.Quote(cmd.cmd))
	return nil, fmt.Errorf("command %v not found", strconv.Quote(cmd.cmd))
}

// Execute runs a single command line. It is used for commands passed on
// the command line instead of the REPL.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	if sc.out == nil {
		sc.out = os.Stdout
	}
	if err := sc.executeLine(line); err != nil {
		if errors.Is(err, errQuit) {
			sig <- syscall.SIGINT
			return
		}
		sc.showError(err)
	}
}

func (sc *ShellController) executeLine(line string) error {
	cmd, err := extractFields(line)
	if err != nil {
		return err
	}
	resp, err := sc.dispatch(cmd)
	if err != nil {
		return err
	}
	if resp != nil && resp.message != "" {
		sc.showMessage(resp.message)
	}
	return nil
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		err = sc.executeLine(line)
		if errors.Is(err, errQuit) {
			sig <- syscall.SIGINT
			break
		}
		if err != nil {
			sc.showError(err)
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}
