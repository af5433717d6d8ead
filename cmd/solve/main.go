// solve reads boards and racks from stdin and prints the best play for
// each. The input is a board in layout format followed by a line with the
// rack, repeated until EOF. The word list is the first argument or the
// lexicon-path setting.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/domino14/xwordsolver/board"
	"github.com/domino14/xwordsolver/config"
	"github.com/domino14/xwordsolver/move"
	"github.com/domino14/xwordsolver/solver"
)

type result struct {
	Move      move.Summary `yaml:"move"`
	Rack      string       `yaml:"rack"`
	ElapsedMs int64        `yaml:"elapsed_ms"`
}

func main() {
	ex, err := os.Executable()
	if err != nil {
		panic(err)
	}
	cfg := config.DefaultConfig()
	args, err := cfg.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg.AdjustRelativePaths(filepath.Dir(ex))
	if len(args) > 0 {
		cfg.Set(config.ConfigLexiconPath, args[0])
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()

	s, err := solver.Load(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load solver")
	}
	format := cfg.GetString(config.ConfigOutputFormat)
	if err := run(s, os.Stdin, os.Stdout, format); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}

// run solves every board and rack pair in r until EOF.
func run(s *solver.Solver, r io.Reader, w io.Writer, format string) error {
	sc := bufio.NewScanner(r)
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	for {
		b, err := board.ReadLayout(sc, s.LetterDistribution())
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if !sc.Scan() {
			return fmt.Errorf("expected a rack after the board: %w", io.ErrUnexpectedEOF)
		}
		rack, err := s.NewRack(strings.ToUpper(strings.TrimSpace(sc.Text())))
		if err != nil {
			return err
		}
		t0 := time.Now()
		m, err := s.Solve(b, rack)
		if err != nil {
			return err
		}
		elapsed := time.Since(t0)

		switch format {
		case "yaml":
			if err := enc.Encode(result{Move: m.Summary(), Rack: rack.String(),
				ElapsedMs: elapsed.Milliseconds()}); err != nil {
				return err
			}
		default:
			if m.Action() == move.MoveTypePlay {
				if _, err := s.Play(b, rack, nil, m); err != nil {
					return err
				}
			}
			fmt.Fprintln(w, b.ToDisplayText())
			fmt.Fprintf(w, "Word score: %d\n", m.Score())
			fmt.Fprintf(w, "Word played: %s\n", m.ShortDescription())
			fmt.Fprintf(w, "Time to find move: %dms\n", elapsed.Milliseconds())
		}
	}
}
