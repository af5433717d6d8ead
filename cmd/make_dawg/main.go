// make_dawg builds both a trie and a DAWG from a word list and reports how
// many nodes each one needs.
package main

import (
	"flag"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/xwordsolver/lexicon"
)

func main() {
	filename := flag.String("filename", "", "filename of the word list")
	encoding := flag.String("encoding", lexicon.EncodingUTF8, "word list encoding: utf-8 or latin1")
	flag.Parse()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *filename == "" {
		fmt.Fprintln(os.Stderr, "usage: make_dawg -filename <word list>")
		os.Exit(2)
	}
	f, err := os.Open(*filename)
	if err != nil {
		log.Fatal().Err(err).Msg("")
	}
	words, err := lexicon.ReadWords(f, *encoding)
	f.Close()
	if err != nil {
		log.Fatal().Err(err).Msg("")
	}
	// A DAWG is built from sorted input.
	slices.Sort(words)

	for _, t := range []lexicon.Type{lexicon.TypeTrie, lexicon.TypeDawg} {
		t0 := time.Now()
		lex, err := lexicon.Build(*filename, t, words)
		if err != nil {
			log.Fatal().Err(err).Msg("")
		}
		fmt.Printf("%-5s %8d words %9d nodes  built in %v\n", t, lex.WordCount(), lex.NodeCount(),
			time.Since(t0).Round(time.Millisecond))
	}
}
