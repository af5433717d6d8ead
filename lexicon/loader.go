package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
)

var ErrUnsortedWordList = errors.New("word list is not sorted")

const (
	EncodingUTF8   = "utf-8"
	EncodingLatin1 = "latin1"
)

// ReadWords reads a word list with one word per line. Only the first
// field of each line is used, so definitions may follow the word. Words
// are uppercased and deduplicated; their order is preserved.
func ReadWords(r io.Reader, encoding string) ([]string, error) {
	switch strings.ToLower(encoding) {
	case "", EncodingUTF8, "utf8":
	case EncodingLatin1, "iso-8859-1":
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	default:
		return nil, fmt.Errorf("unsupported word list encoding %q", encoding)
	}
	upper := cases.Upper(language.Und)
	seen := map[string]bool{}
	words := []string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		word := upper.String(fields[0])
		if seen[word] {
			continue
		}
		seen[word] = true
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// Build creates a lexicon of the given type. A Dawg requires sorted input;
// ErrUnsortedWordList is returned otherwise.
func Build(name string, t Type, words []string) (Lexicon, error) {
	switch t {
	case TypeTrie:
		trie := NewTrie(name)
		for _, w := range words {
			trie.Insert(w)
		}
		return trie, nil
	case TypeDawg:
		for i := 1; i < len(words); i++ {
			if words[i] < words[i-1] {
				return nil, fmt.Errorf("%w: %q comes after %q", ErrUnsortedWordList, words[i], words[i-1])
			}
		}
		b := NewDawgBuilder(name)
		for _, w := range words {
			b.Insert(w)
		}
		return b.Finish(), nil
	}
	return nil, fmt.Errorf("unknown lexicon type %q", t)
}

// Load reads a word list file and builds a lexicon from it. The lexicon is
// named after the file.
func Load(path string, t Type, encoding string) (Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	words, err := ReadWords(f, encoding)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	lex, err := Build(name, t, words)
	if err != nil {
		return nil, err
	}
	log.Info().Str("lexicon", name).Str("type", string(t)).
		Int("words", lex.WordCount()).Int("nodes", lex.NodeCount()).Msg("loaded lexicon")
	return lex, nil
}
