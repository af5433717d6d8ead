package tilemapping

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

var ErrMalformedDistribution = errors.New("malformed letter distribution")

// LetterDistribution encodes the tile values and counts for the relevant
// game. Blanks are stored separately and are always worth zero.
type LetterDistribution struct {
	values    map[rune]int
	counts    map[rune]int
	numBlanks int
	numTiles  int
}

// ScanLetterDistribution reads a distribution in the format
//
//	VALUE:{COUNT:LETTER,LETTER,...} {COUNT:LETTER,...} ...
//
// one line per point value. A space after the value's colon is allowed.
// `*` or `?` stands for the blank.
func ScanLetterDistribution(data io.Reader) (*LetterDistribution, error) {
	ld := &LetterDistribution{
		values: map[rune]int{},
		counts: map[rune]int{},
	}
	scanner := bufio.NewScanner(data)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := ld.parseLine(line); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedDistribution, lineNum, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(ld.values) == 0 {
		return nil, fmt.Errorf("%w: no letters defined", ErrMalformedDistribution)
	}
	log.Debug().Int("letters", len(ld.values)).Int("tiles", ld.numTiles).
		Int("blanks", ld.numBlanks).Msg("loaded letter distribution")
	return ld, nil
}

func (ld *LetterDistribution) parseLine(line string) error {
	colon := strings.IndexByte(line, ':')
	if colon < 1 {
		return errors.New("missing point value")
	}
	value, err := strconv.Atoi(strings.TrimSpace(line[:colon]))
	if err != nil {
		return err
	}
	if value < 0 {
		return errors.New("negative point value")
	}
	groups := strings.Fields(line[colon+1:])
	if len(groups) == 0 {
		return errors.New("no letter groups")
	}
	for _, g := range groups {
		if !strings.HasPrefix(g, "{") || !strings.HasSuffix(g, "}") {
			return fmt.Errorf("bad group %q", g)
		}
		g = g[1 : len(g)-1]
		ci := strings.IndexByte(g, ':')
		if ci < 1 {
			return fmt.Errorf("bad group %q", g)
		}
		count, err := strconv.Atoi(g[:ci])
		if err != nil {
			return err
		}
		if count < 0 {
			return fmt.Errorf("negative count in group %q", g)
		}
		for _, l := range strings.Split(g[ci+1:], ",") {
			rs := []rune(strings.TrimSpace(l))
			if len(rs) != 1 {
				return fmt.Errorf("bad letter %q", l)
			}
			r := Normalize(rs[0])
			switch {
			case IsBlankToken(r):
				if value != 0 {
					return errors.New("blanks must be worth 0")
				}
				ld.numBlanks += count
			case IsLetter(r):
				if _, ok := ld.values[r]; ok {
					return fmt.Errorf("letter %c defined twice", r)
				}
				ld.values[r] = value
				ld.counts[r] = count
			default:
				return fmt.Errorf("unsupported letter %q", l)
			}
			ld.numTiles += count
		}
	}
	return nil
}

// LoadLetterDistribution loads a distribution file.
func LoadLetterDistribution(path string) (*LetterDistribution, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ScanLetterDistribution(f)
}

// Score gives the point value of a letter. Unknown letters and blanks score
// zero.
func (ld *LetterDistribution) Score(letter rune) int {
	return ld.values[Normalize(letter)]
}

// Count is the number of tiles of the letter in a full bag.
func (ld *LetterDistribution) Count(letter rune) int {
	if IsBlankToken(letter) {
		return ld.numBlanks
	}
	return ld.counts[Normalize(letter)]
}

func (ld *LetterDistribution) HasLetter(letter rune) bool {
	_, ok := ld.values[Normalize(letter)]
	return ok
}

// Letters returns every non-blank letter of the distribution, sorted.
func (ld *LetterDistribution) Letters() []rune {
	ls := make([]rune, 0, len(ld.values))
	for l := range ld.values {
		ls = append(ls, l)
	}
	sort.Slice(ls, func(i, j int) bool { return ls[i] < ls[j] })
	return ls
}

func (ld *LetterDistribution) NumBlanks() int {
	return ld.numBlanks
}

func (ld *LetterDistribution) NumTotalTiles() int {
	return ld.numTiles
}

// TileFor creates a tile for a letter, looking up its value. Blank tokens
// give an undesignated blank.
func (ld *LetterDistribution) TileFor(letter rune) Tile {
	if IsBlankToken(letter) {
		return BlankTile()
	}
	return NewTile(letter, ld.Score(letter))
}

// WordScore returns the face value of a word. Lowercase letters are
// designated blanks and score nothing.
func (ld *LetterDistribution) WordScore(word string) int {
	score := 0
	for _, c := range word {
		if c >= 'a' && c <= 'z' {
			continue
		}
		score += ld.Score(c)
	}
	return score
}

// ToTiles converts a user-visible string into tiles. Lowercase letters
// are designated blanks and blank tokens are undesignated blanks.
func (ld *LetterDistribution) ToTiles(s string) ([]Tile, error) {
	tiles := make([]Tile, 0, len(s))
	for _, r := range s {
		switch {
		case IsBlankToken(r):
			tiles = append(tiles, BlankTile())
		case r >= 'a' && r <= 'z':
			tiles = append(tiles, BlankTile().Designate(r))
		case IsLetter(r):
			if !ld.HasLetter(r) {
				return nil, fmt.Errorf("letter %c is not in the distribution", r)
			}
			tiles = append(tiles, ld.TileFor(r))
		default:
			return nil, fmt.Errorf("cannot convert %q to a tile", r)
		}
	}
	return tiles, nil
}
