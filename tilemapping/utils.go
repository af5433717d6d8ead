package tilemapping

import (
	"fmt"
	"sort"
)

// SortTiles sorts tiles in place, alphabetically, with blanks last.
func SortTiles(tiles []Tile) {
	sort.SliceStable(tiles, func(i, j int) bool {
		a, b := tiles[i].Undesignated(), tiles[j].Undesignated()
		if a.blank != b.blank {
			return !a.blank
		}
		return a.letter < b.letter
	})
}

// Leave calculates what remains of the rack after the played tiles are
// taken from it. A designated blank in the play consumes a blank.
func Leave(rack []Tile, played []Tile) ([]Tile, error) {
	counts := map[Tile]int{}
	for _, t := range rack {
		counts[t.Undesignated()]++
	}
	for _, t := range played {
		key := t.Undesignated()
		if counts[key] == 0 {
			return nil, fmt.Errorf("tile in play but not in rack: %v", t)
		}
		counts[key]--
	}
	leave := make([]Tile, 0, len(rack))
	for t, n := range counts {
		for i := 0; i < n; i++ {
			leave = append(leave, t)
		}
	}
	SortTiles(leave)
	return leave, nil
}
