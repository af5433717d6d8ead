package tilemapping

// Rack is a bounded multiset of tiles. Blanks on a rack are always
// undesignated.
type Rack struct {
	tiles    []Tile
	capacity int
}

// NewRack creates an empty rack that holds at most capacity tiles.
func NewRack(capacity int) *Rack {
	return &Rack{tiles: make([]Tile, 0, capacity), capacity: capacity}
}

// RackFromString creates a rack from a string like "AEINST?". The capacity
// is the larger of the given capacity and the number of tiles.
func RackFromString(s string, ld *LetterDistribution, capacity int) (*Rack, error) {
	tiles, err := ld.ToTiles(s)
	if err != nil {
		return nil, err
	}
	if len(tiles) > capacity {
		capacity = len(tiles)
	}
	r := NewRack(capacity)
	for _, t := range tiles {
		r.Add(t)
	}
	return r, nil
}

// String returns a user-visible version of this rack.
func (r *Rack) String() string {
	ts := r.Tiles()
	SortTiles(ts)
	return TilesString(ts)
}

// Copy returns a deep copy of this rack.
func (r *Rack) Copy() *Rack {
	n := &Rack{capacity: r.capacity, tiles: make([]Tile, len(r.tiles), r.capacity)}
	copy(n.tiles, r.tiles)
	return n
}

// Tiles returns a copy of the tiles on the rack.
func (r *Rack) Tiles() []Tile {
	ts := make([]Tile, len(r.tiles))
	copy(ts, r.tiles)
	return ts
}

func (r *Rack) NumTiles() int {
	return len(r.tiles)
}

func (r *Rack) Capacity() int {
	return r.capacity
}

func (r *Rack) IsEmpty() bool {
	return len(r.tiles) == 0
}

// HasLetter returns whether a natural tile of this letter is on the rack.
func (r *Rack) HasLetter(letter rune) bool {
	return r.index(letter, false) != -1
}

func (r *Rack) HasBlank() bool {
	return r.index(0, true) != -1
}

// Contains returns whether the letter can be played from this rack,
// either as a natural tile or by designating a blank.
func (r *Rack) Contains(letter rune) bool {
	return r.HasLetter(letter) || r.HasBlank()
}

func (r *Rack) index(letter rune, blank bool) int {
	for i, t := range r.tiles {
		if t.blank == blank && (blank || t.letter == letter) {
			return i
		}
	}
	return -1
}

func (r *Rack) removeAt(i int) Tile {
	t := r.tiles[i]
	last := len(r.tiles) - 1
	r.tiles[i] = r.tiles[last]
	r.tiles = r.tiles[:last]
	return t
}

// TakeLetter removes a natural tile of the given letter.
func (r *Rack) TakeLetter(letter rune) (Tile, bool) {
	i := r.index(Normalize(letter), false)
	if i == -1 {
		return Tile{}, false
	}
	return r.removeAt(i), true
}

// TakeBlank removes a blank and designates it as the given letter.
func (r *Rack) TakeBlank(letter rune) (Tile, bool) {
	i := r.index(0, true)
	if i == -1 {
		return Tile{}, false
	}
	return r.removeAt(i).Designate(letter), true
}

// Remove takes a tile for the letter, preferring a natural tile and
// falling back to a blank.
func (r *Rack) Remove(letter rune) (Tile, bool) {
	if t, ok := r.TakeLetter(letter); ok {
		return t, true
	}
	return r.TakeBlank(letter)
}

// RemoveTiles removes each of the given tiles. Designated blanks consume a
// blank. Nothing is removed if any tile is missing.
func (r *Rack) RemoveTiles(tiles []Tile) bool {
	if _, err := Leave(r.tiles, tiles); err != nil {
		return false
	}
	for _, t := range tiles {
		if t.blank {
			r.TakeBlank(t.letter)
		} else {
			r.TakeLetter(t.letter)
		}
	}
	return true
}

// Add puts a tile back on the rack. Blanks lose their designation.
func (r *Rack) Add(t Tile) {
	r.tiles = append(r.tiles, t.Undesignated())
}

// Clear empties the rack and returns what was on it.
func (r *Rack) Clear() []Tile {
	ts := r.tiles
	r.tiles = make([]Tile, 0, r.capacity)
	return ts
}

// Refill draws from the bag until the rack is full or the bag runs out.
// It returns the tiles drawn.
func (r *Rack) Refill(bag *Bag) []Tile {
	need := r.capacity - len(r.tiles)
	if need <= 0 {
		return nil
	}
	drawn := bag.DrawAtMost(need)
	for _, t := range drawn {
		r.Add(t)
	}
	return drawn
}

// Equivalent returns whether both racks hold the same multiset of tiles.
func (r *Rack) Equivalent(other *Rack) bool {
	if len(r.tiles) != len(other.tiles) {
		return false
	}
	counts := map[Tile]int{}
	for _, t := range r.tiles {
		counts[t]++
	}
	for _, t := range other.tiles {
		counts[t]--
		if counts[t] < 0 {
			return false
		}
	}
	return true
}
