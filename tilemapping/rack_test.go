package tilemapping

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestRackFromString(t *testing.T) {
	is := is.New(t)
	ld := englishDist(t)
	rack, err := RackFromString("AENPPSW", ld, 7)
	is.NoErr(err)
	is.Equal(rack.NumTiles(), 7)
	is.Equal(rack.Capacity(), 7)
	is.Equal(rack.String(), "AENPPSW")
}

func TestRackTakeAndAdd(t *testing.T) {
	is := is.New(t)
	ld := englishDist(t)
	rack, err := RackFromString("CAT?", ld, 7)
	is.NoErr(err)
	orig := rack.Copy()

	is.True(rack.Contains('Z')) // via the blank
	is.True(!rack.HasLetter('Z'))

	c, ok := rack.TakeLetter('C')
	is.True(ok)
	is.Equal(c.Value(), 3)
	_, ok = rack.TakeLetter('C')
	is.True(!ok)

	z, ok := rack.TakeBlank('z')
	is.True(ok)
	is.Equal(z.Letter(), 'Z')
	is.Equal(z.Value(), 0)
	is.True(!rack.HasBlank())
	is.True(!rack.Contains('Z'))

	rack.Add(z)
	rack.Add(c)
	is.True(rack.Equivalent(orig))
	is.True(rack.HasBlank())
}

func TestRackRemovePrefersNatural(t *testing.T) {
	is := is.New(t)
	ld := englishDist(t)
	rack, _ := RackFromString("?A", ld, 7)
	tile, ok := rack.Remove('A')
	is.True(ok)
	is.True(!tile.IsBlank())
	tile, ok = rack.Remove('A')
	is.True(ok)
	is.True(tile.IsBlank())
	_, ok = rack.Remove('A')
	is.True(!ok)
}

func TestRackRemoveTiles(t *testing.T) {
	ld := englishDist(t)
	rack, _ := RackFromString("RETAINS", ld, 7)
	played, _ := ld.ToTiles("RAT")
	assert.True(t, rack.RemoveTiles(played))
	assert.Equal(t, "EINS", rack.String())

	// all or nothing
	played, _ = ld.ToTiles("SQ")
	assert.False(t, rack.RemoveTiles(played))
	assert.Equal(t, 4, rack.NumTiles())

	played, _ = ld.ToTiles("Ei")
	assert.False(t, rack.RemoveTiles(played))
}

func TestRackRefill(t *testing.T) {
	is := is.New(t)
	ld := englishDist(t)
	bag := NewBag(ld)
	rack := NewRack(7)
	drawn := rack.Refill(bag)
	is.Equal(len(drawn), 7)
	is.Equal(rack.NumTiles(), 7)
	is.Equal(bag.TilesRemaining(), 93)
	is.Equal(len(rack.Refill(bag)), 0)
}

func TestLeave(t *testing.T) {
	ld := englishDist(t)
	rack, _ := ld.ToTiles("AEINST?")
	played, _ := ld.ToTiles("SAtIN")
	leave, err := Leave(rack, played)
	assert.NoError(t, err)
	assert.Equal(t, "ET", TilesString(leave))

	_, err = Leave(rack, []Tile{ld.TileFor('Q')})
	assert.Error(t, err)
}
