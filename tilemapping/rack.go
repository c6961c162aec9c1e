package tilemapping

import (
	"fmt"
	"strings"
)

// Rack is the multiset of tiles a player holds. Index 0 counts blanks;
// indexes 1 through 26 count A through Z.
type Rack struct {
	letArr     [27]int
	numLetters int
}

func rackIdx(tile rune) int {
	if tile == Blank {
		return 0
	}
	if tile >= 'A' && tile <= 'Z' {
		return int(tile-'A') + 1
	}
	return -1
}

func rackTile(idx int) rune {
	if idx == 0 {
		return Blank
	}
	return rune('A' + idx - 1)
}

// NewRack creates an empty rack.
func NewRack() *Rack {
	return &Rack{}
}

// RackFromString creates a rack from a string of tiles such as "AEILNR?".
func RackFromString(tiles string) (*Rack, error) {
	r := NewRack()
	for _, t := range tiles {
		if err := r.Add(t); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Add puts a tile on the rack.
func (r *Rack) Add(tile rune) error {
	idx := rackIdx(tile)
	if idx < 0 {
		return fmt.Errorf("tile %q cannot go on a rack", tile)
	}
	r.letArr[idx]++
	r.numLetters++
	return nil
}

// AddAll puts several tiles on the rack. The tiles must all be rackable.
func (r *Rack) AddAll(tiles []rune) error {
	for _, t := range tiles {
		if err := r.Add(t); err != nil {
			return err
		}
	}
	return nil
}

// Take removes one instance of the given tile, erroring if none is held.
func (r *Rack) Take(tile rune) error {
	idx := rackIdx(tile)
	if idx < 0 || r.letArr[idx] == 0 {
		return fmt.Errorf("tile %q is not on the rack", tile)
	}
	r.letArr[idx]--
	r.numLetters--
	return nil
}

// Has reports whether at least one instance of the tile is held.
func (r *Rack) Has(tile rune) bool {
	idx := rackIdx(tile)
	return idx >= 0 && r.letArr[idx] > 0
}

// NumTiles returns the number of tiles on the rack.
func (r *Rack) NumTiles() int {
	return r.numLetters
}

// TilesOn returns the held tiles, blanks first, letters alphabetized.
func (r *Rack) TilesOn() []rune {
	tiles := make([]rune, 0, r.numLetters)
	for idx, count := range r.letArr {
		for i := 0; i < count; i++ {
			tiles = append(tiles, rackTile(idx))
		}
	}
	return tiles
}

// String returns a user-visible version of this rack.
func (r *Rack) String() string {
	var sb strings.Builder
	for _, t := range r.TilesOn() {
		sb.WriteRune(t)
	}
	return sb.String()
}

// Clear empties the rack.
func (r *Rack) Clear() {
	r.letArr = [27]int{}
	r.numLetters = 0
}

// Copy returns a deep copy of this rack.
func (r *Rack) Copy() *Rack {
	n := &Rack{numLetters: r.numLetters}
	n.letArr = r.letArr
	return n
}

// Value sums the tile scores of the rack, for end-of-game adjustments.
func (r *Rack) Value(ld *LetterDistribution) int {
	return ld.WordScore(r.TilesOn())
}
