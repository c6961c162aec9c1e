package tilemapping

import (
	"fmt"
	"sort"

	"lukechampine.com/frand"
)

// A Bag is the bag o'tiles! It shrinks monotonically except for exchanges,
// which put the surrendered tiles back after the redraw.
type Bag struct {
	tiles []rune
	ld    *LetterDistribution
}

// MakeBag returns a full, shuffled bag for this distribution.
func (ld *LetterDistribution) MakeBag() *Bag {
	tiles := make([]rune, 0, ld.numLetters)
	letters := make([]rune, 0, len(ld.distribution))
	for letter := range ld.distribution {
		letters = append(letters, letter)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	for _, letter := range letters {
		for i := uint8(0); i < ld.distribution[letter]; i++ {
			tiles = append(tiles, letter)
		}
	}
	b := &Bag{tiles: tiles, ld: ld}
	b.Shuffle()
	return b
}

// Shuffle shuffles the bag.
func (b *Bag) Shuffle() {
	frand.Shuffle(len(b.tiles), func(i, j int) {
		b.tiles[i], b.tiles[j] = b.tiles[j], b.tiles[i]
	})
}

// Draw draws exactly n tiles, erroring if the bag holds fewer.
func (b *Bag) Draw(n int) ([]rune, error) {
	if n > len(b.tiles) {
		return nil, fmt.Errorf("tried to draw %v tiles, tile bag has %v",
			n, len(b.tiles))
	}
	drawn := make([]rune, n)
	copy(drawn, b.tiles[:n])
	b.tiles = b.tiles[n:]
	return drawn, nil
}

// DrawAtMost draws at most n tiles. It can draw fewer if there are fewer
// tiles than n, and even draw no tiles at all :o
func (b *Bag) DrawAtMost(n int) []rune {
	if n > len(b.tiles) {
		n = len(b.tiles)
	}
	drawn, _ := b.Draw(n)
	return drawn
}

// Exchange swaps the given tiles for an equal number of new ones. The
// surrendered tiles only go back in after the redraw, so a player can
// never draw back what they just gave up.
func (b *Bag) Exchange(tiles []rune) ([]rune, error) {
	drawn, err := b.Draw(len(tiles))
	if err != nil {
		return nil, err
	}
	b.tiles = append(b.tiles, tiles...)
	b.Shuffle()
	return drawn, nil
}

// PutBack returns tiles to the bag, for abandoned racks.
func (b *Bag) PutBack(tiles []rune) {
	if len(tiles) == 0 {
		return
	}
	b.tiles = append(b.tiles, tiles...)
	b.Shuffle()
}

// TilesRemaining returns the number of tiles left in the bag.
func (b *Bag) TilesRemaining() int {
	return len(b.tiles)
}

// LetterDistribution returns the distribution this bag was built from.
func (b *Bag) LetterDistribution() *LetterDistribution {
	return b.ld
}
