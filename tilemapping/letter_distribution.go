// Package tilemapping holds the tile-level domain types: the letter
// distribution for a game variant, the bag, and player racks.
//
// Tiles are runes. 'A' through 'Z' are regular letters, Blank ('?') is an
// unassigned blank, and a lowercase letter is a blank that was assigned
// that letter when played; assigned blanks always score zero.
package tilemapping

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/domino14/scrabbler/config"
)

const (
	// Blank is an unassigned blank tile.
	Blank rune = '?'
	// MaskedTile hides the identity of an exchanged tile when a move is
	// relayed to the opponent.
	MaskedTile rune = '*'
	// RackTileLimit is the number of tiles a full rack holds.
	RackTileLimit = 7
)

//go:embed data/english.csv
var englishCSV string

// LetterDistribution encodes the tile distribution for the relevant game:
// how many of each tile exist and what each letter scores.
type LetterDistribution struct {
	Name         string
	distribution map[rune]uint8
	scores       map[rune]int
	numLetters   uint
}

// ScanLetterDistribution reads a letter,quantity,value,vowel CSV.
func ScanLetterDistribution(data io.Reader) (*LetterDistribution, error) {
	r := csv.NewReader(data)
	dist := map[rune]uint8{}
	scores := map[rune]int{}
	numLetters := uint(0)
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		letters := []rune(record[0])
		if len(letters) != 1 {
			return nil, fmt.Errorf("tile %q must be a single rune", record[0])
		}
		letter := letters[0]
		n, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, err
		}
		p, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, err
		}
		dist[letter] = uint8(n)
		scores[letter] = p
		numLetters += uint(n)
	}
	return &LetterDistribution{
		distribution: dist,
		scores:       scores,
		numLetters:   numLetters,
	}, nil
}

// NamedLetterDistribution loads a distribution CSV from the config's data
// path, falling back to the built-in distribution of the same name.
func NamedLetterDistribution(cfg *config.Config, name string) (*LetterDistribution, error) {
	path := filepath.Join(cfg.DataPath, "letterdistributions", name+".csv")
	f, err := os.Open(path)
	if err != nil {
		if name == "english" {
			return EnglishLetterDistribution(), nil
		}
		return nil, err
	}
	defer f.Close()
	ld, err := ScanLetterDistribution(f)
	if err != nil {
		return nil, err
	}
	ld.Name = name
	return ld, nil
}

// EnglishLetterDistribution returns the built-in English distribution
// (100 tiles, 2 blanks).
func EnglishLetterDistribution() *LetterDistribution {
	ld, err := ScanLetterDistribution(strings.NewReader(englishCSV))
	if err != nil {
		// The embedded CSV is static; this cannot happen.
		panic(err)
	}
	ld.Name = "english"
	return ld
}

// Score gives the score of a single tile. Assigned blanks (lowercase) and
// unassigned blanks score zero.
func (ld *LetterDistribution) Score(tile rune) int {
	if tile == Blank || (tile >= 'a' && tile <= 'z') {
		return 0
	}
	return ld.scores[tile]
}

// WordScore sums the tile scores of a word with no multipliers applied.
func (ld *LetterDistribution) WordScore(word []rune) int {
	score := 0
	for _, c := range word {
		score += ld.Score(c)
	}
	return score
}

// TileQuantity returns how many of the given tile the full bag contains.
func (ld *LetterDistribution) TileQuantity(tile rune) uint8 {
	return ld.distribution[tile]
}

// NumTotalTiles is the size of a fresh bag.
func (ld *LetterDistribution) NumTotalTiles() int {
	return int(ld.numLetters)
}
