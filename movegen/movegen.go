// Package movegen generates all legal tile placements for a rack on a
// board. It searches the lexicon trie anchor by anchor: fix or enumerate
// a left part, then extend rightward through cross-check sets. Down moves
// come from running the same search on the transposed board.
package movegen

import (
	"unicode"

	"github.com/domino14/scrabbler/board"
	"github.com/domino14/scrabbler/lexicon"
	"github.com/domino14/scrabbler/move"
	"github.com/domino14/scrabbler/tilemapping"
)

// trivialCrossSet allows all 26 letters.
const trivialCrossSet uint32 = 1<<26 - 1

func crossSetBit(letter rune) uint32 {
	return 1 << (letter - 'A')
}

// Generator holds the static pieces of generation. It is not safe for
// concurrent use; each player should own one.
type Generator struct {
	lex        *lexicon.Lexicon
	ld         *tilemapping.LetterDistribution
	bingoBonus int
}

func NewGenerator(lex *lexicon.Lexicon, ld *tilemapping.LetterDistribution,
	bingoBonus int) *Generator {

	return &Generator{lex: lex, ld: ld, bingoBonus: bingoBonus}
}

// placement is an unscored across move in the coordinate system of the
// board as it was searched, which may be the transposed one.
type placement struct {
	row, col int
	word     []rune
}

// GenAll returns every legal placement for the rack, scored. Exchanges
// and passes are the caller's business. The board is restored to its
// original orientation before returning.
func (g *Generator) GenAll(b *board.GameBoard, rack *tilemapping.Rack) []*move.Move {
	across := g.genAcross(b, rack)

	b.Transpose()
	down := g.genAcross(b, rack)
	b.Transpose()

	moves := make([]*move.Move, 0, len(across)+len(down))
	seen := make(map[string]bool)
	add := func(placements []placement, vertical bool) {
		for _, p := range placements {
			row, col := p.row, p.col
			if vertical {
				row, col = col, row
			}
			m := move.NewPlacementMove(row, col, vertical, p.word)
			key := m.String()
			if seen[key] {
				continue
			}
			seen[key] = true
			score, tilesPlayed := b.ScoreMove(m, g.ld, tilemapping.RackTileLimit, g.bingoBonus)
			moves = append(moves, move.NewScoringMove(score, tilesPlayed, row, col, vertical, p.word))
		}
	}
	add(across, false)
	add(down, true)
	return moves
}

// genAcross finds all across placements, row by row.
func (g *Generator) genAcross(b *board.GameBoard, rack *tilemapping.Rack) []placement {
	var out []placement
	r := rack.Copy()
	dim := b.Dim()

	for row := 0; row < dim; row++ {
		anchors := g.rowAnchors(b, row)
		if len(anchors) == 0 {
			continue
		}

		rowcross := make([]uint32, dim)
		for col := 0; col < dim; col++ {
			rowcross[col] = g.crossChecks(b, row, col)
		}

		prevanchor := -1
		for _, anchor := range anchors {
			// A placement here looks like:
			//   [left part][anchor ... right part]
			// The left part may be empty; the word must cover the anchor.
			var extendRight func(word []rune, node *lexicon.Node, col int)
			extendRight = func(word []rune, node *lexicon.Node, col int) {
				if node == nil {
					return
				}
				if col < dim && b.HasLetter(row, col) {
					cur := b.GetLetter(row, col)
					if sub := node.Edge(unicode.ToUpper(cur)); sub != nil {
						extendRight(append(word, cur), sub, col+1)
					}
					return
				}
				// A lexicon may hold one-letter words, but a play needs at
				// least two. Single-tile hooks still come out of the
				// perpendicular pass, carrying the whole word they extend.
				if col > anchor && node.Final() && len(word) > 1 {
					w := make([]rune, len(word))
					copy(w, word)
					out = append(out, placement{row: row, col: col - len(word), word: w})
				}
				if col >= dim {
					return
				}
				for _, letter := range node.Edges() {
					if rowcross[col]&crossSetBit(letter) == 0 {
						continue
					}
					if r.Has(letter) {
						r.Take(letter)
						extendRight(append(word, letter), node.Edge(letter), col+1)
						r.Add(letter)
					}
					if r.Has(tilemapping.Blank) {
						r.Take(tilemapping.Blank)
						extendRight(append(word, unicode.ToLower(letter)), node.Edge(letter), col+1)
						r.Add(tilemapping.Blank)
					}
				}
			}

			if anchor == 0 || b.HasLetter(row, anchor-1) {
				// The left part is fixed: either the board edge or the run
				// of tiles already down. Anchors bound the run, so every
				// square from the previous anchor to here holds a tile.
				var word []rune
				for i := prevanchor + 1; i < anchor; i++ {
					word = append(word, b.GetLetter(row, i))
				}
				node := g.lex.Root()
				for _, c := range word {
					node = node.Edge(unicode.ToUpper(c))
				}
				extendRight(word, node, anchor)
			} else {
				// Enumerate left parts from the lexicon, short enough not
				// to reach back past the previous anchor.
				var search func(word []rune, node *lexicon.Node, limit int)
				search = func(word []rune, node *lexicon.Node, limit int) {
					extendRight(word, node, anchor)
					if limit <= 0 {
						return
					}
					for _, letter := range node.Edges() {
						if r.Has(letter) {
							r.Take(letter)
							search(append(word, letter), node.Edge(letter), limit-1)
							r.Add(letter)
						}
						if r.Has(tilemapping.Blank) {
							r.Take(tilemapping.Blank)
							search(append(word, unicode.ToLower(letter)), node.Edge(letter), limit-1)
							r.Add(tilemapping.Blank)
						}
					}
				}
				search(nil, g.lex.Root(), anchor-prevanchor-1)
			}

			prevanchor = anchor
		}
	}
	return out
}

// rowAnchors lists the anchor columns of a row. On an empty board the
// center square is the only anchor anywhere.
func (g *Generator) rowAnchors(b *board.GameBoard, row int) []int {
	dim := b.Dim()
	if b.IsEmpty() {
		if row == dim>>1 {
			return []int{dim >> 1}
		}
		return nil
	}
	var anchors []int
	for col := 0; col < dim; col++ {
		if isAnchor(b, row, col) {
			anchors = append(anchors, col)
		}
	}
	return anchors
}

// isAnchor reports whether a square is empty and adjacent to a tile.
func isAnchor(b *board.GameBoard, row, col int) bool {
	if b.HasLetter(row, col) {
		return false
	}
	for _, off := range [4][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}} {
		r, c := row+off[0], col+off[1]
		if b.PosExists(r, c) && b.HasLetter(r, c) {
			return true
		}
	}
	return false
}

// crossChecks returns the set of letters placeable at (row, col) without
// ruining the vertical word through it. Empty squares with no vertical
// neighbors take anything; occupied squares take nothing.
func (g *Generator) crossChecks(b *board.GameBoard, row, col int) uint32 {
	if b.HasLetter(row, col) {
		return 0
	}
	up, down := updownFragments(b, row, col)
	if up == "" && down == "" {
		return trivialCrossSet
	}

	node := g.lex.Root()
	for _, c := range up {
		node = node.Edge(c)
	}
	if node == nil {
		return 0
	}

	var set uint32
	for letter := 'A'; letter <= 'Z'; letter++ {
		sub := node.Edge(letter)
		for _, c := range down {
			sub = sub.Edge(c)
		}
		if sub.Final() {
			set |= crossSetBit(letter)
		}
	}
	return set
}

// updownFragments returns the uppercased tile runs directly above and
// below (row, col).
func updownFragments(b *board.GameBoard, row, col int) (string, string) {
	var up, down []rune
	for r := row - 1; b.PosExists(r, col) && b.HasLetter(r, col); r-- {
		up = append([]rune{unicode.ToUpper(b.GetLetter(r, col))}, up...)
	}
	for r := row + 1; b.PosExists(r, col) && b.HasLetter(r, col); r++ {
		down = append(down, unicode.ToUpper(b.GetLetter(r, col)))
	}
	return string(up), string(down)
}
