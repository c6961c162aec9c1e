// Package board implements the game board: a square grid of bonus squares
// that accumulates tiles, with the legality, formed-word, and scoring
// queries the referee needs.
package board

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/domino14/scrabbler/move"
	"github.com/domino14/scrabbler/tilemapping"
)

type BonusSquare byte

const (
	// Bonus3WS is a triple word score
	Bonus3WS BonusSquare = '='
	// Bonus3LS is a triple letter score
	Bonus3LS BonusSquare = '"'
	// Bonus2LS is a double letter score
	Bonus2LS BonusSquare = '\''
	// Bonus2WS is a double word score
	Bonus2WS BonusSquare = '-'

	NoBonus BonusSquare = ' '
)

// WordMultiplier returns the whole-word multiplier of this square.
func (b BonusSquare) WordMultiplier() int {
	switch b {
	case Bonus3WS:
		return 3
	case Bonus2WS:
		return 2
	}
	return 1
}

// LetterMultiplier returns the single-letter multiplier of this square.
func (b BonusSquare) LetterMultiplier() int {
	switch b {
	case Bonus3LS:
		return 3
	case Bonus2LS:
		return 2
	}
	return 1
}

// EmptySquare marks a square with no tile on it.
const EmptySquare rune = 0

// GameBoard stores a one-dimensional array of the tiles played and the
// static bonus layout. Bonuses are assigned at construction and never
// change; a square that gains a tile keeps it forever.
type GameBoard struct {
	squares     []rune
	bonuses     []BonusSquare
	transposed  bool
	tilesPlayed int
	dim         int
}

// MakeBoard turns an array of bonus description strings into a GameBoard.
// All strings must have the same length as the number of rows.
func MakeBoard(desc []string) *GameBoard {
	totalLen := 0
	for _, s := range desc {
		totalLen += len(s)
	}
	squares := make([]rune, totalLen)
	bonuses := make([]BonusSquare, totalLen)
	i := 0
	for _, s := range desc {
		for _, c := range s {
			bonuses[i] = BonusSquare(byte(c))
			squares[i] = EmptySquare
			i++
		}
	}
	return &GameBoard{squares: squares, bonuses: bonuses, dim: len(desc)}
}

// Dim is the dimension of the board. It assumes the board is square.
func (g *GameBoard) Dim() int {
	return g.dim
}

func (g *GameBoard) idx(row, col int) int {
	if g.transposed {
		return col*g.dim + row
	}
	return row*g.dim + col
}

func (g *GameBoard) GetBonus(row, col int) BonusSquare {
	return g.bonuses[g.idx(row, col)]
}

func (g *GameBoard) GetLetter(row, col int) rune {
	return g.squares[g.idx(row, col)]
}

func (g *GameBoard) SetLetter(row, col int, letter rune) {
	g.squares[g.idx(row, col)] = letter
}

func (g *GameBoard) HasLetter(row, col int) bool {
	return g.GetLetter(row, col) != EmptySquare
}

func (g *GameBoard) PosExists(row, col int) bool {
	return row >= 0 && row < g.dim && col >= 0 && col < g.dim
}

// TilesPlayed returns the number of tiles on the board.
func (g *GameBoard) TilesPlayed() int {
	return g.tilesPlayed
}

// IsEmpty returns if the board is empty.
func (g *GameBoard) IsEmpty() bool {
	return g.tilesPlayed == 0
}

// Transpose flips row/column addressing. The move generator transposes
// the board to reuse its horizontal logic for vertical plays; a board
// handed to players or the referee is never left transposed.
func (g *GameBoard) Transpose() {
	g.transposed = !g.transposed
}

func (g *GameBoard) IsTransposed() bool {
	return g.transposed
}

// Copy returns a deep copy of this board.
func (g *GameBoard) Copy() *GameBoard {
	n := &GameBoard{
		squares:     make([]rune, len(g.squares)),
		bonuses:     make([]BonusSquare, len(g.bonuses)),
		transposed:  g.transposed,
		tilesPlayed: g.tilesPlayed,
		dim:         g.dim,
	}
	copy(n.squares, g.squares)
	copy(n.bonuses, g.bonuses)
	return n
}

// ErrorIfIllegalPlay returns an error if the play breaks placement
// geometry: off-board, disagreeing with tiles already placed, detached
// from the rest of the board, or not covering the center on an empty
// board. Word validity is checked separately against the lexicon.
func (g *GameBoard) ErrorIfIllegalPlay(row, col int, vertical bool, word []rune) error {
	ri, ci := 0, 1
	if vertical {
		ri, ci = ci, ri
	}
	boardEmpty := g.IsEmpty()
	touchesCenterSquare := false
	bordersATile := false
	placedATile := false
	for idx, ml := range word {
		newrow, newcol := row+(ri*idx), col+(ci*idx)

		if !g.PosExists(newrow, newcol) {
			return errors.New("play extends off of the board")
		}
		if !unicode.IsLetter(ml) {
			return fmt.Errorf("%q is not a playable tile", ml)
		}
		if boardEmpty && newrow == g.dim>>1 && newcol == g.dim>>1 {
			touchesCenterSquare = true
		}

		cur := g.GetLetter(newrow, newcol)
		if cur != EmptySquare {
			// Playing through an existing tile; the word must agree
			// with it, including blank designation.
			if cur != ml {
				return fmt.Errorf("play disagrees with the tile already at %v",
					move.ToBoardGameCoords(newrow, newcol, vertical))
			}
			bordersATile = true
			continue
		}

		// We are placing a tile on this empty square. Check if we border
		// any other tiles, looking only at perpendicular hooks.
		for d := -1; d <= 1; d += 2 {
			checkrow, checkcol := newrow+ci*d, newcol+ri*d
			if g.PosExists(checkrow, checkcol) && g.HasLetter(checkrow, checkcol) {
				bordersATile = true
			}
		}
		placedATile = true
	}

	if boardEmpty && !touchesCenterSquare {
		return errors.New("the first play must cover the center square")
	}
	if !boardEmpty && !bordersATile {
		return errors.New("your play must border a tile already on the board")
	}
	if !placedATile {
		return errors.New("your play must place a new tile")
	}
	if len(word) < 2 {
		return errors.New("your play must include at least two letters")
	}
	// The played word must be whole: no tiles may abut either end.
	if checkrow, checkcol := row-ri, col-ci; g.PosExists(checkrow, checkcol) && g.HasLetter(checkrow, checkcol) {
		return errors.New("your play must include the whole word")
	}
	if checkrow, checkcol := row+ri*len(word), col+ci*len(word); g.PosExists(checkrow, checkcol) && g.HasLetter(checkrow, checkcol) {
		return errors.New("your play must include the whole word")
	}
	return nil
}

// FormedWords returns every word this play would form, the main word
// first, uppercased for lexicon lookups. The move must not have been
// applied to the board yet.
func (g *GameBoard) FormedWords(m *move.Move) ([]string, error) {
	if m.Action() != move.MoveTypePlay {
		return nil, errors.New("function must be called with a tile placement play")
	}
	row, col, vertical := m.CoordsAndVertical()
	ri, ci := 0, 1
	if vertical {
		ri, ci = ci, ri
	}

	// Reserve space for the main word.
	words := []string{""}
	mainWord := make([]rune, 0, len(m.Word()))

	for idx, letter := range m.Word() {
		letter = unicode.ToUpper(letter)
		newrow, newcol := row+(ri*idx), col+(ci*idx)
		mainWord = append(mainWord, letter)
		if g.HasLetter(newrow, newcol) {
			// Played through; it cannot start a new cross word.
			continue
		}
		crossWord := g.formedCrossWord(!vertical, letter, newrow, newcol)
		if crossWord != "" {
			words = append(words, crossWord)
		}
	}
	words[0] = string(mainWord)
	return words, nil
}

// formedCrossWord finds the cross word containing the new letter at
// (row, col), if any; single letters don't count as words.
func (g *GameBoard) formedCrossWord(crossVertical bool, letter rune, row, col int) string {
	ri, ci := 0, 1
	if crossVertical {
		ri, ci = ci, ri
	}

	// Find the top or left edge.
	startrow, startcol := row-ri, col-ci
	for g.PosExists(startrow, startcol) && g.HasLetter(startrow, startcol) {
		startrow -= ri
		startcol -= ci
	}
	startrow += ri
	startcol += ci

	var crossword []rune
	for r, c := startrow, startcol; ; r, c = r+ri, c+ci {
		if r == row && c == col {
			crossword = append(crossword, letter)
			continue
		}
		if !g.PosExists(r, c) || !g.HasLetter(r, c) {
			break
		}
		crossword = append(crossword, unicode.ToUpper(g.GetLetter(r, c)))
	}
	if len(crossword) < 2 {
		return ""
	}
	return string(crossword)
}

// ScoreMove computes the score of a not-yet-applied play, and how many
// new tiles it places. Letter multipliers apply to a newly covered square's
// letter; word multipliers on newly covered squares apply to the whole main
// word, and to a whole cross word when the new letter sits on one. Playing
// fullRack tiles at once earns bingoBonus on top.
func (g *GameBoard) ScoreMove(m *move.Move, ld *tilemapping.LetterDistribution,
	fullRack, bingoBonus int) (int, int) {

	row, col, vertical := m.CoordsAndVertical()
	ri, ci := 0, 1
	if vertical {
		ri, ci = ci, ri
	}

	baseScore := 0
	wordMultiplier := 1
	crossScores := 0
	tilesPlayed := 0

	for idx, letter := range m.Word() {
		newrow, newcol := row+(ri*idx), col+(ci*idx)
		if g.HasLetter(newrow, newcol) {
			// Played through: plain value, no bonuses re-fire.
			baseScore += ld.Score(g.GetLetter(newrow, newcol))
			continue
		}
		bonus := g.GetBonus(newrow, newcol)
		letterScore := ld.Score(letter) * bonus.LetterMultiplier()
		baseScore += letterScore
		wordMultiplier *= bonus.WordMultiplier()
		tilesPlayed++

		if fragment, ok := g.crossFragmentScore(!vertical, newrow, newcol, ld); ok {
			crossScores += (fragment + letterScore) * bonus.WordMultiplier()
		}
	}

	score := baseScore*wordMultiplier + crossScores
	if fullRack > 0 && tilesPlayed == fullRack {
		score += bingoBonus
	}
	return score, tilesPlayed
}

// crossFragmentScore sums the tiles adjacent to (row, col) in the cross
// direction. ok is false when no adjacent fragment exists at all, which
// is distinct from an adjacent fragment of all blanks scoring zero.
func (g *GameBoard) crossFragmentScore(crossVertical bool, row, col int,
	ld *tilemapping.LetterDistribution) (int, bool) {

	ri, ci := 0, 1
	if crossVertical {
		ri, ci = ci, ri
	}
	score := 0
	found := false
	for r, c := row-ri, col-ci; g.PosExists(r, c) && g.HasLetter(r, c); r, c = r-ri, c-ci {
		score += ld.Score(g.GetLetter(r, c))
		found = true
	}
	for r, c := row+ri, col+ci; g.PosExists(r, c) && g.HasLetter(r, c); r, c = r+ri, c+ci {
		score += ld.Score(g.GetLetter(r, c))
		found = true
	}
	return score, found
}

// PlaceMoveTiles puts a play's new tiles on the board. Squares the word
// plays through are left alone.
func (g *GameBoard) PlaceMoveTiles(m *move.Move) {
	row, col, vertical := m.CoordsAndVertical()
	ri, ci := 0, 1
	if vertical {
		ri, ci = ci, ri
	}
	for idx, letter := range m.Word() {
		newrow, newcol := row+(ri*idx), col+(ci*idx)
		if g.HasLetter(newrow, newcol) {
			continue
		}
		g.SetLetter(newrow, newcol, letter)
		g.tilesPlayed++
	}
}

// PlayMove plays a move on a board. Only placements change the board.
func (g *GameBoard) PlayMove(m *move.Move) {
	if m.Action() != move.MoveTypePlay {
		return
	}
	g.PlaceMoveTiles(m)
}

// ToDisplayText is a human-readable dump of the board for logs.
func (g *GameBoard) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString("   ")
	for c := 0; c < g.dim; c++ {
		sb.WriteRune(rune('A' + c))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')
	for r := 0; r < g.dim; r++ {
		fmt.Fprintf(&sb, "%2d ", r+1)
		for c := 0; c < g.dim; c++ {
			if g.HasLetter(r, c) {
				sb.WriteRune(g.GetLetter(r, c))
			} else {
				sb.WriteByte(byte(g.GetBonus(r, c)))
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return strings.TrimRight(sb.String(), "\n")
}
