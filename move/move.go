// Package move represents a single turn's action: a tile placement, an
// exchange, or a pass, along with the wire form used on the line protocol.
package move

import (
	"strconv"
	"strings"
)

// MoveType is a type of move; a play, an exchange, or a pass.
type MoveType uint8

const (
	MoveTypePlay MoveType = iota
	MoveTypeExchange
	MoveTypePass
)

// Move is immutable once constructed. For a play, word holds the full main
// word including letters played through (lowercase letters are blanks
// assigned that letter); for an exchange it holds the surrendered tiles,
// possibly masked.
type Move struct {
	action      MoveType
	rowStart    int
	colStart    int
	vertical    bool
	word        []rune
	score       int
	tilesPlayed int
}

// NewPlacementMove creates an unscored tile placement.
func NewPlacementMove(row, col int, vertical bool, word []rune) *Move {
	return &Move{
		action:   MoveTypePlay,
		rowStart: row,
		colStart: col,
		vertical: vertical,
		word:     cloneWord(word),
	}
}

// NewScoringMove creates a placement whose score and tiles-played count
// are already known (the move generator's case).
func NewScoringMove(score, tilesPlayed, row, col int, vertical bool, word []rune) *Move {
	m := NewPlacementMove(row, col, vertical, word)
	m.score = score
	m.tilesPlayed = tilesPlayed
	return m
}

// NewExchangeMove creates an exchange of the given tiles.
func NewExchangeMove(tiles []rune) *Move {
	return &Move{action: MoveTypeExchange, word: cloneWord(tiles)}
}

// NewPassMove creates a pass.
func NewPassMove() *Move {
	return &Move{action: MoveTypePass}
}

func cloneWord(word []rune) []rune {
	w := make([]rune, len(word))
	copy(w, word)
	return w
}

func (m *Move) Action() MoveType {
	return m.action
}

// CoordsAndVertical returns the start position and orientation of a play.
func (m *Move) CoordsAndVertical() (int, int, bool) {
	return m.rowStart, m.colStart, m.vertical
}

// Word returns a copy of the word or exchanged tiles.
func (m *Move) Word() []rune {
	return cloneWord(m.word)
}

func (m *Move) WordString() string {
	return string(m.word)
}

func (m *Move) Score() int {
	return m.score
}

// TilesPlayed returns the number of new tiles a scored play put on the
// board, or the number of tiles exchanged.
func (m *Move) TilesPlayed() int {
	if m.action == MoveTypeExchange {
		return len(m.word)
	}
	return m.tilesPlayed
}

// Bingo reports whether this play emptied a full rack.
func (m *Move) Bingo() bool {
	return m.action == MoveTypePlay && m.tilesPlayed == 7
}

// Mask returns a copy safe to relay to the opponent: exchanges have their
// tile identities replaced with '*'. Plays and passes are returned as is.
func (m *Move) Mask() *Move {
	if m.action != MoveTypeExchange {
		return m
	}
	return NewExchangeMove([]rune(strings.Repeat("*", len(m.word))))
}

// Equal compares canonical wire forms, so a horizontal and a vertical
// one-tile play at the same square stay distinct.
func (m *Move) Equal(other *Move) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.String() == other.String()
}

// Position renders the coordinate part of the wire form: row-first for
// horizontal plays (8G), column-first for vertical (G8), or -- otherwise.
func (m *Move) Position() string {
	if m.action != MoveTypePlay {
		return "--"
	}
	return ToBoardGameCoords(m.rowStart, m.colStart, m.vertical)
}

// String renders the canonical wire form. parse(render(m)) == m for every
// syntactically valid move.
func (m *Move) String() string {
	switch m.action {
	case MoveTypePass:
		return "--"
	case MoveTypeExchange:
		return string(m.word) + " --"
	default:
		return string(m.word) + " " + m.Position()
	}
}

// ShortDescription provides a short description, useful for logging.
func (m *Move) ShortDescription() string {
	switch m.action {
	case MoveTypePass:
		return "(Pass)"
	case MoveTypeExchange:
		return "(exch " + string(m.word) + ")"
	default:
		return m.Position() + " " + string(m.word)
	}
}

// ToBoardGameCoords converts the row, col, and orientation of a play to a
// coordinate like 5F or G4.
func ToBoardGameCoords(row, col int, vertical bool) string {
	colCoords := string(rune('A' + col))
	rowCoords := strconv.Itoa(row + 1)
	if vertical {
		return colCoords + rowCoords
	}
	return rowCoords + colCoords
}
