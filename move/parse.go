package move

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ParseError means a line could not be turned into a Move at all. Board
// and rack legality are the referee's concern, not the parser's.
type ParseError struct {
	Line   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse move %q: %v", e.Line, e.Reason)
}

var (
	reVertical     = regexp.MustCompile(`^(?P<col>[A-Z])(?P<row>[0-9]+)$`)
	reHorizontal   = regexp.MustCompile(`^(?P<row>[0-9]+)(?P<col>[A-Z])$`)
	rePlayWord     = regexp.MustCompile(`^([A-Za-z]+|\*+)$`)
	reExchangeWord = regexp.MustCompile(`^([A-Za-z?]+|\*+)$`)
)

// FromBoardGameCoords is the inverse of ToBoardGameCoords. The second
// return value is false if the coordinate doesn't parse.
func FromBoardGameCoords(c string) (row, col int, vertical, ok bool) {
	if matches := reVertical.FindStringSubmatch(c); matches != nil {
		row, _ = strconv.Atoi(matches[2])
		col = int(matches[1][0] - 'A')
		return row - 1, col, true, true
	}
	if matches := reHorizontal.FindStringSubmatch(c); matches != nil {
		row, _ = strconv.Atoi(matches[1])
		col = int(matches[2][0] - 'A')
		return row - 1, col, false, true
	}
	return 0, 0, false, false
}

// ParseMove deserializes the wire form: "WORD 8G" (horizontal play),
// "WORD H8" (vertical play), "TILES --" (exchange), or "--" (pass).
// Parenthesized play-through notation such as "(FO)OD 8G" is tolerated.
func ParseMove(s string) (*Move, error) {
	s = strings.TrimSpace(s)
	if s == "--" {
		return NewPassMove(), nil
	}

	fields := strings.Fields(s)
	if len(fields) != 2 {
		return nil, &ParseError{Line: s, Reason: "expected a word and a position"}
	}
	word := strings.NewReplacer("(", "", ")", "").Replace(fields[0])
	pos := fields[1]

	if pos == "--" {
		if !reExchangeWord.MatchString(word) {
			return nil, &ParseError{Line: s, Reason: "invalid exchange tiles: " + word}
		}
		return NewExchangeMove([]rune(word)), nil
	}

	row, col, vertical, ok := FromBoardGameCoords(pos)
	if !ok {
		return nil, &ParseError{Line: s, Reason: "invalid position: " + pos}
	}
	if !rePlayWord.MatchString(word) {
		return nil, &ParseError{Line: s, Reason: "invalid word: " + word}
	}
	return NewPlacementMove(row, col, vertical, []rune(word)), nil
}
