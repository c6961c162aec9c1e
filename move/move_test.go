package move

import (
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestParseVertical(t *testing.T) {
	is := is.New(t)
	m, err := ParseMove("NITROGEnASE H3")
	is.NoErr(err)
	row, col, vertical := m.CoordsAndVertical()
	is.Equal(row, 2)
	is.Equal(col, 7)
	is.True(vertical)
	is.Equal(m.Action(), MoveTypePlay)
	is.Equal(m.WordString(), "NITROGEnASE")
	is.Equal(m.String(), "NITROGEnASE H3")
}

func TestParseHorizontal(t *testing.T) {
	is := is.New(t)
	m, err := ParseMove("NITROGEnASE 3H")
	is.NoErr(err)
	row, col, vertical := m.CoordsAndVertical()
	is.Equal(row, 2)
	is.Equal(col, 7)
	is.True(!vertical)
	is.Equal(m.String(), "NITROGEnASE 3H")
}

func TestParseExchangeAndPass(t *testing.T) {
	is := is.New(t)
	m, err := ParseMove("DEW? --")
	is.NoErr(err)
	is.Equal(m.Action(), MoveTypeExchange)
	is.Equal(m.WordString(), "DEW?")
	is.Equal(m.String(), "DEW? --")

	m, err = ParseMove("**** --")
	is.NoErr(err)
	is.Equal(m.Action(), MoveTypeExchange)

	m, err = ParseMove("--")
	is.NoErr(err)
	is.Equal(m.Action(), MoveTypePass)
	is.Equal(m.String(), "--")
}

func TestParseErrors(t *testing.T) {
	for _, line := range []string{
		"",
		"NITROGEnASE",
		"NITROGEnASE 33",
		"NITROGEnASE HH",
		"??? 3H",
		"... --",
		"FOO 8G extra",
	} {
		_, err := ParseMove(line)
		assert.Error(t, err, "line %q", line)
		var perr *ParseError
		assert.True(t, errors.As(err, &perr), "line %q should be a ParseError", line)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, line := range []string{
		"FOO 8G",
		"FOO H8",
		"ADDITiONAL D3",
		"CAT 15A",
		"QI A15",
		"DEW? --",
		"*** --",
		"--",
	} {
		m, err := ParseMove(line)
		assert.NoError(t, err, line)
		assert.Equal(t, line, m.String())
		again, err := ParseMove(m.String())
		assert.NoError(t, err, line)
		assert.True(t, m.Equal(again), line)
	}
}

func TestParseStripsParens(t *testing.T) {
	is := is.New(t)
	m, err := ParseMove("(FO)OD 8G")
	is.NoErr(err)
	is.Equal(m.WordString(), "FOOD")
}

func TestMask(t *testing.T) {
	is := is.New(t)
	m, err := ParseMove("DEW? --")
	is.NoErr(err)
	masked := m.Mask()
	is.Equal(masked.String(), "**** --")
	// The original is untouched.
	is.Equal(m.String(), "DEW? --")

	play, err := ParseMove("FOO 8G")
	is.NoErr(err)
	is.Equal(play.Mask(), play)
}

func TestEqualDistinguishesOrientation(t *testing.T) {
	is := is.New(t)
	h, err := ParseMove("X 3H")
	is.NoErr(err)
	v, err := ParseMove("X H3")
	is.NoErr(err)
	is.True(!h.Equal(v))
}

func TestCoords(t *testing.T) {
	is := is.New(t)
	is.Equal(ToBoardGameCoords(7, 6, false), "8G")
	is.Equal(ToBoardGameCoords(7, 6, true), "G8")
	row, col, vertical, ok := FromBoardGameCoords("8G")
	is.True(ok)
	is.Equal(row, 7)
	is.Equal(col, 6)
	is.True(!vertical)
}
