package movegen

import (
	"sort"
	"strconv"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/scrabbler/board"
	"github.com/domino14/scrabbler/lexicon"
	"github.com/domino14/scrabbler/move"
	"github.com/domino14/scrabbler/tilemapping"
)

func testLexicon() *lexicon.Lexicon {
	lex := lexicon.New("test")
	for _, w := range []string{
		"DOGGED", "BOSS", "GOB", "DOGGEDLY", "SUBWAY", "SUBWAYS",
		"ZVIEW", "ZVIEX", "OX", "WHAT", "NOPE",
	} {
		lex.Add(w)
	}
	return lex
}

func genSorted(t *testing.T, b *board.GameBoard, tiles string) []string {
	t.Helper()
	gen := NewGenerator(testLexicon(), tilemapping.EnglishLetterDistribution(), 50)
	rack, err := tilemapping.RackFromString(tiles)
	if err != nil {
		t.Fatal(err)
	}
	var out []string
	for _, m := range gen.GenAll(b, rack) {
		out = append(out, m.String()+" "+strconv.Itoa(m.Score()))
	}
	sort.Strings(out)
	return out
}

func playAll(t *testing.T, b *board.GameBoard, lines ...string) {
	t.Helper()
	for _, line := range lines {
		m, err := move.ParseMove(line)
		if err != nil {
			t.Fatal(err)
		}
		b.PlayMove(m)
	}
}

func TestGenAllEmptyBoard(t *testing.T) {
	b := board.MakeBoard(board.CrosswordGameBoard)
	got := genSorted(t, b, "SSUBWA?")
	want := []string{
		"BoSS 8E 10", "BoSS 8F 10", "BoSS 8G 10", "BoSS 8H 10",
		"BoSS H5 10", "BoSS H6 10", "BoSS H7 10", "BoSS H8 10",
		"SUBWAy 8C 22", "SUBWAy 8D 22", "SUBWAy 8E 20", "SUBWAy 8F 20",
		"SUBWAy 8G 20", "SUBWAy 8H 22",
		"SUBWAy H3 22", "SUBWAy H4 22", "SUBWAy H5 20", "SUBWAy H6 20",
		"SUBWAy H7 20", "SUBWAy H8 22",
		"SUBWAyS 8B 78", "SUBWAyS 8C 74", "SUBWAyS 8D 74", "SUBWAyS 8E 72",
		"SUBWAyS 8F 74", "SUBWAyS 8G 72", "SUBWAyS 8H 74",
		"SUBWAyS H2 78", "SUBWAyS H3 74", "SUBWAyS H4 74", "SUBWAyS H5 72",
		"SUBWAyS H6 74", "SUBWAyS H7 72", "SUBWAyS H8 74",
	}
	assert.Equal(t, want, got)
}

func TestGenAllHooksAndExtensions(t *testing.T) {
	b := board.MakeBoard(board.CrosswordGameBoard)
	playAll(t, b, "DoGGED H7", "BoSS 8G", "GOB 10H")

	got := genSorted(t, b, "UVWXYZ?")
	want := []string{
		"DoGGEDlY H7 13",
		"SUBWaY J8 13",
		"ZViEX 11E 55",
	}
	assert.Equal(t, want, got)
}

func TestGenAllParallelPlays(t *testing.T) {
	b := board.MakeBoard(board.CrosswordGameBoard)
	playAll(t, b, "SUBWAY A4")

	got := genSorted(t, b, "SUBWAYZ")
	want := []string{
		"SUBWAY 10A 39",
		"SUBWAY 4A 28",
		"SUBWAYS 4A 30",
		"SUBWAYS A4 15",
	}
	assert.Equal(t, want, got)
}

func TestGenAllPreservesOrientation(t *testing.T) {
	is := is.New(t)
	b := board.MakeBoard(board.CrosswordGameBoard)
	playAll(t, b, "SUBWAY A4")

	gen := NewGenerator(testLexicon(), tilemapping.EnglishLetterDistribution(), 50)
	rack, err := tilemapping.RackFromString("SUBWAYZ")
	is.NoErr(err)
	gen.GenAll(b, rack)
	is.True(!b.IsTransposed())
	is.Equal(rack.String(), "ABSUWYZ")
}

func TestGenAllSkipsOneLetterWords(t *testing.T) {
	is := is.New(t)
	// Real word lists carry the single letters; none of them is playable.
	lex := lexicon.New("test")
	lex.Add("A")
	lex.Add("B")
	lex.Add("AB")
	gen := NewGenerator(lex, tilemapping.EnglishLetterDistribution(), 50)

	b := board.MakeBoard(board.CrosswordGameBoard)
	rack, err := tilemapping.RackFromString("AB")
	is.NoErr(err)

	moves := gen.GenAll(b, rack)
	is.True(len(moves) > 0)
	for _, m := range moves {
		is.True(len(m.Word()) >= 2)
		row, col, vertical := m.CoordsAndVertical()
		is.NoErr(b.ErrorIfIllegalPlay(row, col, vertical, m.Word()))
	}

	// Hooks onto placed tiles still generate, as whole words.
	playAll(t, b, "AB 8H")
	rack, err = tilemapping.RackFromString("A")
	is.NoErr(err)
	for _, m := range gen.GenAll(b, rack) {
		is.True(len(m.Word()) >= 2)
		row, col, vertical := m.CoordsAndVertical()
		is.NoErr(b.ErrorIfIllegalPlay(row, col, vertical, m.Word()))
	}
}

func TestIsAnchor(t *testing.T) {
	is := is.New(t)
	b := board.MakeBoard(board.CrosswordGameBoard)
	playAll(t, b, "DoGGED H7", "BoSS 8G")

	is.True(!isAnchor(b, 0, 0))
	is.True(!isAnchor(b, 7, 6))
	is.True(isAnchor(b, 8, 8))
	is.True(isAnchor(b, 8, 9))
	is.True(!isAnchor(b, 8, 10))
}

func TestCrossChecks(t *testing.T) {
	is := is.New(t)
	lex := lexicon.New("test")
	lex.Add("SO")
	lex.Add("GI")
	gen := NewGenerator(lex, tilemapping.EnglishLetterDistribution(), 50)

	b := board.MakeBoard(board.CrosswordGameBoard)
	playAll(t, b, "DOGGED H7", "BOSS 8G")

	// An occupied square admits nothing.
	is.Equal(gen.crossChecks(b, 7, 6), uint32(0))
	// Under the B of BOSS nothing forms a word.
	is.Equal(gen.crossChecks(b, 8, 6), uint32(0))
	// Under the first S only O works, making SO.
	is.Equal(gen.crossChecks(b, 8, 8), crossSetBit('O'))
	// A square with no vertical neighbors admits everything.
	is.Equal(gen.crossChecks(b, 8, 10), trivialCrossSet)
}

func TestUpdownFragments(t *testing.T) {
	is := is.New(t)
	b := board.MakeBoard(board.CrosswordGameBoard)
	playAll(t, b, "DoGGED H7", "BoSS 8G", "GOB 10H")

	check := func(row, col int, up, down string) {
		t.Helper()
		u, d := updownFragments(b, row, col)
		is.Equal(u, up)
		is.Equal(d, down)
	}
	check(8, 8, "S", "O")
	check(8, 9, "S", "B")
	check(10, 8, "O", "")
	check(0, 0, "", "")
	check(5, 7, "", "DOGGED")
	check(12, 7, "DOGGED", "")
}
