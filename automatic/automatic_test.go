package automatic

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/scrabbler/config"
	"github.com/domino14/scrabbler/lexicon"
)

func batchLexicon() *lexicon.Lexicon {
	lex := lexicon.New("test")
	for _, w := range []string{
		"AA", "AB", "AD", "AE", "AG", "AH", "AI", "AL", "AM", "AN", "AR",
		"AS", "AT", "AW", "AX", "AY", "BA", "BE", "BI", "BO", "BY", "DE",
		"DO", "ED", "EF", "EH", "EL", "EM", "EN", "ER", "ES", "ET", "EX",
		"FA", "GO", "HA", "HE", "HI", "HO", "ID", "IF", "IN", "IS", "IT",
		"NO", "ON", "OR", "OS", "OW", "OX", "OY", "PA", "PE", "PI", "QI",
		"RE", "SO", "TA", "TI", "TO", "UN", "UP", "US", "UT", "WE", "XI",
		"YA", "YE", "YO", "ZA",
	} {
		lex.Add(w)
	}
	return lex
}

func TestPlayGames(t *testing.T) {
	is := is.New(t)
	out := filepath.Join(t.TempDir(), "games.csv")
	stats, err := PlayGames(context.Background(), config.Default(), batchLexicon(),
		Options{
			NumGames:    4,
			Threads:     2,
			Strategy1:   "max-score",
			Strategy2:   "min-score",
			LogFilename: out,
		})
	is.NoErr(err)
	is.Equal(stats.Games, 4)
	is.Equal(stats.Wins[0]+stats.Wins[1]+stats.Ties, 4)

	data, err := os.ReadFile(out)
	is.NoErr(err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	// Header plus one line per game.
	is.Equal(len(lines), 5)
}

func TestPlayGamesBadStrategy(t *testing.T) {
	is := is.New(t)
	_, err := PlayGames(context.Background(), config.Default(), batchLexicon(),
		Options{NumGames: 1, Strategy1: "psychic"})
	is.True(err != nil)
}
