package lexicon

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// ScanWords reads a newline-separated word list into lex, skipping blank
// lines and any entry containing a non-letter. It returns the number of
// lines accepted.
func ScanWords(data io.Reader, lex *Lexicon) (int, error) {
	scanner := bufio.NewScanner(data)
	accepted := 0
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || !allLetters(word) {
			continue
		}
		lex.Add(word)
		accepted++
	}
	if err := scanner.Err(); err != nil {
		return accepted, err
	}
	return accepted, nil
}

// LoadDictionary reads a word-list file into a new Lexicon named after it.
func LoadDictionary(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lex := New(path)
	n, err := ScanWords(f, lex)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Int("accepted", n).
		Int("words", lex.WordCount()).Msg("loaded dictionary")
	return lex, nil
}

func allLetters(word string) bool {
	for _, c := range word {
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return false
		}
	}
	return true
}
