package tilemapping

import (
	"testing"

	"github.com/matryer/is"
)

func TestBagDraw(t *testing.T) {
	is := is.New(t)
	ld := EnglishLetterDistribution()
	bag := ld.MakeBag()
	is.Equal(bag.TilesRemaining(), 100)

	drawn, err := bag.Draw(7)
	is.NoErr(err)
	is.Equal(len(drawn), 7)
	is.Equal(bag.TilesRemaining(), 93)

	_, err = bag.Draw(94)
	is.True(err != nil)
	is.Equal(bag.TilesRemaining(), 93)
}

func TestBagDrawAtMost(t *testing.T) {
	is := is.New(t)
	ld := EnglishLetterDistribution()
	bag := ld.MakeBag()
	bag.DrawAtMost(95)
	is.Equal(bag.TilesRemaining(), 5)
	drawn := bag.DrawAtMost(7)
	is.Equal(len(drawn), 5)
	is.Equal(bag.TilesRemaining(), 0)
	is.Equal(len(bag.DrawAtMost(7)), 0)
}

func TestBagExhaustion(t *testing.T) {
	is := is.New(t)
	ld := EnglishLetterDistribution()
	bag := ld.MakeBag()
	// Draw the whole bag; every tile of the distribution must come out
	// exactly once.
	counts := map[rune]int{}
	for bag.TilesRemaining() > 0 {
		drawn, err := bag.Draw(1)
		is.NoErr(err)
		counts[drawn[0]]++
	}
	is.Equal(counts['E'], 12)
	is.Equal(counts[Blank], 2)
	is.Equal(counts['Q'], 1)
	total := 0
	for _, n := range counts {
		total += n
	}
	is.Equal(total, 100)
}

func TestBagPutBack(t *testing.T) {
	is := is.New(t)
	ld := EnglishLetterDistribution()
	bag := ld.MakeBag()
	drawn, err := bag.Draw(7)
	is.NoErr(err)
	is.Equal(bag.TilesRemaining(), 93)
	bag.PutBack(drawn)
	is.Equal(bag.TilesRemaining(), 100)
	bag.PutBack(nil)
	is.Equal(bag.TilesRemaining(), 100)
}

func TestBagExchange(t *testing.T) {
	is := is.New(t)
	ld := EnglishLetterDistribution()
	bag := ld.MakeBag()
	drawn, err := bag.Draw(7)
	is.NoErr(err)

	redrawn, err := bag.Exchange(drawn[:3])
	is.NoErr(err)
	is.Equal(len(redrawn), 3)
	// Conservation: the three surrendered tiles went back in.
	is.Equal(bag.TilesRemaining(), 93)
}
