// The scrabbler-bot command is an external player: it says HELLO on
// stdout, then answers each "RACK:OPPONENTMOVE" line on stdin with one
// move line. Run it under the scrabbler referee with -p1 'exec:...'.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"regexp"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/scrabbler/board"
	"github.com/domino14/scrabbler/config"
	"github.com/domino14/scrabbler/lexicon"
	"github.com/domino14/scrabbler/move"
	"github.com/domino14/scrabbler/player"
	"github.com/domino14/scrabbler/tilemapping"
)

var (
	configFile = flag.String("config", "", "path to a config file")
	dictionary = flag.String("dictionary", "", "path to the word list (overrides config)")
	strategy   = flag.String("strategy", "max-score", "move selection strategy")
)

var reRequest = regexp.MustCompile(`^([A-Z?*]*):(.*)$`)

func main() {
	flag.Parse()
	// Stdout carries the protocol; logs go to stderr only.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	if *dictionary != "" {
		cfg.DictionaryPath = *dictionary
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	lex, err := lexicon.LoadDictionary(cfg.DictionaryPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading dictionary")
	}
	strat, err := player.StrategyFromName(*strategy)
	if err != nil {
		log.Fatal().Err(err).Msg("bad strategy")
	}
	dist, err := tilemapping.NamedLetterDistribution(cfg, cfg.LetterDistributionName)
	if err != nil {
		log.Fatal().Err(err).Msg("loading letter distribution")
	}
	layout, err := board.NamedLayout(cfg.BoardLayoutName)
	if err != nil {
		log.Fatal().Err(err).Msg("loading board layout")
	}
	p := player.NewStrategyPlayer(*strategy, strat, lex, dist,
		layout, cfg.BingoBonus)

	fmt.Println("HELLO")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fields := reRequest.FindStringSubmatch(scanner.Text())
		if fields == nil {
			log.Fatal().Str("line", scanner.Text()).Msg("unparseable request")
		}
		var opp *move.Move
		if fields[2] != "" {
			opp, err = move.ParseMove(fields[2])
			if err != nil {
				log.Fatal().Err(err).Msg("unparseable opponent move")
			}
		}
		m, err := p.RequestMove(context.Background(), []rune(fields[1]), opp)
		if err != nil {
			log.Fatal().Err(err).Msg("move generation failed")
		}
		fmt.Println(m.String())
	}
}
