// The scrabbler command plays one refereed game between two players and
// prints the result as JSON. Players are built-in strategies, or external
// programs speaking the line protocol:
//
//	scrabbler -dictionary /usr/share/dict/words -p1 max-score -p2 'exec:scrabbler-bot -strategy min-score'
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/scrabbler/config"
	"github.com/domino14/scrabbler/game"
	"github.com/domino14/scrabbler/lexicon"
	"github.com/domino14/scrabbler/player"
)

var (
	configFile = flag.String("config", "", "path to a config file")
	dictionary = flag.String("dictionary", "", "path to the word list (overrides config)")
	p1spec     = flag.String("p1", "max-score", "first player: a strategy name or exec:CMD")
	p2spec     = flag.String("p2", "max-score", "second player: a strategy name or exec:CMD")
)

func makePlayer(name, spec string, rules *game.GameRules) (player.Player, error) {
	if cmdline, ok := strings.CutPrefix(spec, "exec:"); ok {
		argv, err := shellquote.Split(cmdline)
		if err != nil {
			return nil, err
		}
		return player.NewExternalPlayer(name, argv, rules.Config().MoveTimeout)
	}
	strategy, err := player.StrategyFromName(spec)
	if err != nil {
		return nil, err
	}
	return player.NewStrategyPlayer(name+"-"+spec, strategy, rules.Lexicon(),
		rules.LetterDistribution(), rules.BoardLayout(),
		rules.Config().BingoBonus), nil
}

func main() {
	flag.Parse()
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
	rules, err := game.NewGameRules(cfg, lex)
	if err != nil {
		log.Fatal().Err(err).Msg("building rules")
	}

	p1, err := makePlayer("p1", *p1spec, rules)
	if err != nil {
		log.Fatal().Err(err).Msg("starting player 1")
	}
	p2, err := makePlayer("p2", *p2spec, rules)
	if err != nil {
		p1.Close()
		log.Fatal().Err(err).Msg("starting player 2")
	}

	res, err := game.NewGame(rules, p1, p2).PlayToEnd(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("game failed")
	}

	enc := json.NewEncoder(os.Stdout)
	if err := enc.Encode(res); err != nil {
		log.Fatal().Err(err).Msg("encoding result")
	}
}
