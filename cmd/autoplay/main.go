// The autoplay command plays many computer vs computer games in parallel
// and prints aggregate statistics, for strategy comparisons.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/scrabbler/automatic"
	"github.com/domino14/scrabbler/config"
	"github.com/domino14/scrabbler/lexicon"
)

var (
	configFile = flag.String("config", "", "path to a config file")
	dictionary = flag.String("dictionary", "", "path to the word list (overrides config)")
	numGames   = flag.Int("n", 100, "number of games to play")
	threads    = flag.Int("threads", runtime.NumCPU(), "games in flight at once")
	strategy1  = flag.String("strategy1", "max-score", "first player's strategy")
	strategy2  = flag.String("strategy2", "max-score", "second player's strategy")
	outFile    = flag.String("out", "", "CSV file for per-game results")
)

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
		// Per-turn logging would drown the batch.
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	lex, err := lexicon.LoadDictionary(cfg.DictionaryPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading dictionary")
	}

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stats, err := automatic.PlayGames(ctx, cfg, lex, automatic.Options{
		NumGames:    *numGames,
		Threads:     *threads,
		Strategy1:   *strategy1,
		Strategy2:   *strategy2,
		LogFilename: *outFile,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("batch failed")
	}

	log.Warn().Msg(stats.String())
	enc := json.NewEncoder(os.Stdout)
	if err := enc.Encode(stats); err != nil {
		log.Fatal().Err(err).Msg("encoding stats")
	}
}
