// Package automatic plays batches of computer vs computer games, for
// comparing strategies and smoking out referee bugs at volume.
package automatic

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/scrabbler/config"
	"github.com/domino14/scrabbler/game"
	"github.com/domino14/scrabbler/lexicon"
	"github.com/domino14/scrabbler/player"
)

// Options configures a batch run.
type Options struct {
	NumGames int
	// Threads is the number of games in flight at once.
	Threads   int
	Strategy1 string
	Strategy2 string
	// LogFilename, when set, receives one CSV line per finished game.
	LogFilename string
}

// Stats aggregates a batch of games.
type Stats struct {
	mu         sync.Mutex
	Games      int
	Wins       [2]int
	Ties       int
	Points     [2]int64
	Bingos     [2]int
	EndReasons map[game.EndReason]int
}

func (s *Stats) add(res *game.GameResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Games++
	s.EndReasons[res.EndReason]++
	switch res.Winner {
	case res.Players[0].Name:
		s.Wins[0]++
	case res.Players[1].Name:
		s.Wins[1]++
	default:
		s.Ties++
	}
	for i, p := range res.Players {
		s.Points[i] += int64(p.Score)
		s.Bingos[i] += p.Bingos
	}
}

// String summarizes the batch for humans.
func (s *Stats) String() string {
	if s.Games == 0 {
		return "no games played"
	}
	return fmt.Sprintf("%v games: %v wins / %v wins / %v ties, avg scores %.1f / %.1f",
		s.Games, s.Wins[0], s.Wins[1], s.Ties,
		float64(s.Points[0])/float64(s.Games),
		float64(s.Points[1])/float64(s.Games))
}

// PlayGames runs opts.NumGames strategy vs strategy games and aggregates
// the results. The first game to fail outright stops the batch.
func PlayGames(ctx context.Context, cfg *config.Config, lex *lexicon.Lexicon,
	opts Options) (*Stats, error) {

	strat1, err := player.StrategyFromName(opts.Strategy1)
	if err != nil {
		return nil, err
	}
	strat2, err := player.StrategyFromName(opts.Strategy2)
	if err != nil {
		return nil, err
	}
	rules, err := game.NewGameRules(cfg, lex)
	if err != nil {
		return nil, err
	}

	stats := &Stats{EndReasons: map[game.EndReason]int{}}

	var logChan chan string
	var logWG sync.WaitGroup
	if opts.LogFilename != "" {
		logfile, err := os.Create(opts.LogFilename)
		if err != nil {
			return nil, err
		}
		logChan = make(chan string, 100)
		logWG.Add(1)
		go func() {
			defer logWG.Done()
			defer logfile.Close()
			logfile.WriteString("gameID,endReason,winner,score1,score2,turns\n")
			for msg := range logChan {
				logfile.WriteString(msg)
			}
		}()
	}

	threads := opts.Threads
	if threads < 1 {
		threads = 1
	}
	log.Debug().Int("games", opts.NumGames).Int("threads", threads).
		Msg("starting batch")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)
	for i := 0; i < opts.NumGames; i++ {
		g.Go(func() error {
			ld := rules.LetterDistribution()
			bingo := rules.Config().BingoBonus
			p1 := player.NewStrategyPlayer("p1-"+opts.Strategy1, strat1,
				lex, ld, rules.BoardLayout(), bingo)
			p2 := player.NewStrategyPlayer("p2-"+opts.Strategy2, strat2,
				lex, ld, rules.BoardLayout(), bingo)

			res, err := game.NewGame(rules, p1, p2).PlayToEnd(gctx)
			if err != nil {
				return err
			}
			stats.add(res)
			if logChan != nil {
				logChan <- fmt.Sprintf("%v,%v,%v,%v,%v,%v\n",
					res.GameID, res.EndReason, res.Winner,
					res.Players[0].Score, res.Players[1].Score, len(res.Moves))
			}
			return nil
		})
	}

	err = g.Wait()
	if logChan != nil {
		close(logChan)
		logWG.Wait()
	}
	if err != nil {
		return nil, err
	}
	return stats, nil
}
