package player

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/domino14/scrabbler/board"
	"github.com/domino14/scrabbler/lexicon"
	"github.com/domino14/scrabbler/move"
	"github.com/domino14/scrabbler/movegen"
	"github.com/domino14/scrabbler/tilemapping"
)

// Strategy selects among the legal moves of a turn.
type Strategy uint8

const (
	// MaxScore plays the highest scoring move.
	MaxScore Strategy = iota
	// MinScore plays the lowest scoring move, useful as a weak sparring
	// partner.
	MinScore
	// MaxLength plays the longest word, breaking ties arbitrarily.
	MaxLength
)

// StrategyFromName parses a strategy name as used in CLI flags.
func StrategyFromName(name string) (Strategy, error) {
	switch name {
	case "max-score", "":
		return MaxScore, nil
	case "min-score":
		return MinScore, nil
	case "max-length":
		return MaxLength, nil
	}
	return MaxScore, fmt.Errorf("unknown strategy %q", name)
}

// StrategyPlayer is an in-process player. It keeps its own board, updated
// from the opponent moves the referee relays, and trusts the referee for
// its rack.
type StrategyPlayer struct {
	name     string
	strategy Strategy
	gen      *movegen.Generator
	board    *board.GameBoard
}

func NewStrategyPlayer(name string, strategy Strategy, lex *lexicon.Lexicon,
	ld *tilemapping.LetterDistribution, layout []string, bingoBonus int) *StrategyPlayer {

	return &StrategyPlayer{
		name:     name,
		strategy: strategy,
		gen:      movegen.NewGenerator(lex, ld, bingoBonus),
		board:    board.MakeBoard(layout),
	}
}

func (p *StrategyPlayer) Name() string {
	return p.name
}

// RequestMove applies the opponent's move to the player's board, generates
// every legal play for the rack, and picks one per the strategy. With no
// legal plays it passes.
func (p *StrategyPlayer) RequestMove(ctx context.Context, rack []rune,
	opponent *move.Move) (*move.Move, error) {

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opponent != nil {
		p.board.PlayMove(opponent)
	}

	r := tilemapping.NewRack()
	if err := r.AddAll(rack); err != nil {
		return nil, err
	}

	moves := p.gen.GenAll(p.board, r)
	if len(moves) == 0 {
		return move.NewPassMove(), nil
	}

	var best *move.Move
	switch p.strategy {
	case MinScore:
		best = lo.MinBy(moves, func(a, b *move.Move) bool {
			return a.Score() < b.Score()
		})
	case MaxLength:
		best = lo.MaxBy(moves, func(a, b *move.Move) bool {
			return len(a.Word()) > len(b.Word())
		})
	default:
		best = lo.MaxBy(moves, func(a, b *move.Move) bool {
			return a.Score() > b.Score()
		})
	}

	p.board.PlayMove(best)
	return best, nil
}

func (p *StrategyPlayer) Close() error {
	return nil
}
