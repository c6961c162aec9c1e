package game

import (
	"github.com/domino14/scrabbler/board"
	"github.com/domino14/scrabbler/config"
	"github.com/domino14/scrabbler/lexicon"
	"github.com/domino14/scrabbler/tilemapping"
)

// DefaultExchangeLimit is the minimum number of tiles the bag must hold
// for an exchange to be legal.
const DefaultExchangeLimit = 7

// GameRules is a simple struct that encapsulates the instantiated objects
// needed to actually play a game.
type GameRules struct {
	cfg           *config.Config
	dist          *tilemapping.LetterDistribution
	lexicon       *lexicon.Lexicon
	layout        []string
	boardname     string
	exchangeLimit int
}

func NewGameRules(cfg *config.Config, lex *lexicon.Lexicon) (*GameRules, error) {
	dist, err := tilemapping.NamedLetterDistribution(cfg, cfg.LetterDistributionName)
	if err != nil {
		return nil, err
	}
	layout, err := board.NamedLayout(cfg.BoardLayoutName)
	if err != nil {
		return nil, err
	}
	return &GameRules{
		cfg:           cfg,
		dist:          dist,
		lexicon:       lex,
		layout:        layout,
		boardname:     cfg.BoardLayoutName,
		exchangeLimit: DefaultExchangeLimit,
	}, nil
}

func (g GameRules) Config() *config.Config {
	return g.cfg
}

func (g GameRules) LetterDistribution() *tilemapping.LetterDistribution {
	return g.dist
}

func (g GameRules) Lexicon() *lexicon.Lexicon {
	return g.lexicon
}

func (g GameRules) LexiconName() string {
	return g.lexicon.Name()
}

func (g GameRules) BoardLayout() []string {
	return g.layout
}

func (g GameRules) BoardName() string {
	return g.boardname
}

func (g *GameRules) SetExchangeLimit(l int) {
	g.exchangeLimit = l
}

func (g GameRules) ExchangeLimit() int {
	return g.exchangeLimit
}
