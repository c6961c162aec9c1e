// Package game contains the referee: it owns the authoritative board,
// bag, and racks, relays moves between two players, scores and validates
// everything, and decides when and how the game ends.
package game

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/scrabbler/board"
	"github.com/domino14/scrabbler/move"
	"github.com/domino14/scrabbler/player"
	"github.com/domino14/scrabbler/tilemapping"
)

// EndReason says why a finished game ended.
type EndReason string

const (
	// EndAllPassed covers both ways a game can peter out: consecutive
	// passes, or too many scoreless turns. Both players lose the value
	// of their own racks.
	EndAllPassed EndReason = "AllPassed"
	// EndRackAndBagExhausted means a player went out; the opponent's
	// leftover rack value moves from their score to the winner's.
	EndRackAndBagExhausted EndReason = "RackAndBagExhausted"
	// EndForfeit means a player crashed or faulted too many times in a
	// row. The opponent wins regardless of score.
	EndForfeit EndReason = "Forfeit"
)

// passesToEndGame is how many consecutive passes end the game. Faults
// count, since a fault becomes a forced pass.
const passesToEndGame = 2

// TurnRecord is one line of the game history.
type TurnRecord struct {
	Player string `json:"player"`
	Rack   string `json:"rack"`
	Move   string `json:"move"`
	Score  int    `json:"score"`
	Total  int    `json:"total"`
	Micros int64  `json:"time"`
	Fault  string `json:"fault,omitempty"`
}

// PlayerResult is one player's final line in a GameResult.
type PlayerResult struct {
	Name   string `json:"name"`
	Rack   string `json:"rack"`
	Score  int    `json:"score"`
	Bingos int    `json:"bingos"`
	Faults int    `json:"faults"`
}

// GameResult serializes to the JSON document the CLI prints.
type GameResult struct {
	GameID    string          `json:"id"`
	Lexicon   string          `json:"lexicon"`
	EndReason EndReason       `json:"end_reason"`
	Winner    string          `json:"winner,omitempty"`
	Moves     []TurnRecord    `json:"moves"`
	Players   [2]PlayerResult `json:"players"`
}

// Game is a single game between two players, run by the referee.
type Game struct {
	rules   *GameRules
	gameID  string
	board   *board.GameBoard
	bag     *tilemapping.Bag
	players [2]*playerState

	onturn            int
	turnnum           int
	playing           bool
	endReason         EndReason
	forfeitWinner     int
	consecutivePasses int
	scorelessTurns    int
	history           []TurnRecord
}

// NewGame creates a game between two players under the given rules. Call
// StartGame or PlayToEnd to actually play it.
func NewGame(rules *GameRules, p1, p2 player.Player) *Game {
	return &Game{
		rules:         rules,
		players:       [2]*playerState{newPlayerState(p1), newPlayerState(p2)},
		forfeitWinner: -1,
	}
}

func newGameID() string {
	return hex.EncodeToString(frand.Bytes(8))
}

// StartGame resets the board and bag and draws the starting racks.
func (g *Game) StartGame() error {
	g.gameID = newGameID()
	g.board = board.MakeBoard(g.rules.BoardLayout())
	g.bag = g.rules.LetterDistribution().MakeBag()
	g.onturn = 0
	g.turnnum = 0
	g.consecutivePasses = 0
	g.scorelessTurns = 0
	g.endReason = ""
	g.forfeitWinner = -1
	g.history = nil

	for _, p := range g.players {
		p.rack.Clear()
		tiles, err := g.bag.Draw(tilemapping.RackTileLimit)
		if err != nil {
			return err
		}
		if err := p.rack.AddAll(tiles); err != nil {
			return err
		}
	}
	g.playing = true
	log.Info().Str("gameID", g.gameID).
		Str("p1", g.players[0].name()).Str("p2", g.players[1].name()).
		Msg("game started")
	return nil
}

func (g *Game) GameID() string {
	return g.gameID
}

func (g *Game) Playing() bool {
	return g.playing
}

func (g *Game) History() []TurnRecord {
	return g.history
}

// IllegalMoveError is any rejection from ValidateMove: bad geometry,
// tiles the rack doesn't hold, a word outside the lexicon, or an
// exchange with too few tiles in the bag.
type IllegalMoveError struct {
	Err error
}

func (e *IllegalMoveError) Error() string {
	return "illegal move: " + e.Err.Error()
}

func (e *IllegalMoveError) Unwrap() error {
	return e.Err
}

// ValidateMove checks a move against the rack, board, bag, and lexicon.
// For a placement it returns a scored copy of the move, the way the
// player should have scored it; passes and exchanges come back as is.
// Rejections are IllegalMoveErrors.
func (g *Game) ValidateMove(m *move.Move, rack *tilemapping.Rack) (*move.Move, error) {
	switch m.Action() {
	case move.MoveTypePass:
		return m, nil
	case move.MoveTypeExchange:
		if g.bag.TilesRemaining() < g.rules.ExchangeLimit() {
			return nil, &IllegalMoveError{Err: fmt.Errorf(
				"cannot exchange with fewer than %v tiles in the bag",
				g.rules.ExchangeLimit())}
		}
		if err := takeAll(rack.Copy(), m.Word()); err != nil {
			return nil, &IllegalMoveError{Err: err}
		}
		return m, nil
	default:
		row, col, vertical := m.CoordsAndVertical()
		if err := g.board.ErrorIfIllegalPlay(row, col, vertical, m.Word()); err != nil {
			return nil, &IllegalMoveError{Err: err}
		}
		needed, err := g.neededTiles(m)
		if err != nil {
			return nil, &IllegalMoveError{Err: err}
		}
		if err := takeAll(rack.Copy(), needed); err != nil {
			return nil, &IllegalMoveError{Err: err}
		}
		words, err := g.board.FormedWords(m)
		if err != nil {
			return nil, &IllegalMoveError{Err: err}
		}
		for _, w := range words {
			if !g.rules.Lexicon().HasWord(w) {
				return nil, &IllegalMoveError{Err: fmt.Errorf(
					"%v is not in lexicon %v", w, g.rules.LexiconName())}
			}
		}
		cfg := g.rules.Config()
		score, tilesPlayed := g.board.ScoreMove(m, g.rules.LetterDistribution(),
			tilemapping.RackTileLimit, cfg.BingoBonus)
		if g.board.IsEmpty() {
			score += cfg.FirstMoveBonus
		}
		return move.NewScoringMove(score, tilesPlayed, row, col, vertical, m.Word()), nil
	}
}

// neededTiles lists the rack tiles a play consumes: one per empty square
// it covers, with lowercase word letters consuming a blank.
func (g *Game) neededTiles(m *move.Move) ([]rune, error) {
	row, col, vertical := m.CoordsAndVertical()
	ri, ci := 0, 1
	if vertical {
		ri, ci = ci, ri
	}
	var needed []rune
	for idx, letter := range m.Word() {
		newrow, newcol := row+(ri*idx), col+(ci*idx)
		if !g.board.PosExists(newrow, newcol) {
			return nil, errors.New("play extends off of the board")
		}
		if g.board.HasLetter(newrow, newcol) {
			continue
		}
		if letter >= 'a' && letter <= 'z' {
			needed = append(needed, tilemapping.Blank)
		} else {
			needed = append(needed, letter)
		}
	}
	return needed, nil
}

func takeAll(rack *tilemapping.Rack, tiles []rune) error {
	for _, t := range tiles {
		if err := rack.Take(t); err != nil {
			return err
		}
	}
	return nil
}

// playTurn runs one full turn for the player on turn: request, validate,
// commit or charge a fault, and check the end conditions.
func (g *Game) playTurn(ctx context.Context) {
	us := g.players[g.onturn]
	them := g.players[1-g.onturn]

	var opp *move.Move
	if them.lastMove != nil {
		opp = them.lastMove.Mask()
	}

	rackBefore := us.rack.String()
	tctx, cancel := context.WithTimeout(ctx, g.rules.Config().MoveTimeout)
	start := time.Now()
	m, err := us.player.RequestMove(tctx, us.rack.TilesOn(), opp)
	cancel()
	elapsed := time.Since(start)

	if err == nil {
		m, err = g.ValidateMove(m, us.rack)
	}

	if err != nil {
		if errors.Is(err, player.ErrPeerClosed) {
			// No future turn can succeed, so the fault cap doesn't apply.
			us.faults++
			us.consecutiveFaults++
			log.Warn().Str("player", us.name()).Err(err).Msg("player gone, forfeiting")
			g.record(us, rackBefore, "--", 0, elapsed, err.Error())
			g.forfeit(1 - g.onturn)
			return
		}
		g.chargeFault(us, rackBefore, elapsed, err)
		return
	}

	us.consecutiveFaults = 0
	g.commitMove(us, m)
	us.lastMove = m
	us.turns++

	g.record(us, rackBefore, m.String(), m.Score(), elapsed, "")
	log.Info().Str("player", us.name()).Str("move", m.ShortDescription()).
		Int("score", m.Score()).Int("total", us.points).
		Str("rack", rackBefore).Msg("turn")

	g.checkEndConditions(us, them)
}

// commitMove applies an already validated move: tiles leave the rack, the
// board and score advance, and the rack refills from the bag.
func (g *Game) commitMove(us *playerState, m *move.Move) {
	switch m.Action() {
	case move.MoveTypePass:
		g.consecutivePasses++
		g.scorelessTurns++
	case move.MoveTypeExchange:
		takeAll(us.rack, m.Word())
		drawn, _ := g.bag.Exchange(m.Word())
		us.rack.AddAll(drawn)
		g.consecutivePasses = 0
		g.scorelessTurns++
	default:
		needed, _ := g.neededTiles(m)
		takeAll(us.rack, needed)
		g.board.PlayMove(m)
		us.points += m.Score()
		if m.Bingo() {
			us.bingos++
		}
		refill := g.bag.DrawAtMost(tilemapping.RackTileLimit - us.rack.NumTiles())
		us.rack.AddAll(refill)
		g.consecutivePasses = 0
		if m.Score() > 0 {
			g.scorelessTurns = 0
		} else {
			g.scorelessTurns++
		}
	}
}

// chargeFault converts an illegal move or protocol slip into a forced
// pass. Too many in a row and the game is forfeited.
func (g *Game) chargeFault(us *playerState, rackBefore string, elapsed time.Duration, err error) {
	us.faults++
	us.consecutiveFaults++
	log.Warn().Str("player", us.name()).Err(err).
		Int("consecutiveFaults", us.consecutiveFaults).Msg("fault")

	if us.consecutiveFaults >= g.rules.Config().MaxConsecutiveFaults {
		g.record(us, rackBefore, "--", 0, elapsed, err.Error())
		g.forfeit(1 - g.onturn)
		return
	}

	g.consecutivePasses++
	g.scorelessTurns++
	pass := move.NewPassMove()
	us.lastMove = pass
	us.turns++
	g.record(us, rackBefore, pass.String(), 0, elapsed, err.Error())
	g.checkEndConditions(us, g.players[1-g.onturn])
}

func (g *Game) record(us *playerState, rack, mv string, score int,
	elapsed time.Duration, fault string) {

	g.history = append(g.history, TurnRecord{
		Player: us.name(),
		Rack:   rack,
		Move:   mv,
		Score:  score,
		Total:  us.points,
		Micros: elapsed.Microseconds(),
		Fault:  fault,
	})
}

// checkEndConditions ends the game when everyone stopped scoring or when
// the player on turn went out.
func (g *Game) checkEndConditions(us, them *playerState) {
	ld := g.rules.LetterDistribution()

	if g.consecutivePasses >= passesToEndGame ||
		g.scorelessTurns >= g.rules.Config().ScorelessTurnLimit {
		us.points -= us.rack.Value(ld)
		them.points -= them.rack.Value(ld)
		g.playing = false
		g.endReason = EndAllPassed
		return
	}

	if us.rack.NumTiles() == 0 && g.bag.TilesRemaining() == 0 {
		// Going out: the opponent's leftover tiles count against them and
		// for the player who went out.
		v := them.rack.Value(ld)
		us.points += v
		them.points -= v
		g.playing = false
		g.endReason = EndRackAndBagExhausted
	}
}

func (g *Game) forfeit(winner int) {
	g.playing = false
	g.endReason = EndForfeit
	g.forfeitWinner = winner
}

// PlayToEnd runs a whole game and closes both players, whatever happens.
func (g *Game) PlayToEnd(ctx context.Context) (*GameResult, error) {
	defer func() {
		for _, p := range g.players {
			p.player.Close()
		}
	}()

	if err := g.StartGame(); err != nil {
		return nil, err
	}
	for g.playing {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		g.playTurn(ctx)
		g.onturn = 1 - g.onturn
		g.turnnum++
	}
	res := g.result()
	log.Info().Str("gameID", g.gameID).Str("endReason", string(g.endReason)).
		Str("winner", res.Winner).
		Int("p1", g.players[0].points).Int("p2", g.players[1].points).
		Msg("game over")
	log.Debug().Msg("\n" + g.ToDisplayText())
	return res, nil
}

// ToDisplayText dumps the board and both score lines for logs.
func (g *Game) ToDisplayText() string {
	return g.board.ToDisplayText() + "\n" +
		g.players[0].stateString(g.onturn == 0) + "\n" +
		g.players[1].stateString(g.onturn == 1)
}

func (g *Game) result() *GameResult {
	res := &GameResult{
		GameID:    g.gameID,
		Lexicon:   g.rules.LexiconName(),
		EndReason: g.endReason,
		Moves:     g.history,
	}
	for i, p := range g.players {
		res.Players[i] = PlayerResult{
			Name:   p.name(),
			Rack:   p.rack.String(),
			Score:  p.points,
			Bingos: p.bingos,
			Faults: p.faults,
		}
	}
	switch {
	case g.forfeitWinner >= 0:
		res.Winner = g.players[g.forfeitWinner].name()
	case g.players[0].points > g.players[1].points:
		res.Winner = g.players[0].name()
	case g.players[1].points > g.players[0].points:
		res.Winner = g.players[1].name()
	}
	return res
}
