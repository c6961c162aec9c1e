package game

import (
	"fmt"

	"github.com/domino14/scrabbler/move"
	"github.com/domino14/scrabbler/player"
	"github.com/domino14/scrabbler/tilemapping"
)

// playerState is the referee's book-keeping for one seat. The Player
// itself never sees any of this except its own rack.
type playerState struct {
	player player.Player

	rack     *tilemapping.Rack
	points   int
	bingos   int
	turns    int
	lastMove *move.Move

	// faults counts protocol violations and illegal moves over the whole
	// game; consecutiveFaults resets whenever a legal move comes in.
	faults            int
	consecutiveFaults int
}

func newPlayerState(p player.Player) *playerState {
	return &playerState{player: p, rack: tilemapping.NewRack()}
}

func (p *playerState) name() string {
	return p.player.Name()
}

func (p *playerState) stateString(myturn bool) string {
	onturn := ""
	if myturn {
		onturn = "-> "
	}
	return fmt.Sprintf("%4v%20v%9v %4v", onturn, p.name(), p.rack.String(), p.points)
}
