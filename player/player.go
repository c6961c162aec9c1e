// Package player defines the referee's view of a game participant and
// provides two implementations: in-process strategy players built on the
// move generator, and a line-protocol wrapper around an external program.
package player

import (
	"context"

	"github.com/domino14/scrabbler/move"
)

// Player produces one move per turn. The referee never shows a player
// the opponent's rack or the bag; each turn it sends the player its own
// full rack and the opponent's previous move, already masked if it was
// an exchange.
type Player interface {
	Name() string

	// RequestMove asks for the next move. The opponent move is nil on
	// the first turn of the game. Implementations should honor the
	// context deadline; the referee treats an expired deadline as a
	// fault, not a crash.
	RequestMove(ctx context.Context, rack []rune, opponent *move.Move) (*move.Move, error)

	// Close releases any resources. It must be safe to call more than
	// once and after a failed RequestMove.
	Close() error
}
