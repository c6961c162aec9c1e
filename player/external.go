package player

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/scrabbler/move"
)

// ErrPeerClosed means the external program closed its end of the pipe,
// by exiting or otherwise. The referee forfeits the game on it rather
// than charging a fault, since no further move can ever arrive.
var ErrPeerClosed = errors.New("external player closed its pipe")

// ProtocolError is a line-protocol violation by an external player.
type ProtocolError struct {
	Player string
	Reason string
	Err    error
}

func (e *ProtocolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("player %v: %v: %v", e.Player, e.Reason, e.Err)
	}
	return fmt.Sprintf("player %v: %v", e.Player, e.Reason)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// ExternalPlayer speaks the line protocol with a child process: the child
// sends HELLO once, then answers each "RACK:OPPONENTMOVE" request line
// with one move line.
type ExternalPlayer struct {
	name   string
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	lines  chan string
	closer sync.Once
	logger zerolog.Logger
}

// NewExternalPlayer starts argv as a child process and waits up to
// helloTimeout for its HELLO. The child's stderr passes through to ours.
func NewExternalPlayer(name string, argv []string, helloTimeout time.Duration) (*ExternalPlayer, error) {
	if len(argv) == 0 {
		return nil, errors.New("empty player command")
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting player %v: %w", name, err)
	}

	p := &ExternalPlayer{
		name:   name,
		cmd:    cmd,
		stdin:  stdin,
		lines:  make(chan string),
		logger: log.With().Str("player", name).Logger(),
	}
	go func() {
		sc := bufio.NewScanner(stdout)
		for sc.Scan() {
			p.lines <- sc.Text()
		}
		close(p.lines)
	}()

	select {
	case line, ok := <-p.lines:
		if !ok {
			p.Close()
			return nil, &ProtocolError{Player: name, Reason: "exited before HELLO", Err: ErrPeerClosed}
		}
		if strings.TrimSpace(line) != "HELLO" {
			p.Close()
			return nil, &ProtocolError{Player: name, Reason: "expected HELLO, got " + line}
		}
	case <-time.After(helloTimeout):
		p.Close()
		return nil, &ProtocolError{Player: name, Reason: "no HELLO within " + helloTimeout.String()}
	}
	p.logger.Debug().Msg("external player ready")
	return p, nil
}

func (p *ExternalPlayer) Name() string {
	return p.name
}

// RequestMove writes one request line and reads one response line. An
// empty response line is a pass. A response that doesn't parse comes
// back as a *move.ParseError for the referee to charge as a fault.
func (p *ExternalPlayer) RequestMove(ctx context.Context, rack []rune,
	opponent *move.Move) (*move.Move, error) {

	p.drainStale()

	req := string(rack) + ":"
	if opponent != nil {
		req += opponent.String()
	}
	if _, err := io.WriteString(p.stdin, req+"\n"); err != nil {
		return nil, &ProtocolError{Player: p.name, Reason: "write failed", Err: ErrPeerClosed}
	}

	select {
	case line, ok := <-p.lines:
		if !ok {
			return nil, &ProtocolError{Player: p.name, Reason: "exited mid-game", Err: ErrPeerClosed}
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return move.NewPassMove(), nil
		}
		return move.ParseMove(line)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// drainStale discards any response lines left over from a turn that
// timed out, so they are not mistaken for the answer to this request.
func (p *ExternalPlayer) drainStale() {
	for {
		select {
		case line, ok := <-p.lines:
			if !ok {
				return
			}
			p.logger.Warn().Str("line", line).Msg("discarding stale line")
		default:
			return
		}
	}
}

// Close shuts the child down: closing stdin asks it to exit, the kill
// covers children that don't.
func (p *ExternalPlayer) Close() error {
	p.closer.Do(func() {
		p.stdin.Close()
		if p.cmd.Process != nil {
			p.cmd.Process.Kill()
		}
		go func() {
			for range p.lines {
			}
		}()
		p.cmd.Wait()
	})
	return nil
}
