package player

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/domino14/scrabbler/move"
)

// helperArgv re-executes the test binary as a scripted external player.
func helperArgv(mode string) []string {
	return []string{os.Args[0], "-test.run=TestHelperProcess", "--", mode}
}

// TestHelperProcess is not a real test; it becomes the child process for
// the external player tests when re-executed with a mode argument.
func TestHelperProcess(t *testing.T) {
	mode := ""
	for i, arg := range os.Args {
		if arg == "--" && i+1 < len(os.Args) {
			mode = os.Args[i+1]
		}
	}
	if mode == "" {
		return
	}
	defer os.Exit(0)

	stdin := bufio.NewScanner(os.Stdin)
	switch mode {
	case "no-hello":
		return
	case "garbage-hello":
		fmt.Println("HOWDY")
		return
	case "hello-exit":
		fmt.Println("HELLO")
		return
	case "pass":
		fmt.Println("HELLO")
		for stdin.Scan() {
			fmt.Println("--")
		}
	case "echo-rack":
		// Answers with an exchange of the whole rack, proving the
		// request line arrived intact.
		fmt.Println("HELLO")
		for stdin.Scan() {
			rack, _, _ := strings.Cut(stdin.Text(), ":")
			fmt.Println(rack + " --")
		}
	case "play-cat":
		fmt.Println("HELLO")
		for stdin.Scan() {
			fmt.Println("CAT 8G")
		}
	case "gibberish":
		fmt.Println("HELLO")
		for stdin.Scan() {
			fmt.Println("WHAT EVEN IS THIS")
		}
	case "slow-then-pass":
		// Never answers the first request in time; the late line must
		// not leak into the second turn.
		fmt.Println("HELLO")
		first := true
		for stdin.Scan() {
			if first {
				first = false
				time.Sleep(300 * time.Millisecond)
				fmt.Println("ZZZ 1A")
				continue
			}
			fmt.Println("--")
		}
	}
}

func startHelper(t *testing.T, mode string) *ExternalPlayer {
	t.Helper()
	p, err := NewExternalPlayer(mode, helperArgv(mode), 5*time.Second)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { p.Close() })
	return p
}

func TestExternalHandshakeFailures(t *testing.T) {
	is := is.New(t)
	_, err := NewExternalPlayer("p", helperArgv("no-hello"), 5*time.Second)
	is.True(err != nil)

	_, err = NewExternalPlayer("p", helperArgv("garbage-hello"), 5*time.Second)
	var perr *ProtocolError
	is.True(errors.As(err, &perr))
}

func TestExternalPass(t *testing.T) {
	is := is.New(t)
	p := startHelper(t, "pass")
	m, err := p.RequestMove(context.Background(), []rune("ABCDEFG"), nil)
	is.NoErr(err)
	is.Equal(m.Action(), move.MoveTypePass)
}

func TestExternalRequestLine(t *testing.T) {
	is := is.New(t)
	p := startHelper(t, "echo-rack")
	opp, err := move.ParseMove("CAT 8G")
	is.NoErr(err)
	m, err := p.RequestMove(context.Background(), []rune("ABCDEF?"), opp)
	is.NoErr(err)
	is.Equal(m.Action(), move.MoveTypeExchange)
	is.Equal(m.WordString(), "ABCDEF?")
}

func TestExternalParsesPlay(t *testing.T) {
	is := is.New(t)
	p := startHelper(t, "play-cat")
	m, err := p.RequestMove(context.Background(), []rune("CATXYZW"), nil)
	is.NoErr(err)
	is.Equal(m.String(), "CAT 8G")
}

func TestExternalGibberishIsParseError(t *testing.T) {
	is := is.New(t)
	p := startHelper(t, "gibberish")
	_, err := p.RequestMove(context.Background(), []rune("CATXYZW"), nil)
	var perr *move.ParseError
	is.True(errors.As(err, &perr))
}

func TestExternalPeerClosed(t *testing.T) {
	is := is.New(t)
	p := startHelper(t, "hello-exit")
	_, err := p.RequestMove(context.Background(), []rune("CATXYZW"), nil)
	is.True(errors.Is(err, ErrPeerClosed))
}

func TestExternalTimeoutAndStaleDrain(t *testing.T) {
	is := is.New(t)
	p := startHelper(t, "slow-then-pass")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := p.RequestMove(ctx, []rune("CATXYZW"), nil)
	is.True(errors.Is(err, context.DeadlineExceeded))

	// Give the late answer time to arrive, then make sure the next turn
	// doesn't read it.
	time.Sleep(400 * time.Millisecond)
	m, err := p.RequestMove(context.Background(), []rune("CATXYZW"), nil)
	is.NoErr(err)
	is.Equal(m.Action(), move.MoveTypePass)
}

func TestExternalCloseIsIdempotent(t *testing.T) {
	is := is.New(t)
	p := startHelper(t, "pass")
	is.NoErr(p.Close())
	is.NoErr(p.Close())
}
