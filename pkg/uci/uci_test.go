package uci_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/corvidchess/corvid/pkg/engine"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/corvidchess/corvid/pkg/uci"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// harness wires a fresh Engine to a Driver with buffered in/out/cmds channels, so a test can
// feed lines and assert on the resulting output and engine/command state without needing a
// live search actor.
type harness struct {
	e    *engine.Engine
	in   chan string
	cmds chan search.Command
	out  chan string
	d    *uci.Driver
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		e:    engine.New("corvid", "corvidchess", 1),
		in:   make(chan string, 16),
		cmds: make(chan search.Command, 16),
		out:  make(chan string, 64),
	}
	h.d = uci.NewDriver(context.Background(), h.e, h.in, h.cmds, h.out)
	return h
}

// send writes a line and gives the driver goroutine a moment to process it.
func (h *harness) send(line string) {
	h.in <- line
	time.Sleep(10 * time.Millisecond)
}

func (h *harness) drainOut() []string {
	var lines []string
	for {
		select {
		case l := <-h.out:
			lines = append(lines, l)
		default:
			return lines
		}
	}
}

func TestUCICommandEmitsIdentificationAndOptions(t *testing.T) {
	h := newHarness(t)
	h.send(uci.ProtocolName)

	lines := h.drainOut()
	require.NotEmpty(t, lines)
	assert.Equal(t, "id name corvid 0.1.0", lines[0])
	assert.Equal(t, "id author corvidchess", lines[1])
	assert.Contains(t, lines, "option name MaxDepth type spin default -1 min -1 max 99")
	assert.Contains(t, lines, "option name Move Overhead type spin default 10 min 0 max 5000")
	assert.Contains(t, lines, "option name Syzygy50MoveRule type check default true")
	assert.Contains(t, lines, "option name SyzygyPath type string default <empty>")
	assert.Equal(t, "uciok", lines[len(lines)-1])
}

func TestIsReadyEmitsReadyok(t *testing.T) {
	h := newHarness(t)
	h.send("isready")
	assert.Equal(t, []string{"readyok"}, h.drainOut())
}

func TestPositionStartposWithMovesAdvancesTheGame(t *testing.T) {
	h := newHarness(t)
	h.send("position startpos moves e2e4 e7e5")

	require.NotNil(t, h.e.Game())
	assert.Equal(t, 2, h.e.Game().FullMoves())
}

func TestPositionFenSetsExactBoard(t *testing.T) {
	h := newHarness(t)
	h.send("position fen 6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")

	assert.Equal(t, "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1", h.e.Position())
}

func TestSetOptionUpdatesMaxDepth(t *testing.T) {
	h := newHarness(t)
	h.send("setoption name MaxDepth value 3")

	max, ok := h.e.PersistentOptions().MaxDepth.V()
	require.True(t, ok)
	assert.Equal(t, 3, max)
}

func TestSetOptionWithMultiWordNameUpdatesMoveOverhead(t *testing.T) {
	h := newHarness(t)
	h.send("setoption name Move Overhead value 50")

	assert.Equal(t, 50*time.Millisecond, h.e.PersistentOptions().MoveOverhead)
}

func TestGoParsesTimeControlAndDepthTokens(t *testing.T) {
	h := newHarness(t)
	h.send("position startpos")
	h.send("go wtime 60000 btime 55000 winc 1000 binc 2000 depth 5")

	require.Len(t, h.cmds, 1)
	cmd := <-h.cmds
	assert.Equal(t, search.GoCommand, cmd.Kind)
	assert.Equal(t, 60*time.Second, cmd.Options.WhiteTime)
	assert.Equal(t, 55*time.Second, cmd.Options.BlackTime)
	assert.Equal(t, 1*time.Second, cmd.Options.WhiteIncrement)
	assert.Equal(t, 2*time.Second, cmd.Options.BlackIncrement)
	assert.Equal(t, float64(5), cmd.Options.Depth)
}

func TestGoWithNoArgumentsDefaultsToDepthTwo(t *testing.T) {
	h := newHarness(t)
	h.send("go")

	require.Len(t, h.cmds, 1)
	cmd := <-h.cmds
	assert.Equal(t, float64(2), cmd.Options.Depth)
}

func TestGoWithOnlyTimeTokensLeavesDepthUnbounded(t *testing.T) {
	h := newHarness(t)
	h.send("go movetime 200")

	require.Len(t, h.cmds, 1)
	cmd := <-h.cmds
	assert.Equal(t, 200*time.Millisecond, cmd.Options.MoveTime)
	assert.True(t, math.IsInf(cmd.Options.Depth, 1))
}

func TestStopAndQuitPostCommands(t *testing.T) {
	h := newHarness(t)
	h.send("stop")
	require.Len(t, h.cmds, 1)
	assert.Equal(t, search.StopCommand, (<-h.cmds).Kind)

	h.send("quit")
	require.Len(t, h.cmds, 1)
	assert.Equal(t, search.QuitCommand, (<-h.cmds).Kind)

	select {
	case <-h.d.Closed():
	case <-time.After(time.Second):
		t.Fatal("driver did not close after quit")
	}
}

func TestUCINewGameIsIdempotent(t *testing.T) {
	h := newHarness(t)
	h.send("setoption name MaxDepth value 7")
	h.send("ucinewgame")
	first := h.e.PersistentOptions()
	h.send("ucinewgame")
	second := h.e.PersistentOptions()

	assert.Equal(t, first, second)
	assert.Equal(t, search.DefaultPersistentOptions(), second)
}
