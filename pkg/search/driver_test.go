package search_test

import (
	"context"
	"strings"
	"testing"

	"github.com/corvidchess/corvid/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverEmitsExactlyOneBestmove(t *testing.T) {
	g := newGame(t, "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	d := search.NewDriver(1)

	commands := make(chan search.Command)
	out := make(chan string, 64)

	opt := search.Options{
		Game:       g,
		Depth:      3,
		Persistent: search.DefaultPersistentOptions(),
	}
	quit := d.Run(context.Background(), commands, opt, out)
	close(out)
	assert.False(t, quit)

	var bestmoves int
	var lastLine string
	for line := range out {
		lastLine = line
		if strings.HasPrefix(line, "bestmove") {
			bestmoves++
		}
	}
	assert.Equal(t, 1, bestmoves)
	assert.True(t, strings.HasPrefix(lastLine, "bestmove"))
	assert.Equal(t, "bestmove a1a8", lastLine)
}

func TestDriverStopsOnStopCommand(t *testing.T) {
	g := newGame(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	d := search.NewDriver(1)

	commands := make(chan search.Command, 1)
	commands <- search.Stop()
	out := make(chan string, 64)

	opt := search.Options{
		Game:       g,
		Depth:      10,
		Persistent: search.DefaultPersistentOptions(),
	}
	quit := d.Run(context.Background(), commands, opt, out)
	close(out)
	require.False(t, quit)

	var bestmoves int
	for line := range out {
		if strings.HasPrefix(line, "bestmove") {
			bestmoves++
		}
	}
	assert.Equal(t, 1, bestmoves)
}
