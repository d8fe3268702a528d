package search_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNegamaxFindsMateInOne(t *testing.T) {
	// Rook delivers back-rank mate: a1a8#.
	g := newGame(t, "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	h := eval.NewHeuristic(true, "")
	dl := search.NewDeadline(make(chan search.Command), never)

	score, pv, _, err := search.Negamax(dl, h, g, 3, board.NegInf, board.Inf)
	require.NoError(t, err)
	require.NotEmpty(t, pv)

	assert.Equal(t, "a1a8", pv[0].String())
	assert.Equal(t, eval.WinValue, score)
}

func TestNegamaxReturnsDrawValueForStalemate(t *testing.T) {
	g := newGame(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.Equal(t, board.Decided, g.Status())
	require.Equal(t, board.Stalemate, g.Result())

	h := eval.NewHeuristic(true, "")
	dl := search.NewDeadline(make(chan search.Command), never)

	score, pv, nodes, err := search.Negamax(dl, h, g, 2, board.NegInf, board.Inf)
	require.NoError(t, err)
	assert.Equal(t, eval.DrawValue, score)
	assert.Empty(t, pv)
	assert.Equal(t, 1, nodes)
}

func TestNegamaxHonorsStop(t *testing.T) {
	g := newGame(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	h := eval.NewHeuristic(true, "")

	commands := make(chan search.Command, 1)
	commands <- search.Stop()
	dl := search.NewDeadline(commands, never)

	_, _, _, err := search.Negamax(dl, h, g, 4, board.NegInf, board.Inf)
	assert.ErrorIs(t, err, search.ErrStopped)
}
