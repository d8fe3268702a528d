package search_test

import (
	"testing"
	"time"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/stretchr/testify/require"
)

// never is a time budget long enough that tests never hit it; only Stop/Quit commands matter.
const never = time.Hour

// newGame decodes fenStr and applies the given UCI-notation moves, failing the test on error.
func newGame(t *testing.T, fenStr string, moves ...string) *board.Game {
	t.Helper()

	pos, turn, noprogress, fullmoves, err := fen.Decode(fenStr)
	require.NoError(t, err)

	g := board.NewGame(board.NewZobristTable(1), pos, turn, noprogress, fullmoves)
	for _, m := range moves {
		next, err := g.MakeMoveUCI(m)
		require.NoError(t, err)
		g = next
	}
	return g
}
