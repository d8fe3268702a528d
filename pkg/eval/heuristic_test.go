package eval_test

import (
	"strings"
	"testing"
	"unicode"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGame(t *testing.T, fenStr string) *board.Game {
	t.Helper()
	pos, turn, noprogress, fullmoves, err := fen.Decode(fenStr)
	require.NoError(t, err)
	return board.NewGame(board.NewZobristTable(1), pos, turn, noprogress, fullmoves)
}

// mirrorPlacement flips a FEN piece-placement field vertically (rank 8 <-> rank 1, etc.) and
// swaps the color of every piece, leaving files and square contents otherwise unchanged.
func mirrorPlacement(placement string) string {
	ranks := strings.Split(placement, "/")
	mirrored := make([]string, len(ranks))
	for i, r := range ranks {
		var sb strings.Builder
		for _, c := range r {
			if unicode.IsDigit(c) {
				sb.WriteRune(c)
				continue
			}
			if unicode.IsUpper(c) {
				sb.WriteRune(unicode.ToLower(c))
			} else {
				sb.WriteRune(unicode.ToUpper(c))
			}
		}
		mirrored[len(ranks)-1-i] = sb.String()
	}
	return strings.Join(mirrored, "/")
}

func TestEvaluatePositionIsAntisymmetricUnderColorSwapAndVerticalFlip(t *testing.T) {
	tests := []string{
		"6k1/p7/8/8/8/8/8/R5K1 w - - 0 1",
		"4k3/8/8/3n4/3N4/8/8/4K3 w - - 0 1",
		"r3k3/1p6/8/8/8/8/6P1/3K3R w - - 0 1",
	}

	h := eval.NewHeuristic(true, "")
	for _, placement := range tests {
		fields := strings.Fields(placement)
		orig := newGame(t, placement)

		mirroredFEN := strings.Join(append([]string{mirrorPlacement(fields[0])}, fields[1:]...), " ")
		mirrored := newGame(t, mirroredFEN)

		assert.Equal(t, -h.EvaluatePosition(orig), h.EvaluatePosition(mirrored), placement)
	}
}

func TestEvaluateReturnsLossValueForTheMatedSide(t *testing.T) {
	g := newGame(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	for _, m := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		next, err := g.MakeMoveUCI(m)
		require.NoError(t, err, m)
		g = next
	}
	require.Equal(t, board.Decided, g.Status())
	require.Equal(t, board.BlackCheckmates, g.Result())

	h := eval.NewHeuristic(true, "")
	assert.Equal(t, eval.LossValue, h.Evaluate(g))
}

func TestEvaluateReturnsDrawValueWhenFiftyMoveRuleClaimable(t *testing.T) {
	g := newGame(t, "4k3/8/8/8/8/8/4Q3/4K3 w - - 100 1")
	require.True(t, g.CanClaimFiftyMoveRule())

	h := eval.NewHeuristic(true, "")
	assert.Equal(t, eval.DrawValue, h.Evaluate(g))
}

func TestEvaluateIgnoresFiftyMoveRuleWhenDisabled(t *testing.T) {
	g := newGame(t, "4k3/8/8/8/8/8/4Q3/4K3 w - - 100 1")
	require.True(t, g.CanClaimFiftyMoveRule())

	h := eval.NewHeuristic(false, "")
	assert.NotEqual(t, eval.DrawValue, h.Evaluate(g))
}

func TestEvaluateReturnsDrawValueForStalemate(t *testing.T) {
	g := newGame(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.Equal(t, board.Decided, g.Status())
	require.Equal(t, board.Stalemate, g.Result())

	h := eval.NewHeuristic(true, "")
	assert.Equal(t, eval.DrawValue, h.Evaluate(g))
}
