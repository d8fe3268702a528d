package search_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNegamaxAgreesWithPureMinimaxUnderAFullWindow checks alpha-beta soundness (spec invariant
// 6): at the root, a (-inf, +inf) window Negamax can never hit its beta cutoff (no finite score
// is >= +inf), so that call *is* pure minimax over the same depth, move ordering, and
// quiescence by construction. A narrower window built around that true score (so it cannot
// fail high or low) must then return exactly the same value.
func TestNegamaxAgreesWithPureMinimaxUnderAFullWindow(t *testing.T) {
	h := eval.NewHeuristic(true, "")
	positions := []string{
		"6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1",
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
	}

	for _, fenStr := range positions {
		g := newGame(t, fenStr)

		fullWindow := search.NewDeadline(make(chan search.Command), never)
		minimax, _, _, err := search.Negamax(fullWindow, h, g, 2, board.NegInf, board.Inf)
		require.NoError(t, err)

		narrowed := search.NewDeadline(make(chan search.Command), never)
		alpha, beta := minimax-50, minimax+50
		got, _, _, err := search.Negamax(narrowed, h, g, 2, alpha, beta)
		require.NoError(t, err)

		assert.Equal(t, minimax, got, fenStr)
	}
}

func TestCapturesAndChecksAreCorrectlyTagged(t *testing.T) {
	// Black rook on d5 hangs to the white queen on the long diagonal; the queen can also check
	// the black king (Qh5+, Qe4+). Mixed captures and quiet checks in one position.
	g := newGame(t, "4k3/8/8/3r4/8/2B5/8/1N2K2Q w - - 0 1")

	candidates := g.CapturesAndChecks()
	require.NotEmpty(t, candidates)

	pos := g.Position()
	turn := g.Turn()
	for _, m := range candidates {
		_, _, occupied := pos.PieceAt(m.To)

		isTaggedCapture := m.IsCapture()
		givesCheck := pos.Move(turn, m).InCheck(turn.Opponent())

		assert.True(t, occupied || isTaggedCapture || givesCheck,
			"move %v neither captures nor gives check", m)
	}
}
