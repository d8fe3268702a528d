package search

import (
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
)

// quiescenceDiscount is applied to terminal and stand-pat evaluations inside quiescence search,
// so that the search prefers delaying a loss (and hastening a win) over taking it immediately.
const quiescenceDiscount = 0.95

// endgameMaterialThreshold is the total piece count at or below which quiescence applies delta
// pruning; above it, no delta pruning is done. Intentionally "<=", not "==".
const endgameMaterialThreshold = 8

// Quiescence extends search beyond the horizon along capture/check lines only, to avoid
// misjudging positions in the middle of a tactical exchange. Returns the fail-hard bounded score
// and the node count, or ErrStopped if interrupted.
func Quiescence(d *Deadline, h *eval.Heuristic, g *board.Game, alpha, beta board.Score) (board.Score, int, error) {
	if d.CheckStop() {
		return 0, 0, ErrStopped
	}

	if g.Status() == board.Decided {
		return discount(h.EvaluateResult(g)), 0, nil
	}
	if h.CanDeclareDraw(g) {
		return eval.DrawValue, 0, nil
	}

	standPat := discount(h.EvaluatePosition(g))
	if standPat >= beta {
		return beta, 0, nil
	}

	endgame := g.Position().All().PopCount() <= endgameMaterialThreshold
	if endgame && standPat < alpha-1000 {
		return alpha, 0, nil
	}
	if standPat > alpha {
		alpha = standPat
	}

	nodes := 0
	for _, m := range Order(g.CapturesAndChecks(), g) {
		if endgame && deltaPrune(m, standPat, alpha) {
			continue
		}

		child := g.MakeMove(m)
		score, n, err := Quiescence(d, h, child, -beta, -alpha)
		if err != nil {
			return 0, 0, err
		}
		score = -score
		nodes += 1 + n

		if score >= beta {
			return beta, nodes, nil
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha, nodes, nil
}

// deltaPrune reports whether a capture/check move can be skipped in an endgame quiescence node:
// even winning the exchanged material back could not raise stand_pat above alpha.
func deltaPrune(m board.Move, standPat, alpha board.Score) bool {
	if m.Type == board.EnPassant {
		return standPat+eval.PawnValue < alpha
	}
	if m.IsCapture() {
		return eval.ValueOf(m.Capture)+eval.PawnValue+standPat < alpha
	}
	return false
}

func discount(s board.Score) board.Score {
	return board.Score(quiescenceDiscount * float64(s))
}
