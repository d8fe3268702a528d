package search

import (
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
)

// Negamax performs a fail-hard alpha-beta search to the given ply depth, dropping into
// Quiescence at the horizon. Returns the bounded score, the principal variation from this node
// down (empty on a beta cutoff, by design: a fail-hard cut node carries no meaningful
// continuation), the node count, and ErrStopped if interrupted partway through.
func Negamax(d *Deadline, h *eval.Heuristic, g *board.Game, depth int, alpha, beta board.Score) (board.Score, []board.Move, int, error) {
	if d.CheckStop() {
		return 0, nil, 0, ErrStopped
	}

	if g.Status() == board.Decided {
		return h.EvaluateResult(g), nil, 1, nil
	}
	if h.CanDeclareDraw(g) {
		return eval.DrawValue, nil, 1, nil
	}
	if depth == 0 {
		score, qnodes, err := Quiescence(d, h, g, alpha, beta)
		if err != nil {
			return 0, nil, 0, err
		}
		return score, nil, 1 + qnodes, nil
	}

	nodes := 1
	var pv []board.Move

	for _, m := range Order(g.LegalMoves(), g) {
		child := g.MakeMove(m)
		score, childPV, n, err := Negamax(d, h, child, depth-1, -beta, -alpha)
		if err != nil {
			return 0, nil, 0, err
		}
		score = -score
		nodes += n

		if score >= beta {
			return beta, nil, nodes, nil
		}
		if score > alpha {
			alpha = score
			pv = append([]board.Move{m}, childPV...)
		}
	}
	return alpha, pv, nodes, nil
}
