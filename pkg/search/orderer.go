package search

import (
	"sort"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
)

// Order sorts moves by a heuristic score, descending, to make alpha-beta cutoffs more likely
// early in the move list. It is advisory only: search correctness never depends on ordering.
// MVV-LVA ranks captures by ten times the victim value minus the attacker value, promotions add
// five times the value of the promoted piece, and a move that leaves the opponent in check gets
// a flat bonus of 1. Ties
// keep the generator's original order (stable sort).
func Order(moves []board.Move, g *board.Game) []board.Move {
	ordered := make([]board.Move, len(moves))
	copy(ordered, moves)

	turn := g.Turn()
	pos := g.Position()
	for i, m := range ordered {
		ordered[i].Score = moveOrderScore(m, pos, turn)
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Score > ordered[j].Score
	})
	return ordered
}

func moveOrderScore(m board.Move, pos board.Position, turn board.Color) board.Score {
	var score board.Score
	if m.IsCapture() {
		score += 10*eval.ValueOf(m.Capture) - eval.ValueOf(m.Piece)
	}
	if m.IsPromotion() {
		score += 5 * eval.ValueOf(m.Promotion)
	}
	if pos.Move(turn, m).InCheck(turn.Opponent()) {
		score++
	}
	return score
}
