// Package eval contains the static position evaluator and the material values used by search.
package eval

import "github.com/corvidchess/corvid/pkg/board"

// PieceValue is the fixed material value table, in centipawns. King is given a value far
// larger than any other piece: it is never actually captured, but MVV-LVA tiebreaks need a
// value for it to treat it as "priceless" rather than zero.
const (
	PawnValue   board.Score = 100
	KnightValue board.Score = 350
	BishopValue board.Score = 370
	RookValue   board.Score = 550
	QueenValue  board.Score = 950
	KingValue   board.Score = 1000000
)

// ValueOf returns the fixed material value of the given piece kind.
func ValueOf(p board.Piece) board.Score {
	switch p {
	case board.Pawn:
		return PawnValue
	case board.Knight:
		return KnightValue
	case board.Bishop:
		return BishopValue
	case board.Rook:
		return RookValue
	case board.Queen:
		return QueenValue
	case board.King:
		return KingValue
	default:
		return 0
	}
}
