package eval

import (
	"math"

	"github.com/corvidchess/corvid/pkg/board"
)

// Terminal-result values, in centipawns. Only a Decided game may take on win_value or
// loss_value; all ordinary evaluations stay strictly inside (loss_value, win_value).
const (
	WinValue  board.Score = 12000
	LossValue board.Score = -12000
	DrawValue board.Score = 0
)

// Heuristic is the static position evaluator. It carries the subset of persistent search
// options that affect evaluation: whether the fifty-move rule is honored when deciding
// whether a draw may be claimed, and a reserved (never consulted) tablebase path.
type Heuristic struct {
	FiftyMovesRule bool
	SyzygyPath     string
}

// NewHeuristic returns a Heuristic with the given persistent-option values.
func NewHeuristic(fiftyMovesRule bool, syzygyPath string) *Heuristic {
	return &Heuristic{FiftyMovesRule: fiftyMovesRule, SyzygyPath: syzygyPath}
}

// CanDeclareDraw reports whether the game may be claimed as a draw: by threefold repetition
// always, or by the fifty-move rule when enabled.
func (h *Heuristic) CanDeclareDraw(g *board.Game) bool {
	if g.CanClaimThreefoldRepetition() {
		return true
	}
	return h.FiftyMovesRule && g.CanClaimFiftyMoveRule()
}

// Evaluate scores a game from the side-to-move's perspective, in centipawns. Precedence
// (first matching rule wins): a claimable draw, then a Decided terminal result, then material
// plus positional bonuses on the current position.
func (h *Heuristic) Evaluate(g *board.Game) board.Score {
	if h.CanDeclareDraw(g) {
		return DrawValue
	}
	if g.Status() == board.Decided {
		return h.EvaluateResult(g)
	}
	return h.EvaluatePosition(g)
}

// EvaluateResult scores a Decided game by its Result alone, ignoring the can-declare-draw
// check (the caller is expected to have already ruled that out, or to want the raw terminal
// value regardless -- quiescence search uses it this way).
func (h *Heuristic) EvaluateResult(g *board.Game) board.Score {
	turn := g.Turn()
	switch g.Result() {
	case board.WhiteCheckmates, board.BlackResigns:
		if turn == board.White {
			return WinValue
		}
		return LossValue
	case board.BlackCheckmates, board.WhiteResigns:
		if turn == board.Black {
			return WinValue
		}
		return LossValue
	default: // Stalemate, DrawAccepted, DrawDeclared
		return DrawValue
	}
}

// EvaluatePosition scores the current, non-terminal position by material and positional
// bonuses: sum(player - opponent) over all pieces, where player is the side to move. Bonuses
// for a piece are computed relative to the square of the *opposing* king.
func (h *Heuristic) EvaluatePosition(g *board.Game) board.Score {
	turn := g.Turn()
	pos := g.Position()

	whiteKing := pos.KingSquare(board.White)
	blackKing := pos.KingSquare(board.Black)
	noQueens := pos.Pieces[board.White][board.Queen] == 0 && pos.Pieces[board.Black][board.Queen] == 0

	var total float64
	for c := board.White; c <= board.Black; c++ {
		oppKing := blackKing
		if c == board.Black {
			oppKing = whiteKing
		}

		contribution := colorContribution(pos, c, oppKing, noQueens)
		if c == turn {
			total += contribution
		} else {
			total -= contribution
		}
	}
	return board.Score(math.Round(total))
}

func colorContribution(pos board.Position, c board.Color, oppKing board.Square, noQueens bool) float64 {
	var sum float64

	for bb := pos.Pieces[c][board.Pawn]; bb != 0; {
		sq := bb.LastPopSquare()
		bb &^= board.BitMask(sq)
		sum += float64(PawnValue) + pawnBonus(sq, c, oppKing)
	}
	for bb := pos.Pieces[c][board.Knight]; bb != 0; {
		sq := bb.LastPopSquare()
		bb &^= board.BitMask(sq)
		sum += float64(KnightValue) + knightBonus(sq, oppKing)
	}
	for bb := pos.Pieces[c][board.Bishop]; bb != 0; {
		sq := bb.LastPopSquare()
		bb &^= board.BitMask(sq)
		sum += float64(BishopValue) + bishopBonus(sq, oppKing)
	}
	for bb := pos.Pieces[c][board.Rook]; bb != 0; {
		sq := bb.LastPopSquare()
		bb &^= board.BitMask(sq)
		sum += float64(RookValue) + rookBonus(sq, oppKing)
	}
	for bb := pos.Pieces[c][board.Queen]; bb != 0; {
		sq := bb.LastPopSquare()
		bb &^= board.BitMask(sq)
		sum += float64(QueenValue) + queenBonus(sq, oppKing)
	}
	for bb := pos.Pieces[c][board.King]; bb != 0; {
		sq := bb.LastPopSquare()
		bb &^= board.BitMask(sq)
		sum += kingBonus(sq, oppKing, noQueens) // positional only, no material value
	}
	return sum
}

func pawnBonus(sq board.Square, color board.Color, oppKing board.Square) float64 {
	rank := math.Abs(float64(sq.Rank()) - float64(color.SecondRank()))
	bonus := rank * 7

	file := float64(sq.File())
	penalty := math.Max(0, math.Max(3-file, file-4))
	bonus -= penalty * 5

	bonus += occupyingCenterBonus(sq, 5)
	bonus += distanceFromKingBonus(sq, oppKing, 5)
	return bonus
}

func knightBonus(sq, oppKing board.Square) float64 {
	return occupyingCenterBonus(sq, 7) + distanceFromKingBonus(sq, oppKing, 8)
}

func bishopBonus(sq, oppKing board.Square) float64 {
	return occupyingCenterBonus(sq, 5) + distanceFromKingBonus(sq, oppKing, 8)
}

func rookBonus(sq, oppKing board.Square) float64 {
	var bonus float64
	f := int(sq.File())
	switch {
	case inRange(f, 3, 4):
		bonus = 24
	case inRange(f, 2, 5):
		bonus = 16
	case inRange(f, 1, 6):
		bonus = 8
	}
	return bonus + distanceFromKingBonus(sq, oppKing, 5)
}

func queenBonus(sq, oppKing board.Square) float64 {
	return occupyingCenterBonus(sq, 2) + distanceFromKingBonus(sq, oppKing, 8)
}

func kingBonus(sq, oppKing board.Square, noQueens bool) float64 {
	centerWeight := -7.0
	if noQueens {
		centerWeight = 8
	}
	return occupyingCenterBonus(sq, centerWeight) + distanceFromKingBonus(sq, oppKing, 5)
}

// occupyingCenterBonus rewards squares on the d- and e-files by rank: 3w on ranks 4-5, 2w on
// ranks 3 and 6, w on ranks 2 and 7. Squares on any other file score 0.
func occupyingCenterBonus(sq board.Square, w float64) float64 {
	f, r := int(sq.File()), int(sq.Rank())
	switch {
	case inRange(f, 3, 4) && inRange(r, 3, 4):
		return 3 * w
	case inRange(f, 3, 4) && inRange(r, 2, 5):
		return 2 * w
	case inRange(f, 3, 4) && inRange(r, 1, 6):
		return w
	default:
		return 0
	}
}

// distanceFromKingBonus rewards proximity to the opposing king: positive for distance < 14,
// zero at distance 14, increasingly negative (within [-w, 0)) beyond that is not reachable on
// a real board since the maximum L1 distance is 14.
func distanceFromKingBonus(sq, king board.Square, w float64) float64 {
	d := float64(sq.Distance(king))
	if d == 0 {
		d = 1
	}
	return 14/d*w - w
}

func inRange(v, lo, hi int) bool {
	return v >= lo && v <= hi
}
