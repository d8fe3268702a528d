package board

import "fmt"

// MoveType indicates the type of move. The no-progress counter is reset by any capture or pawn
// move (see Move.ResetsNoProgress); castling does not reset it.
type MoveType uint8

const (
	Normal    MoveType = iota
	Push               // Pawn single-square move
	Jump               // Pawn 2-square move
	EnPassant          // Implicitly a pawn capture
	QueenSideCastle
	KingSideCastle
	Capture
	Promotion
	CapturePromotion
)

// Move represents a not-necessarily-legal move along with the contextual metadata needed to
// apply or unapply it without re-deriving it from the position.
type Move struct {
	Type      MoveType
	Piece     Piece  // piece being moved
	From, To  Square
	Promotion Piece // desired piece for promotion, if any
	Capture   Piece // captured piece, if any
	Score     Score // move ordering score, set by the search package. Not part of move identity.
}

// ParseMove parses a move in pure algebraic coordinate notation, such as "a2a4" or "a7a8q".
// The parsed move does not contain contextual information like castling or en passant: match it
// against the legal moves (as Game.MakeMoveUCI does) to recover a fully-populated Move.
func ParseMove(str string) (Move, error) {
	runes := []rune(str)

	if len(runes) < 4 || len(runes) > 5 {
		return Move{}, fmt.Errorf("invalid move: '%v'", str)
	}

	from, err := ParseSquare(runes[0], runes[1])
	if err != nil {
		return Move{}, fmt.Errorf("invalid from: '%v': %v", str, err)
	}
	to, err := ParseSquare(runes[2], runes[3])
	if err != nil {
		return Move{}, fmt.Errorf("invalid to: '%v': %v", str, err)
	}

	if len(runes) == 5 {
		promo, ok := ParsePiece(runes[4])
		if !ok || promo == Pawn || promo == King {
			return Move{}, fmt.Errorf("invalid promotion: '%v'", str)
		}
		return Move{From: from, To: to, Promotion: promo}, nil
	}

	return Move{From: from, To: to}, nil
}

// IsCapture returns true iff the move captures a piece, including en passant.
func (m Move) IsCapture() bool {
	return m.Type == Capture || m.Type == CapturePromotion || m.Type == EnPassant
}

// IsPromotion returns true iff the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Type == Promotion || m.Type == CapturePromotion
}

// IsCastle returns true iff the move is a castling move.
func (m Move) IsCastle() bool {
	return m.Type == KingSideCastle || m.Type == QueenSideCastle
}

// ResetsNoProgress returns true iff the move resets the fifty-move no-progress counter, i.e.,
// is a pawn move or a capture.
func (m Move) ResetsNoProgress() bool {
	return m.Piece == Pawn || m.IsCapture()
}

// EnPassantCapture returns the square of the pawn captured by an en passant move.
func (m Move) EnPassantCapture() (Square, bool) {
	if m.Type != EnPassant {
		return 0, false
	}
	return NewSquare(m.To.File(), m.From.Rank()), true
}

// EnPassantTarget returns the skipped-over square that a subsequent en passant capture would
// target, for a pawn double-step (Jump) move.
func (m Move) EnPassantTarget() (Square, bool) {
	if m.Type != Jump {
		return 0, false
	}
	if m.From.Rank() < m.To.Rank() {
		return NewSquare(m.From.File(), m.From.Rank()+1), true
	}
	return NewSquare(m.From.File(), m.From.Rank()-1), true
}

// CastlingRookMove returns the rook's from/to squares for a castling move.
func (m Move) CastlingRookMove() (from, to Square, ok bool) {
	switch m.Type {
	case KingSideCastle:
		if m.From.Rank() == Rank1 {
			return H1, F1, true
		}
		return H8, F8, true
	case QueenSideCastle:
		if m.From.Rank() == Rank1 {
			return A1, D1, true
		}
		return A8, D8, true
	default:
		return 0, 0, false
	}
}

// CastlingRightsLost returns the castling rights revoked by this move, based on the piece
// moved/captured and the squares involved, including the rights lost when a rook is captured
// on its home square.
func (m Move) CastlingRightsLost() Castling {
	var lost Castling

	switch m.Piece {
	case King:
		switch m.From {
		case E1:
			lost |= WhiteKingSideCastle | WhiteQueenSideCastle
		case E8:
			lost |= BlackKingSideCastle | BlackQueenSideCastle
		}
	case Rook:
		lost |= rookHomeSquareRights(m.From)
	}
	lost |= rookHomeSquareRights(m.To)

	return lost
}

func rookHomeSquareRights(sq Square) Castling {
	switch sq {
	case A1:
		return WhiteQueenSideCastle
	case H1:
		return WhiteKingSideCastle
	case A8:
		return BlackQueenSideCastle
	case H8:
		return BlackKingSideCastle
	default:
		return 0
	}
}

func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion
}

func (m Move) String() string {
	if m.Promotion.IsValid() {
		return fmt.Sprintf("%v%v%v", m.From, m.To, m.Promotion)
	}
	return fmt.Sprintf("%v%v", m.From, m.To)
}
