package board

import "fmt"

const (
	repetitionLimit    = 3
	noprogressPlyLimit = 100 // fifty full moves, i.e., 100 half-moves
)

// node is one position in a game's move history, linked back to its predecessor so that
// repetition counting can walk the line actually played without re-deriving it.
type node struct {
	pos        Position
	hash       ZobristHash
	noprogress int

	prev *node
}

// Game tracks a position together with the move history required to detect draws by
// repetition and the fifty-move rule, and the resulting game status. A Board, by contrast, is
// the pure positional snapshot with no history: Position plays that role here.
//
// Game is used as an immutable value from the search's point of view: MakeMove never mutates
// the receiver, instead returning a new *Game that shares the unchanged tail of the history.
// This lets the search explore many lines from a common root cheaply.
type Game struct {
	zt          *ZobristTable
	repetitions map[ZobristHash]int

	fullmoves int
	turn      Color
	status    Status
	result    Result
	current   *node
}

// NewGame creates a game rooted at the given position.
func NewGame(zt *ZobristTable, pos Position, turn Color, noprogress, fullmoves int) *Game {
	current := &node{
		pos:        pos,
		noprogress: noprogress,
		hash:       zt.Hash(&pos, turn),
	}

	g := &Game{
		zt:          zt,
		repetitions: map[ZobristHash]int{current.hash: 1},
		fullmoves:   fullmoves,
		turn:        turn,
		current:     current,
	}
	g.updateTerminalStatus()
	return g
}

func (g *Game) Position() Position {
	return g.current.pos
}

func (g *Game) Turn() Color {
	return g.turn
}

func (g *Game) NoProgress() int {
	return g.current.noprogress
}

func (g *Game) FullMoves() int {
	return g.fullmoves
}

func (g *Game) Status() Status {
	return g.status
}

func (g *Game) Result() Result {
	return g.result
}

func (g *Game) Hash() ZobristHash {
	return g.current.hash
}

// LegalMoves returns all legal moves for the side to move. Empty when the game is Decided.
func (g *Game) LegalMoves() []Move {
	if g.status == Decided {
		return nil
	}
	return g.current.pos.LegalMoves(g.turn)
}

// MakeMoveUCI parses a move in long algebraic notation (e.g. "e2e4" or "a7a8q") and applies it,
// matching it against the legal moves to recover its full type (capture, castle, en passant,
// ...). Returns an error if the string does not parse or does not name a legal move.
func (g *Game) MakeMoveUCI(s string) (*Game, error) {
	parsed, err := ParseMove(s)
	if err != nil {
		return nil, err
	}

	for _, m := range g.LegalMoves() {
		if m.Equals(parsed) {
			return g.MakeMove(m), nil
		}
	}
	return nil, fmt.Errorf("illegal move: '%v'", s)
}

// Checkers returns the squares of opponent pieces currently giving check to the side to move.
func (g *Game) Checkers() Bitboard {
	pos := g.current.pos
	sq := pos.KingSquare(g.turn)
	by := g.turn.Opponent()

	var checkers Bitboard
	checkers |= PawnCaptureboard(by.Opponent(), BitMask(sq)) & pos.Pieces[by][Pawn]
	checkers |= KnightAttackboard(sq) & pos.Pieces[by][Knight]

	rot := NewRotatedBitboard(pos.All())
	checkers |= RookAttackboard(rot, sq) & (pos.Pieces[by][Rook] | pos.Pieces[by][Queen])
	checkers |= BishopAttackboard(rot, sq) & (pos.Pieces[by][Bishop] | pos.Pieces[by][Queen])
	return checkers
}

// CapturesAndChecks returns the legal moves that capture, perform en passant, or leave the
// opponent in check -- the candidate set explored by quiescence search.
func (g *Game) CapturesAndChecks() []Move {
	var out []Move
	turn := g.turn
	pos := g.current.pos

	for _, m := range g.LegalMoves() {
		if m.IsCapture() {
			out = append(out, m)
			continue
		}
		next := pos.Move(turn, m)
		if next.InCheck(turn.Opponent()) {
			out = append(out, m)
		}
	}
	return out
}

// CanClaimThreefoldRepetition returns true iff the current position has occurred (by Zobrist
// hash) at least three times in the game so far.
func (g *Game) CanClaimThreefoldRepetition() bool {
	return g.repetitions[g.current.hash] >= repetitionLimit
}

// CanClaimFiftyMoveRule returns true iff 50 full moves have passed without a pawn move or
// capture.
func (g *Game) CanClaimFiftyMoveRule() bool {
	return g.current.noprogress >= noprogressPlyLimit
}

// MakeMove returns a new Game reflecting the given (legal) move, leaving the receiver
// untouched. The search descends by repeatedly calling MakeMove on cloned values rather than
// mutating any shared Game.
func (g *Game) MakeMove(m Move) *Game {
	next := &Game{
		zt:          g.zt,
		repetitions: make(map[ZobristHash]int, len(g.repetitions)+1),
		fullmoves:   g.fullmoves,
		turn:        g.turn,
	}
	for k, v := range g.repetitions {
		next.repetitions[k] = v
	}

	pos := g.current.pos.Move(g.turn, m)
	n := &node{
		pos:        pos,
		hash:       g.zt.Move(g.current.hash, &g.current.pos, g.turn, m),
		noprogress: updateNoProgress(g.current.noprogress, m),
		prev:       g.current,
	}

	next.current = n
	next.turn = g.turn.Opponent()
	next.repetitions[n.hash]++
	if next.turn == White {
		next.fullmoves++
	}

	next.updateTerminalStatus()
	return next
}

func (g *Game) updateTerminalStatus() {
	if len(g.current.pos.LegalMoves(g.turn)) > 0 {
		g.status = Ongoing
		g.result = NoResult
		return
	}

	g.status = Decided
	if g.current.pos.InCheck(g.turn) {
		if g.turn == White {
			g.result = BlackCheckmates
		} else {
			g.result = WhiteCheckmates
		}
	} else {
		g.result = Stalemate
	}
}

func updateNoProgress(old int, m Move) int {
	if m.ResetsNoProgress() {
		return 0
	}
	return old + 1
}

func (g *Game) String() string {
	return fmt.Sprintf("game{turn=%v, hash=%x, noprogress=%v, fullmoves=%v, status=%v, result=%v}",
		g.turn, g.current.hash, g.current.noprogress, g.fullmoves, g.status, g.result)
}
