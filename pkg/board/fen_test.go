package board_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFENRoundTripsThroughDecodeEncode(t *testing.T) {
	tests := []string{
		fen.Initial,
		"6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"8/8/8/8/8/5k2/6p1/6K1 w - - 0 1",
		"rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2",
	}

	for _, in := range tests {
		pos, turn, noprogress, fullmoves, err := fen.Decode(in)
		require.NoError(t, err, in)

		out := fen.Encode(pos, turn, noprogress, fullmoves)
		assert.Equal(t, in, out)
	}
}

func TestFENDecodeRejectsMalformedRecords(t *testing.T) {
	tests := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0", // missing field
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", // bad color
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKXNR w KQkq - 0 1", // bad piece
		"8/8/8/8/8/8/8 w - - 0 1", // wrong rank count
	}

	for _, in := range tests {
		_, _, _, _, err := fen.Decode(in)
		assert.Error(t, err, in)
	}
}

func newGame(t *testing.T, fenStr string) *board.Game {
	t.Helper()
	pos, turn, noprogress, fullmoves, err := fen.Decode(fenStr)
	require.NoError(t, err)
	return board.NewGame(board.NewZobristTable(1), pos, turn, noprogress, fullmoves)
}

func TestInitialPositionHasTwentyLegalMoves(t *testing.T) {
	g := newGame(t, fen.Initial)
	assert.Len(t, g.LegalMoves(), 20)
	assert.Equal(t, board.Ongoing, g.Status())
}

func TestFoolsMateEndsInCheckmate(t *testing.T) {
	g := newGame(t, fen.Initial)
	for _, m := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		next, err := g.MakeMoveUCI(m)
		require.NoError(t, err, m)
		g = next
	}

	assert.Equal(t, board.Decided, g.Status())
	assert.Equal(t, board.BlackCheckmates, g.Result())
	assert.Empty(t, g.LegalMoves())
}

func TestStalemateIsDecidedWithoutCheckmate(t *testing.T) {
	g := newGame(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	assert.Equal(t, board.Decided, g.Status())
	assert.Equal(t, board.Stalemate, g.Result())
}

func TestMakeMoveNeverMutatesTheReceiver(t *testing.T) {
	g := newGame(t, fen.Initial)
	before := g.String()

	next, err := g.MakeMoveUCI("e2e4")
	require.NoError(t, err)

	assert.Equal(t, before, g.String())
	assert.NotEqual(t, g.Turn(), next.Turn())
}

func TestMakeMoveUCIRejectsIllegalMoves(t *testing.T) {
	g := newGame(t, fen.Initial)
	_, err := g.MakeMoveUCI("e2e5")
	assert.Error(t, err)
}

func TestCastlingMovesAreLegalWhenUnobstructed(t *testing.T) {
	g := newGame(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	var sawKingSide, sawQueenSide bool
	for _, m := range g.LegalMoves() {
		if m.IsCastle() {
			if m.String() == "e1g1" {
				sawKingSide = true
			}
			if m.String() == "e1c1" {
				sawQueenSide = true
			}
		}
	}
	assert.True(t, sawKingSide, "expected king-side castle among legal moves")
	assert.True(t, sawQueenSide, "expected queen-side castle among legal moves")
}
