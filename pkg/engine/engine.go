package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/stdlib/pkg/lang"
)

var version = build.NewVersion(0, 1, 0)

// Engine holds the position/history (as a Game) and the persistent UCI options, from which
// pkg/uci builds search.Options for the search actor. It is owned exclusively by the protocol actor: nothing
// else reads or writes it, so it needs no locking.
type Engine struct {
	name, author string

	zt   *board.ZobristTable
	game *board.Game
	opts search.PersistentOptions
}

// New creates an engine at the standard starting position, with default persistent options.
func New(name, author string, seed int64) *Engine {
	e := &Engine{name: name, author: author, zt: board.NewZobristTable(seed)}
	e.NewGame()
	return e
}

// Name returns the engine name and version, as reported by "id name".
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the engine author(s), as reported by "id author".
func (e *Engine) Author() string {
	return e.author
}

// NewGame resets persistent options to their defaults, as required on ucinewgame. It leaves the
// current position untouched: the protocol always follows ucinewgame with a position command.
func (e *Engine) NewGame() {
	e.opts = search.DefaultPersistentOptions()
	if e.game == nil {
		_ = e.SetPosition(fen.Initial)
	}
}

// SetPosition replaces the current game with the position described by the given FEN record.
func (e *Engine) SetPosition(fenStr string) error {
	pos, turn, noprogress, fullmoves, err := fen.Decode(fenStr)
	if err != nil {
		return err
	}
	e.game = board.NewGame(e.zt, pos, turn, noprogress, fullmoves)
	return nil
}

// MakeMove plays one move, in long algebraic notation, on the current game.
func (e *Engine) MakeMove(moveStr string) error {
	next, err := e.game.MakeMoveUCI(moveStr)
	if err != nil {
		return err
	}
	e.game = next
	return nil
}

// Game returns the current game.
func (e *Engine) Game() *board.Game {
	return e.game
}

// Position returns the current position in FEN notation.
func (e *Engine) Position() string {
	return fen.Encode(e.game.Position(), e.game.Turn(), e.game.NoProgress(), e.game.FullMoves())
}

// PersistentOptions returns the current persistent options.
func (e *Engine) PersistentOptions() search.PersistentOptions {
	return e.opts
}

// SetOption updates one persistent option by its UCI name (case-insensitive), matching the
// names advertised in pkg/uci's "option" lines.
func (e *Engine) SetOption(name, value string) error {
	switch strings.ToLower(name) {
	case "maxdepth":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid MaxDepth value %q: %v", value, err)
		}
		if n < 0 {
			e.opts.MaxDepth = lang.None[int]()
		} else {
			e.opts.MaxDepth = lang.Some(n)
		}

	case "move overhead":
		ms, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid Move Overhead value %q: %v", value, err)
		}
		e.opts.MoveOverhead = time.Duration(ms) * time.Millisecond

	case "syzygy50moverule":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid Syzygy50MoveRule value %q: %v", value, err)
		}
		e.opts.FiftyMovesRule = b

	case "syzygypath":
		e.opts.SyzygyPath = value

	default:
		return fmt.Errorf("unknown option %q", name)
	}
	return nil
}
