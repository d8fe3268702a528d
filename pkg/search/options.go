package search

import (
	"math"
	"time"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/seekerror/stdlib/pkg/lang"
)

// PersistentOptions holds the UCI options that survive across Go commands until explicitly
// changed with setoption, as opposed to the per-search fields of Options below.
type PersistentOptions struct {
	// MaxDepth caps search_depth() when set. Unset (and the wire value -1) means no cap.
	MaxDepth lang.Optional[int]
	// MoveOverhead is subtracted from every time budget to leave margin for engine/GUI latency.
	MoveOverhead time.Duration
	// FiftyMovesRule gates whether the fifty-move rule, in addition to threefold repetition,
	// makes a position a claimable draw.
	FiftyMovesRule bool
	// SyzygyPath is accepted and stored but never consulted: tablebase probing is out of scope.
	SyzygyPath string
}

// DefaultPersistentOptions returns the options in effect immediately after ucinewgame, matching
// the defaults advertised by the uci verb (see pkg/uci).
func DefaultPersistentOptions() PersistentOptions {
	return PersistentOptions{
		MaxDepth:       lang.None[int](),
		MoveOverhead:   10 * time.Millisecond,
		FiftyMovesRule: true,
	}
}

// Options is the full set of parameters for a single Go command.
type Options struct {
	Game *board.Game

	MoveTime                      time.Duration
	WhiteTime, BlackTime          time.Duration
	WhiteIncrement, BlackIncrement time.Duration

	// Depth is the requested ply depth, possibly +Inf (go infinite, or a go without a depth
	// token). A go with no arguments at all uses the protocol-level default of 2 -- see pkg/uci.
	Depth float64

	Persistent PersistentOptions
}

// SearchDepth returns min(MaxDepth, Depth), the effective iterative-deepening target.
func (o Options) SearchDepth() float64 {
	if max, ok := o.Persistent.MaxDepth.V(); ok {
		return math.Min(float64(max), o.Depth)
	}
	return o.Depth
}

// hasTimeControl reports whether any time-related field was supplied on the wire. If none was,
// the search has no deadline other than the depth limit.
func (o Options) hasTimeControl() bool {
	return o.MoveTime > 0 || o.WhiteTime > 0 || o.BlackTime > 0 || o.WhiteIncrement > 0 || o.BlackIncrement > 0
}
