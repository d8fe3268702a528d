package search

import (
	"fmt"
	"math"
	"time"

	"github.com/corvidchess/corvid/pkg/board"
	"go.uber.org/atomic"
)

// TimeForMove computes the time budget for one Go command, given the side to move. Priority
// order: no time-related option at all means unlimited; an explicit move_time wins outright;
// otherwise the side to move's own clock and increment are used -- never the opponent's, and
// never White's unconditionally. A zero clock with a zero increment for the side to move is
// malformed and aborts the Go.
func TimeForMove(o Options, turn board.Color) (time.Duration, error) {
	if !o.hasTimeControl() {
		return time.Duration(math.MaxInt64), nil
	}
	if o.MoveTime > 0 {
		return o.MoveTime, nil
	}

	t, inc := o.WhiteTime, o.WhiteIncrement
	if turn == board.Black {
		t, inc = o.BlackTime, o.BlackIncrement
	}
	if t == 0 && inc == 0 {
		return 0, fmt.Errorf("malformed time control: no clock or increment for side to move")
	}

	overhead := o.Persistent.MoveOverhead
	if inc == 0 {
		return time.Duration(float64(t)*0.05) - overhead, nil
	}

	withInc := time.Duration(float64(t)*0.1) + inc - overhead
	remainder := t - overhead
	if remainder < withInc {
		return remainder, nil
	}
	return withInc, nil
}

// Deadline enforces the time budget computed by TimeForMove and polls the command channel for
// a pending Stop or Quit. It is consulted once per negamax/quiescence node, giving cooperative
// cancellation a worst-case latency of one leaf evaluation plus one level of recursion.
type Deadline struct {
	start    time.Time
	budget   time.Duration
	commands <-chan Command

	stopped atomic.Bool
	quit    atomic.Bool
}

// NewDeadline starts a deadline clock now, with the given budget and command source.
func NewDeadline(commands <-chan Command, budget time.Duration) *Deadline {
	return &Deadline{start: time.Now(), budget: budget, commands: commands}
}

// CheckStop returns true iff the search should unwind to Stopped: a Stop or Quit is pending, or
// the budget has been exceeded. Sticky: once true, stays true for this Deadline's lifetime.
func (d *Deadline) CheckStop() bool {
	if d.stopped.Load() {
		return true
	}

	select {
	case cmd := <-d.commands:
		switch cmd.Kind {
		case StopCommand:
			d.stopped.Store(true)
		case QuitCommand:
			d.stopped.Store(true)
			d.quit.Store(true)
		}
	default:
	}

	if !d.stopped.Load() && time.Since(d.start) > d.budget {
		d.stopped.Store(true)
	}
	return d.stopped.Load()
}

// IsQuit reports whether the interruption observed, if any, was a Quit rather than a Stop or a
// timeout. The engine actor uses this to decide whether to keep reading commands afterward.
func (d *Deadline) IsQuit() bool {
	return d.quit.Load()
}
