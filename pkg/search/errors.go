package search

import "errors"

// ErrStopped is the internal signal that a search was interrupted by a Stop/Quit command or by
// exceeding its deadline. It is never surfaced to the UCI protocol: the driver catches it and
// falls back to the best-completed iteration's PV, or the initial random move if none completed.
var ErrStopped = errors.New("search stopped")
