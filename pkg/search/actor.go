package search

import (
	"context"
	"math/rand"

	"github.com/seekerror/logw"
)

// RunActor is the search actor's main loop: it blocks on commands when idle, and runs one
// iterative-deepening search per Go command, with the command channel itself used by that
// search's Deadline to poll for Stop/Quit. Returns when a Quit command is processed, whether
// seen while idle or observed mid-search. Each Go command builds its own Heuristic from its own
// Options.Persistent, so a setoption between searches always takes effect.
func RunActor(ctx context.Context, commands chan Command, out chan<- string, seed int64) {
	seeds := rand.New(rand.NewSource(seed))

	for cmd := range commands {
		switch cmd.Kind {
		case GoCommand:
			logw.Debugf(ctx, "Searching %v", cmd.Options.Game)
			d := NewDriver(seeds.Int63())
			if quit := d.Run(ctx, commands, cmd.Options, out); quit {
				return
			}
		case QuitCommand:
			return
		case StopCommand:
			// No active search: nothing to stop.
		}
	}
}
