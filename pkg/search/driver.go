package search

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/seekerror/logw"
)

// Driver runs iterative deepening for a single Go command: increasing ply depth until the
// deadline or SearchDepth() is reached, writing one "info" line per completed depth and exactly
// one "bestmove" line at the end to out. A fresh Heuristic is built from each Go's own
// Options.Persistent, so a setoption in between two Go commands always takes effect.
type Driver struct {
	Rand *rand.Rand // seeded per search so the fallback random move is reproducible in tests
}

// NewDriver returns a Driver seeded for one search. Callers derive the seed however they like;
// tests typically fix it for determinism, production code can use the wall clock.
func NewDriver(seed int64) *Driver {
	return &Driver{Rand: rand.New(rand.NewSource(seed))}
}

// Run executes opt's Go command to completion, sending UCI output lines to out. It always sends
// exactly one "bestmove" line before returning, even if interrupted on the very first depth.
// Returns true iff the interruption observed (if any) was a Quit.
func (d *Driver) Run(ctx context.Context, commands <-chan Command, opt Options, out chan<- string) bool {
	h := eval.NewHeuristic(opt.Persistent.FiftyMovesRule, opt.Persistent.SyzygyPath)
	g := opt.Game
	legal := g.LegalMoves()
	if len(legal) == 0 {
		logw.Errorf(ctx, "Go issued against a terminal game: %v", g)
		out <- "bestmove 0000"
		return false
	}
	best := legal[d.Rand.Intn(len(legal))]

	budget, err := TimeForMove(opt, g.Turn())
	if err != nil {
		logw.Errorf(ctx, "Aborting go: %v", err)
		out <- fmt.Sprintf("bestmove %v", best)
		return false
	}

	dl := NewDeadline(commands, budget)
	searchDepth := opt.SearchDepth()

	start := time.Now()
	totalNodes := 0

	for depth := 1; float64(depth) <= searchDepth; depth++ {
		score, pv, nodes, err := Negamax(dl, h, g, depth, board.NegInf, board.Inf)
		if err != nil {
			logw.Debugf(ctx, "Search stopped at depth=%v: %v", depth, err)
			break
		}
		totalNodes += nodes
		if len(pv) > 0 {
			best = pv[0]
		}

		elapsed := time.Since(start)
		out <- fmt.Sprintf("info depth %v score cp %v nodes %v nps %v time %v pv %v",
			depth, int(score), totalNodes, nps(totalNodes, elapsed), elapsed.Milliseconds(), formatPV(pv))

		if dl.IsQuit() {
			return true
		}
	}

	out <- fmt.Sprintf("bestmove %v", best)
	return dl.IsQuit()
}

func nps(nodes int, elapsed time.Duration) int64 {
	micros := elapsed.Microseconds()
	if micros <= 0 {
		return 0
	}
	return int64(float64(nodes) * 1e6 / float64(micros))
}

func formatPV(pv []board.Move) string {
	moves := make([]string, len(pv))
	for i, m := range pv {
		moves[i] = m.String()
	}
	return strings.Join(moves, " ")
}
