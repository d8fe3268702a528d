// Package uci implements the protocol actor described by the Universal Chess Interface: it
// parses commands from stdin, updates engine state directly for anything that does not touch
// search, and posts search.Command values to the search actor for everything that does.
//
// See: http://wbec-ridderkerk.nl/html/UCIProtocol.html
package uci

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/corvidchess/corvid/pkg/engine"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/seekerror/logw"
)

// ProtocolName is the line a GUI sends to select this protocol after program start.
const ProtocolName = "uci"

// defaultDepth is used for "go" with no arguments at all.
const defaultDepth = 2

// Driver parses UCI protocol lines from in and posts Command values to cmds, writing wire
// output directly to out. It never blocks the search actor: every command is a single channel
// send, which the search actor receives when idle or at its next stop poll during a search.
type Driver struct {
	e    *engine.Engine
	cmds chan<- search.Command
	out  chan<- string

	closed chan struct{}
}

// NewDriver starts processing in in a goroutine and returns immediately. out and cmds are both
// owned by the caller; the driver never closes cmds (the search actor owns its lifetime).
func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string, cmds chan<- search.Command, out chan<- string) *Driver {
	d := &Driver{e: e, cmds: cmds, out: out, closed: make(chan struct{})}
	go d.process(ctx, in)
	return d
}

// Closed returns a channel that is closed once the driver has stopped reading input, either
// because it processed "quit" or because the input stream itself closed.
func (d *Driver) Closed() <-chan struct{} {
	return d.closed
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer close(d.closed)

	for line := range in {
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd, args := strings.ToLower(parts[0]), parts[1:]
		switch cmd {
		case "uci":
			d.handleUCI()

		case "isready":
			d.out <- "readyok"

		case "ucinewgame":
			d.e.NewGame()

		case "position":
			if err := d.handlePosition(args); err != nil {
				logw.Errorf(ctx, "Invalid position '%v': %v", line, err)
			}

		case "setoption":
			if err := d.handleSetOption(args); err != nil {
				logw.Errorf(ctx, "Invalid setoption '%v': %v", line, err)
			}

		case "go":
			if err := d.handleGo(args); err != nil {
				logw.Errorf(ctx, "Invalid go '%v': %v", line, err)
			}

		case "stop":
			d.cmds <- search.Stop()

		case "quit":
			d.cmds <- search.Quit()
			return

		default:
			logw.Debugf(ctx, "Ignoring unknown command: %v", line)
		}
	}
}

func (d *Driver) handleUCI() {
	d.out <- fmt.Sprintf("id name %v", d.e.Name())
	d.out <- fmt.Sprintf("id author %v", d.e.Author())
	d.out <- "option name MaxDepth type spin default -1 min -1 max 99"
	d.out <- "option name Move Overhead type spin default 10 min 0 max 5000"
	d.out <- "option name Syzygy50MoveRule type check default true"
	d.out <- "option name SyzygyPath type string default <empty>"
	d.out <- "uciok"
}

func (d *Driver) handlePosition(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing position")
	}

	var rest []string
	switch args[0] {
	case "startpos":
		if err := d.e.SetPosition(fen.Initial); err != nil {
			return err
		}
		rest = args[1:]

	case "fen":
		if len(args) < 7 {
			return fmt.Errorf("truncated fen")
		}
		if err := d.e.SetPosition(strings.Join(args[1:7], " ")); err != nil {
			return err
		}
		rest = args[7:]

	default:
		return fmt.Errorf("expected startpos or fen, got %q", args[0])
	}

	if len(rest) == 0 {
		return nil
	}
	if rest[0] != "moves" {
		return fmt.Errorf("expected moves, got %q", rest[0])
	}
	for _, m := range rest[1:] {
		if err := d.e.MakeMove(m); err != nil {
			return err
		}
	}
	return nil
}

func (d *Driver) handleSetOption(args []string) error {
	// setoption name <id> [value <x>], where <id> may itself contain spaces (e.g. "Move
	// Overhead"). "value" marks the start of the value tokens.
	if len(args) < 2 || args[0] != "name" {
		return fmt.Errorf("missing name")
	}

	nameEnd := len(args)
	valueStart := len(args)
	for i := 1; i < len(args); i++ {
		if args[i] == "value" {
			nameEnd = i
			valueStart = i + 1
			break
		}
	}

	name := strings.Join(args[1:nameEnd], " ")
	value := strings.Join(args[valueStart:], " ")
	return d.e.SetOption(name, value)
}

func (d *Driver) handleGo(args []string) error {
	opt := search.Options{
		Game:       d.e.Game(),
		Persistent: d.e.PersistentOptions(),
		Depth:      math.Inf(1),
	}
	if len(args) == 0 {
		opt.Depth = defaultDepth
	}

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "movetime", "wtime", "btime", "winc", "binc", "depth":
			i++
			if i >= len(args) {
				return fmt.Errorf("missing argument for %v", args[i-1])
			}
			n, err := strconv.Atoi(args[i])
			if err != nil {
				return fmt.Errorf("invalid argument for %v: %v", args[i-1], err)
			}

			switch args[i-1] {
			case "movetime":
				opt.MoveTime = time.Duration(n) * time.Millisecond
			case "wtime":
				opt.WhiteTime = time.Duration(n) * time.Millisecond
			case "btime":
				opt.BlackTime = time.Duration(n) * time.Millisecond
			case "winc":
				opt.WhiteIncrement = time.Duration(n) * time.Millisecond
			case "binc":
				opt.BlackIncrement = time.Duration(n) * time.Millisecond
			case "depth":
				opt.Depth = float64(n)
			}

		case "infinite":
			opt.Depth = math.Inf(1)

		default:
			// silently ignore anything else (e.g. ponder, searchmoves, movestogo, mate, nodes)
		}
	}

	d.cmds <- search.Go(opt)
	return nil
}
