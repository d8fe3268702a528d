// Package search implements the iterative-deepening negamax search core: move ordering,
// quiescence search, the fail-hard alpha-beta driver, and the deadline/interrupt plumbing that
// lets a protocol actor stop or cancel an in-flight search cooperatively.
package search

// CommandKind identifies the variant of a Command.
type CommandKind uint8

const (
	GoCommand CommandKind = iota
	StopCommand
	QuitCommand
)

// Command is the sum type {Go{options}, Stop, Quit} posted by the protocol actor and consumed
// by the search actor over a single-producer, single-consumer channel. Immutable once created.
type Command struct {
	Kind    CommandKind
	Options Options
}

// Go wraps the given options in a Go command.
func Go(opt Options) Command {
	return Command{Kind: GoCommand, Options: opt}
}

// Stop is the Stop command.
func Stop() Command {
	return Command{Kind: StopCommand}
}

// Quit is the Quit command.
func Quit() Command {
	return Command{Kind: QuitCommand}
}
