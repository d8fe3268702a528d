// corvid is a UCI chess engine. It takes no arguments and speaks only the UCI protocol on
// stdin/stdout.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/corvidchess/corvid/pkg/engine"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/corvidchess/corvid/pkg/uci"
)

const (
	name   = "corvid"
	author = "corvidchess"
)

func main() {
	ctx := context.Background()
	seed := time.Now().UnixNano()

	e := engine.New(name, author, seed)
	fmt.Printf("%v by %v\n", e.Name(), e.Author())

	in := engine.ReadStdinLines(ctx)
	out := make(chan string, 100)
	cmds := make(chan search.Command)

	go search.RunActor(ctx, cmds, out, rand.New(rand.NewSource(seed)).Int63())
	go engine.WriteStdoutLines(ctx, out)

	driver := uci.NewDriver(ctx, e, in, cmds, out)
	<-driver.Closed()

	os.Exit(0)
}
