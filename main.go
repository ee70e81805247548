// Command mdctl renders Markdown documents to a terminal, HTML, canonical
// Markdown, or styled (line, col) spans for an external consumer.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/inkmd/mdctl/cmd/mdctl"
)

func main() {
	defer recoverInvariantPanic()

	cli := &mdctl.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("mdctl"),
		kong.Description("Markdown lexer, parser, and renderer toolchain"),
		kong.UsageOnError(),
	)

	ctx.FatalIfErrorf(ctx.Run())
}

// recoverInvariantPanic is the one place a parser/renderer invariant
// violation (a reopened block, a wrong-kind container child) is allowed to
// surface as anything other than a crash: it is a bug in this program, not
// a normal error condition, so it is reported and the process exits 1
// rather than dumping a raw Go stack trace at the user.
func recoverInvariantPanic() {
	if r := recover(); r != nil {
		fmt.Fprintf(os.Stderr, "mdctl: internal error: %v\n", r)
		os.Exit(1)
	}
}
