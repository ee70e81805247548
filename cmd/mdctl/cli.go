package mdctl

import (
	kongcompletion "github.com/jotaen/kong-completion"
)

// CLI is the root kong command structure: one subcommand per renderer,
// plus shell-completion generation.
type CLI struct {
	Console    ConsoleCmd                `cmd:"" help:"Render to an ANSI terminal"`
	HTML       HTMLCmd                   `cmd:"" help:"Render to HTML"`
	Format     FormatCmd                 `cmd:"" help:"Re-emit canonical Markdown"`
	Range      RangeCmd                  `cmd:"" help:"Emit styled (line,col) spans as JSON"`
	Completion kongcompletion.Completion `cmd:"" help:"Generate shell completion scripts"`
}
