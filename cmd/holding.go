package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/gverdier/folio"
	"github.com/gverdier/folio/renderer"
)

// holdingCmd holds the flags for the 'holding' subcommand.
type holdingCmd struct {
	symbol string
}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "display the position reports" }
func (*holdingCmd) Usage() string {
	return `flo holding [-s <symbol>]

  Displays the summary of every holding, or the full lot-level report of
  one instrument with -s.
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Show the detailed report of one instrument.")
}

func (c *holdingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := LoadBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.symbol != "" {
		h := b.Holding(c.symbol)
		if h == nil {
			fmt.Fprintf(os.Stderr, "Error: %v: %q\n", folio.ErrUnknownSymbol, c.symbol)
			return subcommands.ExitUsageError
		}
		printMarkdown(renderer.HoldingMarkdown(h.Name, h.Position()))
		return subcommands.ExitSuccess
	}

	positions := make([]folio.Position, 0, len(b.Holdings))
	for _, h := range b.Holdings {
		positions = append(positions, h.Position())
	}
	printMarkdown(renderer.PositionsMarkdown(positions))
	return subcommands.ExitSuccess
}
