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

// ledgerCmd holds the flags for the 'ledger' subcommand.
type ledgerCmd struct {
	newestFirst bool
}

func (*ledgerCmd) Name() string     { return "ledger" }
func (*ledgerCmd) Synopsis() string { return "display the cash ledger with running balances" }
func (*ledgerCmd) Usage() string {
	return `flo ledger [-r]

  Merges trades, dividends, donations and manual entries into one
  chronological running-balance ledger. -r lists newest first.
`
}

func (c *ledgerCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.newestFirst, "r", false, "List the newest lines first.")
}

func (c *ledgerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := LoadBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.LedgerMarkdown(folio.NewCashLedger(b), c.newestFirst))
	return subcommands.ExitSuccess
}
