package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/gverdier/folio"
)

// updateCmd holds the flags for the 'update' subcommand.
type updateCmd struct {
	snapshot bool
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "refresh the current prices from live quotes" }
func (*updateCmd) Usage() string {
	return `flo update [-snapshot]

  Fetches the current market price of every holding and updates the book.
  With -snapshot the fetched prices are also recorded as this month's
  historical closing prices.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.snapshot, "snapshot", false, "Also record the prices in the monthly history.")
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := LoadBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(b.Holdings) == 0 {
		fmt.Println("Nothing to update")
		return subcommands.ExitSuccess
	}

	symbols := make([]string, 0, len(b.Holdings))
	for _, h := range b.Holdings {
		symbols = append(symbols, h.Symbol)
	}

	quotes, failures := folio.Quotes(folio.DailyCachedClient(), symbols, b.Settings.Currency)
	for symbol, err := range failures {
		log.Printf("warning: %s: %v", symbol, err)
	}
	if len(quotes) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no quote could be fetched")
		return subcommands.ExitFailure
	}

	thisMonth := folio.YearMonthOf(folio.Today())
	for _, h := range b.Holdings {
		price, ok := quotes[h.Symbol]
		if !ok {
			continue
		}
		h.Price = price
		if c.snapshot {
			b.Prices.Record(h.Symbol, thisMonth, price)
		}
		fmt.Printf("%s: %s\n", h.Symbol, price)
	}

	if err := SaveBook(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
