package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/gverdier/folio"
)

// sellCmd holds the flags for the 'sell' subcommand.
type sellCmd struct {
	symbol string
	date   string
	shares float64
	price  float64
	fees   float64
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sell transaction" }
func (*sellCmd) Usage() string {
	return `flo sell -s <symbol> -q <shares> -p <price> [-f <fees>] [-d <date>]

  Records a sell against an existing holding.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Instrument symbol.")
	f.StringVar(&c.date, "d", folio.Today().String(), "Trade date.")
	f.Float64Var(&c.shares, "q", 0, "Share quantity.")
	f.Float64Var(&c.price, "p", 0, "Price per share.")
	f.Float64Var(&c.fees, "f", -1, "Transaction fees. Defaults to the configured fee rate.")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := folio.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	b, err := LoadBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}
	h := b.Holding(c.symbol)
	if h == nil {
		fmt.Fprintf(os.Stderr, "Error: %v: %q\n", folio.ErrUnknownSymbol, c.symbol)
		return subcommands.ExitUsageError
	}

	cur := b.Settings.Currency
	price := folio.M(c.price, cur)
	fees := folio.M(c.fees, cur)
	if c.fees < 0 {
		fees = defaultFee(b.Settings, price, folio.Q(c.shares))
	}

	tx, err := h.Append(folio.NewSell(on, folio.Q(c.shares), price, fees))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if err := SaveBook(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Sold %s %s at %s on %s (fees %s, proceeds %s)\n",
		tx.Shares, h.Symbol, tx.Price, tx.Date, tx.Fees, tx.NetProceeds())
	return subcommands.ExitSuccess
}
