package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/gverdier/folio"
)

// buyCmd holds the flags for the 'buy' subcommand.
type buyCmd struct {
	symbol string
	name   string
	date   string
	shares float64
	price  float64
	fees   float64
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a buy transaction" }
func (*buyCmd) Usage() string {
	return `flo buy -s <symbol> -q <shares> -p <price> [-f <fees>] [-d <date>] [-n <name>]

  Records a buy. An unknown symbol creates the holding, named with -n.
  Without -f the fee defaults to the configured fee rate.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Instrument symbol.")
	f.StringVar(&c.name, "n", "", "Display name when creating a new holding.")
	f.StringVar(&c.date, "d", folio.Today().String(), "Trade date.")
	f.Float64Var(&c.shares, "q", 0, "Share quantity.")
	f.Float64Var(&c.price, "p", 0, "Price per share.")
	f.Float64Var(&c.fees, "f", -1, "Transaction fees. Defaults to the configured fee rate.")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	cur := b.Settings.Currency

	h := b.Holding(c.symbol)
	if h == nil {
		name := c.name
		if name == "" {
			name = c.symbol
		}
		h = folio.NewHolding(c.symbol, name, folio.M(c.price, cur))
		if err := b.AddHolding(h); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}

	price := folio.M(c.price, cur)
	fees := folio.M(c.fees, cur)
	if c.fees < 0 {
		fees = defaultFee(b.Settings, price, folio.Q(c.shares))
	}

	tx, err := h.Append(folio.NewBuy(on, folio.Q(c.shares), price, fees))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if err := SaveBook(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Bought %s %s at %s on %s (fees %s, cost %s)\n",
		tx.Shares, h.Symbol, tx.Price, tx.Date, tx.Fees, tx.GrossCost())
	return subcommands.ExitSuccess
}

// defaultFee applies the configured fee rate to the gross trade amount.
func defaultFee(s folio.Settings, price folio.Money, shares folio.Quantity) folio.Money {
	gross := price.Mul(shares).AsFloat()
	return folio.M(gross*float64(s.FeeRate)/100, s.Currency)
}
