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

// dividendCmd records a distribution, or lists the dividend history when
// called with -list.
type dividendCmd struct {
	symbol   string
	date     string
	amount   float64
	shares   float64
	perShare float64
	list     bool
	year     int
}

func (*dividendCmd) Name() string     { return "dividend" }
func (*dividendCmd) Synopsis() string { return "record a dividend or list the dividend history" }
func (*dividendCmd) Usage() string {
	return `flo dividend -s <symbol> -a <amount> [-q <shares>] [-r <per-share>] [-d <date>]
flo dividend -s <symbol> -list [-y <year>]

  Records a cash distribution, or renders the dividend report.
`
}

func (c *dividendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Instrument symbol.")
	f.StringVar(&c.date, "d", folio.Today().String(), "Distribution date.")
	f.Float64Var(&c.amount, "a", 0, "Net cash amount received.")
	f.Float64Var(&c.shares, "q", 0, "Shares held at distribution.")
	f.Float64Var(&c.perShare, "r", 0, "Declared per-share rate.")
	f.BoolVar(&c.list, "list", false, "Render the dividend report instead of recording.")
	f.IntVar(&c.year, "y", 0, "Restrict the report to one year. 0 means all.")
}

func (c *dividendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if c.list {
		divs := folio.ByYear(b.DividendsFor(c.symbol), c.year)
		report := folio.NewDividendReport(divs, h.Position(), b.MetadataFor(c.symbol))
		printMarkdown(renderer.DividendsMarkdown(report))
		return subcommands.ExitSuccess
	}

	on, err := folio.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	cur := b.Settings.Currency
	d := folio.NewDividend(c.symbol, on, folio.M(c.amount, cur), folio.Q(c.shares), folio.M(c.perShare, cur))
	b.Dividends = append(b.Dividends, d)

	if err := SaveBook(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded dividend of %s for %s on %s\n", d.Amount, d.Symbol, d.Date)
	return subcommands.ExitSuccess
}
