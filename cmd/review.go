package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/gverdier/folio"
	"github.com/gverdier/folio/renderer"
)

// reviewCmd holds the flags for the 'review' subcommand.
type reviewCmd struct {
	year  int
	month int
	all   bool
}

func (*reviewCmd) Name() string     { return "review" }
func (*reviewCmd) Synopsis() string { return "display the reconstructed portfolio statistics" }
func (*reviewCmd) Usage() string {
	return `flo review [-y <year>] [-m <month>] [-all]

  Reconstructs the portfolio state at the end of a year, or at the end of
  a month within it. -all aggregates the whole history at current prices.
`
}

func (c *reviewCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "y", folio.Today().Year(), "Review year.")
	f.IntVar(&c.month, "m", 0, "Cut the year at the end of this month (1-12).")
	f.BoolVar(&c.all, "all", false, "All-time review at current prices.")
}

func (c *reviewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := LoadBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	var review folio.Review
	switch {
	case c.all:
		review = folio.NewAllTimeReview(b)
	case c.month != 0:
		if c.month < 1 || c.month > 12 {
			fmt.Fprintf(os.Stderr, "Error: month out of range: %d\n", c.month)
			return subcommands.ExitUsageError
		}
		review = folio.NewReviewAt(b, c.year, time.Month(c.month))
	default:
		review = folio.NewReview(b, c.year)
	}

	printMarkdown(renderer.ReviewMarkdown(review))
	return subcommands.ExitSuccess
}
