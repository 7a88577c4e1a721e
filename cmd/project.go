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

// projectCmd holds the flags for the 'project' subcommand.
type projectCmd struct {
	id    string
	start int
	years int
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "run a compound growth projection" }
func (*projectCmd) Usage() string {
	return `flo project -id <strategy> [-start <year>] [-years <n>]

  Simulates a saved strategy month by month and displays the projected
  balance next to the realized history.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Strategy id.")
	f.IntVar(&c.start, "start", folio.Today().Year(), "First simulated year.")
	f.IntVar(&c.years, "years", 10, "Number of years to simulate.")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.years <= 0 {
		fmt.Fprintf(os.Stderr, "Error: years must be positive, got %d\n", c.years)
		return subcommands.ExitUsageError
	}

	b, err := LoadBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}
	s := b.Strategy(c.id)
	if s == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown strategy %q\n", c.id)
		return subcommands.ExitUsageError
	}

	points := s.Simulate(b.MetadataFor(s.Symbol), c.start, c.years)
	actuals := folio.ActualSeries(b, c.start, c.years)
	printMarkdown(renderer.ProjectionMarkdown(*s, points, actuals))
	return subcommands.ExitSuccess
}
