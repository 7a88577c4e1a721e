package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/gverdier/folio"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	input string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the book from a JSON backup" }
func (*importCmd) Usage() string {
	return `flo import [-i <file>]

  Reads a backup document, from stdin by default, and replaces the book
  with it. A malformed backup leaves the current book untouched.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Input file. Defaults to stdin.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in := os.Stdin
	if c.input != "" {
		var err error
		in, err = os.Open(c.input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", c.input, err)
			return subcommands.ExitFailure
		}
		defer in.Close()
	}

	b, err := folio.Import(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing backup: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := SaveBook(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d holdings, %d dividends, %d budget entries\n",
		len(b.Holdings), len(b.Dividends), len(b.BudgetEntries))
	return subcommands.ExitSuccess
}
