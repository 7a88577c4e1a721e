package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/gverdier/folio"
)

// budgetCmd records manual cash movements: deposits, withdrawals and
// donations.
type budgetCmd struct {
	date   string
	amount float64
	memo   string
	symbol string
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "record a deposit, withdrawal or donation" }
func (*budgetCmd) Usage() string {
	return `flo budget <deposit|withdraw|donate> -a <amount> [-d <date>] [-m <memo>] [-s <symbol>]

  Records a manual cash movement. Donations may name the related
  instrument with -s.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", folio.Today().String(), "Entry date.")
	f.Float64Var(&c.amount, "a", 0, "Amount, positive.")
	f.StringVar(&c.memo, "m", "", "Description shown in the ledger.")
	f.StringVar(&c.symbol, "s", "", "Related instrument, for donations.")
}

func (c *budgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected one of deposit, withdraw, donate")
		return subcommands.ExitUsageError
	}
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
	amount := folio.M(c.amount, b.Settings.Currency)

	switch f.Arg(0) {
	case "deposit":
		e := folio.NewBudgetEntry(folio.DepositEntry, amount, on, c.memo)
		if err := e.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		b.BudgetEntries = append(b.BudgetEntries, e)
	case "withdraw":
		e := folio.NewBudgetEntry(folio.WithdrawalEntry, amount, on, c.memo)
		if err := e.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		b.BudgetEntries = append(b.BudgetEntries, e)
	case "donate":
		if !amount.IsPositive() {
			fmt.Fprintln(os.Stderr, "Error: donation amount must be positive")
			return subcommands.ExitUsageError
		}
		b.Donations = append(b.Donations, folio.NewDonation(c.symbol, amount, on, c.memo))
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown budget action %q\n", f.Arg(0))
		return subcommands.ExitUsageError
	}

	if err := SaveBook(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s of %s on %s\n", f.Arg(0), amount, on)
	return subcommands.ExitSuccess
}
