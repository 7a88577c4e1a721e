package renderer

import (
	"bytes"
	"slices"

	"github.com/gverdier/folio"
	md "github.com/nao1215/markdown"
)

// LedgerMarkdown renders the cash ledger. With newestFirst the lines are
// displayed in reverse order; the stamped balances still come from the
// ascending computation.
func LedgerMarkdown(l folio.CashLedger, newestFirst bool) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Cash Ledger")

	lines := l.Lines
	if newestFirst {
		lines = slices.Clone(lines)
		slices.Reverse(lines)
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Date", "Description", "In", "Out", "Balance"},
	}
	for _, line := range lines {
		description := line.Description
		if line.Editable {
			description = description + " *"
		}
		table.Rows = append(table.Rows, []string{
			line.Date.String(),
			description,
			cell(line.Inflow),
			cell(line.Outflow),
			line.Balance.String(),
		})
	}
	doc.Table(table)

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Balance"), md.Bold(l.Balance.String())},
		Rows: [][]string{
			{"Total In", l.TotalIn.String()},
			{"Total Out", l.TotalOut.String()},
		},
	})

	return doc.String()
}
