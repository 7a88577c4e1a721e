package renderer

import (
	"bytes"
	"fmt"

	"github.com/gverdier/folio"
	md "github.com/nao1215/markdown"
)

// HoldingMarkdown renders the full position report of one instrument: the
// aggregate figures, the open lots, and the sell history.
func HoldingMarkdown(name string, pos folio.Position) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s (%s)", name, pos.Symbol))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Market Value"), md.Bold(pos.MarketValue.String())},
		Rows: [][]string{
			{"Shares", pos.Shares.String()},
			{"Current Price", pos.CurrentPrice.String()},
			{"Average Cost", pos.AverageCost.String()},
			{"Cost Basis", pos.CostBasis.String()},
			{"Unrealized P&L", pos.UnrealizedPnL.SignedString() + " " + pos.UnrealizedPct.SignedString()},
			{"Realized P&L", pos.RealizedPnL.SignedString() + " " + pos.RealizedPct.SignedString()},
		},
	})

	if len(pos.Lots) > 0 {
		doc.H2("Open Lots")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
			Header:    []string{"Date", "Shares", "Remaining Cost"},
		}
		for _, lot := range pos.Lots {
			table.Rows = append(table.Rows, []string{
				lot.Date.String(), lot.Shares.String(), lot.Cost.String(),
			})
		}
		doc.Table(table)
	}

	if len(pos.Sells) > 0 {
		doc.H2("Sells")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
			Header:    []string{"Date", "Shares", "Cost Consumed", "Realized P&L", "Return"},
		}
		for _, sell := range pos.Sells {
			table.Rows = append(table.Rows, []string{
				sell.Transaction.Date.String(),
				sell.Transaction.Shares.String(),
				sell.CostConsumed.String(),
				sell.RealizedPnL.SignedString(),
				sell.ReturnRate.SignedString(),
			})
		}
		doc.Table(table)
	}

	return doc.String()
}

// PositionsMarkdown renders a one-line-per-instrument summary of every
// holding in the book.
func PositionsMarkdown(positions []folio.Position) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Holdings")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Symbol", "Shares", "Market Value", "Unrealized P&L", "Realized P&L"},
	}
	for _, pos := range positions {
		table.Rows = append(table.Rows, []string{
			pos.Symbol,
			pos.Shares.String(),
			cell(pos.MarketValue),
			pos.UnrealizedPnL.SignedString(),
			pos.RealizedPnL.SignedString(),
		})
	}
	doc.Table(table)

	return doc.String()
}
