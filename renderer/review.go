package renderer

import (
	"bytes"
	"fmt"

	"github.com/gverdier/folio"
	md "github.com/nao1215/markdown"
)

// ReviewMarkdown renders a reconstructed portfolio review.
func ReviewMarkdown(r folio.Review) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if r.Year == 0 {
		doc.H1("Portfolio Review, All Time")
	} else {
		doc.H1(fmt.Sprintf("Portfolio Review %d (as of %s)", r.Year, r.Cutoff))
	}

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Market Value"), md.Bold(r.MarketValue.String())},
		Rows: [][]string{
			{"Cost Basis", r.CostBasis.String()},
			{"Unrealized P&L", r.UnrealizedPnL.SignedString()},
			{"Realized P&L", r.RealizedPnL.SignedString()},
			{"Dividend Income", cell(r.DividendIncome)},
			{"Total Return", r.TotalReturnPct.SignedString()},
			{"Dividend Yield", r.YieldPct.String()},
		},
	})

	return doc.String()
}
