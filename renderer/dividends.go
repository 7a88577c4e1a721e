package renderer

import (
	"bytes"

	"github.com/gverdier/folio"
	md "github.com/nao1215/markdown"
)

// DividendsMarkdown renders the dividend history report of one instrument.
func DividendsMarkdown(r folio.DividendReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Dividends " + r.Symbol)

	if len(r.Lines) > 0 {
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
			Header:    []string{"Date", "Amount", "Cost Attributed", "Yield", "Annualized"},
		}
		for _, line := range r.Lines {
			table.Rows = append(table.Rows, []string{
				line.Dividend.Date.String(),
				line.Dividend.Amount.String(),
				cell(line.Cost),
				line.Yield.String(),
				line.Annualized.String(),
			})
		}
		doc.Table(table)
	}

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Total"), md.Bold(r.Total.String())},
		Rows: [][]string{
			{"Yield on Cost", r.Yield.String()},
			{"Annualized", r.Annualized.String()},
		},
	})

	return doc.String()
}
