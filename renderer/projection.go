package renderer

import (
	"bytes"
	"strconv"

	"github.com/gverdier/folio"
	md "github.com/nao1215/markdown"
)

// ProjectionMarkdown renders a simulation run next to the realized history.
// Years without a realized figure show a dash in the actual column.
func ProjectionMarkdown(s folio.Strategy, points []folio.ProjectionPoint, actuals []folio.ActualPoint) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Projection " + s.Symbol)

	byYear := make(map[int]folio.Money, len(actuals))
	for _, a := range actuals {
		byYear[a.Year] = a.NetWorth
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Year", "Invested", "Projected", "Actual"},
	}
	for _, p := range points {
		actual := "-"
		if worth, ok := byYear[p.Year]; ok {
			actual = worth.String()
		}
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(p.Year),
			p.Invested.String(),
			p.Balance.String(),
			actual,
		})
	}
	doc.Table(table)

	return doc.String()
}
