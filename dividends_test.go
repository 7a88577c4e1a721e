package folio

import (
	"testing"
	"time"
)

func TestDividendReport(t *testing.T) {
	h := NewHolding("ACME", "Acme Corp", EUR(12))
	mustAppend(t, h, NewBuy(NewDate(2024, time.January, 2), Q(100), EUR(10), EUR(0)))
	pos := h.Position()

	divs := []Dividend{
		{ID: "d1", Symbol: "ACME", Date: NewDate(2024, time.March, 15),
			Amount: EUR(30), Shares: Q(100), PerShare: EUR(0.30)},
		{ID: "d2", Symbol: "ACME", Date: NewDate(2024, time.June, 15),
			Amount: EUR(50), Shares: Q(100), PerShare: EUR(0.50)},
	}
	meta := Metadata{Frequency: 4, ExMonths: []time.Month{time.March, time.June, time.September, time.December}}

	report := NewDividendReport(divs, pos, meta)

	if len(report.Lines) != 2 {
		t.Fatalf("Lines count = %d, want 2", len(report.Lines))
	}
	first := report.Lines[0]
	if want := EUR(1000); !first.Cost.Equal(want) {
		t.Errorf("Cost = %s, want %s", first.Cost, want)
	}
	if !first.Yield.Equal(3) {
		t.Errorf("Yield = %s, want 3.00%%", first.Yield)
	}
	if !first.Annualized.Equal(12) {
		t.Errorf("Annualized = %s, want 12.00%%", first.Annualized)
	}

	if want := EUR(80); !report.Total.Equal(want) {
		t.Errorf("Total = %s, want %s", report.Total, want)
	}
	if !report.Yield.Equal(8) {
		t.Errorf("aggregate Yield = %s, want 8.00%%", report.Yield)
	}
	// Mean of 12% and 20%.
	if !report.Annualized.Equal(16) {
		t.Errorf("aggregate Annualized = %s, want 16.00%%", report.Annualized)
	}
}

// A dividend on a fully liquidated position attributes to zero cost and a
// zero yield, never a division fault.
func TestDividendReport_EmptyPosition(t *testing.T) {
	pos := NewPosition("ACME", nil, EUR(10))
	divs := []Dividend{{ID: "d1", Symbol: "ACME", Date: NewDate(2024, time.March, 15),
		Amount: EUR(30), Shares: Q(100), PerShare: EUR(0.30)}}

	report := NewDividendReport(divs, pos, Metadata{Frequency: 4})
	if !report.Lines[0].Yield.Equal(0) {
		t.Errorf("Yield = %s, want 0", report.Lines[0].Yield)
	}
	if !report.Yield.Equal(0) {
		t.Errorf("aggregate Yield = %s, want 0", report.Yield)
	}
	if want := EUR(30); !report.Total.Equal(want) {
		t.Errorf("Total = %s, want %s", report.Total, want)
	}
}

func TestByYear(t *testing.T) {
	divs := []Dividend{
		{ID: "d1", Date: NewDate(2023, time.March, 1)},
		{ID: "d2", Date: NewDate(2024, time.March, 1)},
		{ID: "d3", Date: NewDate(2024, time.June, 1)},
	}
	if got := ByYear(divs, 2024); len(got) != 2 {
		t.Errorf("ByYear(2024) count = %d, want 2", len(got))
	}
	if got := ByYear(divs, 0); len(got) != 3 {
		t.Errorf("ByYear(0) count = %d, want 3", len(got))
	}
}
