package folio

import (
	"math"
	"testing"
	"time"
)

// With no contributions, no ex months and no overrides, the projection is
// pure compounding: balance(n) = initial × (1+annual/100)^n.
func TestSimulate_PureCompounding(t *testing.T) {
	s := Strategy{ID: "s1", Symbol: "ACME", Initial: EUR(10000), AnnualReturn: 12}

	points := s.Simulate(Metadata{}, 2025, 3)
	if len(points) != 3 {
		t.Fatalf("points count = %d, want 3", len(points))
	}
	for i, p := range points {
		want := 10000 * math.Pow(1.12, float64(i+1))
		if got := p.Balance.AsFloat(); math.Abs(got-want) > 0.01 {
			t.Errorf("year %d balance = %v, want %v", p.Year, got, want)
		}
		if got := p.Invested.AsFloat(); math.Abs(got-10000) > 1e-9 {
			t.Errorf("year %d invested = %v, want 10000", p.Year, got)
		}
	}
}

// Zero growth isolates the contribution arithmetic.
func TestSimulate_Contributions(t *testing.T) {
	s := Strategy{ID: "s1", Symbol: "ACME", Monthly: EUR(100), ExtraOnEx: EUR(50)}
	meta := Metadata{Frequency: 2, ExMonths: []time.Month{time.June, time.December}}

	points := s.Simulate(meta, 2025, 1)
	// 12×100 monthly plus 2×50 extra.
	if got := points[0].Invested.AsFloat(); math.Abs(got-1300) > 1e-9 {
		t.Errorf("invested = %v, want 1300", got)
	}
	if got := points[0].Balance.AsFloat(); math.Abs(got-1300) > 1e-9 {
		t.Errorf("balance = %v, want 1300", got)
	}
}

// Identical inputs always produce identical outputs.
func TestSimulate_Deterministic(t *testing.T) {
	s := Strategy{ID: "s1", Symbol: "ACME", Initial: EUR(5000), Monthly: EUR(200),
		ExtraOnEx: EUR(100), Reinvest: true, AnnualReturn: 7.5, DividendYield: 3.2}
	meta := Metadata{Frequency: 4, ExMonths: []time.Month{time.March, time.June, time.September, time.December}}

	a := s.Simulate(meta, 2025, 10)
	b := s.Simulate(meta, 2025, 10)
	for i := range a {
		if !a[i].Balance.Equal(b[i].Balance) || !a[i].Invested.Equal(b[i].Invested) {
			t.Fatalf("run diverges at year %d: %s/%s vs %s/%s",
				a[i].Year, a[i].Balance, a[i].Invested, b[i].Balance, b[i].Invested)
		}
	}
}

// A recorded actual replaces the computed contribution and dividend for its
// month.
func TestSimulate_ActualOverrides(t *testing.T) {
	s := Strategy{
		ID: "s1", Symbol: "ACME", Monthly: EUR(100), Reinvest: true,
		Actuals: map[int]map[time.Month]MonthlyActual{
			2025: {time.March: {TotalBuy: EUR(500), DividendInflow: EUR(40)}},
		},
	}

	points := s.Simulate(Metadata{}, 2025, 1)
	// 11×100 regular months plus the 500 recorded buy; the 40 recorded
	// dividend is reinvested into the balance but is not a contribution.
	if got := points[0].Invested.AsFloat(); math.Abs(got-1600) > 1e-9 {
		t.Errorf("invested = %v, want 1600", got)
	}
	if got := points[0].Balance.AsFloat(); math.Abs(got-1640) > 1e-9 {
		t.Errorf("balance = %v, want 1640", got)
	}
}

// Reinvestment compounds the simulated dividends; without it they are
// dropped from the balance.
func TestSimulate_Reinvest(t *testing.T) {
	meta := Metadata{Frequency: 1, ExMonths: []time.Month{time.December}}
	base := Strategy{ID: "s1", Symbol: "ACME", Initial: EUR(10000), DividendYield: 4}

	without := base.Simulate(meta, 2025, 1)[0].Balance.AsFloat()
	base.Reinvest = true
	with := base.Simulate(meta, 2025, 1)[0].Balance.AsFloat()

	if math.Abs(without-10000) > 1e-9 {
		t.Errorf("balance without reinvest = %v, want 10000", without)
	}
	if math.Abs(with-10400) > 1e-9 {
		t.Errorf("balance with reinvest = %v, want 10400", with)
	}
}

func TestActualSeries(t *testing.T) {
	h := NewHolding("ACME", "Acme Corp", EUR(12))
	mustAppend(t, h, NewBuy(NewDate(2023, time.May, 2), Q(10), EUR(10), EUR(0)))

	b := NewBook()
	if err := b.AddHolding(h); err != nil {
		t.Fatalf("AddHolding() error = %v", err)
	}
	b.Prices.Record("ACME", YM(2023, time.December), EUR(12))

	points := ActualSeries(b, 2022, 2)
	if len(points) != 1 {
		t.Fatalf("points count = %d, want 1", len(points))
	}
	if points[0].Year != 2023 {
		t.Errorf("Year = %d, want 2023", points[0].Year)
	}
	if want := EUR(120); !points[0].NetWorth.Equal(want) {
		t.Errorf("NetWorth = %s, want %s", points[0].NetWorth, want)
	}
}

func TestStrategy_JSONRoundTrip(t *testing.T) {
	s := Strategy{
		ID: "s1", Symbol: "ACME", Initial: EUR(1000), Monthly: EUR(100),
		ExtraOnEx: EUR(50), Reinvest: true, AnnualReturn: 8, DividendYield: 3,
		Actuals: map[int]map[time.Month]MonthlyActual{
			2024: {time.June: {DividendInflow: EUR(12), TotalBuy: EUR(150)}},
		},
	}

	raw, err := s.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	var got Strategy
	if err := got.UnmarshalJSON(raw); err != nil {
		t.Fatalf("UnmarshalJSON() error = %v", err)
	}
	if got.ID != s.ID || got.Reinvest != s.Reinvest || !got.AnnualReturn.Equal(s.AnnualReturn) {
		t.Errorf("round trip changed the strategy: %+v", got)
	}
	actual, ok := got.Actuals[2024][time.June]
	if !ok {
		t.Fatalf("round trip lost the 2024 June actual")
	}
	if !actual.TotalBuy.Equal(EUR(150)) || !actual.DividendInflow.Equal(EUR(12)) {
		t.Errorf("actual = %+v, want 150 buy and 12 dividend", actual)
	}
}
