package folio

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"time"
)

// MonthlyActual is a manually recorded real figure overriding the simulated
// one for a single month.
type MonthlyActual struct {
	DividendInflow Money `json:"dividendInflow"`
	TotalBuy       Money `json:"totalBuy"`
}

// Strategy parameterizes a compound-growth projection for one instrument.
type Strategy struct {
	ID            string
	Symbol        string
	Initial       Money   // starting amount
	Monthly       Money   // contribution added every month
	ExtraOnEx     Money   // extra contribution in declared ex-dividend months
	Reinvest      bool    // reinvest simulated dividends into the balance
	AnnualReturn  Percent // expected annual growth
	DividendYield Percent // expected annual dividend yield

	// Actuals sparsely overrides simulated months: the recorded total buy
	// replaces the month's contributions and the recorded dividend inflow
	// replaces the computed dividend.
	Actuals map[int]map[time.Month]MonthlyActual
}

// actual returns the override for a given month, if any.
func (s Strategy) actual(year int, month time.Month) (MonthlyActual, bool) {
	months, ok := s.Actuals[year]
	if !ok {
		return MonthlyActual{}, false
	}
	a, ok := months[month]
	return a, ok
}

// ProjectionPoint is one year-end sample of a simulation run.
type ProjectionPoint struct {
	Year     int
	Balance  Money // projected balance at year end
	Invested Money // cumulative contributions at year end
}

// Simulate projects the strategy month by month over the given number of
// years, starting at startYear.
//
// Each month adds the monthly contribution and applies geometric growth of
// (1+annual/100)^(1/12). In a declared ex-dividend month the extra
// contribution is added, then a dividend of balance×(yield/100)/frequency is
// computed; it is added to the balance only when reinvestment is enabled,
// and is otherwise discarded from the simulation (not withdrawn as cash
// elsewhere). The function is pure: identical inputs always produce
// identical output.
func (s Strategy) Simulate(meta Metadata, startYear, years int) []ProjectionPoint {
	balance := s.Initial.AsFloat()
	invested := balance
	growth := math.Pow(1+float64(s.AnnualReturn)/100, 1.0/12)
	yield := float64(s.DividendYield) / 100

	points := make([]ProjectionPoint, 0, years)
	for y := 0; y < years; y++ {
		year := startYear + y
		for month := time.January; month <= time.December; month++ {
			override, overridden := s.actual(year, month)

			contribution := s.Monthly.AsFloat()
			extra := 0.0
			if meta.IsExMonth(month) {
				extra = s.ExtraOnEx.AsFloat()
			}
			if overridden {
				// The recorded figure is the whole month's buy.
				contribution = override.TotalBuy.AsFloat()
				extra = 0
			}

			balance += contribution
			invested += contribution
			balance *= growth

			if extra != 0 {
				balance += extra
				invested += extra
			}

			var dividend float64
			switch {
			case overridden:
				dividend = override.DividendInflow.AsFloat()
			case meta.IsExMonth(month) && meta.Frequency > 0:
				dividend = balance * yield / float64(meta.Frequency)
			}
			if s.Reinvest {
				balance += dividend
			}
		}
		points = append(points, ProjectionPoint{
			Year:     year,
			Balance:  M(balance, s.Initial.Currency()),
			Invested: M(invested, s.Initial.Currency()),
		})
	}
	return points
}

// ActualPoint is one year-end sample of the realized growth of the real
// portfolio, used to overlay a projection with what actually happened.
type ActualPoint struct {
	Year     int
	NetWorth Money // market value + cumulative realized P&L + cumulative dividends
}

// ActualSeries reconstructs the real year-end net worth for each year with
// transaction history, anchored to the same start year as a projection.
func ActualSeries(b *Book, startYear, years int) []ActualPoint {
	lastYear := startYear + years - 1
	if today := Today().Year(); lastYear > today {
		lastYear = today
	}

	firstYear := 0
	for _, h := range b.Holdings {
		for _, tx := range h.Transactions() {
			if firstYear == 0 || tx.Date.Year() < firstYear {
				firstYear = tx.Date.Year()
			}
		}
	}
	if firstYear == 0 {
		return nil
	}

	var points []ActualPoint
	for year := startYear; year <= lastYear; year++ {
		if year < firstYear {
			continue
		}
		review := NewReview(b, year)
		netWorth := review.MarketValue.
			Add(cumulativeRealized(b, year)).
			Add(cumulativeDividends(b, year))
		points = append(points, ActualPoint{Year: year, NetWorth: netWorth})
	}
	return points
}

// cumulativeRealized sums the realized P&L of every sell dated in or before
// the given year, from full-history lot matching.
func cumulativeRealized(b *Book, year int) Money {
	var total Money
	for _, h := range b.Holdings {
		for _, sell := range h.Position().Sells {
			if sell.Transaction.Date.Year() <= year {
				total = total.Add(sell.RealizedPnL)
			}
		}
	}
	return total
}

// cumulativeDividends sums the dividends distributed in or before the given
// year.
func cumulativeDividends(b *Book, year int) Money {
	var total Money
	for _, d := range b.Dividends {
		if d.Date.Year() <= year {
			total = total.Add(d.Amount)
		}
	}
	return total
}

// MarshalJSON implements the json.Marshaler interface for Strategy. Override
// keys are emitted in sorted order so that exports are byte-stable.
func (s Strategy) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", s.ID)
	w.Append("symbol", s.Symbol)
	w.Append("initial", s.Initial)
	w.Append("monthly", s.Monthly)
	w.Append("extraOnExMonth", s.ExtraOnEx)
	w.Append("reinvest", s.Reinvest)
	w.Append("annualReturn", s.AnnualReturn)
	w.Append("dividendYield", s.DividendYield)

	var aw jsonObjectWriter
	for _, year := range slices.Sorted(maps.Keys(s.Actuals)) {
		var mw jsonObjectWriter
		months := s.Actuals[year]
		for _, month := range slices.Sorted(maps.Keys(months)) {
			mw.Append(strconv.Itoa(int(month)), months[month])
		}
		raw, err := mw.MarshalJSON()
		if err != nil {
			return nil, err
		}
		aw.Append(strconv.Itoa(year), json.RawMessage(raw))
	}
	raw, err := aw.MarshalJSON()
	if err != nil {
		return nil, err
	}
	w.Append("actuals", json.RawMessage(raw))
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Strategy.
func (s *Strategy) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID            string                              `json:"id"`
		Symbol        string                              `json:"symbol"`
		Initial       Money                               `json:"initial"`
		Monthly       Money                               `json:"monthly"`
		ExtraOnEx     Money                               `json:"extraOnExMonth"`
		Reinvest      bool                                `json:"reinvest"`
		AnnualReturn  Percent                             `json:"annualReturn"`
		DividendYield Percent                             `json:"dividendYield"`
		Actuals       map[string]map[string]MonthlyActual `json:"actuals"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	actuals := make(map[int]map[time.Month]MonthlyActual)
	for yearKey, months := range temp.Actuals {
		year, err := strconv.Atoi(yearKey)
		if err != nil {
			return fmt.Errorf("invalid strategy actuals year %q: %w", yearKey, err)
		}
		for monthKey, actual := range months {
			month, err := strconv.Atoi(monthKey)
			if err != nil || month < 1 || month > 12 {
				return fmt.Errorf("invalid strategy actuals month %q", monthKey)
			}
			if actuals[year] == nil {
				actuals[year] = make(map[time.Month]MonthlyActual)
			}
			actuals[year][time.Month(month)] = actual
		}
	}
	*s = Strategy{ID: temp.ID, Symbol: temp.Symbol, Initial: temp.Initial,
		Monthly: temp.Monthly, ExtraOnEx: temp.ExtraOnEx, Reinvest: temp.Reinvest,
		AnnualReturn: temp.AnnualReturn, DividendYield: temp.DividendYield,
		Actuals: actuals}
	return nil
}
