package folio

import (
	"encoding/json"
	"slices"

	"github.com/google/uuid"
)

// Dividend is one cash distribution received for an instrument. Dividend
// records are independent of the transaction log; they are not derived
// from it.
type Dividend struct {
	ID       string
	Symbol   string
	Date     Date
	Amount   Money    // net cash received
	Shares   Quantity // shares held at distribution
	PerShare Money    // declared per-share rate
}

// NewDividend creates a dividend record with a fresh id.
func NewDividend(symbol string, day Date, amount Money, shares Quantity, perShare Money) Dividend {
	return Dividend{ID: uuid.NewString(), Symbol: symbol, Date: day,
		Amount: amount, Shares: shares, PerShare: perShare}
}

// MarshalJSON implements the json.Marshaler interface for Dividend.
func (d Dividend) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", d.ID)
	w.Append("symbol", d.Symbol)
	w.Append("date", d.Date)
	w.Append("amount", d.Amount)
	w.Append("shares", d.Shares)
	w.Append("perShare", d.PerShare)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Dividend.
func (d *Dividend) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID       string   `json:"id"`
		Symbol   string   `json:"symbol"`
		Date     Date     `json:"date"`
		Amount   Money    `json:"amount"`
		Shares   Quantity `json:"shares"`
		PerShare Money    `json:"perShare"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*d = Dividend{ID: temp.ID, Symbol: temp.Symbol, Date: temp.Date,
		Amount: temp.Amount, Shares: temp.Shares, PerShare: temp.PerShare}
	return nil
}

// DividendLine attributes one distribution to a proportional cost basis and
// annualizes its yield.
type DividendLine struct {
	Dividend   Dividend
	Cost       Money   // shares held × current average cost
	Yield      Percent // amount / cost, 0 when cost is 0
	Annualized Percent // yield × declared distribution frequency
}

// DividendReport aggregates the dividend history of one instrument.
type DividendReport struct {
	Symbol string
	Lines  []DividendLine

	Total      Money   // plain sum of distribution amounts
	Yield      Percent // total / current total cost basis
	Annualized Percent // arithmetic mean of per-line annualized yields
}

// ByYear keeps only the dividends distributed in the given year. A zero
// year keeps everything.
func ByYear(divs []Dividend, year int) []Dividend {
	if year == 0 {
		return slices.Clone(divs)
	}
	var out []Dividend
	for _, d := range divs {
		if d.Date.Year() == year {
			out = append(out, d)
		}
	}
	return out
}

// NewDividendReport attributes each distribution to a proportional cost
// basis and annualizes it with the instrument's declared frequency.
//
// The proportional cost uses the position's *current* average cost, not the
// average cost at distribution time. This misattributes yield when the cost
// basis has changed materially since; it is kept deliberately because
// correcting it would rewrite historical yield figures.
func NewDividendReport(divs []Dividend, pos Position, meta Metadata) DividendReport {
	report := DividendReport{Symbol: pos.Symbol}

	var annualizedSum Percent
	for _, d := range divs {
		cost := pos.AverageCost.Mul(d.Shares)
		yield := d.Amount.PercentOf(cost)
		annualized := yield * Percent(meta.Frequency)

		report.Lines = append(report.Lines, DividendLine{
			Dividend:   d,
			Cost:       cost,
			Yield:      yield,
			Annualized: annualized,
		})
		report.Total = report.Total.Add(d.Amount)
		annualizedSum += annualized
	}

	report.Yield = report.Total.PercentOf(pos.CostBasis)
	if len(report.Lines) > 0 {
		// Mean of individually annualized yields, not the aggregate yield
		// times frequency.
		report.Annualized = annualizedSum / Percent(len(report.Lines))
	}
	return report
}
