package folio

import "time"

// Review is the reconstructed state of the portfolio over a period: a
// calendar year, optionally cut at a month within it, or all-time.
type Review struct {
	Year   int        // 0 for all-time
	Cutoff Date       // last day included in the valuation

	MarketValue    Money
	CostBasis      Money
	UnrealizedPnL  Money
	RealizedPnL    Money // realized by sells dated within the period
	DividendIncome Money // dividends distributed within the period

	TotalReturnPct Percent // (unrealized + realized + dividends) / cost basis
	YieldPct       Percent // dividends / cost basis
}

// NewReview reconstructs the portfolio state at the end of the given year.
func NewReview(b *Book, year int) Review {
	return reviewAt(b, year, EndOfYear(year))
}

// NewReviewAt reconstructs the portfolio state at the end of the given month
// of the given year.
func NewReviewAt(b *Book, year int, month time.Month) Review {
	return reviewAt(b, year, EndOfMonth(year, month))
}

// NewAllTimeReview aggregates the portfolio at its live current prices,
// without snapshot lookups. With no future-dated transactions it matches a
// year review cut at today.
func NewAllTimeReview(b *Book) Review {
	review := Review{Cutoff: Today()}
	for _, h := range b.Holdings {
		pos := h.Position()
		if pos.Shares.IsPositive() {
			review.MarketValue = review.MarketValue.Add(pos.MarketValue)
			review.CostBasis = review.CostBasis.Add(pos.CostBasis)
		}
		review.RealizedPnL = review.RealizedPnL.Add(pos.RealizedPnL)
	}
	for _, d := range b.Dividends {
		review.DividendIncome = review.DividendIncome.Add(d.Amount)
	}
	return review.derive()
}

// reviewAt runs the reconstruction at an arbitrary cutoff.
//
// Holdings are valued by replaying the lot engine on the log truncated at
// the cutoff, with the price resolved from the snapshot fallback chain.
// Realized P&L deliberately does NOT come from that truncated run: a
// truncated replay discards sells matched against lots bought later in the
// period. It comes from one full-history run whose sell details are then
// filtered to the period.
func reviewAt(b *Book, year int, cutoff Date) Review {
	review := Review{Year: year, Cutoff: cutoff}

	for _, h := range b.Holdings {
		truncated := truncate(h.sorted(), cutoff)
		price := resolvePrice(b.Prices, h, truncated, cutoff)

		pos := NewPosition(h.Symbol, truncated, price)
		if pos.Shares.IsPositive() {
			review.MarketValue = review.MarketValue.Add(pos.MarketValue)
			review.CostBasis = review.CostBasis.Add(pos.CostBasis)
		}

		full := h.Position()
		for _, sell := range full.Sells {
			if sell.Transaction.Date.Year() == year && !sell.Transaction.Date.After(cutoff) {
				review.RealizedPnL = review.RealizedPnL.Add(sell.RealizedPnL)
			}
		}
	}

	for _, d := range b.Dividends {
		if d.Date.Year() == year && !d.Date.After(cutoff) {
			review.DividendIncome = review.DividendIncome.Add(d.Amount)
		}
	}
	return review.derive()
}

// derive fills the percentage fields from the money aggregates.
func (r Review) derive() Review {
	r.UnrealizedPnL = r.MarketValue.Sub(r.CostBasis)
	totalReturn := r.UnrealizedPnL.Add(r.RealizedPnL).Add(r.DividendIncome)
	r.TotalReturnPct = totalReturn.PercentOf(r.CostBasis)
	r.YieldPct = r.DividendIncome.PercentOf(r.CostBasis)
	return r
}

// truncate keeps the transactions on or before the cutoff. The input is
// already sorted, so the prefix is enough.
func truncate(sorted []Transaction, cutoff Date) []Transaction {
	for i, tx := range sorted {
		if tx.Date.After(cutoff) {
			return sorted[:i]
		}
	}
	return sorted
}

// resolvePrice picks the valuation price for a holding at a cutoff:
// the exact year-month snapshot, else the most recent snapshot at or before
// the cutoff, else the most recent transaction price in the truncated log,
// else the holding's live current price.
func resolvePrice(prices PriceBook, h *Holding, truncated []Transaction, cutoff Date) Money {
	ym := YearMonthOf(cutoff)
	if price, ok := prices.Price(h.Symbol, ym); ok {
		return price
	}
	if price, ok := prices.PriceAsOf(h.Symbol, ym); ok {
		return price
	}
	if n := len(truncated); n > 0 {
		return truncated[n-1].Price
	}
	return h.Price
}
