package folio

import "slices"

// Lot is a single buy's remaining shares and cost after partial consumption
// by later sells.
type Lot struct {
	Date   Date
	Shares Quantity
	Cost   Money // remaining cost of the lot
}

// SellDetail records the outcome of matching one sell against the open lots.
type SellDetail struct {
	Transaction  Transaction
	CostConsumed Money   // FIFO cost removed from open lots by this sell
	RealizedPnL  Money   // net proceeds minus cost consumed
	ReturnRate   Percent // realized P&L relative to cost consumed
}

// Position is the output of the FIFO cost-basis engine for one instrument.
type Position struct {
	Symbol       string
	CurrentPrice Money

	Shares      Quantity // currently open shares
	AverageCost Money    // cost basis / shares, 0 when no shares
	CostBasis   Money    // cost remaining in open lots
	MarketValue Money    // shares × current price

	UnrealizedPnL Money
	UnrealizedPct Percent

	RealizedPnL Money   // summed across all sells
	RealizedPct Percent // relative to the total cost consumed by sells

	Lots  []Lot        // open lots, oldest first
	Sells []SellDetail // one entry per sell, in ledger order
}

// NewPosition matches a transaction log against FIFO lots and returns the
// complete position report.
//
// The log is sorted ascending by date, same-day ties broken by insertion
// sequence; the input slice is never modified. On a buy, a lot of cost
// shares×price+fees is queued. On a sell, lots are consumed oldest first and
// the cost removed from each lot is proportional to the fraction of its
// shares sold. A sell exceeding the open lots empties the queue and the
// excess consumes zero cost: share counts never go negative and the cost
// conservation invariant (Σ sell cost consumed + Σ open lot cost = Σ buy
// cost) holds for any input.
func NewPosition(symbol string, txs []Transaction, currentPrice Money) Position {
	sorted := slices.Clone(txs)
	slices.SortStableFunc(sorted, func(a, b Transaction) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return a.Seq - b.Seq
	})

	var queue []Lot
	var sells []SellDetail
	var realized, sellCost Money

	for _, tx := range sorted {
		switch tx.Kind {
		case BuyTx:
			queue = append(queue, Lot{Date: tx.Date, Shares: tx.Shares, Cost: tx.GrossCost()})
		case SellTx:
			remaining := tx.Shares
			var consumed Money
			for len(queue) > 0 && remaining.IsPositive() {
				lot := &queue[0]
				if lot.Shares.GreaterThan(remaining) {
					// Partial sale from the oldest lot.
					costOut := lot.Cost.Mul(remaining).Div(lot.Shares)
					lot.Shares = lot.Shares.Sub(remaining)
					lot.Cost = lot.Cost.Sub(costOut)
					consumed = consumed.Add(costOut)
					remaining = Q(0)
				} else {
					// Full consumption: take the lot's exact remaining cost
					// so no residue is left behind.
					consumed = consumed.Add(queue[0].Cost)
					remaining = remaining.Sub(queue[0].Shares)
					queue = queue[1:]
				}
			}
			// Any remaining quantity is an over-sell: zero cost for the excess.

			pnl := tx.NetProceeds().Sub(consumed)
			sells = append(sells, SellDetail{
				Transaction:  tx,
				CostConsumed: consumed,
				RealizedPnL:  pnl,
				ReturnRate:   pnl.PercentOf(consumed),
			})
			realized = realized.Add(pnl)
			sellCost = sellCost.Add(consumed)
		}
	}

	var shares Quantity
	var costBasis Money
	for _, lot := range queue {
		shares = shares.Add(lot.Shares)
		costBasis = costBasis.Add(lot.Cost)
	}

	marketValue := currentPrice.Mul(shares)
	unrealized := marketValue.Sub(costBasis)

	return Position{
		Symbol:        symbol,
		CurrentPrice:  currentPrice,
		Shares:        shares,
		AverageCost:   costBasis.Div(shares),
		CostBasis:     costBasis,
		MarketValue:   marketValue,
		UnrealizedPnL: unrealized,
		UnrealizedPct: unrealized.PercentOf(costBasis),
		RealizedPnL:   realized,
		RealizedPct:   realized.PercentOf(sellCost),
		Lots:          queue,
		Sells:         sells,
	}
}

// Position computes the position report of one holding at its current price.
func (h *Holding) Position() Position {
	return NewPosition(h.Symbol, h.transactions, h.Price)
}
