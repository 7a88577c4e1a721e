package folio

import (
	"math"
	"testing"
	"time"
)

// TestPosition_TwoBuysOneSell replays a two-buy one-sell log and checks every
// figure of the resulting position against hand-computed values.
func TestPosition_TwoBuysOneSell(t *testing.T) {
	h := NewHolding("ACME", "Acme Corp", EUR(120))
	mustAppend(t, h, NewBuy(NewDate(2024, time.January, 1), Q(1000), EUR(100), EUR(15)))
	mustAppend(t, h, NewBuy(NewDate(2024, time.March, 1), Q(500), EUR(110), EUR(10)))
	mustAppend(t, h, NewSell(NewDate(2024, time.June, 1), Q(800), EUR(120), EUR(20)))

	pos := h.Position()

	if len(pos.Sells) != 1 {
		t.Fatalf("Sells count = %d, want 1", len(pos.Sells))
	}
	sell := pos.Sells[0]
	if want := EUR(80012); !sell.CostConsumed.Equal(want) {
		t.Errorf("CostConsumed = %s, want %s", sell.CostConsumed, want)
	}
	if want := EUR(15968); !sell.RealizedPnL.Equal(want) {
		t.Errorf("RealizedPnL = %s, want %s", sell.RealizedPnL, want)
	}

	if want := Q(700); !pos.Shares.Equal(want) {
		t.Errorf("Shares = %s, want %s", pos.Shares, want)
	}
	if want := EUR(75013); !pos.CostBasis.Equal(want) {
		t.Errorf("CostBasis = %s, want %s", pos.CostBasis, want)
	}
	if got, want := pos.AverageCost.AsFloat(), 75013.0/700.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("AverageCost = %v, want %v", got, want)
	}
	if want := EUR(84000); !pos.MarketValue.Equal(want) {
		t.Errorf("MarketValue = %s, want %s", pos.MarketValue, want)
	}
	if want := EUR(8987); !pos.UnrealizedPnL.Equal(want) {
		t.Errorf("UnrealizedPnL = %s, want %s", pos.UnrealizedPnL, want)
	}

	if len(pos.Lots) != 2 {
		t.Fatalf("open lots = %d, want 2", len(pos.Lots))
	}
	if !pos.Lots[0].Shares.Equal(Q(200)) || !pos.Lots[0].Cost.Equal(EUR(20003)) {
		t.Errorf("first lot = %s shares %s cost, want 200 shares 20003 cost",
			pos.Lots[0].Shares, pos.Lots[0].Cost)
	}
	if !pos.Lots[1].Shares.Equal(Q(500)) || !pos.Lots[1].Cost.Equal(EUR(55010)) {
		t.Errorf("second lot = %s shares %s cost, want 500 shares 55010 cost",
			pos.Lots[1].Shares, pos.Lots[1].Cost)
	}
}

// TestPosition_CostConservation checks that the cost consumed by sells plus
// the cost left in open lots always equals the total buy cost, including
// with partial and over-sells in the log.
func TestPosition_CostConservation(t *testing.T) {
	logs := map[string][]Transaction{
		"partial sells": {
			NewBuy(NewDate(2023, time.February, 3), Q(7), EUR(33.33), EUR(1.11)),
			NewSell(NewDate(2023, time.April, 7), Q(3), EUR(40), EUR(0.5)),
			NewBuy(NewDate(2023, time.May, 2), Q(11), EUR(35.75), EUR(2)),
			NewSell(NewDate(2023, time.August, 9), Q(9), EUR(31), EUR(1)),
		},
		"over-sell": {
			NewBuy(NewDate(2023, time.February, 3), Q(10), EUR(12.5), EUR(0)),
			NewSell(NewDate(2023, time.April, 7), Q(25), EUR(13), EUR(0)),
			NewBuy(NewDate(2023, time.June, 1), Q(4), EUR(14), EUR(0.25)),
		},
		"full liquidation": {
			NewBuy(NewDate(2023, time.February, 3), Q(3), EUR(99.99), EUR(0.01)),
			NewSell(NewDate(2023, time.March, 3), Q(3), EUR(120), EUR(0.01)),
		},
	}

	for name, txs := range logs {
		t.Run(name, func(t *testing.T) {
			h := NewHolding("T", "T", EUR(10))
			var totalBuys Money
			for _, tx := range txs {
				mustAppend(t, h, tx)
				if tx.Kind == BuyTx {
					totalBuys = totalBuys.Add(tx.GrossCost())
				}
			}

			pos := h.Position()
			sum := pos.CostBasis
			for _, sell := range pos.Sells {
				sum = sum.Add(sell.CostConsumed)
			}
			if !sum.Equal(totalBuys) {
				t.Errorf("consumed+open = %s, want %s", sum, totalBuys)
			}
		})
	}
}

// An over-sell empties the lot queue; the excess carries zero cost and share
// counts never go negative.
func TestPosition_OverSell(t *testing.T) {
	h := NewHolding("T", "T", EUR(12))
	mustAppend(t, h, NewBuy(NewDate(2024, time.January, 2), Q(100), EUR(10), EUR(0)))
	mustAppend(t, h, NewSell(NewDate(2024, time.February, 2), Q(150), EUR(12), EUR(0)))

	pos := h.Position()
	if !pos.Shares.IsZero() {
		t.Errorf("Shares = %s, want 0", pos.Shares)
	}
	if len(pos.Lots) != 0 {
		t.Errorf("open lots = %d, want 0", len(pos.Lots))
	}
	// 150×12 proceeds against the 1000 cost of the only lot.
	if want := EUR(800); !pos.RealizedPnL.Equal(want) {
		t.Errorf("RealizedPnL = %s, want %s", pos.RealizedPnL, want)
	}
}

func TestPosition_EmptyLog(t *testing.T) {
	pos := NewPosition("T", nil, EUR(10))
	if !pos.AverageCost.IsZero() {
		t.Errorf("AverageCost = %s, want 0", pos.AverageCost)
	}
	if !pos.UnrealizedPct.Equal(0) || !pos.RealizedPct.Equal(0) {
		t.Errorf("percentages = %s %s, want 0 0", pos.UnrealizedPct, pos.RealizedPct)
	}
}

// Same-day transactions replay in insertion order, and an in-place edit does
// not change that order.
func TestPosition_SameDayOrder(t *testing.T) {
	day := NewDate(2024, time.May, 6)
	h := NewHolding("T", "T", EUR(10))
	mustAppend(t, h, NewBuy(day, Q(10), EUR(10), EUR(0)))
	sell := mustAppend(t, h, NewSell(day, Q(10), EUR(11), EUR(0)))

	pos := h.Position()
	if want := EUR(100); !pos.Sells[0].CostConsumed.Equal(want) {
		t.Fatalf("CostConsumed = %s, want %s", pos.Sells[0].CostConsumed, want)
	}

	// Editing the sell keeps its sequence, so it still trades after the buy.
	sell.Fees = EUR(1)
	if err := h.Update(sell); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	pos = h.Position()
	if want := EUR(100); !pos.Sells[0].CostConsumed.Equal(want) {
		t.Errorf("CostConsumed after edit = %s, want %s", pos.Sells[0].CostConsumed, want)
	}
	if want := EUR(9); !pos.Sells[0].RealizedPnL.Equal(want) {
		t.Errorf("RealizedPnL after edit = %s, want %s", pos.Sells[0].RealizedPnL, want)
	}
}
