package folio

import (
	"encoding/json"
	"maps"
	"slices"
)

// PriceBook holds the historical monthly closing prices, per symbol, keyed
// by canonical year-month. The history is sparse: months may be missing,
// and the point-in-time reconstruction falls back to the nearest earlier
// month, then to transaction prices.
type PriceBook map[string]map[YearMonth]Money

// Price returns the closing price recorded for the exact year-month.
func (p PriceBook) Price(symbol string, ym YearMonth) (Money, bool) {
	history, ok := p[symbol]
	if !ok {
		return Money{}, false
	}
	price, ok := history[ym]
	return price, ok
}

// PriceAsOf returns the most recent closing price at or before the given
// year-month.
func (p PriceBook) PriceAsOf(symbol string, ym YearMonth) (Money, bool) {
	history, ok := p[symbol]
	if !ok {
		return Money{}, false
	}
	var best YearMonth
	var price Money
	var found bool
	for key, value := range history {
		if key.After(ym) {
			continue
		}
		if !found || key.After(best) {
			best, price, found = key, value, true
		}
	}
	return price, found
}

// Record stores a closing price for a symbol and month, creating the
// per-symbol history on first use.
func (p PriceBook) Record(symbol string, ym YearMonth, price Money) {
	history, ok := p[symbol]
	if !ok {
		history = make(map[YearMonth]Money)
		p[symbol] = history
	}
	history[ym] = price
}

// MarshalJSON implements the json.Marshaler interface for PriceBook.
// Symbols and months are emitted in sorted order so that exports are
// byte-stable.
func (p PriceBook) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	symbols := slices.Sorted(maps.Keys(p))
	for _, symbol := range symbols {
		history := p[symbol]
		months := slices.SortedFunc(maps.Keys(history), YearMonth.Compare)
		var hw jsonObjectWriter
		for _, ym := range months {
			hw.Append(ym.String(), history[ym])
		}
		raw, err := hw.MarshalJSON()
		if err != nil {
			return nil, err
		}
		w.Append(symbol, json.RawMessage(raw))
	}
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for PriceBook.
func (p *PriceBook) UnmarshalJSON(data []byte) error {
	var temp map[string]map[string]Money
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	book := make(PriceBook, len(temp))
	for symbol, history := range temp {
		for key, price := range history {
			ym, err := ParseYearMonth(key)
			if err != nil {
				return err
			}
			book.Record(symbol, ym, price)
		}
	}
	*p = book
	return nil
}
