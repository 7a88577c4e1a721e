package folio

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Holding is one instrument owned by the portfolio: its symbol, display
// name, manually updated current price, and the ordered transaction log.
//
// Transactions are appended, edited in place by id, or removed by id; the
// log is never reordered in place. Sort order is always recomputed by the
// calculators, never persisted.
type Holding struct {
	Symbol string // unique key in the portfolio
	Name   string
	Price  Money // current price, manually or periodically updated

	transactions []Transaction
	nextSeq      int
}

// NewHolding creates a holding with an empty transaction log.
func NewHolding(symbol, name string, price Money) *Holding {
	return &Holding{Symbol: symbol, Name: name, Price: price}
}

// Transactions returns a copy of the transaction log in insertion order.
func (h *Holding) Transactions() []Transaction {
	return slices.Clone(h.transactions)
}

// Append appends a transaction to the log, stamping it with the next
// insertion sequence number, and returns the stamped transaction.
func (h *Holding) Append(tx Transaction) (Transaction, error) {
	if err := tx.Validate(); err != nil {
		return tx, err
	}
	tx.Seq = h.nextSeq
	h.nextSeq++
	h.transactions = append(h.transactions, tx)
	return tx, nil
}

// Update replaces the transaction with the same id, keeping its original
// sequence number so that same-day ordering is unaffected by edits.
func (h *Holding) Update(tx Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	for i, existing := range h.transactions {
		if existing.ID == tx.ID {
			tx.Seq = existing.Seq
			h.transactions[i] = tx
			return nil
		}
	}
	return fmt.Errorf("transaction %q not found in %s", tx.ID, h.Symbol)
}

// Remove deletes the transaction with the given id. Sequence numbers of the
// remaining transactions are untouched and never reused.
func (h *Holding) Remove(id string) error {
	for i, existing := range h.transactions {
		if existing.ID == id {
			h.transactions = slices.Delete(h.transactions, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("transaction %q not found in %s", id, h.Symbol)
}

// sorted returns a copy of the log sorted ascending by date, same-day ties
// broken by insertion sequence.
func (h *Holding) sorted() []Transaction {
	txs := slices.Clone(h.transactions)
	slices.SortStableFunc(txs, func(a, b Transaction) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return a.Seq - b.Seq
	})
	return txs
}

// MarshalJSON implements the json.Marshaler interface for Holding.
func (h *Holding) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", h.Symbol)
	w.Append("name", h.Name)
	w.Append("price", h.Price)
	if h.transactions == nil {
		w.Append("transactions", []Transaction{})
	} else {
		w.Append("transactions", h.transactions)
	}
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Holding.
// The sequence counter resumes after the highest persisted sequence.
func (h *Holding) UnmarshalJSON(data []byte) error {
	var temp struct {
		Symbol       string        `json:"symbol"`
		Name         string        `json:"name"`
		Price        Money         `json:"price"`
		Transactions []Transaction `json:"transactions"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	h.Symbol = temp.Symbol
	h.Name = temp.Name
	h.Price = temp.Price
	h.transactions = temp.Transactions
	h.nextSeq = 0
	for _, tx := range h.transactions {
		if tx.Seq >= h.nextSeq {
			h.nextSeq = tx.Seq + 1
		}
	}
	return nil
}
