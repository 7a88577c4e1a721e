package folio

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// TxKind identifies the two trade directions of a transaction.
type TxKind string

const (
	// BuyTx acquires shares: the trade costs shares×price+fees.
	BuyTx TxKind = "BUY"
	// SellTx disposes shares: the trade yields shares×price−fees.
	SellTx TxKind = "SELL"
)

// ParseTxKind parses a string into a TxKind.
func ParseTxKind(s string) (TxKind, error) {
	switch TxKind(s) {
	case BuyTx:
		return BuyTx, nil
	case SellTx:
		return SellTx, nil
	default:
		return "", fmt.Errorf("unknown transaction kind: %q", s)
	}
}

// Transaction is one buy or sell in a holding's log.
//
// Seq is the insertion sequence number assigned by [Holding.Append]. The lot
// engine orders transactions by (Date, Seq), which makes same-day ordering
// deterministic across edits: Seq survives in-place edits and is never
// reused.
type Transaction struct {
	ID     string   // unique id
	Kind   TxKind   // BUY or SELL
	Shares Quantity // share quantity, positive
	Price  Money    // price per share
	Fees   Money    // non-negative
	Date   Date     // trade date, day resolution
	Seq    int      // insertion sequence, the same-day tie-break
}

// NewBuy creates a buy transaction with a fresh id. The sequence number is
// assigned when the transaction is appended to a holding.
func NewBuy(day Date, shares Quantity, price, fees Money) Transaction {
	return Transaction{ID: uuid.NewString(), Kind: BuyTx, Shares: shares, Price: price, Fees: fees, Date: day}
}

// NewSell creates a sell transaction with a fresh id.
func NewSell(day Date, shares Quantity, price, fees Money) Transaction {
	return Transaction{ID: uuid.NewString(), Kind: SellTx, Shares: shares, Price: price, Fees: fees, Date: day}
}

// GrossCost returns shares×price+fees, the cash outflow of a buy.
func (t Transaction) GrossCost() Money {
	return t.Price.Mul(t.Shares).Add(t.Fees)
}

// NetProceeds returns shares×price−fees, the cash inflow of a sell.
func (t Transaction) NetProceeds() Money {
	return t.Price.Mul(t.Shares).Sub(t.Fees)
}

// Equal reports whether two transactions are identical, sequence included.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID && t.Kind == o.Kind && t.Shares.Equal(o.Shares) &&
		t.Price.Equal(o.Price) && t.Fees.Equal(o.Fees) && t.Date == o.Date && t.Seq == o.Seq
}

// Validate checks the structural correctness of a transaction. Numeric edge
// cases downstream (zero shares in a position, zero cost) never error; only
// malformed records do.
func (t Transaction) Validate() error {
	if _, err := ParseTxKind(string(t.Kind)); err != nil {
		return err
	}
	if !t.Shares.IsPositive() {
		return fmt.Errorf("%s transaction share quantity must be positive, got %s", t.Kind, t.Shares)
	}
	if t.Price.IsNegative() {
		return fmt.Errorf("%s transaction price must not be negative, got %s", t.Kind, t.Price)
	}
	if t.Fees.IsNegative() {
		return fmt.Errorf("%s transaction fees must not be negative, got %s", t.Kind, t.Fees)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("%s transaction date is missing", t.Kind)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("kind", t.Kind)
	w.Append("shares", t.Shares)
	w.Append("price", t.Price)
	w.Append("fees", t.Fees)
	w.Append("date", t.Date)
	w.Append("seq", t.Seq)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID     string   `json:"id"`
		Kind   TxKind   `json:"kind"`
		Shares Quantity `json:"shares"`
		Price  Money    `json:"price"`
		Fees   Money    `json:"fees"`
		Date   Date     `json:"date"`
		Seq    int      `json:"seq"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*t = Transaction{ID: temp.ID, Kind: temp.Kind, Shares: temp.Shares,
		Price: temp.Price, Fees: temp.Fees, Date: temp.Date, Seq: temp.Seq}
	return nil
}
