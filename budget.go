package folio

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// EntryKind identifies the direction of a manual budget entry.
type EntryKind string

const (
	// DepositEntry is a manual cash inflow.
	DepositEntry EntryKind = "DEPOSIT"
	// WithdrawalEntry is a manual cash outflow.
	WithdrawalEntry EntryKind = "WITHDRAWAL"
)

// ParseEntryKind parses a string into an EntryKind.
func ParseEntryKind(s string) (EntryKind, error) {
	switch EntryKind(s) {
	case DepositEntry:
		return DepositEntry, nil
	case WithdrawalEntry:
		return WithdrawalEntry, nil
	default:
		return "", fmt.Errorf("unknown budget entry kind: %q", s)
	}
}

// BudgetEntry is a manual cash movement. It is the only ledger-feeding
// record that is directly user-editable.
type BudgetEntry struct {
	ID          string
	Kind        EntryKind
	Amount      Money
	Date        Date
	Description string
}

// NewBudgetEntry creates a manual cash movement with a fresh id.
func NewBudgetEntry(kind EntryKind, amount Money, day Date, description string) BudgetEntry {
	return BudgetEntry{ID: uuid.NewString(), Kind: kind, Amount: amount,
		Date: day, Description: description}
}

// Validate checks the entry for structural correctness.
func (e BudgetEntry) Validate() error {
	if _, err := ParseEntryKind(string(e.Kind)); err != nil {
		return err
	}
	if !e.Amount.IsPositive() {
		return fmt.Errorf("%s amount must be positive, got %s", e.Kind, e.Amount)
	}
	if e.Date.IsZero() {
		return fmt.Errorf("%s date is missing", e.Kind)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for BudgetEntry.
func (e BudgetEntry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", e.ID)
	w.Append("kind", e.Kind)
	w.Append("amount", e.Amount)
	w.Append("date", e.Date)
	w.Append("description", e.Description)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for BudgetEntry.
func (e *BudgetEntry) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID          string    `json:"id"`
		Kind        EntryKind `json:"kind"`
		Amount      Money     `json:"amount"`
		Date        Date      `json:"date"`
		Description string    `json:"description"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*e = BudgetEntry{ID: temp.ID, Kind: temp.Kind, Amount: temp.Amount,
		Date: temp.Date, Description: temp.Description}
	return nil
}

// Donation is a cash outflow given away from the portfolio.
type Donation struct {
	ID          string
	Symbol      string // optional: the instrument the donation relates to
	Amount      Money
	Date        Date
	Description string
}

// NewDonation creates a donation record with a fresh id.
func NewDonation(symbol string, amount Money, day Date, description string) Donation {
	return Donation{ID: uuid.NewString(), Symbol: symbol, Amount: amount,
		Date: day, Description: description}
}

// MarshalJSON implements the json.Marshaler interface for Donation.
func (d Donation) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", d.ID)
	w.Optional("symbol", d.Symbol)
	w.Append("amount", d.Amount)
	w.Append("date", d.Date)
	w.Append("description", d.Description)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Donation.
func (d *Donation) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID          string `json:"id"`
		Symbol      string `json:"symbol"`
		Amount      Money  `json:"amount"`
		Date        Date   `json:"date"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*d = Donation{ID: temp.ID, Symbol: temp.Symbol, Amount: temp.Amount,
		Date: temp.Date, Description: temp.Description}
	return nil
}

// LedgerLine is one normalized cash-flow-producing event annotated with the
// running balance.
type LedgerLine struct {
	Date        Date
	Description string
	Inflow      Money
	Outflow     Money
	Balance     Money  // running balance after this line
	Editable    bool   // true only for manual budget entries
	Ref         string // id of the source record
}

// CashLedger merges every cash-flow-producing event into one chronological
// running-balance ledger.
type CashLedger struct {
	Lines    []LedgerLine
	TotalIn  Money
	TotalOut Money
	Balance  Money // final balance, equals TotalIn − TotalOut
}

// NewCashLedger folds trades, dividends, donations and manual budget entries
// into a balance-stamped sequence, ascending by date.
//
// The balance is a strict left fold over the ascending order; callers may
// reverse the sequence for display but the stamped balances always come from
// the ascending pass. Insertion order of same-day lines is preserved (stable
// sort) and never affects the final balance.
func NewCashLedger(b *Book) CashLedger {
	var lines []LedgerLine

	for _, h := range b.Holdings {
		for _, tx := range h.Transactions() {
			switch tx.Kind {
			case BuyTx:
				lines = append(lines, LedgerLine{
					Date:        tx.Date,
					Description: fmt.Sprintf("Buy %s %s", tx.Shares, h.Symbol),
					Outflow:     tx.GrossCost(),
					Ref:         tx.ID,
				})
			case SellTx:
				lines = append(lines, LedgerLine{
					Date:        tx.Date,
					Description: fmt.Sprintf("Sell %s %s", tx.Shares, h.Symbol),
					Inflow:      tx.NetProceeds(),
					Ref:         tx.ID,
				})
			}
		}
	}
	for _, d := range b.Dividends {
		lines = append(lines, LedgerLine{
			Date:        d.Date,
			Description: fmt.Sprintf("Dividend %s", d.Symbol),
			Inflow:      d.Amount,
			Ref:         d.ID,
		})
	}
	for _, d := range b.Donations {
		lines = append(lines, LedgerLine{
			Date:        d.Date,
			Description: d.Description,
			Outflow:     d.Amount,
			Ref:         d.ID,
		})
	}
	for _, e := range b.BudgetEntries {
		line := LedgerLine{
			Date:        e.Date,
			Description: e.Description,
			Editable:    true,
			Ref:         e.ID,
		}
		if e.Kind == DepositEntry {
			line.Inflow = e.Amount
		} else {
			line.Outflow = e.Amount
		}
		lines = append(lines, line)
	}

	slices.SortStableFunc(lines, func(a, b LedgerLine) int {
		return a.Date.Compare(b.Date)
	})

	var ledger CashLedger
	var balance Money
	for i := range lines {
		balance = balance.Add(lines[i].Inflow).Sub(lines[i].Outflow)
		lines[i].Balance = balance
		ledger.TotalIn = ledger.TotalIn.Add(lines[i].Inflow)
		ledger.TotalOut = ledger.TotalOut.Add(lines[i].Outflow)
	}
	ledger.Lines = lines
	ledger.Balance = balance
	return ledger
}
