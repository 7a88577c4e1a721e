package folio

import (
	"errors"
	"fmt"
)

// ErrUnknownSymbol is returned by operations referencing a symbol absent
// from the holding collection. Callers surface it as a no-op with a message,
// never as a crash.
var ErrUnknownSymbol = errors.New("unknown symbol")

// Book is the complete domain state: every collection the accounting engine
// consumes, supplied as one consistent snapshot by a [Repository].
//
// The calculators never mutate a Book; each recomputation produces new
// output structures, so a Book can be shared across concurrent readers.
type Book struct {
	Holdings      []*Holding
	Dividends     []Dividend
	Donations     []Donation
	BudgetEntries []BudgetEntry
	Prices        PriceBook
	Strategies    []Strategy
	Settings      Settings
	Metadata      MetadataSet
}

// NewBook creates an empty book with default settings.
func NewBook() *Book {
	return &Book{
		Prices:   make(PriceBook),
		Metadata: make(MetadataSet),
		Settings: DefaultSettings(),
	}
}

// Holding returns the holding with the given symbol, or nil if unknown.
func (b *Book) Holding(symbol string) *Holding {
	for _, h := range b.Holdings {
		if h.Symbol == symbol {
			return h
		}
	}
	return nil
}

// AddHolding appends a new holding. The symbol must be unused.
func (b *Book) AddHolding(h *Holding) error {
	if h.Symbol == "" {
		return errors.New("holding symbol is missing")
	}
	if b.Holding(h.Symbol) != nil {
		return fmt.Errorf("holding %q already exists", h.Symbol)
	}
	b.Holdings = append(b.Holdings, h)
	return nil
}

// DividendsFor returns the dividend records of one instrument, in log order.
func (b *Book) DividendsFor(symbol string) []Dividend {
	var out []Dividend
	for _, d := range b.Dividends {
		if d.Symbol == symbol {
			out = append(out, d)
		}
	}
	return out
}

// Strategy returns the strategy with the given id, or nil if unknown.
func (b *Book) Strategy(id string) *Strategy {
	for i := range b.Strategies {
		if b.Strategies[i].ID == id {
			return &b.Strategies[i]
		}
	}
	return nil
}

// MetadataFor returns the declared metadata of a symbol, or the zero value
// when none was declared.
func (b *Book) MetadataFor(symbol string) Metadata {
	m, _ := b.Metadata.Get(symbol)
	return m
}

// Validate checks the structural correctness of the whole book: settings,
// metadata, and every transaction and budget entry.
func (b *Book) Validate() error {
	if err := b.Settings.Validate(); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	if err := b.Metadata.Validate(); err != nil {
		return err
	}
	for _, h := range b.Holdings {
		for _, tx := range h.Transactions() {
			if err := tx.Validate(); err != nil {
				return fmt.Errorf("holding %s: %w", h.Symbol, err)
			}
		}
	}
	for _, e := range b.BudgetEntries {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("budget entry %s: %w", e.ID, err)
		}
	}
	return nil
}
