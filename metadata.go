package folio

import (
	"fmt"
	"time"
)

// Metadata is the static reference data of one instrument: how often it
// distributes income and in which months. It is a read-only input to the
// dividend calculator and the compound simulator.
type Metadata struct {
	Frequency    int          `json:"frequency"`    // distributions per year
	ExMonths     []time.Month `json:"exMonths"`     // declared ex-dividend months
	PayMonths    []time.Month `json:"payMonths"`    // declared payment months
	DefaultYield Percent      `json:"defaultYield"` // yield assumption when no history exists
}

// IsExMonth reports whether the given month is a declared ex-dividend month.
func (m Metadata) IsExMonth(month time.Month) bool {
	for _, em := range m.ExMonths {
		if em == month {
			return true
		}
	}
	return false
}

// Validate checks the metadata for structural correctness.
func (m Metadata) Validate() error {
	if m.Frequency < 0 {
		return fmt.Errorf("distribution frequency must not be negative, got %d", m.Frequency)
	}
	for _, month := range m.ExMonths {
		if month < time.January || month > time.December {
			return fmt.Errorf("ex-dividend month out of range: %d", month)
		}
	}
	for _, month := range m.PayMonths {
		if month < time.January || month > time.December {
			return fmt.Errorf("payment month out of range: %d", month)
		}
	}
	if m.DefaultYield < 0 {
		return fmt.Errorf("default yield must not be negative, got %s", m.DefaultYield)
	}
	return nil
}

// MetadataSet maps instrument symbols to their static reference data.
// It is validated once at load time instead of being defensively checked at
// every access.
type MetadataSet map[string]Metadata

// Get returns the metadata for a symbol and whether it was declared.
func (s MetadataSet) Get(symbol string) (Metadata, bool) {
	m, ok := s[symbol]
	return m, ok
}

// Validate checks every entry of the set.
func (s MetadataSet) Validate() error {
	for symbol, m := range s {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("metadata for %s: %w", symbol, err)
		}
	}
	return nil
}
