package folio

import (
	"fmt"

	"github.com/Rhymond/go-money"
)

// Settings holds the portfolio-wide preferences. They drive formatting and
// default fee computation in the surrounding application; the accounting
// calculators never read them.
type Settings struct {
	Currency string  `json:"currency"`       // home currency code, e.g. "EUR"
	FeeRate  Percent `json:"feeRate"`        // default transaction fee rate
	TaxRate  Percent `json:"taxRate"`        // dividend/gains tax rate
	Compact  bool    `json:"compactDisplay"` // compact number display
}

// DefaultSettings returns the settings used for a freshly created book.
func DefaultSettings() Settings {
	return Settings{Currency: "EUR"}
}

// ValidateCurrency returns an error when the code is not a known ISO-4217
// currency.
func ValidateCurrency(code string) error {
	if code == "" {
		return fmt.Errorf("currency code is missing")
	}
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("unknown currency code %q", code)
	}
	return nil
}

// Validate checks the settings for correctness.
func (s Settings) Validate() error {
	if err := ValidateCurrency(s.Currency); err != nil {
		return err
	}
	if s.FeeRate < 0 {
		return fmt.Errorf("fee rate must not be negative, got %s", s.FeeRate)
	}
	if s.TaxRate < 0 || s.TaxRate > 100 {
		return fmt.Errorf("tax rate must be between 0%% and 100%%, got %s", s.TaxRate)
	}
	return nil
}
