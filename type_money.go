package folio

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in the portfolio's home currency.
//
// The currency code is display metadata: amounts are persisted as bare
// numbers (the backup contract stores collections verbatim) and the home
// currency from [Settings] is applied when formatting. An empty currency is
// weak: it adopts the other operand's currency in arithmetic.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns a Money for any numeric value in the given currency.
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's currency, never nil.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String returns the money value formatted with its currency conventions.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString returns the formatted value with an explicit sign, and "-"
// for zero.
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Currency() string                { return m.cur }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Mul(n Quantity) Money            { return Money{value: m.value.Mul(n.value), cur: m.cur} }

// Div returns the money divided by a quantity, or zero when the quantity is
// zero. Average cost over an empty position is zero, never a fault.
func (m Money) Div(n Quantity) Money {
	if n.value.IsZero() {
		return Money{cur: m.cur}
	}
	return Money{value: m.value.Div(n.value), cur: m.cur}
}

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// PercentOf returns m as a percentage of whole, or 0 when whole is zero.
func (m Money) PercentOf(whole Money) Percent {
	if whole.value.IsZero() {
		return 0
	}
	return Percent(m.value.Div(whole.value).InexactFloat64() * 100)
}

// In returns a copy of the money carrying the given display currency.
func (m Money) In(currency string) Money { return Money{value: m.value, cur: currency} }

// AsFloat returns the value as a float64, for presentation and projection
// only; the accounting paths stay exact.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// MarshalJSON implements the json.Marshaler interface for Money.
// Amounts are persisted as bare numbers; see the backup contract.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Money.
func (m *Money) UnmarshalJSON(bytes []byte) error {
	return m.value.UnmarshalJSON(bytes)
}
