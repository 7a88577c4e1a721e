package folio

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// YearMonthFormat is the canonical key format for historical price snapshots.
const YearMonthFormat = "2006-01"

// YearMonth identifies one calendar month, the resolution of the historical
// price snapshots. Snapshots are sparse: months may be missing.
type YearMonth struct {
	y int
	m time.Month
}

// YM returns a normalized YearMonth for the given year and month.
func YM(year int, month time.Month) YearMonth {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return YearMonth{y: t.Year(), m: t.Month()}
}

// YearMonthOf returns the YearMonth containing the given date.
func YearMonthOf(d Date) YearMonth { return YM(d.Year(), d.Month()) }

// Year returns the year of the key.
func (ym YearMonth) Year() int { return ym.y }

// Month returns the month of the key.
func (ym YearMonth) Month() time.Month { return ym.m }

// String formats the key in its canonical "2006-01" form.
func (ym YearMonth) String() string {
	return time.Date(ym.y, ym.m, 1, 0, 0, 0, 0, time.UTC).Format(YearMonthFormat)
}

// IsZero returns true if the key is the zero value.
func (ym YearMonth) IsZero() bool { return ym.y == 0 && ym.m == 0 }

// Before reports whether ym is strictly before x.
func (ym YearMonth) Before(x YearMonth) bool {
	return ym.y < x.y || (ym.y == x.y && ym.m < x.m)
}

// After reports whether ym is strictly after x.
func (ym YearMonth) After(x YearMonth) bool { return x.Before(ym) }

// Compare returns -1, 0 or +1 depending on whether ym is before, equal to,
// or after x.
func (ym YearMonth) Compare(x YearMonth) int {
	switch {
	case ym.Before(x):
		return -1
	case x.Before(ym):
		return 1
	default:
		return 0
	}
}

// ParseYearMonth parses a canonical year-month key. It is lenient about
// single-digit months ("2024-7").
func ParseYearMonth(str string) (YearMonth, error) {
	str = strings.TrimSpace(str)
	t, err := time.Parse("2006-1", str)
	if err != nil {
		return YearMonth{}, fmt.Errorf("invalid year-month %q want format %q: %w", str, YearMonthFormat, err)
	}
	return YM(t.Year(), t.Month()), nil
}

// MarshalJSON implements the json.Marshaler interface for YearMonth.
func (ym YearMonth) MarshalJSON() ([]byte, error) {
	return json.Marshal(ym.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface for YearMonth.
func (ym *YearMonth) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	parsed, err := ParseYearMonth(str)
	if err != nil {
		return err
	}
	*ym = parsed
	return nil
}
