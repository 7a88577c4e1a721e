// Package renderer turns the accounting reports into markdown documents.
package renderer

import "github.com/gverdier/folio"

// cell formats optional money values, using "-" for zero.
func cell(m folio.Money) string {
	if m.IsZero() {
		return "-"
	}
	return m.String()
}
