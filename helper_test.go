package folio

import "testing"

// EUR is a helper for tests to create euro money from const.
func EUR(v float64) Money { return M(v, "EUR") }

// NO is a helper for tests to create money with no currency set.
func NO(v float64) Money { return M(v, "") }

func mustAppend(t *testing.T, h *Holding, tx Transaction) Transaction {
	t.Helper()
	stamped, err := h.Append(tx)
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	return stamped
}
