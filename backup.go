package folio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// backupKeys is the complete, ordered set of top-level keys of a backup
// document. Export emits them in this order so that exporting the same book
// twice yields identical bytes.
var backupKeys = []string{
	"stocks",
	"dividends",
	"donations",
	"budgetEntries",
	"historicalPrices",
	"strategies",
	"settings",
	"stockMetadata",
}

// arrayKeys are the backup keys whose value must be a JSON array.
var arrayKeys = []string{"stocks", "dividends", "donations", "budgetEntries", "strategies"}

// Export writes the complete book as one JSON document to w.
//
// Every collection is written even when empty, so a backup always carries
// the full set of keys and importing it restores an equivalent book.
func Export(w io.Writer, b *Book) error {
	var ow jsonObjectWriter
	ow.Append("stocks", emptyAsList(b.Holdings))
	ow.Append("dividends", emptyAsList(b.Dividends))
	ow.Append("donations", emptyAsList(b.Donations))
	ow.Append("budgetEntries", emptyAsList(b.BudgetEntries))
	ow.Append("historicalPrices", b.Prices)
	ow.Append("strategies", emptyAsList(b.Strategies))
	ow.Append("settings", b.Settings)
	ow.Append("stockMetadata", b.Metadata)

	raw, err := ow.MarshalJSON()
	if err != nil {
		return fmt.Errorf("exporting book: %w", err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("exporting book: %w", err)
	}
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

// emptyAsList forces a nil slice to marshal as [] instead of null.
func emptyAsList[T any](s []T) []T {
	if len(s) == 0 {
		return []T{}
	}
	return s
}

// Import reads a backup document and reconstructs the book. The document
// must carry every backup key, with the collection keys holding arrays; a
// malformed document yields an error and no book at all, never a partially
// filled one.
func Import(r io.Reader) (*Book, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading backup: %w", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing backup: %w", err)
	}
	for _, key := range backupKeys {
		if _, ok := doc[key]; !ok {
			return nil, fmt.Errorf("backup is missing the %q key", key)
		}
	}
	for _, key := range arrayKeys {
		if trimmed := bytes.TrimSpace(doc[key]); len(trimmed) == 0 || trimmed[0] != '[' {
			return nil, fmt.Errorf("backup key %q must hold an array", key)
		}
	}

	b := NewBook()
	sections := []struct {
		key string
		dst any
	}{
		{"stocks", &b.Holdings},
		{"dividends", &b.Dividends},
		{"donations", &b.Donations},
		{"budgetEntries", &b.BudgetEntries},
		{"historicalPrices", &b.Prices},
		{"strategies", &b.Strategies},
		{"settings", &b.Settings},
		{"stockMetadata", &b.Metadata},
	}
	for _, s := range sections {
		if err := json.Unmarshal(doc[s.key], s.dst); err != nil {
			return nil, fmt.Errorf("parsing backup key %q: %w", s.key, err)
		}
	}

	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("backup is inconsistent: %w", err)
	}
	return b, nil
}
