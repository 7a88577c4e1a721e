package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/gverdier/folio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPosition(t *testing.T) folio.Position {
	t.Helper()
	h := folio.NewHolding("ACME", "Acme Corp", folio.M(120, "EUR"))
	for _, tx := range []folio.Transaction{
		folio.NewBuy(folio.NewDate(2024, time.January, 1), folio.Q(1000), folio.M(100, "EUR"), folio.M(15, "EUR")),
		folio.NewSell(folio.NewDate(2024, time.June, 1), folio.Q(800), folio.M(120, "EUR"), folio.M(20, "EUR")),
	} {
		_, err := h.Append(tx)
		require.NoError(t, err)
	}
	return h.Position()
}

func TestHoldingMarkdown(t *testing.T) {
	out := HoldingMarkdown("Acme Corp", testPosition(t))

	assert.Contains(t, out, "# Acme Corp (ACME)")
	assert.Contains(t, out, "## Open Lots")
	assert.Contains(t, out, "## Sells")
	assert.Contains(t, out, "2024-06-01")
}

func TestPositionsMarkdown(t *testing.T) {
	out := PositionsMarkdown([]folio.Position{testPosition(t)})
	assert.Contains(t, out, "# Holdings")
	assert.Contains(t, out, "ACME")
}

func TestReviewMarkdown(t *testing.T) {
	r := folio.Review{Year: 2024, Cutoff: folio.EndOfYear(2024),
		MarketValue: folio.M(84000, "EUR"), CostBasis: folio.M(75013, "EUR")}
	out := ReviewMarkdown(r)
	assert.Contains(t, out, "# Portfolio Review 2024")
	assert.Contains(t, out, "2024-12-31")

	out = ReviewMarkdown(folio.Review{})
	assert.Contains(t, out, "All Time")
}

func TestLedgerMarkdown(t *testing.T) {
	b := folio.NewBook()
	b.BudgetEntries = []folio.BudgetEntry{
		folio.NewBudgetEntry(folio.DepositEntry, folio.M(1000, "EUR"), folio.NewDate(2024, time.January, 1), "Initial deposit"),
		folio.NewBudgetEntry(folio.WithdrawalEntry, folio.M(100, "EUR"), folio.NewDate(2024, time.February, 1), "Rent"),
	}
	ledger := folio.NewCashLedger(b)

	out := LedgerMarkdown(ledger, false)
	assert.Contains(t, out, "# Cash Ledger")
	// Manual entries are starred.
	assert.Contains(t, out, "Initial deposit *")

	reversed := LedgerMarkdown(ledger, true)
	assert.Less(t, strings.Index(reversed, "Rent"), strings.Index(reversed, "Initial deposit"),
		"newest first should list Rent before the deposit")
}

func TestProjectionMarkdown(t *testing.T) {
	s := folio.Strategy{ID: "s1", Symbol: "ACME", Initial: folio.M(1000, "EUR"), AnnualReturn: 8}
	points := s.Simulate(folio.Metadata{}, 2025, 2)

	out := ProjectionMarkdown(s, points, nil)
	assert.Contains(t, out, "# Projection ACME")
	assert.Contains(t, out, "2026")
}

func TestDividendsMarkdown(t *testing.T) {
	report := folio.NewDividendReport(
		[]folio.Dividend{folio.NewDividend("ACME", folio.NewDate(2024, time.March, 15),
			folio.M(30, "EUR"), folio.Q(100), folio.M(0.3, "EUR"))},
		testPosition(t),
		folio.Metadata{Frequency: 4},
	)
	out := DividendsMarkdown(report)
	assert.Contains(t, out, "# Dividends ACME")
	assert.Contains(t, out, "2024-03-15")
}
