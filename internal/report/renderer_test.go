package report

import (
	"strings"
	"testing"
	"time"

	"github.com/ledgermark/ledgermark/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(kind model.Kind, amount, desc, account, category, filename string, at time.Time) model.Transaction {
	return model.Transaction{
		Kind:        kind,
		Amount:      decimal.RequireFromString(amount),
		Description: desc,
		Account:     account,
		Category:    category,
		Filename:    filename,
		OccurredAt:  at,
	}
}

func TestRenderGroupsByAccountInConfiguredOrder(t *testing.T) {
	day := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	txs := []model.Transaction{
		tx(model.KindExpense, "10", "lunch", "Cash", "Food", "a.md", day),
		tx(model.KindExpense, "5", "bus", "Cash", "Transport", "b.md", day),
		tx(model.KindIncome, "100", "refund", "Bank", "Misc", "c.md", day),
	}

	out := Render(txs, []string{"Cash", "Bank"})

	cashIdx := strings.Index(out, "## Cash")
	bankIdx := strings.Index(out, "## Bank")
	require.NotEqual(t, -1, cashIdx)
	require.NotEqual(t, -1, bankIdx)
	assert.Less(t, cashIdx, bankIdx, "sections follow configured account order")

	// Reversing the configuration reverses the sections.
	out = Render(txs, []string{"Bank", "Cash"})
	assert.Less(t, strings.Index(out, "## Bank"), strings.Index(out, "## Cash"))
}

func TestRenderOmitsEmptyAccounts(t *testing.T) {
	day := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	txs := []model.Transaction{
		tx(model.KindExpense, "10", "lunch", "Cash", "Food", "a.md", day),
	}

	out := Render(txs, []string{"Cash", "Bank", "Savings"})

	assert.Contains(t, out, "## Cash")
	assert.NotContains(t, out, "## Bank")
	assert.NotContains(t, out, "## Savings")
}

func TestRenderTotals(t *testing.T) {
	// Two Cash expenses of 10 and 5, one Bank income of 100.
	day := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	txs := []model.Transaction{
		tx(model.KindExpense, "10", "lunch", "Cash", "Food", "a.md", day),
		tx(model.KindExpense, "5", "bus", "Cash", "Transport", "b.md", day),
		tx(model.KindIncome, "100", "salary", "Bank", "Wages", "c.md", day),
	}

	out := Render(txs, []string{"Cash", "Bank"})
	sections := strings.Split(out, "## ")

	var cash, bank string
	for _, s := range sections {
		if strings.HasPrefix(s, "Cash") {
			cash = s
		}
		if strings.HasPrefix(s, "Bank") {
			bank = s
		}
	}
	require.NotEmpty(t, cash)
	require.NotEmpty(t, bank)

	assert.Contains(t, cash, "| **Total** | | | 0 | -15 | |")
	assert.Contains(t, bank, "| **Total** | | | 100 | 0 | |")
}

func TestRenderRowFormat(t *testing.T) {
	day := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	txs := []model.Transaction{
		tx(model.KindExpense, "42.50", "coffee", "Cash", "Food", "2024-03-15T09-30-00_expense.md", day),
	}

	out := Render(txs, []string{"Cash"})

	assert.Contains(t, out, "| Date | Description | Category | Income | Expense | Link |")
	assert.Contains(t, out, "| 2024-03-15 | coffee | Food |  | -42.5 | [[2024-03-15T09-30-00_expense]] |")
}

func TestRenderIncomeAndExpenseColumnsAreExclusive(t *testing.T) {
	day := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	txs := []model.Transaction{
		tx(model.KindIncome, "100", "salary", "Bank", "Wages", "c.md", day),
	}

	out := Render(txs, []string{"Bank"})

	assert.Contains(t, out, "| 2024-03-15 | salary | Wages | 100 |  | [[c]] |")
}

func TestRenderKeepsInputRowOrder(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	txs := []model.Transaction{
		tx(model.KindExpense, "2", "second chronologically, first in input", "Cash", "Misc", "b.md", day.Add(14*time.Hour)),
		tx(model.KindExpense, "1", "first chronologically", "Cash", "Misc", "a.md", day.Add(9*time.Hour)),
	}

	out := Render(txs, []string{"Cash"})

	assert.Less(t,
		strings.Index(out, "second chronologically"),
		strings.Index(out, "first chronologically"),
		"rows are not implicitly sorted by date")
}

func TestRenderEmptyInput(t *testing.T) {
	assert.Equal(t, "", Render(nil, []string{"Cash", "Bank"}))
}

func TestRenderAccountMatchIsCaseSensitive(t *testing.T) {
	day := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	txs := []model.Transaction{
		tx(model.KindExpense, "10", "lunch", "cash", "Food", "a.md", day),
	}

	out := Render(txs, []string{"Cash"})
	assert.Equal(t, "", out)
}
