package sheets

import (
	"github.com/ledgermark/ledgermark/internal/model"
	"github.com/shopspring/decimal"
)

// BuildRows turns collected transactions into spreadsheet rows mirroring the
// markdown report: one block per configured account with a header row, data
// rows in input order, and a totals row. Empty accounts are omitted.
func BuildRows(title string, txs []model.Transaction, accounts []string) [][]any {
	rows := [][]any{{title}, {}}

	for _, account := range accounts {
		var group []model.Transaction
		for _, tx := range txs {
			if tx.Account == account {
				group = append(group, tx)
			}
		}
		if len(group) == 0 {
			continue
		}

		rows = append(rows,
			[]any{account},
			[]any{"Date", "Description", "Category", "Income", "Expense", "Note"})

		var incomeTotal, expenseTotal decimal.Decimal
		for _, tx := range group {
			income, expense := "", ""
			switch tx.Kind {
			case model.KindIncome:
				income = tx.Amount.String()
				incomeTotal = incomeTotal.Add(tx.Amount)
			case model.KindExpense:
				expense = tx.SignedAmount().String()
				expenseTotal = expenseTotal.Add(tx.SignedAmount())
			}
			rows = append(rows, []any{
				tx.OccurredAt.Format("2006-01-02"),
				tx.Description,
				tx.Category,
				income,
				expense,
				tx.Filename,
			})
		}

		rows = append(rows,
			[]any{"Total", "", "", incomeTotal.String(), expenseTotal.String(), ""},
			[]any{})
	}

	return rows
}
