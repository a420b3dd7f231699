// Package report renders collected transactions as per-account markdown
// tables with running income/expense totals.
package report

import (
	"fmt"
	"strings"

	"github.com/ledgermark/ledgermark/internal/model"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// Render produces one markdown section per account, in the caller-supplied
// account order. Accounts with no matching transactions are omitted. Rows
// keep the input order of the transactions; the Expense column and the
// expense total share the negative-sign convention of the note encoding.
func Render(txs []model.Transaction, accounts []string) string {
	var sections []string
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
		sections = append(sections, renderAccount(account, group))
	}
	return strings.Join(sections, "\n")
}

func renderAccount(account string, group []model.Transaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", account)
	b.WriteString("| Date | Description | Category | Income | Expense | Link |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- |\n")

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
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			tx.OccurredAt.Format(dateLayout),
			tx.Description,
			tx.Category,
			income,
			expense,
			link(tx.Filename))
	}

	fmt.Fprintf(&b, "| **Total** | | | %s | %s | |\n",
		incomeTotal.String(), expenseTotal.String())

	return b.String()
}

// link builds a wiki-style reference back to the source note.
func link(filename string) string {
	if filename == "" {
		return ""
	}
	return "[[" + strings.TrimSuffix(filename, ".md") + "]]"
}
