package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Kind indicates whether a transaction moves money out or in.
type Kind string

const (
	// KindExpense represents money leaving an account.
	KindExpense Kind = "expense"
	// KindIncome represents money entering an account.
	KindIncome Kind = "income"
)

// ParseKind converts a string (any case) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindExpense:
		return KindExpense, nil
	case KindIncome:
		return KindIncome, nil
	default:
		return "", fmt.Errorf("unknown transaction kind: %q", s)
	}
}

// Title returns the capitalized form used in note headers ("Expense", "Income").
func (k Kind) Title() string {
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}

// Transaction is a single ledger entry backed by one note in the vault.
// Once written to a note it is never mutated; reports only re-read it.
type Transaction struct {
	OccurredAt  time.Time
	Kind        Kind
	Description string
	Account     string
	Category    string
	Filename    string // note path relative to the ledger folder, set on collect
	Amount      decimal.Decimal
}

// SignedAmount returns the amount with the expense sign convention applied:
// negative for expenses, positive for income.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Kind == KindExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Validate checks the fields a transaction must carry before it can be encoded.
func (t Transaction) Validate() error {
	if t.Kind != KindExpense && t.Kind != KindIncome {
		return fmt.Errorf("invalid kind: %q", t.Kind)
	}
	if t.Amount.IsNegative() {
		return fmt.Errorf("amount must be a non-negative magnitude, got %s", t.Amount)
	}
	if strings.ContainsAny(t.Description, "\r\n") {
		return fmt.Errorf("description must be a single line")
	}
	if t.OccurredAt.IsZero() {
		return fmt.Errorf("missing timestamp")
	}
	return nil
}
