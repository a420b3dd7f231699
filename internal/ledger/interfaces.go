// Package ledger wires the codec, path deriver, collector and renderer into
// the two user-facing operations: adding a transaction note and generating a
// report over a date range.
package ledger

import (
	"context"
	"time"

	"github.com/ledgermark/ledgermark/internal/model"
	"github.com/shopspring/decimal"
)

// TransactionInput holds the fields collected by the add dialog.
type TransactionInput struct {
	Description string
	Account     string
	Category    string
	Amount      decimal.Decimal
}

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Prompter collects user input. Implementations resolve with ok=false when
// the user dismisses the dialog without submitting; that is a cancellation,
// not an error.
type Prompter interface {
	CollectTransaction(ctx context.Context, kind model.Kind, accounts, categories []string) (TransactionInput, bool, error)
	CollectDateRange(ctx context.Context) (DateRange, bool, error)
}

// Notifier delivers transient success/failure feedback to the user.
// Failure messages stay coarse; diagnostics go to the log.
type Notifier interface {
	Success(message string)
	Failure(message string)
}
