package note

import (
	"testing"
	"time"

	"github.com/ledgermark/ledgermark/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilename(t *testing.T) {
	at := time.Date(2024, 3, 15, 9, 30, 45, 0, time.UTC)

	assert.Equal(t, "2024-03-15T09-30-45_expense.md", Filename(at, model.KindExpense))
	assert.Equal(t, "2024-03-15T09-30-45_income.md", Filename(at, model.KindIncome))
}

func TestFilenameDiscardsSubSeconds(t *testing.T) {
	precise := time.Date(2024, 3, 15, 9, 30, 45, 987654321, time.UTC)
	truncated := time.Date(2024, 3, 15, 9, 30, 45, 0, time.UTC)

	assert.Equal(t, Filename(truncated, model.KindExpense), Filename(precise, model.KindExpense))
}

func TestPathIsFlatUnderFolder(t *testing.T) {
	at := time.Date(2024, 3, 15, 9, 30, 45, 0, time.UTC)

	got := Path("Ledger", at, model.KindExpense)

	assert.Equal(t, "Ledger/2024-03-15T09-30-45_expense.md", got)
}

func TestParseFilenameRoundTrip(t *testing.T) {
	at := time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)

	for _, kind := range []model.Kind{model.KindExpense, model.KindIncome} {
		gotAt, gotKind, ok := ParseFilename(Filename(at, kind))
		require.True(t, ok)
		assert.True(t, at.Equal(gotAt))
		assert.Equal(t, kind, gotKind)
	}
}

func TestParseFilenameAcceptsFullPaths(t *testing.T) {
	_, kind, ok := ParseFilename("Ledger/2024-03-15T09-30-45_income.md")
	require.True(t, ok)
	assert.Equal(t, model.KindIncome, kind)
}

func TestParseFilenameRejectsForeignNames(t *testing.T) {
	tests := []struct {
		name     string
		filename string
	}{
		{name: "no extension", filename: "2024-03-15T09-30-45_expense"},
		{name: "no kind suffix", filename: "2024-03-15T09-30-45.md"},
		{name: "unknown kind", filename: "2024-03-15T09-30-45_transfer.md"},
		{name: "bad stamp", filename: "yesterday_expense.md"},
		{name: "ordinary note", filename: "meeting notes.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, ok := ParseFilename(tt.filename)
			assert.False(t, ok)
		})
	}
}
