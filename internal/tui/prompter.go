package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ledgermark/ledgermark/internal/ledger"
	"github.com/ledgermark/ledgermark/internal/model"
	"github.com/shopspring/decimal"
)

// Prompter implements ledger.Prompter with bubbletea forms.
type Prompter struct {
	// programOpts lets tests swap the terminal for buffers.
	programOpts []tea.ProgramOption
}

// NewPrompter creates a form-based prompter.
func NewPrompter(opts ...tea.ProgramOption) *Prompter {
	return &Prompter{programOpts: opts}
}

// CollectTransaction shows the four-field add form.
func (p *Prompter) CollectTransaction(ctx context.Context, kind model.Kind, accounts, categories []string) (ledger.TransactionInput, bool, error) {
	form := newForm("Add "+string(kind), []field{
		newField("Amount", "42.50", validAmount),
		newField("Description", "what was it for", nonEmpty),
		newField("Account", strings.Join(accounts, " | "), nonEmpty),
		newField("Category", strings.Join(categories, " | "), nonEmpty),
	})

	final, err := p.run(ctx, form)
	if err != nil {
		return ledger.TransactionInput{}, false, err
	}
	if !final.done {
		return ledger.TransactionInput{}, false, nil
	}

	amount, err := decimal.NewFromString(final.value(0))
	if err != nil {
		// validAmount already gated this; a failure here is a programming error.
		return ledger.TransactionInput{}, false, fmt.Errorf("failed to parse amount: %w", err)
	}

	return ledger.TransactionInput{
		Amount:      amount,
		Description: final.value(1),
		Account:     final.value(2),
		Category:    final.value(3),
	}, true, nil
}

// CollectDateRange shows the two-field report form.
func (p *Prompter) CollectDateRange(ctx context.Context) (ledger.DateRange, bool, error) {
	form := newForm("Create report", []field{
		newField("Start date", "2024-01-01", validDate),
		newField("End date", "2024-12-31", validDate),
	})

	final, err := p.run(ctx, form)
	if err != nil {
		return ledger.DateRange{}, false, err
	}
	if !final.done {
		return ledger.DateRange{}, false, nil
	}

	start, err := time.Parse("2006-01-02", final.value(0))
	if err != nil {
		return ledger.DateRange{}, false, fmt.Errorf("failed to parse start date: %w", err)
	}
	end, err := time.Parse("2006-01-02", final.value(1))
	if err != nil {
		return ledger.DateRange{}, false, fmt.Errorf("failed to parse end date: %w", err)
	}
	if end.Before(start) {
		return ledger.DateRange{}, false, fmt.Errorf("end date %s is before start date %s",
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}

	return ledger.DateRange{Start: start, End: end}, true, nil
}

func (p *Prompter) run(ctx context.Context, form formModel) (formModel, error) {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, p.programOpts...)
	program := tea.NewProgram(form, opts...)

	final, err := program.Run()
	if err != nil {
		return formModel{}, fmt.Errorf("form failed: %w", err)
	}
	m, ok := final.(formModel)
	if !ok {
		return formModel{}, fmt.Errorf("unexpected final model type %T", final)
	}
	return m, nil
}

func validAmount(s string) error {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("not a number")
	}
	if amount.IsNegative() {
		return fmt.Errorf("enter a positive magnitude")
	}
	return nil
}
