package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"time"

	"github.com/ledgermark/ledgermark/internal/collect"
	"github.com/ledgermark/ledgermark/internal/config"
	"github.com/ledgermark/ledgermark/internal/model"
	"github.com/ledgermark/ledgermark/internal/note"
	"github.com/ledgermark/ledgermark/internal/report"
	"github.com/ledgermark/ledgermark/internal/vault"
)

// Service runs the ledger operations against a vault. Operations are
// sequential; there is no shared mutable state beyond the vault itself.
type Service struct {
	vault    vault.Vault
	cfg      *config.Config
	prompter Prompter
	notifier Notifier
	now      func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

// WithClock overrides the creation-time clock. Tests use it to pin
// timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a ledger service.
func NewService(v vault.Vault, cfg *config.Config, prompter Prompter, notifier Notifier, opts ...Option) *Service {
	s := &Service{
		vault:    v,
		cfg:      cfg,
		prompter: prompter,
		notifier: notifier,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddTransaction collects a transaction from the prompter and persists it as
// a new note. A dismissed dialog aborts silently. Write failures are
// reported to the user once and never retried.
func (s *Service) AddTransaction(ctx context.Context, kind model.Kind) error {
	input, ok, err := s.prompter.CollectTransaction(ctx, kind, s.cfg.Accounts, s.cfg.Categories)
	if err != nil {
		return fmt.Errorf("failed to collect transaction input: %w", err)
	}
	if !ok {
		slog.Debug("Add cancelled by user", "kind", kind)
		return nil
	}

	tx := model.Transaction{
		Kind:        kind,
		Amount:      input.Amount.Abs(),
		Description: input.Description,
		Account:     input.Account,
		Category:    input.Category,
		OccurredAt:  s.now().Truncate(time.Second),
	}
	if err := tx.Validate(); err != nil {
		s.notifier.Failure(fmt.Sprintf("Failed to add %s", kind))
		return fmt.Errorf("invalid transaction: %w", err)
	}
	if !s.cfg.HasAccount(tx.Account) {
		slog.Warn("Account is not in the configured list; report grouping may miss it", "account", tx.Account)
	}
	if !s.cfg.HasCategory(tx.Category) {
		slog.Warn("Category is not in the configured list", "category", tx.Category)
	}

	if err := s.writeNote(ctx, tx); err != nil {
		s.notifier.Failure(fmt.Sprintf("Failed to add %s", kind))
		return err
	}

	s.notifier.Success(fmt.Sprintf("Added %s: %s (%s)", kind, tx.Amount, tx.Description))
	return nil
}

// Record persists an already-built transaction as a note without prompting.
// The importer uses it for bulk ingestion.
func (s *Service) Record(ctx context.Context, tx model.Transaction) error {
	tx.OccurredAt = tx.OccurredAt.Truncate(time.Second)
	if err := tx.Validate(); err != nil {
		return fmt.Errorf("invalid transaction: %w", err)
	}
	return s.writeNote(ctx, tx)
}

func (s *Service) writeNote(ctx context.Context, tx model.Transaction) error {
	if err := s.vault.EnsureFolder(ctx, s.cfg.LedgerFolder); err != nil {
		return fmt.Errorf("failed to ensure ledger folder: %w", err)
	}

	notePath := note.Path(s.cfg.LedgerFolder, tx.OccurredAt, tx.Kind)
	if err := s.vault.Create(ctx, notePath, note.Encode(tx)); err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}

	slog.Info("Wrote transaction note",
		"path", notePath,
		"kind", tx.Kind,
		"amount", tx.Amount.String(),
		"account", tx.Account)
	return nil
}

// CreateReport collects a date range from the prompter, scans the ledger
// folder, and writes the rendered report as a new note.
func (s *Service) CreateReport(ctx context.Context) error {
	r, ok, err := s.prompter.CollectDateRange(ctx)
	if err != nil {
		return fmt.Errorf("failed to collect date range: %w", err)
	}
	if !ok {
		slog.Debug("Report cancelled by user")
		return nil
	}
	return s.WriteReport(ctx, r)
}

// WriteReport generates the report for an explicit range, for callers that
// already have the dates (e.g. command-line flags).
func (s *Service) WriteReport(ctx context.Context, r DateRange) error {
	text, err := s.RenderReport(ctx, r)
	if err != nil {
		s.notifier.Failure("Failed to create report")
		return err
	}

	if err := s.vault.EnsureFolder(ctx, s.cfg.ReportsFolder); err != nil {
		s.notifier.Failure("Failed to create report")
		return fmt.Errorf("failed to ensure reports folder: %w", err)
	}

	reportPath := path.Join(s.cfg.ReportsFolder, reportFilename(r))
	if err := s.vault.Create(ctx, reportPath, text); err != nil {
		s.notifier.Failure("Failed to create report")
		return fmt.Errorf("failed to create report note: %w", err)
	}

	s.notifier.Success("Report created: " + reportPath)
	return nil
}

// CollectRange returns the decoded transactions in the inclusive
// calendar-day range, for callers that post-process them (e.g. the sheets
// exporter).
func (s *Service) CollectRange(ctx context.Context, r DateRange) ([]model.Transaction, error) {
	start, end := r.bounds()
	txs, err := collect.New(s.vault, s.cfg.LedgerFolder).Between(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to collect transactions: %w", err)
	}
	return txs, nil
}

// RenderReport collects and renders without persisting, for preview output.
func (s *Service) RenderReport(ctx context.Context, r DateRange) (string, error) {
	txs, err := s.CollectRange(ctx, r)
	if err != nil {
		return "", err
	}

	title := fmt.Sprintf("# Ledger report %s to %s\n\n",
		r.Start.Format("2006-01-02"), r.End.Format("2006-01-02"))

	body := report.Render(txs, s.cfg.Accounts)
	if body == "" {
		body = "No transactions in this period.\n"
	}
	return title + body, nil
}

// bounds expands the calendar-day range to inclusive instants: the start of
// the first day through the last second of the last day.
func (r DateRange) bounds() (time.Time, time.Time) {
	start := time.Date(r.Start.Year(), r.Start.Month(), r.Start.Day(), 0, 0, 0, 0, r.Start.Location())
	end := time.Date(r.End.Year(), r.End.Month(), r.End.Day(), 23, 59, 59, 0, r.End.Location())
	return start, end
}

func reportFilename(r DateRange) string {
	return fmt.Sprintf("report_%s_to_%s.md",
		r.Start.Format("2006-01-02"), r.End.Format("2006-01-02"))
}
