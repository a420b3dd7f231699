// Package collect selects and decodes the ledger notes that fall inside a
// reporting window.
package collect

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ledgermark/ledgermark/internal/model"
	"github.com/ledgermark/ledgermark/internal/note"
	"github.com/ledgermark/ledgermark/internal/vault"
)

// Collector scans a vault folder for transaction notes.
type Collector struct {
	vault  vault.Vault
	folder string
}

// New creates a collector for the given vault and ledger folder.
func New(v vault.Vault, folder string) *Collector {
	return &Collector{vault: v, folder: strings.TrimSuffix(folder, "/")}
}

// Between returns the transactions whose note timestamps fall within
// [start, end], both ends inclusive. Results keep the vault's listing order.
// Notes that do not carry a parseable filename stamp, or whose content does
// not decode as a transaction, are skipped; a foreign note in the ledger
// folder never aborts the scan.
func (c *Collector) Between(ctx context.Context, start, end time.Time) ([]model.Transaction, error) {
	paths, err := c.vault.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list vault: %w", err)
	}

	prefix := c.folder + "/"
	var txs []model.Transaction
	for _, p := range paths {
		if !strings.HasPrefix(p, prefix) {
			continue
		}
		rel := strings.TrimPrefix(p, prefix)

		occurredAt, _, ok := note.ParseFilename(rel)
		if !ok {
			slog.Debug("Skipping non-ledger file", "path", p)
			continue
		}
		if occurredAt.Before(start) || occurredAt.After(end) {
			continue
		}

		content, err := c.vault.Read(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("failed to read note %s: %w", p, err)
		}

		tx, ok := note.Decode(content)
		if !ok {
			slog.Warn("Skipping note that does not decode as a transaction", "path", p)
			continue
		}
		tx.OccurredAt = occurredAt
		tx.Filename = rel
		txs = append(txs, tx)
	}

	slog.Debug("Collected transactions",
		"folder", c.folder,
		"start", start.Format(note.StampLayout),
		"end", end.Format(note.StampLayout),
		"count", len(txs))

	return txs, nil
}
