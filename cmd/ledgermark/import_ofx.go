package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ledgermark/ledgermark/internal/model"
	"github.com/ledgermark/ledgermark/internal/ofx"
	"github.com/ledgermark/ledgermark/internal/vault"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <files...>",
		Short: "Import transactions from OFX/QFX bank exports",
		Long: `Import bank statement exports as ledger notes. Debits become expenses,
credits become income; every transaction is written as a normal note and
shows up in reports like a hand-entered one.

Examples:
  ledgermark import --account Checking ~/Downloads/statement.qfx
  ledgermark import --account "Credit Card" ~/Downloads/cc_*.ofx
  ledgermark import --account Checking --dry-run ~/Downloads/*.qfx`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImport,
	}

	cmd.Flags().String("account", "", "configured account name for the imported entries (required)")
	cmd.Flags().String("category", "", "fallback category for unmatched transactions")
	cmd.Flags().BoolP("dry-run", "d", false, "parse and summarize without writing notes")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	account, _ := cmd.Flags().GetString("account")
	fallbackCategory, _ := cmd.Flags().GetString("category")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	v, err := openVault(cfg)
	if err != nil {
		return err
	}
	if !cfg.HasAccount(account) {
		slog.Warn("Account is not in the configured list; report grouping may miss it", "account", account)
	}

	files, err := expandGlobs(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files found to import")
	}

	parser := ofx.NewParser()
	if fallbackCategory != "" {
		parser.DefaultCategory = fallbackCategory
	}

	var txs []model.Transaction
	for _, file := range files {
		f, openErr := os.Open(file)
		if openErr != nil {
			slog.Error("Failed to open file", "file", file, "error", openErr)
			continue
		}
		parsed, parseErr := parser.ParseStatement(ctx, f, account)
		f.Close()
		if parseErr != nil {
			slog.Error("Failed to parse OFX file", "file", filepath.Base(file), "error", parseErr)
			continue
		}
		txs = append(txs, parsed...)
	}

	if len(txs) == 0 {
		slog.Warn("No transactions found in any file")
		return nil
	}

	if dryRun {
		fmt.Printf("Would import %d transactions into account %q:\n", len(txs), account)
		for _, tx := range txs {
			fmt.Printf("  %s  %-7s %10s  %s\n",
				tx.OccurredAt.Format(dateLayout), tx.Kind, tx.SignedAmount(), tx.Description)
		}
		return nil
	}

	svc := newService(cfg, v, false)
	bar := progressbar.Default(int64(len(txs)), "importing")

	var written, skipped, failed int
	for _, tx := range txs {
		err := svc.Record(ctx, tx)
		switch {
		case err == nil:
			written++
		case errors.Is(err, vault.ErrExists):
			// A note already at this instant and kind: the entry was
			// imported before.
			skipped++
		default:
			failed++
			slog.Error("Failed to write imported transaction",
				"date", tx.OccurredAt.Format(dateLayout),
				"description", tx.Description,
				"error", err)
		}
		_ = bar.Add(1)
	}

	slog.Info("Import finished",
		"written", written,
		"duplicates_skipped", skipped,
		"failed", failed)

	if failed > 0 {
		return fmt.Errorf("%d of %d transactions failed to import", failed, len(txs))
	}
	return nil
}

// expandGlobs resolves glob patterns, passing through plain paths that exist.
func expandGlobs(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			if _, statErr := os.Stat(pattern); statErr == nil {
				files = append(files, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
			continue
		}
		files = append(files, matches...)
	}
	return files, nil
}
