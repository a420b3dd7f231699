package main

import (
	"fmt"
	"time"

	"github.com/ledgermark/ledgermark/internal/config"
	"github.com/ledgermark/ledgermark/internal/ledger"
	"github.com/ledgermark/ledgermark/internal/sheets"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const dateLayout = "2006-01-02"

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a per-account report over a date range",
		Long: `Scan the ledger folder for transaction notes within a date range and
write the grouped report as a new note. Dates come from --start/--end or are
collected interactively when the flags are omitted.

Examples:
  ledgermark report
  ledgermark report --start 2024-03-01 --end 2024-03-31
  ledgermark report --start 2024-03-01 --end 2024-03-31 --preview
  ledgermark report --start 2024-01-01 --end 2024-12-31 --sheets`,
		RunE: runReport,
	}

	cmd.Flags().String("start", "", "range start date (YYYY-MM-DD)")
	cmd.Flags().String("end", "", "range end date (YYYY-MM-DD)")
	cmd.Flags().Bool("preview", false, "print the report instead of writing a note")
	cmd.Flags().Bool("sheets", false, "also export the report to Google Sheets")
	cmd.Flags().Bool("tui", false, "use the full-screen form instead of line prompts")

	return cmd
}

func runReport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	v, err := openVault(cfg)
	if err != nil {
		return err
	}

	useTUI, _ := cmd.Flags().GetBool("tui")
	svc := newService(cfg, v, useTUI)

	r, prompted, err := rangeFromFlags(cmd)
	if err != nil {
		return err
	}

	preview, _ := cmd.Flags().GetBool("preview")
	exportSheets, _ := cmd.Flags().GetBool("sheets")

	if prompted {
		// No flags given; fall back to the interactive dialog flow, which
		// handles cancellation silently.
		if preview || exportSheets {
			return fmt.Errorf("--preview and --sheets require --start and --end")
		}
		return svc.CreateReport(ctx)
	}

	if preview {
		text, renderErr := svc.RenderReport(ctx, r)
		if renderErr != nil {
			return renderErr
		}
		fmt.Fprint(cmd.OutOrStdout(), text)
		return nil
	}

	if err := svc.WriteReport(ctx, r); err != nil {
		return err
	}

	if exportSheets {
		return exportToSheets(cmd, cfg, svc, r)
	}
	return nil
}

// rangeFromFlags parses --start/--end. prompted=true means neither flag was
// set and the caller should collect the range interactively.
func rangeFromFlags(cmd *cobra.Command) (ledger.DateRange, bool, error) {
	startStr, _ := cmd.Flags().GetString("start")
	endStr, _ := cmd.Flags().GetString("end")

	if startStr == "" && endStr == "" {
		return ledger.DateRange{}, true, nil
	}
	if startStr == "" || endStr == "" {
		return ledger.DateRange{}, false, fmt.Errorf("--start and --end must be given together")
	}

	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		return ledger.DateRange{}, false, fmt.Errorf("invalid --start date %q: %w", startStr, err)
	}
	end, err := time.Parse(dateLayout, endStr)
	if err != nil {
		return ledger.DateRange{}, false, fmt.Errorf("invalid --end date %q: %w", endStr, err)
	}
	if end.Before(start) {
		return ledger.DateRange{}, false, fmt.Errorf("--end %s is before --start %s", endStr, startStr)
	}

	return ledger.DateRange{Start: start, End: end}, false, nil
}

func exportToSheets(cmd *cobra.Command, cfg *config.Config, svc *ledger.Service, r ledger.DateRange) error {
	ctx := cmd.Context()

	sheetsCfg, err := config.LoadSheetsConfig(viper.GetViper())
	if err != nil {
		return fmt.Errorf("sheets export not configured: %w", err)
	}

	exporter, err := sheets.NewExporter(ctx, *sheetsCfg)
	if err != nil {
		return err
	}

	txs, err := svc.CollectRange(ctx, r)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("Ledger report %s to %s",
		r.Start.Format(dateLayout), r.End.Format(dateLayout))
	return exporter.Export(ctx, title, txs, cfg.Accounts)
}
