package main

import (
	"fmt"

	"github.com/ledgermark/ledgermark/internal/cli"
	"github.com/ledgermark/ledgermark/internal/config"
	"github.com/ledgermark/ledgermark/internal/vault"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Set up the vault folders and write a starter config",
		Long: `Create the vault directory with the ledger and reports folders, and save
a starter configuration with a default set of accounts and categories.

Example:
  ledgermark init --vault ~/notes`,
		RunE: runInit,
	}

	cmd.Flags().String("vault", "", "path of the vault directory (required)")
	cmd.Flags().String("ledger-folder", config.DefaultLedgerFolder, "folder for transaction notes")
	cmd.Flags().String("reports-folder", config.DefaultReportsFolder, "folder for report notes")
	_ = cmd.MarkFlagRequired("vault")

	return cmd
}

func runInit(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	vaultPath, _ := cmd.Flags().GetString("vault")
	ledgerFolder, _ := cmd.Flags().GetString("ledger-folder")
	reportsFolder, _ := cmd.Flags().GetString("reports-folder")

	cfg := &config.Config{
		VaultPath:     config.ExpandPath(vaultPath),
		LedgerFolder:  ledgerFolder,
		ReportsFolder: reportsFolder,
		Accounts:      []string{"Cash", "Bank"},
		Categories:    []string{"Food", "Transport", "Household", "Wages", "Other"},
	}

	v, err := vault.NewLocal(cfg.VaultPath)
	if err != nil {
		return err
	}
	if err := v.EnsureFolder(ctx, cfg.LedgerFolder); err != nil {
		return err
	}
	if err := v.EnsureFolder(ctx, cfg.ReportsFolder); err != nil {
		return err
	}

	path, err := configPath()
	if err != nil {
		return err
	}
	if err := cfg.Save(viper.GetViper(), path); err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Vault ready at %s, config saved to %s", v.Root(), path)))
	return nil
}
