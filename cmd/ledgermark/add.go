package main

import (
	"github.com/ledgermark/ledgermark/internal/model"
	"github.com/spf13/cobra"
)

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <expense|income>",
		Short: "Log a transaction as a new note",
		Long: `Log a single expense or income transaction. The four fields (amount,
description, account, category) are collected interactively; the entry is
written as an immutable note named after the creation instant.

Examples:
  ledgermark add expense
  ledgermark add income --tui`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"expense", "income"},
		RunE:      runAdd,
	}

	cmd.Flags().Bool("tui", false, "use the full-screen form instead of line prompts")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	kind, err := model.ParseKind(args[0])
	if err != nil {
		return err
	}
	useTUI, _ := cmd.Flags().GetBool("tui")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	v, err := openVault(cfg)
	if err != nil {
		return err
	}

	return newService(cfg, v, useTUI).AddTransaction(cmd.Context(), kind)
}
