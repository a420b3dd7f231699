package main

import (
	"fmt"

	"github.com/ledgermark/ledgermark/internal/cli"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List the configured accounts",
		Long: `List the account names reports group by. The order shown here is the
order of the report sections.`,
		RunE: runAccountsList,
	}

	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an account to the configuration",
		Args:  cobra.ExactArgs(1),
		RunE:  runAccountsAdd,
	}
	cmd.AddCommand(addCmd)

	return cmd
}

func runAccountsList(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if len(cfg.Accounts) == 0 {
		fmt.Println("No accounts configured. Add one with 'ledgermark accounts add <name>'.")
		return nil
	}

	fmt.Println(cli.FormatTitle("Accounts"))
	for i, name := range cfg.Accounts {
		fmt.Printf("  %d. %s\n", i+1, name)
	}
	return nil
}

func runAccountsAdd(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := cfg.AddAccount(args[0]); err != nil {
		return err
	}

	path, err := configPath()
	if err != nil {
		return err
	}
	if err := cfg.Save(viper.GetViper(), path); err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess("Added account: " + args[0]))
	return nil
}
