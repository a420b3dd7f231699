package main

import (
	"fmt"

	"github.com/ledgermark/ledgermark/internal/cli"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the configured categories",
		RunE:  runCategoriesList,
	}

	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category to the configuration",
		Args:  cobra.ExactArgs(1),
		RunE:  runCategoriesAdd,
	}
	cmd.AddCommand(addCmd)

	return cmd
}

func runCategoriesList(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if len(cfg.Categories) == 0 {
		fmt.Println("No categories configured. Add one with 'ledgermark categories add <name>'.")
		return nil
	}

	fmt.Println(cli.FormatTitle("Categories"))
	for i, name := range cfg.Categories {
		fmt.Printf("  %d. %s\n", i+1, name)
	}
	return nil
}

func runCategoriesAdd(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := cfg.AddCategory(args[0]); err != nil {
		return err
	}

	path, err := configPath()
	if err != nil {
		return err
	}
	if err := cfg.Save(viper.GetViper(), path); err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess("Added category: " + args[0]))
	return nil
}
