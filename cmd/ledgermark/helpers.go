package main

import (
	"fmt"
	"os"

	"github.com/ledgermark/ledgermark/internal/cli"
	"github.com/ledgermark/ledgermark/internal/config"
	"github.com/ledgermark/ledgermark/internal/ledger"
	"github.com/ledgermark/ledgermark/internal/tui"
	"github.com/ledgermark/ledgermark/internal/vault"
	"github.com/spf13/viper"
)

// loadConfig builds the settings struct from the active viper state and
// checks the fields every command needs.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openVault opens the configured local vault.
func openVault(cfg *config.Config) (*vault.Local, error) {
	v, err := vault.NewLocal(cfg.VaultPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open vault at %s: %w", cfg.VaultPath, err)
	}
	return v, nil
}

// newService assembles the ledger service with the chosen prompter.
func newService(cfg *config.Config, v vault.Vault, useTUI bool) *ledger.Service {
	var prompter ledger.Prompter
	if useTUI {
		prompter = tui.NewPrompter()
	} else {
		prompter = cli.NewPrompter(os.Stdin, os.Stdout)
	}
	return ledger.NewService(v, cfg, prompter, cli.NewNotifier(os.Stdout))
}

// configPath returns the file the settings are saved to: the file viper
// loaded, or the default location for a fresh setup.
func configPath() (string, error) {
	if used := viper.ConfigFileUsed(); used != "" {
		return used, nil
	}
	return config.DefaultPath()
}
