// Package config holds the persisted settings of the ledger: where the vault
// lives, which folder holds the notes, and the configured account and
// category names.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/viper"
)

// Defaults applied when the config file does not set a value.
const (
	DefaultLedgerFolder  = "Ledger"
	DefaultReportsFolder = "Reports"
)

// Config is the explicit settings struct passed to the core components.
// Mutations happen in memory and are persisted with a single Save call.
type Config struct {
	VaultPath     string   `mapstructure:"vault_path"`
	LedgerFolder  string   `mapstructure:"ledger_folder"`
	ReportsFolder string   `mapstructure:"reports_folder"`
	Accounts      []string `mapstructure:"accounts"`
	Categories    []string `mapstructure:"categories"`
}

// Load builds a Config from the given viper instance, applying defaults for
// unset fields and expanding ~ and environment variables in the vault path.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.VaultPath = ExpandPath(cfg.VaultPath)
	if cfg.LedgerFolder == "" {
		cfg.LedgerFolder = DefaultLedgerFolder
	}
	if cfg.ReportsFolder == "" {
		cfg.ReportsFolder = DefaultReportsFolder
	}
	return &cfg, nil
}

// Validate checks the fields every command needs.
func (c *Config) Validate() error {
	if c.VaultPath == "" {
		return fmt.Errorf("vault_path is not configured; run 'ledgermark init' or set it in the config file")
	}
	return nil
}

// HasAccount reports whether name is one of the configured accounts.
func (c *Config) HasAccount(name string) bool {
	return slices.Contains(c.Accounts, name)
}

// HasCategory reports whether name is one of the configured categories.
func (c *Config) HasCategory(name string) bool {
	return slices.Contains(c.Categories, name)
}

// AddAccount appends a new account name, keeping configuration order.
// Duplicates are rejected.
func (c *Config) AddAccount(name string) error {
	if c.HasAccount(name) {
		return fmt.Errorf("account %q already exists", name)
	}
	c.Accounts = append(c.Accounts, name)
	return nil
}

// AddCategory appends a new category name, keeping configuration order.
// Duplicates are rejected.
func (c *Config) AddCategory(name string) error {
	if c.HasCategory(name) {
		return fmt.Errorf("category %q already exists", name)
	}
	c.Categories = append(c.Categories, name)
	return nil
}

// Save writes the config to path as yaml, creating parent directories as
// needed. This is the single explicit persistence point for settings
// mutations.
func (c *Config) Save(v *viper.Viper, path string) error {
	if path == "" {
		return fmt.Errorf("config path must not be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v.Set("vault_path", c.VaultPath)
	v.Set("ledger_folder", c.LedgerFolder)
	v.Set("reports_folder", c.ReportsFolder)
	v.Set("accounts", c.Accounts)
	v.Set("categories", c.Categories)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// DefaultPath returns the standard config file location,
// $HOME/.config/ledgermark/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "ledgermark", "config.yaml"), nil
}
