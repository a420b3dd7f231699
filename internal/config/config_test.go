package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViper(t *testing.T, yaml string) *viper.Viper {
	t.Helper()
	v := viper.New()
	v.SetConfigType("yaml")
	if yaml != "" {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
		v.SetConfigFile(path)
		require.NoError(t, v.ReadInConfig())
	}
	return v
}

func TestLoadAppliesDefaults(t *testing.T) {
	v := newTestViper(t, "vault_path: /tmp/vault\n")

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/vault", cfg.VaultPath)
	assert.Equal(t, DefaultLedgerFolder, cfg.LedgerFolder)
	assert.Equal(t, DefaultReportsFolder, cfg.ReportsFolder)
	assert.Empty(t, cfg.Accounts)
}

func TestLoadReadsLists(t *testing.T) {
	v := newTestViper(t, `
vault_path: /tmp/vault
ledger_folder: Money
accounts:
  - Cash
  - Bank
categories:
  - Food
  - Transport
`)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "Money", cfg.LedgerFolder)
	assert.Equal(t, []string{"Cash", "Bank"}, cfg.Accounts, "account order is configuration order")
	assert.Equal(t, []string{"Food", "Transport"}, cfg.Categories)
}

func TestLoadExpandsVaultPath(t *testing.T) {
	t.Setenv("LEDGERMARK_TEST_DIR", "/srv/notes")
	v := newTestViper(t, "vault_path: $LEDGERMARK_TEST_DIR/vault\n")

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "/srv/notes/vault", cfg.VaultPath)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.Validate())

	cfg.VaultPath = "/tmp/vault"
	assert.NoError(t, cfg.Validate())
}

func TestAddAccountRejectsDuplicates(t *testing.T) {
	cfg := &Config{Accounts: []string{"Cash"}}

	require.NoError(t, cfg.AddAccount("Bank"))
	assert.Equal(t, []string{"Cash", "Bank"}, cfg.Accounts)

	assert.Error(t, cfg.AddAccount("Cash"))
}

func TestAddCategoryRejectsDuplicates(t *testing.T) {
	cfg := &Config{Categories: []string{"Food"}}

	require.NoError(t, cfg.AddCategory("Transport"))
	assert.Error(t, cfg.AddCategory("Food"))
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := &Config{
		VaultPath:     "/tmp/vault",
		LedgerFolder:  "Ledger",
		ReportsFolder: "Reports",
		Accounts:      []string{"Cash", "Bank"},
		Categories:    []string{"Food"},
	}

	require.NoError(t, cfg.Save(viper.New(), path))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	loaded, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSaveRejectsEmptyPath(t *testing.T) {
	cfg := &Config{VaultPath: "/tmp/vault"}
	assert.Error(t, cfg.Save(viper.New(), ""))
}
