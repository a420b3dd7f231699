// Package sheets exports rendered ledger reports to a Google Sheets
// spreadsheet.
package sheets

import (
	"fmt"
	"time"
)

// Config holds the credentials and target of the sheets exporter.
type Config struct {
	ClientID           string
	ClientSecret       string
	RefreshToken       string
	ServiceAccountPath string
	SpreadsheetID      string
	SpreadsheetName    string
	SheetName          string
	RetryAttempts      int
	RetryDelay         time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		SpreadsheetName: "Ledger Report",
		SheetName:       "Report",
		RetryAttempts:   3,
		RetryDelay:      time.Second,
	}
}

// Validate checks that one authentication method is fully configured.
func (c Config) Validate() error {
	if c.ServiceAccountPath == "" && (c.ClientID == "" || c.ClientSecret == "" || c.RefreshToken == "") {
		return fmt.Errorf("missing Google Sheets authentication: provide either a service account path or OAuth2 client credentials with a refresh token")
	}
	return nil
}
