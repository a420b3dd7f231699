package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ledgermark/ledgermark/internal/common"
	"github.com/ledgermark/ledgermark/internal/model"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Exporter pushes report rows to a Google Sheets spreadsheet.
type Exporter struct {
	service *sheets.Service
	config  Config
}

// NewExporter creates an exporter, authenticating with either a service
// account key file or OAuth2 refresh-token credentials.
func NewExporter(ctx context.Context, config Config) (*Exporter, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sheets config: %w", err)
	}

	service, err := createService(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &Exporter{service: service, config: config}, nil
}

// Export writes the rows to the configured spreadsheet, creating it when no
// spreadsheet ID is configured. The target sheet is cleared first; the write
// retries transient API failures.
func (e *Exporter) Export(ctx context.Context, title string, txs []model.Transaction, accounts []string) error {
	spreadsheetID, err := e.getOrCreateSpreadsheet(ctx)
	if err != nil {
		return fmt.Errorf("failed to get spreadsheet: %w", err)
	}

	clearRange := fmt.Sprintf("%s!A:Z", e.config.SheetName)
	if _, err := e.service.Spreadsheets.Values.Clear(spreadsheetID, clearRange, &sheets.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to clear sheet: %w", err)
	}

	rows := BuildRows(title, txs, accounts)
	valueRange := &sheets.ValueRange{Values: rows}
	writeRange := fmt.Sprintf("%s!A1", e.config.SheetName)

	retryOpts := common.RetryOptions{
		MaxAttempts:  e.config.RetryAttempts,
		InitialDelay: e.config.RetryDelay,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}
	err = common.WithRetry(ctx, func() error {
		_, writeErr := e.service.Spreadsheets.Values.
			Update(spreadsheetID, writeRange, valueRange).
			ValueInputOption("USER_ENTERED").
			Context(ctx).
			Do()
		return writeErr
	}, retryOpts)
	if err != nil {
		return fmt.Errorf("failed to write report rows: %w", err)
	}

	slog.Info("Exported report to Google Sheets",
		"spreadsheet_id", spreadsheetID,
		"rows", len(rows))
	return nil
}

func createService(ctx context.Context, config Config) (*sheets.Service, error) {
	var tokenSource oauth2.TokenSource

	if config.ServiceAccountPath != "" {
		jsonKey, err := os.ReadFile(config.ServiceAccountPath)
		if err != nil {
			return nil, fmt.Errorf("unable to read service account key file: %w", err)
		}
		jwtConfig, err := google.JWTConfigFromJSON(jsonKey, sheets.SpreadsheetsScope)
		if err != nil {
			return nil, fmt.Errorf("unable to parse service account key: %w", err)
		}
		tokenSource = jwtConfig.TokenSource(ctx)
	} else {
		oauthConfig := &oauth2.Config{
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{sheets.SpreadsheetsScope},
		}
		token := &oauth2.Token{
			RefreshToken: config.RefreshToken,
			TokenType:    "Bearer",
		}
		tokenSource = oauthConfig.TokenSource(ctx, token)
	}

	httpClient := oauth2.NewClient(ctx, tokenSource)
	srv, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets service: %w", err)
	}
	return srv, nil
}

func (e *Exporter) getOrCreateSpreadsheet(ctx context.Context) (string, error) {
	if e.config.SpreadsheetID != "" {
		if _, err := e.service.Spreadsheets.Get(e.config.SpreadsheetID).Context(ctx).Do(); err != nil {
			return "", fmt.Errorf("unable to access spreadsheet %s: %w", e.config.SpreadsheetID, err)
		}
		return e.config.SpreadsheetID, nil
	}

	spreadsheet := &sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{Title: e.config.SpreadsheetName},
		Sheets: []*sheets.Sheet{
			{Properties: &sheets.SheetProperties{Title: e.config.SheetName}},
		},
	}
	created, err := e.service.Spreadsheets.Create(spreadsheet).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("unable to create spreadsheet: %w", err)
	}

	slog.Info("Created spreadsheet",
		"spreadsheet_id", created.SpreadsheetId,
		"name", e.config.SpreadsheetName)
	return created.SpreadsheetId, nil
}
