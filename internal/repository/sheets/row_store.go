package sheets

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/magnias/quotedesk/internal/config"
	"github.com/magnias/quotedesk/internal/ledger"
)

// RowStore defines the tabular persistence operations the dashboard needs from
// the spreadsheet backend: read a whole table, append one positional row, or
// write one cell. Row and column numbers are 1-based and physical row 1 holds
// the headers.
type RowStore interface {
	ReadTable(ctx context.Context, table string) (ledger.Snapshot, error)
	AppendRow(ctx context.Context, table string, values []string) error
	UpdateCell(ctx context.Context, table string, row, column int, value string) error
}

// GoogleSheetStore implements RowStore using the official Google Sheets API.
type GoogleSheetStore struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewGoogleSheetStore builds a Google Sheets backed row store instance.
func NewGoogleSheetStore(ctx context.Context, cfg config.Sheets, logger *zap.Logger) (RowStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetStore{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// ReadTable fetches every populated row of the named table. The first row
// becomes the snapshot's header list; the rest become data rows.
func (s *GoogleSheetStore) ReadTable(ctx context.Context, table string) (ledger.Snapshot, error) {
	if table == "" {
		return ledger.Snapshot{}, fmt.Errorf("table must not be empty")
	}

	resp, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, table).Context(ctx).Do()
	if err != nil {
		return ledger.Snapshot{}, fmt.Errorf("read table %s: %w", table, err)
	}

	snap := ledger.Snapshot{}
	for i, row := range resp.Values {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = strings.TrimSpace(fmt.Sprint(v))
		}
		if i == 0 {
			snap.Headers = cells
			continue
		}
		snap.Rows = append(snap.Rows, cells)
	}

	s.logger.Debug("table read", zap.String("table", table), zap.Int("rows", len(snap.Rows)))
	return snap, nil
}

// AppendRow appends one row of positional values to the named table.
func (s *GoogleSheetStore) AppendRow(ctx context.Context, table string, values []string) error {
	if table == "" {
		return fmt.Errorf("table must not be empty")
	}

	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	payload := &sheetsapi.ValueRange{Values: [][]interface{}{row}}

	call := s.service.Spreadsheets.Values.Append(s.spreadsheetID, table, payload).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append row into table %s: %w", table, err)
	}

	s.logger.Debug("row appended", zap.String("table", table))
	return nil
}

// UpdateCell writes a single cell at the given 1-based physical position.
func (s *GoogleSheetStore) UpdateCell(ctx context.Context, table string, row, column int, value string) error {
	if table == "" {
		return fmt.Errorf("table must not be empty")
	}
	if row < 1 || column < 1 {
		return fmt.Errorf("cell position %d,%d out of range", row, column)
	}

	cellRange := fmt.Sprintf("%s!%s%d", table, columnLetter(column), row)
	payload := &sheetsapi.ValueRange{Values: [][]interface{}{{value}}}

	call := s.service.Spreadsheets.Values.Update(s.spreadsheetID, cellRange, payload).
		ValueInputOption("RAW").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("update cell %s: %w", cellRange, err)
	}

	s.logger.Debug("cell updated", zap.String("range", cellRange))
	return nil
}

// columnLetter converts a 1-based column number to its A1-notation letters.
func columnLetter(column int) string {
	var letters []byte
	for column > 0 {
		column--
		letters = append([]byte{byte('A' + column%26)}, letters...)
		column /= 26
	}
	return string(letters)
}
