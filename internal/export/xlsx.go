package export

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/magnias/quotedesk/internal/config"
	"github.com/magnias/quotedesk/internal/domain/models"
	"github.com/magnias/quotedesk/internal/repository/sheets"
)

// Service renders ledger tables as downloadable .xlsx workbooks.
type Service struct {
	store  sheets.RowStore
	tables map[models.Currency]string
	logger *zap.Logger
}

// NewService wires an export service over the configured ledgers.
func NewService(store sheets.RowStore, lc *config.LedgerConfig, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	tables := make(map[models.Currency]string, len(lc.Ledgers))
	for currency, entry := range lc.Ledgers {
		tables[models.Currency(currency)] = entry.Table
	}

	return &Service{store: store, tables: tables, logger: logger}
}

// Ledger exports one currency ledger as an xlsx workbook with a single sheet
// named after the backing table. Prices stay the display strings the ledger
// stores.
func (s *Service) Ledger(ctx context.Context, currency models.Currency) ([]byte, string, error) {
	table, ok := s.tables[currency]
	if !ok {
		return nil, "", fmt.Errorf("no ledger configured for currency %s", currency)
	}

	snap, err := s.store.ReadTable(ctx, table)
	if err != nil {
		return nil, "", fmt.Errorf("load ledger %s: %w", table, err)
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("failed to close workbook", zap.Error(err))
		}
	}()

	if err := f.SetSheetName("Sheet1", table); err != nil {
		return nil, "", fmt.Errorf("rename sheet: %w", err)
	}

	writeRow := func(rowNum int, cells []string) error {
		for col, value := range cells {
			cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
			if err != nil {
				return err
			}
			if err := f.SetCellStr(table, cell, value); err != nil {
				return err
			}
		}
		return nil
	}

	if err := writeRow(1, snap.Headers); err != nil {
		return nil, "", fmt.Errorf("write header row: %w", err)
	}
	for i, row := range snap.Rows {
		if err := writeRow(i+2, row); err != nil {
			return nil, "", fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("serialize workbook: %w", err)
	}

	s.logger.Info("ledger exported", zap.String("table", table), zap.Int("rows", len(snap.Rows)))
	return buf.Bytes(), fmt.Sprintf("%s.xlsx", table), nil
}
