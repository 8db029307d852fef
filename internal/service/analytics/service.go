package analytics

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/magnias/quotedesk/internal/config"
	"github.com/magnias/quotedesk/internal/domain/models"
	"github.com/magnias/quotedesk/internal/ledger"
	"github.com/magnias/quotedesk/internal/repository/sheets"
	"github.com/magnias/quotedesk/pkg/clients/fxrates"
)

const monthLayout = "2006-01"

type binding struct {
	table  string
	schema ledger.Schema
}

// Service exposes quoting-activity aggregates for the dashboard charts.
type Service struct {
	store   sheets.RowStore
	fx      fxrates.Client
	ledgers map[models.Currency]binding
	logger  *zap.Logger
}

// NewService wires a new analytics service instance. The fx client may be nil
// when no conversion endpoint is configured.
func NewService(store sheets.RowStore, fx fxrates.Client, lc *config.LedgerConfig, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	ledgers := make(map[models.Currency]binding, len(lc.Ledgers))
	for currency, entry := range lc.Ledgers {
		ledgers[models.Currency(currency)] = binding{
			table:  entry.Table,
			schema: ledger.NewSchema(entry),
		}
	}

	return &Service{store: store, fx: fx, ledgers: ledgers, logger: logger}
}

// Activity aggregates one currency ledger into monthly quote counts and price
// statistics. Prices that fail to parse and dates in no accepted format are
// skipped, not fatal. When convertInto names a different supported currency
// and an fx client is wired, the summed quote volume is also converted.
func (s *Service) Activity(ctx context.Context, currency, convertInto models.Currency) (models.ActivityReport, error) {
	b, ok := s.ledgers[currency]
	if !ok {
		return models.ActivityReport{}, fmt.Errorf("no ledger configured for currency %s", currency)
	}

	snap, err := s.store.ReadTable(ctx, b.table)
	if err != nil {
		return models.ActivityReport{}, fmt.Errorf("load ledger %s: %w", b.table, err)
	}

	report := models.ActivityReport{
		Currency:      currency,
		TotalProducts: len(snap.Rows),
	}

	type bucket struct {
		count    int
		sum      float64
		min, max float64
	}
	buckets := make(map[string]*bucket)
	var volume float64

	for i := range snap.Rows {
		row := ledger.DecodeRow(snap, i, b.schema)
		for _, slot := range row.Slots {
			if !slot.Occupied() {
				continue
			}

			price, err := ledger.ParsePrice(slot.Price)
			if err != nil {
				report.SkippedPrices++
				s.logger.Debug("skip slot with unparseable price",
					zap.String("product", row.ProductName),
					zap.Int("slot", slot.Index),
					zap.String("value", slot.Price))
				continue
			}

			report.TotalQuotes++
			volume += price

			date, err := ledger.ParseQuoteDate(slot.QuoteDate)
			if err != nil {
				s.logger.Debug("skip slot with unparseable date",
					zap.String("product", row.ProductName),
					zap.Int("slot", slot.Index),
					zap.String("value", slot.QuoteDate))
				continue
			}

			month := date.Format(monthLayout)
			mb, ok := buckets[month]
			if !ok {
				mb = &bucket{min: price, max: price}
				buckets[month] = mb
			}
			mb.count++
			mb.sum += price
			if price < mb.min {
				mb.min = price
			}
			if price > mb.max {
				mb.max = price
			}
		}
	}

	months := make([]string, 0, len(buckets))
	for month := range buckets {
		months = append(months, month)
	}
	sort.Strings(months)

	for _, month := range months {
		mb := buckets[month]
		report.Months = append(report.Months, models.MonthlyActivity{
			Month:        month,
			Quotes:       mb.count,
			AveragePrice: mb.sum / float64(mb.count),
			MinPrice:     mb.min,
			MaxPrice:     mb.max,
		})
	}

	if convertInto != "" && convertInto != currency && s.fx != nil {
		rate, err := s.fx.Rate(ctx, string(currency), string(convertInto))
		if err != nil {
			s.logger.Warn("fx conversion unavailable", zap.Error(err))
		} else {
			report.ConvertedTotal = volume * rate
			report.ConvertedInto = convertInto
		}
	}

	return report, nil
}
