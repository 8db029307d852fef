package quotes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/magnias/quotedesk/internal/config"
	"github.com/magnias/quotedesk/internal/domain/models"
	"github.com/magnias/quotedesk/internal/ledger"
	"github.com/magnias/quotedesk/internal/repository/mongodb"
	"github.com/magnias/quotedesk/internal/repository/sheets"
)

// ErrUnknownCurrency indicates the submission names a ledger we do not keep.
var ErrUnknownCurrency = errors.New("unknown currency ledger")

// Binding ties a currency to its ledger table and layout generation.
type Binding struct {
	Table  string
	Schema ledger.Schema
}

// Service merges quote submissions into the per-currency ledgers and records
// an audit trail. Each submission re-reads its table before planning, so the
// slot decision is never older than the operation; concurrent submitters can
// still race to the same slot and the last write wins.
type Service struct {
	store   sheets.RowStore
	audit   mongodb.Repository
	ledgers map[models.Currency]Binding
	logger  *zap.Logger
	now     func() time.Time
}

// NewService wires a quote service over the row store and audit repository.
func NewService(store sheets.RowStore, audit mongodb.Repository, lc *config.LedgerConfig, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	ledgers := make(map[models.Currency]Binding, len(lc.Ledgers))
	for currency, entry := range lc.Ledgers {
		ledgers[models.Currency(currency)] = Binding{
			Table:  entry.Table,
			Schema: ledger.NewSchema(entry),
		}
	}

	return &Service{
		store:   store,
		audit:   audit,
		ledgers: ledgers,
		logger:  logger,
		now:     time.Now,
	}
}

// Binding exposes the ledger binding for a currency.
func (s *Service) Binding(currency models.Currency) (Binding, bool) {
	b, ok := s.ledgers[currency]
	return b, ok
}

// AddQuote merges one submission: fresh snapshot, merge plan, then either
// single-cell writes into the next open slot or one appended row. A failure
// after some cells were written leaves the slot partially filled; the store
// has no transactions, so that state is surfaced, not rolled back.
func (s *Service) AddQuote(ctx context.Context, user string, sub models.QuoteSubmission) (models.QuoteResult, error) {
	binding, ok := s.ledgers[sub.Currency]
	if !ok {
		return models.QuoteResult{}, fmt.Errorf("%w: %s", ErrUnknownCurrency, sub.Currency)
	}

	if _, err := ledger.ParseQuoteDate(sub.QuoteDate); err != nil {
		return models.QuoteResult{}, err
	}

	snap, err := s.store.ReadTable(ctx, binding.Table)
	if err != nil {
		return models.QuoteResult{}, fmt.Errorf("load ledger %s: %w", binding.Table, err)
	}

	plan, err := ledger.PlanMerge(snap, binding.Schema, sub)
	if err != nil {
		s.recordAudit(ctx, user, sub, models.SubmissionRecord{
			Outcome:       models.OutcomeRejected,
			FailureReason: err.Error(),
		})
		return models.QuoteResult{}, err
	}

	result := models.QuoteResult{
		SubmissionID:   uuid.NewString(),
		SlotIndex:      plan.SlotIndex,
		FormattedPrice: plan.FormattedPrice,
		Candidates:     plan.Candidates,
	}

	switch plan.Kind {
	case ledger.PlanAppend:
		if err := s.store.AppendRow(ctx, binding.Table, plan.RowValues); err != nil {
			werr := &ledger.WriteError{Table: binding.Table, CellsPlanned: len(plan.RowValues), Err: err}
			s.recordAudit(ctx, user, sub, models.SubmissionRecord{
				Outcome:       models.OutcomeRejected,
				FailureReason: werr.Error(),
			})
			return models.QuoteResult{}, werr
		}
		result.Created = true
		result.Message = "New product quote record created"
		s.recordAudit(ctx, user, sub, models.SubmissionRecord{
			ID:             result.SubmissionID,
			SlotIndex:      1,
			FormattedPrice: plan.FormattedPrice,
			Outcome:        models.OutcomeRowCreated,
		})

	case ledger.PlanUpdate:
		for i, w := range plan.Writes {
			if err := s.store.UpdateCell(ctx, binding.Table, w.Row, w.Column, w.Value); err != nil {
				werr := &ledger.WriteError{
					Table:        binding.Table,
					CellsWritten: i,
					CellsPlanned: len(plan.Writes),
					Err:          err,
				}
				s.recordAudit(ctx, user, sub, models.SubmissionRecord{
					SlotIndex:     plan.SlotIndex,
					Outcome:       models.OutcomeRejected,
					FailureReason: werr.Error(),
				})
				return models.QuoteResult{}, werr
			}
		}
		result.Message = fmt.Sprintf("Quote added to existing product record in DC-%d", plan.SlotIndex)
		s.recordAudit(ctx, user, sub, models.SubmissionRecord{
			ID:             result.SubmissionID,
			SlotIndex:      plan.SlotIndex,
			FormattedPrice: plan.FormattedPrice,
			Outcome:        models.OutcomeSlotFilled,
		})
	}

	if plan.Candidates > 1 {
		s.logger.Warn("ambiguous ledger match, first row used",
			zap.String("category", sub.Category),
			zap.String("product", sub.ProductName),
			zap.Int("candidates", plan.Candidates))
	}

	return result, nil
}

// LatestQuotes returns the occupied slots of the ledger row matching the
// search pair, newest table state first-hand. Returns ledger.ErrNoMatch when
// no row matches.
func (s *Service) LatestQuotes(ctx context.Context, currency models.Currency, category, productName string) (models.QuoteLedgerRow, error) {
	binding, ok := s.ledgers[currency]
	if !ok {
		return models.QuoteLedgerRow{}, fmt.Errorf("%w: %s", ErrUnknownCurrency, currency)
	}

	snap, err := s.store.ReadTable(ctx, binding.Table)
	if err != nil {
		return models.QuoteLedgerRow{}, fmt.Errorf("load ledger %s: %w", binding.Table, err)
	}

	match, err := ledger.Locate(snap, category, productName)
	if err != nil {
		return models.QuoteLedgerRow{}, err
	}

	row := ledger.DecodeRow(snap, match.RowIndex, binding.Schema)

	occupied := row.Slots[:0]
	for _, slot := range row.Slots {
		if slot.Occupied() {
			occupied = append(occupied, slot)
		}
	}
	row.Slots = occupied

	return row, nil
}

// RecentSubmissions proxies the audit trail for the dashboard's history view.
func (s *Service) RecentSubmissions(ctx context.Context, limit int64) ([]models.SubmissionRecord, error) {
	if s.audit == nil {
		return nil, nil
	}
	return s.audit.RecentSubmissions(ctx, limit)
}

func (s *Service) recordAudit(ctx context.Context, user string, sub models.QuoteSubmission, partial models.SubmissionRecord) {
	if s.audit == nil {
		return
	}

	record := partial
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	record.User = user
	record.Currency = sub.Currency
	record.Category = sub.Category
	record.ProductName = sub.ProductName
	record.EndCustomer = sub.EndCustomer
	record.Distributor = sub.Distributor
	record.QuoteDate = sub.QuoteDate
	record.CreatedAt = s.now()

	if err := s.audit.SaveSubmission(ctx, record); err != nil {
		s.logger.Error("failed to record submission audit", zap.Error(err))
	}
}
