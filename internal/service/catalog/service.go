package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/magnias/quotedesk/internal/config"
	"github.com/magnias/quotedesk/internal/domain/models"
	"github.com/magnias/quotedesk/internal/ledger"
	"github.com/magnias/quotedesk/internal/repository/sheets"
)

// ErrUnknownCategory indicates a category outside the configured list.
var ErrUnknownCategory = errors.New("unknown product category")

type cachedTable struct {
	snap        ledger.Snapshot
	refreshedAt time.Time
}

// Service serves the browsable product tables. Snapshots are cached per
// category and refreshed on demand, on writes, and on the cron schedule; the
// cache is presentation state only and is never consulted by the merge logic.
type Service struct {
	store      sheets.RowStore
	categories []config.CategoryEntry
	byName     map[string]config.CategoryEntry
	logger     *zap.Logger
	now        func() time.Time

	mu    sync.RWMutex
	cache map[string]cachedTable
}

// NewService wires a catalog service over the configured category tables.
func NewService(store sheets.RowStore, catalog config.CatalogConfig, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	byName := make(map[string]config.CategoryEntry, len(catalog.Categories))
	for _, cat := range catalog.Categories {
		byName[cat.Name] = cat
	}

	return &Service{
		store:      store,
		categories: catalog.Categories,
		byName:     byName,
		logger:     logger,
		now:        time.Now,
		cache:      make(map[string]cachedTable),
	}
}

// Categories lists the configured category names in declaration order.
func (s *Service) Categories() []string {
	names := make([]string, len(s.categories))
	for i, cat := range s.categories {
		names[i] = cat.Name
	}
	return names
}

// Listing returns the cached rows of a category, optionally filtered by a
// case-insensitive substring search against the category's search column.
func (s *Service) Listing(ctx context.Context, category, search string) (models.CategoryListing, error) {
	entry, ok := s.byName[category]
	if !ok {
		return models.CategoryListing{}, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}

	cached, err := s.snapshot(ctx, entry)
	if err != nil {
		return models.CategoryListing{}, err
	}

	listing := models.CategoryListing{
		Category:    category,
		Headers:     cached.snap.Headers,
		RefreshedAt: cached.refreshedAt.Format(time.RFC3339),
	}

	searchIdx := -1
	if search != "" {
		if idx, ok := cached.snap.ColumnIndex(entry.SearchColumn); ok {
			searchIdx = idx
		} else {
			return models.CategoryListing{}, &ledger.ColumnError{Column: entry.SearchColumn}
		}
	}

	needle := strings.ToLower(strings.TrimSpace(search))
	for i := range cached.snap.Rows {
		if searchIdx >= 0 {
			value := strings.ToLower(cached.snap.Cell(i, searchIdx))
			if !strings.Contains(value, needle) {
				continue
			}
		}
		listing.Rows = append(listing.Rows, rowToProduct(cached.snap, i))
	}

	return listing, nil
}

// AddProduct appends a product record to its category table. Field keys must
// name existing headers; cells without a value stay empty strings. The cached
// snapshot is invalidated so the next read sees the new row.
func (s *Service) AddProduct(ctx context.Context, req models.NewProductRequest) error {
	entry, ok := s.byName[req.Category]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCategory, req.Category)
	}

	snap, err := s.store.ReadTable(ctx, entry.Table)
	if err != nil {
		return fmt.Errorf("load category %s: %w", req.Category, err)
	}
	if len(snap.Headers) == 0 {
		return fmt.Errorf("category table %s has no headers", entry.Table)
	}

	values := make([]string, len(snap.Headers))
	for field, value := range req.Fields {
		idx, ok := snap.ColumnIndex(field)
		if !ok {
			return &ledger.ColumnError{Column: field}
		}
		values[idx] = value
	}

	if err := s.store.AppendRow(ctx, entry.Table, values); err != nil {
		return fmt.Errorf("append product to %s: %w", entry.Table, err)
	}

	s.invalidate(req.Category)
	s.logger.Info("product appended", zap.String("category", req.Category))
	return nil
}

// Refresh reloads one category snapshot from the store.
func (s *Service) Refresh(ctx context.Context, category string) error {
	entry, ok := s.byName[category]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}
	_, err := s.load(ctx, entry)
	return err
}

// RefreshAll reloads every category snapshot, keeping going past individual
// failures.
func (s *Service) RefreshAll(ctx context.Context) {
	for _, entry := range s.categories {
		if _, err := s.load(ctx, entry); err != nil {
			s.logger.Error("failed to refresh category", zap.String("category", entry.Name), zap.Error(err))
		}
	}
}

func (s *Service) snapshot(ctx context.Context, entry config.CategoryEntry) (cachedTable, error) {
	s.mu.RLock()
	cached, ok := s.cache[entry.Name]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}
	return s.load(ctx, entry)
}

func (s *Service) load(ctx context.Context, entry config.CategoryEntry) (cachedTable, error) {
	snap, err := s.store.ReadTable(ctx, entry.Table)
	if err != nil {
		return cachedTable{}, fmt.Errorf("load category %s: %w", entry.Name, err)
	}

	cached := cachedTable{snap: snap, refreshedAt: s.now()}
	s.mu.Lock()
	s.cache[entry.Name] = cached
	s.mu.Unlock()
	return cached, nil
}

func (s *Service) invalidate(category string) {
	s.mu.Lock()
	delete(s.cache, category)
	s.mu.Unlock()
}

func rowToProduct(snap ledger.Snapshot, rowIndex int) models.ProductRow {
	row := make(models.ProductRow, len(snap.Headers))
	for col, header := range snap.Headers {
		if value := snap.Cell(rowIndex, col); value != "" {
			row[header] = value
		}
	}
	return row
}
