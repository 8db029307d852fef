package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/magnias/quotedesk/internal/domain/models"
	"github.com/magnias/quotedesk/internal/ledger"
	"github.com/magnias/quotedesk/internal/service/quotes"
)

// QuoteHandler serves quote submission and quote history lookups.
type QuoteHandler struct {
	svc    *quotes.Service
	logger *zap.Logger
}

// NewQuoteHandler constructs the quote HTTP adapter.
func NewQuoteHandler(svc *quotes.Service, logger *zap.Logger) *QuoteHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuoteHandler{svc: svc, logger: logger}
}

// Submit merges one quote into its currency ledger.
func (h *QuoteHandler) Submit(c *gin.Context) {
	var sub models.QuoteSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quote payload"})
		return
	}

	result, err := h.svc.AddQuote(c.Request.Context(), c.GetString("user"), sub)
	if err != nil {
		h.renderQuoteError(c, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, result)
}

// Latest returns the occupied quote slots for a searched product.
func (h *QuoteHandler) Latest(c *gin.Context) {
	currency := models.Currency(c.Query("currency"))
	category := c.Query("category")
	product := c.Query("product")

	if !currency.Valid() || category == "" || product == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "currency, category and product are required"})
		return
	}

	row, err := h.svc.LatestQuotes(c.Request.Context(), currency, category, product)
	if err != nil {
		if errors.Is(err, ledger.ErrNoMatch) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no quotes found for this product"})
			return
		}
		h.logger.Error("failed loading latest quotes", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to load quotes"})
		return
	}

	c.JSON(http.StatusOK, row)
}

// History returns recent submission audit entries.
func (h *QuoteHandler) History(c *gin.Context) {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	if err != nil || limit < 1 || limit > 500 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 500"})
		return
	}

	records, err := h.svc.RecentSubmissions(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("failed loading submission history", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to load history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"submissions": records})
}

// renderQuoteError maps the merge error taxonomy onto HTTP responses. User
// mistakes come back 4xx and retryable; store failures surface verbatim.
func (h *QuoteHandler) renderQuoteError(c *gin.Context, err error) {
	var (
		capacityErr *ledger.CapacityError
		columnErr   *ledger.ColumnError
		formatErr   *ledger.FormatError
		writeErr    *ledger.WriteError
	)

	switch {
	case errors.As(err, &capacityErr):
		c.JSON(http.StatusConflict, gin.H{"error": capacityErr.Error()})
	case errors.As(err, &formatErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": formatErr.Error()})
	case errors.Is(err, quotes.ErrUnknownCurrency):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &columnErr):
		h.logger.Error("ledger schema mismatch", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": columnErr.Error()})
	case errors.As(err, &writeErr):
		h.logger.Error("ledger write failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": writeErr.Error()})
	default:
		h.logger.Error("quote submission failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
