package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/magnias/quotedesk/internal/domain/models"
	"github.com/magnias/quotedesk/internal/service/analytics"
)

// AnalyticsHandler serves the chart-feeding activity aggregates.
type AnalyticsHandler struct {
	svc    *analytics.Service
	logger *zap.Logger
}

// NewAnalyticsHandler constructs the analytics HTTP adapter.
func NewAnalyticsHandler(svc *analytics.Service, logger *zap.Logger) *AnalyticsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsHandler{svc: svc, logger: logger}
}

// Activity returns monthly quote counts and price statistics for one
// currency, optionally converted into the other.
func (h *AnalyticsHandler) Activity(c *gin.Context) {
	currency := models.Currency(c.DefaultQuery("currency", string(models.CurrencyUSD)))
	if !currency.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported currency"})
		return
	}

	convert := models.Currency(c.Query("convert"))
	if convert != "" && !convert.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported conversion currency"})
		return
	}

	report, err := h.svc.Activity(c.Request.Context(), currency, convert)
	if err != nil {
		h.logger.Error("failed building activity report", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to build activity report"})
		return
	}

	c.JSON(http.StatusOK, report)
}
