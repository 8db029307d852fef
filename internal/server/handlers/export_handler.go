package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/magnias/quotedesk/internal/domain/models"
	"github.com/magnias/quotedesk/internal/export"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves ledger downloads.
type ExportHandler struct {
	svc    *export.Service
	logger *zap.Logger
}

// NewExportHandler constructs the export HTTP adapter.
func NewExportHandler(svc *export.Service, logger *zap.Logger) *ExportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportHandler{svc: svc, logger: logger}
}

// Ledger streams one currency ledger as an xlsx attachment.
func (h *ExportHandler) Ledger(c *gin.Context) {
	currency := models.Currency(c.Param("currency"))
	if !currency.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported currency"})
		return
	}

	data, filename, err := h.svc.Ledger(c.Request.Context(), currency)
	if err != nil {
		h.logger.Error("failed exporting ledger", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to export ledger"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
