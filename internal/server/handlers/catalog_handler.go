package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/magnias/quotedesk/internal/domain/models"
	"github.com/magnias/quotedesk/internal/ledger"
	"github.com/magnias/quotedesk/internal/service/catalog"
)

// CatalogHandler serves product browsing, search and product entry.
type CatalogHandler struct {
	svc    *catalog.Service
	logger *zap.Logger
}

// NewCatalogHandler constructs the catalog HTTP adapter.
func NewCatalogHandler(svc *catalog.Service, logger *zap.Logger) *CatalogHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogHandler{svc: svc, logger: logger}
}

// Categories lists the configured product categories.
func (h *CatalogHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.svc.Categories()})
}

// Listing returns a category's rows, filtered by an optional search term.
func (h *CatalogHandler) Listing(c *gin.Context) {
	listing, err := h.svc.Listing(c.Request.Context(), c.Param("category"), c.Query("search"))
	if err != nil {
		h.renderCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

// AddProduct appends a new product record to a category table.
func (h *CatalogHandler) AddProduct(c *gin.Context) {
	var req models.NewProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product payload"})
		return
	}

	if err := h.svc.AddProduct(c.Request.Context(), req); err != nil {
		h.renderCatalogError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "product record created"})
}

// Refresh reloads one category snapshot on demand.
func (h *CatalogHandler) Refresh(c *gin.Context) {
	if err := h.svc.Refresh(c.Request.Context(), c.Param("category")); err != nil {
		h.renderCatalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) renderCatalogError(c *gin.Context, err error) {
	var columnErr *ledger.ColumnError

	switch {
	case errors.Is(err, catalog.ErrUnknownCategory):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &columnErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": columnErr.Error()})
	default:
		h.logger.Error("catalog operation failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "catalog unavailable"})
	}
}
