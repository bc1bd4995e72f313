package handler

import (
	"net/http"

	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/service"

	"github.com/gin-gonic/gin"
)

type StockHandler struct{ svc service.StockService }

func NewStockHandler(svc service.StockService) *StockHandler { return &StockHandler{svc: svc} }

// List returns products with positive derived on-hand quantity.
func (h *StockHandler) List(c *gin.Context) {
	items, err := h.svc.StockWithQuantity(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Sellable is the sale picker set: in stock and not near expiry.
func (h *StockHandler) Sellable(c *gin.Context) {
	items, err := h.svc.Sellable(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// NearExpiry lists stocked products expiring within the lookahead window,
// most urgent first.
func (h *StockHandler) NearExpiry(c *gin.Context) {
	items, err := h.svc.NearExpiry(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
