package handler

import (
	"net/http"

	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/apierror"
	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/dto"
	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/service"

	"github.com/gin-gonic/gin"
)

type BillsHandler struct{ svc service.BillService }

func NewBillsHandler(svc service.BillService) *BillsHandler { return &BillsHandler{svc: svc} }

// Create persists a completed sale: the bill and all of its line items become
// visible together or not at all.
func (h *BillsHandler) Create(c *gin.Context) {
	var req dto.CreateBillRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// SetPrinted flips the printed flag once. Missing bills are a silent no-op.
func (h *BillsHandler) SetPrinted(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.SetPrinted(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// List returns bills filtered by an inclusive date range, newest first.
func (h *BillsHandler) List(c *gin.Context) {
	var filter dto.BillFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	bills, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bills)
}

// Items returns a bill's line items; deleted products resolve as "—".
func (h *BillsHandler) Items(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	items, err := h.svc.Items(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// SalesSummary joins bills, items, and products and computes per-line profit.
func (h *BillsHandler) SalesSummary(c *gin.Context) {
	var filter dto.SalesSummaryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	rows, err := h.svc.SalesSummary(c.Request.Context(), filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
