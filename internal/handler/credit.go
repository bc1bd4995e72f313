package handler

import (
	"net/http"

	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/dto"
	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/service"

	"github.com/gin-gonic/gin"
)

type CreditHandler struct{ svc service.CreditService }

func NewCreditHandler(svc service.CreditService) *CreditHandler { return &CreditHandler{svc: svc} }

// Outstanding lists credit bills with a positive remaining balance.
func (h *CreditHandler) Outstanding(c *gin.Context) {
	bills, err := h.svc.OutstandingBills(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bills)
}

// AddPayment amortizes a payment against a bill's remaining balance.
// A missing bill is a silent no-op, mirroring the store semantics.
func (h *CreditHandler) AddPayment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.AddCreditPaymentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.AddPayment(c.Request.Context(), id, req); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Payments returns the append-only payment history of a bill.
func (h *CreditHandler) Payments(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	payments, err := h.svc.Payments(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}
