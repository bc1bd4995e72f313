package handler

import (
	"net/http"

	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/apierror"
	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/dto"
	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/seed"
	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductsHandler struct {
	svc    service.ProductService
	seeder *seed.Seeder
}

func NewProductsHandler(svc service.ProductService, seeder *seed.Seeder) *ProductsHandler {
	return &ProductsHandler{svc: svc, seeder: seeder}
}

// List returns the full catalog ordered by name.
func (h *ProductsHandler) List(c *gin.Context) {
	products, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// ListFromPurchases returns only products with at least one purchase record —
// the "existing item" picker set.
func (h *ProductsHandler) ListFromPurchases(c *gin.Context) {
	products, err := h.svc.ListFromPurchases(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductsHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	product, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, apierror.New("Product not found"))
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductsHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	id, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// Update merges the supplied fields; a missing id is a silent no-op (204).
func (h *ProductsHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Update(c.Request.Context(), id, req); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete removes the product without touching purchases or bill items that
// reference it.
func (h *ProductsHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Seed inserts the default beverage catalog, skipping names already present.
func (h *ProductsHandler) Seed(c *gin.Context) {
	added, err := h.seeder.Run(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SeedResponse{Added: added})
}
