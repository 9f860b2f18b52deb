package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/klium/quotation-api/internal/application/catalog"
	"github.com/klium/quotation-api/internal/application/dto"
)

// ProductHandler consultas de catálogo.
type ProductHandler struct {
	uc *catalog.LookupUseCase
}

// NewProductHandler construye el handler de productos.
func NewProductHandler(uc *catalog.LookupUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// GetBySKUs godoc
// @Summary      Buscar productos por SKU
// @Tags         products
// @Produce      json
// @Param        skus  query  string  true  "SKUs separados por coma (se completan a 8 dígitos)"
// @Success      200   {object}  dto.ProductListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) GetBySKUs(c *fiber.Ctx) error {
	raw := c.Query("skus")
	if strings.TrimSpace(raw) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetro skus requerido"})
	}
	out, err := h.uc.FindBySKU(c.Context(), strings.Split(raw, ","))
	if err != nil {
		return errorToResponse(c, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar productos por referencia de proveedor
// @Tags         products
// @Produce      json
// @Param        q  query  string  true  "subcadena de la referencia (mínimo 2 caracteres)"
// @Success      200   {object}  dto.ProductListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/products/search [get]
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.SearchBySupplierRef(c.Context(), c.Query("q"))
	if err != nil {
		return errorToResponse(c, err)
	}
	return c.JSON(out)
}
