package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/klium/quotation-api/internal/application/dto"
	"github.com/klium/quotation-api/internal/application/quotation"
	"github.com/klium/quotation-api/internal/domain"
)

// QuotationHandler cálculo, exportación y persistencia de ofertas.
type QuotationHandler struct {
	uc     *quotation.UseCase
	export *quotation.ExportUseCase
}

// NewQuotationHandler construye el handler de ofertas.
func NewQuotationHandler(uc *quotation.UseCase, export *quotation.ExportUseCase) *QuotationHandler {
	return &QuotationHandler{uc: uc, export: export}
}

// Compute godoc
// @Summary      Calcular una oferta
// @Tags         quotation
// @Accept       json
// @Produce      json
// @Param        body  body  dto.QuotationRequest  true  "items: sku, amount, proposal opcional"
// @Success      200   {object}  dto.QuotationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/quotation [post]
func (h *QuotationHandler) Compute(c *fiber.Ctx) error {
	var in dto.QuotationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Compute(c.Context(), in)
	if err != nil {
		return errorToResponse(c, err)
	}
	return c.JSON(out)
}

// ExportXLSX godoc
// @Summary      Exportar la oferta como XLSX
// @Tags         quotation
// @Accept       json
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        body  body  dto.QuotationRequest  true  "items de la oferta"
// @Success      200   {file}  binary
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/quotation/xlsx [post]
func (h *QuotationHandler) ExportXLSX(c *fiber.Ctx) error {
	var in dto.QuotationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	data, err := h.export.ExportXLSX(c.Context(), in)
	if err != nil {
		return errorToResponse(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="quotation.xlsx"`)
	return c.Send(data)
}

// ExportPDF godoc
// @Summary      Exportar la oferta como PDF
// @Tags         quotation
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.QuotationRequest  true  "items de la oferta"
// @Success      200   {file}  binary
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/quotation/pdf [post]
func (h *QuotationHandler) ExportPDF(c *fiber.Ctx) error {
	var in dto.QuotationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	data, err := h.export.ExportPDF(c.Context(), in)
	if err != nil {
		return errorToResponse(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="quotation.pdf"`)
	return c.Send(data)
}

// Save godoc
// @Summary      Guardar una oferta
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveQuotationRequest  true  "datos del cliente + items"
// @Success      201   {object}  dto.QuotationRecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/quotations [post]
func (h *QuotationHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveQuotationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Save(c.Context(), in)
	if err != nil {
		return errorToResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Dashboard godoc
// @Summary      Listar ofertas guardadas
// @Tags         quotations
// @Produce      json
// @Success      200   {object}  dto.DashboardResponse
// @Router       /api/quotations [get]
func (h *QuotationHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard()
	if err != nil {
		return errorToResponse(c, err)
	}
	return c.JSON(out)
}

// errorToResponse mapea errores de dominio a status HTTP. ErrLookupUnavailable
// se distingue de "sin resultados": catálogo caído es 502, lista vacía es 200.
func errorToResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrLookupUnavailable):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "CATALOG_UNAVAILABLE", Message: "el catálogo no está disponible"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
