package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/klium/quotation-api/internal/application/auth"
	"github.com/klium/quotation-api/internal/application/catalog"
	"github.com/klium/quotation-api/internal/application/quotation"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	LookupUC    *catalog.LookupUseCase
	QuotationUC *quotation.UseCase
	ExportUC    *quotation.ExportUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo (protegido)
	productHandler := NewProductHandler(deps.LookupUC)
	protected.Get("/products", productHandler.GetBySKUs)
	protected.Get("/products/search", productHandler.Search)

	// Ofertas (protegido)
	quotationHandler := NewQuotationHandler(deps.QuotationUC, deps.ExportUC)
	protected.Post("/quotation", quotationHandler.Compute)
	protected.Post("/quotation/xlsx", quotationHandler.ExportXLSX)
	protected.Post("/quotation/pdf", quotationHandler.ExportPDF)
	protected.Post("/quotations", quotationHandler.Save)
	protected.Get("/quotations", quotationHandler.Dashboard)
}
