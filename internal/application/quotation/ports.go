package quotation

import (
	"context"

	"github.com/klium/quotation-api/internal/domain/pricing"
)

// ExportData todo lo que necesitan los generadores de exportación: líneas en
// orden de oferta y totales, con cada campo direccionable por separado para
// que cada formato decida etiquetas y estilos.
type ExportData struct {
	CompanyName string
	Date        string // fecha ISO del documento
	Lines       []pricing.Line
	Totals      pricing.Totals
}

// ExcelGenerator genera la hoja de cálculo de la oferta.
type ExcelGenerator interface {
	GenerateQuotationXLSX(data ExportData) ([]byte, error)
}

// PDFGenerator genera el PDF de la oferta.
type PDFGenerator interface {
	GenerateQuotationPDF(ctx context.Context, data ExportData) ([]byte, error)
}
