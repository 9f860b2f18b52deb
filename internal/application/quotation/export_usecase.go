package quotation

import (
	"context"
	"time"

	"github.com/klium/quotation-api/internal/application/dto"
)

// ExportUseCase genera la oferta como XLSX o PDF. Reutiliza Build para que los
// números exportados sean exactamente los del endpoint de cálculo.
type ExportUseCase struct {
	quotes      *UseCase
	excel       ExcelGenerator
	pdf         PDFGenerator
	companyName string
}

// NewExportUseCase construye el caso de uso de exportación.
func NewExportUseCase(quotes *UseCase, excel ExcelGenerator, pdf PDFGenerator, companyName string) *ExportUseCase {
	return &ExportUseCase{quotes: quotes, excel: excel, pdf: pdf, companyName: companyName}
}

// ExportXLSX calcula la oferta y devuelve los bytes del .xlsx.
func (uc *ExportUseCase) ExportXLSX(ctx context.Context, in dto.QuotationRequest) ([]byte, error) {
	data, err := uc.buildExportData(ctx, in)
	if err != nil {
		return nil, err
	}
	return uc.excel.GenerateQuotationXLSX(data)
}

// ExportPDF calcula la oferta y devuelve los bytes del .pdf.
func (uc *ExportUseCase) ExportPDF(ctx context.Context, in dto.QuotationRequest) ([]byte, error) {
	data, err := uc.buildExportData(ctx, in)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateQuotationPDF(ctx, data)
}

func (uc *ExportUseCase) buildExportData(ctx context.Context, in dto.QuotationRequest) (ExportData, error) {
	lines, totals, err := uc.quotes.Build(ctx, in.Items)
	if err != nil {
		return ExportData{}, err
	}
	return ExportData{
		CompanyName: uc.companyName,
		Date:        time.Now().Format("2006-01-02"),
		Lines:       lines,
		Totals:      totals,
	}, nil
}
