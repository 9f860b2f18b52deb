// Package excel genera la oferta como hoja de cálculo .xlsx, con las mismas
// columnas que muestra la pantalla de cotización.
package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/klium/quotation-api/internal/application/quotation"
	"github.com/klium/quotation-api/internal/domain/pricing"
)

var _ quotation.ExcelGenerator = (*QuotationExcelGenerator)(nil)

// QuotationExcelGenerator implementa quotation.ExcelGenerator usando excelize.
type QuotationExcelGenerator struct{}

// NewQuotationExcelGenerator construye el generador.
func NewQuotationExcelGenerator() *QuotationExcelGenerator {
	return &QuotationExcelGenerator{}
}

var columns = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M", "N", "O"}

var headers = []string{
	"SKU", "Supplier ref", "Name", "Amount", "List price", "Discount", "Ecotax",
	"Cost", "Margin", "Margin %", "Proposal", "Proposal margin %", "Stock", "MSQ", "UOM",
}

var widths = []float64{12, 16, 40, 9, 12, 11, 9, 12, 11, 10, 12, 14, 9, 8, 8}

// GenerateQuotationXLSX arma la hoja: título, cabecera, una fila por línea y
// el bloque de totales con el detalle del fee de servicio.
func (g *QuotationExcelGenerator) GenerateQuotationXLSX(data quotation.ExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Quotation"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}
	lastCol := columns[len(columns)-1]

	for i, col := range widths {
		if err := f.SetColWidth(sheet, columns[i], columns[i], col); err != nil {
			return nil, fmt.Errorf("set col width: %w", err)
		}
	}

	// ── Estilos ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	cellStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create cell style: %w", err)
	}

	totalLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create total label style: %w", err)
	}

	totalValueStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create total value style: %w", err)
	}

	// ── Título y fecha (filas 1-2) ───────────────────────────────────────

	if err := f.MergeCell(sheet, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheet, "A1", data.CompanyName+" OFFERTES")
	f.SetCellStyle(sheet, "A1", lastCol+"1", titleStyle)
	f.SetCellValue(sheet, "A2", "Date: "+data.Date)

	// ── Cabecera (fila 4) ────────────────────────────────────────────────

	for i, h := range headers {
		f.SetCellValue(sheet, columns[i]+"4", h)
	}
	f.SetCellStyle(sheet, "A4", lastCol+"4", headerStyle)

	// ── Líneas (desde fila 5) ────────────────────────────────────────────

	row := 5
	for _, l := range data.Lines {
		rowStr := fmt.Sprintf("%d", row)
		values := []any{
			l.SKU,
			l.SupplierReference,
			l.Name,
			l.Amount,
			pricing.Money(l.ListPrice),
			pricing.Money(l.DiscountAmount),
			pricing.Money(l.Ecotax),
			pricing.Money(l.Cost),
			pricing.Money(l.Margin),
			pricing.Percent(l.MarginPct),
			pricing.Money(l.Proposal),
			pricing.Percent(l.ProposalMarginPct),
			pricing.Qty(l.Stock),
			pricing.Qty(l.MinSaleQuantity),
			l.UnitOfMeasure,
		}
		for i, v := range values {
			f.SetCellValue(sheet, columns[i]+rowStr, v)
		}
		f.SetCellStyle(sheet, "A"+rowStr, lastCol+rowStr, cellStyle)
		row++
	}

	// ── Totales ──────────────────────────────────────────────────────────

	row++ // fila en blanco
	t := data.Totals
	totals := []struct {
		label string
		value string
	}{
		{"Current price:", pricing.Money(t.CurrentPrice)},
		{"Proposed price:", pricing.Money(t.ProposedPrice)},
		{"Current cost:", pricing.Money(t.CurrentCost)},
		{"Current profit:", pricing.Money(t.CurrentProfit)},
		{"Proposed profit:", pricing.Money(t.ProposedProfit)},
		{"Current margin %:", pricing.Percent(t.CurrentMarginPct)},
		{"Proposed margin %:", pricing.Percent(t.ProposedMarginPct)},
		{"Discount:", pricing.Money(t.DiscountAmount)},
		{"Service fee:", pricing.Money(t.ServiceFee)},
	}
	for _, item := range totals {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheet, "J"+rowStr, item.label)
		f.SetCellStyle(sheet, "J"+rowStr, "J"+rowStr, totalLabelStyle)
		f.SetCellValue(sheet, "K"+rowStr, item.value)
		f.SetCellStyle(sheet, "K"+rowStr, "K"+rowStr, totalValueStyle)
		row++
	}

	// Detalle del fee: una fila por split stock/backorder.
	for _, detail := range t.ServiceFeeDetails {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheet, "K"+rowStr, detail)
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// thinBorders bordes finos en los cuatro lados.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#000000", Style: 1}
	}
	return borders
}
