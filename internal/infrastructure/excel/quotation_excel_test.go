package excel_test

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/klium/quotation-api/internal/application/quotation"
	"github.com/klium/quotation-api/internal/domain/entity"
	"github.com/klium/quotation-api/internal/domain/pricing"
	"github.com/klium/quotation-api/internal/infrastructure/excel"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func buildExportData() quotation.ExportData {
	e := pricing.NewEngine(pricing.DefaultServiceFeeUnit)
	lines := []pricing.Line{
		e.EnrichLine(entity.Product{
			SKU:               "00012345",
			SupplierReference: "BOSCH-GSB13RE",
			Name:              "Klopboormachine GSB 13 RE",
			ListPrice:         dec("89.95"),
			Cost:              dec("52.10"),
			Margin:            dec("37.85"),
			Stock:             decimal.NewNullDecimal(dec("12")),
		}, 2, nil),
		e.EnrichLine(entity.Product{
			SKU:       "00054321",
			Name:      "Zijsnijtang 250 mm",
			ListPrice: dec("46.50"),
			Cost:      dec("24.80"),
			Margin:    dec("21.70"),
		}, 1, nil),
	}
	return quotation.ExportData{
		CompanyName: "KLIUM",
		Date:        "2026-08-31",
		Lines:       lines,
		Totals:      e.ComputeTotals(lines),
	}
}

// El xlsx generado debe poder reabrirse y contener título, cabecera, líneas
// en orden y el bloque de totales.
func TestGenerateQuotationXLSX_ContenidoVerificable(t *testing.T) {
	gen := excel.NewQuotationExcelGenerator()

	raw, err := gen.GenerateQuotationXLSX(buildExportData())
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err, "los bytes deben ser un xlsx válido")
	defer f.Close()

	const sheet = "Quotation"

	title, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "KLIUM OFFERTES", title)

	date, err := f.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Date: 2026-08-31", date)

	header, err := f.GetCellValue(sheet, "A4")
	require.NoError(t, err)
	assert.Equal(t, "SKU", header)

	// Primera línea en fila 5, misma ordenación que la oferta.
	sku, err := f.GetCellValue(sheet, "A5")
	require.NoError(t, err)
	assert.Equal(t, "00012345", sku)

	amount, err := f.GetCellValue(sheet, "D5")
	require.NoError(t, err)
	assert.Equal(t, "2", amount)

	proposal, err := f.GetCellValue(sheet, "K5")
	require.NoError(t, err)
	assert.Equal(t, "89.95", proposal, "propuesta por defecto = precio de lista")

	sku2, err := f.GetCellValue(sheet, "A6")
	require.NoError(t, err)
	assert.Equal(t, "00054321", sku2)

	stock2, err := f.GetCellValue(sheet, "M6")
	require.NoError(t, err)
	assert.Equal(t, "-", stock2, "stock desconocido se exporta como guion")
}

func TestGenerateQuotationXLSX_TotalesYDetalleDeFee(t *testing.T) {
	gen := excel.NewQuotationExcelGenerator()
	data := buildExportData()

	raw, err := gen.GenerateQuotationXLSX(data)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Quotation")
	require.NoError(t, err)

	flat := ""
	for _, row := range rows {
		for _, cell := range row {
			flat += cell + "\n"
		}
	}
	assert.Contains(t, flat, "Current price:")
	assert.Contains(t, flat, "226.40", "precio actual: 2×89.95 + 46.50")
	assert.Contains(t, flat, "Service fee:")
	assert.Contains(t, flat, "-10.66", "dos unidades de fee: línea desde stock + línea backorder")
	assert.Contains(t, flat, "00012345: 2 from stock")
	assert.Contains(t, flat, "00054321: 1 backorder")
}
