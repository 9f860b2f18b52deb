// Package pricing implementa el motor de cálculo de ofertas: enriquecimiento de
// líneas (margen, propuesta) y totales de la oferta (precios, márgenes, descuento
// y fee de servicio "CDC" repartido por disponibilidad de stock).
//
// El motor es puro: sin I/O ni estado compartido. Todas las divisiones usan
// guarda de denominador cero y devuelven 0 en lugar de propagar NaN/Inf, porque
// los totales suman estos valores y un NaN envenenaría la oferta completa.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/klium/quotation-api/internal/domain/entity"
)

// DefaultServiceFeeUnit importe por unidad de fee CDC. Una línea aporta una
// unidad por su parte en stock y otra por su parte en backorder.
var DefaultServiceFeeUnit = decimal.RequireFromString("-5.33")

// Line es una línea de oferta ya enriquecida, lista para mostrar, exportar o guardar.
// Margin viene del catálogo (ListPrice − Cost); los porcentajes son ratios (0.0571 = 5.71%).
type Line struct {
	SKU               string
	SupplierReference string
	Name              string
	Amount            int
	ListPrice         decimal.Decimal
	DiscountAmount    decimal.Decimal
	DiscountPct       decimal.Decimal
	Ecotax            decimal.Decimal
	Cost              decimal.Decimal
	Margin            decimal.Decimal
	MarginPct         decimal.Decimal // Margin / ListPrice, 0 si ListPrice = 0
	Proposal          decimal.Decimal // precio unitario negociado
	ProposalMarginPct decimal.Decimal // (Proposal − Cost) / Proposal, 0 si Proposal = 0
	Active            bool
	VisibleBE         bool
	VisibleNL         bool
	VisibleCOM        bool
	Stock             decimal.NullDecimal
	MinSaleQuantity   decimal.NullDecimal
	UnitOfMeasure     string
}

// Totals agrega los importes de toda la oferta.
type Totals struct {
	CurrentPrice      decimal.Decimal // Σ ListPrice × Amount
	ProposedPrice     decimal.Decimal // Σ Proposal × Amount
	CurrentCost       decimal.Decimal // Σ Cost × Amount
	CurrentProfit     decimal.Decimal // Σ Margin × Amount
	ProposedProfit    decimal.Decimal // Σ (Proposal − Cost) × Amount
	CurrentMarginPct  decimal.Decimal // (CurrentPrice − CurrentCost) / CurrentPrice
	ProposedMarginPct decimal.Decimal // (ProposedPrice − CurrentCost) / ProposedPrice
	DiscountAmount    decimal.Decimal // CurrentPrice − ProposedPrice
	DiscountPct       decimal.Decimal // DiscountAmount / CurrentPrice
	ServiceFee        decimal.Decimal // Σ unidades de fee CDC
	ServiceFeeDetails []string        // "<sku>: <n> from stock" / "<sku>: <n> backorder", en orden de línea
}

// Engine calcula líneas y totales. El importe del fee CDC es configurable
// porque ha cambiado entre versiones de la regla (−5.45 plano vs −5.33 por stock).
type Engine struct {
	feeUnit decimal.Decimal
}

// NewEngine construye el motor con el importe de fee por unidad (negativo).
func NewEngine(serviceFeeUnit decimal.Decimal) *Engine {
	return &Engine{feeUnit: serviceFeeUnit}
}

// EnrichLine construye la línea de oferta a partir de un producto resuelto del
// catálogo y la cantidad pedida. Cantidades no positivas se corrigen a 1.
// existingProposal conserva la propuesta tecleada por el usuario entre
// recargas del catálogo; si es nil la propuesta por defecto es ListPrice
// redondeado a 2 decimales (0.00 cuando no hay precio de catálogo).
func (e *Engine) EnrichLine(p entity.Product, amount int, existingProposal *decimal.Decimal) Line {
	if amount <= 0 {
		amount = 1
	}

	proposal := decimal.Zero
	switch {
	case existingProposal != nil:
		proposal = *existingProposal
	case !p.ListPrice.IsZero():
		proposal = p.ListPrice.Round(2)
	}

	return Line{
		SKU:               p.SKU,
		SupplierReference: p.SupplierReference,
		Name:              p.Name,
		Amount:            amount,
		ListPrice:         p.ListPrice,
		DiscountAmount:    p.DiscountAmount,
		DiscountPct:       p.DiscountPct,
		Ecotax:            p.Ecotax,
		Cost:              p.Cost,
		Margin:            p.Margin,
		MarginPct:         safeRatio(p.Margin, p.ListPrice),
		Proposal:          proposal,
		ProposalMarginPct: safeRatio(proposal.Sub(p.Cost), proposal),
		Active:            p.Active,
		VisibleBE:         p.VisibleBE,
		VisibleNL:         p.VisibleNL,
		VisibleCOM:        p.VisibleCOM,
		Stock:             p.Stock,
		MinSaleQuantity:   p.MinSaleQuantity,
		UnitOfMeasure:     p.UnitOfMeasure,
	}
}

// ComputeTotals agrega las líneas. Nunca falla: sin líneas devuelve totales en
// cero y detalle de fee vacío. El orden de las líneas no afecta los importes
// pero sí el orden del detalle del fee.
func (e *Engine) ComputeTotals(lines []Line) Totals {
	t := Totals{ServiceFeeDetails: []string{}}

	for _, l := range lines {
		qty := decimal.NewFromInt(int64(l.Amount))
		t.CurrentPrice = t.CurrentPrice.Add(l.ListPrice.Mul(qty))
		t.ProposedPrice = t.ProposedPrice.Add(l.Proposal.Mul(qty))
		t.CurrentCost = t.CurrentCost.Add(l.Cost.Mul(qty))
		t.CurrentProfit = t.CurrentProfit.Add(l.Margin.Mul(qty))
		t.ProposedProfit = t.ProposedProfit.Add(l.Proposal.Sub(l.Cost).Mul(qty))

		fee, details := e.lineServiceFee(l)
		t.ServiceFee = t.ServiceFee.Add(fee)
		t.ServiceFeeDetails = append(t.ServiceFeeDetails, details...)
	}

	t.CurrentMarginPct = safeRatio(t.CurrentPrice.Sub(t.CurrentCost), t.CurrentPrice)
	t.ProposedMarginPct = safeRatio(t.ProposedPrice.Sub(t.CurrentCost), t.ProposedPrice)
	t.DiscountAmount = t.CurrentPrice.Sub(t.ProposedPrice)
	t.DiscountPct = safeRatio(t.DiscountAmount, t.CurrentPrice)
	return t
}

// lineServiceFee reparte la cantidad pedida entre stock y backorder.
// Una línea aporta 0, 1 o 2 unidades de fee: una si sirve algo desde stock y
// otra si queda algo en backorder (línea partida = las dos). Stock desconocido
// cuenta como 0, es decir todo en backorder.
func (e *Engine) lineServiceFee(l Line) (decimal.Decimal, []string) {
	stock := decimal.Zero
	if l.Stock.Valid {
		stock = l.Stock.Decimal
	}
	qty := decimal.NewFromInt(int64(l.Amount))

	inStock := decimal.Min(stock, qty)
	backOrder := decimal.Max(qty.Sub(stock), decimal.Zero)

	fee := decimal.Zero
	var details []string
	if inStock.IsPositive() {
		fee = fee.Add(e.feeUnit)
		details = append(details, fmt.Sprintf("%s: %s from stock", l.SKU, inStock.String()))
	}
	if backOrder.IsPositive() {
		fee = fee.Add(e.feeUnit)
		details = append(details, fmt.Sprintf("%s: %s backorder", l.SKU, backOrder.String()))
	}
	return fee, details
}

// safeRatio divide num/den con guarda de denominador cero.
func safeRatio(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.Div(den)
}
