package entity

import "github.com/shopspring/decimal"

// Product es un registro del catálogo de negocio, de solo lectura para el motor de precios.
// Margin viene calculado por el catálogo (ListPrice − Cost); no se recalcula localmente.
// Stock y MinSaleQuantity pueden faltar: NullDecimal inválido significa "desconocido",
// que cuenta como 0 para el reparto del fee y se muestra como "-" en la UI.
type Product struct {
	SKU               string          // identificador de 8 dígitos con ceros a la izquierda
	SupplierReference string
	Name              string
	ListPrice         decimal.Decimal // precio de catálogo, sin IVA
	DiscountAmount    decimal.Decimal // informativo, no entra en totales
	DiscountPct       decimal.Decimal // informativo
	Ecotax            decimal.Decimal // recargo ambiental, solo display
	Cost              decimal.Decimal
	Margin            decimal.Decimal // ListPrice − Cost según catálogo
	MarginPct         decimal.Decimal // porcentaje de margen del catálogo, informativo
	Active            bool
	VisibleBE         bool
	VisibleNL         bool
	VisibleCOM        bool
	Stock             decimal.NullDecimal
	MinSaleQuantity   decimal.NullDecimal
	UnitOfMeasure     string
}
