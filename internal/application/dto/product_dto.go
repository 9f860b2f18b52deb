package dto

import "github.com/shopspring/decimal"

// ProductResponse producto del catálogo enriquecido con stock y MSQ/UOM.
// Stock y MinSaleQuantity serializan como null cuando el dato no existe.
type ProductResponse struct {
	SKU               string              `json:"sku"`
	SupplierReference string              `json:"supplier_reference"`
	Name              string              `json:"name"`
	ListPrice         decimal.Decimal     `json:"list_price"`
	DiscountAmount    decimal.Decimal     `json:"discount_amount"`
	DiscountPct       decimal.Decimal     `json:"discount_pct"`
	Ecotax            decimal.Decimal     `json:"ecotax"`
	Cost              decimal.Decimal     `json:"cost"`
	Margin            decimal.Decimal     `json:"margin"`
	MarginPct         decimal.Decimal     `json:"margin_pct"`
	Active            bool                `json:"active"`
	VisibleBE         bool                `json:"visible_be"`
	VisibleNL         bool                `json:"visible_nl"`
	VisibleCOM        bool                `json:"visible_com"`
	Stock             decimal.NullDecimal `json:"stock"`
	MinSaleQuantity   decimal.NullDecimal `json:"min_sale_quantity"`
	UnitOfMeasure     string              `json:"unit_of_measure"`
}

// ProductListResponse lista de productos resueltos del catálogo.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}
