package dto

import "github.com/shopspring/decimal"

// QuotationItemRequest una fila de entrada: SKU + cantidad, con la propuesta
// previamente tecleada por el usuario para no perderla al recargar el catálogo.
type QuotationItemRequest struct {
	SKU      string           `json:"sku"`
	Amount   int              `json:"amount"`
	Proposal *decimal.Decimal `json:"proposal,omitempty"`
}

// QuotationRequest entrada para calcular (o exportar) una oferta.
type QuotationRequest struct {
	Items []QuotationItemRequest `json:"items"`
}

// LineResponse línea de oferta enriquecida. Los *_pct son ratios (0.0571 = 5.71%).
type LineResponse struct {
	SKU               string              `json:"sku"`
	SupplierReference string              `json:"supplier_reference"`
	Name              string              `json:"name"`
	Amount            int                 `json:"amount"`
	ListPrice         decimal.Decimal     `json:"list_price"`
	DiscountAmount    decimal.Decimal     `json:"discount_amount"`
	DiscountPct       decimal.Decimal     `json:"discount_pct"`
	Ecotax            decimal.Decimal     `json:"ecotax"`
	Cost              decimal.Decimal     `json:"cost"`
	Margin            decimal.Decimal     `json:"margin"`
	MarginPct         decimal.Decimal     `json:"margin_pct"`
	Proposal          decimal.Decimal     `json:"proposal"`
	ProposalMarginPct decimal.Decimal     `json:"proposal_margin_pct"`
	Active            bool                `json:"active"`
	VisibleBE         bool                `json:"visible_be"`
	VisibleNL         bool                `json:"visible_nl"`
	VisibleCOM        bool                `json:"visible_com"`
	Stock             decimal.NullDecimal `json:"stock"`
	MinSaleQuantity   decimal.NullDecimal `json:"min_sale_quantity"`
	UnitOfMeasure     string              `json:"unit_of_measure"`
}

// TotalsResponse totales de la oferta.
type TotalsResponse struct {
	CurrentPrice      decimal.Decimal `json:"current_price"`
	ProposedPrice     decimal.Decimal `json:"proposed_price"`
	CurrentCost       decimal.Decimal `json:"current_cost"`
	CurrentProfit     decimal.Decimal `json:"current_profit"`
	ProposedProfit    decimal.Decimal `json:"proposed_profit"`
	CurrentMarginPct  decimal.Decimal `json:"current_margin_pct"`
	ProposedMarginPct decimal.Decimal `json:"proposed_margin_pct"`
	DiscountAmount    decimal.Decimal `json:"discount_amount"`
	DiscountPct       decimal.Decimal `json:"discount_pct"`
	ServiceFee        decimal.Decimal `json:"service_fee"`
	ServiceFeeDetails []string        `json:"service_fee_details"`
}

// QuotationResponse resultado del cálculo de oferta.
type QuotationResponse struct {
	Lines  []LineResponse `json:"lines"`
	Totals TotalsResponse `json:"totals"`
}

// SaveQuotationRequest datos del cliente + líneas para guardar la oferta.
// El total y la fecha los fija el servidor en el momento de guardar.
type SaveQuotationRequest struct {
	CustomerName string                 `json:"customer_name"`
	Company      string                 `json:"company"`
	VATNumber    string                 `json:"vat_number"`
	Address      string                 `json:"address"`
	PostalCode   string                 `json:"postal_code"`
	City         string                 `json:"city"`
	Country      string                 `json:"country"`
	Email        string                 `json:"email"`
	Items        []QuotationItemRequest `json:"items"`
}

// QuotationItemRecord instantánea persistida de una línea.
type QuotationItemRecord struct {
	SKU    string          `json:"sku"`
	Name   string          `json:"name"`
	Amount int             `json:"amount"`
	Price  decimal.Decimal `json:"price"`
}

// QuotationRecordResponse oferta guardada, tal como la ve el dashboard.
type QuotationRecordResponse struct {
	ID           int                   `json:"id"`
	CustomerName string                `json:"customer_name"`
	Company      string                `json:"company"`
	VATNumber    string                `json:"vat_number"`
	Address      string                `json:"address"`
	PostalCode   string                `json:"postal_code"`
	City         string                `json:"city"`
	Country      string                `json:"country"`
	Email        string                `json:"email"`
	Total        decimal.Decimal       `json:"total"`
	Date         string                `json:"date"`
	Items        []QuotationItemRecord `json:"items"`
}

// DashboardResponse listado de ofertas guardadas.
type DashboardResponse struct {
	Quotations []QuotationRecordResponse `json:"quotations"`
}
