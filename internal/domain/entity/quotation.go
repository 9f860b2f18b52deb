package entity

import "github.com/shopspring/decimal"

// QuotationItem es la instantánea persistida de una línea: solo lo necesario
// para el dashboard, sin los campos de margen.
type QuotationItem struct {
	SKU    string          `json:"sku"`
	Name   string          `json:"name"`
	Amount int             `json:"amount"`
	Price  decimal.Decimal `json:"price"`
}

// Quotation es una oferta guardada. Inmutable una vez almacenada; el id lo
// asigna el store como max(ids)+1 y nunca se reutiliza.
type Quotation struct {
	ID           int             `json:"id"`
	CustomerName string          `json:"customer_name"`
	Company      string          `json:"company"`
	VATNumber    string          `json:"vat_number"`
	Address      string          `json:"address"`
	PostalCode   string          `json:"postal_code"`
	City         string          `json:"city"`
	Country      string          `json:"country"`
	Email        string          `json:"email"`
	Total        decimal.Decimal `json:"total"` // proposedPrice en el momento de guardar
	Date         string          `json:"date"`  // fecha ISO (YYYY-MM-DD) del guardado
	Items        []QuotationItem `json:"items"`
}
