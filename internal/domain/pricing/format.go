package pricing

import "github.com/shopspring/decimal"

// Contrato de formato para campos expuestos a display/exportación:
// importes y porcentajes con 2 decimales; valores ausentes como cadena vacía
// (nunca "0.00" ni "NaN"). El stock ausente se muestra como "-".

// Money formatea un importe con 2 decimales.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// OptMoney formatea un importe opcional; ausente → "".
func OptMoney(n decimal.NullDecimal) string {
	if !n.Valid {
		return ""
	}
	return n.Decimal.StringFixed(2)
}

// Percent formatea un ratio como porcentaje con 2 decimales (0.0571 → "5.71").
func Percent(ratio decimal.Decimal) string {
	return ratio.Mul(decimal.NewFromInt(100)).StringFixed(2)
}

// Qty formatea una cantidad opcional (stock, MSQ); ausente → "-".
func Qty(n decimal.NullDecimal) string {
	if !n.Valid {
		return "-"
	}
	return n.Decimal.String()
}
