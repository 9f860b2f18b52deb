package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/klium/quotation-api/internal/domain/pricing"
)

// ──────────────────────────────────────────────────────────────────────────────
// ProposalField: edición en vivo del precio propuesto
// ──────────────────────────────────────────────────────────────────────────────

func TestProposalField_ValorInicialRedondeado(t *testing.T) {
	f := pricing.NewProposalField(dec("89.955"))

	assert.True(t, f.Value().Equal(dec("89.96")))
	assert.False(t, f.Editing())
}

func TestProposalField_TecleoValidoConfirmaEnVivo(t *testing.T) {
	f := pricing.NewProposalField(dec("165"))

	f.Type("16")

	assert.True(t, f.Editing())
	assert.Equal(t, "16", f.Buffer())
	assert.True(t, f.Value().Equal(dec("16")), "un buffer parseable actualiza el valor confirmado al vuelo")
}

func TestProposalField_TecleoInvalidoMantieneUltimoConfirmado(t *testing.T) {
	f := pricing.NewProposalField(dec("165"))

	f.Type("16")
	f.Type("abc") // no parsea

	assert.True(t, f.Editing())
	assert.Equal(t, "abc", f.Buffer(), "el texto en edición se conserva para display")
	assert.True(t, f.Value().Equal(dec("16")), "los cálculos siguen usando el último valor confirmado")
}

func TestProposalField_ConfirmConBufferValido(t *testing.T) {
	f := pricing.NewProposalField(dec("165"))

	f.Type("149.999")
	f.Confirm()

	assert.False(t, f.Editing())
	assert.Empty(t, f.Buffer())
	assert.True(t, f.Value().Equal(dec("150.00")), "Confirm redondea a 2 decimales")
}

func TestProposalField_ConfirmConBufferInvalidoDescarta(t *testing.T) {
	f := pricing.NewProposalField(dec("165"))

	f.Type("no-es-numero")
	f.Confirm()

	assert.False(t, f.Editing())
	assert.True(t, f.Value().Equal(dec("165")), "buffer no parseable: se mantiene el último confirmado")
}

func TestProposalField_ComaComoSeparadorDecimal(t *testing.T) {
	f := pricing.NewProposalField(dec("0"))

	f.Type("12,5")
	f.Confirm()

	assert.True(t, f.Value().Equal(dec("12.50")), "entrada belga/holandesa con coma decimal")
}

// ──────────────────────────────────────────────────────────────────────────────
// Formato de display
// ──────────────────────────────────────────────────────────────────────────────

func TestFormato_Money(t *testing.T) {
	assert.Equal(t, "89.96", pricing.Money(dec("89.955")))
	assert.Equal(t, "0.00", pricing.Money(dec("0")))
	assert.Equal(t, "-10.66", pricing.Money(dec("-10.66")))
}

func TestFormato_OptMoney(t *testing.T) {
	assert.Equal(t, "", pricing.OptMoney(decimal.NullDecimal{}), "valor ausente es cadena vacía, nunca 0.00")
	assert.Equal(t, "12.00", pricing.OptMoney(nullDec("12")))
}

func TestFormato_Percent(t *testing.T) {
	assert.Equal(t, "5.71", pricing.Percent(dec("0.0571")))
	assert.Equal(t, "0.00", pricing.Percent(dec("0")))
	assert.Equal(t, "-3.00", pricing.Percent(dec("-0.03")))
}

func TestFormato_Qty(t *testing.T) {
	assert.Equal(t, "-", pricing.Qty(decimal.NullDecimal{}), "stock desconocido se muestra como guion")
	assert.Equal(t, "12", pricing.Qty(nullDec("12")))
}
