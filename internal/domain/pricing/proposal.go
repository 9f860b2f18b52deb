package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ProposalField modela la edición en vivo del precio propuesto de una línea.
//
// Estados: Confirmed(valor) → (teclea) → Editing(buffer). Si el buffer parsea
// como número el valor confirmado se actualiza en vivo (redondeado a 2
// decimales); si no parsea, el buffer queda como concepto de display y los
// cálculos siguen usando el último valor confirmado. Confirm (blur/Enter)
// cierra la edición redondeando a 2 decimales.
type ProposalField struct {
	confirmed decimal.Decimal
	buffer    string
	editing   bool
}

// NewProposalField crea el campo con el valor confirmado inicial.
func NewProposalField(initial decimal.Decimal) ProposalField {
	return ProposalField{confirmed: initial.Round(2)}
}

// Type procesa una pulsación: recibe el contenido bruto del campo y reparsea.
func (f *ProposalField) Type(raw string) {
	f.buffer = raw
	f.editing = true
	if v, err := parseAmount(raw); err == nil {
		f.confirmed = v.Round(2)
	}
}

// Confirm cierra la edición (blur o Enter): si el buffer parsea, el valor
// confirmado pasa a ser buffer redondeado a 2 decimales; si no, se mantiene el
// último valor confirmado y se descarta el buffer.
func (f *ProposalField) Confirm() {
	if f.editing {
		if v, err := parseAmount(f.buffer); err == nil {
			f.confirmed = v.Round(2)
		}
	}
	f.editing = false
	f.buffer = ""
}

// Value devuelve el valor confirmado, el único que usa ComputeTotals.
func (f ProposalField) Value() decimal.Decimal {
	return f.confirmed
}

// Editing indica si hay una edición en curso sin confirmar.
func (f ProposalField) Editing() bool {
	return f.editing
}

// Buffer devuelve el texto en edición (vacío fuera de edición).
func (f ProposalField) Buffer() string {
	return f.buffer
}

// parseAmount acepta punto o coma como separador decimal (entrada belga/holandesa).
func parseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	return decimal.NewFromString(s)
}
