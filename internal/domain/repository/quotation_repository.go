package repository

import "github.com/klium/quotation-api/internal/domain/entity"

// QuotationRepository puerto del almacén de ofertas (append-only).
// Append asigna id = max(ids)+1 (1 si está vacío) y debe serializar el
// read-modify-write para que guardados concurrentes no dupliquen ni salten ids.
type QuotationRepository interface {
	List() ([]entity.Quotation, error)
	Append(q entity.Quotation) (entity.Quotation, error)
}
