package repository

import (
	"context"

	"github.com/klium/quotation-api/internal/domain/entity"
)

// CatalogRepository puerto de consulta al catálogo de negocio (solo lectura).
// Los SKUs llegan ya normalizados (8 dígitos con ceros a la izquierda); SKUs
// sin producto activo simplemente no aparecen en el resultado, no son error.
// Un fallo de infraestructura debe envolverse en domain.ErrLookupUnavailable
// para que el caller distinga "sin resultados" de "catálogo caído".
type CatalogRepository interface {
	FindBySKU(ctx context.Context, skus []string) ([]entity.Product, error)
	SearchBySupplierRef(ctx context.Context, query string) ([]entity.Product, error)
}
