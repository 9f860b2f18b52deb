package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/klium/quotation-api/internal/application/dto"
	"github.com/klium/quotation-api/internal/domain"
	"github.com/klium/quotation-api/internal/domain/entity"
	"github.com/klium/quotation-api/internal/domain/repository"
)

// MinSearchLength longitud mínima de la búsqueda por referencia de proveedor.
const MinSearchLength = 2

// LookupUseCase consulta de productos contra el catálogo de negocio.
type LookupUseCase struct {
	repo repository.CatalogRepository
}

// NewLookupUseCase construye el caso de uso.
func NewLookupUseCase(repo repository.CatalogRepository) *LookupUseCase {
	return &LookupUseCase{repo: repo}
}

// NormalizeSKU completa el SKU a 8 dígitos con ceros a la izquierda.
func NormalizeSKU(sku string) string {
	sku = strings.TrimSpace(sku)
	for len(sku) < 8 {
		sku = "0" + sku
	}
	return sku
}

// FindBySKU normaliza los SKUs y consulta el catálogo. SKUs vacíos se
// descartan; sin SKUs válidos devuelve ErrValidation. SKUs sin producto no son
// error: simplemente faltan en el resultado.
func (uc *LookupUseCase) FindBySKU(ctx context.Context, skus []string) (*dto.ProductListResponse, error) {
	normalized := make([]string, 0, len(skus))
	for _, sku := range skus {
		if strings.TrimSpace(sku) == "" {
			continue
		}
		normalized = append(normalized, NormalizeSKU(sku))
	}
	if len(normalized) == 0 {
		return nil, fmt.Errorf("%w: sin SKUs", domain.ErrValidation)
	}
	products, err := uc.repo.FindBySKU(ctx, normalized)
	if err != nil {
		return nil, err
	}
	return toProductListResponse(products), nil
}

// SearchBySupplierRef busca por subcadena de referencia de proveedor.
// Exige al menos MinSearchLength caracteres.
func (uc *LookupUseCase) SearchBySupplierRef(ctx context.Context, query string) (*dto.ProductListResponse, error) {
	query = strings.TrimSpace(query)
	if len(query) < MinSearchLength {
		return nil, fmt.Errorf("%w: la búsqueda requiere al menos %d caracteres", domain.ErrValidation, MinSearchLength)
	}
	products, err := uc.repo.SearchBySupplierRef(ctx, query)
	if err != nil {
		return nil, err
	}
	return toProductListResponse(products), nil
}

func toProductListResponse(products []entity.Product) *dto.ProductListResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ToProductResponse(p))
	}
	return &dto.ProductListResponse{Products: out}
}

// ToProductResponse mapea la entidad al DTO de salida.
func ToProductResponse(p entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		SKU:               p.SKU,
		SupplierReference: p.SupplierReference,
		Name:              p.Name,
		ListPrice:         p.ListPrice,
		DiscountAmount:    p.DiscountAmount,
		DiscountPct:       p.DiscountPct,
		Ecotax:            p.Ecotax,
		Cost:              p.Cost,
		Margin:            p.Margin,
		MarginPct:         p.MarginPct,
		Active:            p.Active,
		VisibleBE:         p.VisibleBE,
		VisibleNL:         p.VisibleNL,
		VisibleCOM:        p.VisibleCOM,
		Stock:             p.Stock,
		MinSaleQuantity:   p.MinSaleQuantity,
		UnitOfMeasure:     p.UnitOfMeasure,
	}
}
