package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/klium/quotation-api/internal/domain"
	"github.com/klium/quotation-api/internal/domain/entity"
	"github.com/klium/quotation-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

const productColumns = `article_number, supplier_reference, description, list_price,
		discount_amount, discount_pct, ecotax, cost, margin, margin_pct,
		active, visible_be, visible_nl, visible_com`

// CatalogRepo implementación del puerto CatalogRepository sobre PostgreSQL
// (usable con pool o tx). La tabla business es la fuente comercial; stock y
// cantidad mínima de venta se enriquecen desde las tablas de almacén cuando
// existen filas (best effort: su ausencia no es error).
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador de catálogo. Pasar pool o tx (Querier).
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// FindBySKU devuelve los productos activos para los SKUs dados. SKUs sin fila
// activa simplemente no aparecen en el resultado. Un fallo de la consulta
// principal se envuelve en ErrLookupUnavailable para que el handler lo
// distinga de "sin resultados".
func (r *CatalogRepo) FindBySKU(ctx context.Context, skus []string) ([]entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM business
		WHERE article_number = ANY($1) AND active`
	rows, err := r.q.Query(ctx, query, skus)
	if err != nil {
		return nil, fmt.Errorf("%w: find by sku: %v", domain.ErrLookupUnavailable, err)
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLookupUnavailable, err)
	}
	r.enrichStorage(ctx, products)
	return products, nil
}

// SearchBySupplierRef busca productos activos cuya referencia de proveedor
// contenga la subcadena (case-insensitive).
func (r *CatalogRepo) SearchBySupplierRef(ctx context.Context, q string) ([]entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM business
		WHERE supplier_reference ILIKE '%' || $1 || '%' AND active
		ORDER BY article_number`
	rows, err := r.q.Query(ctx, query, q)
	if err != nil {
		return nil, fmt.Errorf("%w: search by supplier ref: %v", domain.ErrLookupUnavailable, err)
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLookupUnavailable, err)
	}
	r.enrichStorage(ctx, products)
	return products, nil
}

func scanProducts(rows pgx.Rows) ([]entity.Product, error) {
	var list []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.SKU, &p.SupplierReference, &p.Name, &p.ListPrice,
			&p.DiscountAmount, &p.DiscountPct, &p.Ecotax, &p.Cost, &p.Margin, &p.MarginPct,
			&p.Active, &p.VisibleBE, &p.VisibleNL, &p.VisibleCOM,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// enrichStorage completa stock (storage_stock_update) y cantidad mínima de
// venta + unidad (storage_article_price). Las tablas de almacén se cargan por
// otro proceso y pueden faltar filas o la tabla entera: cualquier fallo deja
// los campos sin valor.
func (r *CatalogRepo) enrichStorage(ctx context.Context, products []entity.Product) {
	if len(products) == 0 {
		return
	}
	skus := make([]string, 0, len(products))
	index := make(map[string]int, len(products))
	for i, p := range products {
		skus = append(skus, p.SKU)
		index[p.SKU] = i
	}

	if rows, err := r.q.Query(ctx,
		`SELECT article_number, stock FROM storage_stock_update WHERE article_number = ANY($1)`,
		skus,
	); err == nil {
		for rows.Next() {
			var sku string
			var stock decimal.Decimal
			if err := rows.Scan(&sku, &stock); err != nil {
				break
			}
			if i, ok := index[sku]; ok {
				products[i].Stock = decimal.NewNullDecimal(stock)
			}
		}
		rows.Close()
	}

	if rows, err := r.q.Query(ctx,
		`SELECT article_number, min_sale_quantity, unit_of_measure FROM storage_article_price WHERE article_number = ANY($1)`,
		skus,
	); err == nil {
		for rows.Next() {
			var sku string
			var msq decimal.NullDecimal
			var uom *string
			if err := rows.Scan(&sku, &msq, &uom); err != nil {
				break
			}
			if i, ok := index[sku]; ok {
				products[i].MinSaleQuantity = msq
				if uom != nil {
					products[i].UnitOfMeasure = *uom
				}
			}
		}
		rows.Close()
	}
}
