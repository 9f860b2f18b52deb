package quotation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/klium/quotation-api/internal/application/catalog"
	"github.com/klium/quotation-api/internal/application/dto"
	"github.com/klium/quotation-api/internal/domain"
	"github.com/klium/quotation-api/internal/domain/entity"
	"github.com/klium/quotation-api/internal/domain/pricing"
	"github.com/klium/quotation-api/internal/domain/repository"
)

// UseCase arma ofertas: resuelve los SKUs contra el catálogo, enriquece las
// líneas con el motor de precios y guarda/lista ofertas en el store.
type UseCase struct {
	catalogRepo repository.CatalogRepository
	store       repository.QuotationRepository
	engine      *pricing.Engine
	maxItems    int
}

// NewUseCase construye el caso de uso. maxItems limita los SKUs por oferta
// (las filas sobrantes se descartan, no es error).
func NewUseCase(catalogRepo repository.CatalogRepository, store repository.QuotationRepository, engine *pricing.Engine, maxItems int) *UseCase {
	return &UseCase{catalogRepo: catalogRepo, store: store, engine: engine, maxItems: maxItems}
}

// Build resuelve los items contra el catálogo y devuelve líneas enriquecidas
// (en el orden de entrada) + totales. SKUs sin producto activo se descartan en
// silencio; las propuestas ya tecleadas por el usuario se conservan.
func (uc *UseCase) Build(ctx context.Context, items []dto.QuotationItemRequest) ([]pricing.Line, pricing.Totals, error) {
	valid := make([]dto.QuotationItemRequest, 0, len(items))
	for _, it := range items {
		if strings.TrimSpace(it.SKU) == "" {
			continue
		}
		valid = append(valid, it)
	}
	if len(valid) == 0 {
		return nil, pricing.Totals{}, fmt.Errorf("%w: no items provided", domain.ErrValidation)
	}
	if uc.maxItems > 0 && len(valid) > uc.maxItems {
		valid = valid[:uc.maxItems]
	}

	skus := make([]string, 0, len(valid))
	for _, it := range valid {
		skus = append(skus, catalog.NormalizeSKU(it.SKU))
	}
	products, err := uc.catalogRepo.FindBySKU(ctx, skus)
	if err != nil {
		return nil, pricing.Totals{}, err
	}
	bySKU := make(map[string]entity.Product, len(products))
	for _, p := range products {
		bySKU[p.SKU] = p
	}

	lines := make([]pricing.Line, 0, len(valid))
	for _, it := range valid {
		p, ok := bySKU[catalog.NormalizeSKU(it.SKU)]
		if !ok {
			continue // SKU sin producto: fuera del resultado, no es error
		}
		lines = append(lines, uc.engine.EnrichLine(p, it.Amount, it.Proposal))
	}
	return lines, uc.engine.ComputeTotals(lines), nil
}

// Compute calcula la oferta y la devuelve como DTO (endpoint de cálculo y
// recalculo en vivo del cliente: ambos pasan por aquí para que servidor y
// cliente produzcan los mismos números).
func (uc *UseCase) Compute(ctx context.Context, in dto.QuotationRequest) (*dto.QuotationResponse, error) {
	lines, totals, err := uc.Build(ctx, in.Items)
	if err != nil {
		return nil, err
	}
	out := &dto.QuotationResponse{
		Lines:  make([]dto.LineResponse, 0, len(lines)),
		Totals: toTotalsResponse(totals),
	}
	for _, l := range lines {
		out.Lines = append(out.Lines, toLineResponse(l))
	}
	return out, nil
}

// Save valida los datos del cliente, recalcula la oferta y la persiste.
// El total guardado es el ProposedPrice del momento y la fecha la pone el
// servidor (fecha ISO del día).
func (uc *UseCase) Save(ctx context.Context, in dto.SaveQuotationRequest) (*dto.QuotationRecordResponse, error) {
	if strings.TrimSpace(in.CustomerName) == "" {
		return nil, fmt.Errorf("%w: customer_name es requerido", domain.ErrValidation)
	}
	lines, totals, err := uc.Build(ctx, in.Items)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: ningún SKU resolvió a un producto", domain.ErrValidation)
	}

	q := entity.Quotation{
		CustomerName: in.CustomerName,
		Company:      in.Company,
		VATNumber:    in.VATNumber,
		Address:      in.Address,
		PostalCode:   in.PostalCode,
		City:         in.City,
		Country:      in.Country,
		Email:        in.Email,
		Total:        totals.ProposedPrice.Round(2),
		Date:         time.Now().Format("2006-01-02"),
		Items:        make([]entity.QuotationItem, 0, len(lines)),
	}
	for _, l := range lines {
		q.Items = append(q.Items, entity.QuotationItem{
			SKU:    l.SKU,
			Name:   l.Name,
			Amount: l.Amount,
			Price:  l.Proposal,
		})
	}

	stored, err := uc.store.Append(q)
	if err != nil {
		return nil, err
	}
	out := toRecordResponse(stored)
	return &out, nil
}

// Dashboard lista todas las ofertas guardadas.
func (uc *UseCase) Dashboard() (*dto.DashboardResponse, error) {
	list, err := uc.store.List()
	if err != nil {
		return nil, err
	}
	out := &dto.DashboardResponse{Quotations: make([]dto.QuotationRecordResponse, 0, len(list))}
	for _, q := range list {
		out.Quotations = append(out.Quotations, toRecordResponse(q))
	}
	return out, nil
}

func toLineResponse(l pricing.Line) dto.LineResponse {
	return dto.LineResponse{
		SKU:               l.SKU,
		SupplierReference: l.SupplierReference,
		Name:              l.Name,
		Amount:            l.Amount,
		ListPrice:         l.ListPrice,
		DiscountAmount:    l.DiscountAmount,
		DiscountPct:       l.DiscountPct,
		Ecotax:            l.Ecotax,
		Cost:              l.Cost,
		Margin:            l.Margin,
		MarginPct:         l.MarginPct,
		Proposal:          l.Proposal,
		ProposalMarginPct: l.ProposalMarginPct,
		Active:            l.Active,
		VisibleBE:         l.VisibleBE,
		VisibleNL:         l.VisibleNL,
		VisibleCOM:        l.VisibleCOM,
		Stock:             l.Stock,
		MinSaleQuantity:   l.MinSaleQuantity,
		UnitOfMeasure:     l.UnitOfMeasure,
	}
}

func toTotalsResponse(t pricing.Totals) dto.TotalsResponse {
	return dto.TotalsResponse{
		CurrentPrice:      t.CurrentPrice,
		ProposedPrice:     t.ProposedPrice,
		CurrentCost:       t.CurrentCost,
		CurrentProfit:     t.CurrentProfit,
		ProposedProfit:    t.ProposedProfit,
		CurrentMarginPct:  t.CurrentMarginPct,
		ProposedMarginPct: t.ProposedMarginPct,
		DiscountAmount:    t.DiscountAmount,
		DiscountPct:       t.DiscountPct,
		ServiceFee:        t.ServiceFee,
		ServiceFeeDetails: t.ServiceFeeDetails,
	}
}

func toRecordResponse(q entity.Quotation) dto.QuotationRecordResponse {
	items := make([]dto.QuotationItemRecord, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, dto.QuotationItemRecord{
			SKU:    it.SKU,
			Name:   it.Name,
			Amount: it.Amount,
			Price:  it.Price,
		})
	}
	return dto.QuotationRecordResponse{
		ID:           q.ID,
		CustomerName: q.CustomerName,
		Company:      q.Company,
		VATNumber:    q.VATNumber,
		Address:      q.Address,
		PostalCode:   q.PostalCode,
		City:         q.City,
		Country:      q.Country,
		Email:        q.Email,
		Total:        q.Total,
		Date:         q.Date,
		Items:        items,
	}
}
