package catalog_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klium/quotation-api/internal/application/catalog"
	"github.com/klium/quotation-api/internal/domain"
	"github.com/klium/quotation-api/internal/domain/entity"
)

type fakeRepo struct {
	lastSKUs  []string
	lastQuery string
	result    []entity.Product
	err       error
}

func (f *fakeRepo) FindBySKU(_ context.Context, skus []string) ([]entity.Product, error) {
	f.lastSKUs = skus
	return f.result, f.err
}

func (f *fakeRepo) SearchBySupplierRef(_ context.Context, q string) ([]entity.Product, error) {
	f.lastQuery = q
	return f.result, f.err
}

// ──────────────────────────────────────────────────────────────────────────────
// Normalización de SKU
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizeSKU(t *testing.T) {
	assert.Equal(t, "00000123", catalog.NormalizeSKU("123"))
	assert.Equal(t, "00000123", catalog.NormalizeSKU("  123  "), "se recortan espacios antes de completar")
	assert.Equal(t, "12345678", catalog.NormalizeSKU("12345678"), "8 dígitos quedan igual")
	assert.Equal(t, "123456789", catalog.NormalizeSKU("123456789"), "más de 8 no se recorta")
}

// ──────────────────────────────────────────────────────────────────────────────
// FindBySKU
// ──────────────────────────────────────────────────────────────────────────────

func TestFindBySKU_NormalizaYDescartaVacios(t *testing.T) {
	repo := &fakeRepo{result: []entity.Product{{SKU: "00000123", ListPrice: decimal.RequireFromString("10")}}}
	uc := catalog.NewLookupUseCase(repo)

	out, err := uc.FindBySKU(context.Background(), []string{"123", "", "  ", "45"})

	require.NoError(t, err)
	assert.Equal(t, []string{"00000123", "00000045"}, repo.lastSKUs)
	require.Len(t, out.Products, 1)
	assert.Equal(t, "00000123", out.Products[0].SKU)
}

func TestFindBySKU_SinSKUsValidos_ErrValidation(t *testing.T) {
	uc := catalog.NewLookupUseCase(&fakeRepo{})

	_, err := uc.FindBySKU(context.Background(), []string{"", "   "})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestFindBySKU_SinResultadosNoEsError(t *testing.T) {
	uc := catalog.NewLookupUseCase(&fakeRepo{})

	out, err := uc.FindBySKU(context.Background(), []string{"123"})

	require.NoError(t, err, "lista vacía y catálogo caído son cosas distintas")
	assert.Empty(t, out.Products)
}

func TestFindBySKU_PropagaCaidaDelCatalogo(t *testing.T) {
	uc := catalog.NewLookupUseCase(&fakeRepo{err: domain.ErrLookupUnavailable})

	_, err := uc.FindBySKU(context.Background(), []string{"123"})

	assert.ErrorIs(t, err, domain.ErrLookupUnavailable)
}

// ──────────────────────────────────────────────────────────────────────────────
// SearchBySupplierRef
// ──────────────────────────────────────────────────────────────────────────────

func TestSearch_RequiereMinimoDosCaracteres(t *testing.T) {
	uc := catalog.NewLookupUseCase(&fakeRepo{})

	_, err := uc.SearchBySupplierRef(context.Background(), "B")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.SearchBySupplierRef(context.Background(), "  B  ")
	assert.ErrorIs(t, err, domain.ErrValidation, "los espacios no cuentan para el mínimo")
}

func TestSearch_RecortaLaConsulta(t *testing.T) {
	repo := &fakeRepo{}
	uc := catalog.NewLookupUseCase(repo)

	_, err := uc.SearchBySupplierRef(context.Background(), "  BOSCH  ")

	require.NoError(t, err)
	assert.Equal(t, "BOSCH", repo.lastQuery)
}
