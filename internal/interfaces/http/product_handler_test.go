package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getWithToken(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", bearerToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestProducts_BuscaPorSKUNormalizado(t *testing.T) {
	app := buildApp(t, catalogWithProducts(), &stubStore{})

	// "111" se completa a "00000111" antes de consultar el catálogo.
	resp := getWithToken(t, app, "/api/products?skus=111")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Products []struct {
			SKU  string `json:"sku"`
			Name string `json:"name"`
		} `json:"products"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Products, 1)
	assert.Equal(t, "00000111", body.Products[0].SKU)
	assert.Equal(t, "Boormachine", body.Products[0].Name)
}

func TestProducts_SinParametroSkus_Retorna400(t *testing.T) {
	app := buildApp(t, catalogWithProducts(), &stubStore{})

	resp := getWithToken(t, app, "/api/products")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProducts_SKUInexistente_ListaVacia(t *testing.T) {
	app := buildApp(t, catalogWithProducts(), &stubStore{})

	resp := getWithToken(t, app, "/api/products?skus=999")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode, "SKU sin producto no es error")

	var body struct {
		Products []json.RawMessage `json:"products"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Products)
}

func TestSearch_ConsultaCorta_Retorna400(t *testing.T) {
	app := buildApp(t, catalogWithProducts(), &stubStore{})

	resp := getWithToken(t, app, "/api/products/search?q=B")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "la búsqueda exige al menos 2 caracteres")
}
