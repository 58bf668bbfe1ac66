package http_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/tu-usuario/almacen-api/internal/interfaces/http"
)

// buildProductApp arma una app con solo la ruta de alta. El caso de uso va
// nil: estos casos cubren el rechazo del formulario, que ocurre antes de
// tocar el caso de uso.
func buildProductApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	h := apphttp.NewProductHandler(nil, t.TempDir(), "/uploads")
	app.Post("/api/productos", h.Create)
	return app
}

func postMultipart(t *testing.T, app *fiber.App, fields map[string]string) *http.Response {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/productos", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// categoriaId con basura al final ("12abc") debe rechazarse, no truncarse a 12.
func TestProductHandler_Create_CategoriaIdConBasura(t *testing.T) {
	app := buildProductApp(t)

	resp := postMultipart(t, app, map[string]string{
		"nombre":           "Yerba Mate 1kg",
		"precio":           "1500",
		"categoriaId":      "12abc",
		"fechaelaboracion": "2026-01-10",
		"fechaVencimiento": "2027-01-10",
		"depositos":        `[{"IdDeposito":1,"cantidad":25}]`,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "categoriaId inválido")
}

func TestProductHandler_Create_PrecioInvalido(t *testing.T) {
	app := buildProductApp(t)

	resp := postMultipart(t, app, map[string]string{
		"nombre":    "Yerba Mate 1kg",
		"precio":    "no-es-numero",
		"depositos": `[{"IdDeposito":1,"cantidad":25}]`,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "precio inválido")
}

func TestProductHandler_Create_DepositosMalformados(t *testing.T) {
	app := buildProductApp(t)

	resp := postMultipart(t, app, map[string]string{
		"nombre":    "Yerba Mate 1kg",
		"precio":    "1500",
		"depositos": `{esto no es json`,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "depositos inválido")
}
