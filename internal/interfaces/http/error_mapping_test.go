package http

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/domain"
)

func appConError(err error) *fiber.App {
	app := fiber.New()
	app.Get("/err", func(c *fiber.Ctx) error {
		return writeError(c, err)
	})
	return app
}

func TestWriteError_ErroresDeDominioMapeanEstado(t *testing.T) {
	casos := []struct {
		nombre string
		err    error
		estado int
		codigo string
	}{
		{"entrada inválida", domain.ErrInvalidInput, http.StatusBadRequest, "VALIDATION"},
		{"depósito no encontrado", fmt.Errorf("%w: deposito 9", domain.ErrDepotNotFound), http.StatusNotFound, "DEPOT_NOT_FOUND"},
		{"no encontrado", fmt.Errorf("%w: producto 9", domain.ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"duplicado", domain.ErrDuplicate, http.StatusConflict, "DUPLICATE"},
		{"referencia inválida", domain.ErrInvalidReference, http.StatusBadRequest, "INVALID_REFERENCE"},
	}

	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			app := appConError(tc.err)
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/err", nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.estado, resp.StatusCode)
			body, _ := io.ReadAll(resp.Body)
			assert.Contains(t, string(body), tc.codigo)
		})
	}
}

// Una falla no clasificada (un commit caído, por ejemplo) se loguea con su
// detalle en el servidor y al cliente le llega solo un 500 opaco.
func TestWriteError_ErrorInterno_SeLogueaYEsOpaco(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	app := appConError(errors.New("commit transaction: conexión perdida"))
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/err", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INTERNAL")
	assert.NotContains(t, string(body), "conexión perdida",
		"el detalle del error no debe filtrarse al cliente")

	assert.Contains(t, buf.String(), "conexión perdida",
		"el detalle completo debe quedar en el log del servidor")
	assert.Contains(t, buf.String(), "/err")
}
