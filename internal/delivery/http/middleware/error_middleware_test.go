package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "cityhub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func handleError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/comercios/CIF/B12345678", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.HandleHTTPError(err, c)

	return rec
}

func TestHandleHTTPError_AppError(t *testing.T) {
	rec := handleError(t, domainerrors.ErrCommerceNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t,
		`{"error": "ERROR_GET_ITEM: No se encontró ningún comercio con el CIF proporcionado"}`,
		rec.Body.String())
}

func TestHandleHTTPError_WrappedAppError(t *testing.T) {
	rec := handleError(t, errors.WithStack(domainerrors.ErrOwnership))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandleHTTPError_DatabaseErrorHidesCause(t *testing.T) {
	cause := errors.New("connection reset by peer")
	rec := handleError(t, domainerrors.NewDatabaseExecuteError(cause, "ERROR_GET_ITEMS"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
	assert.Contains(t, rec.Body.String(), "ERROR_GET_ITEMS")
}

func TestHandleHTTPError_EchoNotFound(t *testing.T) {
	rec := handleError(t, echo.NewHTTPError(http.StatusNotFound))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "NOT_FOUND: Recurso no encontrado"}`, rec.Body.String())
}

func TestHandleHTTPError_Unknown(t *testing.T) {
	rec := handleError(t, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "ERROR_INTERNO: Error interno del servidor"}`, rec.Body.String())
}
