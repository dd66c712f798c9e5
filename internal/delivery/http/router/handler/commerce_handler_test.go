package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cityhub/config"
	"cityhub/internal/delivery/http/validator"
	"cityhub/internal/domain/entity"
	domainerrors "cityhub/internal/domain/errors"
	mockusecase "cityhub/internal/mocks/usecase"
	"cityhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Storage = &config.StorageConfig{MediaPath: "media", PublicPath: "/media"}

	return cfg
}

func newHandlerContext(t *testing.T, method, target string, body io.Reader, contentType string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func testHandlerCommerce() *entity.Commerce {
	return &entity.Commerce{
		ID:       "commerce-1",
		Name:     "Panadería Sol",
		CIF:      "B12345678",
		Email:    "sol@example.com",
		City:     "Murcia",
		Activity: []string{"panadería"},
	}
}

func TestCommerceHandler_List(t *testing.T) {
	uc := new(mockusecase.MockCommerceUsecase)
	h := NewCommerceHandler(uc, testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newHandlerContext(t, http.MethodGet, "/api/comercios?orderByCIF=true", nil, "")
	uc.On("ListCommerces", mock.Anything, true).
		Return([]*entity.Commerce{testHandlerCommerce()}, nil)

	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	// Lists are bare arrays, not wrapped in an envelope.
	assert.True(t, strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "["))
	uc.AssertExpectations(t)
}

func TestCommerceHandler_GetByCIF_NotFound(t *testing.T) {
	uc := new(mockusecase.MockCommerceUsecase)
	h := NewCommerceHandler(uc, testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, _ := newHandlerContext(t, http.MethodGet, "/api/comercios/CIF/B00000000", nil, "")
	c.SetParamNames("cif")
	c.SetParamValues("B00000000")
	uc.On("GetCommerce", mock.Anything, "B00000000").Return(nil, domainerrors.ErrCommerceNotFound)

	err := h.GetByCIF(c)

	assert.ErrorIs(t, err, domainerrors.ErrCommerceNotFound)
}

func TestCommerceHandler_GetByActivity_EmptyIsNotFound(t *testing.T) {
	uc := new(mockusecase.MockCommerceUsecase)
	h := NewCommerceHandler(uc, testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, _ := newHandlerContext(t, http.MethodGet, "/api/comercios/Actividad/pesca", nil, "")
	c.SetParamNames("actividad")
	c.SetParamValues("pesca")
	uc.On("SearchByActivity", mock.Anything, "pesca").Return([]*entity.Commerce{}, nil)

	err := h.GetByActivity(c)

	assert.ErrorIs(t, err, domainerrors.ErrCommerceNotFound)
}

func TestCommerceHandler_Register(t *testing.T) {
	uc := new(mockusecase.MockCommerceUsecase)
	h := NewCommerceHandler(uc, testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	payload := `{
		"nombre": "Panadería Sol",
		"CIF": "B12345678",
		"direccion": "Calle Mayor 1",
		"correo": "sol@example.com",
		"password": "secret-password",
		"telefono": "968123456",
		"ciudad": "Murcia",
		"actividad": ["panadería"]
	}`
	c, rec := newHandlerContext(t, http.MethodPost, "/api/comercios/register",
		strings.NewReader(payload), echo.MIMEApplicationJSON)

	uc.On("RegisterCommerce", mock.Anything, mock.MatchedBy(func(input *usecase.RegisterCommerceInput) bool {
		return input.CIF == "B12345678" && input.Email == "sol@example.com"
	})).Return(&usecase.CommerceAuthOutput{Token: "jwt-token", Commerce: testHandlerCommerce()}, nil)

	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "token")
	assert.Contains(t, body, "comercio")
	uc.AssertExpectations(t)
}

func TestCommerceHandler_Register_InvalidPayload(t *testing.T) {
	uc := new(mockusecase.MockCommerceUsecase)
	h := NewCommerceHandler(uc, testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	// CIF too short and password below the minimum.
	payload := `{
		"nombre": "Panadería Sol",
		"CIF": "B123",
		"direccion": "Calle Mayor 1",
		"correo": "sol@example.com",
		"password": "short",
		"telefono": "968123456",
		"ciudad": "Murcia"
	}`
	c, _ := newHandlerContext(t, http.MethodPost, "/api/comercios/register",
		strings.NewReader(payload), echo.MIMEApplicationJSON)

	err := h.Register(c)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ERROR_VALIDATION", appErr.ErrorCode())
	uc.AssertNotCalled(t, "RegisterCommerce", mock.Anything, mock.Anything)
}

func TestCommerceHandler_Login_WrongShortPassword(t *testing.T) {
	uc := new(mockusecase.MockCommerceUsecase)
	h := NewCommerceHandler(uc, testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	// A short password must still reach the credential check and come back
	// as a 401, not be rejected by payload validation.
	payload := `{"correo": "c@test.com", "password": "wrong"}`
	c, _ := newHandlerContext(t, http.MethodPost, "/api/comercios/login",
		strings.NewReader(payload), echo.MIMEApplicationJSON)

	uc.On("LoginCommerce", mock.Anything, mock.MatchedBy(func(input *usecase.LoginCommerceInput) bool {
		return input.Email == "c@test.com" && input.Password == "wrong"
	})).Return(nil, domainerrors.ErrInvalidCredentials)

	err := h.Login(c)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	uc.AssertExpectations(t)
}

func TestCommerceHandler_UploadPhoto_MissingFile(t *testing.T) {
	uc := new(mockusecase.MockCommerceUsecase)
	h := NewCommerceHandler(uc, testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, _ := newHandlerContext(t, http.MethodPost, "/api/comercios/fotos/B12345678", nil, "")
	c.SetParamNames("cif")
	c.SetParamValues("B12345678")

	err := h.UploadPhoto(c)

	assert.ErrorIs(t, err, domainerrors.ErrMissingFile)
	uc.AssertNotCalled(t, "UploadPhoto", mock.Anything, mock.Anything, mock.Anything)
}

func TestCommerceHandler_UploadPhoto(t *testing.T) {
	uc := new(mockusecase.MockCommerceUsecase)
	h := NewCommerceHandler(uc, testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", "foto.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	c, rec := newHandlerContext(t, http.MethodPost, "/api/comercios/fotos/B12345678",
		&buf, writer.FormDataContentType())
	c.SetParamNames("cif")
	c.SetParamValues("B12345678")

	uc.On("UploadPhoto", mock.Anything, "B12345678", mock.MatchedBy(func(input *usecase.UploadPhotoInput) bool {
		return input.OriginalName == "foto.png" &&
			input.PublicBaseURL == "http://example.com/media"
	})).Return(testHandlerCommerce(), nil)

	require.NoError(t, h.UploadPhoto(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "data")
	uc.AssertExpectations(t)
}

func TestCommerceHandler_Delete_Acknowledged(t *testing.T) {
	uc := new(mockusecase.MockCommerceUsecase)
	h := NewCommerceHandler(uc, testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newHandlerContext(t, http.MethodDelete, "/api/comercios/B12345678", nil, "")
	c.SetParamNames("cif")
	c.SetParamValues("B12345678")
	uc.On("DeleteCommerce", mock.Anything, "B12345678", false).Return(testHandlerCommerce(), nil)

	require.NoError(t, h.Delete(c))

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.JSONEq(t, "true", string(body["acknowledged"]))
	assert.Contains(t, body, "data")
}

func TestCommerceHandler_AdminDelete_Hard(t *testing.T) {
	uc := new(mockusecase.MockCommerceUsecase)
	h := NewCommerceHandler(uc, testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newHandlerContext(t, http.MethodDelete, "/api/comercios/admin/B12345678", nil, "")
	c.SetParamNames("cif")
	c.SetParamValues("B12345678")
	uc.On("DeleteCommerce", mock.Anything, "B12345678", true).Return(testHandlerCommerce(), nil)

	require.NoError(t, h.AdminDelete(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertExpectations(t)
}

func TestCommerceHandler_PageQR(t *testing.T) {
	uc := new(mockusecase.MockCommerceUsecase)
	h := NewCommerceHandler(uc, testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newHandlerContext(t, http.MethodGet, "/api/comercios/qr/B12345678", nil, "")
	c.SetParamNames("cif")
	c.SetParamValues("B12345678")
	uc.On("GeneratePageQR", mock.Anything, "B12345678", "http://example.com").
		Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	require.NoError(t, h.PageQR(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	uc.AssertExpectations(t)
}
