// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"cityhub/config"
	"cityhub/internal/delivery/http/response"
	domainerrors "cityhub/internal/domain/errors"
	"cityhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CommerceHandler holds dependencies for commerce-related handlers.
type CommerceHandler struct {
	uc     usecase.CommerceUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewCommerceHandler is the constructor for CommerceHandler, injected by Fx.
func NewCommerceHandler(uc usecase.CommerceUsecase, cfg *config.Config, logger *slog.Logger) *CommerceHandler {
	return &CommerceHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

type registerCommerceRequest struct {
	Name     string   `json:"nombre"    validate:"required,max=60"`
	CIF      string   `json:"CIF"       validate:"required,len=9,alphanum"`
	Address  string   `json:"direccion" validate:"required,max=120"`
	Email    string   `json:"correo"    validate:"required,email"`
	Password string   `json:"password"  validate:"required,min=8,max=64"`
	Phone    string   `json:"telefono"  validate:"required,numeric,min=9,max=10"`
	City     string   `json:"ciudad"    validate:"required,max=60"`
	Activity []string `json:"actividad" validate:"omitempty,dive,required"`
}

type loginCommerceRequest struct {
	// Password length rules apply at registration only; on login any
	// non-empty value goes to the credential check.
	Email    string `json:"correo"   validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateCommerceRequest struct {
	Name     *string  `json:"nombre"    validate:"omitempty,max=60"`
	Address  *string  `json:"direccion" validate:"omitempty,max=120"`
	Email    *string  `json:"correo"    validate:"omitempty,email"`
	Phone    *string  `json:"telefono"  validate:"omitempty,numeric,min=9,max=10"`
	City     *string  `json:"ciudad"    validate:"omitempty,max=60"`
	Activity []string `json:"actividad" validate:"omitempty,dive,required"`
}

type publishContentRequest struct {
	Title   *string `json:"titulo"  validate:"omitempty,max=120"`
	Summary *string `json:"resumen" validate:"omitempty,max=500"`
	Text    *string `json:"texto"   validate:"omitempty,max=2000"`
}

type addReviewRequest struct {
	Scoring float64 `json:"scoring" validate:"min=0,max=5"`
	Review  string  `json:"review"  validate:"required,max=500"`
}

// commerceAuthResponse is the register/login envelope.
type commerceAuthResponse struct {
	Token    string `json:"token"`
	Commerce any    `json:"comercio"`
}

// List handles GET /api/comercios, optionally ordered by CIF.
func (h *CommerceHandler) List(c echo.Context) error {
	orderByCIF := c.QueryParam("orderByCIF") == "true"

	commerces, err := h.uc.ListCommerces(c.Request().Context(), orderByCIF)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, http.StatusOK, commerces)
}

// GetByCIF handles GET /api/comercios/CIF/:cif.
func (h *CommerceHandler) GetByCIF(c echo.Context) error {
	commerce, err := h.uc.GetCommerce(c.Request().Context(), c.Param("cif"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusOK, commerce)
}

// GetByActivity handles GET /api/comercios/Actividad/:actividad.
func (h *CommerceHandler) GetByActivity(c echo.Context) error {
	commerces, err := h.uc.SearchByActivity(c.Request().Context(), c.Param("actividad"))
	if err != nil {
		return errors.WithStack(err)
	}
	if len(commerces) == 0 {
		return domainerrors.ErrCommerceNotFound
	}

	return response.List(c, http.StatusOK, commerces)
}

// GetByCity handles GET /api/comercios/Ciudad/:ciudad.
func (h *CommerceHandler) GetByCity(c echo.Context) error {
	commerces, err := h.uc.SearchByCity(c.Request().Context(), c.Param("ciudad"))
	if err != nil {
		return errors.WithStack(err)
	}
	if len(commerces) == 0 {
		return domainerrors.ErrCommerceNotFound
	}

	return response.List(c, http.StatusOK, commerces)
}

// Register handles POST /api/comercios/register. The route is gated on an
// admin user token.
func (h *CommerceHandler) Register(c echo.Context) error {
	var req registerCommerceRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.RegisterCommerce(c.Request().Context(), &usecase.RegisterCommerceInput{
		Name:     req.Name,
		CIF:      req.CIF,
		Address:  req.Address,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		City:     req.City,
		Activity: req.Activity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, commerceAuthResponse{Token: output.Token, Commerce: output.Commerce})
}

// Login handles POST /api/comercios/login.
func (h *CommerceHandler) Login(c echo.Context) error {
	var req loginCommerceRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.LoginCommerce(c.Request().Context(), &usecase.LoginCommerceInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, commerceAuthResponse{Token: output.Token, Commerce: output.Commerce})
}

// Update handles PATCH /api/comercios/:cif. Ownership is enforced by the
// CheckCIF gate before this handler runs.
func (h *CommerceHandler) Update(c echo.Context) error {
	var req updateCommerceRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	commerce, err := h.uc.UpdateCommerce(c.Request().Context(), c.Param("cif"), &usecase.UpdateCommerceInput{
		Name:     req.Name,
		Address:  req.Address,
		Email:    req.Email,
		Phone:    req.Phone,
		City:     req.City,
		Activity: req.Activity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusOK, commerce)
}

// PublishContent handles PATCH /api/comercios/info/:cif.
func (h *CommerceHandler) PublishContent(c echo.Context) error {
	var req publishContentRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	commerce, err := h.uc.PublishContent(c.Request().Context(), c.Param("cif"), &usecase.PublishContentInput{
		Title:   req.Title,
		Summary: req.Summary,
		Text:    req.Text,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusOK, commerce)
}

// AddReview handles PATCH /api/comercios/review/:cif. Any authenticated
// user with the "user" role may append a review.
func (h *CommerceHandler) AddReview(c echo.Context) error {
	var req addReviewRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	commerce, err := h.uc.AddReview(c.Request().Context(), c.Param("cif"), &usecase.AddReviewInput{
		Scoring: req.Scoring,
		Review:  req.Review,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusOK, commerce)
}

// UploadPhoto handles POST /api/comercios/fotos/:cif (multipart "image").
func (h *CommerceHandler) UploadPhoto(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return domainerrors.ErrMissingFile
	}

	src, err := fileHeader.Open()
	if err != nil {
		return domainerrors.ErrMissingFile
	}
	defer src.Close()

	commerce, err := h.uc.UploadPhoto(c.Request().Context(), c.Param("cif"), &usecase.UploadPhotoInput{
		OriginalName:  fileHeader.Filename,
		Content:       src,
		PublicBaseURL: mediaBaseURL(c, h.cfg.Storage),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusOK, commerce)
}

// Delete handles DELETE /api/comercios/:cif (logical removal).
func (h *CommerceHandler) Delete(c echo.Context) error {
	commerce, err := h.uc.DeleteCommerce(c.Request().Context(), c.Param("cif"), false)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Acknowledged(c, http.StatusOK, commerce)
}

// AdminDelete handles DELETE /api/comercios/admin/:cif (physical removal).
func (h *CommerceHandler) AdminDelete(c echo.Context) error {
	commerce, err := h.uc.DeleteCommerce(c.Request().Context(), c.Param("cif"), true)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Acknowledged(c, http.StatusOK, commerce)
}

// PageQR handles GET /api/comercios/qr/:cif, rendering a PNG QR code that
// points at the commerce's public page.
func (h *CommerceHandler) PageQR(c echo.Context) error {
	png, err := h.uc.GeneratePageQR(c.Request().Context(), c.Param("cif"), requestBaseURL(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// requestBaseURL rebuilds the public origin from the inbound request.
func requestBaseURL(c echo.Context) string {
	return c.Scheme() + "://" + c.Request().Host
}

// mediaBaseURL is the public prefix under which uploaded media is served.
func mediaBaseURL(c echo.Context, storage *config.StorageConfig) string {
	publicPath := "/media"
	if storage != nil && storage.PublicPath != "" {
		publicPath = storage.PublicPath
	}

	return requestBaseURL(c) + publicPath
}
