package handler

import (
	"log/slog"
	"net/http"

	"cityhub/internal/delivery/http/middleware"
	"cityhub/internal/delivery/http/response"
	"cityhub/internal/domain/entity"
	domainerrors "cityhub/internal/domain/errors"
	"cityhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerUserRequest struct {
	Name      string   `json:"nombre"    validate:"required,max=60"`
	Email     string   `json:"correo"    validate:"required,email"`
	Password  string   `json:"password"  validate:"required,min=8,max=64"`
	Age       int      `json:"edad"      validate:"omitempty,min=0,max=120"`
	City      string   `json:"ciudad"    validate:"required,max=60"`
	Interests []string `json:"intereses" validate:"omitempty,dive,required"`
	Offers    bool     `json:"ofertas"`
	Role      string   `json:"rol"       validate:"omitempty,oneof=user admin"`
}

type loginUserRequest struct {
	// Password length rules apply at registration only; on login any
	// non-empty value goes to the credential check.
	Email    string `json:"correo"   validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateUserRequest struct {
	Name      *string  `json:"nombre"    validate:"omitempty,max=60"`
	Age       *int     `json:"edad"      validate:"omitempty,min=0,max=120"`
	City      *string  `json:"ciudad"    validate:"omitempty,max=60"`
	Interests []string `json:"intereses" validate:"omitempty,dive,required"`
	Offers    *bool    `json:"ofertas"`
}

type dispatchOffersRequest struct {
	Subject string `json:"asunto"  validate:"required,max=120"`
	Message string `json:"mensaje" validate:"required,max=2000"`
}

// userAuthResponse is the register/login envelope.
type userAuthResponse struct {
	Token string `json:"token"`
	User  any    `json:"usuario"`
}

// List handles GET /api/user.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, http.StatusOK, users)
}

// Get handles GET /api/user/:correo.
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.uc.GetUser(c.Request().Context(), c.Param("correo"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusOK, user)
}

// Filtered handles GET /api/user/filtered. The audience city comes from the
// authenticated commerce's own record, not from the request.
func (h *UserHandler) Filtered(c echo.Context) error {
	cif, _ := c.Get(middleware.ContextKeyCommerceCIF).(string)
	if cif == "" {
		return domainerrors.ErrInvalidSession
	}

	users, err := h.uc.InterestedUsers(c.Request().Context(), cif)
	if err != nil {
		return errors.WithStack(err)
	}

	emails := make([]string, 0, len(users))
	for _, user := range users {
		emails = append(emails, user.Email)
	}

	return response.List(c, http.StatusOK, emails)
}

// Register handles POST /api/user/register. Self-registration is open; the
// requested role is honored as-is.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerUserRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.RegisterUser(c.Request().Context(), &usecase.RegisterUserInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Age:       req.Age,
		City:      req.City,
		Interests: req.Interests,
		Offers:    req.Offers,
		Role:      entity.Role(req.Role),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, userAuthResponse{Token: output.Token, User: output.User})
}

// Login handles POST /api/user/login.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginUserRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.LoginUser(c.Request().Context(), &usecase.LoginUserInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, userAuthResponse{Token: output.Token, User: output.User})
}

// Update handles PATCH /api/user/:correo. The CheckCorreo gate guarantees the
// caller only ever updates their own record.
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.UpdateUser(c.Request().Context(), c.Param("correo"), &usecase.UpdateUserInput{
		Name:      req.Name,
		Age:       req.Age,
		City:      req.City,
		Interests: req.Interests,
		Offers:    req.Offers,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusOK, user)
}

// Delete handles DELETE /api/user/:correo.
func (h *UserHandler) Delete(c echo.Context) error {
	user, err := h.uc.DeleteUser(c.Request().Context(), c.Param("correo"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Acknowledged(c, http.StatusOK, user)
}

// DispatchOffers handles POST /api/user/ofertas, fanning an offer campaign
// out to the opted-in users of the caller's city.
func (h *UserHandler) DispatchOffers(c echo.Context) error {
	var req dispatchOffersRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	cif, _ := c.Get(middleware.ContextKeyCommerceCIF).(string)
	if cif == "" {
		return domainerrors.ErrInvalidSession
	}

	output, err := h.uc.DispatchOffers(c.Request().Context(), cif, &usecase.DispatchOffersInput{
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusOK, echo.Map{
		"ciudad":        output.City,
		"destinatarios": output.Recipients,
	})
}
