package middleware

import (
	"strings"

	"cityhub/internal/domain/entity"
	domainerrors "cityhub/internal/domain/errors"
	"cityhub/internal/domain/repository"
	"cityhub/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Context keys under which the resolved principal is attached.
const (
	// ContextKeyCommerce holds the resolved *entity.Commerce, nil when the
	// token's id no longer resolves to a record.
	ContextKeyCommerce = "comercio"

	// ContextKeyCommerceCIF holds the CIF embedded in the commerce token.
	ContextKeyCommerceCIF = "comercioCIF"

	// ContextKeyUser holds the resolved *entity.User, nil when the token's
	// id no longer resolves to a record.
	ContextKeyUser = "usuario"

	// ContextKeyRoles holds the entity.Roles carried by a user token.
	ContextKeyRoles = "roles"
)

// AuthMiddleware resolves the bearer token into a principal and gates routes
// on ownership and role.
type AuthMiddleware struct {
	tokenSvc     service.TokenService
	commerceRepo repository.CommerceRepository
	userRepo     repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(
	tokenSvc service.TokenService,
	commerceRepo repository.CommerceRepository,
	userRepo repository.UserRepository,
) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc:     tokenSvc,
		commerceRepo: commerceRepo,
		userRepo:     userRepo,
	}
}

// bearerToken extracts the raw token from the Authorization header.
func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", domainerrors.ErrNoToken
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return "", domainerrors.ErrTokenFormat
	}

	return tokenString, nil
}

// AuthenticateCommerce resolves a commerce principal from the bearer token.
// Any verification failure is treated uniformly as absence of a valid
// principal. A token whose id no longer resolves to a record still passes,
// with a nil principal attached; write gates reject it downstream.
func (m *AuthMiddleware) AuthenticateCommerce(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, err := bearerToken(c)
		if err != nil {
			return err
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrInvalidSession
		}
		if claims.ID == "" || claims.CIF == "" {
			return domainerrors.ErrTokenFormat
		}

		commerce, err := m.commerceRepo.FindByID(c.Request().Context(), claims.ID)
		if err != nil && !errors.Is(err, repository.ErrCommerceNotFound) {
			return domainerrors.NewDatabaseExecuteError(err, "ERROR_GET_ITEM")
		}

		c.Set(ContextKeyCommerce, commerce)
		c.Set(ContextKeyCommerceCIF, claims.CIF)

		return next(c)
	}
}

// AuthenticateUser resolves a user principal from the bearer token, along
// with the role set embedded in it.
func (m *AuthMiddleware) AuthenticateUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, err := bearerToken(c)
		if err != nil {
			return err
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrInvalidSession
		}
		if claims.ID == "" {
			return domainerrors.ErrTokenFormat
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), claims.ID)
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.NewDatabaseExecuteError(err, "ERROR_GET_ITEM")
		}

		c.Set(ContextKeyUser, user)
		c.Set(ContextKeyRoles, entity.RolesFromStrings(claims.Roles))

		return next(c)
	}
}

// CheckCIF is the ownership gate: the CIF in the validated path parameter
// must equal the CIF embedded in the commerce token. Both sides are
// normalized before comparing. A token whose commerce record no longer
// exists carries no ownership. It must run after AuthenticateCommerce.
func (m *AuthMiddleware) CheckCIF(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		commerce, ok := c.Get(ContextKeyCommerce).(*entity.Commerce)
		if !ok || commerce == nil {
			return domainerrors.ErrOwnership
		}

		tokenCIF, ok := c.Get(ContextKeyCommerceCIF).(string)
		if !ok || tokenCIF == "" {
			return domainerrors.ErrOwnership
		}

		if normalizeCIF(c.Param("cif")) != normalizeCIF(tokenCIF) {
			return domainerrors.ErrOwnership
		}

		return next(c)
	}
}

// CheckRol is a gate factory: the resolved user principal must carry at
// least one of the allowed roles. A missing principal or empty role set is
// rejected. It must run after AuthenticateUser.
func (m *AuthMiddleware) CheckRol(allowed ...entity.Role) echo.MiddlewareFunc {
	names := entity.Roles(allowed).ToStrings()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(ContextKeyUser).(*entity.User)
			if !ok || user == nil {
				return domainerrors.ErrNotAllowed
			}

			roles, _ := c.Get(ContextKeyRoles).(entity.Roles)
			if len(roles) == 0 {
				roles = entity.Roles{user.Role}
			}
			if !roles.Overlaps(names) {
				return domainerrors.ErrNotAllowed
			}

			return next(c)
		}
	}
}

// CheckCorreo gates user self-service routes: the email in the path must be
// the resolved principal's own. There is no admin override.
func (m *AuthMiddleware) CheckCorreo(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := c.Get(ContextKeyUser).(*entity.User)
		if !ok || user == nil {
			return domainerrors.ErrNotAllowed
		}

		if !strings.EqualFold(strings.TrimSpace(c.Param("correo")), user.Email) {
			return domainerrors.ErrOwnership
		}

		return next(c)
	}
}

func normalizeCIF(cif string) string {
	return strings.ToUpper(strings.TrimSpace(cif))
}
