package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cityhub/internal/domain/entity"
	domainerrors "cityhub/internal/domain/errors"
	"cityhub/internal/domain/repository"
	"cityhub/internal/domain/service"
	mockrepo "cityhub/internal/mocks/repository"
	mockservice "cityhub/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authFixtures struct {
	tokenSvc     *mockservice.MockTokenService
	commerceRepo *mockrepo.MockCommerceRepository
	userRepo     *mockrepo.MockUserRepository
	middleware   *AuthMiddleware
}

func createTestAuthMiddleware(t *testing.T) *authFixtures {
	t.Helper()

	f := &authFixtures{
		tokenSvc:     new(mockservice.MockTokenService),
		commerceRepo: new(mockrepo.MockCommerceRepository),
		userRepo:     new(mockrepo.MockUserRepository),
	}
	f.middleware = NewAuthMiddleware(f.tokenSvc, f.commerceRepo, f.userRepo)

	return f
}

func newTestContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func passthrough(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true

		return c.NoContent(http.StatusOK)
	}
}

func TestAuthenticateCommerce_NoToken(t *testing.T) {
	f := createTestAuthMiddleware(t)
	c, _ := newTestContext(t, "")

	err := f.middleware.AuthenticateCommerce(passthrough(new(bool)))(c)

	assert.ErrorIs(t, err, domainerrors.ErrNoToken)
}

func TestAuthenticateCommerce_BadFormat(t *testing.T) {
	f := createTestAuthMiddleware(t)
	c, _ := newTestContext(t, "Token abc")

	err := f.middleware.AuthenticateCommerce(passthrough(new(bool)))(c)

	assert.ErrorIs(t, err, domainerrors.ErrTokenFormat)
}

func TestAuthenticateCommerce_InvalidToken(t *testing.T) {
	f := createTestAuthMiddleware(t)
	c, _ := newTestContext(t, "Bearer bad-token")

	f.tokenSvc.On("ValidateToken", "bad-token").Return(nil, domainerrors.ErrInvalidSession)

	err := f.middleware.AuthenticateCommerce(passthrough(new(bool)))(c)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidSession)
	f.tokenSvc.AssertExpectations(t)
}

func TestAuthenticateCommerce_UserTokenRejected(t *testing.T) {
	f := createTestAuthMiddleware(t)
	c, _ := newTestContext(t, "Bearer user-token")

	// A user token has no CIF claim and must not pass the commerce resolver.
	f.tokenSvc.On("ValidateToken", "user-token").
		Return(&service.Claims{ID: "user-1", Roles: []string{"user"}}, nil)

	err := f.middleware.AuthenticateCommerce(passthrough(new(bool)))(c)

	assert.ErrorIs(t, err, domainerrors.ErrTokenFormat)
}

func TestAuthenticateCommerce_AttachesPrincipal(t *testing.T) {
	f := createTestAuthMiddleware(t)
	c, _ := newTestContext(t, "Bearer good-token")

	commerce := &entity.Commerce{ID: "commerce-1", CIF: "B12345678"}
	f.tokenSvc.On("ValidateToken", "good-token").
		Return(&service.Claims{ID: "commerce-1", CIF: "B12345678"}, nil)
	f.commerceRepo.On("FindByID", mock.Anything, "commerce-1").Return(commerce, nil)

	called := false
	err := f.middleware.AuthenticateCommerce(passthrough(&called))(c)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, commerce, c.Get(ContextKeyCommerce))
	assert.Equal(t, "B12345678", c.Get(ContextKeyCommerceCIF))
}

func TestAuthenticateCommerce_MissingRecordStillPasses(t *testing.T) {
	f := createTestAuthMiddleware(t)
	c, _ := newTestContext(t, "Bearer good-token")

	f.tokenSvc.On("ValidateToken", "good-token").
		Return(&service.Claims{ID: "gone", CIF: "B12345678"}, nil)
	f.commerceRepo.On("FindByID", mock.Anything, "gone").
		Return(nil, repository.ErrCommerceNotFound)

	called := false
	err := f.middleware.AuthenticateCommerce(passthrough(&called))(c)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "B12345678", c.Get(ContextKeyCommerceCIF))
}

func TestAuthenticateUser_AttachesRoles(t *testing.T) {
	f := createTestAuthMiddleware(t)
	c, _ := newTestContext(t, "Bearer good-token")

	user := &entity.User{ID: "user-1", Email: "ana@example.com", Role: entity.RoleUser}
	f.tokenSvc.On("ValidateToken", "good-token").
		Return(&service.Claims{ID: "user-1", Roles: []string{"user"}}, nil)
	f.userRepo.On("FindByID", mock.Anything, "user-1").Return(user, nil)

	called := false
	err := f.middleware.AuthenticateUser(passthrough(&called))(c)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, user, c.Get(ContextKeyUser))
	assert.Equal(t, entity.Roles{entity.RoleUser}, c.Get(ContextKeyRoles))
}

func TestCheckCIF(t *testing.T) {
	tests := []struct {
		name      string
		paramCIF  string
		tokenCIF  string
		principal *entity.Commerce
		wantErr   error
	}{
		{name: "exact match", paramCIF: "B12345678", tokenCIF: "B12345678",
			principal: &entity.Commerce{CIF: "B12345678"}},
		{name: "normalized match", paramCIF: "  b12345678 ", tokenCIF: "B12345678",
			principal: &entity.Commerce{CIF: "B12345678"}},
		{name: "mismatch", paramCIF: "B87654321", tokenCIF: "B12345678",
			principal: &entity.Commerce{CIF: "B12345678"}, wantErr: domainerrors.ErrOwnership},
		{name: "no token cif", paramCIF: "B12345678", tokenCIF: "",
			principal: &entity.Commerce{CIF: "B12345678"}, wantErr: domainerrors.ErrOwnership},
		// A valid token for a record that was since removed owns nothing,
		// even when the CIFs line up.
		{name: "record gone", paramCIF: "B12345678", tokenCIF: "B12345678",
			principal: nil, wantErr: domainerrors.ErrOwnership},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestAuthMiddleware(t)
			c, _ := newTestContext(t, "")
			c.SetParamNames("cif")
			c.SetParamValues(tt.paramCIF)
			c.Set(ContextKeyCommerce, tt.principal)
			if tt.tokenCIF != "" {
				c.Set(ContextKeyCommerceCIF, tt.tokenCIF)
			}

			called := false
			err := f.middleware.CheckCIF(passthrough(&called))(c)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, called)

				return
			}
			require.NoError(t, err)
			assert.True(t, called)
		})
	}
}

func TestCheckRol(t *testing.T) {
	tests := []struct {
		name    string
		user    *entity.User
		roles   entity.Roles
		allowed []entity.Role
		wantErr error
	}{
		{
			name:    "nil principal",
			allowed: []entity.Role{entity.RoleAdmin},
			wantErr: domainerrors.ErrNotAllowed,
		},
		{
			name:    "role missing",
			user:    &entity.User{Role: entity.RoleUser},
			roles:   entity.Roles{entity.RoleUser},
			allowed: []entity.Role{entity.RoleAdmin},
			wantErr: domainerrors.ErrNotAllowed,
		},
		{
			name:    "role present",
			user:    &entity.User{Role: entity.RoleAdmin},
			roles:   entity.Roles{entity.RoleAdmin},
			allowed: []entity.Role{entity.RoleAdmin},
		},
		{
			name:    "falls back to record role",
			user:    &entity.User{Role: entity.RoleAdmin},
			allowed: []entity.Role{entity.RoleAdmin},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestAuthMiddleware(t)
			c, _ := newTestContext(t, "")
			if tt.user != nil {
				c.Set(ContextKeyUser, tt.user)
			}
			if len(tt.roles) > 0 {
				c.Set(ContextKeyRoles, tt.roles)
			}

			called := false
			err := f.middleware.CheckRol(tt.allowed...)(passthrough(&called))(c)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, called)

				return
			}
			require.NoError(t, err)
			assert.True(t, called)
		})
	}
}

func TestCheckCorreo(t *testing.T) {
	tests := []struct {
		name       string
		paramEmail string
		user       *entity.User
		wantErr    error
	}{
		{
			name:       "own record",
			paramEmail: "ana@example.com",
			user:       &entity.User{Email: "ana@example.com"},
		},
		{
			name:       "case insensitive",
			paramEmail: "Ana@Example.com",
			user:       &entity.User{Email: "ana@example.com"},
		},
		{
			name:       "someone else",
			paramEmail: "otro@example.com",
			user:       &entity.User{Email: "ana@example.com", Role: entity.RoleAdmin},
			wantErr:    domainerrors.ErrOwnership,
		},
		{
			name:       "nil principal",
			paramEmail: "ana@example.com",
			wantErr:    domainerrors.ErrNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestAuthMiddleware(t)
			c, _ := newTestContext(t, "")
			c.SetParamNames("correo")
			c.SetParamValues(tt.paramEmail)
			if tt.user != nil {
				c.Set(ContextKeyUser, tt.user)
			}

			called := false
			err := f.middleware.CheckCorreo(passthrough(&called))(c)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, called)

				return
			}
			require.NoError(t, err)
			assert.True(t, called)
		})
	}
}
