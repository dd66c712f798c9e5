package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"cityhub/internal/domain/entity"
	domainerrors "cityhub/internal/domain/errors"
	"cityhub/internal/domain/repository"
	"cityhub/internal/domain/service"
	mockRepo "cityhub/internal/mocks/repository"
	mockService "cityhub/internal/mocks/service"
	"cityhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	commerceRepo *mockRepo.MockCommerceRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
	publisher    *mockService.MockEventPublisher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	t.Helper()

	userRepo := new(mockRepo.MockUserRepository)
	commerceRepo := new(mockRepo.MockCommerceRepository)
	hasher := new(mockService.MockPasswordHasher)
	tokenService := new(mockService.MockTokenService)
	publisher := new(mockService.MockEventPublisher)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		CommerceRepo: commerceRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Publisher:    publisher,
		Logger:       logger,
	})

	return userServiceFixtures{
		service:      svc,
		userRepo:     userRepo,
		commerceRepo: commerceRepo,
		hasher:       hasher,
		tokenService: tokenService,
		publisher:    publisher,
	}
}

func testUser() *entity.User {
	return &entity.User{
		ID:        "64f1b2a9c1d2e3f4a5b6c7d9",
		Name:      "Ana",
		Email:     "ana@example.com",
		Age:       30,
		City:      "Murcia",
		Interests: []string{"pan"},
		Offers:    true,
		Role:      entity.RoleUser,
	}
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	input := &usecase.RegisterUserInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secretpass",
		Age:      30,
		City:     "Murcia",
		Offers:   true,
	}

	fx.userRepo.On("FindByEmail", ctx, "ana@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.On("Hash", "secretpass").Return("hashed", nil)
	fx.userRepo.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "ana@example.com" && u.Password == "hashed" && u.Role == entity.RoleUser
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.User).ID = "64f1b2a9c1d2e3f4a5b6c7d9"
	}).Return(nil)
	fx.tokenService.On("GenerateUserToken", "64f1b2a9c1d2e3f4a5b6c7d9", []string{"user"}).Return("token123", nil)

	output, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "token123", output.Token)
	assert.Empty(t, output.User.Password)
	fx.userRepo.AssertExpectations(t)
}

func TestUserService_RegisterUser_EmailExists(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "ana@example.com").Return(testUser(), nil)

	_, err := fx.service.RegisterUser(ctx, &usecase.RegisterUserInput{
		Email:    "ana@example.com",
		Password: "secretpass",
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserEmailExists)
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_RegisterUser_UnknownRole(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	_, err := fx.service.RegisterUser(ctx, &usecase.RegisterUserInput{
		Email:    "ana@example.com",
		Password: "secretpass",
		Role:     entity.Role("superuser"),
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_LoginUser_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	stored := testUser()
	stored.Password = "hashed"

	fx.userRepo.On("FindByEmail", ctx, "ana@example.com").Return(stored, nil)
	fx.hasher.On("Check", "secretpass", "hashed").Return(true)
	fx.tokenService.On("GenerateUserToken", stored.ID, []string{"user"}).Return("token123", nil)

	output, err := fx.service.LoginUser(ctx, &usecase.LoginUserInput{
		Email:    "ana@example.com",
		Password: "secretpass",
	})

	require.NoError(t, err)
	assert.Equal(t, "token123", output.Token)
	assert.Empty(t, output.User.Password)
}

func TestUserService_LoginUser_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "nadie@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.LoginUser(ctx, &usecase.LoginUserInput{
		Email:    "nadie@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, domainerrors.ErrEmailNotFound)
}

func TestUserService_LoginUser_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	stored := testUser()
	stored.Password = "hashed"

	fx.userRepo.On("FindByEmail", ctx, "ana@example.com").Return(stored, nil)
	fx.hasher.On("Check", "wrong", "hashed").Return(false)

	_, err := fx.service.LoginUser(ctx, &usecase.LoginUserInput{
		Email:    "ana@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.On("Update", ctx, "nadie@example.com", mock.Anything).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.UpdateUser(ctx, "nadie@example.com", &usecase.UpdateUserInput{})

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_DeleteUser_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	removed := testUser()
	fx.userRepo.On("Delete", ctx, "ana@example.com").Return(removed, nil)

	user, err := fx.service.DeleteUser(ctx, "ana@example.com")

	require.NoError(t, err)
	assert.Equal(t, removed, user)
}

func TestUserService_InterestedUsers_CityFromCallerRecord(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	commerce := &entity.Commerce{CIF: "B12345678", City: "Murcia"}
	audience := []*entity.User{testUser()}

	fx.commerceRepo.On("FindByCIF", ctx, "B12345678").Return(commerce, nil)
	fx.userRepo.On("FindOffersByCity", ctx, "Murcia").Return(audience, nil)

	users, err := fx.service.InterestedUsers(ctx, "b12345678")

	require.NoError(t, err)
	assert.Equal(t, audience, users)
}

func TestUserService_DispatchOffers_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	commerce := &entity.Commerce{CIF: "B12345678", City: "Murcia"}
	audience := []*entity.User{testUser()}

	fx.commerceRepo.On("FindByCIF", ctx, "B12345678").Return(commerce, nil)
	fx.userRepo.On("FindOffersByCity", ctx, "Murcia").Return(audience, nil)
	fx.publisher.On("PublishOfferCampaign", ctx, mock.MatchedBy(func(e *service.OfferCampaignEvent) bool {
		return e.CommerceCIF == "B12345678" &&
			e.City == "Murcia" &&
			len(e.Emails) == 1 &&
			e.Emails[0] == "ana@example.com"
	})).Return(nil)

	output, err := fx.service.DispatchOffers(ctx, "B12345678", &usecase.DispatchOffersInput{
		Subject: "Ofertas de otoño",
		Message: "Pan recién hecho",
	})

	require.NoError(t, err)
	assert.Equal(t, "Murcia", output.City)
	assert.Equal(t, 1, output.Recipients)
	fx.publisher.AssertExpectations(t)
}

func TestUserService_DispatchOffers_UnknownCommerce(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.commerceRepo.On("FindByCIF", ctx, "B99999999").Return(nil, repository.ErrCommerceNotFound)

	_, err := fx.service.DispatchOffers(ctx, "B99999999", &usecase.DispatchOffersInput{})

	assert.ErrorIs(t, err, domainerrors.ErrCommerceNotFound)
	fx.publisher.AssertNotCalled(t, "PublishOfferCampaign", mock.Anything, mock.Anything)
}
