package impl

import (
	"context"
	"log/slog"

	deliverycontext "cityhub/internal/delivery/context"
	"cityhub/internal/domain/entity"
	domainerrors "cityhub/internal/domain/errors"
	"cityhub/internal/domain/repository"
	"cityhub/internal/domain/service"
	"cityhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	commerceRepo repository.CommerceRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	CommerceRepo repository.CommerceRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		commerceRepo: params.CommerceRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns all registered users.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list users", slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "ERROR_GET_ITEMS")
	}

	return users, nil
}

// GetUser returns the user with the given email address.
func (srv *userService) GetUser(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, srv.mapLookupError(ctx, err, "ERROR_GET_ITEM")
	}

	return user, nil
}

// InterestedUsers returns the users who opted into offer mail in the calling
// commerce's city. The audience city always comes from the caller's own
// record, never from request input.
func (srv *userService) InterestedUsers(ctx context.Context, callerCIF string) ([]*entity.User, error) {
	commerce, err := srv.callerCommerce(ctx, callerCIF)
	if err != nil {
		return nil, err
	}

	users, err := srv.userRepo.FindOffersByCity(ctx, commerce.City)
	if err != nil {
		srv.log(ctx).Error("Failed to find interested users", slog.String("city", commerce.City), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "ERROR_GET_ITEMS")
	}

	return users, nil
}

// RegisterUser creates a user account and issues its session token.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.UserAuthOutput, error) {
	srv.log(ctx).Info("Registering user", slog.String("email", input.Email))

	role := input.Role
	if role == "" {
		role = entity.RoleUser
	}
	if !role.IsValid() {
		srv.log(ctx).Warn("User registration with unknown role", slog.String("role", string(role)))

		return nil, domainerrors.ErrValidationFailed
	}

	if _, err := srv.userRepo.FindByEmail(ctx, input.Email); err == nil {
		srv.log(ctx).Warn("User email already registered", slog.String("email", input.Email))

		return nil, domainerrors.ErrUserEmailExists
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.NewDatabaseExecuteError(err, "ERROR_CREATE_ITEM")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash user password", slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "ERROR_CREATE_ITEM")
	}

	user := &entity.User{
		Name:      input.Name,
		Email:     input.Email,
		Password:  hashedPassword,
		Age:       input.Age,
		City:      input.City,
		Interests: input.Interests,
		Offers:    input.Offers,
		Role:      role,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserEmailTaken) {
			return nil, domainerrors.ErrUserEmailExists
		}
		srv.log(ctx).Error("Failed to create user", slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "ERROR_CREATE_ITEM")
	}

	token, err := srv.tokenService.GenerateUserToken(user.ID, []string{string(user.Role)})
	if err != nil {
		srv.log(ctx).Error("Failed to generate user token", slog.String("email", input.Email), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "ERROR_CREATE_ITEM")
	}

	user.Password = ""
	srv.log(ctx).Debug("User registered", slog.String("id", user.ID))

	return &usecase.UserAuthOutput{Token: token, User: user}, nil
}

// LoginUser authenticates a user and issues a fresh session token.
func (srv *userService) LoginUser(ctx context.Context, input *usecase.LoginUserInput) (*usecase.UserAuthOutput, error) {
	srv.log(ctx).Debug("User login attempt", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("User login with unknown email", slog.String("email", input.Email))

			return nil, domainerrors.ErrEmailNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "ERROR_LOGIN")
	}

	if !srv.hasher.Check(input.Password, user.Password) {
		srv.log(ctx).Warn("User login with wrong password", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.GenerateUserToken(user.ID, []string{string(user.Role)})
	if err != nil {
		srv.log(ctx).Error("Failed to generate user token", slog.String("email", input.Email), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "ERROR_LOGIN")
	}

	user.Password = ""
	srv.log(ctx).Debug("User logged in", slog.String("id", user.ID))

	return &usecase.UserAuthOutput{Token: token, User: user}, nil
}

// UpdateUser patches the data of the user with the given email.
func (srv *userService) UpdateUser(ctx context.Context, email string, input *usecase.UpdateUserInput) (*entity.User, error) {
	patch := &repository.UserPatch{
		Name:      input.Name,
		Age:       input.Age,
		City:      input.City,
		Interests: input.Interests,
		Offers:    input.Offers,
	}

	user, err := srv.userRepo.Update(ctx, email, patch)
	if err != nil {
		return nil, srv.mapLookupError(ctx, err, "ERROR_UPDATE_ITEM")
	}

	srv.log(ctx).Debug("User updated", slog.String("email", email))

	return user, nil
}

// DeleteUser removes the user physically.
func (srv *userService) DeleteUser(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.Delete(ctx, email)
	if err != nil {
		return nil, srv.mapLookupError(ctx, err, "ERROR_DELETE_ITEM")
	}

	srv.log(ctx).Info("User deleted", slog.String("email", email))

	return user, nil
}

// DispatchOffers publishes an offer campaign to the opted-in users of the
// calling commerce's city.
func (srv *userService) DispatchOffers(ctx context.Context, callerCIF string, input *usecase.DispatchOffersInput) (*usecase.DispatchOffersOutput, error) {
	commerce, err := srv.callerCommerce(ctx, callerCIF)
	if err != nil {
		return nil, err
	}

	users, err := srv.userRepo.FindOffersByCity(ctx, commerce.City)
	if err != nil {
		srv.log(ctx).Error("Failed to load campaign audience", slog.String("city", commerce.City), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "ERROR_GET_ITEMS")
	}

	emails := make([]string, 0, len(users))
	for _, user := range users {
		emails = append(emails, user.Email)
	}

	event := &service.OfferCampaignEvent{
		CommerceCIF: commerce.CIF,
		City:        commerce.City,
		Subject:     input.Subject,
		Message:     input.Message,
		Emails:      emails,
	}

	if err := srv.publisher.PublishOfferCampaign(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish offer campaign", slog.String("cif", commerce.CIF), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "ERROR_PUBLISH")
	}

	srv.log(ctx).Info("Offer campaign dispatched",
		slog.String("cif", commerce.CIF),
		slog.String("city", commerce.City),
		slog.Int("recipients", len(emails)),
	)

	return &usecase.DispatchOffersOutput{City: commerce.City, Recipients: len(emails)}, nil
}

func (srv *userService) callerCommerce(ctx context.Context, callerCIF string) (*entity.Commerce, error) {
	commerce, err := srv.commerceRepo.FindByCIF(ctx, NormalizeCIF(callerCIF))
	if err != nil {
		if errors.Is(err, repository.ErrCommerceNotFound) {
			return nil, domainerrors.ErrCommerceNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "ERROR_GET_ITEM")
	}

	return commerce, nil
}

func (srv *userService) mapLookupError(ctx context.Context, err error, code string) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}

	srv.log(ctx).Error("User store operation failed", slog.String("code", code), slog.Any("error", err))

	return domainerrors.NewDatabaseExecuteError(err, code)
}
