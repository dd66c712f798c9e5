package usecase

import (
	"context"

	"cityhub/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Name      string
	Email     string
	Password  string
	Age       int
	City      string
	Interests []string
	Offers    bool
	Role      entity.Role
}

// LoginUserInput defines the data required for a user to log in.
type LoginUserInput struct {
	Email    string
	Password string
}

// UpdateUserInput defines the overwrite-patch for a user's own data.
// Nil fields are left untouched.
type UpdateUserInput struct {
	Name      *string
	Age       *int
	City      *string
	Interests []string
	Offers    *bool
}

// DispatchOffersInput defines an offer campaign a commerce sends to the
// opted-in users of its own city.
type DispatchOffersInput struct {
	Subject string
	Message string
}

// --- Output DTOs ---

// UserAuthOutput returns a session token alongside the user record.
type UserAuthOutput struct {
	Token string
	User  *entity.User
}

// DispatchOffersOutput reports the audience of a published campaign.
type DispatchOffersOutput struct {
	City       string
	Recipients int
}

// UserUsecase defines the interface for user-related business operations.
type UserUsecase interface {
	// ListUsers returns all registered users.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// GetUser returns the user with the given email address.
	GetUser(ctx context.Context, email string) (*entity.User, error)

	// InterestedUsers returns the users who opted into offer mail in the
	// calling commerce's city.
	InterestedUsers(ctx context.Context, callerCIF string) ([]*entity.User, error)

	// RegisterUser creates a user account and issues its session token.
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*UserAuthOutput, error)

	// LoginUser authenticates a user and issues a fresh session token.
	LoginUser(ctx context.Context, input *LoginUserInput) (*UserAuthOutput, error)

	// UpdateUser patches the data of the user with the given email.
	UpdateUser(ctx context.Context, email string, input *UpdateUserInput) (*entity.User, error)

	// DeleteUser removes the user physically.
	DeleteUser(ctx context.Context, email string) (*entity.User, error)

	// DispatchOffers publishes an offer campaign to the opted-in users of the
	// calling commerce's city.
	DispatchOffers(ctx context.Context, callerCIF string, input *DispatchOffersInput) (*DispatchOffersOutput, error)
}
