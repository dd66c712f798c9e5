package repository

import (
	"context"
	"errors"

	"cityhub/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrUserEmailTaken signals a unique-index violation on the email address.
var ErrUserEmailTaken = errors.New("user email already registered")

// UserPatch carries the overwrite-patch fields of a user update.
// Nil fields are left untouched.
type UserPatch struct {
	Name      *string
	Age       *int
	City      *string
	Interests []string
	Offers    *bool
}

// UserRepository defines the persistence operations for users.
// Users have no soft-delete: Delete is physical.
type UserRepository interface {
	// List retrieves all users.
	List(ctx context.Context) ([]*entity.User, error)

	// FindByID retrieves a single user by their store id.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindOffersByCity retrieves the users who opted into offer mail and live
	// in the given city.
	FindOffersByCity(ctx context.Context, city string) ([]*entity.User, error)

	// Create persists a new user and fills in its generated id and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// Update applies an overwrite-patch to the user with the given email
	// and returns the updated document.
	Update(ctx context.Context, email string, patch *UserPatch) (*entity.User, error)

	// Delete removes the user physically.
	Delete(ctx context.Context, email string) (*entity.User, error)
}
