// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"io"

	"cityhub/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterCommerceInput defines the data required to register a new commerce.
type RegisterCommerceInput struct {
	Name     string
	CIF      string
	Address  string
	Email    string
	Password string
	Phone    string
	City     string
	Activity []string
}

// LoginCommerceInput defines the data required for a commerce to log in.
type LoginCommerceInput struct {
	Email    string
	Password string
}

// UpdateCommerceInput defines the overwrite-patch for a commerce's base data.
// Nil fields are left untouched.
type UpdateCommerceInput struct {
	Name     *string
	Address  *string
	Email    *string
	Phone    *string
	City     *string
	Activity []string
}

// PublishContentInput defines the content-publishing update of a commerce page.
type PublishContentInput struct {
	Title   *string
	Summary *string
	Text    *string
}

// AddReviewInput defines an anonymous review of a commerce page.
type AddReviewInput struct {
	Scoring float64
	Review  string
}

// UploadPhotoInput carries an uploaded photo stream. PublicBaseURL is the
// media prefix the delivery layer derived from the request, used to build the
// stored URL.
type UploadPhotoInput struct {
	OriginalName  string
	Content       io.Reader
	PublicBaseURL string
}

// --- Output DTOs ---

// CommerceAuthOutput returns a session token alongside the commerce record.
type CommerceAuthOutput struct {
	Token    string
	Commerce *entity.Commerce
}

// CommerceUsecase defines the interface for commerce-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type CommerceUsecase interface {
	// ListCommerces returns all visible commerces, optionally sorted by CIF.
	ListCommerces(ctx context.Context, orderByCIF bool) ([]*entity.Commerce, error)

	// GetCommerce returns the visible commerce with the given CIF.
	GetCommerce(ctx context.Context, cif string) (*entity.Commerce, error)

	// SearchByActivity returns the commerces matching an activity fragment.
	SearchByActivity(ctx context.Context, activity string) ([]*entity.Commerce, error)

	// SearchByCity returns the commerces registered in a city.
	SearchByCity(ctx context.Context, city string) ([]*entity.Commerce, error)

	// RegisterCommerce creates a commerce account and issues its session token.
	RegisterCommerce(ctx context.Context, input *RegisterCommerceInput) (*CommerceAuthOutput, error)

	// LoginCommerce authenticates a commerce and issues a fresh session token.
	LoginCommerce(ctx context.Context, input *LoginCommerceInput) (*CommerceAuthOutput, error)

	// UpdateCommerce patches the base data of the commerce with the given CIF.
	UpdateCommerce(ctx context.Context, cif string, input *UpdateCommerceInput) (*entity.Commerce, error)

	// PublishContent updates the commerce's public page content.
	PublishContent(ctx context.Context, cif string, input *PublishContentInput) (*entity.Commerce, error)

	// AddReview appends an anonymous scoring and review to the commerce page.
	AddReview(ctx context.Context, cif string, input *AddReviewInput) (*entity.Commerce, error)

	// UploadPhoto stores a page photo and attaches its reference to the commerce.
	UploadPhoto(ctx context.Context, cif string, input *UploadPhotoInput) (*entity.Commerce, error)

	// DeleteCommerce removes the commerce: logically by default, physically
	// when hard is set.
	DeleteCommerce(ctx context.Context, cif string, hard bool) (*entity.Commerce, error)

	// GeneratePageQR renders a PNG QR code pointing at the commerce's public page.
	GeneratePageQR(ctx context.Context, cif string, baseURL string) ([]byte, error)
}
