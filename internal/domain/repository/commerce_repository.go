// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"cityhub/internal/domain/entity"
)

// ErrCommerceNotFound is a domain-specific error returned when a commerce is not found.
var ErrCommerceNotFound = errors.New("commerce not found")

// ErrCommerceCIFTaken signals a unique-index violation on the CIF.
var ErrCommerceCIFTaken = errors.New("commerce CIF already registered")

// ErrCommerceEmailTaken signals a unique-index violation on the contact email.
var ErrCommerceEmailTaken = errors.New("commerce email already registered")

// CommercePatch carries the overwrite-patch fields of a commerce update.
// Nil fields are left untouched; the CIF itself is immutable and has no slot here.
type CommercePatch struct {
	Name     *string
	Address  *string
	Email    *string
	Phone    *string
	City     *string
	Activity []string
}

// CommerceInfo carries the content-publishing update: titulo and resumen
// overwrite, the text is appended to the existing list.
type CommerceInfo struct {
	Title   *string
	Summary *string
	Text    *string
}

// CommerceRepository defines the persistence operations for commerces.
// Every read and every write except HardDelete operates on the default
// scope, which excludes soft-deleted documents.
type CommerceRepository interface {
	// List retrieves all non-deleted commerces, optionally sorted by CIF ascending.
	List(ctx context.Context, orderByCIF bool) ([]*entity.Commerce, error)

	// FindByID retrieves a single commerce by its store id.
	FindByID(ctx context.Context, id string) (*entity.Commerce, error)

	// FindByCIF retrieves a single commerce by its business key.
	FindByCIF(ctx context.Context, cif string) (*entity.Commerce, error)

	// FindByEmail retrieves a single commerce by its contact email.
	FindByEmail(ctx context.Context, email string) (*entity.Commerce, error)

	// FindByActivity retrieves the commerces whose activity list contains the
	// given substring, case-insensitively.
	FindByActivity(ctx context.Context, activity string) ([]*entity.Commerce, error)

	// FindByCity retrieves the commerces registered in the given city (exact match).
	FindByCity(ctx context.Context, city string) ([]*entity.Commerce, error)

	// Create persists a new commerce and fills in its generated id and timestamps.
	Create(ctx context.Context, commerce *entity.Commerce) error

	// Update applies an overwrite-patch to the commerce with the given CIF
	// and returns the updated document.
	Update(ctx context.Context, cif string, patch *CommercePatch) (*entity.Commerce, error)

	// AppendInfo publishes content: overwrites titulo/resumen and appends the
	// text without clobbering sibling fields.
	AppendInfo(ctx context.Context, cif string, info *CommerceInfo) (*entity.Commerce, error)

	// AppendReview pushes a scoring and a review text onto the commerce's lists.
	AppendReview(ctx context.Context, cif string, scoring float64, review string) (*entity.Commerce, error)

	// SetFile stores the denormalized photo reference on the commerce.
	SetFile(ctx context.Context, cif string, file *entity.CommerceFile) (*entity.Commerce, error)

	// SoftDelete marks the commerce deleted and stamps the deletion time.
	// The document disappears from the default scope but persists physically.
	SoftDelete(ctx context.Context, cif string) (*entity.Commerce, error)

	// HardDelete removes the commerce physically, soft-deleted or not.
	HardDelete(ctx context.Context, cif string) (*entity.Commerce, error)
}
