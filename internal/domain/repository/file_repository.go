package repository

import (
	"context"
	"errors"

	"cityhub/internal/domain/entity"
)

// ErrFileNotFound is a domain-specific error returned when an uploaded file is not found.
var ErrFileNotFound = errors.New("stored file not found")

// FileRepository defines the persistence operations for the generic upload
// collection.
type FileRepository interface {
	// List retrieves all stored file entries.
	List(ctx context.Context) ([]*entity.StoredFile, error)

	// FindByID retrieves a single entry by its store id.
	FindByID(ctx context.Context, id string) (*entity.StoredFile, error)

	// Create persists a new entry and fills in its generated id.
	Create(ctx context.Context, file *entity.StoredFile) error

	// Delete removes the entry physically and returns the removed document.
	Delete(ctx context.Context, id string) (*entity.StoredFile, error)
}
