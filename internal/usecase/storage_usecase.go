package usecase

import (
	"context"
	"io"

	"cityhub/internal/domain/entity"
)

// UploadFileInput carries an uploaded file stream for the generic storage
// collection.
type UploadFileInput struct {
	OriginalName  string
	Content       io.Reader
	PublicBaseURL string
}

// StorageUsecase defines the interface for the generic upload collection.
type StorageUsecase interface {
	// ListFiles returns all stored file entries.
	ListFiles(ctx context.Context) ([]*entity.StoredFile, error)

	// GetFile returns the stored file entry with the given id.
	GetFile(ctx context.Context, id string) (*entity.StoredFile, error)

	// UploadFile stores the content in the media directory and records it.
	UploadFile(ctx context.Context, input *UploadFileInput) (*entity.StoredFile, error)

	// DeleteFile removes both the record and the media object.
	DeleteFile(ctx context.Context, id string) (*entity.StoredFile, error)
}
