package service

import (
	"context"
	"io"
)

// FileStorage abstracts the media directory where uploaded photos live.
// Filenames are generated by the caller; URLs are built at the delivery
// layer from the request host, not by the storage backend.
type FileStorage interface {
	// Save writes the content under the given filename, overwriting any
	// previous object with that name.
	Save(ctx context.Context, filename string, content io.Reader) error

	// Remove deletes the object with the given filename.
	Remove(ctx context.Context, filename string) error
}
