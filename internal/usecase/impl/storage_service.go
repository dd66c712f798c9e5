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

// storageService implements the StorageUsecase interface.
type storageService struct {
	fileRepo    repository.FileRepository
	fileStorage service.FileStorage
	logger      *slog.Logger
}

// StorageServiceParams holds dependencies for StorageService, injected by Fx.
type StorageServiceParams struct {
	fx.In

	FileRepo    repository.FileRepository
	FileStorage service.FileStorage
	Logger      *slog.Logger
}

// NewStorageService is the constructor for storageService.
func NewStorageService(params StorageServiceParams) usecase.StorageUsecase {
	return &storageService{
		fileRepo:    params.FileRepo,
		fileStorage: params.FileStorage,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *storageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListFiles returns all stored file entries.
func (srv *storageService) ListFiles(ctx context.Context) ([]*entity.StoredFile, error) {
	files, err := srv.fileRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list stored files", slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "ERROR_GET_FILES")
	}

	return files, nil
}

// GetFile returns the stored file entry with the given id.
func (srv *storageService) GetFile(ctx context.Context, id string) (*entity.StoredFile, error) {
	file, err := srv.fileRepo.FindByID(ctx, id)
	if err != nil {
		return nil, srv.mapLookupError(ctx, err, "ERROR_GET_FILE")
	}

	return file, nil
}

// UploadFile stores the content in the media directory and records it.
func (srv *storageService) UploadFile(ctx context.Context, input *usecase.UploadFileInput) (*entity.StoredFile, error) {
	filename := storedFilename(input.OriginalName)

	if err := srv.fileStorage.Save(ctx, filename, input.Content); err != nil {
		srv.log(ctx).Error("Failed to save uploaded file", slog.String("filename", filename), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "ERROR_CREATE_FILE")
	}

	file := &entity.StoredFile{
		Filename: filename,
		URL:      joinURL(input.PublicBaseURL, filename),
	}

	if err := srv.fileRepo.Create(ctx, file); err != nil {
		// The record failed: drop the orphan object.
		if removeErr := srv.fileStorage.Remove(ctx, filename); removeErr != nil {
			srv.log(ctx).Warn("Failed to remove orphan file", slog.String("filename", filename), slog.Any("error", removeErr))
		}
		srv.log(ctx).Error("Failed to record uploaded file", slog.String("filename", filename), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "ERROR_CREATE_FILE")
	}

	srv.log(ctx).Debug("File uploaded", slog.String("id", file.ID), slog.String("filename", filename))

	return file, nil
}

// DeleteFile removes both the record and the media object.
func (srv *storageService) DeleteFile(ctx context.Context, id string) (*entity.StoredFile, error) {
	file, err := srv.fileRepo.Delete(ctx, id)
	if err != nil {
		return nil, srv.mapLookupError(ctx, err, "ERROR_DELETE_FILE")
	}

	// The record is gone; a failed object delete only leaves an orphan file.
	if err := srv.fileStorage.Remove(ctx, file.Filename); err != nil {
		srv.log(ctx).Warn("Failed to remove media object", slog.String("filename", file.Filename), slog.Any("error", err))
	}

	srv.log(ctx).Info("File deleted", slog.String("id", id))

	return file, nil
}

func (srv *storageService) mapLookupError(ctx context.Context, err error, code string) error {
	if errors.Is(err, repository.ErrFileNotFound) {
		return domainerrors.ErrFileNotFound
	}

	srv.log(ctx).Error("File store operation failed", slog.String("code", code), slog.Any("error", err))

	return domainerrors.NewDatabaseExecuteError(err, code)
}
