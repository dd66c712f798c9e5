package handler

import (
	"log/slog"
	"net/http"

	"cityhub/config"
	"cityhub/internal/delivery/http/response"
	domainerrors "cityhub/internal/domain/errors"
	"cityhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StorageHandler holds dependencies for media storage handlers.
type StorageHandler struct {
	uc     usecase.StorageUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewStorageHandler is the constructor for StorageHandler, injected by Fx.
func NewStorageHandler(uc usecase.StorageUsecase, cfg *config.Config, logger *slog.Logger) *StorageHandler {
	return &StorageHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

// List handles GET /api/storage.
func (h *StorageHandler) List(c echo.Context) error {
	files, err := h.uc.ListFiles(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, http.StatusOK, files)
}

// Get handles GET /api/storage/:id.
func (h *StorageHandler) Get(c echo.Context) error {
	file, err := h.uc.GetFile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusOK, file)
}

// Upload handles POST /api/storage (multipart "image").
func (h *StorageHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return domainerrors.ErrMissingFile
	}

	src, err := fileHeader.Open()
	if err != nil {
		return domainerrors.ErrMissingFile
	}
	defer src.Close()

	file, err := h.uc.UploadFile(c.Request().Context(), &usecase.UploadFileInput{
		OriginalName:  fileHeader.Filename,
		Content:       src,
		PublicBaseURL: mediaBaseURL(c, h.cfg.Storage),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusOK, file)
}

// Delete handles DELETE /api/storage/:id.
func (h *StorageHandler) Delete(c echo.Context) error {
	file, err := h.uc.DeleteFile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Acknowledged(c, http.StatusOK, file)
}
