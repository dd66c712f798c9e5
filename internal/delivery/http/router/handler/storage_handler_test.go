package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"
	"time"

	"cityhub/internal/domain/entity"
	domainerrors "cityhub/internal/domain/errors"
	mockusecase "cityhub/internal/mocks/usecase"
	"cityhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStorageHandler(uc *mockusecase.MockStorageUsecase) *StorageHandler {
	return NewStorageHandler(uc, testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testStoredFile() *entity.StoredFile {
	return &entity.StoredFile{
		ID:        "file-1",
		Filename:  "file-abc.png",
		URL:       "http://example.com/media/file-abc.png",
		CreatedAt: time.Now(),
	}
}

func TestStorageHandler_List(t *testing.T) {
	uc := new(mockusecase.MockStorageUsecase)
	h := newStorageHandler(uc)

	c, rec := newHandlerContext(t, http.MethodGet, "/api/storage", nil, "")
	uc.On("ListFiles", mock.Anything).Return([]*entity.StoredFile{testStoredFile()}, nil)

	require.NoError(t, h.List(c))

	assert.True(t, strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "["))
	uc.AssertExpectations(t)
}

func TestStorageHandler_Upload_MissingFile(t *testing.T) {
	uc := new(mockusecase.MockStorageUsecase)
	h := newStorageHandler(uc)

	c, _ := newHandlerContext(t, http.MethodPost, "/api/storage", nil, "")

	err := h.Upload(c)

	assert.ErrorIs(t, err, domainerrors.ErrMissingFile)
	uc.AssertNotCalled(t, "UploadFile", mock.Anything, mock.Anything)
}

func TestStorageHandler_Upload(t *testing.T) {
	uc := new(mockusecase.MockStorageUsecase)
	h := newStorageHandler(uc)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", "foto.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpg-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	c, rec := newHandlerContext(t, http.MethodPost, "/api/storage", &buf, writer.FormDataContentType())

	uc.On("UploadFile", mock.Anything, mock.MatchedBy(func(input *usecase.UploadFileInput) bool {
		return input.OriginalName == "foto.jpg" &&
			input.PublicBaseURL == "http://example.com/media"
	})).Return(testStoredFile(), nil)

	require.NoError(t, h.Upload(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "data")
	uc.AssertExpectations(t)
}

func TestStorageHandler_Delete_Acknowledged(t *testing.T) {
	uc := new(mockusecase.MockStorageUsecase)
	h := newStorageHandler(uc)

	c, rec := newHandlerContext(t, http.MethodDelete, "/api/storage/file-1", nil, "")
	c.SetParamNames("id")
	c.SetParamValues("file-1")
	uc.On("DeleteFile", mock.Anything, "file-1").Return(testStoredFile(), nil)

	require.NoError(t, h.Delete(c))

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.JSONEq(t, "true", string(body["acknowledged"]))
}
