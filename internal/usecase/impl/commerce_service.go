// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	deliverycontext "cityhub/internal/delivery/context"
	"cityhub/internal/domain/entity"
	domainerrors "cityhub/internal/domain/errors"
	"cityhub/internal/domain/repository"
	"cityhub/internal/domain/service"
	"cityhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// commerceService implements the CommerceUsecase interface.
type commerceService struct {
	commerceRepo repository.CommerceRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	fileStorage  service.FileStorage
	qrService    service.QRCodeService
	logger       *slog.Logger
}

// CommerceServiceParams holds dependencies for CommerceService, injected by Fx.
type CommerceServiceParams struct {
	fx.In

	CommerceRepo repository.CommerceRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	FileStorage  service.FileStorage
	QRService    service.QRCodeService
	Logger       *slog.Logger
}

// NewCommerceService is the constructor for commerceService. It receives all dependencies as interfaces.
func NewCommerceService(params CommerceServiceParams) usecase.CommerceUsecase {
	return &commerceService{
		commerceRepo: params.CommerceRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		fileStorage:  params.FileStorage,
		qrService:    params.QRService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *commerceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// NormalizeCIF canonicalizes a CIF for storage and comparison. The CIF is a
// case-insensitive identifier, so every path trims and uppercases before use.
func NormalizeCIF(cif string) string {
	return strings.ToUpper(strings.TrimSpace(cif))
}

// ListCommerces returns all visible commerces, optionally sorted by CIF ascending.
func (srv *commerceService) ListCommerces(ctx context.Context, orderByCIF bool) ([]*entity.Commerce, error) {
	commerces, err := srv.commerceRepo.List(ctx, orderByCIF)
	if err != nil {
		srv.log(ctx).Error("Failed to list commerces", slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "ERROR_GET_ITEMS")
	}

	return commerces, nil
}

// GetCommerce returns the visible commerce with the given CIF.
func (srv *commerceService) GetCommerce(ctx context.Context, cif string) (*entity.Commerce, error) {
	return srv.findByCIF(ctx, cif, "ERROR_GET_ITEM")
}

// SearchByActivity returns the commerces matching an activity fragment.
func (srv *commerceService) SearchByActivity(ctx context.Context, activity string) ([]*entity.Commerce, error) {
	commerces, err := srv.commerceRepo.FindByActivity(ctx, activity)
	if err != nil {
		srv.log(ctx).Error("Failed to search commerces by activity", slog.String("activity", activity), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "ERROR_GET_ITEMS")
	}

	return commerces, nil
}

// SearchByCity returns the commerces registered in a city.
func (srv *commerceService) SearchByCity(ctx context.Context, city string) ([]*entity.Commerce, error) {
	commerces, err := srv.commerceRepo.FindByCity(ctx, city)
	if err != nil {
		srv.log(ctx).Error("Failed to search commerces by city", slog.String("city", city), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "ERROR_GET_ITEMS")
	}

	return commerces, nil
}

// RegisterCommerce creates a commerce account and issues its session token.
func (srv *commerceService) RegisterCommerce(ctx context.Context, input *usecase.RegisterCommerceInput) (*usecase.CommerceAuthOutput, error) {
	cif := NormalizeCIF(input.CIF)
	srv.log(ctx).Info("Registering commerce", slog.String("cif", cif))

	if err := srv.checkRegistrationKeys(ctx, cif, input.Email); err != nil {
		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash commerce password", slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "ERROR_CREATE_ITEM")
	}

	commerce := &entity.Commerce{
		Name:     input.Name,
		CIF:      cif,
		Address:  input.Address,
		Email:    input.Email,
		Password: hashedPassword,
		Phone:    input.Phone,
		City:     input.City,
		Activity: input.Activity,
	}

	if err := srv.commerceRepo.Create(ctx, commerce); err != nil {
		return nil, srv.mapCreateError(ctx, err)
	}

	token, err := srv.tokenService.GenerateCommerceToken(commerce.ID, commerce.CIF)
	if err != nil {
		srv.log(ctx).Error("Failed to generate commerce token", slog.String("cif", cif), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "ERROR_CREATE_ITEM")
	}

	commerce.Password = ""
	srv.log(ctx).Debug("Commerce registered", slog.String("cif", cif), slog.String("id", commerce.ID))

	return &usecase.CommerceAuthOutput{Token: token, Commerce: commerce}, nil
}

// checkRegistrationKeys pre-checks the unique keys so the caller learns which
// field collided. The store's unique indexes remain the backstop for races.
func (srv *commerceService) checkRegistrationKeys(ctx context.Context, cif, email string) error {
	if _, err := srv.commerceRepo.FindByCIF(ctx, cif); err == nil {
		srv.log(ctx).Warn("Commerce CIF already registered", slog.String("cif", cif))

		return domainerrors.ErrCIFExists
	} else if !errors.Is(err, repository.ErrCommerceNotFound) {
		return domainerrors.NewDatabaseExecuteError(err, "ERROR_CREATE_ITEM")
	}

	if _, err := srv.commerceRepo.FindByEmail(ctx, email); err == nil {
		srv.log(ctx).Warn("Commerce email already registered", slog.String("email", email))

		return domainerrors.ErrCommerceEmailExists
	} else if !errors.Is(err, repository.ErrCommerceNotFound) {
		return domainerrors.NewDatabaseExecuteError(err, "ERROR_CREATE_ITEM")
	}

	return nil
}

func (srv *commerceService) mapCreateError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrCommerceCIFTaken):
		return domainerrors.ErrCIFExists
	case errors.Is(err, repository.ErrCommerceEmailTaken):
		return domainerrors.ErrCommerceEmailExists
	default:
		srv.log(ctx).Error("Failed to create commerce", slog.Any("error", err))

		return domainerrors.NewDatabaseExecuteError(err, "ERROR_CREATE_ITEM")
	}
}

// LoginCommerce authenticates a commerce and issues a fresh session token.
func (srv *commerceService) LoginCommerce(ctx context.Context, input *usecase.LoginCommerceInput) (*usecase.CommerceAuthOutput, error) {
	srv.log(ctx).Debug("Commerce login attempt", slog.String("email", input.Email))

	commerce, err := srv.commerceRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrCommerceNotFound) {
			srv.log(ctx).Warn("Commerce login with unknown email", slog.String("email", input.Email))

			return nil, domainerrors.ErrEmailNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "ERROR_LOGIN")
	}

	if !srv.hasher.Check(input.Password, commerce.Password) {
		srv.log(ctx).Warn("Commerce login with wrong password", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.GenerateCommerceToken(commerce.ID, commerce.CIF)
	if err != nil {
		srv.log(ctx).Error("Failed to generate commerce token", slog.String("cif", commerce.CIF), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "ERROR_LOGIN")
	}

	commerce.Password = ""
	srv.log(ctx).Debug("Commerce logged in", slog.String("cif", commerce.CIF))

	return &usecase.CommerceAuthOutput{Token: token, Commerce: commerce}, nil
}

// UpdateCommerce patches the base data of the commerce with the given CIF.
func (srv *commerceService) UpdateCommerce(ctx context.Context, cif string, input *usecase.UpdateCommerceInput) (*entity.Commerce, error) {
	patch := &repository.CommercePatch{
		Name:     input.Name,
		Address:  input.Address,
		Email:    input.Email,
		Phone:    input.Phone,
		City:     input.City,
		Activity: input.Activity,
	}

	commerce, err := srv.commerceRepo.Update(ctx, NormalizeCIF(cif), patch)
	if err != nil {
		return nil, srv.mapLookupError(ctx, err, "ERROR_UPDATE_ITEM")
	}

	srv.log(ctx).Debug("Commerce updated", slog.String("cif", commerce.CIF))

	return commerce, nil
}

// PublishContent updates the commerce's public page content.
func (srv *commerceService) PublishContent(ctx context.Context, cif string, input *usecase.PublishContentInput) (*entity.Commerce, error) {
	info := &repository.CommerceInfo{
		Title:   input.Title,
		Summary: input.Summary,
		Text:    input.Text,
	}

	commerce, err := srv.commerceRepo.AppendInfo(ctx, NormalizeCIF(cif), info)
	if err != nil {
		return nil, srv.mapLookupError(ctx, err, "ERROR_UPDATE_ITEM")
	}

	srv.log(ctx).Debug("Commerce content published", slog.String("cif", commerce.CIF))

	return commerce, nil
}

// AddReview appends an anonymous scoring and review to the commerce page.
func (srv *commerceService) AddReview(ctx context.Context, cif string, input *usecase.AddReviewInput) (*entity.Commerce, error) {
	commerce, err := srv.commerceRepo.AppendReview(ctx, NormalizeCIF(cif), input.Scoring, input.Review)
	if err != nil {
		return nil, srv.mapLookupError(ctx, err, "ERROR_UPDATE_ITEM")
	}

	srv.log(ctx).Debug("Commerce review added", slog.String("cif", commerce.CIF))

	return commerce, nil
}

// UploadPhoto stores a page photo in the media directory and attaches its
// reference to the commerce.
func (srv *commerceService) UploadPhoto(ctx context.Context, cif string, input *usecase.UploadPhotoInput) (*entity.Commerce, error) {
	normalized := NormalizeCIF(cif)
	filename := storedFilename(input.OriginalName)

	if err := srv.fileStorage.Save(ctx, filename, input.Content); err != nil {
		srv.log(ctx).Error("Failed to save commerce photo", slog.String("cif", normalized), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "ERROR_CREATE_FILE")
	}

	file := &entity.CommerceFile{
		Filename: filename,
		URL:      joinURL(input.PublicBaseURL, filename),
	}

	commerce, err := srv.commerceRepo.SetFile(ctx, normalized, file)
	if err != nil {
		// The commerce was not found or the write failed: drop the orphan object.
		if removeErr := srv.fileStorage.Remove(ctx, filename); removeErr != nil {
			srv.log(ctx).Warn("Failed to remove orphan photo", slog.String("filename", filename), slog.Any("error", removeErr))
		}

		return nil, srv.mapLookupError(ctx, err, "ERROR_CREATE_FILE")
	}

	srv.log(ctx).Debug("Commerce photo attached", slog.String("cif", commerce.CIF), slog.String("filename", filename))

	return commerce, nil
}

// DeleteCommerce removes the commerce: logically by default, physically when
// hard is set.
func (srv *commerceService) DeleteCommerce(ctx context.Context, cif string, hard bool) (*entity.Commerce, error) {
	normalized := NormalizeCIF(cif)

	var commerce *entity.Commerce
	var err error
	if hard {
		commerce, err = srv.commerceRepo.HardDelete(ctx, normalized)
	} else {
		commerce, err = srv.commerceRepo.SoftDelete(ctx, normalized)
	}
	if err != nil {
		return nil, srv.mapLookupError(ctx, err, "ERROR_DELETE_ITEM")
	}

	srv.log(ctx).Info("Commerce deleted", slog.String("cif", normalized), slog.Bool("hard", hard))

	return commerce, nil
}

// GeneratePageQR renders a PNG QR code pointing at the commerce's public page.
func (srv *commerceService) GeneratePageQR(ctx context.Context, cif string, baseURL string) ([]byte, error) {
	commerce, err := srv.findByCIF(ctx, cif, "ERROR_GET_ITEM")
	if err != nil {
		return nil, err
	}

	pageURL := joinURL(baseURL, "api/comercios/"+commerce.CIF)
	png, err := srv.qrService.GeneratePageQR(pageURL)
	if err != nil {
		srv.log(ctx).Error("Failed to generate page QR", slog.String("cif", commerce.CIF), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "ERROR_GET_ITEM")
	}

	return png, nil
}

func (srv *commerceService) findByCIF(ctx context.Context, cif, code string) (*entity.Commerce, error) {
	commerce, err := srv.commerceRepo.FindByCIF(ctx, NormalizeCIF(cif))
	if err != nil {
		return nil, srv.mapLookupError(ctx, err, code)
	}

	return commerce, nil
}

func (srv *commerceService) mapLookupError(ctx context.Context, err error, code string) error {
	if errors.Is(err, repository.ErrCommerceNotFound) {
		return domainerrors.ErrCommerceNotFound
	}

	srv.log(ctx).Error("Commerce store operation failed", slog.String("code", code), slog.Any("error", err))

	return domainerrors.NewDatabaseExecuteError(err, code)
}

// storedFilename derives the stored object name from the upload's original
// name, keeping only its extension.
func storedFilename(originalName string) string {
	return "file-" + uuid.NewString() + filepath.Ext(originalName)
}

// joinURL concatenates a base URL and a path segment with a single slash.
func joinURL(base, segment string) string {
	return strings.TrimRight(base, "/") + "/" + segment
}
