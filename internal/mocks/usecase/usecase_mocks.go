// Package usecase provides hand-written testify mocks for the usecase
// interfaces consumed by the HTTP delivery layer.
package usecase

import (
	"context"

	"cityhub/internal/domain/entity"
	"cityhub/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockCommerceUsecase mocks usecase.CommerceUsecase.
type MockCommerceUsecase struct {
	mock.Mock
}

func (m *MockCommerceUsecase) ListCommerces(ctx context.Context, orderByCIF bool) ([]*entity.Commerce, error) {
	args := m.Called(ctx, orderByCIF)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Commerce), args.Error(1)
}

func (m *MockCommerceUsecase) GetCommerce(ctx context.Context, cif string) (*entity.Commerce, error) {
	args := m.Called(ctx, cif)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Commerce), args.Error(1)
}

func (m *MockCommerceUsecase) SearchByActivity(ctx context.Context, activity string) ([]*entity.Commerce, error) {
	args := m.Called(ctx, activity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Commerce), args.Error(1)
}

func (m *MockCommerceUsecase) SearchByCity(ctx context.Context, city string) ([]*entity.Commerce, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Commerce), args.Error(1)
}

func (m *MockCommerceUsecase) RegisterCommerce(ctx context.Context, input *usecase.RegisterCommerceInput) (*usecase.CommerceAuthOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.CommerceAuthOutput), args.Error(1)
}

func (m *MockCommerceUsecase) LoginCommerce(ctx context.Context, input *usecase.LoginCommerceInput) (*usecase.CommerceAuthOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.CommerceAuthOutput), args.Error(1)
}

func (m *MockCommerceUsecase) UpdateCommerce(ctx context.Context, cif string, input *usecase.UpdateCommerceInput) (*entity.Commerce, error) {
	args := m.Called(ctx, cif, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Commerce), args.Error(1)
}

func (m *MockCommerceUsecase) PublishContent(ctx context.Context, cif string, input *usecase.PublishContentInput) (*entity.Commerce, error) {
	args := m.Called(ctx, cif, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Commerce), args.Error(1)
}

func (m *MockCommerceUsecase) AddReview(ctx context.Context, cif string, input *usecase.AddReviewInput) (*entity.Commerce, error) {
	args := m.Called(ctx, cif, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Commerce), args.Error(1)
}

func (m *MockCommerceUsecase) UploadPhoto(ctx context.Context, cif string, input *usecase.UploadPhotoInput) (*entity.Commerce, error) {
	args := m.Called(ctx, cif, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Commerce), args.Error(1)
}

func (m *MockCommerceUsecase) DeleteCommerce(ctx context.Context, cif string, hard bool) (*entity.Commerce, error) {
	args := m.Called(ctx, cif, hard)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Commerce), args.Error(1)
}

func (m *MockCommerceUsecase) GeneratePageQR(ctx context.Context, cif string, baseURL string) ([]byte, error) {
	args := m.Called(ctx, cif, baseURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1)
}

// MockUserUsecase mocks usecase.UserUsecase.
type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserUsecase) GetUser(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUsecase) InterestedUsers(ctx context.Context, callerCIF string) ([]*entity.User, error) {
	args := m.Called(ctx, callerCIF)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserUsecase) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.UserAuthOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.UserAuthOutput), args.Error(1)
}

func (m *MockUserUsecase) LoginUser(ctx context.Context, input *usecase.LoginUserInput) (*usecase.UserAuthOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.UserAuthOutput), args.Error(1)
}

func (m *MockUserUsecase) UpdateUser(ctx context.Context, email string, input *usecase.UpdateUserInput) (*entity.User, error) {
	args := m.Called(ctx, email, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUsecase) DeleteUser(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUsecase) DispatchOffers(ctx context.Context, callerCIF string, input *usecase.DispatchOffersInput) (*usecase.DispatchOffersOutput, error) {
	args := m.Called(ctx, callerCIF, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.DispatchOffersOutput), args.Error(1)
}

// MockStorageUsecase mocks usecase.StorageUsecase.
type MockStorageUsecase struct {
	mock.Mock
}

func (m *MockStorageUsecase) ListFiles(ctx context.Context) ([]*entity.StoredFile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.StoredFile), args.Error(1)
}

func (m *MockStorageUsecase) GetFile(ctx context.Context, id string) (*entity.StoredFile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.StoredFile), args.Error(1)
}

func (m *MockStorageUsecase) UploadFile(ctx context.Context, input *usecase.UploadFileInput) (*entity.StoredFile, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.StoredFile), args.Error(1)
}

func (m *MockStorageUsecase) DeleteFile(ctx context.Context, id string) (*entity.StoredFile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.StoredFile), args.Error(1)
}
