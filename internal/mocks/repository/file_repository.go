package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cityhub/internal/domain/entity"
)

// MockFileRepository is a mock implementation of repository.FileRepository.
type MockFileRepository struct {
	mock.Mock
}

func (m *MockFileRepository) List(ctx context.Context) ([]*entity.StoredFile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.StoredFile), args.Error(1)
}

func (m *MockFileRepository) FindByID(ctx context.Context, id string) (*entity.StoredFile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.StoredFile), args.Error(1)
}

func (m *MockFileRepository) Create(ctx context.Context, file *entity.StoredFile) error {
	args := m.Called(ctx, file)

	return args.Error(0)
}

func (m *MockFileRepository) Delete(ctx context.Context, id string) (*entity.StoredFile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.StoredFile), args.Error(1)
}
