// Package repository provides hand-written testify mocks for the domain
// repository interfaces.
package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cityhub/internal/domain/entity"
	"cityhub/internal/domain/repository"
)

// MockCommerceRepository is a mock implementation of repository.CommerceRepository.
type MockCommerceRepository struct {
	mock.Mock
}

func (m *MockCommerceRepository) List(ctx context.Context, orderByCIF bool) ([]*entity.Commerce, error) {
	args := m.Called(ctx, orderByCIF)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Commerce), args.Error(1)
}

func (m *MockCommerceRepository) FindByID(ctx context.Context, id string) (*entity.Commerce, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Commerce), args.Error(1)
}

func (m *MockCommerceRepository) FindByCIF(ctx context.Context, cif string) (*entity.Commerce, error) {
	args := m.Called(ctx, cif)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Commerce), args.Error(1)
}

func (m *MockCommerceRepository) FindByEmail(ctx context.Context, email string) (*entity.Commerce, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Commerce), args.Error(1)
}

func (m *MockCommerceRepository) FindByActivity(ctx context.Context, activity string) ([]*entity.Commerce, error) {
	args := m.Called(ctx, activity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Commerce), args.Error(1)
}

func (m *MockCommerceRepository) FindByCity(ctx context.Context, city string) ([]*entity.Commerce, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Commerce), args.Error(1)
}

func (m *MockCommerceRepository) Create(ctx context.Context, commerce *entity.Commerce) error {
	args := m.Called(ctx, commerce)

	return args.Error(0)
}

func (m *MockCommerceRepository) Update(ctx context.Context, cif string, patch *repository.CommercePatch) (*entity.Commerce, error) {
	args := m.Called(ctx, cif, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Commerce), args.Error(1)
}

func (m *MockCommerceRepository) AppendInfo(ctx context.Context, cif string, info *repository.CommerceInfo) (*entity.Commerce, error) {
	args := m.Called(ctx, cif, info)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Commerce), args.Error(1)
}

func (m *MockCommerceRepository) AppendReview(ctx context.Context, cif string, scoring float64, review string) (*entity.Commerce, error) {
	args := m.Called(ctx, cif, scoring, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Commerce), args.Error(1)
}

func (m *MockCommerceRepository) SetFile(ctx context.Context, cif string, file *entity.CommerceFile) (*entity.Commerce, error) {
	args := m.Called(ctx, cif, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Commerce), args.Error(1)
}

func (m *MockCommerceRepository) SoftDelete(ctx context.Context, cif string) (*entity.Commerce, error) {
	args := m.Called(ctx, cif)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Commerce), args.Error(1)
}

func (m *MockCommerceRepository) HardDelete(ctx context.Context, cif string) (*entity.Commerce, error) {
	args := m.Called(ctx, cif)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Commerce), args.Error(1)
}
