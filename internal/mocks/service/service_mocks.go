// Package service provides hand-written testify mocks for the domain service
// interfaces.
package service

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"cityhub/internal/domain/service"
)

// MockPasswordHasher is a mock implementation of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// MockTokenService is a mock implementation of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateCommerceToken(id, cif string) (string, error) {
	args := m.Called(id, cif)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) GenerateUserToken(id string, roles []string) (string, error) {
	args := m.Called(id, roles)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) ValidateToken(token string) (*service.Claims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.Claims), args.Error(1)
}

// MockFileStorage is a mock implementation of service.FileStorage.
type MockFileStorage struct {
	mock.Mock
}

func (m *MockFileStorage) Save(ctx context.Context, filename string, content io.Reader) error {
	args := m.Called(ctx, filename, content)

	return args.Error(0)
}

func (m *MockFileStorage) Remove(ctx context.Context, filename string) error {
	args := m.Called(ctx, filename)

	return args.Error(0)
}

// MockEventPublisher is a mock implementation of service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishOfferCampaign(ctx context.Context, event *service.OfferCampaignEvent) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	args := m.Called()

	return args.Error(0)
}

// MockQRCodeService is a mock implementation of service.QRCodeService.
type MockQRCodeService struct {
	mock.Mock
}

func (m *MockQRCodeService) GeneratePageQR(pageURL string) ([]byte, error) {
	args := m.Called(pageURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1)
}
