package handler

import (
	"context"

	"kushfilms/internal/microservices/http-api/dto"
	"kushfilms/internal/microservices/http-api/models"
	"kushfilms/internal/microservices/http-api/service"

	"github.com/stretchr/testify/mock"
)

// MockAuthService mocks the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req dto.RegisterRequest) (*models.User, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*models.User, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Me(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// ValidateToken accepts two fixed tokens so tests can pick the caller.
func (m *MockAuthService) ValidateToken(token string) (*service.Claims, error) {
	switch token {
	case "user-token":
		return &service.Claims{UserID: testUserID, Role: models.RoleUser}, nil
	case "admin-token":
		return &service.Claims{UserID: testAdminID, Role: models.RoleAdmin}, nil
	}
	return nil, service.ErrInvalidToken
}

type MockFavoriteService struct {
	mock.Mock
}

func (m *MockFavoriteService) Add(ctx context.Context, userID string, target models.Target) (*models.Favorite, error) {
	args := m.Called(ctx, userID, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Favorite), args.Error(1)
}

func (m *MockFavoriteService) Remove(ctx context.Context, favoriteID, userID string) error {
	return m.Called(ctx, favoriteID, userID).Error(0)
}

func (m *MockFavoriteService) List(ctx context.Context, userID string) ([]models.Favorite, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Favorite), args.Error(1)
}

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Place(ctx context.Context, userID string, input service.NewOrder) (*models.Order, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderService) List(ctx context.Context, requester service.Requester) ([]models.Order, error) {
	args := m.Called(ctx, requester)
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderService) Get(ctx context.Context, orderID string, requester service.Requester) (*models.Order, error) {
	args := m.Called(ctx, orderID, requester)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus, requester service.Requester) (*models.Order, error) {
	args := m.Called(ctx, orderID, status, requester)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

type stubPinger struct{ err error }

func (p stubPinger) PingContext(context.Context) error { return p.err }
