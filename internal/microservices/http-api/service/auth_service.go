package service

import (
	"context"
	"errors"
	"strings"

	"kushfilms/internal/microservices/http-api/dto"
	"kushfilms/internal/microservices/http-api/models"
	"kushfilms/internal/microservices/http-api/repository"
	"kushfilms/internal/middleware/auth"
)

var (
	ErrEmailInUse         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account is deactivated")
)

// bcrypt hash of a random string, compared against when the email is unknown
const dummyHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOHi6VbU5h6K9v8u5rO0m3j0h6dX5r8eu"

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*models.User, string, error)
	Login(ctx context.Context, req dto.LoginRequest) (*models.User, string, error)
	Me(ctx context.Context, userID string) (*models.User, error)
	ValidateToken(token string) (*Claims, error)
}

type authService struct {
	users  repository.UserRepository
	tokens AuthProvider
}

func NewAuthService(users repository.UserRepository, tokens AuthProvider) AuthService {
	return &authService{users: users, tokens: tokens}
}

// Register: creates a USER account and signs a token for it.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*models.User, string, error) {
	email := normalizeEmail(req.Email)
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, "", &Error{Kind: ErrConflict, Msg: ErrEmailInUse.Error()}
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", err
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}

	user := &models.User{
		Email:    email,
		Password: hashed,
		Name:     name,
		Role:     models.RoleUser,
		IsActive: true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, "", &Error{Kind: ErrConflict, Msg: ErrEmailInUse.Error()}
		}
		return nil, "", err
	}

	token, err := s.tokens.Sign(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login: verifies credentials and signs a token.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*models.User, string, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, "", err
		}
		// keep response time independent of whether the email exists
		_ = auth.VerifyPassword(dummyHash, req.Password)
		return nil, "", &Error{Kind: ErrUnauthorized, Msg: ErrInvalidCredentials.Error()}
	}

	if err := auth.VerifyPassword(user.Password, req.Password); err != nil {
		return nil, "", &Error{Kind: ErrUnauthorized, Msg: ErrInvalidCredentials.Error()}
	}
	if !user.IsActive {
		return nil, "", &Error{Kind: ErrForbidden, Msg: ErrAccountDisabled.Error()}
	}

	token, err := s.tokens.Sign(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) Me(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, lookupErr(err, "user")
	}
	return user, nil
}

func (s *authService) ValidateToken(token string) (*Claims, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, &Error{Kind: ErrUnauthorized, Msg: ErrInvalidToken.Error()}
	}
	return claims, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
