package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims identify the caller of an authenticated request.
type Claims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// AuthProvider signs and verifies bearer tokens.
type AuthProvider interface {
	Sign(userID, role string) (string, error)
	Verify(token string) (*Claims, error)
}

type jwtProvider struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

// NewJWTProvider returns an HS256 AuthProvider.
func NewJWTProvider(secret string, expiry time.Duration) AuthProvider {
	return &jwtProvider{secret: []byte(secret), expiry: expiry, now: time.Now}
}

func (p *jwtProvider) Sign(userID, role string) (string, error) {
	now := p.now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}

func (p *jwtProvider) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return p.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(p.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
