package dto

import (
	"time"

	"kushfilms/internal/microservices/http-api/models"
)

// Data Transfer Objects for authentication requests and responses

// RegisterRequest: payload for user registration
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=254"`
	Password string `json:"password" binding:"required,min=6,max=72"` // bcrypt reads at most 72 bytes
	Name     string `json:"name" binding:"omitempty,min=2,max=100"`
}

// LoginRequest: payload for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Avatar    *string   `json:"avatar,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromModelToUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		Avatar:    user.Avatar,
		Phone:     user.Phone,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}

// AuthResponse: response payload after successful register or login
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// AuthorSummary is the slice of a user shown next to comments.
type AuthorSummary struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Avatar *string `json:"avatar,omitempty"`
}

func FromModelToAuthorSummary(user *models.User) *AuthorSummary {
	if user == nil {
		return nil
	}
	return &AuthorSummary{ID: user.ID, Name: user.Name, Avatar: user.Avatar}
}
