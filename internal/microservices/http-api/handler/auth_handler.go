package handler

import (
	"net/http"

	"kushfilms/internal/microservices/http-api/dto"
	"kushfilms/internal/microservices/http-api/middleware"
	"kushfilms/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes registers auth routes; limit guards the credential endpoints.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup, authMW, limit gin.HandlerFunc) {
	rg.POST("/register", limit, h.Register)
	rg.POST("/login", limit, h.Login)
	rg.GET("/me", authMW, h.Me)
}

// Register creates an account and returns it with a token
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, token, err := h.authService.Register(ctx, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{User: dto.FromModelToUserResponse(user), Token: token})
}

// Login exchanges credentials for a token
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, token, err := h.authService.Login(ctx, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{User: dto.FromModelToUserResponse(user), Token: token})
}

// Me returns the authenticated user
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := h.authService.Me(ctx, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": dto.FromModelToUserResponse(user)})
}
