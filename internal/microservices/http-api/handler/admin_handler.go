package handler

import (
	"io"
	"net/http"

	"kushfilms/internal/microservices/http-api/dto"
	"kushfilms/internal/microservices/http-api/middleware"
	"kushfilms/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves user management, dashboard stats and media uploads.
type AdminHandler struct {
	userService   service.UserService
	statsService  service.StatsService
	uploadService service.UploadService
}

func NewAdminHandler(userService service.UserService, statsService service.StatsService, uploadService service.UploadService) *AdminHandler {
	return &AdminHandler{userService: userService, statsService: statsService, uploadService: uploadService}
}

// RegisterRoutes registers admin routes; the group must already require ADMIN.
func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/users", h.ListUsers)
	rg.PUT("/users/:id", h.UpdateUser)
	rg.DELETE("/users/:id", h.DeleteUser)
	rg.GET("/stats", h.Stats)
	rg.POST("/uploads", h.Upload)
}

// GET /api/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	users, err := h.userService.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": dto.FromModelsToUserResponses(users)})
}

// UpdateUser changes role or active flag
// PUT /api/admin/users/:id
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	id, ok := pathID(c, "id", "user")
	if !ok {
		return
	}

	user, err := h.userService.Update(ctx, middleware.UserID(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": dto.FromModelToUserResponse(user)})
}

// DELETE /api/admin/users/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	id, ok := pathID(c, "id", "user")
	if !ok {
		return
	}

	if err := h.userService.Delete(ctx, middleware.UserID(c), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}

// GET /api/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	stats, err := h.statsService.Get(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// Upload stores an image or video from the multipart "file" field
// POST /api/admin/uploads
func (h *AdminHandler) Upload(c *gin.Context) {
	maxBytes := h.uploadService.MaxBytes()
	// room for the multipart envelope around the file
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes+1<<20)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart field \"file\" is required and must fit the upload limit"})
		return
	}
	if fileHeader.Size > maxBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file exceeds the upload limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		respondError(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	url, err := h.uploadService.Upload(ctx, data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
