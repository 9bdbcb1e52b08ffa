package handler

import (
	"net/http"

	"kushfilms/internal/microservices/http-api/dto"
	"kushfilms/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService service.CategoryService
}

func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
}

func (h *CategoryHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// List returns categories in display order with movie counts
// GET /api/categories
func (h *CategoryHandler) List(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	categories, err := h.categoryService.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// POST /api/admin/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	category, err := h.categoryService.Create(ctx, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// PUT /api/admin/categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	id, ok := pathID(c, "id", "category")
	if !ok {
		return
	}

	category, err := h.categoryService.Update(ctx, id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}

// DELETE /api/admin/categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	id, ok := pathID(c, "id", "category")
	if !ok {
		return
	}

	if err := h.categoryService.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}
