package handler

import (
	"net/http"

	"kushfilms/internal/microservices/http-api/dto"
	"kushfilms/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type FoodHandler struct {
	foodService service.FoodService
}

func NewFoodHandler(foodService service.FoodService) *FoodHandler {
	return &FoodHandler{foodService: foodService}
}

// RegisterRoutes registers public food routes
func (h *FoodHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
}

// RegisterAdminRoutes registers food management routes; the group must already require ADMIN.
func (h *FoodHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// List returns foods, newest first
// GET /api/foods?category=&search=&available=
func (h *FoodHandler) List(c *gin.Context) {
	var query dto.ListFoodsQuery
	if !bindQuery(c, &query) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	foods, err := h.foodService.List(ctx, query.Filter())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FoodListResponse{Foods: foods, Total: len(foods)})
}

// Get returns one food item
// GET /api/foods/:id
func (h *FoodHandler) Get(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	id, ok := pathID(c, "id", "food")
	if !ok {
		return
	}

	food, err := h.foodService.Get(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"food": food})
}

// Create adds a food item
// POST /api/admin/foods
func (h *FoodHandler) Create(c *gin.Context) {
	var req dto.CreateFoodRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	food, err := h.foodService.Create(ctx, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"food": food})
}

// Update changes the fields present in the body
// PUT /api/admin/foods/:id
func (h *FoodHandler) Update(c *gin.Context) {
	var req dto.UpdateFoodRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	id, ok := pathID(c, "id", "food")
	if !ok {
		return
	}

	food, err := h.foodService.Update(ctx, id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"food": food})
}

// Delete removes a food item
// DELETE /api/admin/foods/:id
func (h *FoodHandler) Delete(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	id, ok := pathID(c, "id", "food")
	if !ok {
		return
	}

	if err := h.foodService.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "food deleted"})
}
