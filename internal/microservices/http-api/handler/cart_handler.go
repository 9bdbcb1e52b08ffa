package handler

import (
	"net/http"

	"kushfilms/internal/microservices/http-api/dto"
	"kushfilms/internal/microservices/http-api/middleware"
	"kushfilms/internal/microservices/http-api/models"
	"kushfilms/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// RegisterRoutes registers cart routes; the group must already be authenticated.
func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.Get)
	rg.DELETE("", h.Clear)
	rg.POST("/items", h.AddItem)
	rg.PUT("/items/:foodId", h.UpdateItem)
	rg.DELETE("/items/:foodId", h.RemoveItem)
	rg.POST("/checkout", h.Checkout)
}

func (h *CartHandler) respond(c *gin.Context, cart *models.Cart, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": cart})
}

// GET /api/cart
func (h *CartHandler) Get(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	cart, err := h.cartService.Get(ctx, middleware.UserID(c))
	h.respond(c, cart, err)
}

// POST /api/cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddCartItemRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	cart, err := h.cartService.Add(ctx, middleware.UserID(c), req.FoodID, req.Quantity)
	h.respond(c, cart, err)
}

// PUT /api/cart/items/:foodId
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req dto.UpdateCartItemRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	foodID, ok := pathID(c, "foodId", "cart item")
	if !ok {
		return
	}

	cart, err := h.cartService.Update(ctx, middleware.UserID(c), foodID, req.Quantity)
	h.respond(c, cart, err)
}

// DELETE /api/cart/items/:foodId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	foodID, ok := pathID(c, "foodId", "cart item")
	if !ok {
		return
	}

	cart, err := h.cartService.Remove(ctx, middleware.UserID(c), foodID)
	h.respond(c, cart, err)
}

// DELETE /api/cart
func (h *CartHandler) Clear(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	cart, err := h.cartService.Clear(ctx, middleware.UserID(c))
	h.respond(c, cart, err)
}

// Checkout turns the cart into an order
// POST /api/cart/checkout
func (h *CartHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	order, err := h.cartService.Checkout(ctx, middleware.UserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order": dto.FromModelToOrderResponse(order)})
}
