package handler

import (
	"net/http"

	"kushfilms/internal/microservices/http-api/dto"
	"kushfilms/internal/microservices/http-api/middleware"
	"kushfilms/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// RegisterRoutes registers order routes; the group must already be authenticated.
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Place)
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
}

func (h *OrderHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.PUT("/:id", h.UpdateStatus)
}

// Place creates a PENDING order from the submitted items
// POST /api/orders
func (h *OrderHandler) Place(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	order, err := h.orderService.Place(ctx, middleware.UserID(c), service.NewOrder{
		Items:           req.OrderItems(),
		Total:           req.Total,
		DeliveryAddress: req.DeliveryAddress,
		Phone:           req.Phone,
		Notes:           req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order": dto.FromModelToOrderResponse(order)})
}

// List returns the caller's orders, or every order for an admin
// GET /api/orders, GET /api/admin/orders
func (h *OrderHandler) List(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	orders, err := h.orderService.List(ctx, middleware.Requester(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": dto.FromModelsToOrderResponses(orders)})
}

// GET /api/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	id, ok := pathID(c, "id", "order")
	if !ok {
		return
	}

	order, err := h.orderService.Get(ctx, id, middleware.Requester(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": dto.FromModelToOrderResponse(order)})
}

// UpdateStatus moves an order along PENDING -> CONFIRMED -> DELIVERED, or PENDING -> CANCELLED
// PUT /api/admin/orders/:id
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateOrderStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	id, ok := pathID(c, "id", "order")
	if !ok {
		return
	}

	order, err := h.orderService.UpdateStatus(ctx, id, req.Status, middleware.Requester(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": dto.FromModelToOrderResponse(order)})
}
