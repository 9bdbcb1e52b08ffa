package dto

import (
	"time"

	"kushfilms/internal/microservices/http-api/models"

	"github.com/shopspring/decimal"
)

// Data Transfer Objects for food orders

type OrderItemRequest struct {
	FoodID   string          `json:"foodId" binding:"required,uuid"`
	Name     string          `json:"name" binding:"required,max=200"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity" binding:"required,min=1,max=99"`
	Image    string          `json:"image" binding:"omitempty,max=2048"`
}

// PlaceOrderRequest: payload for POST /api/orders
type PlaceOrderRequest struct {
	Items           []OrderItemRequest `json:"items" binding:"required,min=1,max=100,dive"`
	Total           *decimal.Decimal   `json:"total"`
	DeliveryAddress string             `json:"deliveryAddress" binding:"required,max=500"`
	Phone           string             `json:"phone" binding:"required,max=32"`
	Notes           *string            `json:"notes" binding:"omitempty,max=1000"`
}

func (r PlaceOrderRequest) OrderItems() []models.OrderItem {
	items := make([]models.OrderItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, models.OrderItem(item))
	}
	return items
}

// CheckoutRequest: payload for POST /api/cart/checkout
type CheckoutRequest struct {
	DeliveryAddress string  `json:"deliveryAddress" binding:"required,max=500"`
	Phone           string  `json:"phone" binding:"required,max=32"`
	Notes           *string `json:"notes" binding:"omitempty,max=1000"`
}

// UpdateOrderStatusRequest: payload for PUT /api/admin/orders/:id
type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required,orderstatus"`
}

type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type OrderResponse struct {
	ID              string             `json:"id"`
	UserID          string             `json:"userId"`
	Items           []models.OrderItem `json:"items"`
	Total           decimal.Decimal    `json:"total"`
	Status          models.OrderStatus `json:"status"`
	DeliveryAddress string             `json:"deliveryAddress"`
	Phone           string             `json:"phone"`
	Notes           *string            `json:"notes,omitempty"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
	User            *UserSummary       `json:"user,omitempty"`
}

func FromModelToOrderResponse(order *models.Order) OrderResponse {
	resp := OrderResponse{
		ID:              order.ID,
		UserID:          order.UserID,
		Items:           []models.OrderItem(order.Items),
		Total:           order.Total,
		Status:          order.Status,
		DeliveryAddress: order.DeliveryAddress,
		Phone:           order.Phone,
		Notes:           order.Notes,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
	if resp.Items == nil {
		resp.Items = []models.OrderItem{}
	}
	if order.User != nil {
		resp.User = &UserSummary{ID: order.User.ID, Name: order.User.Name, Email: order.User.Email}
	}
	return resp
}

func FromModelsToOrderResponses(orders []models.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, FromModelToOrderResponse(&orders[i]))
	}
	return out
}
