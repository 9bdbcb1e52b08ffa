package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderConfirmed OrderStatus = "CONFIRMED"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// orderTransitions is forward-only; DELIVERED and CANCELLED are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderConfirmed, OrderCancelled},
	OrderConfirmed: {OrderDelivered},
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return len(orderTransitions[s]) == 0
}

// OrderItem is a point-in-time copy of a food line taken at checkout.
type OrderItem struct {
	FoodID   string          `json:"foodId"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Image    string          `json:"image,omitempty"`
}

func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// SumItems returns sum(price * quantity).
func SumItems(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

type Order struct {
	ID              string                         `json:"id" gorm:"primaryKey;type:uuid"`
	UserID          string                         `json:"userId" gorm:"type:uuid;not null;index"`
	Items           datatypes.JSONSlice[OrderItem] `json:"items" gorm:"type:jsonb;not null"`
	Total           decimal.Decimal                `json:"total" gorm:"type:numeric(12,2);not null"`
	Status          OrderStatus                    `json:"status" gorm:"not null;default:'PENDING'"`
	DeliveryAddress string                         `json:"deliveryAddress" gorm:"not null"`
	Phone           string                         `json:"phone" gorm:"not null"`
	Notes           *string                        `json:"notes,omitempty"`
	CreatedAt       time.Time                      `json:"createdAt"`
	UpdatedAt       time.Time                      `json:"updatedAt"`

	// Associations
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return nil
}

func (Order) TableName() string {
	return "orders"
}

// AdminStats feeds the admin dashboard.
type AdminStats struct {
	Users         int64           `json:"users"`
	Movies        int64           `json:"movies"`
	Foods         int64           `json:"foods"`
	Orders        int64           `json:"orders"`
	PendingOrders int64           `json:"pendingOrders"`
	Revenue       decimal.Decimal `json:"revenue"` // DELIVERED orders only
}
