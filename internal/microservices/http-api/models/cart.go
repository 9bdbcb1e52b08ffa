package models

import (
	"sort"

	"github.com/shopspring/decimal"
)

// CartItem is one line of a user's cart; quantities merge per food.
type CartItem struct {
	FoodID   string          `json:"foodId"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Image    string          `json:"image,omitempty"`
}

type Cart struct {
	Items      []CartItem      `json:"items"`
	Total      decimal.Decimal `json:"total"`
	TotalItems int             `json:"totalItems"`
}

func NewCart(items []CartItem) *Cart {
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	cart := &Cart{Items: items, Total: decimal.Zero}
	if cart.Items == nil {
		cart.Items = []CartItem{}
	}
	for _, item := range cart.Items {
		cart.Total = cart.Total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		cart.TotalItems += item.Quantity
	}
	return cart
}

func (c *Cart) OrderItems() []OrderItem {
	items := make([]OrderItem, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, OrderItem(item))
	}
	return items
}
