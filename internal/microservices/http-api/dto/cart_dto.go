package dto

// AddCartItemRequest: payload for POST /api/cart/items
type AddCartItemRequest struct {
	FoodID   string `json:"foodId" binding:"required,uuid"`
	Quantity int    `json:"quantity" binding:"omitempty,min=1,max=99"`
}

// UpdateCartItemRequest: payload for PUT /api/cart/items/:foodId; 0 removes the line
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"min=0,max=99"`
}
