package dto

import (
	"strings"

	"kushfilms/internal/microservices/http-api/models"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// ListFoodsQuery binds GET /api/foods query parameters.
type ListFoodsQuery struct {
	Category  string `form:"category"`
	Search    string `form:"search"`
	Available *bool  `form:"available"`
}

func (q ListFoodsQuery) Filter() models.FoodFilter {
	return models.FoodFilter{
		Category:  strings.TrimSpace(q.Category),
		Search:    q.Search,
		Available: q.Available,
	}
}

type CreateFoodRequest struct {
	Name        string          `json:"name" binding:"required,max=200"`
	Description string          `json:"description" binding:"max=5000"`
	Category    string          `json:"category" binding:"max=100"`
	Price       decimal.Decimal `json:"price"`
	Location    string          `json:"location" binding:"max=200"`
	ImageURL    string          `json:"imageUrl" binding:"omitempty,url"`
	Ingredients []string        `json:"ingredients" binding:"max=100,dive,max=100"`
	IsAvailable *bool           `json:"isAvailable"`
}

func (r CreateFoodRequest) ToModel() *models.Food {
	available := true
	if r.IsAvailable != nil {
		available = *r.IsAvailable
	}
	ingredients := r.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}
	return &models.Food{
		Name:        strings.TrimSpace(r.Name),
		Description: r.Description,
		Category:    r.Category,
		Price:       r.Price,
		Location:    r.Location,
		ImageURL:    r.ImageURL,
		Ingredients: pq.StringArray(ingredients),
		IsAvailable: available,
	}
}

type UpdateFoodRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string          `json:"description" binding:"omitempty,max=5000"`
	Category    *string          `json:"category" binding:"omitempty,max=100"`
	Price       *decimal.Decimal `json:"price"`
	Location    *string          `json:"location" binding:"omitempty,max=200"`
	ImageURL    *string          `json:"imageUrl" binding:"omitempty,url"`
	Ingredients *[]string        `json:"ingredients" binding:"omitempty,max=100"`
	IsAvailable *bool            `json:"isAvailable"`
}

func (r UpdateFoodRequest) Fields() map[string]any {
	fields := map[string]any{}
	if r.Name != nil {
		fields["name"] = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.Category != nil {
		fields["category"] = *r.Category
	}
	if r.Price != nil {
		fields["price"] = *r.Price
	}
	if r.Location != nil {
		fields["location"] = *r.Location
	}
	if r.ImageURL != nil {
		fields["image_url"] = *r.ImageURL
	}
	if r.Ingredients != nil {
		fields["ingredients"] = pq.StringArray(*r.Ingredients)
	}
	if r.IsAvailable != nil {
		fields["is_available"] = *r.IsAvailable
	}
	return fields
}

type FoodListResponse struct {
	Foods []models.Food `json:"foods"`
	Total int           `json:"total"`
}
