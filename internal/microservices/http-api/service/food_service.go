package service

import (
	"context"

	"kushfilms/internal/microservices/http-api/dto"
	"kushfilms/internal/microservices/http-api/models"
	"kushfilms/internal/microservices/http-api/repository"
)

type FoodService interface {
	List(ctx context.Context, filter models.FoodFilter) ([]models.Food, error)
	Get(ctx context.Context, id string) (*models.Food, error)
	Create(ctx context.Context, req dto.CreateFoodRequest) (*models.Food, error)
	Update(ctx context.Context, id string, req dto.UpdateFoodRequest) (*models.Food, error)
	Delete(ctx context.Context, id string) error
}

type foodService struct {
	foods repository.FoodRepository
}

func NewFoodService(foods repository.FoodRepository) FoodService {
	return &foodService{foods: foods}
}

func (s *foodService) List(ctx context.Context, filter models.FoodFilter) ([]models.Food, error) {
	return s.foods.List(ctx, filter)
}

func (s *foodService) Get(ctx context.Context, id string) (*models.Food, error) {
	food, err := s.foods.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "food")
	}
	return food, nil
}

func (s *foodService) Create(ctx context.Context, req dto.CreateFoodRequest) (*models.Food, error) {
	food := req.ToModel()
	if food.Name == "" {
		return nil, invalidInput("name is required")
	}
	if food.Price.IsNegative() {
		return nil, invalidInput("price cannot be negative")
	}
	if err := s.foods.Create(ctx, food); err != nil {
		return nil, err
	}
	return food, nil
}

func (s *foodService) Update(ctx context.Context, id string, req dto.UpdateFoodRequest) (*models.Food, error) {
	if req.Price != nil && req.Price.IsNegative() {
		return nil, invalidInput("price cannot be negative")
	}
	fields := req.Fields()
	if name, ok := fields["name"]; ok && name == "" {
		return nil, invalidInput("name cannot be empty")
	}
	food, err := s.foods.Update(ctx, id, fields)
	if err != nil {
		return nil, lookupErr(err, "food")
	}
	return food, nil
}

func (s *foodService) Delete(ctx context.Context, id string) error {
	return lookupErr(s.foods.Delete(ctx, id), "food")
}
