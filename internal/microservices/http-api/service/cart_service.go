package service

import (
	"context"
	"errors"

	"kushfilms/internal/microservices/http-api/dto"
	"kushfilms/internal/microservices/http-api/models"
	"kushfilms/internal/microservices/http-api/repository"

	"go.uber.org/zap"
)

type CartService interface {
	Get(ctx context.Context, userID string) (*models.Cart, error)
	Add(ctx context.Context, userID, foodID string, quantity int) (*models.Cart, error)
	// Update sets a line's quantity; zero or less removes it.
	Update(ctx context.Context, userID, foodID string, quantity int) (*models.Cart, error)
	Remove(ctx context.Context, userID, foodID string) (*models.Cart, error)
	Clear(ctx context.Context, userID string) (*models.Cart, error)
	// Checkout places an order from the cart and empties it.
	Checkout(ctx context.Context, userID string, req dto.CheckoutRequest) (*models.Order, error)
}

type cartService struct {
	carts  repository.CartRepository
	foods  repository.FoodRepository
	orders OrderService
	logger *zap.Logger
}

func NewCartService(carts repository.CartRepository, foods repository.FoodRepository, orders OrderService, logger *zap.Logger) CartService {
	return &cartService{carts: carts, foods: foods, orders: orders, logger: logger}
}

func (s *cartService) Get(ctx context.Context, userID string) (*models.Cart, error) {
	items, err := s.carts.Items(ctx, userID)
	if err != nil {
		return nil, err
	}
	return models.NewCart(items), nil
}

func (s *cartService) Add(ctx context.Context, userID, foodID string, quantity int) (*models.Cart, error) {
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return nil, invalidInput("quantity must be at least 1")
	}

	food, err := s.foods.FindByID(ctx, foodID)
	if err != nil {
		return nil, lookupErr(err, "food")
	}
	if !food.IsAvailable {
		return nil, invalidInput("%s is not available", food.Name)
	}

	if _, err := s.carts.AddItem(ctx, userID, models.CartItem{
		FoodID:   food.ID,
		Name:     food.Name,
		Price:    food.Price,
		Quantity: quantity,
		Image:    food.ImageURL,
	}); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

func (s *cartService) Update(ctx context.Context, userID, foodID string, quantity int) (*models.Cart, error) {
	if quantity <= 0 {
		return s.Remove(ctx, userID, foodID)
	}
	if err := s.carts.SetQuantity(ctx, userID, foodID, quantity); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("cart item")
		}
		return nil, err
	}
	return s.Get(ctx, userID)
}

func (s *cartService) Remove(ctx context.Context, userID, foodID string) (*models.Cart, error) {
	if err := s.carts.RemoveItem(ctx, userID, foodID); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

func (s *cartService) Clear(ctx context.Context, userID string) (*models.Cart, error) {
	if err := s.carts.Clear(ctx, userID); err != nil {
		return nil, err
	}
	return models.NewCart(nil), nil
}

func (s *cartService) Checkout(ctx context.Context, userID string, req dto.CheckoutRequest) (*models.Order, error) {
	cart, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, invalidInput("cart is empty")
	}

	order, err := s.orders.Place(ctx, userID, NewOrder{
		Items:           cart.OrderItems(),
		Total:           &cart.Total,
		DeliveryAddress: req.DeliveryAddress,
		Phone:           req.Phone,
		Notes:           req.Notes,
	})
	if err != nil {
		return nil, err
	}

	// the order stands even if the cart cannot be emptied
	if err := s.carts.Clear(ctx, userID); err != nil {
		s.logger.Warn("clear cart after checkout failed", zap.String("user_id", userID), zap.Error(err))
	}
	return order, nil
}
