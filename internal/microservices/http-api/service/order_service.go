package service

import (
	"context"
	"strings"

	"kushfilms/internal/cache"
	"kushfilms/internal/metrics"
	"kushfilms/internal/microservices/http-api/models"
	"kushfilms/internal/microservices/http-api/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Requester is the authenticated caller, used for visibility checks.
type Requester struct {
	UserID string
	Role   string
}

func (r Requester) IsAdmin() bool {
	return r.Role == models.RoleAdmin
}

// OrderNotifier is told about every order that is created or changes status.
type OrderNotifier interface {
	NotifyOrder(order *models.Order)
}

// NewOrder is the input to OrderService.Place.
type NewOrder struct {
	Items           []models.OrderItem
	Total           *decimal.Decimal // optional; must match the computed total when sent
	DeliveryAddress string
	Phone           string
	Notes           *string
}

type OrderService interface {
	Place(ctx context.Context, userID string, input NewOrder) (*models.Order, error)
	List(ctx context.Context, requester Requester) ([]models.Order, error)
	Get(ctx context.Context, orderID string, requester Requester) (*models.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus, requester Requester) (*models.Order, error)
}

type orderService struct {
	store    repository.Store
	cache    cache.Cache
	notifier OrderNotifier
	logger   *zap.Logger
}

func NewOrderService(store repository.Store, c cache.Cache, notifier OrderNotifier, logger *zap.Logger) OrderService {
	return &orderService{store: store, cache: c, notifier: notifier, logger: logger}
}

// Place: validates and snapshots the items and stores a PENDING order.
func (s *orderService) Place(ctx context.Context, userID string, input NewOrder) (*models.Order, error) {
	address := strings.TrimSpace(input.DeliveryAddress)
	phone := strings.TrimSpace(input.Phone)
	if address == "" || phone == "" {
		return nil, invalidInput("delivery address and phone are required")
	}

	items, err := mergeItems(input.Items)
	if err != nil {
		return nil, err
	}
	if err := s.ensureFoods(ctx, items); err != nil {
		return nil, err
	}

	total := models.SumItems(items)
	if input.Total != nil && !input.Total.Equal(total) {
		return nil, invalidInput("total %s does not match items total %s", input.Total.String(), total.String())
	}

	order := &models.Order{
		UserID:          userID,
		Items:           items,
		Total:           total,
		Status:          models.OrderPending,
		DeliveryAddress: address,
		Phone:           phone,
		Notes:           input.Notes,
	}
	if err := s.store.Orders().Create(ctx, order); err != nil {
		return nil, err
	}
	metrics.OrdersPlaced.Inc()

	saved, err := s.store.Orders().FindByID(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	s.changed(ctx, saved)
	return saved, nil
}

func (s *orderService) List(ctx context.Context, requester Requester) ([]models.Order, error) {
	if requester.IsAdmin() {
		return s.store.Orders().List(ctx, "")
	}
	return s.store.Orders().List(ctx, requester.UserID)
}

// Get: another user's order reads as missing so ids cannot be probed.
func (s *orderService) Get(ctx context.Context, orderID string, requester Requester) (*models.Order, error) {
	order, err := s.store.Orders().FindByID(ctx, orderID)
	if err != nil {
		return nil, lookupErr(err, "order")
	}
	if order.UserID != requester.UserID && !requester.IsAdmin() {
		return nil, notFound("order")
	}
	return order, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus, requester Requester) (*models.Order, error) {
	if !requester.IsAdmin() {
		return nil, newError(ErrForbidden, "admin access required")
	}
	if !status.Valid() {
		return nil, invalidInput("unknown order status %q", status)
	}

	order, err := s.store.Orders().FindByID(ctx, orderID)
	if err != nil {
		return nil, lookupErr(err, "order")
	}
	if !order.Status.CanTransitionTo(status) {
		return nil, newError(ErrInvalidTransition, "cannot change order status from %s to %s", order.Status, status)
	}

	ok, err := s.store.Orders().UpdateStatus(ctx, order.ID, order.Status, status)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, newError(ErrInvalidTransition, "order status changed concurrently")
	}
	metrics.OrderStatusChanges.WithLabelValues(string(status)).Inc()

	updated, err := s.store.Orders().FindByID(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	s.changed(ctx, updated)
	return updated, nil
}

func (s *orderService) ensureFoods(ctx context.Context, items []models.OrderItem) error {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.FoodID)
	}
	foods, err := s.store.Foods().FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(foods) != len(ids) {
		return invalidInput("order contains an unknown food")
	}
	return nil
}

func (s *orderService) changed(ctx context.Context, order *models.Order) {
	if err := s.cache.Delete(ctx, statsCacheKey); err != nil {
		s.logger.Warn("invalidate stats cache failed", zap.Error(err))
	}
	if s.notifier != nil {
		s.notifier.NotifyOrder(order)
	}
}

// mergeItems validates lines and folds repeated foods into one line.
func mergeItems(items []models.OrderItem) ([]models.OrderItem, error) {
	if len(items) == 0 {
		return nil, invalidInput("order must contain at least one item")
	}

	merged := make([]models.OrderItem, 0, len(items))
	index := make(map[string]int, len(items))
	for _, item := range items {
		item.Name = strings.TrimSpace(item.Name)
		switch {
		case item.FoodID == "":
			return nil, invalidInput("item foodId is required")
		case item.Name == "":
			return nil, invalidInput("item name is required")
		case item.Quantity < 1:
			return nil, invalidInput("item quantity must be at least 1")
		case item.Price.IsNegative():
			return nil, invalidInput("item price cannot be negative")
		}

		if i, ok := index[item.FoodID]; ok {
			if !merged[i].Price.Equal(item.Price) {
				return nil, invalidInput("conflicting prices for food %s", item.FoodID)
			}
			merged[i].Quantity += item.Quantity
			continue
		}
		index[item.FoodID] = len(merged)
		merged = append(merged, item)
	}
	return merged, nil
}
