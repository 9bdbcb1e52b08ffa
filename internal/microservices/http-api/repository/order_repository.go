package repository

import (
	"context"
	"fmt"
	"time"

	"kushfilms/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id string) (*models.Order, error)
	// List returns orders newest first; an empty userID lists every order.
	List(ctx context.Context, userID string) ([]models.Order, error)
	// UpdateStatus moves the order from one status to another and reports
	// whether the row was still in the from status.
	UpdateStatus(ctx context.Context, id string, from, to models.OrderStatus) (bool, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *models.Order) error {
	if err := r.db.WithContext(ctx).Omit("User").Create(order).Error; err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).Preload("User").First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) List(ctx context.Context, userID string) ([]models.Order, error) {
	q := r.db.WithContext(ctx).Preload("User").Order("created_at DESC")
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}

	var orders []models.Order
	if err := q.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, from, to models.OrderStatus) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{"status": to, "updated_at": time.Now().UTC()})
	if result.Error != nil {
		return false, fmt.Errorf("update order status: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *orderRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
