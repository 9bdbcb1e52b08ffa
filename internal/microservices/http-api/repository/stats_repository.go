package repository

import (
	"context"
	"fmt"

	"kushfilms/internal/microservices/http-api/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type StatsRepository interface {
	Collect(ctx context.Context) (*models.AdminStats, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

// Collect counts users, catalog items and orders, and sums revenue over delivered orders.
func (r *statsRepository) Collect(ctx context.Context) (*models.AdminStats, error) {
	var row struct {
		Users         int64
		Movies        int64
		Foods         int64
		Orders        int64
		PendingOrders int64
		Revenue       decimal.Decimal
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM users) AS users,
			(SELECT COUNT(*) FROM movies) AS movies,
			(SELECT COUNT(*) FROM foods) AS foods,
			(SELECT COUNT(*) FROM orders) AS orders,
			(SELECT COUNT(*) FROM orders WHERE status = ?) AS pending_orders,
			(SELECT COALESCE(SUM(total), 0) FROM orders WHERE status = ?) AS revenue`,
		models.OrderPending, models.OrderDelivered,
	).Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("collect stats: %w", err)
	}

	return &models.AdminStats{
		Users:         row.Users,
		Movies:        row.Movies,
		Foods:         row.Foods,
		Orders:        row.Orders,
		PendingOrders: row.PendingOrders,
		Revenue:       row.Revenue,
	}, nil
}
