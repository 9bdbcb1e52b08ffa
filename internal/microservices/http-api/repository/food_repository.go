package repository

import (
	"context"
	"fmt"
	"strings"

	"kushfilms/internal/microservices/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FoodRepository interface {
	List(ctx context.Context, filter models.FoodFilter) ([]models.Food, error)
	FindByID(ctx context.Context, id string) (*models.Food, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Food, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, food *models.Food) error
	Update(ctx context.Context, id string, fields map[string]any) (*models.Food, error)
	Delete(ctx context.Context, id string) error
	LockForUpdate(ctx context.Context, id string) error
	UpdateRatingStats(ctx context.Context, id string, stats models.RatingStats) error
}

type foodRepository struct {
	db *gorm.DB
}

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) List(ctx context.Context, filter models.FoodFilter) ([]models.Food, error) {
	q := r.db.WithContext(ctx).Model(&models.Food{})

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		q = q.Where("(name ILIKE ? OR description ILIKE ?)", pattern, pattern)
	}
	if filter.Category != "" {
		q = q.Where("category ILIKE ?", escapeLike(filter.Category))
	}
	if filter.Available != nil {
		q = q.Where("is_available = ?", *filter.Available)
	}

	var foods []models.Food
	if err := q.Order("created_at DESC").Limit(clampLimit(filter.Limit)).Find(&foods).Error; err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	return foods, nil
}

func (r *foodRepository) FindByID(ctx context.Context, id string) (*models.Food, error) {
	var food models.Food
	if err := r.db.WithContext(ctx).First(&food, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Food, error) {
	var foods []models.Food
	if len(ids) == 0 {
		return foods, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&foods).Error; err != nil {
		return nil, fmt.Errorf("find foods: %w", err)
	}
	return foods, nil
}

func (r *foodRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Food{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *foodRepository) Create(ctx context.Context, food *models.Food) error {
	return translate("create food", r.db.WithContext(ctx).Create(food).Error)
}

func (r *foodRepository) Update(ctx context.Context, id string, fields map[string]any) (*models.Food, error) {
	if len(fields) > 0 {
		result := r.db.WithContext(ctx).Model(&models.Food{}).Where("id = ?", id).Updates(fields)
		if result.Error != nil {
			return nil, translate("update food", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}
	return r.FindByID(ctx, id)
}

func (r *foodRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Food{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete food: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *foodRepository) LockForUpdate(ctx context.Context, id string) error {
	var food models.Food
	return r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		First(&food, "id = ?", id).Error
}

func (r *foodRepository) UpdateRatingStats(ctx context.Context, id string, stats models.RatingStats) error {
	return r.db.WithContext(ctx).
		Model(&models.Food{}).
		Where("id = ?", id).
		UpdateColumns(map[string]any{
			"average_rating": stats.Average,
			"rating_count":   stats.Count,
		}).Error
}
