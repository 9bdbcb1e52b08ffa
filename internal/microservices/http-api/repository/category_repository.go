package repository

import (
	"context"
	"fmt"

	"kushfilms/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	ListWithCounts(ctx context.Context) ([]models.Category, error)
	FindByID(ctx context.Context, id string) (*models.Category, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, id string, fields map[string]any) (*models.Category, error)
	Delete(ctx context.Context, id string) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// ListWithCounts returns categories in display order, each with its movie count.
func (r *categoryRepository) ListWithCounts(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Select("categories.*, COUNT(mc.movie_id) AS movie_count").
		Joins("LEFT JOIN movie_categories mc ON mc.category_id = categories.id").
		Group("categories.id").
		Order("categories.sort_order ASC, categories.name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Category, error) {
	var categories []models.Category
	if len(ids) == 0 {
		return categories, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("find categories: %w", err)
	}
	return categories, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	return translate("create category", r.db.WithContext(ctx).Create(category).Error)
}

func (r *categoryRepository) Update(ctx context.Context, id string, fields map[string]any) (*models.Category, error) {
	if len(fields) > 0 {
		result := r.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", id).Updates(fields)
		if result.Error != nil {
			return nil, translate("update category", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}
	return r.FindByID(ctx, id)
}

func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
