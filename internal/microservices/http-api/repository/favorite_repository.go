package repository

import (
	"context"
	"fmt"

	"kushfilms/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type FavoriteRepository interface {
	Create(ctx context.Context, favorite *models.Favorite) error
	Exists(ctx context.Context, userID string, target models.Target) (bool, error)
	FindByID(ctx context.Context, id string) (*models.Favorite, error)
	Delete(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string) ([]models.Favorite, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Create returns ErrDuplicate when the user already favorited the target.
func (r *favoriteRepository) Create(ctx context.Context, favorite *models.Favorite) error {
	return translate("add favorite", r.db.WithContext(ctx).Create(favorite).Error)
}

func (r *favoriteRepository) Exists(ctx context.Context, userID string, target models.Target) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("user_id = ? AND "+target.Column()+" = ?", userID, target.ID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *favoriteRepository) FindByID(ctx context.Context, id string) (*models.Favorite, error) {
	var favorite models.Favorite
	if err := r.db.WithContext(ctx).First(&favorite, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Favorite{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("remove favorite: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID string) ([]models.Favorite, error) {
	var favorites []models.Favorite
	if err := r.db.WithContext(ctx).
		Preload("Movie").
		Preload("Food").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error; err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return favorites, nil
}
