package repository

import (
	"context"
	"fmt"
	"time"

	"kushfilms/internal/microservices/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository interface {
	Upsert(ctx context.Context, rating *models.Rating) (*models.Rating, error)
	FindByID(ctx context.Context, id string) (*models.Rating, error)
	Delete(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string) ([]models.Rating, error)
	ValuesForTarget(ctx context.Context, target models.Target) ([]int, error)
	TargetsByUser(ctx context.Context, userID string) ([]models.Target, error)
	DeleteByUser(ctx context.Context, userID string) error
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Upsert inserts the rating or overwrites the value of the existing row for
// the same (user, target), then returns the stored row.
func (r *ratingRepository) Upsert(ctx context.Context, rating *models.Rating) (*models.Rating, error) {
	target := rating.Target()
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: target.Column()}},
			DoUpdates: clause.Assignments(map[string]any{
				"rating":     rating.Rating,
				"updated_at": time.Now().UTC(),
			}),
		}).
		Create(rating).Error
	if err != nil {
		return nil, fmt.Errorf("upsert rating: %w", err)
	}

	// on conflict the generated id was not stored, so read back the surviving row
	var stored models.Rating
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND "+target.Column()+" = ?", rating.UserID, target.ID).
		First(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *ratingRepository) FindByID(ctx context.Context, id string) (*models.Rating, error) {
	var rating models.Rating
	if err := r.db.WithContext(ctx).First(&rating, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Rating{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete rating: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ratingRepository) ListByUser(ctx context.Context, userID string) ([]models.Rating, error) {
	var ratings []models.Rating
	if err := r.db.WithContext(ctx).
		Preload("Movie").
		Preload("Food").
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&ratings).Error; err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	return ratings, nil
}

// ValuesForTarget returns every rating value stored for the target.
func (r *ratingRepository) ValuesForTarget(ctx context.Context, target models.Target) ([]int, error) {
	var values []int
	if err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Where(target.Column()+" = ?", target.ID).
		Pluck("rating", &values).Error; err != nil {
		return nil, fmt.Errorf("rating values: %w", err)
	}
	return values, nil
}

// TargetsByUser lists the distinct items a user has rated.
func (r *ratingRepository) TargetsByUser(ctx context.Context, userID string) ([]models.Target, error) {
	var ratings []models.Rating
	if err := r.db.WithContext(ctx).
		Select("type", "movie_id", "food_id").
		Where("user_id = ?", userID).
		Find(&ratings).Error; err != nil {
		return nil, fmt.Errorf("rated targets: %w", err)
	}
	targets := make([]models.Target, 0, len(ratings))
	for i := range ratings {
		targets = append(targets, ratings[i].Target())
	}
	return targets, nil
}

func (r *ratingRepository) DeleteByUser(ctx context.Context, userID string) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Rating{}).Error; err != nil {
		return fmt.Errorf("delete user ratings: %w", err)
	}
	return nil
}
