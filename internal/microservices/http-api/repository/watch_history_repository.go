package repository

import (
	"context"
	"fmt"

	"kushfilms/internal/microservices/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WatchHistoryRepository interface {
	Upsert(ctx context.Context, entry *models.WatchHistory) (*models.WatchHistory, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]models.WatchHistory, error)
}

type watchHistoryRepository struct {
	db *gorm.DB
}

func NewWatchHistoryRepository(db *gorm.DB) WatchHistoryRepository {
	return &watchHistoryRepository{db: db}
}

// Upsert records progress for (user, movie), overwriting progress, completed and watched_at.
func (r *watchHistoryRepository) Upsert(ctx context.Context, entry *models.WatchHistory) (*models.WatchHistory, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "movie_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"progress", "completed", "watched_at"}),
		}).
		Create(entry).Error
	if err != nil {
		return nil, fmt.Errorf("record watch progress: %w", err)
	}

	var stored models.WatchHistory
	if err := r.db.WithContext(ctx).
		Preload("Movie").
		Where("user_id = ? AND movie_id = ?", entry.UserID, entry.MovieID).
		First(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *watchHistoryRepository) ListByUser(ctx context.Context, userID string, limit int) ([]models.WatchHistory, error) {
	var history []models.WatchHistory
	if err := r.db.WithContext(ctx).
		Preload("Movie").
		Where("user_id = ?", userID).
		Order("watched_at DESC").
		Limit(clampLimit(limit)).
		Find(&history).Error; err != nil {
		return nil, fmt.Errorf("list watch history: %w", err)
	}
	return history, nil
}
