package service

import (
	"context"
	"time"

	"kushfilms/internal/microservices/http-api/dto"
	"kushfilms/internal/microservices/http-api/models"
	"kushfilms/internal/microservices/http-api/repository"
)

const watchHistoryLimit = 50

type WatchHistoryService interface {
	// Record overwrites the user's progress on a movie.
	Record(ctx context.Context, userID string, req dto.RecordWatchRequest) (*models.WatchHistory, error)
	List(ctx context.Context, userID string) ([]models.WatchHistory, error)
}

type watchHistoryService struct {
	store repository.Store
	now   func() time.Time
}

func NewWatchHistoryService(store repository.Store) WatchHistoryService {
	return &watchHistoryService{store: store, now: time.Now}
}

func (s *watchHistoryService) Record(ctx context.Context, userID string, req dto.RecordWatchRequest) (*models.WatchHistory, error) {
	if req.Progress < 0 {
		return nil, invalidInput("progress cannot be negative")
	}
	if err := ensureTarget(ctx, s.store, models.MovieTarget(req.MovieID)); err != nil {
		return nil, err
	}

	return s.store.WatchHistory().Upsert(ctx, &models.WatchHistory{
		UserID:    userID,
		MovieID:   req.MovieID,
		Progress:  req.Progress,
		Completed: req.Completed,
		WatchedAt: s.now().UTC(),
	})
}

func (s *watchHistoryService) List(ctx context.Context, userID string) ([]models.WatchHistory, error) {
	return s.store.WatchHistory().ListByUser(ctx, userID, watchHistoryLimit)
}
