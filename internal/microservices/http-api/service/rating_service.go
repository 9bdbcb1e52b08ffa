package service

import (
	"context"

	"kushfilms/internal/microservices/http-api/models"
	"kushfilms/internal/microservices/http-api/repository"
)

type RatingService interface {
	// Submit creates or replaces the user's rating for target and returns the refreshed aggregate.
	Submit(ctx context.Context, userID string, target models.Target, value int) (*models.Rating, models.RatingStats, error)
	Delete(ctx context.Context, ratingID, userID string) (models.RatingStats, error)
	ListMine(ctx context.Context, userID string) ([]models.Rating, error)
}

type ratingService struct {
	store      repository.Store
	aggregator AggregationService
}

func NewRatingService(store repository.Store, aggregator AggregationService) RatingService {
	return &ratingService{store: store, aggregator: aggregator}
}

func (s *ratingService) Submit(ctx context.Context, userID string, target models.Target, value int) (*models.Rating, models.RatingStats, error) {
	if value < models.MinRating || value > models.MaxRating {
		return nil, models.RatingStats{}, invalidInput("rating must be between %d and %d", models.MinRating, models.MaxRating)
	}

	var (
		saved *models.Rating
		stats models.RatingStats
	)
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		// serializes concurrent ratings of the same target until commit
		if err := lockTarget(ctx, tx, target); err != nil {
			return err
		}

		var err error
		saved, err = tx.Ratings().Upsert(ctx, models.NewRating(userID, target, value))
		if err != nil {
			return err
		}

		stats, err = s.aggregator.RatingChanged(ctx, tx, target)
		return err
	})
	if err != nil {
		return nil, models.RatingStats{}, err
	}
	return saved, stats, nil
}

func (s *ratingService) Delete(ctx context.Context, ratingID, userID string) (models.RatingStats, error) {
	var stats models.RatingStats
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		rating, err := tx.Ratings().FindByID(ctx, ratingID)
		if err != nil {
			return lookupErr(err, "rating")
		}
		if rating.UserID != userID {
			return newError(ErrForbidden, "cannot delete another user's rating")
		}

		target := rating.Target()
		if err := lockTarget(ctx, tx, target); err != nil {
			return err
		}
		if err := tx.Ratings().Delete(ctx, rating.ID); err != nil {
			return lookupErr(err, "rating")
		}

		stats, err = s.aggregator.RatingChanged(ctx, tx, target)
		return err
	})
	return stats, err
}

func (s *ratingService) ListMine(ctx context.Context, userID string) ([]models.Rating, error) {
	return s.store.Ratings().ListByUser(ctx, userID)
}
