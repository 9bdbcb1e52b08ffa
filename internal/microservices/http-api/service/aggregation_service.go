package service

import (
	"context"
	"fmt"

	"kushfilms/internal/metrics"
	"kushfilms/internal/microservices/http-api/models"
	"kushfilms/internal/microservices/http-api/repository"
)

// AggregationService keeps averageRating and ratingCount on movies and foods
// in step with the ratings table.
type AggregationService interface {
	// RatingChanged recomputes the target's aggregate inside tx. The caller
	// must already hold the target's row lock.
	RatingChanged(ctx context.Context, tx repository.Store, target models.Target) (models.RatingStats, error)
}

type aggregationService struct{}

func NewAggregationService() AggregationService {
	return aggregationService{}
}

func (aggregationService) RatingChanged(ctx context.Context, tx repository.Store, target models.Target) (models.RatingStats, error) {
	values, err := tx.Ratings().ValuesForTarget(ctx, target)
	if err != nil {
		return models.RatingStats{}, fmt.Errorf("load ratings for %s %s: %w", target.Type, target.ID, err)
	}
	stats := models.ComputeRatingStats(values)

	switch target.Type {
	case models.TargetMovie:
		err = tx.Movies().UpdateRatingStats(ctx, target.ID, stats)
	case models.TargetFood:
		err = tx.Foods().UpdateRatingStats(ctx, target.ID, stats)
	default:
		return models.RatingStats{}, invalidInput("unknown target type %q", target.Type)
	}
	if err != nil {
		return models.RatingStats{}, fmt.Errorf("store rating stats: %w", err)
	}

	metrics.RatingRecomputes.WithLabelValues(string(target.Type)).Inc()
	return stats, nil
}

// lockTarget row-locks the movie or food for the rest of the transaction.
func lockTarget(ctx context.Context, tx repository.Store, target models.Target) error {
	var err error
	switch target.Type {
	case models.TargetMovie:
		err = tx.Movies().LockForUpdate(ctx, target.ID)
	case models.TargetFood:
		err = tx.Foods().LockForUpdate(ctx, target.ID)
	default:
		return invalidInput("unknown target type %q", target.Type)
	}
	return lookupErr(err, string(target.Type))
}

// ensureTarget reports NotFound when the movie or food does not exist.
func ensureTarget(ctx context.Context, store repository.Store, target models.Target) error {
	var (
		ok  bool
		err error
	)
	switch target.Type {
	case models.TargetMovie:
		ok, err = store.Movies().Exists(ctx, target.ID)
	case models.TargetFood:
		ok, err = store.Foods().Exists(ctx, target.ID)
	default:
		return invalidInput("unknown target type %q", target.Type)
	}
	if err != nil {
		return err
	}
	if !ok {
		return notFound(string(target.Type))
	}
	return nil
}
