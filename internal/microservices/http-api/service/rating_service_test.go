package service

import (
	"context"
	"testing"

	"kushfilms/internal/microservices/http-api/models"
	"kushfilms/internal/microservices/http-api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubmitRating_UpsertsAndRecomputes(t *testing.T) {
	store := newMockStore()
	ratingService := NewRatingService(store, NewAggregationService())
	ctx := context.Background()
	target := models.MovieTarget("m1")

	store.On("WithinTx", ctx).Return()
	store.movies.On("LockForUpdate", ctx, "m1").Return(nil)
	store.ratings.On("Upsert", ctx, mock.MatchedBy(func(r *models.Rating) bool {
		return r.UserID == "u1" && r.Rating == 8 && r.MovieID != nil && *r.MovieID == "m1" && r.FoodID == nil
	})).Return(&models.Rating{ID: "r1", UserID: "u1", Rating: 8}, nil)
	store.ratings.On("ValuesForTarget", ctx, target).Return([]int{8, 5}, nil)
	store.movies.On("UpdateRatingStats", ctx, "m1", models.RatingStats{Average: 6.5, Count: 2}).Return(nil)

	rating, stats, err := ratingService.Submit(ctx, "u1", target, 8)

	require.NoError(t, err)
	assert.Equal(t, "r1", rating.ID)
	assert.Equal(t, 6.5, stats.Average)
	assert.Equal(t, 2, stats.Count)
	store.movies.AssertExpectations(t)
	store.ratings.AssertExpectations(t)
}

func TestSubmitRating_OutOfRange(t *testing.T) {
	store := newMockStore()
	ratingService := NewRatingService(store, NewAggregationService())

	for _, value := range []int{0, 11, -3} {
		_, _, err := ratingService.Submit(context.Background(), "u1", models.FoodTarget("f1"), value)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
	store.AssertNotCalled(t, "WithinTx", mock.Anything)
}

func TestSubmitRating_MissingTarget(t *testing.T) {
	store := newMockStore()
	ratingService := NewRatingService(store, NewAggregationService())
	ctx := context.Background()

	store.On("WithinTx", ctx).Return()
	store.foods.On("LockForUpdate", ctx, "f404").Return(repository.ErrNotFound)

	_, _, err := ratingService.Submit(ctx, "u1", models.FoodTarget("f404"), 7)

	assert.ErrorIs(t, err, ErrNotFound)
	store.ratings.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestDeleteRating(t *testing.T) {
	foodID := "f1"
	owned := &models.Rating{ID: "r1", UserID: "u1", Type: models.TargetFood, FoodID: &foodID, Rating: 9}

	t.Run("owner recomputes to zero", func(t *testing.T) {
		store := newMockStore()
		ratingService := NewRatingService(store, NewAggregationService())
		ctx := context.Background()

		store.On("WithinTx", ctx).Return()
		store.ratings.On("FindByID", ctx, "r1").Return(owned, nil)
		store.foods.On("LockForUpdate", ctx, "f1").Return(nil)
		store.ratings.On("Delete", ctx, "r1").Return(nil)
		store.ratings.On("ValuesForTarget", ctx, models.FoodTarget("f1")).Return([]int{}, nil)
		store.foods.On("UpdateRatingStats", ctx, "f1", models.RatingStats{}).Return(nil)

		stats, err := ratingService.Delete(ctx, "r1", "u1")

		require.NoError(t, err)
		assert.Equal(t, models.RatingStats{}, stats)
		store.foods.AssertExpectations(t)
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		store := newMockStore()
		ratingService := NewRatingService(store, NewAggregationService())
		ctx := context.Background()

		store.On("WithinTx", ctx).Return()
		store.ratings.On("FindByID", ctx, "r1").Return(owned, nil)

		_, err := ratingService.Delete(ctx, "r1", "u2")

		assert.ErrorIs(t, err, ErrForbidden)
		store.ratings.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("missing rating", func(t *testing.T) {
		store := newMockStore()
		ratingService := NewRatingService(store, NewAggregationService())
		ctx := context.Background()

		store.On("WithinTx", ctx).Return()
		store.ratings.On("FindByID", ctx, "nope").Return(nil, repository.ErrNotFound)

		_, err := ratingService.Delete(ctx, "nope", "u1")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestComputeAggregateAfterSequence(t *testing.T) {
	// a user's later rating replaces the earlier one, so only the latest value counts
	store := newMockStore()
	agg := NewAggregationService()
	ctx := context.Background()
	target := models.MovieTarget("m1")

	store.ratings.On("ValuesForTarget", ctx, target).Return([]int{2, 4, 9}, nil)
	store.movies.On("UpdateRatingStats", ctx, "m1", models.RatingStats{Average: 5, Count: 3}).Return(nil)

	stats, err := agg.RatingChanged(ctx, store, target)

	require.NoError(t, err)
	assert.Equal(t, models.RatingStats{Average: 5, Count: 3}, stats)
}
