package service

import (
	"context"
	"fmt"
	"testing"

	"kushfilms/internal/cache"
	"kushfilms/internal/microservices/http-api/dto"
	"kushfilms/internal/microservices/http-api/models"
	"kushfilms/internal/microservices/http-api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDeleteUser_RecomputesRatedTargets(t *testing.T) {
	store := newMockStore()
	userService := NewUserService(store, NewAggregationService(), cache.Noop{}, zap.NewNop())
	ctx := context.Background()

	store.On("WithinTx", ctx).Return()
	store.users.On("LockForUpdate", ctx, "u1").Return(nil)
	store.orders.On("CountByUser", ctx, "u1").Return(int64(0), nil)
	store.ratings.On("TargetsByUser", ctx, "u1").Return([]models.Target{
		models.MovieTarget("m2"), models.FoodTarget("f1"), models.MovieTarget("m1"),
	}, nil)

	var locked []string
	record := func(args mock.Arguments) { locked = append(locked, args.String(1)) }
	store.foods.On("LockForUpdate", ctx, "f1").Run(record).Return(nil)
	store.movies.On("LockForUpdate", ctx, "m1").Run(record).Return(nil)
	store.movies.On("LockForUpdate", ctx, "m2").Run(record).Return(nil)

	store.ratings.On("DeleteByUser", ctx, "u1").Return(nil)
	store.ratings.On("ValuesForTarget", ctx, mock.Anything).Return([]int{6}, nil)
	store.movies.On("UpdateRatingStats", ctx, mock.Anything, models.RatingStats{Average: 6, Count: 1}).Return(nil)
	store.foods.On("UpdateRatingStats", ctx, "f1", models.RatingStats{Average: 6, Count: 1}).Return(nil)
	store.users.On("Delete", ctx, "u1").Return(nil)

	require.NoError(t, userService.Delete(ctx, "admin", "u1"))

	assert.Equal(t, []string{"f1", "m1", "m2"}, locked)
	store.movies.AssertNumberOfCalls(t, "UpdateRatingStats", 2)
	store.users.AssertCalled(t, "Delete", ctx, "u1")
}

func TestDeleteUser_Blocked(t *testing.T) {
	store := newMockStore()
	userService := NewUserService(store, NewAggregationService(), cache.Noop{}, zap.NewNop())
	ctx := context.Background()

	assert.ErrorIs(t, userService.Delete(ctx, "a1", "a1"), ErrForbidden)

	store.On("WithinTx", ctx).Return()
	store.users.On("LockForUpdate", ctx, "u1").Return(nil)
	store.orders.On("CountByUser", ctx, "u1").Return(int64(3), nil)
	assert.ErrorIs(t, userService.Delete(ctx, "a1", "u1"), ErrConflict)
	store.ratings.AssertNotCalled(t, "DeleteByUser", mock.Anything, mock.Anything)
	store.users.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)

	store.users.On("LockForUpdate", ctx, "gone").Return(repository.ErrNotFound)
	assert.ErrorIs(t, userService.Delete(ctx, "a1", "gone"), ErrNotFound)
}

func TestDeleteUser_OrderPlacedConcurrently(t *testing.T) {
	store := newMockStore()
	userService := NewUserService(store, NewAggregationService(), cache.Noop{}, zap.NewNop())
	ctx := context.Background()

	store.On("WithinTx", ctx).Return()
	store.users.On("LockForUpdate", ctx, "u1").Return(nil)
	store.orders.On("CountByUser", ctx, "u1").Return(int64(0), nil)
	store.ratings.On("TargetsByUser", ctx, "u1").Return([]models.Target{}, nil)
	store.ratings.On("DeleteByUser", ctx, "u1").Return(nil)
	store.users.On("Delete", ctx, "u1").Return(fmt.Errorf("delete user: %w (orders_user_id_fkey)", repository.ErrReferenced))

	err := userService.Delete(ctx, "a1", "u1")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUpdateUser_SelfProtection(t *testing.T) {
	store := newMockStore()
	userService := NewUserService(store, NewAggregationService(), cache.Noop{}, zap.NewNop())
	ctx := context.Background()

	role := models.RoleUser
	inactive := false

	_, err := userService.Update(ctx, "a1", "a1", dto.UpdateUserRequest{Role: &role})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = userService.Update(ctx, "a1", "a1", dto.UpdateUserRequest{IsActive: &inactive})
	assert.ErrorIs(t, err, ErrForbidden)

	store.users.On("Update", ctx, "u1", map[string]any{"is_active": false}).Return(&models.User{ID: "u1"}, nil)
	user, err := userService.Update(ctx, "a1", "u1", dto.UpdateUserRequest{IsActive: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}
