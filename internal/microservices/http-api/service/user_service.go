package service

import (
	"context"
	"errors"
	"sort"

	"kushfilms/internal/cache"
	"kushfilms/internal/microservices/http-api/dto"
	"kushfilms/internal/microservices/http-api/models"
	"kushfilms/internal/microservices/http-api/repository"

	"go.uber.org/zap"
)

// UserService is the admin view over accounts.
type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, actorID, userID string, req dto.UpdateUserRequest) (*models.User, error)
	// Delete removes a user without orders, recomputing every aggregate their ratings fed.
	Delete(ctx context.Context, actorID, userID string) error
}

type userService struct {
	store      repository.Store
	aggregator AggregationService
	cache      cache.Cache
	logger     *zap.Logger
}

func NewUserService(store repository.Store, aggregator AggregationService, c cache.Cache, logger *zap.Logger) UserService {
	return &userService{store: store, aggregator: aggregator, cache: c, logger: logger}
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	return s.store.Users().List(ctx)
}

func (s *userService) Update(ctx context.Context, actorID, userID string, req dto.UpdateUserRequest) (*models.User, error) {
	if actorID == userID {
		if req.Role != nil && *req.Role != models.RoleAdmin {
			return nil, newError(ErrForbidden, "cannot remove your own admin role")
		}
		if req.IsActive != nil && !*req.IsActive {
			return nil, newError(ErrForbidden, "cannot deactivate your own account")
		}
	}
	if req.Role != nil && *req.Role != models.RoleUser && *req.Role != models.RoleAdmin {
		return nil, invalidInput("role must be USER or ADMIN")
	}

	user, err := s.store.Users().Update(ctx, userID, req.Fields())
	if err != nil {
		return nil, lookupErr(err, "user")
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, actorID, userID string) error {
	if actorID == userID {
		return newError(ErrForbidden, "cannot delete your own account")
	}
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		// holds off orders for this user until the delete commits
		if err := tx.Users().LockForUpdate(ctx, userID); err != nil {
			return lookupErr(err, "user")
		}
		orders, err := tx.Orders().CountByUser(ctx, userID)
		if err != nil {
			return err
		}
		if orders > 0 {
			return newError(ErrConflict, "user has %d orders and cannot be deleted", orders)
		}

		targets, err := tx.Ratings().TargetsByUser(ctx, userID)
		if err != nil {
			return err
		}
		// a fixed lock order keeps concurrent deletes from deadlocking
		sort.Slice(targets, func(i, j int) bool { return targets[i].Less(targets[j]) })
		for _, target := range targets {
			if err := lockTarget(ctx, tx, target); err != nil {
				return err
			}
		}

		if err := tx.Ratings().DeleteByUser(ctx, userID); err != nil {
			return err
		}
		for _, target := range targets {
			if _, err := s.aggregator.RatingChanged(ctx, tx, target); err != nil {
				return err
			}
		}
		return lookupErr(tx.Users().Delete(ctx, userID), "user")
	})
	if errors.Is(err, repository.ErrReferenced) {
		return newError(ErrConflict, "user is referenced by orders and cannot be deleted")
	}
	if err != nil {
		return err
	}

	if err := s.cache.Delete(ctx, statsCacheKey); err != nil {
		s.logger.Warn("invalidate stats cache failed", zap.Error(err))
	}
	return nil
}
