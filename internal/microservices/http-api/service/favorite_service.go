package service

import (
	"context"
	"errors"

	"kushfilms/internal/microservices/http-api/models"
	"kushfilms/internal/microservices/http-api/repository"
)

var ErrAlreadyFavorited = errors.New("already in favorites")

type FavoriteService interface {
	Add(ctx context.Context, userID string, target models.Target) (*models.Favorite, error)
	Remove(ctx context.Context, favoriteID, userID string) error
	List(ctx context.Context, userID string) ([]models.Favorite, error)
}

type favoriteService struct {
	store repository.Store
}

func NewFavoriteService(store repository.Store) FavoriteService {
	return &favoriteService{store: store}
}

func (s *favoriteService) Add(ctx context.Context, userID string, target models.Target) (*models.Favorite, error) {
	if err := ensureTarget(ctx, s.store, target); err != nil {
		return nil, err
	}

	exists, err := s.store.Favorites().Exists(ctx, userID, target)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &Error{Kind: ErrConflict, Msg: ErrAlreadyFavorited.Error()}
	}

	favorite := models.NewFavorite(userID, target)
	if err := s.store.Favorites().Create(ctx, favorite); err != nil {
		// a concurrent add won the unique constraint
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, &Error{Kind: ErrConflict, Msg: ErrAlreadyFavorited.Error()}
		}
		return nil, err
	}
	return favorite, nil
}

func (s *favoriteService) Remove(ctx context.Context, favoriteID, userID string) error {
	favorite, err := s.store.Favorites().FindByID(ctx, favoriteID)
	if err != nil {
		return lookupErr(err, "favorite")
	}
	if favorite.UserID != userID {
		return newError(ErrForbidden, "cannot remove another user's favorite")
	}
	return lookupErr(s.store.Favorites().Delete(ctx, favorite.ID), "favorite")
}

func (s *favoriteService) List(ctx context.Context, userID string) ([]models.Favorite, error) {
	return s.store.Favorites().ListByUser(ctx, userID)
}
