package service

import (
	"context"
	"time"

	"kushfilms/internal/cache"
	"kushfilms/internal/microservices/http-api/dto"
	"kushfilms/internal/microservices/http-api/models"
	"kushfilms/internal/microservices/http-api/repository"

	"go.uber.org/zap"
)

const viewCountTimeout = 3 * time.Second

type MovieService interface {
	List(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error)
	// Get loads a movie with categories and recent comments and counts a view.
	Get(ctx context.Context, id string) (*models.Movie, error)
	Create(ctx context.Context, req dto.CreateMovieRequest) (*models.Movie, error)
	Update(ctx context.Context, id string, req dto.UpdateMovieRequest) (*models.Movie, error)
	Delete(ctx context.Context, id string) error
}

type movieService struct {
	store  repository.Store
	cache  cache.Cache
	logger *zap.Logger
}

func NewMovieService(store repository.Store, c cache.Cache, logger *zap.Logger) MovieService {
	return &movieService{store: store, cache: c, logger: logger}
}

func (s *movieService) List(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error) {
	return s.store.Movies().List(ctx, filter)
}

func (s *movieService) Get(ctx context.Context, id string) (*models.Movie, error) {
	movie, err := s.store.Movies().FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "movie")
	}

	// the view count must not slow down or fail the read
	go func() {
		viewCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), viewCountTimeout)
		defer cancel()
		if err := s.store.Movies().IncrementViews(viewCtx, id); err != nil {
			s.logger.Warn("increment view count failed", zap.String("movie_id", id), zap.Error(err))
		}
	}()

	return movie, nil
}

func (s *movieService) Create(ctx context.Context, req dto.CreateMovieRequest) (*models.Movie, error) {
	movie := req.ToModel()
	if movie.Title == "" {
		return nil, invalidInput("title is required")
	}

	if len(req.CategoryIDs) > 0 {
		categories, err := s.categories(ctx, req.CategoryIDs)
		if err != nil {
			return nil, err
		}
		movie.Categories = categories
	}

	if err := s.store.Movies().Create(ctx, movie); err != nil {
		return nil, err
	}
	s.invalidateCategories(ctx)
	return s.store.Movies().FindByID(ctx, movie.ID)
}

func (s *movieService) Update(ctx context.Context, id string, req dto.UpdateMovieRequest) (*models.Movie, error) {
	fields := req.Fields()
	if title, ok := fields["title"]; ok && title == "" {
		return nil, invalidInput("title cannot be empty")
	}

	var categories *[]models.Category
	if req.CategoryIDs != nil {
		found, err := s.categories(ctx, *req.CategoryIDs)
		if err != nil {
			return nil, err
		}
		categories = &found
	}

	movie, err := s.store.Movies().Update(ctx, id, fields, categories)
	if err != nil {
		return nil, lookupErr(err, "movie")
	}
	if categories != nil {
		s.invalidateCategories(ctx)
	}
	return movie, nil
}

func (s *movieService) Delete(ctx context.Context, id string) error {
	if err := s.store.Movies().Delete(ctx, id); err != nil {
		return lookupErr(err, "movie")
	}
	s.invalidateCategories(ctx)
	return nil
}

// categories resolves ids, rejecting any that do not exist.
func (s *movieService) categories(ctx context.Context, ids []string) ([]models.Category, error) {
	ids = dedupe(ids)
	found, err := s.store.Categories().FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(found) != len(ids) {
		return nil, invalidInput("unknown category id")
	}
	return found, nil
}

func (s *movieService) invalidateCategories(ctx context.Context) {
	if err := s.cache.Delete(ctx, categoriesCacheKey); err != nil {
		s.logger.Warn("invalidate categories cache failed", zap.Error(err))
	}
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
