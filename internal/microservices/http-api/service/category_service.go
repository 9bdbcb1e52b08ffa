package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"kushfilms/internal/cache"
	"kushfilms/internal/microservices/http-api/dto"
	"kushfilms/internal/microservices/http-api/models"
	"kushfilms/internal/microservices/http-api/repository"

	"go.uber.org/zap"
)

const categoriesCacheKey = "categories:all"

var ErrSlugInUse = errors.New("category slug already exists")

type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, req dto.CreateCategoryRequest) (*models.Category, error)
	Update(ctx context.Context, id string, req dto.UpdateCategoryRequest) (*models.Category, error)
	Delete(ctx context.Context, id string) error
}

type categoryService struct {
	categories repository.CategoryRepository
	cache      cache.Cache
	ttl        time.Duration
	logger     *zap.Logger
}

func NewCategoryService(categories repository.CategoryRepository, c cache.Cache, ttl time.Duration, logger *zap.Logger) CategoryService {
	return &categoryService{categories: categories, cache: c, ttl: ttl, logger: logger}
}

// List returns categories by display order with movie counts, served from cache when warm.
func (s *categoryService) List(ctx context.Context) ([]models.Category, error) {
	var cached []models.Category
	if hit, err := s.cache.Get(ctx, categoriesCacheKey, &cached); err != nil {
		s.logger.Warn("read categories cache failed", zap.Error(err))
	} else if hit {
		return cached, nil
	}

	categories, err := s.categories.ListWithCounts(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, categoriesCacheKey, categories, s.ttl); err != nil {
		s.logger.Warn("write categories cache failed", zap.Error(err))
	}
	return categories, nil
}

func (s *categoryService) Create(ctx context.Context, req dto.CreateCategoryRequest) (*models.Category, error) {
	name := strings.TrimSpace(req.Name)
	slug := Slugify(req.Slug)
	if slug == "" {
		slug = Slugify(name)
	}
	if name == "" || slug == "" {
		return nil, invalidInput("name must contain letters or digits")
	}

	category := &models.Category{
		Name:        name,
		Slug:        slug,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Order:       req.Order,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, slugErr(err)
	}
	s.invalidate(ctx)
	return category, nil
}

func (s *categoryService) Update(ctx context.Context, id string, req dto.UpdateCategoryRequest) (*models.Category, error) {
	fields := req.Fields()
	if name, ok := fields["name"]; ok && name == "" {
		return nil, invalidInput("name cannot be empty")
	}
	if req.Slug != nil {
		slug := Slugify(*req.Slug)
		if slug == "" {
			return nil, invalidInput("slug must contain letters or digits")
		}
		fields["slug"] = slug
	}

	category, err := s.categories.Update(ctx, id, fields)
	if err != nil {
		return nil, lookupErr(slugErr(err), "category")
	}
	s.invalidate(ctx)
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		return lookupErr(err, "category")
	}
	s.invalidate(ctx)
	return nil
}

func (s *categoryService) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, categoriesCacheKey); err != nil {
		s.logger.Warn("invalidate categories cache failed", zap.Error(err))
	}
}

func slugErr(err error) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return &Error{Kind: ErrConflict, Msg: ErrSlugInUse.Error()}
	}
	return err
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases s and joins its alphanumeric runs with hyphens.
func Slugify(s string) string {
	return strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(s), "-"), "-")
}
