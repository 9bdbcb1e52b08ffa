package repository

import (
	"context"
	"fmt"
	"strings"

	"kushfilms/internal/microservices/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	// MaxListLimit caps every catalog list query.
	MaxListLimit = 50
	// detailCommentLimit is how many recent comments a movie detail carries.
	detailCommentLimit = 20
)

type MovieRepository interface {
	List(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error)
	FindByID(ctx context.Context, id string) (*models.Movie, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, movie *models.Movie) error
	Update(ctx context.Context, id string, fields map[string]any, categories *[]models.Category) (*models.Movie, error)
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error
	LockForUpdate(ctx context.Context, id string) error
	UpdateRatingStats(ctx context.Context, id string, stats models.RatingStats) error
}

type movieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &movieRepository{db: db}
}

// List returns movies newest first. Search is a case-insensitive substring match on title.
func (r *movieRepository) List(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Movie{}).
		Preload("Categories", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") })

	if search := strings.TrimSpace(filter.Search); search != "" {
		q = q.Where("title ILIKE ?", "%"+escapeLike(search)+"%")
	}
	if filter.CategorySlug != "" {
		q = q.Where(`EXISTS (
			SELECT 1 FROM movie_categories mc
			JOIN categories c ON c.id = mc.category_id
			WHERE mc.movie_id = movies.id AND c.slug = ?)`, filter.CategorySlug)
	}
	if filter.Featured != nil {
		q = q.Where("is_featured = ?", *filter.Featured)
	}

	var movies []models.Movie
	if err := q.Order("created_at DESC").Limit(clampLimit(filter.Limit)).Find(&movies).Error; err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return movies, nil
}

// FindByID loads a movie with its categories and most recent comments.
func (r *movieRepository) FindByID(ctx context.Context, id string) (*models.Movie, error) {
	var movie models.Movie
	err := r.db.WithContext(ctx).
		Preload("Categories", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC").Limit(detailCommentLimit)
		}).
		Preload("Comments.User").
		First(&movie, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Movie{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts the movie and its category links; categories must already exist.
func (r *movieRepository) Create(ctx context.Context, movie *models.Movie) error {
	return translate("create movie", r.db.WithContext(ctx).Omit("Categories.*").Create(movie).Error)
}

// Update applies a partial update. A non-nil categories replaces the association set.
func (r *movieRepository) Update(ctx context.Context, id string, fields map[string]any, categories *[]models.Category) (*models.Movie, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		movie := models.Movie{ID: id}
		if err := tx.Select("id").First(&movie, "id = ?", id).Error; err != nil {
			return err
		}
		if len(fields) > 0 {
			if err := tx.Model(&movie).Updates(fields).Error; err != nil {
				return translate("update movie", err)
			}
		}
		if categories != nil {
			if err := tx.Model(&movie).Association("Categories").Replace(*categories); err != nil {
				return fmt.Errorf("replace movie categories: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *movieRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Movie{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete movie: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *movieRepository) IncrementViews(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&models.Movie{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

// LockForUpdate takes a row lock on the movie for the rest of the transaction.
func (r *movieRepository) LockForUpdate(ctx context.Context, id string) error {
	var movie models.Movie
	return r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		First(&movie, "id = ?", id).Error
}

func (r *movieRepository) UpdateRatingStats(ctx context.Context, id string, stats models.RatingStats) error {
	return r.db.WithContext(ctx).
		Model(&models.Movie{}).
		Where("id = ?", id).
		UpdateColumns(map[string]any{
			"average_rating": stats.Average,
			"rating_count":   stats.Count,
		}).Error
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// escapeLike neutralises LIKE wildcards in user input.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
