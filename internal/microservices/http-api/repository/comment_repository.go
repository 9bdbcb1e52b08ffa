package repository

import (
	"context"
	"fmt"

	"kushfilms/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	FindByID(ctx context.Context, id string) (*models.Comment, error)
	ListByTarget(ctx context.Context, target models.Target, page, pageSize int) ([]models.Comment, int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

// FindByID loads a comment with its author.
func (r *commentRepository) FindByID(ctx context.Context, id string) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).Preload("User").First(&comment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByTarget retrieves comments for an item, newest first, with pagination
func (r *commentRepository) ListByTarget(ctx context.Context, target models.Target, page, pageSize int) ([]models.Comment, int64, error) {
	var comments []models.Comment
	var total int64

	where := target.Column() + " = ?"

	// Count total comments
	if err := r.db.WithContext(ctx).Model(&models.Comment{}).Where(where, target.ID).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count comments: %w", err)
	}

	// Get paginated comments
	offset := (page - 1) * pageSize
	err := r.db.WithContext(ctx).
		Where(where, target.ID).
		Preload("User").
		Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&comments).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list comments: %w", err)
	}
	return comments, total, nil
}
