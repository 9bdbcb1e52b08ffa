package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"kushfilms/internal/microservices/http-api/models"
	"kushfilms/internal/microservices/http-api/repository"
)

type CommentService interface {
	Add(ctx context.Context, userID string, target models.Target, content string) (*models.Comment, error)
	List(ctx context.Context, target models.Target, page, pageSize int) ([]models.Comment, int64, error)
}

type commentService struct {
	store repository.Store
}

func NewCommentService(store repository.Store) CommentService {
	return &commentService{store: store}
}

// Add: stores a new comment; a user may comment on the same target any number of times.
func (s *commentService) Add(ctx context.Context, userID string, target models.Target, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, invalidInput("comment cannot be empty")
	}
	if utf8.RuneCountInString(content) > models.MaxCommentLength {
		return nil, invalidInput("comment cannot exceed %d characters", models.MaxCommentLength)
	}
	if err := ensureTarget(ctx, s.store, target); err != nil {
		return nil, err
	}

	comment := models.NewComment(userID, target, content)
	if err := s.store.Comments().Create(ctx, comment); err != nil {
		return nil, err
	}

	// reload with the author for the response
	saved, err := s.store.Comments().FindByID(ctx, comment.ID)
	if err != nil {
		return comment, nil
	}
	return saved, nil
}

func (s *commentService) List(ctx context.Context, target models.Target, page, pageSize int) ([]models.Comment, int64, error) {
	return s.store.Comments().ListByTarget(ctx, target, page, pageSize)
}
