package dto

import (
	"time"

	"kushfilms/internal/microservices/http-api/models"
)

// Data Transfer Objects for comments

// CreateCommentRequest: payload for POST /api/comments
type CreateCommentRequest struct {
	TargetRef
	Content string `json:"content" binding:"required,max=2000"`
}

// ListCommentsQuery: query parameters for GET /api/comments
type ListCommentsQuery struct {
	TargetRef
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"pageSize" binding:"omitempty,min=1,max=100"`
}

// Normalize fills page defaults.
func (q *ListCommentsQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 20
	}
}

type CommentResponse struct {
	ID        string            `json:"id"`
	Type      models.TargetType `json:"type"`
	MovieID   *string           `json:"movieId,omitempty"`
	FoodID    *string           `json:"foodId,omitempty"`
	Content   string            `json:"content"`
	CreatedAt time.Time         `json:"createdAt"`
	User      *AuthorSummary    `json:"user,omitempty"`
}

func FromModelToCommentResponse(comment *models.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		Type:      comment.Type,
		MovieID:   comment.MovieID,
		FoodID:    comment.FoodID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		User:      FromModelToAuthorSummary(comment.User),
	}
}

// PaginatedCommentsResponse: a page of comments, newest first
type PaginatedCommentsResponse struct {
	Comments   []CommentResponse `json:"comments"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalPages int               `json:"totalPages"`
}

func NewPaginatedCommentsResponse(comments []models.Comment, total int64, page, pageSize int) PaginatedCommentsResponse {
	data := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		data = append(data, FromModelToCommentResponse(&comments[i]))
	}
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return PaginatedCommentsResponse{
		Comments:   data,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
