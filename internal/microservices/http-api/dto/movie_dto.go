package dto

import (
	"strings"

	"kushfilms/internal/microservices/http-api/models"

	"github.com/lib/pq"
)

// ListMoviesQuery binds GET /api/movies query parameters.
type ListMoviesQuery struct {
	Category string `form:"category"`
	Search   string `form:"search"`
	Featured *bool  `form:"featured"`
}

func (q ListMoviesQuery) Filter() models.MovieFilter {
	return models.MovieFilter{
		CategorySlug: strings.TrimSpace(q.Category),
		Search:       q.Search,
		Featured:     q.Featured,
	}
}

type CreateMovieRequest struct {
	Title        string   `json:"title" binding:"required,max=200"`
	Description  string   `json:"description" binding:"max=5000"`
	ThumbnailURL string   `json:"thumbnailUrl" binding:"omitempty,url"`
	VideoURL     string   `json:"videoUrl" binding:"omitempty,url"`
	Duration     int      `json:"duration" binding:"min=0"`
	ReleaseYear  *int     `json:"releaseYear" binding:"omitempty,min=1888,max=2100"`
	Director     string   `json:"director" binding:"max=200"`
	Cast         []string `json:"cast" binding:"max=50,dive,max=100"`
	Language     string   `json:"language" binding:"max=50"`
	IsFeatured   bool     `json:"isFeatured"`
	CategoryIDs  []string `json:"categoryIds" binding:"omitempty,dive,uuid"`
}

func (r CreateMovieRequest) ToModel() *models.Movie {
	language := r.Language
	if language == "" {
		language = "English"
	}
	cast := r.Cast
	if cast == nil {
		cast = []string{}
	}
	return &models.Movie{
		Title:        strings.TrimSpace(r.Title),
		Description:  r.Description,
		ThumbnailURL: r.ThumbnailURL,
		VideoURL:     r.VideoURL,
		Duration:     r.Duration,
		ReleaseYear:  r.ReleaseYear,
		Director:     r.Director,
		Cast:         pq.StringArray(cast),
		Language:     language,
		IsFeatured:   r.IsFeatured,
	}
}

// UpdateMovieRequest is a partial update; only non-nil fields change.
type UpdateMovieRequest struct {
	Title        *string   `json:"title" binding:"omitempty,min=1,max=200"`
	Description  *string   `json:"description" binding:"omitempty,max=5000"`
	ThumbnailURL *string   `json:"thumbnailUrl" binding:"omitempty,url"`
	VideoURL     *string   `json:"videoUrl" binding:"omitempty,url"`
	Duration     *int      `json:"duration" binding:"omitempty,min=0"`
	ReleaseYear  *int      `json:"releaseYear" binding:"omitempty,min=1888,max=2100"`
	Director     *string   `json:"director" binding:"omitempty,max=200"`
	Cast         *[]string `json:"cast" binding:"omitempty,max=50"`
	Language     *string   `json:"language" binding:"omitempty,max=50"`
	IsFeatured   *bool     `json:"isFeatured"`
	CategoryIDs  *[]string `json:"categoryIds"`
}

// Fields returns the column updates carried by the request.
func (r UpdateMovieRequest) Fields() map[string]any {
	fields := map[string]any{}
	if r.Title != nil {
		fields["title"] = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.ThumbnailURL != nil {
		fields["thumbnail_url"] = *r.ThumbnailURL
	}
	if r.VideoURL != nil {
		fields["video_url"] = *r.VideoURL
	}
	if r.Duration != nil {
		fields["duration"] = *r.Duration
	}
	if r.ReleaseYear != nil {
		fields["release_year"] = *r.ReleaseYear
	}
	if r.Director != nil {
		fields["director"] = *r.Director
	}
	if r.Cast != nil {
		fields["cast"] = pq.StringArray(*r.Cast)
	}
	if r.Language != nil {
		fields["language"] = *r.Language
	}
	if r.IsFeatured != nil {
		fields["is_featured"] = *r.IsFeatured
	}
	return fields
}

type MovieListResponse struct {
	Movies []models.Movie `json:"movies"`
	Total  int            `json:"total"`
}

// MovieDetailResponse is a movie with its categories and recent comments.
type MovieDetailResponse struct {
	models.Movie
	Comments []CommentResponse `json:"comments"`
}

func FromModelToMovieDetail(movie *models.Movie) MovieDetailResponse {
	comments := make([]CommentResponse, 0, len(movie.Comments))
	for i := range movie.Comments {
		comments = append(comments, FromModelToCommentResponse(&movie.Comments[i]))
	}
	detail := MovieDetailResponse{Movie: *movie, Comments: comments}
	detail.Movie.Comments = nil
	return detail
}
