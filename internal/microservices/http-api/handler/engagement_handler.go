package handler

import (
	"net/http"

	"kushfilms/internal/microservices/http-api/dto"
	"kushfilms/internal/microservices/http-api/middleware"
	"kushfilms/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

// CommentHandler serves comments on movies and foods.
type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("", h.List)
	rg.POST("", authMW, h.Create)
}

// List returns a page of comments for one target, newest first
// GET /api/comments?type=movie&movieId=...&page=1&pageSize=20
func (h *CommentHandler) List(c *gin.Context) {
	var query dto.ListCommentsQuery
	if !bindQuery(c, &query) {
		return
	}
	query.Normalize()
	target, err := query.Target()
	if err != nil {
		respondError(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	comments, total, err := h.commentService.List(ctx, target, query.Page, query.PageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPaginatedCommentsResponse(comments, total, query.Page, query.PageSize))
}

// Create adds a comment as the authenticated user
// POST /api/comments
func (h *CommentHandler) Create(c *gin.Context) {
	var req dto.CreateCommentRequest
	if !bindJSON(c, &req) {
		return
	}
	target, err := req.Target()
	if err != nil {
		respondError(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	comment, err := h.commentService.Add(ctx, middleware.UserID(c), target, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": dto.FromModelToCommentResponse(comment)})
}

// RatingHandler serves the authenticated user's ratings.
type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// RegisterRoutes registers rating routes; the group must already be authenticated.
func (h *RatingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Submit)
	rg.GET("", h.ListMine)
	rg.DELETE("/:id", h.Delete)
}

// Submit creates or replaces the user's rating for a target
// POST /api/ratings
func (h *RatingHandler) Submit(c *gin.Context) {
	var req dto.SubmitRatingRequest
	if !bindJSON(c, &req) {
		return
	}
	target, err := req.Target()
	if err != nil {
		respondError(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	rating, stats, err := h.ratingService.Submit(ctx, middleware.UserID(c), target, req.Rating)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewRatingResponse(rating, stats))
}

// GET /api/ratings
func (h *RatingHandler) ListMine(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	ratings, err := h.ratingService.ListMine(ctx, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ratings": ratings})
}

// Delete removes the user's rating and returns the target's new aggregate
// DELETE /api/ratings/:id
func (h *RatingHandler) Delete(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	id, ok := pathID(c, "id", "rating")
	if !ok {
		return
	}

	stats, err := h.ratingService.Delete(ctx, id, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// FavoriteHandler serves the authenticated user's favorites.
type FavoriteHandler struct {
	favoriteService service.FavoriteService
}

func NewFavoriteHandler(favoriteService service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

func (h *FavoriteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Add)
	rg.GET("", h.List)
	rg.DELETE("/:id", h.Remove)
}

// POST /api/favorites
func (h *FavoriteHandler) Add(c *gin.Context) {
	var req dto.AddFavoriteRequest
	if !bindJSON(c, &req) {
		return
	}
	target, err := req.Target()
	if err != nil {
		respondError(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	favorite, err := h.favoriteService.Add(ctx, middleware.UserID(c), target)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"favorite": favorite})
}

// GET /api/favorites
func (h *FavoriteHandler) List(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	favorites, err := h.favoriteService.List(ctx, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

// DELETE /api/favorites/:id
func (h *FavoriteHandler) Remove(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	id, ok := pathID(c, "id", "favorite")
	if !ok {
		return
	}

	if err := h.favoriteService.Remove(ctx, id, middleware.UserID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "removed from favorites"})
}

// WatchHistoryHandler serves playback progress.
type WatchHistoryHandler struct {
	historyService service.WatchHistoryService
}

func NewWatchHistoryHandler(historyService service.WatchHistoryService) *WatchHistoryHandler {
	return &WatchHistoryHandler{historyService: historyService}
}

func (h *WatchHistoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Record)
	rg.GET("", h.List)
}

// Record overwrites the user's progress on a movie
// POST /api/watch-history
func (h *WatchHistoryHandler) Record(c *gin.Context) {
	var req dto.RecordWatchRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	entry, err := h.historyService.Record(ctx, middleware.UserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": dto.FromModelToWatchHistoryEntry(entry)})
}

// GET /api/watch-history
func (h *WatchHistoryHandler) List(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	entries, err := h.historyService.List(ctx, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": dto.FromModelsToWatchHistory(entries)})
}
