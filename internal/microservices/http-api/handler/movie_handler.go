package handler

import (
	"net/http"

	"kushfilms/internal/microservices/http-api/dto"
	"kushfilms/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type MovieHandler struct {
	movieService service.MovieService
}

func NewMovieHandler(movieService service.MovieService) *MovieHandler {
	return &MovieHandler{movieService: movieService}
}

// RegisterRoutes registers public movie routes
func (h *MovieHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
}

// RegisterAdminRoutes registers movie management routes; the group must already require ADMIN.
func (h *MovieHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// List returns movies, newest first
// GET /api/movies?category=&search=&featured=
func (h *MovieHandler) List(c *gin.Context) {
	var query dto.ListMoviesQuery
	if !bindQuery(c, &query) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	movies, err := h.movieService.List(ctx, query.Filter())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MovieListResponse{Movies: movies, Total: len(movies)})
}

// Get returns one movie with categories and recent comments
// GET /api/movies/:id
func (h *MovieHandler) Get(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	id, ok := pathID(c, "id", "movie")
	if !ok {
		return
	}

	movie, err := h.movieService.Get(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"movie": dto.FromModelToMovieDetail(movie)})
}

// Create adds a movie
// POST /api/admin/movies
func (h *MovieHandler) Create(c *gin.Context) {
	var req dto.CreateMovieRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	movie, err := h.movieService.Create(ctx, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"movie": movie})
}

// Update changes the fields present in the body
// PUT /api/admin/movies/:id
func (h *MovieHandler) Update(c *gin.Context) {
	var req dto.UpdateMovieRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	id, ok := pathID(c, "id", "movie")
	if !ok {
		return
	}

	movie, err := h.movieService.Update(ctx, id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"movie": movie})
}

// Delete removes a movie and everything attached to it
// DELETE /api/admin/movies/:id
func (h *MovieHandler) Delete(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	id, ok := pathID(c, "id", "movie")
	if !ok {
		return
	}

	if err := h.movieService.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "movie deleted"})
}
