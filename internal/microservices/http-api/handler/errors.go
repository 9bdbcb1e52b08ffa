package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"kushfilms/internal/microservices/http-api/dto"
	"kushfilms/internal/microservices/http-api/repository"
	"kushfilms/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultRequestTimeout = 5 * time.Second
	timeoutKey            = "requestTimeout"
)

// requestContext derives the per-request deadline for service calls.
func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	timeout := c.GetDuration(timeoutKey)
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return context.WithTimeout(c.Request.Context(), timeout)
}

// RequestTimeout sets the deadline requestContext applies.
func RequestTimeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(timeoutKey, d)
		c.Next()
	}
}

var errorStatus = []struct {
	kind   error
	status int
}{
	{service.ErrInvalidInput, http.StatusBadRequest},
	{dto.ErrTargetMismatch, http.StatusBadRequest},
	{service.ErrUnauthorized, http.StatusUnauthorized},
	{service.ErrForbidden, http.StatusForbidden},
	{service.ErrNotFound, http.StatusNotFound},
	{repository.ErrNotFound, http.StatusNotFound},
	{service.ErrConflict, http.StatusConflict},
	{repository.ErrDuplicate, http.StatusConflict},
	{repository.ErrReferenced, http.StatusConflict},
	{service.ErrInvalidTransition, http.StatusConflict},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
}

// respondError writes {"error": msg} with the status for err's kind.
// Unclassified errors become a 500 and are attached to the context for the request logger.
func respondError(c *gin.Context, err error) {
	for _, e := range errorStatus {
		if !errors.Is(err, e.kind) {
			continue
		}
		msg := e.kind.Error()
		var svcErr *service.Error
		if errors.As(err, &svcErr) {
			msg = svcErr.Msg
		}
		if e.status == http.StatusGatewayTimeout {
			_ = c.Error(err)
			msg = "request timed out"
		}
		c.JSON(e.status, gin.H{"error": msg})
		return
	}

	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// pathID reads a uuid path parameter. Anything else cannot name a row, so it is answered with a 404.
func pathID(c *gin.Context, name, what string) (string, bool) {
	id := c.Param(name)
	// uuid.Parse also takes urn and braced forms that Postgres rejects
	if _, err := uuid.Parse(id); err != nil || len(id) != 36 {
		c.JSON(http.StatusNotFound, gin.H{"error": what + " not found"})
		return "", false
	}
	return id, true
}

// bindJSON binds and validates the body, writing a 400 on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}
