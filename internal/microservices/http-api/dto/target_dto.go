package dto

import (
	"errors"

	"kushfilms/internal/microservices/http-api/models"
)

var ErrTargetMismatch = errors.New("exactly one of movieId or foodId must be set, matching type")

// TargetRef is the {type, movieId|foodId} pair shared by engagement requests.
// targetId is accepted as a type-agnostic alias.
type TargetRef struct {
	Type     models.TargetType `json:"type" form:"type" binding:"required,targettype"`
	MovieID  string            `json:"movieId" form:"movieId" binding:"omitempty,uuid"`
	FoodID   string            `json:"foodId" form:"foodId" binding:"omitempty,uuid"`
	TargetID string            `json:"targetId" form:"targetId" binding:"omitempty,uuid"`
}

// Target resolves the reference, rejecting ambiguous or mismatched ids.
func (r TargetRef) Target() (models.Target, error) {
	switch r.Type {
	case models.TargetMovie:
		if r.FoodID != "" {
			return models.Target{}, ErrTargetMismatch
		}
		if id := firstNonEmpty(r.MovieID, r.TargetID); id != "" {
			return models.MovieTarget(id), nil
		}
	case models.TargetFood:
		if r.MovieID != "" {
			return models.Target{}, ErrTargetMismatch
		}
		if id := firstNonEmpty(r.FoodID, r.TargetID); id != "" {
			return models.FoodTarget(id), nil
		}
	}
	return models.Target{}, ErrTargetMismatch
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
