package dto

import (
	"kushfilms/internal/microservices/http-api/models"

	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the domain tags used in binding rules.
func RegisterValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("targettype", func(fl validator.FieldLevel) bool {
		return models.TargetType(fl.Field().String()).Valid()
	}); err != nil {
		return err
	}
	return v.RegisterValidation("orderstatus", func(fl validator.FieldLevel) bool {
		return models.OrderStatus(fl.Field().String()).Valid()
	})
}
