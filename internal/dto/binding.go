package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/goldhub/pricing_admin_app/internal/core/domain"
)

// RegisterCustomValidations installs the request-binding tags the DTOs use on
// gin's validator engine. Call once at startup before any routes are served.
func RegisterCustomValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("txkind", func(fl validator.FieldLevel) bool {
		return domain.TransactionKind(fl.Field().String()).Valid()
	})
}
