package middleware

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/sorawit/coursereg/internal/pkg/validation"
)

// RegisterCustomValidators installs the portal's extra binding rules on gin's
// validator engine. Safe to call once at startup.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	// dateymd accepts YYYY-MM-DD dates, the layout every date field uses.
	return v.RegisterValidation("dateymd", func(fl validator.FieldLevel) bool {
		return validation.IsISODate(fl.Field().String())
	})
}
