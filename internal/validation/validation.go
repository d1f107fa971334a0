package validation

import (
	"github.com/mohamedahmed66972007/test2025/internal/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register installs the portal's custom binding validators on gin's
// validator engine. Call once before building the router.
func Register() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("subject", func(fl validator.FieldLevel) bool {
		return models.ValidSubject(fl.Field().String())
	})
	_ = v.RegisterValidation("semester", func(fl validator.FieldLevel) bool {
		return models.ValidSemester(fl.Field().String())
	})
}
