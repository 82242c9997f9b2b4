package handlers

import (
	"fmt"

	"partnerapi/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators 向 gin 的驗證引擎註冊列舉驗證
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	if err := v.RegisterValidation("spotstatus", func(fl validator.FieldLevel) bool {
		return models.SpotStatus(fl.Field().String()).Valid()
	}); err != nil {
		return err
	}
	return v.RegisterValidation("ticketkind", func(fl validator.FieldLevel) bool {
		return models.TicketKind(fl.Field().String()).Valid()
	})
}
