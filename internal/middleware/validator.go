package middleware

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/PLUB2022/plub-server/internal/service"
)

// RegisterValidators 向 gin 的校验引擎注册自定义 tag
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("nickname", func(fl validator.FieldLevel) bool {
		return service.ValidNickname(fl.Field().String())
	})
}
