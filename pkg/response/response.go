package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/PLUB2022/plub-server/pkg/errcode"
	"github.com/PLUB2022/plub-server/pkg/logger"
)

// Response 统一响应体
type Response struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       any    `json:"data"`
}

// Success 200 成功
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{StatusCode: http.StatusOK, Message: "success", Data: data})
}

// Fail 按错误种类返回
func Fail(c *gin.Context, kind errcode.Kind, message string, data any) {
	if message == "" {
		message = kind.Message()
	}
	c.AbortWithStatusJSON(kind.HTTPStatus(), Response{StatusCode: kind.StatusCode(), Message: message, Data: data})
}

// BadRequest 参数错误
func BadRequest(c *gin.Context, message string) {
	Fail(c, errcode.InvalidInputValue, message, nil)
}

// Unauthorized 未认证
func Unauthorized(c *gin.Context) {
	Fail(c, errcode.FilterAccessDenied, "", nil)
}

// InternalError 服务端错误，记录日志但不向客户端暴露细节
func InternalError(c *gin.Context, err error) {
	logger.Error("internal error",
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Error(err),
	)
	_ = c.Error(err)
	Fail(c, errcode.InternalServerError, "", nil)
}

// Error 将任意错误映射为统一响应：
// 领域错误 -> 对应状态码；校验错误 -> INVALID_INPUT_VALUE；其它 -> 500
func Error(c *gin.Context, err error) {
	var de *errcode.Error
	if errors.As(err, &de) {
		logger.Warn("domain error",
			zap.String("kind", de.Kind.String()),
			zap.Int("statusCode", de.Kind.StatusCode()),
			zap.String("path", c.Request.URL.Path),
			zap.String("detail", de.Detail),
		)
		Fail(c, de.Kind, "", de.Data)
		return
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		BadRequest(c, ve.Error())
		return
	}
	InternalError(c, err)
}
