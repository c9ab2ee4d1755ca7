package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/PLUB2022/plub-server/internal/auth"
	"github.com/PLUB2022/plub-server/pkg/errcode"
	"github.com/PLUB2022/plub-server/pkg/response"
)

// Resolver 把 access token 解析为当前用户
type Resolver interface {
	Resolve(ctx context.Context, accessToken string) (auth.Principal, error)
}

// BearerToken 取 Authorization: Bearer 后的令牌
func BearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if len(h) < 7 || !strings.EqualFold(h[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(h[7:])
}

// Auth 校验 access token 并写入 Principal
func Auth(r Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			response.Unauthorized(c)
			return
		}
		p, err := r.Resolve(c.Request.Context(), token)
		if err != nil {
			response.Error(c, err)
			return
		}
		auth.SetPrincipal(c, p)
		c.Next()
	}
}

// RequireAdmin 须在 Auth 之后使用
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := auth.PrincipalFrom(c)
		if !ok {
			response.Unauthorized(c)
			return
		}
		if !p.IsAdmin() {
			response.Fail(c, errcode.FilterRoleForbidden, "", nil)
			return
		}
		c.Next()
	}
}
