package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/PLUB2022/plub-server/internal/model"
)

const principalKey = "auth.principal"

// Principal 当前请求的登录用户
type Principal struct {
	AccountID int64
	Email     string
	Role      model.Role
}

func (p Principal) IsAdmin() bool { return p.Role == model.RoleAdmin }

func SetPrincipal(c *gin.Context, p Principal) { c.Set(principalKey, p) }

// PrincipalFrom 未认证时 ok 为 false
func PrincipalFrom(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}
