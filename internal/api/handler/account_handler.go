package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/PLUB2022/plub-server/internal/middleware"
	"github.com/PLUB2022/plub-server/internal/service"
	"github.com/PLUB2022/plub-server/pkg/response"
)

// Me 我的信息
// @Summary 我的信息
// @Tags 账号
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response{data=service.AccountView}
// @Router /api/accounts/me [get]
func (h *Handler) Me(c *gin.Context) {
	v, err := h.accounts.Me(c.Request.Context(), actor(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, v)
}

// Profile 按昵称查看他人资料
// @Summary 查看资料
// @Tags 账号
// @Security BearerAuth
// @Produce json
// @Param nickname path string true "昵称"
// @Success 200 {object} response.Response{data=service.ProfileView}
// @Failure 404 {object} response.Response
// @Router /api/accounts/profile/{nickname} [get]
func (h *Handler) Profile(c *gin.Context) {
	v, err := h.accounts.GetByNickname(c.Request.Context(), c.Param("nickname"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, v)
}

// CheckNickname 昵称是否可用
// @Summary 检查昵称
// @Tags 账号
// @Produce json
// @Param nickname path string true "昵称"
// @Success 200 {object} response.Response{data=map[string]bool}
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/accounts/check/nickname/{nickname} [get]
func (h *Handler) CheckNickname(c *gin.Context) {
	ok, err := h.accounts.CheckNickname(c.Request.Context(), c.Param("nickname"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"available": ok})
}

// UpdateProfile 修改资料
// @Summary 修改资料
// @Tags 账号
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body service.ProfileRequest true "资料"
// @Success 200 {object} response.Response{data=service.AccountView}
// @Router /api/accounts/me [put]
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req service.ProfileRequest
	if !bindJSON(c, &req) {
		return
	}
	v, err := h.accounts.UpdateProfile(c.Request.Context(), actor(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, v)
}

// Interests 我的兴趣分类
// @Summary 兴趣分类
// @Tags 账号
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response{data=service.InterestView}
// @Router /api/accounts/me/interest [get]
func (h *Handler) Interests(c *gin.Context) {
	v, err := h.accounts.Interests(c.Request.Context(), actor(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, v)
}

// UpdateInterests 覆盖兴趣分类
// @Summary 修改兴趣分类
// @Tags 账号
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body service.InterestRequest true "子分类 ID"
// @Success 200 {object} response.Response{data=service.InterestView}
// @Router /api/accounts/me/interest [post]
func (h *Handler) UpdateInterests(c *gin.Context) {
	var req service.InterestRequest
	if !bindJSON(c, &req) {
		return
	}
	v, err := h.accounts.UpdateInterests(c.Request.Context(), actor(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, v)
}

// Revoke 注销账号
// @Summary 注销
// @Description 解除第三方授权并注销账号，之后可用同一社交账号重新注册。仍是活跃小组组长时返回 HOST_CANNOT_LEAVE 及小组 id
// @Tags 账号
// @Security BearerAuth
// @Produce json
// @Param X-Social-Token header string false "第三方 access token"
// @Success 200 {object} response.Response
// @Router /api/accounts/me/revoke [delete]
func (h *Handler) Revoke(c *gin.Context) {
	token := c.GetHeader("X-Social-Token")
	if token == "" {
		token = middleware.BearerToken(c)
	}
	if err := h.accounts.Revoke(c.Request.Context(), actor(c), token); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
