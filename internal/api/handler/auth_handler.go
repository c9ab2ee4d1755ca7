package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/PLUB2022/plub-server/internal/service"
	"github.com/PLUB2022/plub-server/pkg/response"
)

// Login 第三方登录
// @Summary 社交登录
// @Description 已注册返回令牌对，未注册返回 signToken
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body service.LoginRequest true "登录信息"
// @Success 200 {object} response.Response{data=service.LoginResult}
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req service.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// Signup 注册
// @Summary 注册
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body service.SignupRequest true "注册信息"
// @Success 200 {object} response.Response{data=auth.TokenPair}
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/auth/signup [post]
func (h *Handler) Signup(c *gin.Context) {
	var req service.SignupRequest
	if !bindJSON(c, &req) {
		return
	}
	pair, err := h.auth.Signup(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, pair)
}

// AdminLogin 管理员登录
// @Summary 管理员登录
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body service.AdminLoginRequest true "邮箱和密码"
// @Success 200 {object} response.Response{data=auth.TokenPair}
// @Failure 400 {object} response.Response
// @Router /api/auth/admin [post]
func (h *Handler) AdminLogin(c *gin.Context) {
	var req service.AdminLoginRequest
	if !bindJSON(c, &req) {
		return
	}
	pair, err := h.auth.AdminLogin(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, pair)
}

// Reissue 用 refresh token 换新令牌对
// @Summary 续签令牌
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body service.ReissueRequest true "refresh token"
// @Success 200 {object} response.Response{data=auth.TokenPair}
// @Failure 404 {object} response.Response
// @Router /api/auth/reissue [post]
func (h *Handler) Reissue(c *gin.Context) {
	var req service.ReissueRequest
	if !bindJSON(c, &req) {
		return
	}
	pair, err := h.auth.Reissue(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, pair)
}

// Logout 作废 refresh token
// @Summary 登出
// @Tags 认证
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context(), actor(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
