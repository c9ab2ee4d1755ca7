package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/PLUB2022/plub-server/internal/model"
	"github.com/PLUB2022/plub-server/internal/service"
	"github.com/PLUB2022/plub-server/pkg/response"
)

// CreatePlubbing 创建小组
// @Summary 创建小组
// @Description 创建者成为组长，同时开启招募
// @Tags 小组
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body service.CreatePlubbingRequest true "小组信息"
// @Success 200 {object} response.Response{data=map[string]int64}
// @Failure 400 {object} response.Response
// @Router /api/plubbings [post]
func (h *Handler) CreatePlubbing(c *gin.Context) {
	var req service.CreatePlubbingRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.plubbings.Create(c.Request.Context(), actor(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"plubbingId": id})
}

// GetPlubbing 小组主页
// @Summary 小组主页
// @Tags 小组
// @Security BearerAuth
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Success 200 {object} response.Response{data=service.PlubbingMainView}
// @Failure 403 {object} response.Response
// @Router /api/plubbings/{plubbingId} [get]
func (h *Handler) GetPlubbing(c *gin.Context) {
	pid, ok := pathID(c, "plubbingId")
	if !ok {
		return
	}
	v, err := h.plubbings.GetMain(c.Request.Context(), actor(c), pid)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, v)
}

// UpdatePlubbing 修改小组（组长）
// @Summary 修改小组
// @Tags 小组
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param request body service.UpdatePlubbingRequest true "小组信息"
// @Success 200 {object} response.Response
// @Router /api/plubbings/{plubbingId} [put]
func (h *Handler) UpdatePlubbing(c *gin.Context) {
	pid, ok := pathID(c, "plubbingId")
	if !ok {
		return
	}
	var req service.UpdatePlubbingRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.plubbings.Update(c.Request.Context(), actor(c), pid, req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"plubbingId": pid})
}

// DeletePlubbing 删除小组（组长）
// @Summary 删除小组
// @Tags 小组
// @Security BearerAuth
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Success 200 {object} response.Response
// @Router /api/plubbings/{plubbingId} [delete]
func (h *Handler) DeletePlubbing(c *gin.Context) {
	pid, ok := pathID(c, "plubbingId")
	if !ok {
		return
	}
	if err := h.plubbings.SoftDelete(c.Request.Context(), actor(c), pid); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"plubbingId": pid})
}

// TogglePlubbingEnd 结束 / 重新开启小组
// @Summary 结束或重启小组
// @Tags 小组
// @Security BearerAuth
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Success 200 {object} response.Response
// @Router /api/plubbings/{plubbingId}/status [put]
func (h *Handler) TogglePlubbingEnd(c *gin.Context) {
	pid, ok := pathID(c, "plubbingId")
	if !ok {
		return
	}
	status, err := h.plubbings.ToggleEnd(c.Request.Context(), actor(c), pid)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"plubbingId": pid, "status": status})
}

// LeavePlubbing 退出小组
// @Summary 退出小组
// @Tags 小组
// @Security BearerAuth
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Success 200 {object} response.Response
// @Router /api/plubbings/{plubbingId}/leave [put]
func (h *Handler) LeavePlubbing(c *gin.Context) {
	pid, ok := pathID(c, "plubbingId")
	if !ok {
		return
	}
	if err := h.plubbings.Leave(c.Request.Context(), actor(c), pid); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"plubbingId": pid})
}

// MyPlubbings 我参加的小组
// @Summary 我的小组
// @Tags 小组
// @Security BearerAuth
// @Produce json
// @Param isHost query bool false "只看自己是/不是组长的"
// @Param status query string false "ACTIVE / END"
// @Success 200 {object} response.Response
// @Router /api/plubbings/my [get]
func (h *Handler) MyPlubbings(c *gin.Context) {
	var isHost *bool
	if raw := c.Query("isHost"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			response.BadRequest(c, "invalid isHost")
			return
		}
		isHost = &v
	}
	status := model.MembershipStatus(c.Query("status"))
	if status != "" && status != model.MembershipActive && status != model.MembershipEnd {
		response.BadRequest(c, "invalid status")
		return
	}
	list, err := h.plubbings.ListMine(c.Request.Context(), actor(c), isHost, status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"plubbings": list})
}

// PlubbingsByCategory 按大分类浏览
// @Summary 按分类浏览小组
// @Tags 小组
// @Security BearerAuth
// @Produce json
// @Param categoryId path int true "大分类 ID"
// @Param page query int false "页码，从 0 开始"
// @Param size query int false "每页数量" default(10)
// @Success 200 {object} response.Response
// @Router /api/plubbings/categories/{categoryId} [get]
func (h *Handler) PlubbingsByCategory(c *gin.Context) {
	cid, ok := pathID(c, "categoryId")
	if !ok {
		return
	}
	req, ok := pageRequest(c)
	if !ok {
		return
	}
	page, err := h.plubbings.ListByCategory(c.Request.Context(), actor(c), cid, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

// RecommendPlubbings 推荐小组
// @Summary 推荐
// @Tags 小组
// @Security BearerAuth
// @Produce json
// @Param page query int false "页码，从 0 开始"
// @Param size query int false "每页数量" default(10)
// @Success 200 {object} response.Response
// @Router /api/plubbings/recommendation [get]
func (h *Handler) RecommendPlubbings(c *gin.Context) {
	req, ok := pageRequest(c)
	if !ok {
		return
	}
	page, err := h.plubbings.Recommend(c.Request.Context(), actor(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}
