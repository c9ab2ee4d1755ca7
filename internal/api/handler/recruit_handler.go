package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/PLUB2022/plub-server/internal/service"
	"github.com/PLUB2022/plub-server/pkg/response"
)

// GetRecruit 招募详情，浏览量 +1
// @Summary 招募详情
// @Tags 招募
// @Security BearerAuth
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Success 200 {object} response.Response{data=service.RecruitView}
// @Router /api/plubbings/{plubbingId}/recruit [get]
func (h *Handler) GetRecruit(c *gin.Context) {
	pid, ok := pathID(c, "plubbingId")
	if !ok {
		return
	}
	v, err := h.recruits.Get(c.Request.Context(), actor(c), pid)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, v)
}

// UpdateRecruit 修改招募帖（组长）
// @Summary 修改招募帖
// @Tags 招募
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param request body service.UpdateRecruitRequest true "招募信息"
// @Success 200 {object} response.Response
// @Router /api/plubbings/{plubbingId}/recruit [put]
func (h *Handler) UpdateRecruit(c *gin.Context) {
	pid, ok := pathID(c, "plubbingId")
	if !ok {
		return
	}
	var req service.UpdateRecruitRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.recruits.Update(c.Request.Context(), actor(c), pid, req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"plubbingId": pid})
}

// UpdateQuestions 覆盖招募问题（组长）
// @Summary 修改招募问题
// @Tags 招募
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param request body service.QuestionsRequest true "问题"
// @Success 200 {object} response.Response
// @Router /api/plubbings/{plubbingId}/recruit/questions [put]
func (h *Handler) UpdateQuestions(c *gin.Context) {
	pid, ok := pathID(c, "plubbingId")
	if !ok {
		return
	}
	var req service.QuestionsRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.recruits.UpdateQuestions(c.Request.Context(), actor(c), pid, req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"plubbingId": pid})
}

// Apply 申请加入
// @Summary 申请加入
// @Tags 招募
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param request body service.ApplyRequest true "答案"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/plubbings/{plubbingId}/recruit/applicants [post]
func (h *Handler) Apply(c *gin.Context) {
	pid, ok := pathID(c, "plubbingId")
	if !ok {
		return
	}
	var req service.ApplyRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.recruits.Apply(c.Request.Context(), actor(c), pid, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"applicantId": id})
}

// CancelApply 撤回申请
// @Summary 撤回申请
// @Tags 招募
// @Security BearerAuth
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Success 200 {object} response.Response
// @Router /api/plubbings/{plubbingId}/recruit/applicants [delete]
func (h *Handler) CancelApply(c *gin.Context) {
	pid, ok := pathID(c, "plubbingId")
	if !ok {
		return
	}
	if err := h.recruits.CancelApply(c.Request.Context(), actor(c), pid); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// ListApplicants 等待中的申请（组长）
// @Summary 申请列表
// @Tags 招募
// @Security BearerAuth
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Success 200 {object} response.Response{data=[]service.ApplicantView}
// @Router /api/plubbings/{plubbingId}/recruit/applicants [get]
func (h *Handler) ListApplicants(c *gin.Context) {
	pid, ok := pathID(c, "plubbingId")
	if !ok {
		return
	}
	list, err := h.recruits.ListApplicants(c.Request.Context(), actor(c), pid)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"appliedAccounts": list})
}

// AcceptApplicant 接受申请
// @Summary 接受申请
// @Tags 招募
// @Security BearerAuth
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param accountId path int true "申请人 ID"
// @Success 200 {object} response.Response
// @Router /api/plubbings/{plubbingId}/recruit/applicants/{accountId}/approval [post]
func (h *Handler) AcceptApplicant(c *gin.Context) {
	ids, ok := pathIDs(c, "plubbingId", "accountId")
	if !ok {
		return
	}
	if err := h.recruits.Accept(c.Request.Context(), actor(c), ids[0], ids[1]); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"accountId": ids[1]})
}

// RejectApplicant 拒绝申请
// @Summary 拒绝申请
// @Tags 招募
// @Security BearerAuth
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param accountId path int true "申请人 ID"
// @Success 200 {object} response.Response
// @Router /api/plubbings/{plubbingId}/recruit/applicants/{accountId}/refuse [post]
func (h *Handler) RejectApplicant(c *gin.Context) {
	ids, ok := pathIDs(c, "plubbingId", "accountId")
	if !ok {
		return
	}
	if err := h.recruits.Reject(c.Request.Context(), actor(c), ids[0], ids[1]); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"accountId": ids[1]})
}

// CloseRecruit 结束招募（组长）
// @Summary 结束招募
// @Tags 招募
// @Security BearerAuth
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Success 200 {object} response.Response
// @Router /api/plubbings/{plubbingId}/recruit/end [put]
func (h *Handler) CloseRecruit(c *gin.Context) {
	pid, ok := pathID(c, "plubbingId")
	if !ok {
		return
	}
	if err := h.recruits.Close(c.Request.Context(), actor(c), pid); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"plubbingId": pid})
}

// ToggleBookmark 收藏 / 取消收藏
// @Summary 收藏招募
// @Tags 招募
// @Security BearerAuth
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Success 200 {object} response.Response{data=service.BookmarkResult}
// @Router /api/plubbings/{plubbingId}/recruit/bookmarks [post]
func (h *Handler) ToggleBookmark(c *gin.Context) {
	pid, ok := pathID(c, "plubbingId")
	if !ok {
		return
	}
	res, err := h.recruits.ToggleBookmark(c.Request.Context(), actor(c), pid)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// MyBookmarks 我的收藏
// @Summary 我的收藏
// @Tags 招募
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/recruits/bookmarks/me [get]
func (h *Handler) MyBookmarks(c *gin.Context) {
	list, err := h.recruits.ListBookmarks(c.Request.Context(), actor(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"plubbings": list})
}

// MyApplications 我等待中的申请
// @Summary 我的申请
// @Tags 招募
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/recruits/applications/me [get]
func (h *Handler) MyApplications(c *gin.Context) {
	list, err := h.recruits.ListMyApplications(c.Request.Context(), actor(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"plubbings": list})
}
