package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/PLUB2022/plub-server/internal/service"
	"github.com/PLUB2022/plub-server/pkg/response"
)

// CreateNotice 发布公告（组长）
// @Summary 发布公告
// @Tags 公告
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param request body service.NoticeRequest true "公告内容"
// @Success 200 {object} response.Response{data=map[string]int64}
// @Router /api/plubbings/{plubbingId}/notices [post]
func (h *Handler) CreateNotice(c *gin.Context) {
	pid, ok := pathID(c, "plubbingId")
	if !ok {
		return
	}
	var req service.NoticeRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.notices.Create(c.Request.Context(), actor(c), pid, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"noticeId": id})
}

// ListNotices 公告列表
// @Summary 公告列表
// @Tags 公告
// @Security BearerAuth
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param page query int false "页码，从 0 开始"
// @Param size query int false "每页数量" default(10)
// @Success 200 {object} response.Response
// @Router /api/plubbings/{plubbingId}/notices [get]
func (h *Handler) ListNotices(c *gin.Context) {
	pid, ok := pathID(c, "plubbingId")
	if !ok {
		return
	}
	req, ok := pageRequest(c)
	if !ok {
		return
	}
	page, err := h.notices.List(c.Request.Context(), actor(c), pid, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

// @Summary 公告详情
// @Tags 公告
// @Security BearerAuth
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param noticeId path int true "公告 ID"
// @Success 200 {object} response.Response{data=service.NoticeView}
// @Router /api/plubbings/{plubbingId}/notices/{noticeId} [get]
func (h *Handler) GetNotice(c *gin.Context) {
	ids, ok := pathIDs(c, "plubbingId", "noticeId")
	if !ok {
		return
	}
	v, err := h.notices.Get(c.Request.Context(), actor(c), ids[0], ids[1])
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, v)
}

// @Summary 修改公告
// @Tags 公告
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param noticeId path int true "公告 ID"
// @Param request body service.NoticeRequest true "公告内容"
// @Success 200 {object} response.Response{data=service.NoticeView}
// @Router /api/plubbings/{plubbingId}/notices/{noticeId} [put]
func (h *Handler) UpdateNotice(c *gin.Context) {
	ids, ok := pathIDs(c, "plubbingId", "noticeId")
	if !ok {
		return
	}
	var req service.NoticeRequest
	if !bindJSON(c, &req) {
		return
	}
	v, err := h.notices.Update(c.Request.Context(), actor(c), ids[0], ids[1], req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, v)
}

// @Summary 删除公告
// @Tags 公告
// @Security BearerAuth
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param noticeId path int true "公告 ID"
// @Success 200 {object} response.Response
// @Router /api/plubbings/{plubbingId}/notices/{noticeId} [delete]
func (h *Handler) DeleteNotice(c *gin.Context) {
	ids, ok := pathIDs(c, "plubbingId", "noticeId")
	if !ok {
		return
	}
	if err := h.notices.SoftDelete(c.Request.Context(), actor(c), ids[0], ids[1]); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"noticeId": ids[1]})
}

// @Summary 点赞公告
// @Tags 公告
// @Security BearerAuth
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param noticeId path int true "公告 ID"
// @Success 200 {object} response.Response{data=service.LikeResult}
// @Router /api/plubbings/{plubbingId}/notices/{noticeId}/like [put]
func (h *Handler) LikeNotice(c *gin.Context) {
	ids, ok := pathIDs(c, "plubbingId", "noticeId")
	if !ok {
		return
	}
	res, err := h.notices.Like(c.Request.Context(), actor(c), ids[0], ids[1])
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// @Summary 公告评论
// @Tags 公告
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param noticeId path int true "公告 ID"
// @Param request body service.NoticeCommentRequest true "评论内容"
// @Success 200 {object} response.Response{data=service.NoticeCommentView}
// @Router /api/plubbings/{plubbingId}/notices/{noticeId}/comments [post]
func (h *Handler) CreateNoticeComment(c *gin.Context) {
	ids, ok := pathIDs(c, "plubbingId", "noticeId")
	if !ok {
		return
	}
	var req service.NoticeCommentRequest
	if !bindJSON(c, &req) {
		return
	}
	v, err := h.notices.CreateComment(c.Request.Context(), actor(c), ids[0], ids[1], req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, v)
}

// @Summary 公告评论列表
// @Tags 公告
// @Security BearerAuth
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param noticeId path int true "公告 ID"
// @Param cursorId query int false "上一页最后一条评论 ID"
// @Param size query int false "每页数量" default(10)
// @Success 200 {object} response.Response
// @Router /api/plubbings/{plubbingId}/notices/{noticeId}/comments [get]
func (h *Handler) ListNoticeComments(c *gin.Context) {
	ids, ok := pathIDs(c, "plubbingId", "noticeId")
	if !ok {
		return
	}
	req, ok := pageRequest(c)
	if !ok {
		return
	}
	page, err := h.notices.ListComments(c.Request.Context(), actor(c), ids[0], ids[1], req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

// @Summary 修改公告评论
// @Tags 公告
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param noticeId path int true "公告 ID"
// @Param commentId path int true "评论 ID"
// @Param request body service.NoticeCommentRequest true "评论内容"
// @Success 200 {object} response.Response{data=service.NoticeCommentView}
// @Router /api/plubbings/{plubbingId}/notices/{noticeId}/comments/{commentId} [put]
func (h *Handler) UpdateNoticeComment(c *gin.Context) {
	ids, ok := pathIDs(c, "plubbingId", "noticeId", "commentId")
	if !ok {
		return
	}
	var req service.NoticeCommentRequest
	if !bindJSON(c, &req) {
		return
	}
	v, err := h.notices.UpdateComment(c.Request.Context(), actor(c), ids[0], ids[1], ids[2], req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, v)
}

// @Summary 删除公告评论
// @Tags 公告
// @Security BearerAuth
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param noticeId path int true "公告 ID"
// @Param commentId path int true "评论 ID"
// @Success 200 {object} response.Response
// @Router /api/plubbings/{plubbingId}/notices/{noticeId}/comments/{commentId} [delete]
func (h *Handler) DeleteNoticeComment(c *gin.Context) {
	ids, ok := pathIDs(c, "plubbingId", "noticeId", "commentId")
	if !ok {
		return
	}
	if err := h.notices.DeleteComment(c.Request.Context(), actor(c), ids[0], ids[1], ids[2]); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"commentId": ids[2]})
}
