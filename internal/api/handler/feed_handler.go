package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/PLUB2022/plub-server/internal/model"
	"github.com/PLUB2022/plub-server/internal/service"
	"github.com/PLUB2022/plub-server/pkg/response"
)

type contentRequest struct {
	Content string `json:"content" binding:"required,max=1000"`
}

// commentReportRequest 举报对象由路径决定
type commentReportRequest struct {
	ReportType model.ReportReason `json:"reportType" binding:"required"`
	Content    string             `json:"content" binding:"max=500"`
}

// CreateFeed 发布动态
// @Summary 发布动态
// @Tags 动态
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param request body service.FeedRequest true "动态内容"
// @Success 200 {object} response.Response{data=map[string]int64}
// @Failure 403 {object} response.Response
// @Router /api/plubbings/{plubbingId}/feeds [post]
func (h *Handler) CreateFeed(c *gin.Context) {
	pid, ok := pathID(c, "plubbingId")
	if !ok {
		return
	}
	var req service.FeedRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.feeds.CreateFeed(c.Request.Context(), actor(c), pid, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"feedId": id})
}

// ListFeeds 动态列表（不含置顶）
// @Summary 动态列表
// @Tags 动态
// @Security BearerAuth
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param cursorId query int false "上一页最后一条动态 ID"
// @Param size query int false "每页数量" default(10)
// @Success 200 {object} response.Response
// @Router /api/plubbings/{plubbingId}/feeds [get]
func (h *Handler) ListFeeds(c *gin.Context) {
	pid, ok := pathID(c, "plubbingId")
	if !ok {
		return
	}
	req, ok := pageRequest(c)
	if !ok {
		return
	}
	page, err := h.feeds.ListFeeds(c.Request.Context(), actor(c), pid, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

// ListPinnedFeeds 置顶动态
// @Summary 置顶动态
// @Tags 动态
// @Security BearerAuth
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Success 200 {object} response.Response
// @Router /api/plubbings/{plubbingId}/feeds/pins [get]
func (h *Handler) ListPinnedFeeds(c *gin.Context) {
	pid, ok := pathID(c, "plubbingId")
	if !ok {
		return
	}
	list, err := h.feeds.ListPinnedFeeds(c.Request.Context(), actor(c), pid)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"pinedFeedList": list})
}

// ListMyFeeds 我在该小组的动态
// @Summary 我的动态
// @Tags 动态
// @Security BearerAuth
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param cursorId query int false "上一页最后一条动态 ID"
// @Param size query int false "每页数量" default(10)
// @Success 200 {object} response.Response
// @Router /api/plubbings/{plubbingId}/feeds/my [get]
func (h *Handler) ListMyFeeds(c *gin.Context) {
	pid, ok := pathID(c, "plubbingId")
	if !ok {
		return
	}
	req, ok := pageRequest(c)
	if !ok {
		return
	}
	page, err := h.feeds.ListMyFeeds(c.Request.Context(), actor(c), pid, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

// GetFeed 动态详情
// @Summary 动态详情
// @Tags 动态
// @Security BearerAuth
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param feedId path int true "动态 ID"
// @Success 200 {object} response.Response{data=service.FeedCard}
// @Failure 404 {object} response.Response
// @Router /api/plubbings/{plubbingId}/feeds/{feedId} [get]
func (h *Handler) GetFeed(c *gin.Context) {
	ids, ok := pathIDs(c, "plubbingId", "feedId")
	if !ok {
		return
	}
	v, err := h.feeds.GetFeed(c.Request.Context(), actor(c), ids[0], ids[1])
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, v)
}

// UpdateFeed 修改动态（作者）
// @Summary 修改动态
// @Tags 动态
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param feedId path int true "动态 ID"
// @Param request body service.FeedRequest true "动态内容"
// @Success 200 {object} response.Response{data=service.FeedCard}
// @Failure 400 {object} response.Response
// @Router /api/plubbings/{plubbingId}/feeds/{feedId} [put]
func (h *Handler) UpdateFeed(c *gin.Context) {
	ids, ok := pathIDs(c, "plubbingId", "feedId")
	if !ok {
		return
	}
	var req service.FeedRequest
	if !bindJSON(c, &req) {
		return
	}
	v, err := h.feeds.UpdateFeed(c.Request.Context(), actor(c), ids[0], ids[1], req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, v)
}

// DeleteFeed 删除动态（作者或组长）
// @Summary 删除动态
// @Tags 动态
// @Security BearerAuth
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param feedId path int true "动态 ID"
// @Success 200 {object} response.Response
// @Router /api/plubbings/{plubbingId}/feeds/{feedId} [delete]
func (h *Handler) DeleteFeed(c *gin.Context) {
	ids, ok := pathIDs(c, "plubbingId", "feedId")
	if !ok {
		return
	}
	if err := h.feeds.SoftDeleteFeed(c.Request.Context(), actor(c), ids[0], ids[1]); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"feedId": ids[1]})
}

// PinFeed 置顶（组长）
// @Summary 置顶动态
// @Tags 动态
// @Security BearerAuth
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param feedId path int true "动态 ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/plubbings/{plubbingId}/feeds/{feedId}/pin [put]
func (h *Handler) PinFeed(c *gin.Context) {
	ids, ok := pathIDs(c, "plubbingId", "feedId")
	if !ok {
		return
	}
	if err := h.feeds.PinFeed(c.Request.Context(), actor(c), ids[0], ids[1]); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"feedId": ids[1], "pin": true})
}

// UnpinFeed 取消置顶（组长）
// @Summary 取消置顶
// @Tags 动态
// @Security BearerAuth
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param feedId path int true "动态 ID"
// @Success 200 {object} response.Response
// @Router /api/plubbings/{plubbingId}/feeds/{feedId}/pin [delete]
func (h *Handler) UnpinFeed(c *gin.Context) {
	ids, ok := pathIDs(c, "plubbingId", "feedId")
	if !ok {
		return
	}
	if err := h.feeds.UnpinFeed(c.Request.Context(), actor(c), ids[0], ids[1]); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"feedId": ids[1], "pin": false})
}

// LikeFeed 点赞 / 取消点赞
// @Summary 点赞动态
// @Tags 动态
// @Security BearerAuth
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param feedId path int true "动态 ID"
// @Success 200 {object} response.Response{data=service.LikeResult}
// @Router /api/plubbings/{plubbingId}/feeds/{feedId}/like [put]
func (h *Handler) LikeFeed(c *gin.Context) {
	ids, ok := pathIDs(c, "plubbingId", "feedId")
	if !ok {
		return
	}
	res, err := h.feeds.LikeFeed(c.Request.Context(), actor(c), ids[0], ids[1])
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// CreateComment 评论或回复
// @Summary 发表评论
// @Tags 评论
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param feedId path int true "动态 ID"
// @Param request body service.CommentRequest true "评论内容，回复时带 parentCommentId"
// @Success 200 {object} response.Response{data=service.CommentView}
// @Router /api/plubbings/{plubbingId}/feeds/{feedId}/comments [post]
func (h *Handler) CreateComment(c *gin.Context) {
	ids, ok := pathIDs(c, "plubbingId", "feedId")
	if !ok {
		return
	}
	var req service.CommentRequest
	if !bindJSON(c, &req) {
		return
	}
	v, err := h.feeds.CreateComment(c.Request.Context(), actor(c), ids[0], ids[1], req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, v)
}

// ListComments 评论列表
// @Summary 评论列表
// @Tags 评论
// @Security BearerAuth
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param feedId path int true "动态 ID"
// @Param cursorId query int false "上一页最后一条评论 ID"
// @Param size query int false "每页数量" default(10)
// @Success 200 {object} response.Response
// @Router /api/plubbings/{plubbingId}/feeds/{feedId}/comments [get]
func (h *Handler) ListComments(c *gin.Context) {
	ids, ok := pathIDs(c, "plubbingId", "feedId")
	if !ok {
		return
	}
	req, ok := pageRequest(c)
	if !ok {
		return
	}
	page, err := h.feeds.ListComments(c.Request.Context(), actor(c), ids[0], ids[1], req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

// UpdateComment 修改评论（作者）
// @Summary 修改评论
// @Tags 评论
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param feedId path int true "动态 ID"
// @Param commentId path int true "评论 ID"
// @Param request body contentRequest true "评论内容"
// @Success 200 {object} response.Response{data=service.CommentView}
// @Router /api/plubbings/{plubbingId}/feeds/{feedId}/comments/{commentId} [put]
func (h *Handler) UpdateComment(c *gin.Context) {
	ids, ok := pathIDs(c, "plubbingId", "feedId", "commentId")
	if !ok {
		return
	}
	var req contentRequest
	if !bindJSON(c, &req) {
		return
	}
	v, err := h.feeds.UpdateComment(c.Request.Context(), actor(c), ids[0], ids[1], ids[2], req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, v)
}

// DeleteComment 删除评论及其全部回复
// @Summary 删除评论
// @Tags 评论
// @Security BearerAuth
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param feedId path int true "动态 ID"
// @Param commentId path int true "评论 ID"
// @Success 200 {object} response.Response
// @Router /api/plubbings/{plubbingId}/feeds/{feedId}/comments/{commentId} [delete]
func (h *Handler) DeleteComment(c *gin.Context) {
	ids, ok := pathIDs(c, "plubbingId", "feedId", "commentId")
	if !ok {
		return
	}
	n, err := h.feeds.DeleteComment(c.Request.Context(), actor(c), ids[0], ids[1], ids[2])
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"commentId": ids[2], "deletedCount": n})
}

// ReportComment 举报评论
// @Summary 举报评论
// @Tags 评论
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param feedId path int true "动态 ID"
// @Param commentId path int true "评论 ID"
// @Param request body commentReportRequest true "举报内容"
// @Success 200 {object} response.Response
// @Router /api/plubbings/{plubbingId}/feeds/{feedId}/comments/{commentId}/report [post]
func (h *Handler) ReportComment(c *gin.Context) {
	ids, ok := pathIDs(c, "plubbingId", "feedId", "commentId")
	if !ok {
		return
	}
	var req commentReportRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.feeds.ReportComment(c.Request.Context(), actor(c), ids[0], ids[1], ids[2],
		service.ReportRequest{ReportType: req.ReportType, Content: req.Content})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"reportId": id})
}
