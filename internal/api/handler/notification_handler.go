package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/PLUB2022/plub-server/pkg/response"
)

// ListNotifications 我的通知
// @Summary 通知列表
// @Tags 通知
// @Security BearerAuth
// @Produce json
// @Param cursorId query int false "上一页最后一条通知 ID"
// @Param size query int false "每页数量" default(10)
// @Success 200 {object} response.Response
// @Router /api/notifications [get]
func (h *Handler) ListNotifications(c *gin.Context) {
	req, ok := pageRequest(c)
	if !ok {
		return
	}
	page, err := h.notifications.List(c.Request.Context(), actor(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

// @Summary 标记已读
// @Tags 通知
// @Security BearerAuth
// @Produce json
// @Param notificationId path int true "通知 ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/notifications/{notificationId}/read [put]
func (h *Handler) ReadNotification(c *gin.Context) {
	id, ok := pathID(c, "notificationId")
	if !ok {
		return
	}
	if err := h.notifications.MarkRead(c.Request.Context(), actor(c), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"notificationId": id})
}
