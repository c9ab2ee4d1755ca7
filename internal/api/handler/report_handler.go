package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/PLUB2022/plub-server/internal/service"
	"github.com/PLUB2022/plub-server/pkg/response"
)

// ReportTypes 举报理由
// @Summary 举报理由列表
// @Tags 举报
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response{data=[]service.ReportTypeView}
// @Router /api/reports [get]
func (h *Handler) ReportTypes(c *gin.Context) {
	response.Success(c, gin.H{"reportTypes": h.reports.Types()})
}

// CreateReport 举报，累计达到阈值后自动处罚
// @Summary 举报
// @Tags 举报
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body service.ReportRequest true "举报内容"
// @Success 200 {object} response.Response{data=map[string]int64}
// @Failure 400 {object} response.Response
// @Router /api/reports [post]
func (h *Handler) CreateReport(c *gin.Context) {
	var req service.ReportRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.reports.Create(c.Request.Context(), actor(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"reportId": id})
}
