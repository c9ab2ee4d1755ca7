package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/PLUB2022/plub-server/pkg/response"
)

// ListCategories 大分类列表
// @Summary 大分类
// @Tags 分类
// @Produce json
// @Success 200 {object} response.Response{data=[]service.CategoryView}
// @Router /api/categories [get]
func (h *Handler) ListCategories(c *gin.Context) {
	list, err := h.categories.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"categories": list})
}

// ListSubCategories 子分类；带 categoryId 时只返回该大分类下的
// @Summary 子分类
// @Tags 分类
// @Produce json
// @Param categoryId query int false "大分类 ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/categories/sub [get]
func (h *Handler) ListSubCategories(c *gin.Context) {
	raw := c.Query("categoryId")
	if raw == "" {
		tree, err := h.categories.ListAll(c.Request.Context())
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, gin.H{"categories": tree})
		return
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid categoryId")
		return
	}
	list, err := h.categories.ListSubCategories(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"categories": list})
}

// CategoryVersion 分类最近更新时间
// @Summary 分类版本
// @Tags 分类
// @Produce json
// @Success 200 {object} response.Response{data=service.CategoryVersion}
// @Router /api/categories/check/version [get]
func (h *Handler) CategoryVersion(c *gin.Context) {
	v, err := h.categories.Version(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, v)
}

// InvalidateCategories 清空分类缓存（管理员）
// @Summary 清空分类缓存
// @Tags 管理
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/admin/categories/cache [delete]
func (h *Handler) InvalidateCategories(c *gin.Context) {
	if err := h.categories.Invalidate(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, h.categories.CacheCounters())
}
