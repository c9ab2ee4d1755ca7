package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/PLUB2022/plub-server/internal/service"
	"github.com/PLUB2022/plub-server/pkg/errcode"
	"github.com/PLUB2022/plub-server/pkg/response"
)

// CreateTodo 新建待办，同一天自动归入同一条时间线
// @Summary 新建待办
// @Tags 待办
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param request body service.TodoRequest true "待办内容，date 形如 2006-01-02"
// @Success 200 {object} response.Response{data=service.TodoView}
// @Failure 400 {object} response.Response
// @Router /api/plubbings/{plubbingId}/todolist [post]
func (h *Handler) CreateTodo(c *gin.Context) {
	pid, ok := pathID(c, "plubbingId")
	if !ok {
		return
	}
	var req service.TodoRequest
	if !bindJSON(c, &req) {
		return
	}
	v, err := h.todos.CreateTodo(c.Request.Context(), actor(c), pid, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, v)
}

// GetTodo 待办详情
// @Summary 待办详情
// @Tags 待办
// @Security BearerAuth
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param todoId path int true "待办 ID"
// @Success 200 {object} response.Response{data=service.TodoView}
// @Router /api/plubbings/{plubbingId}/todolist/{todoId} [get]
func (h *Handler) GetTodo(c *gin.Context) {
	ids, ok := pathIDs(c, "plubbingId", "todoId")
	if !ok {
		return
	}
	v, err := h.todos.GetTodo(c.Request.Context(), actor(c), ids[0], ids[1])
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, v)
}

// UpdateTodo 修改待办（未完成时）
// @Summary 修改待办
// @Tags 待办
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param todoId path int true "待办 ID"
// @Param request body service.TodoRequest true "待办内容"
// @Success 200 {object} response.Response{data=service.TodoView}
// @Router /api/plubbings/{plubbingId}/todolist/{todoId} [put]
func (h *Handler) UpdateTodo(c *gin.Context) {
	ids, ok := pathIDs(c, "plubbingId", "todoId")
	if !ok {
		return
	}
	var req service.TodoRequest
	if !bindJSON(c, &req) {
		return
	}
	v, err := h.todos.UpdateTodo(c.Request.Context(), actor(c), ids[0], ids[1], req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, v)
}

// DeleteTodo 删除待办
// @Summary 删除待办
// @Tags 待办
// @Security BearerAuth
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param todoId path int true "待办 ID"
// @Success 200 {object} response.Response
// @Router /api/plubbings/{plubbingId}/todolist/{todoId} [delete]
func (h *Handler) DeleteTodo(c *gin.Context) {
	ids, ok := pathIDs(c, "plubbingId", "todoId")
	if !ok {
		return
	}
	if err := h.todos.DeleteTodo(c.Request.Context(), actor(c), ids[0], ids[1]); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"todoId": ids[1]})
}

// CompleteTodo 完成
// @Summary 完成待办
// @Tags 待办
// @Security BearerAuth
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param todoId path int true "待办 ID"
// @Success 200 {object} response.Response{data=service.TodoView}
// @Router /api/plubbings/{plubbingId}/todolist/{todoId}/complete [put]
func (h *Handler) CompleteTodo(c *gin.Context) {
	ids, ok := pathIDs(c, "plubbingId", "todoId")
	if !ok {
		return
	}
	v, err := h.todos.CompleteTodo(c.Request.Context(), actor(c), ids[0], ids[1])
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, v)
}

// CancelTodo 取消完成
// @Summary 取消完成
// @Tags 待办
// @Security BearerAuth
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param todoId path int true "待办 ID"
// @Success 200 {object} response.Response{data=service.TodoView}
// @Router /api/plubbings/{plubbingId}/todolist/{todoId}/cancel [put]
func (h *Handler) CancelTodo(c *gin.Context) {
	ids, ok := pathIDs(c, "plubbingId", "todoId")
	if !ok {
		return
	}
	v, err := h.todos.CancelTodo(c.Request.Context(), actor(c), ids[0], ids[1])
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, v)
}

// ProofTodo 上传完成凭证
// @Summary 待办凭证
// @Tags 待办
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param todoId path int true "待办 ID"
// @Param request body service.ProofRequest true "凭证图片"
// @Success 200 {object} response.Response{data=service.TodoView}
// @Router /api/plubbings/{plubbingId}/todolist/{todoId}/proof [post]
func (h *Handler) ProofTodo(c *gin.Context) {
	ids, ok := pathIDs(c, "plubbingId", "todoId")
	if !ok {
		return
	}
	var req service.ProofRequest
	if !bindJSON(c, &req) {
		return
	}
	v, err := h.todos.ProofTodo(c.Request.Context(), actor(c), ids[0], ids[1], req.ProofImage)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, v)
}

// ListTimelines 小组全部时间线
// @Summary 时间线列表
// @Tags 时间线
// @Security BearerAuth
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param cursorId query int false "上一页最后一条时间线 ID"
// @Param size query int false "每页数量" default(10)
// @Success 200 {object} response.Response
// @Router /api/plubbings/{plubbingId}/timeline [get]
func (h *Handler) ListTimelines(c *gin.Context) {
	pid, ok := pathID(c, "plubbingId")
	if !ok {
		return
	}
	req, ok := pageRequest(c)
	if !ok {
		return
	}
	page, err := h.todos.ListPlubbingTimelines(c.Request.Context(), actor(c), pid, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

// ListMyTimelines 我的时间线
// @Summary 我的时间线
// @Tags 时间线
// @Security BearerAuth
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param cursorId query int false "上一页最后一条时间线 ID"
// @Param size query int false "每页数量" default(10)
// @Success 200 {object} response.Response
// @Router /api/plubbings/{plubbingId}/timeline/my [get]
func (h *Handler) ListMyTimelines(c *gin.Context) {
	pid, ok := pathID(c, "plubbingId")
	if !ok {
		return
	}
	req, ok := pageRequest(c)
	if !ok {
		return
	}
	page, err := h.todos.ListMyTimelines(c.Request.Context(), actor(c), pid, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

// ListAccountTimelines 某个成员的时间线
// @Summary 成员时间线
// @Tags 时间线
// @Security BearerAuth
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param accountId path int true "成员 ID"
// @Param cursorId query int false "上一页最后一条时间线 ID"
// @Param size query int false "每页数量" default(10)
// @Success 200 {object} response.Response
// @Router /api/plubbings/{plubbingId}/timeline/accounts/{accountId} [get]
func (h *Handler) ListAccountTimelines(c *gin.Context) {
	ids, ok := pathIDs(c, "plubbingId", "accountId")
	if !ok {
		return
	}
	req, ok := pageRequest(c)
	if !ok {
		return
	}
	page, err := h.todos.ListAccountTimelines(c.Request.Context(), actor(c), ids[0], ids[1], req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

// TimelineCalendar 某月有待办的日期
// @Summary 月历
// @Tags 时间线
// @Security BearerAuth
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param year path int true "年"
// @Param month path int true "月"
// @Success 200 {object} response.Response{data=service.CalendarView}
// @Router /api/plubbings/{plubbingId}/timeline/year/{year}/month/{month} [get]
func (h *Handler) TimelineCalendar(c *gin.Context) {
	pid, ok := pathID(c, "plubbingId")
	if !ok {
		return
	}
	year, err1 := strconv.Atoi(c.Param("year"))
	month, err2 := strconv.Atoi(c.Param("month"))
	if err1 != nil || err2 != nil {
		response.Fail(c, errcode.InvalidInputValue, "invalid year or month", nil)
		return
	}
	v, err := h.todos.GetCalendar(c.Request.Context(), actor(c), pid, year, month)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, v)
}

// TimelineByDate 我在某天的时间线，没有时返回空列表
// @Summary 按日期查询时间线
// @Tags 时间线
// @Security BearerAuth
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param date path string true "日期 2006-01-02"
// @Success 200 {object} response.Response{data=service.TimelineView}
// @Router /api/plubbings/{plubbingId}/timeline/date/{date} [get]
func (h *Handler) TimelineByDate(c *gin.Context) {
	pid, ok := pathID(c, "plubbingId")
	if !ok {
		return
	}
	v, err := h.todos.GetTimelineByDate(c.Request.Context(), actor(c), pid, c.Param("date"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, v)
}

// TimelineTodos 时间线下的待办
// @Summary 时间线详情
// @Tags 时间线
// @Security BearerAuth
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param timelineId path int true "时间线 ID"
// @Success 200 {object} response.Response{data=service.TimelineView}
// @Router /api/plubbings/{plubbingId}/timeline/{timelineId}/todolist [get]
func (h *Handler) TimelineTodos(c *gin.Context) {
	ids, ok := pathIDs(c, "plubbingId", "timelineId")
	if !ok {
		return
	}
	v, err := h.todos.GetTimelineTodos(c.Request.Context(), actor(c), ids[0], ids[1])
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, v)
}

// LikeTimeline 点赞 / 取消点赞
// @Summary 点赞时间线
// @Tags 时间线
// @Security BearerAuth
// @Produce json
// @Param plubbingId path int true "小组 ID"
// @Param timelineId path int true "时间线 ID"
// @Success 200 {object} response.Response{data=service.TimelineView}
// @Router /api/plubbings/{plubbingId}/timeline/{timelineId}/like [put]
func (h *Handler) LikeTimeline(c *gin.Context) {
	ids, ok := pathIDs(c, "plubbingId", "timelineId")
	if !ok {
		return
	}
	v, err := h.todos.LikeTimeline(c.Request.Context(), actor(c), ids[0], ids[1])
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, v)
}
