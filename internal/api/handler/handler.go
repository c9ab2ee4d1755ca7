package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/PLUB2022/plub-server/internal/auth"
	"github.com/PLUB2022/plub-server/internal/service"
	"github.com/PLUB2022/plub-server/internal/storage"
	"github.com/PLUB2022/plub-server/pkg/errcode"
	"github.com/PLUB2022/plub-server/pkg/pagination"
	"github.com/PLUB2022/plub-server/pkg/response"
)

// Handler 持有全部业务服务
type Handler struct {
	auth          service.AuthService
	accounts      service.AccountService
	categories    service.CategoryService
	plubbings     service.PlubbingService
	recruits      service.RecruitService
	feeds         service.FeedService
	todos         service.TodoService
	notices       service.NoticeService
	reports       service.ReportService
	notifications service.NotificationService
	uploader      *storage.Uploader
}

// Services 构造 Handler 的依赖
type Services struct {
	Auth          service.AuthService
	Accounts      service.AccountService
	Categories    service.CategoryService
	Plubbings     service.PlubbingService
	Recruits      service.RecruitService
	Feeds         service.FeedService
	Todos         service.TodoService
	Notices       service.NoticeService
	Reports       service.ReportService
	Notifications service.NotificationService
	Uploader      *storage.Uploader
}

func New(s Services) *Handler {
	return &Handler{
		auth:          s.Auth,
		accounts:      s.Accounts,
		categories:    s.Categories,
		plubbings:     s.Plubbings,
		recruits:      s.Recruits,
		feeds:         s.Feeds,
		todos:         s.Todos,
		notices:       s.Notices,
		reports:       s.Reports,
		notifications: s.Notifications,
		uploader:      s.Uploader,
	}
}

// actor 当前登录用户 ID；路由已挂 Auth 中间件
func actor(c *gin.Context) int64 {
	p, _ := auth.PrincipalFrom(c)
	return p.AccountID
}

// pathID 解析路径中的正整数 ID，失败时已写入响应
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Fail(c, errcode.InvalidInputValue, "invalid "+name, nil)
		return 0, false
	}
	return id, true
}

// pathIDs 依次解析多个路径参数
func pathIDs(c *gin.Context, names ...string) ([]int64, bool) {
	ids := make([]int64, len(names))
	for i, n := range names {
		id, ok := pathID(c, n)
		if !ok {
			return nil, false
		}
		ids[i] = id
	}
	return ids, true
}

type pageQuery struct {
	Page     int    `form:"page" binding:"min=0"`
	Size     int    `form:"size" binding:"min=0,max=50"`
	CursorID *int64 `form:"cursorId" binding:"omitempty,min=0"`
}

// pageRequest 解析 page / size / cursorId
func pageRequest(c *gin.Context) (pagination.Request, bool) {
	var q pageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, err.Error())
		return pagination.Request{}, false
	}
	return pagination.Request{Page: q.Page, Size: q.Size, CursorID: q.CursorID}, true
}

// bindJSON 绑定失败时已写入响应
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.BadRequest(c, err.Error())
		return false
	}
	return true
}
