// Package router 组装中间件与全部路由
package router

import (
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	_ "github.com/PLUB2022/plub-server/docs"
	"github.com/PLUB2022/plub-server/internal/api/handler"
	"github.com/PLUB2022/plub-server/internal/middleware"
	"github.com/PLUB2022/plub-server/pkg/errcode"
	"github.com/PLUB2022/plub-server/pkg/response"
)

type Options struct {
	ServiceName string
	Resolver    middleware.Resolver
	Limiter     *middleware.IPLimiter
	// 上传文件的静态目录，空则不挂载
	FilesURL string
	FilesDir string
	Swagger  bool
}

func New(h *handler.Handler, opt Options) (*gin.Engine, error) {
	if err := middleware.RegisterValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.Sentry(),
		middleware.ReportErrors(),
		otelgin.Middleware(opt.ServiceName),
		gzip.Gzip(gzip.DefaultCompression),
		middleware.RateLimit(opt.Limiter),
	)
	r.NoRoute(func(c *gin.Context) { response.Fail(c, errcode.NotFoundPath, "", nil) })
	r.NoMethod(func(c *gin.Context) { response.Fail(c, errcode.MethodNotAllowed, "", nil) })

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	if opt.Swagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	if opt.FilesURL != "" && opt.FilesDir != "" {
		r.Static(opt.FilesURL, opt.FilesDir)
	}

	api := r.Group("/api")

	// 无需登录
	pub := api.Group("")
	pub.POST("/auth/login", h.Login)
	pub.POST("/auth/signup", h.Signup)
	pub.POST("/auth/admin", h.AdminLogin)
	pub.POST("/auth/reissue", h.Reissue)
	pub.GET("/accounts/check/nickname/:nickname", h.CheckNickname)
	pub.GET("/categories", h.ListCategories)
	pub.GET("/categories/sub", h.ListSubCategories)
	pub.GET("/categories/check/version", h.CategoryVersion)

	authed := api.Group("", middleware.Auth(opt.Resolver))
	authed.POST("/auth/logout", h.Logout)

	accounts := authed.Group("/accounts")
	accounts.GET("/me", h.Me)
	accounts.PUT("/me", h.UpdateProfile)
	accounts.GET("/me/interest", h.Interests)
	accounts.POST("/me/interest", h.UpdateInterests)
	accounts.DELETE("/me/revoke", h.Revoke)
	accounts.GET("/profile/:nickname", h.Profile)

	plubbings := authed.Group("/plubbings")
	plubbings.POST("", h.CreatePlubbing)
	plubbings.GET("/my", h.MyPlubbings)
	plubbings.GET("/recommendation", h.RecommendPlubbings)
	plubbings.GET("/categories/:categoryId", h.PlubbingsByCategory)

	p := plubbings.Group("/:plubbingId")
	p.GET("", h.GetPlubbing)
	p.PUT("", h.UpdatePlubbing)
	p.DELETE("", h.DeletePlubbing)
	p.PUT("/status", h.TogglePlubbingEnd)
	p.PUT("/leave", h.LeavePlubbing)

	recruit := p.Group("/recruit")
	recruit.GET("", h.GetRecruit)
	recruit.PUT("", h.UpdateRecruit)
	recruit.PUT("/questions", h.UpdateQuestions)
	recruit.PUT("/end", h.CloseRecruit)
	recruit.POST("/bookmarks", h.ToggleBookmark)
	recruit.POST("/applicants", h.Apply)
	recruit.DELETE("/applicants", h.CancelApply)
	recruit.GET("/applicants", h.ListApplicants)
	recruit.POST("/applicants/:accountId/approval", h.AcceptApplicant)
	recruit.POST("/applicants/:accountId/refuse", h.RejectApplicant)

	feeds := p.Group("/feeds")
	feeds.POST("", h.CreateFeed)
	feeds.GET("", h.ListFeeds)
	feeds.GET("/pins", h.ListPinnedFeeds)
	feeds.GET("/my", h.ListMyFeeds)
	feeds.GET("/:feedId", h.GetFeed)
	feeds.PUT("/:feedId", h.UpdateFeed)
	feeds.DELETE("/:feedId", h.DeleteFeed)
	feeds.PUT("/:feedId/pin", h.PinFeed)
	feeds.DELETE("/:feedId/pin", h.UnpinFeed)
	feeds.PUT("/:feedId/like", h.LikeFeed)
	feeds.POST("/:feedId/comments", h.CreateComment)
	feeds.GET("/:feedId/comments", h.ListComments)
	feeds.PUT("/:feedId/comments/:commentId", h.UpdateComment)
	feeds.DELETE("/:feedId/comments/:commentId", h.DeleteComment)
	feeds.POST("/:feedId/comments/:commentId/report", h.ReportComment)

	notices := p.Group("/notices")
	notices.POST("", h.CreateNotice)
	notices.GET("", h.ListNotices)
	notices.GET("/:noticeId", h.GetNotice)
	notices.PUT("/:noticeId", h.UpdateNotice)
	notices.DELETE("/:noticeId", h.DeleteNotice)
	notices.PUT("/:noticeId/like", h.LikeNotice)
	notices.POST("/:noticeId/comments", h.CreateNoticeComment)
	notices.GET("/:noticeId/comments", h.ListNoticeComments)
	notices.PUT("/:noticeId/comments/:commentId", h.UpdateNoticeComment)
	notices.DELETE("/:noticeId/comments/:commentId", h.DeleteNoticeComment)

	todos := p.Group("/todolist")
	todos.POST("", h.CreateTodo)
	todos.GET("/:todoId", h.GetTodo)
	todos.PUT("/:todoId", h.UpdateTodo)
	todos.DELETE("/:todoId", h.DeleteTodo)
	todos.PUT("/:todoId/complete", h.CompleteTodo)
	todos.PUT("/:todoId/cancel", h.CancelTodo)
	todos.POST("/:todoId/proof", h.ProofTodo)

	timeline := p.Group("/timeline")
	timeline.GET("", h.ListTimelines)
	timeline.GET("/my", h.ListMyTimelines)
	timeline.GET("/accounts/:accountId", h.ListAccountTimelines)
	timeline.GET("/year/:year/month/:month", h.TimelineCalendar)
	timeline.GET("/date/:date", h.TimelineByDate)
	timeline.GET("/:timelineId/todolist", h.TimelineTodos)
	timeline.PUT("/:timelineId/like", h.LikeTimeline)

	recruits := authed.Group("/recruits")
	recruits.GET("/bookmarks/me", h.MyBookmarks)
	recruits.GET("/applications/me", h.MyApplications)

	authed.GET("/reports", h.ReportTypes)
	authed.POST("/reports", h.CreateReport)

	authed.GET("/notifications", h.ListNotifications)
	authed.PUT("/notifications/:notificationId/read", h.ReadNotification)

	authed.POST("/files", h.UploadFile)

	admin := authed.Group("/admin", middleware.RequireAdmin())
	admin.DELETE("/categories/cache", h.InvalidateCategories)

	return r, nil
}
