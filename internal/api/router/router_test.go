package router

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PLUB2022/plub-server/config"
	"github.com/PLUB2022/plub-server/internal/api/handler"
	"github.com/PLUB2022/plub-server/internal/auth"
	"github.com/PLUB2022/plub-server/internal/model"
	"github.com/PLUB2022/plub-server/internal/repository"
	"github.com/PLUB2022/plub-server/internal/service"
	"github.com/PLUB2022/plub-server/internal/storage"
	"github.com/PLUB2022/plub-server/internal/testutil"
)

func init() { gin.SetMode(gin.TestMode) }

type stubSocial struct{}

func (stubSocial) Verify(_ context.Context, social model.SocialType, token string) (*auth.SocialProfile, error) {
	return &auth.SocialProfile{ProviderID: token, Email: auth.SocialEmail(token, social)}, nil
}

func (stubSocial) Revoke(context.Context, model.SocialType, auth.RevokeRequest) error { return nil }

type envelope struct {
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}

type server struct {
	t      *testing.T
	engine *gin.Engine
	store  *repository.Store
}

func newServer(t *testing.T) *server {
	db := testutil.NewDB(t)
	_, rdb := testutil.NewRedis(t)
	store := repository.NewStore(db)
	tokens, err := auth.NewTokenProvider(config.JWTConfig{
		Secret:          "secret",
		EncryptKey:      "0123456789abcdef0123456789abcdef",
		AccessDuration:  time.Hour,
		RefreshDuration: 24 * time.Hour,
	})
	require.NoError(t, err)
	refresh := auth.NewRefreshStore(rdb)
	authSvc := service.NewAuthService(store, tokens, refresh, stubSocial{})
	reports := service.NewReportService(store, nil)
	uploader := storage.NewUploader(config.StorageConfig{Dir: t.TempDir(), BaseURL: "/files", MaxSize: 1 << 20})
	h := handler.New(handler.Services{
		Auth:          authSvc,
		Accounts:      service.NewAccountService(store, stubSocial{}, refresh, uploader),
		Categories:    service.NewCategoryService(store, rdb),
		Plubbings:     service.NewPlubbingService(store, uploader),
		Recruits:      service.NewRecruitService(store, nil, uploader),
		Feeds:         service.NewFeedService(store, nil, reports),
		Todos:         service.NewTodoService(store),
		Notices:       service.NewNoticeService(store),
		Reports:       reports,
		Notifications: service.NewNotificationService(store),
		Uploader:      uploader,
	})
	engine, err := New(h, Options{ServiceName: "plub-test", Resolver: authSvc})
	require.NoError(t, err)
	return &server{t: t, engine: engine, store: store}
}

func (s *server) do(method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	var env envelope
	if w.Header().Get("Content-Type") != "" && w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &env)
	}
	return w, env
}

func (s *server) decode(env envelope, dst any) {
	s.t.Helper()
	require.NoError(s.t, json.Unmarshal(env.Data, dst))
}

// signup 走完登录注册流程，返回 access token
func (s *server) signup(providerID, nickname string) string {
	s.t.Helper()
	w, env := s.do(http.MethodPost, "/api/auth/login", "", gin.H{"socialType": "KAKAO", "accessToken": providerID})
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())
	var login service.LoginResult
	s.decode(env, &login)
	require.Equal(s.t, service.NeedToSignup, login.Status)

	w, env = s.do(http.MethodPost, "/api/auth/signup", "", gin.H{"signToken": login.SignToken, "nickname": nickname})
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())
	var pair auth.TokenPair
	s.decode(env, &pair)
	require.NotEmpty(s.t, pair.AccessToken)
	return pair.AccessToken
}

func (s *server) accountID(email string) int64 {
	s.t.Helper()
	a, err := s.store.Accounts.GetByEmail(context.Background(), email)
	require.NoError(s.t, err)
	return a.ID
}

func (s *server) plubbing(host int64, members ...int64) int64 {
	s.t.Helper()
	ctx := context.Background()
	p := &model.Plubbing{
		Name: "모임", Goal: "goal", Status: model.PlubbingActive, Visibility: true,
		OnOff: model.Off, MaxAccountNum: 10, CurAccountNum: 1 + len(members),
	}
	require.NoError(s.t, s.store.Plubbings.Create(ctx, p))
	require.NoError(s.t, s.store.Members.Join(ctx, host, p.ID, true))
	for _, m := range members {
		require.NoError(s.t, s.store.Members.Join(ctx, m, p.ID, false))
	}
	return p.ID
}

func TestFallbackRoutes(t *testing.T) {
	s := newServer(t)

	w, _ := s.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, env := s.do(http.MethodGet, "/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 9035, env.StatusCode)

	w, env = s.do(http.MethodPatch, "/api/categories", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, 9030, env.StatusCode)

	w, env = s.do(http.MethodGet, "/api/accounts/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 2000, env.StatusCode)

	w, _ = s.do(http.MethodGet, "/api/accounts/me", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRouteForbidden(t *testing.T) {
	s := newServer(t)
	token := s.signup("1", "일반유저")

	w, env := s.do(http.MethodDelete, "/api/admin/categories/cache", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, 2010, env.StatusCode)
}

func TestFeedAndCommentFlow(t *testing.T) {
	s := newServer(t)
	hostToken := s.signup("10", "호스트")
	memberToken := s.signup("11", "멤버")
	outsiderToken := s.signup("12", "외부인")
	host := s.accountID("10@kakao")
	member := s.accountID("11@kakao")
	pid := s.plubbing(host, member)
	base := "/api/plubbings/" + itoa(pid) + "/feeds"

	w, _ := s.do(http.MethodPost, base, memberToken, gin.H{"content": "missing title"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env := s.do(http.MethodPost, base, memberToken, gin.H{"title": "첫 글", "content": "안녕하세요"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var created struct {
		FeedID int64 `json:"feedId"`
	}
	s.decode(env, &created)
	require.NotZero(t, created.FeedID)
	feedPath := base + "/" + itoa(created.FeedID)

	w, _ = s.do(http.MethodGet, base, outsiderToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, env = s.do(http.MethodGet, base+"?size=5", hostToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var page struct {
		TotalElements int64              `json:"totalElements"`
		Last          bool               `json:"last"`
		Content       []service.FeedCard `json:"content"`
	}
	s.decode(env, &page)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "첫 글", page.Content[0].Title)
	assert.False(t, page.Content[0].IsAuthor)
	assert.True(t, page.Last)

	w, env = s.do(http.MethodPut, feedPath+"/like", hostToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var like service.LikeResult
	s.decode(env, &like)
	assert.True(t, like.IsLike)

	w, env = s.do(http.MethodPost, feedPath+"/comments", hostToken, gin.H{"content": "반가워요"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var comment service.CommentView
	s.decode(env, &comment)
	assert.Equal(t, "반가워요", comment.Content)

	w, _ = s.do(http.MethodPut, feedPath+"/comments/"+itoa(comment.CommentID), hostToken, gin.H{"content": "수정"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, env = s.do(http.MethodGet, feedPath+"/comments", memberToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var comments struct {
		Content []service.CommentView `json:"content"`
	}
	s.decode(env, &comments)
	require.Len(t, comments.Content, 1)
	assert.Equal(t, "수정", comments.Content[0].Content)

	w, env = s.do(http.MethodGet, feedPath, memberToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var card service.FeedCard
	s.decode(env, &card)
	assert.Equal(t, 1, card.LikeCount)
	assert.Equal(t, 1, card.CommentCount)
	assert.True(t, card.IsAuthor)

	w, _ = s.do(http.MethodPut, feedPath+"/pin", memberToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w, _ = s.do(http.MethodPut, feedPath+"/pin", hostToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, _ = s.do(http.MethodGet, base+"/abc", hostToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTodoTimelineFlow(t *testing.T) {
	s := newServer(t)
	token := s.signup("20", "할일러")
	me := s.accountID("20@kakao")
	pid := s.plubbing(me)
	base := "/api/plubbings/" + itoa(pid)

	w, env := s.do(http.MethodPost, base+"/todolist", token, gin.H{"content": "5km 달리기", "date": "2023-05-01"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var todo service.TodoView
	s.decode(env, &todo)
	todoPath := base + "/todolist/" + itoa(todo.TodoID)

	w, _ = s.do(http.MethodPost, todoPath+"/proof", token, gin.H{"proofImage": "a.png"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = s.do(http.MethodPut, todoPath+"/complete", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w, env = s.do(http.MethodPost, todoPath+"/proof", token, gin.H{"proofImage": "a.png"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	s.decode(env, &todo)
	assert.True(t, todo.IsProof)

	w, env = s.do(http.MethodGet, base+"/timeline/date/2023-05-01", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var tl service.TimelineView
	s.decode(env, &tl)
	assert.Equal(t, todo.TimelineID, tl.TimelineID)
	require.Len(t, tl.TodoList, 1)

	w, env = s.do(http.MethodGet, base+"/timeline/year/2023/month/5", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var cal service.CalendarView
	s.decode(env, &cal)
	assert.Equal(t, []string{"2023-05-01"}, cal.DateList)

	w, _ = s.do(http.MethodGet, base+"/timeline/year/2023/month/x", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = s.do(http.MethodPut, base+"/timeline/"+itoa(tl.TimelineID)+"/like", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	s.decode(env, &tl)
	assert.True(t, tl.IsLike)

	w, env = s.do(http.MethodGet, base+"/timeline/my", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var mine struct {
		TotalElements int64 `json:"totalElements"`
	}
	s.decode(env, &mine)
	assert.EqualValues(t, 1, mine.TotalElements)
}

func itoa(id int64) string { return strconv.FormatInt(id, 10) }

func TestUploadAndNotices(t *testing.T) {
	s := newServer(t)
	hostToken := s.signup("30", "공지장")
	memberToken := s.signup("31", "읽는이")
	pid := s.plubbing(s.accountID("30@kakao"), s.accountID("31@kakao"))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("type", "feed"))
	fw, err := mw.CreateFormFile("file", "photo.PNG")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("png-bytes"))
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(http.MethodPost, "/api/files", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+hostToken)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var up struct {
		FileURL string `json:"fileUrl"`
	}
	s.decode(env, &up)
	assert.True(t, strings.HasPrefix(up.FileURL, "/files/feed/"), up.FileURL)

	base := "/api/plubbings/" + itoa(pid) + "/notices"
	w, _ = s.do(http.MethodPost, base, memberToken, gin.H{"title": "공지"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, env = s.do(http.MethodPost, base, hostToken, gin.H{"title": "공지", "content": "이번 주 모임"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var created struct {
		NoticeID int64 `json:"noticeId"`
	}
	s.decode(env, &created)

	w, env = s.do(http.MethodGet, base+"?page=0&size=10", memberToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var page struct {
		TotalElements int64                `json:"totalElements"`
		Content       []service.NoticeView `json:"content"`
	}
	s.decode(env, &page)
	assert.EqualValues(t, 1, page.TotalElements)
	require.Len(t, page.Content, 1)
	assert.Equal(t, created.NoticeID, page.Content[0].NoticeID)
	assert.False(t, page.Content[0].IsHost)

	w, _ = s.do(http.MethodPost, base+"/"+itoa(created.NoticeID)+"/comments", memberToken, gin.H{"content": "확인했습니다"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, env = s.do(http.MethodGet, base+"/"+itoa(created.NoticeID), hostToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var notice service.NoticeView
	s.decode(env, &notice)
	assert.Equal(t, 1, notice.CommentCount)
	assert.True(t, notice.IsHost)
}

func TestRevokeAndSignupAgain(t *testing.T) {
	s := newServer(t)
	hostToken := s.signup("20", "호스트")
	memberToken := s.signup("21", "멤버")
	pid := s.plubbing(s.accountID("20@kakao"), s.accountID("21@kakao"))

	w, env := s.do(http.MethodDelete, "/api/accounts/me/revoke", hostToken, nil)
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	assert.Equal(t, 6120, env.StatusCode)
	var hosted service.HostedPlubbings
	s.decode(env, &hosted)
	assert.Equal(t, []int64{pid}, hosted.PlubbingIDs)

	w, _ = s.do(http.MethodDelete, "/api/accounts/me/revoke", memberToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, _ = s.do(http.MethodGet, "/api/accounts/me", memberToken, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 同一社交账号、同一昵称可以重新注册
	token := s.signup("21", "멤버")
	w, _ = s.do(http.MethodGet, "/api/accounts/me", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSwaggerDocCoversRoutes(t *testing.T) {
	engine, err := New(handler.New(handler.Services{}), Options{ServiceName: "plub-test", Swagger: true})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	require.NotEmpty(t, doc.Paths)

	param := regexp.MustCompile(`:(\w+)`)
	n := 0
	for _, r := range engine.Routes() {
		if !strings.HasPrefix(r.Path, "/api/") {
			continue
		}
		n++
		p := param.ReplaceAllString(r.Path, "{$1}")
		_, ok := doc.Paths[p][strings.ToLower(r.Method)]
		assert.True(t, ok, "%s %s missing from swagger doc", r.Method, p)
	}
	documented := 0
	for _, ops := range doc.Paths {
		documented += len(ops)
	}
	assert.Equal(t, n, documented)
}
