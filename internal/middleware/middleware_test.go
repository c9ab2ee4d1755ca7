package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PLUB2022/plub-server/config"
	"github.com/PLUB2022/plub-server/internal/auth"
	"github.com/PLUB2022/plub-server/internal/model"
	"github.com/PLUB2022/plub-server/pkg/errcode"
	"github.com/PLUB2022/plub-server/pkg/response"
)

func init() { gin.SetMode(gin.TestMode) }

type stubResolver map[string]auth.Principal

func (s stubResolver) Resolve(_ context.Context, token string) (auth.Principal, error) {
	p, ok := s[token]
	if !ok {
		return auth.Principal{}, errcode.New(errcode.FilterAccessDenied)
	}
	if token == "paused" {
		return auth.Principal{}, errcode.New(errcode.PausedAccount)
	}
	return p, nil
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var r response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &r))
	return r
}

func TestAuth(t *testing.T) {
	resolver := stubResolver{
		"user":   {AccountID: 1, Role: model.RoleUser},
		"admin":  {AccountID: 2, Role: model.RoleAdmin},
		"paused": {},
	}
	r := gin.New()
	r.GET("/me", Auth(resolver), func(c *gin.Context) {
		p, _ := auth.PrincipalFrom(c)
		c.JSON(http.StatusOK, gin.H{"id": p.AccountID})
	})
	r.GET("/admin", Auth(resolver), RequireAdmin(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	cases := []struct {
		path, header string
		status       int
	}{
		{"/me", "", http.StatusUnauthorized},
		{"/me", "Basic abc", http.StatusUnauthorized},
		{"/me", "Bearer nope", http.StatusUnauthorized},
		{"/me", "Bearer paused", errcode.PausedAccount.HTTPStatus()},
		{"/me", "bearer user", http.StatusOK},
		{"/admin", "Bearer user", http.StatusForbidden},
		{"/admin", "Bearer admin", http.StatusNoContent},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, tc.path, nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, tc.status, w.Code, "%s %q", tc.path, tc.header)
	}
}

func TestRequestIDAndLogger(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Logger())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, RequestIDFrom(c)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	id := w.Header().Get(RequestIDHeader)
	assert.Len(t, id, 36)
	assert.Equal(t, id, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Body.String())
}

func TestRateLimit(t *testing.T) {
	l := NewIPLimiter(config.RateLimitConfig{RPS: 1, Burst: 2})
	now := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	l.swept = now

	r := gin.New()
	r.Use(RateLimit(l))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{200, 200, errcode.TooManyRequests.HTTPStatus()}, codes)

	// 其他 IP 不受影响
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.9:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	now = now.Add(time.Hour)
	assert.Zero(t, l.Sweep())
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Recovery(), ReportErrors())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, errcode.InternalServerError.StatusCode(), decode(t, w).StatusCode)
}

func TestNicknameValidator(t *testing.T) {
	require.NoError(t, RegisterValidators())
	type body struct {
		Nickname string `json:"nickname" binding:"required,nickname"`
	}
	r := gin.New()
	r.POST("/", func(c *gin.Context) {
		var b body
		if err := c.ShouldBindJSON(&b); err != nil {
			response.Error(c, err)
			return
		}
		c.Status(http.StatusOK)
	})
	for in, want := range map[string]int{`{"nickname":"플럽"}`: 200, `{"nickname":"no space"}`: 400, `{"nickname":"waytoolongname"}`: 400} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(in)))
		assert.Equal(t, want, w.Code, in)
	}
}
