package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PLUB2022/plub-server/pkg/errcode"
)

func perform(t *testing.T, h gin.HandlerFunc) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", h)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestSuccess(t *testing.T) {
	w, body := perform(t, func(c *gin.Context) { Success(c, gin.H{"feedId": 1}) })
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 200, body.StatusCode)
	assert.Equal(t, "success", body.Message)
	assert.Equal(t, float64(1), body.Data.(map[string]any)["feedId"])
}

func TestErrorDomain(t *testing.T) {
	w, body := perform(t, func(c *gin.Context) {
		Error(c, fmt.Errorf("wrap: %w", errcode.New(errcode.MaxFeedPin)))
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 8070, body.StatusCode)
	assert.Equal(t, errcode.MaxFeedPin.Message(), body.Message)
}

func TestErrorWithData(t *testing.T) {
	w, body := perform(t, func(c *gin.Context) {
		Error(c, errcode.WithData(errcode.NotFoundRefreshToken, gin.H{"k": "v"}))
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "v", body.Data.(map[string]any)["k"])
}

func TestErrorUnknown(t *testing.T) {
	w, body := perform(t, func(c *gin.Context) { Error(c, errors.New("db down")) })
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, errcode.InternalServerError.StatusCode(), body.StatusCode)
	assert.NotContains(t, body.Message, "db down")
}
