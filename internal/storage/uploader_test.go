package storage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PLUB2022/plub-server/config"
	"github.com/PLUB2022/plub-server/pkg/errcode"
)

// fileHeader 构造一个 multipart 文件头
func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/upload", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["file"][0]
}

func TestSaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	u := NewUploader(config.StorageConfig{Dir: dir, BaseURL: "/files/", MaxSize: 1024})

	url, err := u.Save(DirFeed, fileHeader(t, "photo.PNG", []byte("png-bytes")))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/files/feed/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	stored := filepath.Join(dir, "feed", filepath.Base(url))
	got, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(got))

	require.NoError(t, u.Delete(url))
	_, err = os.Stat(stored)
	assert.True(t, os.IsNotExist(err))
	require.NoError(t, u.Delete(url))

	assert.Error(t, u.Delete("/files/feed/../../etc/passwd"))
}

func TestSaveRejects(t *testing.T) {
	dir := t.TempDir()
	u := NewUploader(config.StorageConfig{Dir: dir, BaseURL: "/files", MaxSize: 4})

	_, err := u.Save(DirProfile, fileHeader(t, "big.jpg", []byte("too large")))
	assert.True(t, errcode.IsKind(err, errcode.FileSizeExceeded))

	_, err = u.Save("secret", fileHeader(t, "a.jpg", []byte("ok")))
	assert.True(t, errcode.IsKind(err, errcode.InvalidInputValue))

	// 超限的 reader 不会留下半个文件
	_, err = u.write(DirTodo, ".txt", strings.NewReader("12345"))
	assert.True(t, errcode.IsKind(err, errcode.FileSizeExceeded))
	entries, err := os.ReadDir(filepath.Join(dir, DirTodo))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAbsoluteBaseURL(t *testing.T) {
	dir := t.TempDir()
	u := NewUploader(config.StorageConfig{Dir: dir, BaseURL: "https://cdn.plub.kr/files/", MaxSize: 1024})

	link, err := u.Save(DirProfile, fileHeader(t, "me.jpg", []byte("jpg")))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(link, "https://cdn.plub.kr/files/profile/"), link)

	stored := filepath.Join(dir, DirProfile, filepath.Base(link))
	_, err = os.Stat(stored)
	require.NoError(t, err)
	require.NoError(t, u.Delete(link))
	_, err = os.Stat(stored)
	assert.True(t, os.IsNotExist(err))

	// 外部链接不归本地存储管理
	assert.NoError(t, u.Delete("https://lh3.googleusercontent.com/a/photo.jpg"))
}
