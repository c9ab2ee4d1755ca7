package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/PLUB2022/plub-server/config"
	"github.com/PLUB2022/plub-server/pkg/errcode"
	"github.com/PLUB2022/plub-server/pkg/logger"
)

// 上传目录，只允许这几类
const (
	DirProfile  = "profile"
	DirPlubbing = "plubbing"
	DirFeed     = "feed"
	DirTodo     = "todo"
)

var knownDirs = map[string]bool{DirProfile: true, DirPlubbing: true, DirFeed: true, DirTodo: true}

var extPattern = regexp.MustCompile(`^\.[a-z0-9]{1,8}$`)

// Uploader 本地磁盘存储，文件名为 uuid + 原扩展名
type Uploader struct {
	dir     string
	baseURL string
	maxSize int64
}

func NewUploader(cfg config.StorageConfig) *Uploader {
	return &Uploader{dir: cfg.Dir, baseURL: strings.TrimRight(cfg.BaseURL, "/"), maxSize: cfg.MaxSize}
}

func (u *Uploader) MaxSize() int64 { return u.maxSize }

// Root 静态文件目录
func (u *Uploader) Root() string { return u.dir }

// Save 保存到 <dir>/<sub>/<uuid><ext>，返回公开 URL
func (u *Uploader) Save(sub string, fh *multipart.FileHeader) (string, error) {
	if !knownDirs[sub] {
		return "", errcode.Newf(errcode.InvalidInputValue, "unknown upload type %q", sub)
	}
	if u.maxSize > 0 && fh.Size > u.maxSize {
		return "", errcode.New(errcode.FileSizeExceeded)
	}
	src, err := fh.Open()
	if err != nil {
		return "", errcode.Newf(errcode.FileUploadFail, "open: %v", err)
	}
	defer src.Close()
	return u.write(sub, filepath.Ext(fh.Filename), src)
}

func (u *Uploader) write(sub, ext string, src io.Reader) (string, error) {
	ext = strings.ToLower(ext)
	if !extPattern.MatchString(ext) {
		ext = ""
	}
	name := uuid.NewString() + ext
	dir := filepath.Join(u.dir, sub)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	// 多读一个字节用来判断是否超限
	limit := u.maxSize
	var r io.Reader = src
	if limit > 0 {
		r = io.LimitReader(src, limit+1)
	}
	n, err := io.Copy(dst, r)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err == nil && limit > 0 && n > limit {
		err = errcode.New(errcode.FileSizeExceeded)
	}
	if err != nil {
		if rmErr := os.Remove(filepath.Join(dir, name)); rmErr != nil {
			logger.Warn("remove partial upload", zap.String("file", name), zap.Error(rmErr))
		}
		if errcode.IsKind(err, errcode.FileSizeExceeded) {
			return "", err
		}
		return "", errcode.Newf(errcode.FileUploadFail, "%v", err)
	}
	logger.Debug("file uploaded", zap.String("dir", sub), zap.String("file", name), zap.Int64("size", n))
	link, err := url.JoinPath(u.baseURL, sub, name)
	if err != nil {
		return "", errcode.Newf(errcode.FileUploadFail, "build url: %v", err)
	}
	return link, nil
}

// Delete 按 URL 删除已上传文件，不存在时忽略；不在 baseURL 下的外部链接直接跳过
func (u *Uploader) Delete(link string) error {
	rel, ok := strings.CutPrefix(link, u.baseURL+"/")
	if !ok {
		return nil
	}
	sub, name, ok := strings.Cut(rel, "/")
	if !ok || !knownDirs[sub] || name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return errcode.Newf(errcode.InvalidInputValue, "bad file url %q", link)
	}
	err := os.Remove(filepath.Join(u.dir, sub, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
