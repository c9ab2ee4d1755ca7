package service

import (
	"go.uber.org/zap"

	"github.com/PLUB2022/plub-server/pkg/logger"
)

// FileRemover 删除已上传的文件，由 storage.Uploader 实现
type FileRemover interface {
	Delete(url string) error
}

// discardReplaced 事务提交后删除被替换下来的旧文件，失败只记日志
func discardReplaced(files FileRemover, old, cur string) {
	if files == nil || old == "" || old == cur {
		return
	}
	if err := files.Delete(old); err != nil {
		logger.Warn("discard replaced file", zap.String("url", old), zap.Error(err))
	}
}
