package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/PLUB2022/plub-server/internal/model"
	"github.com/PLUB2022/plub-server/internal/repository"
	"github.com/PLUB2022/plub-server/pkg/logger"
)

// Notifier 业务侧只管投递，不关心落库与推送结果
type Notifier interface {
	Notify(accountID int64, title, body string)
}

// Pusher 把通知推送到设备
type Pusher interface {
	Push(ctx context.Context, n *model.Notification) error
}

// LogPusher 只打日志
type LogPusher struct{}

func (LogPusher) Push(_ context.Context, n *model.Notification) error {
	logger.Info("push notification",
		zap.Int64("account_id", n.AccountID),
		zap.Int64("notification_id", n.ID),
		zap.String("title", n.Title))
	return nil
}

type notifyJob struct {
	accountID int64
	title     string
	body      string
	enqAt     time.Time
}

// Dispatcher 本地异步通知执行器：有界队列 + N 个 worker，先落库再推送
type Dispatcher struct {
	repo   repository.NotificationRepository
	pusher Pusher
	ch     chan notifyJob
}

func NewDispatcher(repo repository.NotificationRepository, pusher Pusher, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 1024
	}
	if pusher == nil {
		pusher = LogPusher{}
	}
	return &Dispatcher{repo: repo, pusher: pusher, ch: make(chan notifyJob, queueSize)}
}

// Start 启动 worker，返回的函数用于停机：停止接收并在 ctx 截止前排空队列
func (d *Dispatcher) Start(workers int) func(context.Context) error {
	if workers <= 0 {
		workers = 2
	}
	stopCh := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case job := <-d.ch:
					d.handle(job)
				case <-stopCh:
					for {
						select {
						case job := <-d.ch:
							d.handle(job)
						default:
							return
						}
					}
				}
			}
		}()
	}
	return func(ctx context.Context) error {
		close(stopCh)
		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (d *Dispatcher) handle(job notifyJob) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	n := &model.Notification{AccountID: job.accountID, Title: job.title, Body: job.body}
	if err := d.repo.Create(ctx, n); err != nil {
		logger.Error("save notification", zap.Int64("account_id", job.accountID), zap.Error(err))
		return
	}
	if err := d.pusher.Push(ctx, n); err != nil {
		logger.Warn("push notification", zap.Int64("notification_id", n.ID), zap.Error(err))
	}
	logger.Debug("notification delivered",
		zap.Int64("notification_id", n.ID),
		zap.Duration("latency", time.Since(job.enqAt)))
}

func (d *Dispatcher) Notify(accountID int64, title, body string) {
	select {
	case d.ch <- notifyJob{accountID: accountID, title: title, body: body, enqAt: time.Now()}:
	default:
		logger.Warn("notification queue full, drop", zap.Int64("account_id", accountID), zap.String("title", title))
	}
}

// QueueLen 当前队列长度（采样值）
func (d *Dispatcher) QueueLen() int { return len(d.ch) }

// NopNotifier 丢弃所有通知
type NopNotifier struct{}

func (NopNotifier) Notify(int64, string, string) {}
