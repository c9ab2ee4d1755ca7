package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/PLUB2022/plub-server/internal/model"
	"github.com/PLUB2022/plub-server/internal/repository"
	"github.com/PLUB2022/plub-server/pkg/errcode"
	"github.com/PLUB2022/plub-server/pkg/logger"
)

type ReportRequest struct {
	ReportTarget model.ReportTarget `json:"reportTarget" binding:"required"`
	TargetID     int64              `json:"targetId" binding:"required"`
	ReportType   model.ReportReason `json:"reportType" binding:"required"`
	Content      string             `json:"content" binding:"max=500"`
}

type ReportTypeView struct {
	ReportType model.ReportReason `json:"reportType"`
	Title      string             `json:"reportTitle"`
	Content    string             `json:"reportContent"`
}

// ReportService 举报及累计处罚
type ReportService interface {
	Types() []ReportTypeView
	Create(ctx context.Context, actorID int64, req ReportRequest) (int64, error)
}

type reportService struct {
	store  *repository.Store
	notify Notifier
}

func NewReportService(store *repository.Store, notify Notifier) ReportService {
	if notify == nil {
		notify = NopNotifier{}
	}
	return &reportService{store: store, notify: notify}
}

func (s *reportService) Types() []ReportTypeView {
	out := make([]ReportTypeView, len(model.ReportReasons))
	for i, r := range model.ReportReasons {
		out[i] = ReportTypeView{ReportType: r.Reason, Title: r.Title, Content: r.Content}
	}
	return out
}

func validReason(r model.ReportReason) bool {
	for _, it := range model.ReportReasons {
		if it.Reason == r {
			return true
		}
	}
	return false
}

// ownerOf 返回被举报对象的作者（或账号本身）
func ownerOf(ctx context.Context, tx *repository.Store, target model.ReportTarget, id int64) (int64, error) {
	switch target {
	case model.TargetAccount:
		a, err := tx.Accounts.GetByID(ctx, id)
		if err != nil {
			return 0, err
		}
		return a.ID, nil
	case model.TargetPlubbing:
		if _, err := tx.Plubbings.GetByID(ctx, id); err != nil {
			return 0, err
		}
		return tx.Members.HostOf(ctx, id)
	case model.TargetFeed:
		f, err := tx.Feeds.GetByID(ctx, id)
		if err != nil {
			return 0, err
		}
		return f.AccountID, nil
	case model.TargetFeedComment:
		c, err := tx.Comments.GetByID(ctx, id)
		if err != nil {
			return 0, err
		}
		return c.AccountID, nil
	case model.TargetNotice:
		n, err := tx.Notices.GetByID(ctx, id)
		if err != nil {
			return 0, err
		}
		return n.AccountID, nil
	case model.TargetRecruit:
		r, err := tx.Recruits.GetByID(ctx, id)
		if err != nil {
			return 0, err
		}
		return tx.Members.HostOf(ctx, r.PlubbingID)
	}
	return 0, errcode.New(errcode.NotFoundReportType)
}

type sanction struct {
	accountID int64
	title     string
	body      string
}

func (s *reportService) Create(ctx context.Context, actorID int64, req ReportRequest) (int64, error) {
	if !validReason(req.ReportType) {
		return 0, errcode.New(errcode.NotFoundReportType)
	}
	var (
		reportID int64
		notices  []sanction
	)
	err := s.store.Tx(ctx, func(tx *repository.Store) error {
		owner, err := ownerOf(ctx, tx, req.ReportTarget, req.TargetID)
		if err != nil {
			return err
		}
		if owner == actorID {
			return errcode.New(errcode.CannotReportSelf)
		}
		rp := &model.Report{
			ReporterID: actorID,
			TargetType: req.ReportTarget,
			TargetID:   req.TargetID,
			Reason:     req.ReportType,
			Content:    req.Content,
		}
		if err := tx.Reports.Create(ctx, rp); err != nil {
			return err
		}
		reportID = rp.ID

		cnt, err := tx.Reports.CountByTarget(ctx, req.ReportTarget, req.TargetID)
		if err != nil {
			return err
		}
		notices, err = s.applySanction(ctx, tx, req.ReportTarget, req.TargetID, owner, cnt)
		return err
	})
	if err != nil {
		return 0, err
	}
	for _, n := range notices {
		s.notify.Notify(n.accountID, n.title, n.body)
	}
	return reportID, nil
}

// applySanction 达到阈值时执行处罚，返回需要发送的通知
func (s *reportService) applySanction(ctx context.Context, tx *repository.Store, target model.ReportTarget, targetID, owner int64, cnt int64) ([]sanction, error) {
	switch target {
	case model.TargetAccount:
		switch cnt {
		case model.ReportAccountWarningCount:
			return []sanction{{owner, "신고 접수", "회원님에 대한 신고가 접수되었습니다. 커뮤니티 가이드를 확인해 주세요."}}, nil
		case model.ReportAccountPausedCount:
			logger.Warn("account paused by reports", zap.Int64("account_id", targetID))
			return []sanction{{owner, "계정 일시 정지", "누적 신고로 계정이 일시 정지되었습니다."}},
				tx.Accounts.UpdateStatus(ctx, targetID, model.AccountPaused)
		case model.ReportAccountBanCount:
			logger.Warn("account banned by reports", zap.Int64("account_id", targetID))
			return nil, tx.Accounts.UpdateStatus(ctx, targetID, model.AccountBanned)
		}
	case model.TargetPlubbing:
		switch cnt {
		case model.ReportPlubbingWarnCount:
			if owner == 0 {
				return nil, nil
			}
			return []sanction{{owner, "모임 신고 접수", "운영 중인 모임에 대한 신고가 누적되었습니다."}}, nil
		case model.ReportPlubbingPauseCount:
			logger.Warn("plubbing ended by reports", zap.Int64("plubbing_id", targetID))
			if err := tx.Plubbings.UpdateStatus(ctx, targetID, model.PlubbingEnd); err != nil {
				return nil, err
			}
			return nil, tx.Members.UpdateAllStatus(ctx, targetID, model.MembershipEnd)
		}
	}
	return nil, nil
}
