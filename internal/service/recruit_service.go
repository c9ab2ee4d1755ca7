package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/PLUB2022/plub-server/internal/model"
	"github.com/PLUB2022/plub-server/internal/repository"
	"github.com/PLUB2022/plub-server/pkg/errcode"
	"github.com/PLUB2022/plub-server/pkg/logger"
)

type AnswerRequest struct {
	QuestionID int64  `json:"questionId" binding:"required"`
	Answer     string `json:"answer" binding:"max=1000"`
}

type ApplyRequest struct {
	Answers []AnswerRequest `json:"answers" binding:"dive"`
}

type UpdateRecruitRequest struct {
	Title     string `json:"title" binding:"required,max=100"`
	Introduce string `json:"introduce" binding:"max=2000"`
	MainImage string `json:"mainImage" binding:"max=512"`
}

type QuestionsRequest struct {
	Questions []string `json:"questions" binding:"max=5,dive,max=255"`
}

type QuestionView struct {
	QuestionID int64  `json:"questionId"`
	Question   string `json:"question"`
}

type RecruitView struct {
	PlubbingCard
	RecruitID     int64               `json:"recruitId"`
	Introduce     string              `json:"introduce"`
	RecruitStatus model.RecruitStatus `json:"recruitStatus"`
	RecruitViews  int                 `json:"recruitViews"`
	IsApplied     bool                `json:"isApplied"`
	Questions     []QuestionView      `json:"questions"`
	Members       []MemberView        `json:"joinedAccounts"`
}

type AnswerView struct {
	QuestionID int64  `json:"questionId"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
}

type ApplicantView struct {
	AccountID    int64        `json:"accountId"`
	Nickname     string       `json:"nickname"`
	ProfileImage string       `json:"profileImage"`
	AppliedAt    time.Time    `json:"createdAt"`
	Answers      []AnswerView `json:"answers"`
}

type BookmarkResult struct {
	RecruitID    int64 `json:"recruitId"`
	IsBookmarked bool  `json:"isBookmarked"`
}

// RecruitService 招募帖、申请与审核
type RecruitService interface {
	Get(ctx context.Context, actorID, plubbingID int64) (*RecruitView, error)
	Update(ctx context.Context, actorID, plubbingID int64, req UpdateRecruitRequest) error
	UpdateQuestions(ctx context.Context, actorID, plubbingID int64, req QuestionsRequest) error
	Apply(ctx context.Context, actorID, plubbingID int64, req ApplyRequest) (int64, error)
	CancelApply(ctx context.Context, actorID, plubbingID int64) error
	ListApplicants(ctx context.Context, actorID, plubbingID int64) ([]ApplicantView, error)
	Accept(ctx context.Context, actorID, plubbingID, accountID int64) error
	Reject(ctx context.Context, actorID, plubbingID, accountID int64) error
	Close(ctx context.Context, actorID, plubbingID int64) error
	ToggleBookmark(ctx context.Context, actorID, plubbingID int64) (*BookmarkResult, error)
	ListBookmarks(ctx context.Context, actorID int64) ([]PlubbingCard, error)
	ListMyApplications(ctx context.Context, actorID int64) ([]PlubbingCard, error)
}

type recruitService struct {
	store  *repository.Store
	notify Notifier
	files  FileRemover
}

func NewRecruitService(store *repository.Store, notify Notifier, files FileRemover) RecruitService {
	if notify == nil {
		notify = NopNotifier{}
	}
	return &recruitService{store: store, notify: notify, files: files}
}

func (s *recruitService) Get(ctx context.Context, actorID, plubbingID int64) (*RecruitView, error) {
	p, err := activePlubbing(ctx, s.store, plubbingID)
	if err != nil {
		return nil, err
	}
	rc, err := s.store.Recruits.GetByPlubbing(ctx, plubbingID)
	if err != nil {
		return nil, err
	}
	if err := s.store.Recruits.IncreaseViews(ctx, rc.ID); err != nil {
		return nil, err
	}
	if err := s.store.Plubbings.IncreaseViews(ctx, plubbingID); err != nil {
		return nil, err
	}
	rc.Views++
	p.Views++

	cards, err := plubbingCards(ctx, s.store, actorID, []*model.Plubbing{p})
	if err != nil {
		return nil, err
	}
	questions, err := s.store.Recruits.ListQuestions(ctx, rc.ID)
	if err != nil {
		return nil, err
	}
	applied, err := s.store.Recruits.FindApplicant(ctx, rc.ID, actorID)
	if err != nil {
		return nil, err
	}
	members, err := s.store.Members.ListMembers(ctx, plubbingID)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, len(members))
	for i, m := range members {
		ids[i] = m.AccountID
	}
	accounts, err := s.store.Accounts.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	v := &RecruitView{
		PlubbingCard:  cards[0],
		RecruitID:     rc.ID,
		Introduce:     rc.Introduce,
		RecruitStatus: rc.Status,
		RecruitViews:  rc.Views,
		IsApplied:     applied != nil && applied.Status == model.ApplicantWaiting,
		Questions:     make([]QuestionView, len(questions)),
		Members:       make([]MemberView, 0, len(members)),
	}
	for i, q := range questions {
		v.Questions[i] = QuestionView{QuestionID: q.ID, Question: q.Title}
	}
	for _, m := range members {
		mv := MemberView{AccountID: m.AccountID, IsHost: m.IsHost}
		if a, ok := accounts[m.AccountID]; ok {
			mv.Nickname = a.Nickname
			mv.ProfileImage = a.ProfileImage
		}
		if m.IsHost && m.AccountID == actorID {
			v.IsHost = true
		}
		v.Members = append(v.Members, mv)
	}
	return v, nil
}

func (s *recruitService) Update(ctx context.Context, actorID, plubbingID int64, req UpdateRecruitRequest) error {
	var oldImage string
	err := s.store.Tx(ctx, func(tx *repository.Store) error {
		p, err := hostedPlubbing(ctx, tx, actorID, plubbingID)
		if err != nil {
			return err
		}
		rc, err := tx.Recruits.GetByPlubbing(ctx, plubbingID)
		if err != nil {
			return err
		}
		rc.Title = req.Title
		rc.Introduce = req.Introduce
		if err := tx.Recruits.Save(ctx, rc); err != nil {
			return err
		}
		if req.MainImage != "" && req.MainImage != p.MainImage {
			oldImage = p.MainImage
			p.MainImage = req.MainImage
			return tx.Plubbings.Save(ctx, p)
		}
		return nil
	})
	if err != nil {
		return err
	}
	discardReplaced(s.files, oldImage, req.MainImage)
	return nil
}

func (s *recruitService) UpdateQuestions(ctx context.Context, actorID, plubbingID int64, req QuestionsRequest) error {
	return s.store.Tx(ctx, func(tx *repository.Store) error {
		if _, err := hostedPlubbing(ctx, tx, actorID, plubbingID); err != nil {
			return err
		}
		rc, err := tx.Recruits.GetByPlubbing(ctx, plubbingID)
		if err != nil {
			return err
		}
		return tx.Recruits.ReplaceQuestions(ctx, rc.ID, req.Questions)
	})
}

// Apply 申请加入；答案必须对应该招募帖的问题
func (s *recruitService) Apply(ctx context.Context, actorID, plubbingID int64, req ApplyRequest) (int64, error) {
	var (
		applicant *model.AppliedAccount
		host      int64
		name      string
	)
	err := s.store.Tx(ctx, func(tx *repository.Store) error {
		p, err := activePlubbing(ctx, tx, plubbingID)
		if err != nil {
			return err
		}
		name = p.Name
		rc, err := tx.Recruits.GetByPlubbing(ctx, plubbingID)
		if err != nil {
			return err
		}
		if rc.Status != model.RecruitRecruiting {
			return errcode.New(errcode.ClosedRecruit)
		}
		if host, err = tx.Members.HostOf(ctx, plubbingID); err != nil {
			return err
		}
		if host == actorID {
			return errcode.New(errcode.HostCannotApply)
		}
		if ok, err := NewGuard(tx.Members).IsMember(ctx, actorID, plubbingID); err != nil {
			return err
		} else if ok {
			return errcode.New(errcode.AlreadyAccepted)
		}
		questions, err := tx.Recruits.ListQuestions(ctx, rc.ID)
		if err != nil {
			return err
		}
		known := make(map[int64]bool, len(questions))
		for _, q := range questions {
			known[q.ID] = true
		}
		answers := make([]model.Answer, 0, len(req.Answers))
		for _, a := range req.Answers {
			if !known[a.QuestionID] {
				return errcode.Newf(errcode.InvalidInputValue, "unknown question %d", a.QuestionID)
			}
			answers = append(answers, model.Answer{QuestionID: a.QuestionID, Content: a.Answer})
		}
		// 被拒绝或已退出的成员可以重新申请
		prev, err := tx.Recruits.FindApplicant(ctx, rc.ID, actorID)
		if err != nil {
			return err
		}
		if prev != nil && prev.Status != model.ApplicantWaiting {
			if err := tx.Recruits.DeleteApplicant(ctx, prev.ID); err != nil {
				return err
			}
		}
		applicant = &model.AppliedAccount{RecruitID: rc.ID, AccountID: actorID, Status: model.ApplicantWaiting}
		return tx.Recruits.CreateApplicant(ctx, applicant, answers)
	})
	if err != nil {
		return 0, err
	}
	if host != 0 {
		a, err := s.store.Accounts.GetByID(ctx, actorID)
		if err != nil {
			logger.Warn("apply notification: load applicant", zap.Int64("account_id", actorID), zap.Error(err))
		} else {
			s.notify.Notify(host, name, fmt.Sprintf("%s 님이 모임에 지원했어요.", a.Nickname))
		}
	}
	return applicant.ID, nil
}

// waitingApplicant 取等待中的申请
func waitingApplicant(ctx context.Context, tx *repository.Store, recruitID, accountID int64) (*model.AppliedAccount, error) {
	a, err := tx.Recruits.FindApplicant(ctx, recruitID, accountID)
	if err != nil {
		return nil, err
	}
	if a == nil || a.Status == model.ApplicantRejected {
		return nil, errcode.New(errcode.NotApplied)
	}
	if a.Status == model.ApplicantAccepted {
		return nil, errcode.New(errcode.AlreadyAccepted)
	}
	return a, nil
}

func (s *recruitService) CancelApply(ctx context.Context, actorID, plubbingID int64) error {
	return s.store.Tx(ctx, func(tx *repository.Store) error {
		rc, err := tx.Recruits.GetByPlubbing(ctx, plubbingID)
		if err != nil {
			return err
		}
		a, err := waitingApplicant(ctx, tx, rc.ID, actorID)
		if err != nil {
			return err
		}
		return tx.Recruits.DeleteApplicant(ctx, a.ID)
	})
}

// ListApplicants 组长查看等待中的申请及答案
func (s *recruitService) ListApplicants(ctx context.Context, actorID, plubbingID int64) ([]ApplicantView, error) {
	if _, err := hostedPlubbing(ctx, s.store, actorID, plubbingID); err != nil {
		return nil, err
	}
	rc, err := s.store.Recruits.GetByPlubbing(ctx, plubbingID)
	if err != nil {
		return nil, err
	}
	rows, err := s.store.Recruits.ListApplicants(ctx, rc.ID, model.ApplicantWaiting)
	if err != nil {
		return nil, err
	}
	questions, err := s.store.Recruits.ListQuestions(ctx, rc.ID)
	if err != nil {
		return nil, err
	}
	titles := make(map[int64]string, len(questions))
	for _, q := range questions {
		titles[q.ID] = q.Title
	}
	ids := make([]int64, len(rows))
	accountIDs := make([]int64, len(rows))
	for i, a := range rows {
		ids[i] = a.ID
		accountIDs[i] = a.AccountID
	}
	answers, err := s.store.Recruits.ListAnswers(ctx, ids)
	if err != nil {
		return nil, err
	}
	accounts, err := s.store.Accounts.ListByIDs(ctx, accountIDs)
	if err != nil {
		return nil, err
	}
	out := make([]ApplicantView, len(rows))
	for i, a := range rows {
		v := ApplicantView{AccountID: a.AccountID, AppliedAt: a.CreatedAt, Answers: make([]AnswerView, 0, len(answers[a.ID]))}
		if acc, ok := accounts[a.AccountID]; ok {
			v.Nickname = acc.Nickname
			v.ProfileImage = acc.ProfileImage
		}
		for _, ans := range answers[a.ID] {
			v.Answers = append(v.Answers, AnswerView{QuestionID: ans.QuestionID, Question: titles[ans.QuestionID], Answer: ans.Content})
		}
		out[i] = v
	}
	return out, nil
}

// Accept 接受申请：加入成员、人数 +1、生成系统动态；满员后关闭招募
func (s *recruitService) Accept(ctx context.Context, actorID, plubbingID, accountID int64) error {
	var name string
	err := s.store.Tx(ctx, func(tx *repository.Store) error {
		p, err := hostedPlubbing(ctx, tx, actorID, plubbingID)
		if err != nil {
			return err
		}
		name = p.Name
		rc, err := tx.Recruits.GetByPlubbing(ctx, plubbingID)
		if err != nil {
			return err
		}
		a, err := waitingApplicant(ctx, tx, rc.ID, accountID)
		if err != nil {
			return err
		}
		if p.CurAccountNum >= p.MaxAccountNum {
			return errcode.New(errcode.FullMember)
		}
		acc, err := tx.Accounts.GetByID(ctx, accountID)
		if err != nil {
			return err
		}
		if err := tx.Recruits.UpdateApplicantStatus(ctx, a.ID, model.ApplicantAccepted); err != nil {
			return err
		}
		if err := tx.Members.Join(ctx, accountID, plubbingID, false); err != nil {
			return err
		}
		if err := tx.Plubbings.AdjustMemberCount(ctx, plubbingID, 1); err != nil {
			return err
		}
		p.CurAccountNum++
		if _, err := CreateSystemFeed(ctx, tx, p, acc.Nickname); err != nil {
			return err
		}
		if p.CurAccountNum >= p.MaxAccountNum {
			rc.Status = model.RecruitEnd
			return tx.Recruits.Save(ctx, rc)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.notify.Notify(accountID, name, "모임 가입이 승인되었어요.")
	return nil
}

func (s *recruitService) Reject(ctx context.Context, actorID, plubbingID, accountID int64) error {
	var name string
	err := s.store.Tx(ctx, func(tx *repository.Store) error {
		p, err := hostedPlubbing(ctx, tx, actorID, plubbingID)
		if err != nil {
			return err
		}
		name = p.Name
		rc, err := tx.Recruits.GetByPlubbing(ctx, plubbingID)
		if err != nil {
			return err
		}
		a, err := waitingApplicant(ctx, tx, rc.ID, accountID)
		if err != nil {
			return err
		}
		return tx.Recruits.UpdateApplicantStatus(ctx, a.ID, model.ApplicantRejected)
	})
	if err != nil {
		return err
	}
	s.notify.Notify(accountID, name, "모임 가입이 거절되었어요.")
	return nil
}

// Close 组长关闭招募
func (s *recruitService) Close(ctx context.Context, actorID, plubbingID int64) error {
	return s.store.Tx(ctx, func(tx *repository.Store) error {
		if _, err := hostedPlubbing(ctx, tx, actorID, plubbingID); err != nil {
			return err
		}
		rc, err := tx.Recruits.GetByPlubbing(ctx, plubbingID)
		if err != nil {
			return err
		}
		if rc.Status == model.RecruitEnd {
			return errcode.New(errcode.ClosedRecruit)
		}
		rc.Status = model.RecruitEnd
		return tx.Recruits.Save(ctx, rc)
	})
}

func (s *recruitService) ToggleBookmark(ctx context.Context, actorID, plubbingID int64) (*BookmarkResult, error) {
	rc, err := s.store.Recruits.GetByPlubbing(ctx, plubbingID)
	if err != nil {
		return nil, err
	}
	on, err := s.store.Recruits.ToggleBookmark(ctx, actorID, rc.ID)
	if err != nil {
		return nil, err
	}
	return &BookmarkResult{RecruitID: rc.ID, IsBookmarked: on}, nil
}

func (s *recruitService) plubbingsOf(ctx context.Context, actorID int64, recruits []*model.Recruit) ([]PlubbingCard, error) {
	ids := make([]int64, len(recruits))
	for i, rc := range recruits {
		ids[i] = rc.PlubbingID
	}
	ps, err := s.store.Plubbings.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	visible := ps[:0]
	for _, p := range ps {
		if p.Visibility {
			visible = append(visible, p)
		}
	}
	return plubbingCards(ctx, s.store, actorID, visible)
}

func (s *recruitService) ListBookmarks(ctx context.Context, actorID int64) ([]PlubbingCard, error) {
	ids, err := s.store.Recruits.ListBookmarkedRecruitIDs(ctx, actorID)
	if err != nil {
		return nil, err
	}
	recruits, err := s.store.Recruits.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return s.plubbingsOf(ctx, actorID, recruits)
}

// ListMyApplications 我等待中的申请
func (s *recruitService) ListMyApplications(ctx context.Context, actorID int64) ([]PlubbingCard, error) {
	applied, err := s.store.Recruits.ListAppliedByAccount(ctx, actorID)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, len(applied))
	for i, a := range applied {
		ids[i] = a.RecruitID
	}
	recruits, err := s.store.Recruits.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return s.plubbingsOf(ctx, actorID, recruits)
}
