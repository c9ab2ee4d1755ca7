package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/PLUB2022/plub-server/internal/model"
	"github.com/PLUB2022/plub-server/internal/repository"
	"github.com/PLUB2022/plub-server/pkg/errcode"
	"github.com/PLUB2022/plub-server/pkg/logger"
	"github.com/PLUB2022/plub-server/pkg/pagination"
)

type CreatePlubbingRequest struct {
	SubCategoryIDs []int64     `json:"subCategoryIds" binding:"required,min=1,max=5"`
	Title          string      `json:"title" binding:"required,max=100"`
	Name           string      `json:"name" binding:"required,max=50"`
	Goal           string      `json:"goal" binding:"max=100"`
	Introduce      string      `json:"introduce" binding:"max=2000"`
	MainImage      string      `json:"mainImage" binding:"max=512"`
	Days           []string    `json:"days" binding:"dive,oneof=MON TUE WED THR FRI SAT SUN ALL"`
	Time           string      `json:"time" binding:"max=16"`
	OnOff          model.OnOff `json:"onOff" binding:"required,oneof=ON OFF"`
	Address        string      `json:"address" binding:"max=255"`
	PlaceName      string      `json:"placeName" binding:"max=100"`
	PositionX      float64     `json:"positionX"`
	PositionY      float64     `json:"positionY"`
	MaxAccountNum  int         `json:"maxAccountNum" binding:"required,min=4,max=20"`
	Questions      []string    `json:"questions" binding:"max=5,dive,max=255"`
}

type UpdatePlubbingRequest struct {
	Name          string      `json:"name" binding:"required,max=50"`
	Goal          string      `json:"goal" binding:"max=100"`
	MainImage     string      `json:"mainImage" binding:"max=512"`
	Days          []string    `json:"days" binding:"dive,oneof=MON TUE WED THR FRI SAT SUN ALL"`
	Time          string      `json:"time" binding:"max=16"`
	OnOff         model.OnOff `json:"onOff" binding:"required,oneof=ON OFF"`
	Address       string      `json:"address" binding:"max=255"`
	PlaceName     string      `json:"placeName" binding:"max=100"`
	PositionX     float64     `json:"positionX"`
	PositionY     float64     `json:"positionY"`
	MaxAccountNum int         `json:"maxAccountNum" binding:"required,min=4,max=20"`
}

type PlubbingCard struct {
	PlubbingID       int64                `json:"plubbingId"`
	Name             string               `json:"name"`
	Title            string               `json:"title"`
	Goal             string               `json:"goal"`
	MainImage        string               `json:"mainImage"`
	Days             []string             `json:"days"`
	Time             string               `json:"time"`
	Address          string               `json:"address"`
	PlaceName        string               `json:"placeName"`
	PositionX        float64              `json:"positionX"`
	PositionY        float64              `json:"positionY"`
	Status           model.PlubbingStatus `json:"status"`
	CurAccountNum    int                  `json:"curAccountNum"`
	MaxAccountNum    int                  `json:"maxAccountNum"`
	RemainAccountNum int                  `json:"remainAccountNum"`
	Views            int                  `json:"views"`
	IsBookmarked     bool                 `json:"isBookmarked"`
	IsHost           bool                 `json:"isHost"`
}

type MemberView struct {
	AccountID    int64  `json:"accountId"`
	Nickname     string `json:"nickname"`
	ProfileImage string `json:"profileImage"`
	IsHost       bool   `json:"isHost"`
}

type PlubbingMainView struct {
	PlubbingCard
	OnOff   model.OnOff  `json:"onOff"`
	Members []MemberView `json:"accountInfo"`
}

// PlubbingService 小组生命周期与列表
type PlubbingService interface {
	Create(ctx context.Context, actorID int64, req CreatePlubbingRequest) (int64, error)
	GetMain(ctx context.Context, actorID, plubbingID int64) (*PlubbingMainView, error)
	ListMine(ctx context.Context, actorID int64, isHost *bool, status model.MembershipStatus) ([]PlubbingCard, error)
	Update(ctx context.Context, actorID, plubbingID int64, req UpdatePlubbingRequest) error
	SoftDelete(ctx context.Context, actorID, plubbingID int64) error
	ToggleEnd(ctx context.Context, actorID, plubbingID int64) (model.PlubbingStatus, error)
	Leave(ctx context.Context, actorID, plubbingID int64) error
	ListByCategory(ctx context.Context, actorID, categoryID int64, req pagination.Request) (pagination.Page[PlubbingCard], error)
	Recommend(ctx context.Context, actorID int64, req pagination.Request) (pagination.Page[PlubbingCard], error)
}

type plubbingService struct {
	store *repository.Store
	files FileRemover
}

func NewPlubbingService(store *repository.Store, files FileRemover) PlubbingService {
	return &plubbingService{store: store, files: files}
}

func joinDays(days []string) string { return strings.Join(days, ",") }

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// checkSubCategories 子分类必须全部存在
func checkSubCategories(ctx context.Context, tx *repository.Store, ids []int64) error {
	cnt, err := tx.Categories.CountSubCategories(ctx, ids)
	if err != nil {
		return err
	}
	if cnt != int64(len(ids)) {
		return errcode.New(errcode.NotFoundSubCategory)
	}
	return nil
}

// hostedPlubbing 取小组并校验组长身份
func hostedPlubbing(ctx context.Context, tx *repository.Store, actorID, plubbingID int64) (*model.Plubbing, error) {
	p, err := tx.Plubbings.GetByID(ctx, plubbingID)
	if err != nil {
		return nil, err
	}
	if !p.Visibility || p.Status == model.PlubbingDeleted {
		return nil, errcode.New(errcode.DeletedStatusPlubbing)
	}
	if err := NewGuard(tx.Members).CheckHost(ctx, actorID, plubbingID); err != nil {
		return nil, err
	}
	return p, nil
}

// plubbingCards 组装卡片；收藏状态按招募帖计算
func plubbingCards(ctx context.Context, s *repository.Store, actorID int64, ps []*model.Plubbing) ([]PlubbingCard, error) {
	ids := make([]int64, len(ps))
	for i, p := range ps {
		ids[i] = p.ID
	}
	recruits, err := s.Recruits.ListByPlubbings(ctx, ids)
	if err != nil {
		return nil, err
	}
	bookmarked := map[int64]bool{}
	if actorID != 0 {
		rids, err := s.Recruits.ListBookmarkedRecruitIDs(ctx, actorID)
		if err != nil {
			return nil, err
		}
		for _, id := range rids {
			bookmarked[id] = true
		}
	}
	out := make([]PlubbingCard, len(ps))
	for i, p := range ps {
		c := PlubbingCard{
			PlubbingID:       p.ID,
			Name:             p.Name,
			Goal:             p.Goal,
			MainImage:        p.MainImage,
			Days:             p.DayList(),
			Time:             p.Time,
			Address:          p.Address,
			PlaceName:        p.PlaceName,
			PositionX:        p.PositionX,
			PositionY:        p.PositionY,
			Status:           p.Status,
			CurAccountNum:    p.CurAccountNum,
			MaxAccountNum:    p.MaxAccountNum,
			RemainAccountNum: p.MaxAccountNum - p.CurAccountNum,
			Views:            p.Views,
		}
		if rc, ok := recruits[p.ID]; ok {
			c.Title = rc.Title
			c.IsBookmarked = bookmarked[rc.ID]
		}
		out[i] = c
	}
	return out, nil
}

// Create 创建者成为组长；招募帖、问题、子分类在同一事务内写入
func (s *plubbingService) Create(ctx context.Context, actorID int64, req CreatePlubbingRequest) (int64, error) {
	var id int64
	req.SubCategoryIDs = uniqueIDs(req.SubCategoryIDs)
	err := s.store.Tx(ctx, func(tx *repository.Store) error {
		if err := checkSubCategories(ctx, tx, req.SubCategoryIDs); err != nil {
			return err
		}
		p := &model.Plubbing{
			Name:          req.Name,
			Goal:          req.Goal,
			MainImage:     req.MainImage,
			Status:        model.PlubbingActive,
			Visibility:    true,
			OnOff:         req.OnOff,
			Address:       req.Address,
			PlaceName:     req.PlaceName,
			PositionX:     req.PositionX,
			PositionY:     req.PositionY,
			Days:          joinDays(req.Days),
			Time:          req.Time,
			MaxAccountNum: req.MaxAccountNum,
			CurAccountNum: 1,
		}
		if err := tx.Plubbings.Create(ctx, p); err != nil {
			return err
		}
		if err := tx.Plubbings.AddSubCategories(ctx, p.ID, req.SubCategoryIDs); err != nil {
			return err
		}
		if err := tx.Members.Join(ctx, actorID, p.ID, true); err != nil {
			return err
		}
		rc := &model.Recruit{
			PlubbingID: p.ID,
			Title:      req.Title,
			Introduce:  req.Introduce,
			Status:     model.RecruitRecruiting,
		}
		if err := tx.Recruits.Create(ctx, rc, req.Questions); err != nil {
			return err
		}
		id = p.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	logger.Info("plubbing created", zap.Int64("plubbing_id", id), zap.Int64("host_id", actorID))
	return id, nil
}

// GetMain 成员可见的小组主页
func (s *plubbingService) GetMain(ctx context.Context, actorID, plubbingID int64) (*PlubbingMainView, error) {
	p, err := s.store.Plubbings.GetByID(ctx, plubbingID)
	if err != nil {
		return nil, err
	}
	if !p.Visibility {
		return nil, errcode.New(errcode.DeletedStatusPlubbing)
	}
	g := NewGuard(s.store.Members)
	if err := g.CheckMember(ctx, actorID, plubbingID); err != nil {
		return nil, err
	}
	cards, err := plubbingCards(ctx, s.store, actorID, []*model.Plubbing{p})
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
	v := &PlubbingMainView{PlubbingCard: cards[0], OnOff: p.OnOff, Members: make([]MemberView, 0, len(members))}
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

// ListMine 我参加的小组；isHost 为 nil 时不区分身份
func (s *plubbingService) ListMine(ctx context.Context, actorID int64, isHost *bool, status model.MembershipStatus) ([]PlubbingCard, error) {
	if status == "" {
		status = model.MembershipActive
	}
	ms, err := s.store.Members.ListByAccount(ctx, actorID, isHost, status)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, len(ms))
	hosts := make(map[int64]bool, len(ms))
	for i, m := range ms {
		ids[i] = m.PlubbingID
		hosts[m.PlubbingID] = m.IsHost
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
	cards, err := plubbingCards(ctx, s.store, actorID, visible)
	if err != nil {
		return nil, err
	}
	for i := range cards {
		cards[i].IsHost = hosts[cards[i].PlubbingID]
	}
	return cards, nil
}

func (s *plubbingService) Update(ctx context.Context, actorID, plubbingID int64, req UpdatePlubbingRequest) error {
	var oldImage string
	err := s.store.Tx(ctx, func(tx *repository.Store) error {
		p, err := hostedPlubbing(ctx, tx, actorID, plubbingID)
		if err != nil {
			return err
		}
		if req.MaxAccountNum < p.CurAccountNum {
			return errcode.Newf(errcode.InvalidInputValue, "maxAccountNum must be >= %d", p.CurAccountNum)
		}
		oldImage = p.MainImage
		p.Name = req.Name
		p.Goal = req.Goal
		p.MainImage = req.MainImage
		p.Days = joinDays(req.Days)
		p.Time = req.Time
		p.OnOff = req.OnOff
		p.Address = req.Address
		p.PlaceName = req.PlaceName
		p.PositionX = req.PositionX
		p.PositionY = req.PositionY
		p.MaxAccountNum = req.MaxAccountNum
		return tx.Plubbings.Save(ctx, p)
	})
	if err != nil {
		return err
	}
	discardReplaced(s.files, oldImage, req.MainImage)
	return nil
}

// SoftDelete 组长删除：小组不可见，成员关系结束，招募关闭
func (s *plubbingService) SoftDelete(ctx context.Context, actorID, plubbingID int64) error {
	return s.store.Tx(ctx, func(tx *repository.Store) error {
		p, err := hostedPlubbing(ctx, tx, actorID, plubbingID)
		if err != nil {
			return err
		}
		p.Visibility = false
		p.Status = model.PlubbingDeleted
		if err := tx.Plubbings.Save(ctx, p); err != nil {
			return err
		}
		if err := tx.Members.UpdateAllStatus(ctx, plubbingID, model.MembershipEnd); err != nil {
			return err
		}
		rc, err := tx.Recruits.GetByPlubbing(ctx, plubbingID)
		if errcode.IsKind(err, errcode.NotFoundRecruit) {
			return nil
		}
		if err != nil {
			return err
		}
		rc.Status = model.RecruitEnd
		return tx.Recruits.Save(ctx, rc)
	})
}

// ToggleEnd ACTIVE ↔ END，返回切换后的状态
func (s *plubbingService) ToggleEnd(ctx context.Context, actorID, plubbingID int64) (model.PlubbingStatus, error) {
	var status model.PlubbingStatus
	err := s.store.Tx(ctx, func(tx *repository.Store) error {
		p, err := tx.Plubbings.GetByID(ctx, plubbingID)
		if err != nil {
			return err
		}
		if !p.Visibility {
			return errcode.New(errcode.DeletedStatusPlubbing)
		}
		// END 状态下成员关系也是 END，只能按 is_host 查组长
		host, err := tx.Members.HostOf(ctx, plubbingID)
		if err != nil {
			return err
		}
		if host != actorID {
			return errcode.New(errcode.NotHostError)
		}
		member := model.MembershipEnd
		status = model.PlubbingEnd
		if p.Status == model.PlubbingEnd {
			member = model.MembershipActive
			status = model.PlubbingActive
		}
		if err := tx.Plubbings.UpdateStatus(ctx, plubbingID, status); err != nil {
			return err
		}
		return tx.Members.UpdateAllStatus(ctx, plubbingID, member)
	})
	return status, err
}

// Leave 非组长成员退出
func (s *plubbingService) Leave(ctx context.Context, actorID, plubbingID int64) error {
	return s.store.Tx(ctx, func(tx *repository.Store) error {
		if _, err := activePlubbing(ctx, tx, plubbingID); err != nil {
			return err
		}
		m, err := tx.Members.Find(ctx, actorID, plubbingID)
		if err != nil {
			return err
		}
		if m == nil || m.Status != model.MembershipActive {
			return errcode.New(errcode.NotMemberError)
		}
		if m.IsHost {
			return errcode.New(errcode.HostCannotLeave)
		}
		if err := tx.Members.UpdateStatus(ctx, actorID, plubbingID, model.MembershipExit); err != nil {
			return err
		}
		return tx.Plubbings.AdjustMemberCount(ctx, plubbingID, -1)
	})
}

func (s *plubbingService) page(ctx context.Context, actorID int64, req pagination.Request, rows []*model.Plubbing, total int64) (pagination.Page[PlubbingCard], error) {
	cards, err := plubbingCards(ctx, s.store, actorID, rows)
	if err != nil {
		return pagination.Page[PlubbingCard]{}, err
	}
	return pagination.OfOffset(cards, req, total), nil
}

// ListByCategory 按大分类下的全部子分类分页
func (s *plubbingService) ListByCategory(ctx context.Context, actorID, categoryID int64, req pagination.Request) (pagination.Page[PlubbingCard], error) {
	req = req.Normalize()
	if _, err := s.store.Categories.GetCategory(ctx, categoryID); err != nil {
		return pagination.Page[PlubbingCard]{}, err
	}
	subs, err := s.store.Categories.ListSubCategories(ctx, categoryID)
	if err != nil {
		return pagination.Page[PlubbingCard]{}, err
	}
	ids := make([]int64, len(subs))
	for i, sc := range subs {
		ids[i] = sc.ID
	}
	rows, total, err := s.store.Plubbings.ListBySubCategories(ctx, ids, req.Offset(), req.Size)
	if err != nil {
		return pagination.Page[PlubbingCard]{}, err
	}
	return s.page(ctx, actorID, req, rows, total)
}

// Recommend 有兴趣分类时按兴趣推荐，否则按浏览量
func (s *plubbingService) Recommend(ctx context.Context, actorID int64, req pagination.Request) (pagination.Page[PlubbingCard], error) {
	req = req.Normalize()
	interests, err := s.store.Accounts.ListCategoryIDs(ctx, actorID)
	if err != nil {
		return pagination.Page[PlubbingCard]{}, err
	}
	var (
		rows  []*model.Plubbing
		total int64
	)
	if len(interests) == 0 {
		rows, total, err = s.store.Plubbings.ListByViews(ctx, req.Offset(), req.Size)
	} else {
		rows, total, err = s.store.Plubbings.ListBySubCategories(ctx, interests, req.Offset(), req.Size)
	}
	if err != nil {
		return pagination.Page[PlubbingCard]{}, err
	}
	return s.page(ctx, actorID, req, rows, total)
}
