package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/PLUB2022/plub-server/internal/model"
	"github.com/PLUB2022/plub-server/internal/repository"
	"github.com/PLUB2022/plub-server/pkg/errcode"
	"github.com/PLUB2022/plub-server/pkg/logger"
	"github.com/PLUB2022/plub-server/pkg/pagination"
)

type NoticeRequest struct {
	Title   string `json:"title" binding:"required,max=100"`
	Content string `json:"content" binding:"max=2000"`
}

type NoticeCommentRequest struct {
	Content string `json:"content" binding:"required,max=1000"`
}

type NoticeView struct {
	NoticeID     int64     `json:"noticeId"`
	PlubbingID   int64     `json:"plubbingId"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"createdAt"`
	AccountID    int64     `json:"accountId"`
	Nickname     string    `json:"nickname"`
	ProfileImage string    `json:"profileImage"`
	LikeCount    int       `json:"likeCount"`
	CommentCount int       `json:"commentCount"`
	IsHost       bool      `json:"isHost"`
	IsLike       bool      `json:"isLike"`
}

type NoticeCommentView struct {
	CommentID       int64     `json:"commentId"`
	NoticeID        int64     `json:"noticeId"`
	Content         string    `json:"content"`
	AccountID       int64     `json:"accountId"`
	Nickname        string    `json:"nickname"`
	ProfileImage    string    `json:"profileImage"`
	CreatedAt       time.Time `json:"createdAt"`
	IsCommentAuthor bool      `json:"isCommentAuthor"`
	IsNoticeAuthor  bool      `json:"isNoticeAuthor"`
}

// NoticeService 公告：组长发布，成员阅读、点赞、评论
type NoticeService interface {
	Create(ctx context.Context, actorID, plubbingID int64, req NoticeRequest) (int64, error)
	List(ctx context.Context, actorID, plubbingID int64, req pagination.Request) (pagination.Page[NoticeView], error)
	Get(ctx context.Context, actorID, plubbingID, noticeID int64) (*NoticeView, error)
	Update(ctx context.Context, actorID, plubbingID, noticeID int64, req NoticeRequest) (*NoticeView, error)
	SoftDelete(ctx context.Context, actorID, plubbingID, noticeID int64) error
	Like(ctx context.Context, actorID, plubbingID, noticeID int64) (*LikeResult, error)
	CreateComment(ctx context.Context, actorID, plubbingID, noticeID int64, req NoticeCommentRequest) (*NoticeCommentView, error)
	UpdateComment(ctx context.Context, actorID, plubbingID, noticeID, commentID int64, req NoticeCommentRequest) (*NoticeCommentView, error)
	DeleteComment(ctx context.Context, actorID, plubbingID, noticeID, commentID int64) error
	ListComments(ctx context.Context, actorID, plubbingID, noticeID int64, req pagination.Request) (pagination.Page[NoticeCommentView], error)
}

type noticeService struct {
	store *repository.Store
}

func NewNoticeService(store *repository.Store) NoticeService {
	return &noticeService{store: store}
}

// visibleNotice 公告存在、属于该小组且未删除
func visibleNotice(ctx context.Context, s *repository.Store, plubbingID, noticeID int64) (*model.Notice, error) {
	n, err := s.Notices.GetByID(ctx, noticeID)
	if err != nil {
		return nil, err
	}
	if n.PlubbingID != plubbingID {
		return nil, errcode.New(errcode.NotFoundNotice)
	}
	if !n.Visibility {
		return nil, errcode.New(errcode.DeletedStatusNotice)
	}
	return n, nil
}

func (s *noticeService) views(ctx context.Context, actorID int64, notices []*model.Notice) ([]NoticeView, error) {
	ids := make([]int64, len(notices))
	for i, n := range notices {
		ids[i] = n.AccountID
	}
	authors, err := s.store.Accounts.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]NoticeView, len(notices))
	for i, n := range notices {
		liked, err := s.store.Notices.IsLiked(ctx, actorID, n.ID)
		if err != nil {
			return nil, err
		}
		out[i] = NoticeView{
			NoticeID:     n.ID,
			PlubbingID:   n.PlubbingID,
			Title:        n.Title,
			Content:      n.Content,
			CreatedAt:    n.CreatedAt,
			AccountID:    n.AccountID,
			LikeCount:    n.LikeCount,
			CommentCount: n.CommentCount,
			IsHost:       n.AccountID == actorID,
			IsLike:       liked,
		}
		if a, ok := authors[n.AccountID]; ok {
			out[i].Nickname = a.Nickname
			out[i].ProfileImage = a.ProfileImage
		}
	}
	return out, nil
}

func (s *noticeService) Create(ctx context.Context, actorID, plubbingID int64, req NoticeRequest) (int64, error) {
	n := &model.Notice{PlubbingID: plubbingID, AccountID: actorID, Title: req.Title, Content: req.Content, Visibility: true}
	err := s.store.Tx(ctx, func(tx *repository.Store) error {
		if _, err := activePlubbing(ctx, tx, plubbingID); err != nil {
			return err
		}
		if err := NewGuard(tx.Members).CheckHost(ctx, actorID, plubbingID); err != nil {
			return err
		}
		return tx.Notices.Create(ctx, n)
	})
	if err != nil {
		return 0, err
	}
	logger.Debug("notice created", zap.Int64("plubbing_id", plubbingID), zap.Int64("notice_id", n.ID))
	return n.ID, nil
}

func (s *noticeService) List(ctx context.Context, actorID, plubbingID int64, req pagination.Request) (pagination.Page[NoticeView], error) {
	req = req.Normalize()
	if err := NewGuard(s.store.Members).CheckMember(ctx, actorID, plubbingID); err != nil {
		return pagination.Page[NoticeView]{}, err
	}
	rows, total, err := s.store.Notices.List(ctx, plubbingID, req.Offset(), req.Size)
	if err != nil {
		return pagination.Page[NoticeView]{}, err
	}
	views, err := s.views(ctx, actorID, rows)
	if err != nil {
		return pagination.Page[NoticeView]{}, err
	}
	return pagination.OfOffset(views, req, total), nil
}

func (s *noticeService) Get(ctx context.Context, actorID, plubbingID, noticeID int64) (*NoticeView, error) {
	n, err := visibleNotice(ctx, s.store, plubbingID, noticeID)
	if err != nil {
		return nil, err
	}
	if err := NewGuard(s.store.Members).CheckMember(ctx, actorID, plubbingID); err != nil {
		return nil, err
	}
	views, err := s.views(ctx, actorID, []*model.Notice{n})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// hostedNotice 只有组长能改删公告
func hostedNotice(ctx context.Context, tx *repository.Store, actorID, plubbingID, noticeID int64) (*model.Notice, error) {
	n, err := visibleNotice(ctx, tx, plubbingID, noticeID)
	if err != nil {
		return nil, err
	}
	if err := NewGuard(tx.Members).CheckHost(ctx, actorID, plubbingID); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *noticeService) Update(ctx context.Context, actorID, plubbingID, noticeID int64, req NoticeRequest) (*NoticeView, error) {
	err := s.store.Tx(ctx, func(tx *repository.Store) error {
		if _, err := hostedNotice(ctx, tx, actorID, plubbingID, noticeID); err != nil {
			return err
		}
		return tx.Notices.Update(ctx, noticeID, req.Title, req.Content)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, actorID, plubbingID, noticeID)
}

func (s *noticeService) SoftDelete(ctx context.Context, actorID, plubbingID, noticeID int64) error {
	return s.store.Tx(ctx, func(tx *repository.Store) error {
		if _, err := hostedNotice(ctx, tx, actorID, plubbingID, noticeID); err != nil {
			return err
		}
		return tx.Notices.SoftDelete(ctx, noticeID)
	})
}

func (s *noticeService) Like(ctx context.Context, actorID, plubbingID, noticeID int64) (*LikeResult, error) {
	var liked bool
	err := s.store.Tx(ctx, func(tx *repository.Store) error {
		if _, err := visibleNotice(ctx, tx, plubbingID, noticeID); err != nil {
			return err
		}
		if err := NewGuard(tx.Members).CheckMember(ctx, actorID, plubbingID); err != nil {
			return err
		}
		var err error
		liked, err = tx.Notices.ToggleLike(ctx, actorID, noticeID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &LikeResult{ID: noticeID, IsLike: liked}, nil
}

func (s *noticeService) commentViews(ctx context.Context, actorID int64, n *model.Notice, comments []*model.NoticeComment) ([]NoticeCommentView, error) {
	ids := make([]int64, len(comments))
	for i, c := range comments {
		ids[i] = c.AccountID
	}
	authors, err := s.store.Accounts.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]NoticeCommentView, len(comments))
	for i, c := range comments {
		out[i] = NoticeCommentView{
			CommentID:       c.ID,
			NoticeID:        c.NoticeID,
			Content:         c.Content,
			AccountID:       c.AccountID,
			CreatedAt:       c.CreatedAt,
			IsCommentAuthor: c.AccountID == actorID,
			IsNoticeAuthor:  n.AccountID == actorID,
		}
		if a, ok := authors[c.AccountID]; ok {
			out[i].Nickname = a.Nickname
			out[i].ProfileImage = a.ProfileImage
		}
	}
	return out, nil
}

func (s *noticeService) CreateComment(ctx context.Context, actorID, plubbingID, noticeID int64, req NoticeCommentRequest) (*NoticeCommentView, error) {
	var (
		notice  *model.Notice
		comment = &model.NoticeComment{NoticeID: noticeID, AccountID: actorID, Content: req.Content, Visibility: true}
	)
	err := s.store.Tx(ctx, func(tx *repository.Store) error {
		var err error
		if notice, err = visibleNotice(ctx, tx, plubbingID, noticeID); err != nil {
			return err
		}
		if err = NewGuard(tx.Members).CheckMember(ctx, actorID, plubbingID); err != nil {
			return err
		}
		if err = tx.Notices.CreateComment(ctx, comment); err != nil {
			return err
		}
		return tx.Notices.AdjustCommentCount(ctx, noticeID, 1)
	})
	if err != nil {
		return nil, err
	}
	views, err := s.commentViews(ctx, actorID, notice, []*model.NoticeComment{comment})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// editableComment 评论存在、可见且属于该公告
func editableComment(ctx context.Context, tx *repository.Store, plubbingID, noticeID, commentID int64) (*model.Notice, *model.NoticeComment, error) {
	n, err := visibleNotice(ctx, tx, plubbingID, noticeID)
	if err != nil {
		return nil, nil, err
	}
	c, err := tx.Notices.GetComment(ctx, commentID)
	if err != nil {
		return nil, nil, err
	}
	if c.NoticeID != noticeID {
		return nil, nil, errcode.New(errcode.NotFoundNoticeComment)
	}
	if !c.Visibility {
		return nil, nil, errcode.New(errcode.DeletedStatusNoticeComment)
	}
	return n, c, nil
}

func (s *noticeService) UpdateComment(ctx context.Context, actorID, plubbingID, noticeID, commentID int64, req NoticeCommentRequest) (*NoticeCommentView, error) {
	var (
		notice  *model.Notice
		comment *model.NoticeComment
	)
	err := s.store.Tx(ctx, func(tx *repository.Store) error {
		var err error
		if notice, comment, err = editableComment(ctx, tx, plubbingID, noticeID, commentID); err != nil {
			return err
		}
		if comment.AccountID != actorID {
			return errcode.New(errcode.NotNoticeAuthorError)
		}
		comment.Content = req.Content
		return tx.Notices.UpdateComment(ctx, commentID, req.Content)
	})
	if err != nil {
		return nil, err
	}
	views, err := s.commentViews(ctx, actorID, notice, []*model.NoticeComment{comment})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// DeleteComment 评论作者或公告作者可删
func (s *noticeService) DeleteComment(ctx context.Context, actorID, plubbingID, noticeID, commentID int64) error {
	return s.store.Tx(ctx, func(tx *repository.Store) error {
		n, c, err := editableComment(ctx, tx, plubbingID, noticeID, commentID)
		if err != nil {
			return err
		}
		if c.AccountID != actorID && n.AccountID != actorID {
			return errcode.New(errcode.NotNoticeAuthorError)
		}
		ok, err := tx.Notices.SoftDeleteComment(ctx, commentID)
		if err != nil || !ok {
			return err
		}
		return tx.Notices.AdjustCommentCount(ctx, noticeID, -1)
	})
}

// ListComments 按 id 正序，cursorId 为上一页最后一条
func (s *noticeService) ListComments(ctx context.Context, actorID, plubbingID, noticeID int64, req pagination.Request) (pagination.Page[NoticeCommentView], error) {
	req = req.Normalize()
	n, err := visibleNotice(ctx, s.store, plubbingID, noticeID)
	if err != nil {
		return pagination.Page[NoticeCommentView]{}, err
	}
	if err := NewGuard(s.store.Members).CheckMember(ctx, actorID, plubbingID); err != nil {
		return pagination.Page[NoticeCommentView]{}, err
	}
	rows, err := s.store.Notices.ListComments(ctx, noticeID, req.CursorID, req.Size+1)
	if err != nil {
		return pagination.Page[NoticeCommentView]{}, err
	}
	page := pagination.OfCursor(rows, req.Size, int64(n.CommentCount))
	views, err := s.commentViews(ctx, actorID, n, page.Content)
	if err != nil {
		return pagination.Page[NoticeCommentView]{}, err
	}
	return pagination.Page[NoticeCommentView]{TotalElements: page.TotalElements, Last: page.Last, Content: views}, nil
}
