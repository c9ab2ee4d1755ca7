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
	"github.com/PLUB2022/plub-server/pkg/pagination"
)

type FeedRequest struct {
	Title     string `json:"title" binding:"required,max=100"`
	Content   string `json:"content" binding:"max=2000"`
	FeedImage string `json:"feedImage" binding:"max=512"`
}

type CommentRequest struct {
	Content         string `json:"content" binding:"required,max=1000"`
	ParentCommentID *int64 `json:"parentCommentId"`
}

type FeedCard struct {
	FeedID       int64          `json:"feedId"`
	ViewType     model.ViewType `json:"viewType"`
	Title        string         `json:"title"`
	Content      string         `json:"content"`
	FeedImage    string         `json:"feedImage"`
	CreatedAt    time.Time      `json:"createdAt"`
	Pin          bool           `json:"pin"`
	PinnedAt     *time.Time     `json:"pinedAt"`
	AccountID    int64          `json:"accountId"`
	Nickname     string         `json:"nickname"`
	ProfileImage string         `json:"profileImage"`
	LikeCount    int            `json:"likeCount"`
	CommentCount int            `json:"commentCount"`
	IsAuthor     bool           `json:"isAuthor"`
	IsHost       bool           `json:"isHost"`
	IsLike       bool           `json:"isLike"`
}

type CommentView struct {
	CommentID       int64     `json:"commentId"`
	FeedID          int64     `json:"feedId"`
	ParentCommentID *int64    `json:"parentCommentId"`
	CommentGroupID  int64     `json:"commentGroupId"`
	Content         string    `json:"content"`
	AccountID       int64     `json:"accountId"`
	Nickname        string    `json:"nickname"`
	ProfileImage    string    `json:"profileImage"`
	CreatedAt       time.Time `json:"createdAt"`
	IsCommentAuthor bool      `json:"isCommentAuthor"`
	IsFeedAuthor    bool      `json:"isFeedAuthor"`
}

type LikeResult struct {
	ID     int64 `json:"id"`
	IsLike bool  `json:"isLike"`
}

// FeedService 动态与评论
type FeedService interface {
	CreateFeed(ctx context.Context, actorID, plubbingID int64, req FeedRequest) (int64, error)
	ListFeeds(ctx context.Context, actorID, plubbingID int64, req pagination.Request) (pagination.Page[FeedCard], error)
	ListPinnedFeeds(ctx context.Context, actorID, plubbingID int64) ([]FeedCard, error)
	ListMyFeeds(ctx context.Context, actorID, plubbingID int64, req pagination.Request) (pagination.Page[FeedCard], error)
	GetFeed(ctx context.Context, actorID, plubbingID, feedID int64) (*FeedCard, error)
	UpdateFeed(ctx context.Context, actorID, plubbingID, feedID int64, req FeedRequest) (*FeedCard, error)
	SoftDeleteFeed(ctx context.Context, actorID, plubbingID, feedID int64) error
	PinFeed(ctx context.Context, actorID, plubbingID, feedID int64) error
	UnpinFeed(ctx context.Context, actorID, plubbingID, feedID int64) error
	LikeFeed(ctx context.Context, actorID, plubbingID, feedID int64) (*LikeResult, error)
	CreateComment(ctx context.Context, actorID, plubbingID, feedID int64, req CommentRequest) (*CommentView, error)
	UpdateComment(ctx context.Context, actorID, plubbingID, feedID, commentID int64, content string) (*CommentView, error)
	DeleteComment(ctx context.Context, actorID, plubbingID, feedID, commentID int64) (int, error)
	ListComments(ctx context.Context, actorID, plubbingID, feedID int64, req pagination.Request) (pagination.Page[CommentView], error)
	ReportComment(ctx context.Context, actorID, plubbingID, feedID, commentID int64, req ReportRequest) (int64, error)
}

type feedService struct {
	store   *repository.Store
	notify  Notifier
	reports ReportService
	now     func() time.Time
}

func NewFeedService(store *repository.Store, notify Notifier, reports ReportService) FeedService {
	if notify == nil {
		notify = NopNotifier{}
	}
	return &feedService{store: store, notify: notify, reports: reports, now: time.Now}
}

// activePlubbing 小组存在且未删除/结束
func activePlubbing(ctx context.Context, s *repository.Store, plubbingID int64) (*model.Plubbing, error) {
	p, err := s.Plubbings.GetByID(ctx, plubbingID)
	if err != nil {
		return nil, err
	}
	if !p.Active() {
		return nil, errcode.New(errcode.DeletedStatusPlubbing)
	}
	return p, nil
}

// visibleFeed 动态存在、属于该小组且未删除
func visibleFeed(ctx context.Context, s *repository.Store, plubbingID, feedID int64) (*model.Feed, error) {
	f, err := s.Feeds.GetByID(ctx, feedID)
	if err != nil {
		return nil, err
	}
	if f.PlubbingID != plubbingID {
		return nil, errcode.New(errcode.NotFoundFeed)
	}
	if !f.Visibility {
		return nil, errcode.New(errcode.DeletedStatusFeed)
	}
	return f, nil
}

func (s *feedService) CreateFeed(ctx context.Context, actorID, plubbingID int64, req FeedRequest) (int64, error) {
	var id int64
	err := s.store.Tx(ctx, func(tx *repository.Store) error {
		if _, err := activePlubbing(ctx, tx, plubbingID); err != nil {
			return err
		}
		if err := NewGuard(tx.Members).CheckMember(ctx, actorID, plubbingID); err != nil {
			return err
		}
		f := &model.Feed{
			PlubbingID: plubbingID,
			AccountID:  actorID,
			Title:      req.Title,
			Content:    req.Content,
			FeedImage:  req.FeedImage,
			ViewType:   model.ViewNormal,
			Visibility: true,
		}
		if err := tx.Feeds.Create(ctx, f); err != nil {
			return err
		}
		id = f.ID
		return nil
	})
	return id, err
}

// CreateSystemFeed 新成员加入时的系统动态，tx 由调用方提供
func CreateSystemFeed(ctx context.Context, tx *repository.Store, plubbing *model.Plubbing, nickname string) (*model.Feed, error) {
	f := &model.Feed{
		PlubbingID: plubbing.ID,
		AccountID:  0,
		Title:      fmt.Sprintf("%d번째 멤버와 함께 갑니다.", plubbing.CurAccountNum),
		Content:    fmt.Sprintf("<b>%s</b> 님이 <b>%s</b> 에 들어왔어요", nickname, plubbing.Name),
		ViewType:   model.ViewSystem,
		Visibility: true,
	}
	if err := tx.Feeds.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *feedService) cards(ctx context.Context, actorID, plubbingID int64, feeds []*model.Feed) ([]FeedCard, error) {
	isHost, err := NewGuard(s.store.Members).IsHost(ctx, actorID, plubbingID)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(feeds))
	authorIDs := make([]int64, 0, len(feeds))
	for _, f := range feeds {
		ids = append(ids, f.ID)
		authorIDs = append(authorIDs, f.AccountID)
	}
	authors, err := s.store.Accounts.ListByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	liked, err := s.store.Feeds.LikedFeedIDs(ctx, actorID, ids)
	if err != nil {
		return nil, err
	}
	out := make([]FeedCard, len(feeds))
	for i, f := range feeds {
		out[i] = FeedCard{
			FeedID:       f.ID,
			ViewType:     f.ViewType,
			Title:        f.Title,
			Content:      f.Content,
			FeedImage:    f.FeedImage,
			CreatedAt:    f.CreatedAt,
			Pin:          f.Pin,
			PinnedAt:     f.PinnedAt,
			AccountID:    f.AccountID,
			LikeCount:    f.LikeCount,
			CommentCount: f.CommentCount,
			IsAuthor:     f.AccountID == actorID,
			IsHost:       isHost,
			IsLike:       liked[f.ID],
		}
		if a, ok := authors[f.AccountID]; ok {
			out[i].Nickname = a.Nickname
			out[i].ProfileImage = a.ProfileImage
		}
	}
	return out, nil
}

func (s *feedService) checkReadable(ctx context.Context, actorID, plubbingID int64) error {
	if _, err := s.store.Plubbings.GetByID(ctx, plubbingID); err != nil {
		return err
	}
	return NewGuard(s.store.Members).CheckMember(ctx, actorID, plubbingID)
}

// ListFeeds 非置顶动态，按创建倒序游标分页
func (s *feedService) ListFeeds(ctx context.Context, actorID, plubbingID int64, req pagination.Request) (pagination.Page[FeedCard], error) {
	req = req.Normalize()
	if err := s.checkReadable(ctx, actorID, plubbingID); err != nil {
		return pagination.Page[FeedCard]{}, err
	}
	rows, err := s.store.Feeds.ListByPlubbing(ctx, plubbingID, req.CursorID, req.Size+1)
	if err != nil {
		return pagination.Page[FeedCard]{}, err
	}
	total, err := s.store.Feeds.CountByPlubbing(ctx, plubbingID)
	if err != nil {
		return pagination.Page[FeedCard]{}, err
	}
	page := pagination.OfCursor(rows, req.Size, total)
	cards, err := s.cards(ctx, actorID, plubbingID, page.Content)
	if err != nil {
		return pagination.Page[FeedCard]{}, err
	}
	return pagination.Page[FeedCard]{TotalElements: page.TotalElements, Last: page.Last, Content: cards}, nil
}

func (s *feedService) ListPinnedFeeds(ctx context.Context, actorID, plubbingID int64) ([]FeedCard, error) {
	if err := s.checkReadable(ctx, actorID, plubbingID); err != nil {
		return nil, err
	}
	rows, err := s.store.Feeds.ListPinned(ctx, plubbingID)
	if err != nil {
		return nil, err
	}
	return s.cards(ctx, actorID, plubbingID, rows)
}

func (s *feedService) ListMyFeeds(ctx context.Context, actorID, plubbingID int64, req pagination.Request) (pagination.Page[FeedCard], error) {
	req = req.Normalize()
	if err := s.checkReadable(ctx, actorID, plubbingID); err != nil {
		return pagination.Page[FeedCard]{}, err
	}
	rows, err := s.store.Feeds.ListByAccount(ctx, plubbingID, actorID, req.CursorID, req.Size+1)
	if err != nil {
		return pagination.Page[FeedCard]{}, err
	}
	total, err := s.store.Feeds.CountByAccount(ctx, plubbingID, actorID)
	if err != nil {
		return pagination.Page[FeedCard]{}, err
	}
	page := pagination.OfCursor(rows, req.Size, total)
	cards, err := s.cards(ctx, actorID, plubbingID, page.Content)
	if err != nil {
		return pagination.Page[FeedCard]{}, err
	}
	return pagination.Page[FeedCard]{TotalElements: page.TotalElements, Last: page.Last, Content: cards}, nil
}

func (s *feedService) GetFeed(ctx context.Context, actorID, plubbingID, feedID int64) (*FeedCard, error) {
	f, err := visibleFeed(ctx, s.store, plubbingID, feedID)
	if err != nil {
		return nil, err
	}
	if err := NewGuard(s.store.Members).CheckMember(ctx, actorID, plubbingID); err != nil {
		return nil, err
	}
	cards, err := s.cards(ctx, actorID, plubbingID, []*model.Feed{f})
	if err != nil {
		return nil, err
	}
	return &cards[0], nil
}

// editableFeed 检查顺序：存在 → 可见 → 非系统动态 → 作者
func editableFeed(ctx context.Context, tx *repository.Store, actorID, plubbingID, feedID int64) (*model.Feed, error) {
	f, err := visibleFeed(ctx, tx, plubbingID, feedID)
	if err != nil {
		return nil, err
	}
	if f.IsSystem() {
		return nil, errcode.New(errcode.CannotDeleteFeed)
	}
	if f.AccountID != actorID {
		return nil, errcode.New(errcode.NotFeedAuthorError)
	}
	return f, nil
}

func (s *feedService) UpdateFeed(ctx context.Context, actorID, plubbingID, feedID int64, req FeedRequest) (*FeedCard, error) {
	err := s.store.Tx(ctx, func(tx *repository.Store) error {
		if _, err := editableFeed(ctx, tx, actorID, plubbingID, feedID); err != nil {
			return err
		}
		return tx.Feeds.UpdateContent(ctx, feedID, req.Title, req.Content, req.FeedImage)
	})
	if err != nil {
		return nil, err
	}
	return s.GetFeed(ctx, actorID, plubbingID, feedID)
}

func (s *feedService) SoftDeleteFeed(ctx context.Context, actorID, plubbingID, feedID int64) error {
	return s.store.Tx(ctx, func(tx *repository.Store) error {
		if _, err := editableFeed(ctx, tx, actorID, plubbingID, feedID); err != nil {
			return err
		}
		return tx.Feeds.SoftDelete(ctx, feedID)
	})
}

// PinFeed 组长置顶；每个小组最多 model.MaxPinnedFeeds 条，已置顶则直接返回
func (s *feedService) PinFeed(ctx context.Context, actorID, plubbingID, feedID int64) error {
	return s.store.Tx(ctx, func(tx *repository.Store) error {
		f, err := visibleFeed(ctx, tx, plubbingID, feedID)
		if err != nil {
			return err
		}
		if err := NewGuard(tx.Members).CheckHost(ctx, actorID, plubbingID); err != nil {
			return err
		}
		if f.Pin {
			return nil
		}
		if err := tx.Plubbings.Lock(ctx, plubbingID); err != nil {
			return err
		}
		cnt, err := tx.Feeds.CountPinned(ctx, plubbingID)
		if err != nil {
			return err
		}
		if cnt >= model.MaxPinnedFeeds {
			return errcode.New(errcode.MaxFeedPin)
		}
		now := s.now()
		return tx.Feeds.SetPin(ctx, feedID, &now)
	})
}

func (s *feedService) UnpinFeed(ctx context.Context, actorID, plubbingID, feedID int64) error {
	return s.store.Tx(ctx, func(tx *repository.Store) error {
		f, err := visibleFeed(ctx, tx, plubbingID, feedID)
		if err != nil {
			return err
		}
		if err := NewGuard(tx.Members).CheckHost(ctx, actorID, plubbingID); err != nil {
			return err
		}
		if !f.Pin {
			return nil
		}
		return tx.Feeds.SetPin(ctx, feedID, nil)
	})
}

func (s *feedService) LikeFeed(ctx context.Context, actorID, plubbingID, feedID int64) (*LikeResult, error) {
	var liked bool
	err := s.store.Tx(ctx, func(tx *repository.Store) error {
		if _, err := visibleFeed(ctx, tx, plubbingID, feedID); err != nil {
			return err
		}
		if err := NewGuard(tx.Members).CheckMember(ctx, actorID, plubbingID); err != nil {
			return err
		}
		var err error
		liked, err = tx.Feeds.ToggleLike(ctx, actorID, feedID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &LikeResult{ID: feedID, IsLike: liked}, nil
}

func (s *feedService) CreateComment(ctx context.Context, actorID, plubbingID, feedID int64, req CommentRequest) (*CommentView, error) {
	var (
		feed    *model.Feed
		parent  *model.FeedComment
		comment *model.FeedComment
	)
	err := s.store.Tx(ctx, func(tx *repository.Store) error {
		var err error
		if feed, err = visibleFeed(ctx, tx, plubbingID, feedID); err != nil {
			return err
		}
		if err = NewGuard(tx.Members).CheckMember(ctx, actorID, plubbingID); err != nil {
			return err
		}
		comment = &model.FeedComment{FeedID: feedID, AccountID: actorID, Content: req.Content, Visibility: true}
		if req.ParentCommentID != nil {
			if parent, err = tx.Comments.GetByID(ctx, *req.ParentCommentID); err != nil {
				return err
			}
			if parent.FeedID != feedID {
				return errcode.New(errcode.NotFoundFeed)
			}
			if !parent.Visibility {
				return errcode.New(errcode.DeletedStatusComment)
			}
			comment.ParentID = &parent.ID
			comment.CommentGroupID = parent.CommentGroupID
		}
		if err = tx.Comments.Create(ctx, comment); err != nil {
			return err
		}
		return tx.Feeds.AdjustCommentCount(ctx, feedID, 1)
	})
	if err != nil {
		return nil, err
	}
	s.notifyComment(ctx, actorID, plubbingID, feed, parent, comment)

	views, err := s.commentViews(ctx, actorID, feed, []*model.FeedComment{comment})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *feedService) notifyComment(ctx context.Context, actorID, plubbingID int64, feed *model.Feed, parent, comment *model.FeedComment) {
	targets := make([]int64, 0, 2)
	if feed.AccountID != actorID && !feed.IsSystem() {
		targets = append(targets, feed.AccountID)
	}
	if parent != nil && parent.AccountID != actorID && parent.AccountID != feed.AccountID {
		targets = append(targets, parent.AccountID)
	}
	if len(targets) == 0 {
		return
	}
	accounts, err := s.store.Accounts.ListByIDs(ctx, append(targets, actorID))
	if err != nil {
		logger.Warn("comment notification: load accounts", zap.Int64("feed_id", feed.ID), zap.Error(err))
		return
	}
	p, err := s.store.Plubbings.GetByID(ctx, plubbingID)
	if err != nil {
		logger.Warn("comment notification: load plubbing", zap.Int64("plubbing_id", plubbingID), zap.Error(err))
		return
	}
	actor := accounts[actorID]
	if actor == nil {
		logger.Warn("comment notification: actor missing", zap.Int64("account_id", actorID))
		return
	}
	for _, id := range targets {
		target := accounts[id]
		if target == nil {
			continue
		}
		var body string
		if id == feed.AccountID {
			body = fmt.Sprintf("%s 님이 %s 님의 게시글에 댓글을 남겼어요\n : %s", actor.Nickname, target.Nickname, comment.Content)
		} else {
			body = fmt.Sprintf("%s 님이 %s 님의 댓글에 답글을 남겼어요\n : %s", actor.Nickname, target.Nickname, comment.Content)
		}
		s.notify.Notify(id, p.Name, body)
	}
}

func (s *feedService) commentViews(ctx context.Context, actorID int64, feed *model.Feed, comments []*model.FeedComment) ([]CommentView, error) {
	ids := make([]int64, len(comments))
	for i, c := range comments {
		ids[i] = c.AccountID
	}
	authors, err := s.store.Accounts.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]CommentView, len(comments))
	for i, c := range comments {
		out[i] = CommentView{
			CommentID:       c.ID,
			FeedID:          c.FeedID,
			ParentCommentID: c.ParentID,
			CommentGroupID:  c.CommentGroupID,
			Content:         c.Content,
			AccountID:       c.AccountID,
			CreatedAt:       c.CreatedAt,
			IsCommentAuthor: c.AccountID == actorID,
			IsFeedAuthor:    feed.AccountID == actorID,
		}
		if a, ok := authors[c.AccountID]; ok {
			out[i].Nickname = a.Nickname
			out[i].ProfileImage = a.ProfileImage
		}
	}
	return out, nil
}

func (s *feedService) UpdateComment(ctx context.Context, actorID, plubbingID, feedID, commentID int64, content string) (*CommentView, error) {
	var (
		feed    *model.Feed
		comment *model.FeedComment
	)
	err := s.store.Tx(ctx, func(tx *repository.Store) error {
		var err error
		if feed, err = tx.Feeds.GetByID(ctx, feedID); err != nil {
			return err
		}
		if feed.PlubbingID != plubbingID {
			return errcode.New(errcode.NotFoundFeed)
		}
		if comment, err = tx.Comments.GetByID(ctx, commentID); err != nil {
			return err
		}
		if comment.FeedID != feedID {
			return errcode.New(errcode.NotFoundComment)
		}
		if !comment.Visibility {
			return errcode.New(errcode.DeletedStatusComment)
		}
		if comment.AccountID != actorID {
			return errcode.New(errcode.NotFeedAuthorError)
		}
		comment.Content = content
		return tx.Comments.UpdateContent(ctx, commentID, content)
	})
	if err != nil {
		return nil, err
	}
	views, err := s.commentViews(ctx, actorID, feed, []*model.FeedComment{comment})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// DeleteComment 评论作者或动态作者可删；连同所有可见子孙一起软删除，
// comment_count 按实际删除条数扣减。
func (s *feedService) DeleteComment(ctx context.Context, actorID, plubbingID, feedID, commentID int64) (int, error) {
	var deleted int
	err := s.store.Tx(ctx, func(tx *repository.Store) error {
		feed, err := tx.Feeds.GetByID(ctx, feedID)
		if err != nil {
			return err
		}
		if feed.PlubbingID != plubbingID {
			return errcode.New(errcode.NotFoundFeed)
		}
		comment, err := tx.Comments.GetByID(ctx, commentID)
		if err != nil {
			return err
		}
		if comment.FeedID != feedID {
			return errcode.New(errcode.NotFoundComment)
		}
		if !comment.Visibility {
			return errcode.New(errcode.DeletedStatusComment)
		}
		if comment.AccountID != actorID && feed.AccountID != actorID {
			return errcode.New(errcode.NotFeedAuthorError)
		}

		stack := []int64{commentID}
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			ok, err := tx.Comments.SoftDelete(ctx, id)
			if err != nil {
				return err
			}
			if ok {
				deleted++
			}
			children, err := tx.Comments.VisibleChildIDs(ctx, id)
			if err != nil {
				return err
			}
			stack = append(stack, children...)
		}
		return tx.Feeds.AdjustCommentCount(ctx, feedID, -deleted)
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

// ListComments 按评论组倒序、组内 id 正序；cursorId 为上一页最后一条评论
func (s *feedService) ListComments(ctx context.Context, actorID, plubbingID, feedID int64, req pagination.Request) (pagination.Page[CommentView], error) {
	req = req.Normalize()
	feed, err := visibleFeed(ctx, s.store, plubbingID, feedID)
	if err != nil {
		return pagination.Page[CommentView]{}, err
	}
	if err := NewGuard(s.store.Members).CheckMember(ctx, actorID, plubbingID); err != nil {
		return pagination.Page[CommentView]{}, err
	}
	var cursor *model.FeedComment
	if req.CursorID != nil {
		if cursor, err = s.store.Comments.GetByID(ctx, *req.CursorID); err != nil {
			return pagination.Page[CommentView]{}, err
		}
		if cursor.FeedID != feedID {
			return pagination.Page[CommentView]{}, errcode.New(errcode.NotFoundComment)
		}
	}
	rows, err := s.store.Comments.List(ctx, feedID, cursor, req.Size+1)
	if err != nil {
		return pagination.Page[CommentView]{}, err
	}
	total, err := s.store.Comments.CountVisible(ctx, feedID)
	if err != nil {
		return pagination.Page[CommentView]{}, err
	}
	page := pagination.OfCursor(rows, req.Size, total)
	views, err := s.commentViews(ctx, actorID, feed, page.Content)
	if err != nil {
		return pagination.Page[CommentView]{}, err
	}
	return pagination.Page[CommentView]{TotalElements: page.TotalElements, Last: page.Last, Content: views}, nil
}

// ReportComment 举报评论
func (s *feedService) ReportComment(ctx context.Context, actorID, plubbingID, feedID, commentID int64, req ReportRequest) (int64, error) {
	if _, err := visibleFeed(ctx, s.store, plubbingID, feedID); err != nil {
		return 0, err
	}
	c, err := s.store.Comments.GetByID(ctx, commentID)
	if err != nil {
		return 0, err
	}
	if c.FeedID != feedID {
		return 0, errcode.New(errcode.NotFoundComment)
	}
	if !c.Visibility {
		return 0, errcode.New(errcode.DeletedStatusComment)
	}
	if err := NewGuard(s.store.Members).CheckMember(ctx, actorID, plubbingID); err != nil {
		return 0, err
	}
	req.ReportTarget = model.TargetFeedComment
	req.TargetID = commentID
	return s.reports.Create(ctx, actorID, req)
}
