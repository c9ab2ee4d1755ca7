package service

import (
	"context"
	"fmt"
	"time"

	"github.com/PLUB2022/plub-server/internal/model"
	"github.com/PLUB2022/plub-server/internal/repository"
	"github.com/PLUB2022/plub-server/pkg/errcode"
	"github.com/PLUB2022/plub-server/pkg/pagination"
)

type TodoRequest struct {
	Content string `json:"content" binding:"required,max=255"`
	Date    string `json:"date" binding:"required"`
}

type ProofRequest struct {
	ProofImage string `json:"proofImage" binding:"required,max=512"`
}

type TodoView struct {
	TodoID     int64  `json:"todoId"`
	TimelineID int64  `json:"todoTimelineId"`
	AccountID  int64  `json:"accountId"`
	Content    string `json:"content"`
	Date       string `json:"date"`
	IsChecked  bool   `json:"isChecked"`
	IsProof    bool   `json:"isProof"`
	ProofImage string `json:"proofImage"`
	LikeCount  int    `json:"likes"`
	IsAuthor   bool   `json:"isAuthor"`
}

type TimelineAccount struct {
	AccountID    int64  `json:"accountId"`
	Nickname     string `json:"nickname"`
	ProfileImage string `json:"profileImage"`
}

type TimelineView struct {
	TimelineID int64           `json:"todoTimelineId"`
	Date       string          `json:"date"`
	TotalLikes int             `json:"totalLikes"`
	IsLike     bool            `json:"isLike"`
	IsAuthor   bool            `json:"isAuthor"`
	Account    TimelineAccount `json:"accountInfo"`
	TodoList   []TodoView      `json:"todoList"`
}

type CalendarView struct {
	Year     int      `json:"year"`
	Month    int      `json:"month"`
	DateList []string `json:"dateList"`
}

// TodoService 待办与时间线
type TodoService interface {
	CreateTodo(ctx context.Context, actorID, plubbingID int64, req TodoRequest) (*TodoView, error)
	CompleteTodo(ctx context.Context, actorID, plubbingID, todoID int64) (*TodoView, error)
	CancelTodo(ctx context.Context, actorID, plubbingID, todoID int64) (*TodoView, error)
	ProofTodo(ctx context.Context, actorID, plubbingID, todoID int64, proofImage string) (*TodoView, error)
	UpdateTodo(ctx context.Context, actorID, plubbingID, todoID int64, req TodoRequest) (*TodoView, error)
	DeleteTodo(ctx context.Context, actorID, plubbingID, todoID int64) error
	GetTodo(ctx context.Context, actorID, plubbingID, todoID int64) (*TodoView, error)
	GetTimelineTodos(ctx context.Context, actorID, plubbingID, timelineID int64) (*TimelineView, error)
	LikeTimeline(ctx context.Context, actorID, plubbingID, timelineID int64) (*TimelineView, error)
	GetTimelineByDate(ctx context.Context, actorID, plubbingID int64, date string) (*TimelineView, error)
	GetCalendar(ctx context.Context, actorID, plubbingID int64, year, month int) (*CalendarView, error)
	ListMyTimelines(ctx context.Context, actorID, plubbingID int64, req pagination.Request) (pagination.Page[TimelineView], error)
	ListAccountTimelines(ctx context.Context, actorID, plubbingID, accountID int64, req pagination.Request) (pagination.Page[TimelineView], error)
	ListPlubbingTimelines(ctx context.Context, actorID, plubbingID int64, req pagination.Request) (pagination.Page[TimelineView], error)
}

type todoService struct {
	store *repository.Store
}

func NewTodoService(store *repository.Store) TodoService { return &todoService{store: store} }

func parseTodoDate(s string) (string, error) {
	d, err := time.Parse(model.DateLayout, s)
	if err != nil {
		return "", errcode.Newf(errcode.InvalidInputValue, "date must be %s", model.DateLayout)
	}
	return d.Format(model.DateLayout), nil
}

func todoView(t *model.Todo, actorID int64) TodoView {
	return TodoView{
		TodoID:     t.ID,
		TimelineID: t.TimelineID,
		AccountID:  t.AccountID,
		Content:    t.Content,
		Date:       t.Date,
		IsChecked:  t.Checked,
		IsProof:    t.Proof,
		ProofImage: t.ProofImage,
		LikeCount:  t.LikeCount,
		IsAuthor:   t.AccountID == actorID,
	}
}

func (s *todoService) checkMember(ctx context.Context, tx *repository.Store, actorID, plubbingID int64) error {
	if _, err := tx.Plubbings.GetByID(ctx, plubbingID); err != nil {
		return err
	}
	return NewGuard(tx.Members).CheckMember(ctx, actorID, plubbingID)
}

// ownedTodo 只能操作自己在该小组中的待办
func ownedTodo(ctx context.Context, tx *repository.Store, actorID, plubbingID, todoID int64) (*model.Todo, error) {
	t, err := tx.Todos.GetByID(ctx, todoID)
	if err != nil {
		return nil, err
	}
	if t.AccountID != actorID || t.PlubbingID != plubbingID {
		return nil, errcode.New(errcode.NotFoundTodo)
	}
	return t, nil
}

// attach 把待办挂到 (actor, plubbing, date) 的时间线，满 5 条报错
func attach(ctx context.Context, tx *repository.Store, accountID, plubbingID int64, date string) (*model.TodoTimeline, error) {
	tl, err := tx.Timelines.FindOrCreate(ctx, accountID, plubbingID, date)
	if err != nil {
		return nil, err
	}
	if err := tx.Timelines.Lock(ctx, tl.ID); err != nil {
		return nil, err
	}
	cnt, err := tx.Todos.CountByTimeline(ctx, tl.ID)
	if err != nil {
		return nil, err
	}
	if cnt >= model.MaxTodosPerDay {
		return nil, errcode.New(errcode.TooManyTodo)
	}
	return tl, nil
}

// dropIfEmpty 时间线没有待办时删除
func dropIfEmpty(ctx context.Context, tx *repository.Store, timelineID int64) error {
	cnt, err := tx.Todos.CountByTimeline(ctx, timelineID)
	if err != nil || cnt > 0 {
		return err
	}
	return tx.Timelines.Delete(ctx, timelineID)
}

func (s *todoService) CreateTodo(ctx context.Context, actorID, plubbingID int64, req TodoRequest) (*TodoView, error) {
	date, err := parseTodoDate(req.Date)
	if err != nil {
		return nil, err
	}
	var todo *model.Todo
	err = s.store.Tx(ctx, func(tx *repository.Store) error {
		if err := s.checkMember(ctx, tx, actorID, plubbingID); err != nil {
			return err
		}
		tl, err := attach(ctx, tx, actorID, plubbingID, date)
		if err != nil {
			return err
		}
		todo = &model.Todo{TimelineID: tl.ID, AccountID: actorID, PlubbingID: plubbingID, Content: req.Content, Date: date}
		return tx.Todos.Create(ctx, todo)
	})
	if err != nil {
		return nil, err
	}
	v := todoView(todo, actorID)
	return &v, nil
}

// mutate 在事务内取出自己的待办，交给 fn 修改后保存
func (s *todoService) mutate(ctx context.Context, actorID, plubbingID, todoID int64, fn func(tx *repository.Store, t *model.Todo) error) (*TodoView, error) {
	var todo *model.Todo
	err := s.store.Tx(ctx, func(tx *repository.Store) error {
		if err := s.checkMember(ctx, tx, actorID, plubbingID); err != nil {
			return err
		}
		t, err := ownedTodo(ctx, tx, actorID, plubbingID, todoID)
		if err != nil {
			return err
		}
		if err := fn(tx, t); err != nil {
			return err
		}
		todo = t
		return tx.Todos.Save(ctx, t)
	})
	if err != nil {
		return nil, err
	}
	v := todoView(todo, actorID)
	return &v, nil
}

// CompleteTodo OPEN → CHECKED，已完成则不变
func (s *todoService) CompleteTodo(ctx context.Context, actorID, plubbingID, todoID int64) (*TodoView, error) {
	return s.mutate(ctx, actorID, plubbingID, todoID, func(_ *repository.Store, t *model.Todo) error {
		t.Checked = true
		return nil
	})
}

// CancelTodo CHECKED → OPEN；已认证不可取消
func (s *todoService) CancelTodo(ctx context.Context, actorID, plubbingID, todoID int64) (*TodoView, error) {
	return s.mutate(ctx, actorID, plubbingID, todoID, func(_ *repository.Store, t *model.Todo) error {
		if t.State() == model.TodoProofed {
			return errcode.New(errcode.AlreadyProofTodo)
		}
		t.Checked = false
		return nil
	})
}

func (s *todoService) ProofTodo(ctx context.Context, actorID, plubbingID, todoID int64, proofImage string) (*TodoView, error) {
	return s.mutate(ctx, actorID, plubbingID, todoID, func(_ *repository.Store, t *model.Todo) error {
		switch t.State() {
		case model.TodoOpen:
			return errcode.New(errcode.NotCompleteTodo)
		case model.TodoProofed:
			return errcode.New(errcode.AlreadyProofTodo)
		}
		t.Proof = true
		t.ProofImage = proofImage
		return nil
	})
}

// UpdateTodo 仅未完成时可改；改日期会移到目标日期的时间线
func (s *todoService) UpdateTodo(ctx context.Context, actorID, plubbingID, todoID int64, req TodoRequest) (*TodoView, error) {
	date, err := parseTodoDate(req.Date)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, actorID, plubbingID, todoID, func(tx *repository.Store, t *model.Todo) error {
		if t.State() != model.TodoOpen {
			return errcode.New(errcode.AlreadyCheckedTodo)
		}
		t.Content = req.Content
		if t.Date == date {
			return nil
		}
		tl, err := attach(ctx, tx, actorID, plubbingID, date)
		if err != nil {
			return err
		}
		source := t.TimelineID
		t.TimelineID = tl.ID
		t.Date = date
		if err := tx.Todos.Save(ctx, t); err != nil {
			return err
		}
		return dropIfEmpty(ctx, tx, source)
	})
}

func (s *todoService) DeleteTodo(ctx context.Context, actorID, plubbingID, todoID int64) error {
	return s.store.Tx(ctx, func(tx *repository.Store) error {
		if err := s.checkMember(ctx, tx, actorID, plubbingID); err != nil {
			return err
		}
		t, err := tx.Todos.GetByID(ctx, todoID)
		if err != nil {
			return err
		}
		if t.PlubbingID != plubbingID {
			return errcode.New(errcode.NotFoundTodo)
		}
		if t.AccountID != actorID {
			return errcode.New(errcode.NotTodoAuthor)
		}
		if err := tx.Todos.Delete(ctx, todoID); err != nil {
			return err
		}
		return dropIfEmpty(ctx, tx, t.TimelineID)
	})
}

func (s *todoService) GetTodo(ctx context.Context, actorID, plubbingID, todoID int64) (*TodoView, error) {
	if err := s.checkMember(ctx, s.store, actorID, plubbingID); err != nil {
		return nil, err
	}
	t, err := s.store.Todos.GetByID(ctx, todoID)
	if err != nil {
		return nil, err
	}
	if t.PlubbingID != plubbingID {
		return nil, errcode.New(errcode.NotFoundTodo)
	}
	v := todoView(t, actorID)
	return &v, nil
}

func (s *todoService) timelineIn(ctx context.Context, plubbingID, timelineID int64) (*model.TodoTimeline, error) {
	tl, err := s.store.Timelines.GetByID(ctx, timelineID)
	if err != nil {
		return nil, err
	}
	if tl.PlubbingID != plubbingID {
		return nil, errcode.New(errcode.NotFoundTodoTimeline)
	}
	return tl, nil
}

func (s *todoService) views(ctx context.Context, actorID int64, timelines []*model.TodoTimeline) ([]TimelineView, error) {
	ids := make([]int64, len(timelines))
	accountIDs := make([]int64, len(timelines))
	for i, tl := range timelines {
		ids[i] = tl.ID
		accountIDs[i] = tl.AccountID
	}
	todos, err := s.store.Todos.ListByTimelines(ctx, ids)
	if err != nil {
		return nil, err
	}
	accounts, err := s.store.Accounts.ListByIDs(ctx, accountIDs)
	if err != nil {
		return nil, err
	}
	liked, err := s.store.Timelines.LikedTimelineIDs(ctx, actorID, ids)
	if err != nil {
		return nil, err
	}
	out := make([]TimelineView, len(timelines))
	for i, tl := range timelines {
		v := TimelineView{
			TimelineID: tl.ID,
			Date:       tl.Date,
			TotalLikes: tl.LikeCount,
			IsLike:     liked[tl.ID],
			IsAuthor:   tl.AccountID == actorID,
			Account:    TimelineAccount{AccountID: tl.AccountID},
			TodoList:   make([]TodoView, 0, len(todos[tl.ID])),
		}
		if a, ok := accounts[tl.AccountID]; ok {
			v.Account.Nickname = a.Nickname
			v.Account.ProfileImage = a.ProfileImage
		}
		for _, t := range todos[tl.ID] {
			v.TodoList = append(v.TodoList, todoView(t, actorID))
		}
		out[i] = v
	}
	return out, nil
}

func (s *todoService) GetTimelineTodos(ctx context.Context, actorID, plubbingID, timelineID int64) (*TimelineView, error) {
	if err := s.checkMember(ctx, s.store, actorID, plubbingID); err != nil {
		return nil, err
	}
	tl, err := s.timelineIn(ctx, plubbingID, timelineID)
	if err != nil {
		return nil, err
	}
	vs, err := s.views(ctx, actorID, []*model.TodoTimeline{tl})
	if err != nil {
		return nil, err
	}
	return &vs[0], nil
}

// LikeTimeline 点赞切换，任意成员可对同组时间线点赞
func (s *todoService) LikeTimeline(ctx context.Context, actorID, plubbingID, timelineID int64) (*TimelineView, error) {
	err := s.store.Tx(ctx, func(tx *repository.Store) error {
		if err := s.checkMember(ctx, tx, actorID, plubbingID); err != nil {
			return err
		}
		tl, err := tx.Timelines.GetByID(ctx, timelineID)
		if err != nil {
			return err
		}
		if tl.PlubbingID != plubbingID {
			return errcode.New(errcode.NotFoundTodoTimeline)
		}
		_, err = tx.Timelines.ToggleLike(ctx, actorID, timelineID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.GetTimelineTodos(ctx, actorID, plubbingID, timelineID)
}

// GetTimelineByDate 当天没有时间线时返回空占位
func (s *todoService) GetTimelineByDate(ctx context.Context, actorID, plubbingID int64, date string) (*TimelineView, error) {
	date, err := parseTodoDate(date)
	if err != nil {
		return nil, err
	}
	if err := s.checkMember(ctx, s.store, actorID, plubbingID); err != nil {
		return nil, err
	}
	tl, err := s.store.Timelines.Find(ctx, actorID, plubbingID, date)
	if err != nil {
		return nil, err
	}
	if tl == nil {
		return &TimelineView{Date: date, IsAuthor: true, Account: TimelineAccount{AccountID: actorID}, TodoList: []TodoView{}}, nil
	}
	vs, err := s.views(ctx, actorID, []*model.TodoTimeline{tl})
	if err != nil {
		return nil, err
	}
	return &vs[0], nil
}

func (s *todoService) GetCalendar(ctx context.Context, actorID, plubbingID int64, year, month int) (*CalendarView, error) {
	if month < 1 || month > 12 || year < 1 || year > 9999 {
		return nil, errcode.Newf(errcode.InvalidInputValue, "invalid year/month %d-%d", year, month)
	}
	if err := s.checkMember(ctx, s.store, actorID, plubbingID); err != nil {
		return nil, err
	}
	dates, err := s.store.Timelines.MonthDates(ctx, actorID, plubbingID, fmt.Sprintf("%04d-%02d", year, month))
	if err != nil {
		return nil, err
	}
	if dates == nil {
		dates = []string{}
	}
	return &CalendarView{Year: year, Month: month, DateList: dates}, nil
}

func (s *todoService) list(ctx context.Context, actorID, plubbingID, accountID int64, req pagination.Request) (pagination.Page[TimelineView], error) {
	req = req.Normalize()
	var cursor *model.TodoTimeline
	if req.CursorID != nil {
		c, err := s.timelineIn(ctx, plubbingID, *req.CursorID)
		if err != nil {
			return pagination.Page[TimelineView]{}, err
		}
		cursor = c
	}
	rows, err := s.store.Timelines.List(ctx, plubbingID, accountID, cursor, req.Size+1)
	if err != nil {
		return pagination.Page[TimelineView]{}, err
	}
	total, err := s.store.Timelines.Count(ctx, plubbingID, accountID)
	if err != nil {
		return pagination.Page[TimelineView]{}, err
	}
	page := pagination.OfCursor(rows, req.Size, total)
	vs, err := s.views(ctx, actorID, page.Content)
	if err != nil {
		return pagination.Page[TimelineView]{}, err
	}
	return pagination.Page[TimelineView]{TotalElements: page.TotalElements, Last: page.Last, Content: vs}, nil
}

func (s *todoService) ListMyTimelines(ctx context.Context, actorID, plubbingID int64, req pagination.Request) (pagination.Page[TimelineView], error) {
	if err := s.checkMember(ctx, s.store, actorID, plubbingID); err != nil {
		return pagination.Page[TimelineView]{}, err
	}
	return s.list(ctx, actorID, plubbingID, actorID, req)
}

func (s *todoService) ListAccountTimelines(ctx context.Context, actorID, plubbingID, accountID int64, req pagination.Request) (pagination.Page[TimelineView], error) {
	if err := s.checkMember(ctx, s.store, actorID, plubbingID); err != nil {
		return pagination.Page[TimelineView]{}, err
	}
	if _, err := s.store.Accounts.GetByID(ctx, accountID); err != nil {
		return pagination.Page[TimelineView]{}, err
	}
	return s.list(ctx, actorID, plubbingID, accountID, req)
}

func (s *todoService) ListPlubbingTimelines(ctx context.Context, actorID, plubbingID int64, req pagination.Request) (pagination.Page[TimelineView], error) {
	if err := s.checkMember(ctx, s.store, actorID, plubbingID); err != nil {
		return pagination.Page[TimelineView]{}, err
	}
	return s.list(ctx, actorID, plubbingID, 0, req)
}
