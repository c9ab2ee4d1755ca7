package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PLUB2022/plub-server/internal/model"
	"github.com/PLUB2022/plub-server/pkg/errcode"
	"github.com/PLUB2022/plub-server/pkg/pagination"
)

func TestCreateTodoDailyCap(t *testing.T) {
	f := newFixture(t)
	svc := NewTodoService(f.store)
	host := f.account()
	p := f.plubbing(host)

	var timelineID int64
	for i := 0; i < model.MaxTodosPerDay; i++ {
		v, err := svc.CreateTodo(f.ctx, host.ID, p.ID, TodoRequest{Content: "run", Date: "2023-03-01"})
		require.NoError(t, err)
		if timelineID == 0 {
			timelineID = v.TimelineID
		}
		assert.Equal(t, timelineID, v.TimelineID)
	}
	_, err := svc.CreateTodo(f.ctx, host.ID, p.ID, TodoRequest{Content: "run", Date: "2023-03-01"})
	assert.True(t, errcode.IsKind(err, errcode.TooManyTodo))

	// 其他日期不受影响
	v, err := svc.CreateTodo(f.ctx, host.ID, p.ID, TodoRequest{Content: "run", Date: "2023-03-02"})
	require.NoError(t, err)
	assert.NotEqual(t, timelineID, v.TimelineID)
}

func TestCreateTodoValidation(t *testing.T) {
	f := newFixture(t)
	svc := NewTodoService(f.store)
	host, outsider := f.account(), f.account()
	p := f.plubbing(host)

	_, err := svc.CreateTodo(f.ctx, host.ID, p.ID, TodoRequest{Content: "x", Date: "2023/03/01"})
	assert.True(t, errcode.IsKind(err, errcode.InvalidInputValue))

	_, err = svc.CreateTodo(f.ctx, outsider.ID, p.ID, TodoRequest{Content: "x", Date: "2023-03-01"})
	assert.True(t, errcode.IsKind(err, errcode.NotMemberError))
}

func TestTodoStateMachine(t *testing.T) {
	f := newFixture(t)
	svc := NewTodoService(f.store)
	host := f.account()
	p := f.plubbing(host)

	v, err := svc.CreateTodo(f.ctx, host.ID, p.ID, TodoRequest{Content: "read", Date: "2023-03-01"})
	require.NoError(t, err)

	_, err = svc.ProofTodo(f.ctx, host.ID, p.ID, v.TodoID, "img.png")
	assert.True(t, errcode.IsKind(err, errcode.NotCompleteTodo))

	done, err := svc.CompleteTodo(f.ctx, host.ID, p.ID, v.TodoID)
	require.NoError(t, err)
	assert.True(t, done.IsChecked)

	back, err := svc.CancelTodo(f.ctx, host.ID, p.ID, v.TodoID)
	require.NoError(t, err)
	assert.False(t, back.IsChecked)

	_, err = svc.CompleteTodo(f.ctx, host.ID, p.ID, v.TodoID)
	require.NoError(t, err)
	proofed, err := svc.ProofTodo(f.ctx, host.ID, p.ID, v.TodoID, "img.png")
	require.NoError(t, err)
	assert.True(t, proofed.IsProof)
	assert.Equal(t, "img.png", proofed.ProofImage)

	_, err = svc.ProofTodo(f.ctx, host.ID, p.ID, v.TodoID, "other.png")
	assert.True(t, errcode.IsKind(err, errcode.AlreadyProofTodo))
	_, err = svc.CancelTodo(f.ctx, host.ID, p.ID, v.TodoID)
	assert.True(t, errcode.IsKind(err, errcode.AlreadyProofTodo))

	got, err := svc.GetTodo(f.ctx, host.ID, p.ID, v.TodoID)
	require.NoError(t, err)
	assert.True(t, got.IsChecked)
	assert.True(t, got.IsProof)
}

func TestTodoOnlyOwnerMutates(t *testing.T) {
	f := newFixture(t)
	svc := NewTodoService(f.store)
	host, member := f.account(), f.account()
	p := f.plubbing(host, member)

	v, err := svc.CreateTodo(f.ctx, host.ID, p.ID, TodoRequest{Content: "read", Date: "2023-03-01"})
	require.NoError(t, err)

	_, err = svc.CompleteTodo(f.ctx, member.ID, p.ID, v.TodoID)
	assert.True(t, errcode.IsKind(err, errcode.NotFoundTodo))
	err = svc.DeleteTodo(f.ctx, member.ID, p.ID, v.TodoID)
	assert.True(t, errcode.IsKind(err, errcode.NotTodoAuthor))
}

func TestUpdateTodoMovesTimeline(t *testing.T) {
	f := newFixture(t)
	svc := NewTodoService(f.store)
	host := f.account()
	p := f.plubbing(host)

	v, err := svc.CreateTodo(f.ctx, host.ID, p.ID, TodoRequest{Content: "a", Date: "2023-03-01"})
	require.NoError(t, err)

	moved, err := svc.UpdateTodo(f.ctx, host.ID, p.ID, v.TodoID, TodoRequest{Content: "b", Date: "2023-03-05"})
	require.NoError(t, err)
	assert.Equal(t, "b", moved.Content)
	assert.Equal(t, "2023-03-05", moved.Date)
	assert.NotEqual(t, v.TimelineID, moved.TimelineID)

	// 原时间线已空，被删除
	_, err = f.store.Timelines.GetByID(f.ctx, v.TimelineID)
	assert.True(t, errcode.IsKind(err, errcode.NotFoundTodoTimeline))

	_, err = svc.CompleteTodo(f.ctx, host.ID, p.ID, v.TodoID)
	require.NoError(t, err)
	_, err = svc.UpdateTodo(f.ctx, host.ID, p.ID, v.TodoID, TodoRequest{Content: "c", Date: "2023-03-05"})
	assert.True(t, errcode.IsKind(err, errcode.AlreadyCheckedTodo))
}

func TestDeleteTodoDropsEmptyTimeline(t *testing.T) {
	f := newFixture(t)
	svc := NewTodoService(f.store)
	host := f.account()
	p := f.plubbing(host)

	a, err := svc.CreateTodo(f.ctx, host.ID, p.ID, TodoRequest{Content: "a", Date: "2023-03-01"})
	require.NoError(t, err)
	b, err := svc.CreateTodo(f.ctx, host.ID, p.ID, TodoRequest{Content: "b", Date: "2023-03-01"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTodo(f.ctx, host.ID, p.ID, a.TodoID))
	tl, err := svc.GetTimelineTodos(f.ctx, host.ID, p.ID, a.TimelineID)
	require.NoError(t, err)
	require.Len(t, tl.TodoList, 1)
	assert.Equal(t, b.TodoID, tl.TodoList[0].TodoID)

	require.NoError(t, svc.DeleteTodo(f.ctx, host.ID, p.ID, b.TodoID))
	_, err = svc.GetTimelineTodos(f.ctx, host.ID, p.ID, a.TimelineID)
	assert.True(t, errcode.IsKind(err, errcode.NotFoundTodoTimeline))

	err = svc.DeleteTodo(f.ctx, host.ID, p.ID, b.TodoID)
	assert.True(t, errcode.IsKind(err, errcode.NotFoundTodo))
}

func TestLikeTimelineToggle(t *testing.T) {
	f := newFixture(t)
	svc := NewTodoService(f.store)
	host, member := f.account(), f.account()
	p := f.plubbing(host, member)

	v, err := svc.CreateTodo(f.ctx, host.ID, p.ID, TodoRequest{Content: "a", Date: "2023-03-01"})
	require.NoError(t, err)

	tl, err := svc.LikeTimeline(f.ctx, member.ID, p.ID, v.TimelineID)
	require.NoError(t, err)
	assert.True(t, tl.IsLike)
	assert.Equal(t, 1, tl.TotalLikes)
	assert.False(t, tl.IsAuthor)
	assert.Equal(t, host.Nickname, tl.Account.Nickname)

	tl, err = svc.LikeTimeline(f.ctx, member.ID, p.ID, v.TimelineID)
	require.NoError(t, err)
	assert.False(t, tl.IsLike)
	assert.Equal(t, 0, tl.TotalLikes)

	other := f.plubbing(member)
	_, err = svc.LikeTimeline(f.ctx, member.ID, other.ID, v.TimelineID)
	assert.True(t, errcode.IsKind(err, errcode.NotFoundTodoTimeline))
}

func TestTimelineByDateAndCalendar(t *testing.T) {
	f := newFixture(t)
	svc := NewTodoService(f.store)
	host := f.account()
	p := f.plubbing(host)

	empty, err := svc.GetTimelineByDate(f.ctx, host.ID, p.ID, "2023-03-01")
	require.NoError(t, err)
	assert.Zero(t, empty.TimelineID)
	assert.Empty(t, empty.TodoList)

	for _, d := range []string{"2023-03-01", "2023-03-15", "2023-04-02"} {
		_, err := svc.CreateTodo(f.ctx, host.ID, p.ID, TodoRequest{Content: "x", Date: d})
		require.NoError(t, err)
	}
	got, err := svc.GetTimelineByDate(f.ctx, host.ID, p.ID, "2023-03-01")
	require.NoError(t, err)
	assert.NotZero(t, got.TimelineID)
	assert.Len(t, got.TodoList, 1)

	cal, err := svc.GetCalendar(f.ctx, host.ID, p.ID, 2023, 3)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"2023-03-01", "2023-03-15"}, cal.DateList)

	_, err = svc.GetCalendar(f.ctx, host.ID, p.ID, 2023, 13)
	assert.True(t, errcode.IsKind(err, errcode.InvalidInputValue))
}

func TestListTimelines(t *testing.T) {
	f := newFixture(t)
	svc := NewTodoService(f.store)
	host, member := f.account(), f.account()
	p := f.plubbing(host, member)

	for _, d := range []string{"2023-03-01", "2023-03-03"} {
		_, err := svc.CreateTodo(f.ctx, host.ID, p.ID, TodoRequest{Content: "h", Date: d})
		require.NoError(t, err)
	}
	_, err := svc.CreateTodo(f.ctx, member.ID, p.ID, TodoRequest{Content: "m", Date: "2023-03-02"})
	require.NoError(t, err)

	all, err := svc.ListPlubbingTimelines(f.ctx, member.ID, p.ID, pagination.Request{Size: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, all.TotalElements)
	assert.False(t, all.Last)
	require.Len(t, all.Content, 2)
	assert.Equal(t, "2023-03-03", all.Content[0].Date)
	assert.Equal(t, "2023-03-02", all.Content[1].Date)

	cursor := all.Content[1].TimelineID
	rest, err := svc.ListPlubbingTimelines(f.ctx, member.ID, p.ID, pagination.Request{Size: 2, CursorID: &cursor})
	require.NoError(t, err)
	assert.True(t, rest.Last)
	require.Len(t, rest.Content, 1)
	assert.Equal(t, "2023-03-01", rest.Content[0].Date)

	mine, err := svc.ListMyTimelines(f.ctx, member.ID, p.ID, pagination.Request{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, mine.TotalElements)
	assert.True(t, mine.Content[0].IsAuthor)

	hosts, err := svc.ListAccountTimelines(f.ctx, member.ID, p.ID, host.ID, pagination.Request{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, hosts.TotalElements)
	assert.False(t, hosts.Content[0].IsAuthor)
}

func TestCreateTodoDailyCapConcurrent(t *testing.T) {
	f := newFixture(t)
	svc := NewTodoService(f.store)
	host := f.account()
	p := f.plubbing(host)

	const n = model.MaxTodosPerDay + 4
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CreateTodo(f.ctx, host.ID, p.ID, TodoRequest{Content: "run", Date: "2023-05-01"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, capped int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errcode.IsKind(err, errcode.TooManyTodo):
			capped++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, model.MaxTodosPerDay, ok)
	assert.Equal(t, n-model.MaxTodosPerDay, capped)
}
