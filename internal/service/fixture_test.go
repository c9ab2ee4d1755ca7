package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PLUB2022/plub-server/internal/model"
	"github.com/PLUB2022/plub-server/internal/repository"
	"github.com/PLUB2022/plub-server/internal/testutil"
)

type sentNotification struct {
	accountID int64
	title     string
	body      string
}

// recordingNotifier 同步记录通知
type recordingNotifier struct {
	mu   sync.Mutex
	sent []sentNotification
}

func (r *recordingNotifier) Notify(accountID int64, title, body string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, sentNotification{accountID, title, body})
}

func (r *recordingNotifier) to(accountID int64) []sentNotification {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []sentNotification
	for _, n := range r.sent {
		if n.accountID == accountID {
			out = append(out, n)
		}
	}
	return out
}

type fixture struct {
	t     *testing.T
	ctx   context.Context
	store *repository.Store
	seq   int
}

func newFixture(t *testing.T) *fixture {
	return &fixture{t: t, ctx: context.Background(), store: repository.NewStore(testutil.NewDB(t))}
}

func (f *fixture) account() *model.Account {
	f.t.Helper()
	f.seq++
	a := &model.Account{
		Email:      fmt.Sprintf("%d@kakao", f.seq),
		Nickname:   fmt.Sprintf("user%d", f.seq),
		SocialType: model.SocialKakao,
		Role:       model.RoleUser,
		Status:     model.AccountNormal,
	}
	require.NoError(f.t, f.store.Accounts.Create(f.ctx, a))
	return a
}

// plubbing 创建小组，host 为组长，members 为普通成员
func (f *fixture) plubbing(host *model.Account, members ...*model.Account) *model.Plubbing {
	f.t.Helper()
	p := &model.Plubbing{
		Name:          "모임",
		Goal:          "goal",
		Status:        model.PlubbingActive,
		Visibility:    true,
		OnOff:         model.Off,
		MaxAccountNum: 10,
		CurAccountNum: 1 + len(members),
	}
	require.NoError(f.t, f.store.Plubbings.Create(f.ctx, p))
	require.NoError(f.t, f.store.Members.Join(f.ctx, host.ID, p.ID, true))
	for _, m := range members {
		require.NoError(f.t, f.store.Members.Join(f.ctx, m.ID, p.ID, false))
	}
	return p
}

func (f *fixture) feed(p *model.Plubbing, author *model.Account) *model.Feed {
	f.t.Helper()
	fd := &model.Feed{PlubbingID: p.ID, AccountID: author.ID, Title: "t", ViewType: model.ViewNormal, Visibility: true}
	require.NoError(f.t, f.store.Feeds.Create(f.ctx, fd))
	return fd
}

// subCategory 新建一个大分类及其子分类
func (f *fixture) subCategory(name string) *model.SubCategory {
	f.t.Helper()
	c := &model.Category{Name: name}
	require.NoError(f.t, f.store.Categories.CreateCategory(f.ctx, c))
	s := &model.SubCategory{CategoryID: c.ID, Name: name}
	require.NoError(f.t, f.store.Categories.CreateSubCategory(f.ctx, s))
	return s
}
