package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PLUB2022/plub-server/internal/model"
)

type countingPusher struct {
	mu  sync.Mutex
	ids []int64
}

func (p *countingPusher) Push(_ context.Context, n *model.Notification) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ids = append(p.ids, n.ID)
	return nil
}

func TestDispatcherPersistsThenPushes(t *testing.T) {
	f := newFixture(t)
	pusher := &countingPusher{}
	d := NewDispatcher(f.store.Notifications, pusher, 16)
	stop := d.Start(2)

	a := f.account()
	for i := 0; i < 5; i++ {
		d.Notify(a.ID, "title", "body")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, stop(ctx))

	cnt, err := f.store.Notifications.Count(f.ctx, a.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 5, cnt)
	assert.Len(t, pusher.ids, 5)
	for _, id := range pusher.ids {
		assert.NotZero(t, id)
	}
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	d := NewDispatcher(nil, nil, 2)
	for i := 0; i < 5; i++ {
		d.Notify(1, "t", "b")
	}
	assert.Equal(t, 2, d.QueueLen())
}
