package readthrough

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PLUB2022/plub-server/internal/testutil"
)

type item struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func TestFetchReadThrough(t *testing.T) {
	mr, rdb := testutil.NewRedis(t)
	c := New(rdb, "items", time.Minute)
	ctx := context.Background()

	calls := 0
	load := func(context.Context) ([]item, error) {
		calls++
		return []item{{1, "a"}, {2, "b"}}, nil
	}

	first, err := Fetch(ctx, c, "all", load)
	require.NoError(t, err)
	second, err := Fetch(ctx, c, "all", load)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
	assert.Equal(t, Counters{Hits: 1, Loads: 1}, c.Counters())
	assert.True(t, mr.Exists("items:all"))

	mr.FastForward(2 * time.Minute)
	_, err = Fetch(ctx, c, "all", load)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestInvalidate(t *testing.T) {
	mr, rdb := testutil.NewRedis(t)
	c := New(rdb, "items", time.Minute)
	ctx := context.Background()
	load := func(context.Context) (int, error) { return 7, nil }

	_, _ = Fetch(ctx, c, "a", load)
	_, _ = Fetch(ctx, c, "b", load)
	require.NoError(t, mr.Set("other:a", "x"))

	require.NoError(t, c.Invalidate(ctx))
	assert.False(t, mr.Exists("items:a"))
	assert.False(t, mr.Exists("items:b"))
	assert.True(t, mr.Exists("other:a"))
}

func TestFetchLoaderError(t *testing.T) {
	_, rdb := testutil.NewRedis(t)
	c := New(rdb, "items", time.Minute)
	boom := errors.New("boom")

	_, err := Fetch(context.Background(), c, "x", func(context.Context) (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)
}

func TestFetchWithoutRedis(t *testing.T) {
	c := New(nil, "items", time.Minute)
	v, err := Fetch(context.Background(), c, "x", func(context.Context) (string, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
}
