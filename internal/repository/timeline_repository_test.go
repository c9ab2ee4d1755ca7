package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/PLUB2022/plub-server/internal/testutil"
	"github.com/PLUB2022/plub-server/pkg/errcode"
)

func TestTimelineFindOrCreateIsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewTodoTimelineRepository(db)
	ctx := context.Background()

	a, err := repo.FindOrCreate(ctx, 1, 1, "2023-05-01")
	require.NoError(t, err)
	b, err := repo.FindOrCreate(ctx, 1, 1, "2023-05-01")
	require.NoError(t, err)
	assert.Equal(t, a.ID, b.ID)

	missing, err := repo.Find(ctx, 1, 1, "2023-05-02")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTimelineListOrderAndMonth(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewTodoTimelineRepository(db)
	ctx := context.Background()

	for _, d := range []string{"2023-05-03", "2023-04-30", "2023-05-10"} {
		_, err := repo.FindOrCreate(ctx, 1, 1, d)
		require.NoError(t, err)
	}
	_, err := repo.FindOrCreate(ctx, 2, 1, "2023-05-10")
	require.NoError(t, err)

	mine, err := repo.List(ctx, 1, 1, nil, 2)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "2023-05-10", mine[0].Date)
	assert.Equal(t, "2023-05-03", mine[1].Date)

	rest, err := repo.List(ctx, 1, 1, mine[1], 10)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "2023-04-30", rest[0].Date)

	all, err := repo.Count(ctx, 1, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 4, all)

	dates, err := repo.MonthDates(ctx, 1, 1, "2023-05")
	require.NoError(t, err)
	assert.Equal(t, []string{"2023-05-03", "2023-05-10"}, dates)
}

func TestTimelineToggleLikeAndDelete(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewTodoTimelineRepository(db)
	ctx := context.Background()

	tl, err := repo.FindOrCreate(ctx, 1, 1, "2023-05-01")
	require.NoError(t, err)
	liked, err := repo.ToggleLike(ctx, 2, tl.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	got, err := repo.GetByID(ctx, tl.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.LikeCount)

	require.NoError(t, repo.Delete(ctx, tl.ID))
	_, err = repo.GetByID(ctx, tl.ID)
	assert.True(t, errcode.IsKind(err, errcode.NotFoundTodoTimeline))
}

// 在 postgres 方言下只生成 SQL 不执行，检查行锁
func TestLockIssuesSelectForUpdate(t *testing.T) {
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost user=plub dbname=plub sslmode=disable"}),
		&gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)
	var sqls []string
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("record_sql", func(d *gorm.DB) {
		sqls = append(sqls, d.Statement.SQL.String())
	}))
	ctx := context.Background()

	require.NoError(t, NewPlubbingRepository(db).Lock(ctx, 7))
	require.NoError(t, NewTodoTimelineRepository(db).Lock(ctx, 8))

	require.Len(t, sqls, 2)
	assert.Contains(t, sqls[0], `"plubbings"`)
	assert.Contains(t, sqls[0], "FOR UPDATE")
	assert.Contains(t, sqls[1], `"todo_timelines"`)
	assert.Contains(t, sqls[1], "FOR UPDATE")
}

func TestLockMissingRow(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	err := NewPlubbingRepository(db).Lock(ctx, 404)
	assert.True(t, errcode.IsKind(err, errcode.NotFoundPlubbing))
	err = NewTodoTimelineRepository(db).Lock(ctx, 404)
	assert.True(t, errcode.IsKind(err, errcode.NotFoundTodoTimeline))

	tl, err := NewTodoTimelineRepository(db).FindOrCreate(ctx, 1, 1, "2023-05-01")
	require.NoError(t, err)
	assert.NoError(t, NewTodoTimelineRepository(db).Lock(ctx, tl.ID))
}
