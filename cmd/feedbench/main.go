// feedbench 压测评论写入与异步通知落库
package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/PLUB2022/plub-server/config"
	"github.com/PLUB2022/plub-server/internal/model"
	"github.com/PLUB2022/plub-server/internal/repository"
	"github.com/PLUB2022/plub-server/internal/service"
	"github.com/PLUB2022/plub-server/pkg/database"
	"github.com/PLUB2022/plub-server/pkg/pagination"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func envInt(name string, def int) int {
	if s := os.Getenv(name); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			return v
		}
	}
	return def
}

func pct(vs []time.Duration, p float64) time.Duration {
	if len(vs) == 0 {
		return 0
	}
	xs := append([]time.Duration(nil), vs...)
	sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
	k := int(math.Ceil(p*float64(len(xs)))) - 1
	if k < 0 {
		k = 0
	}
	if k >= len(xs) {
		k = len(xs) - 1
	}
	return xs[k]
}

func main() {
	cfg := must(config.Load())
	db := must(database.InitDB(cfg))
	store := repository.NewStore(db)
	ctx := context.Background()

	N := envInt("N", 2000) // 评论数
	MEMBERS := envInt("MEMBERS", 50)
	CONC := envInt("CONC", 8)
	WORKERS := envInt("WORKERS", cfg.Notification.Workers)
	PAGE := envInt("PAGE", 20)

	dispatcher := service.NewDispatcher(store.Notifications, service.LogPusher{}, N*2)
	stop := dispatcher.Start(WORKERS)
	feeds := service.NewFeedService(store, dispatcher, service.NewReportService(store, dispatcher))

	// 一个小组：组长 + MEMBERS 个成员
	newAccount := func() *model.Account {
		id := uuid.New().String()
		a := &model.Account{
			Email: id + "@kakao", Nickname: "b" + id[:7], SocialType: model.SocialKakao,
			Role: model.RoleUser, Status: model.AccountNormal,
		}
		if err := store.Accounts.Create(ctx, a); err != nil {
			panic(err)
		}
		return a
	}
	host := newAccount()
	p := &model.Plubbing{
		Name: "bench", Goal: "bench", Status: model.PlubbingActive, Visibility: true,
		OnOff: model.Off, MaxAccountNum: MEMBERS + 1, CurAccountNum: MEMBERS + 1,
	}
	check(store.Plubbings.Create(ctx, p))
	check(store.Members.Join(ctx, host.ID, p.ID, true))
	members := make([]*model.Account, MEMBERS)
	for i := range members {
		members[i] = newAccount()
		check(store.Members.Join(ctx, members[i].ID, p.ID, false))
	}
	feedID := must(feeds.CreateFeed(ctx, host.ID, p.ID, service.FeedRequest{Title: "bench", Content: "bench"}))

	maxQ := 0
	quitSample := make(chan struct{})
	go func() {
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if q := dispatcher.QueueLen(); q > maxQ {
					maxQ = q
				}
			case <-quitSample:
				return
			}
		}
	}()

	if CONC > N {
		CONC = N
	}
	jobs := make(chan int, N)
	for i := 0; i < N; i++ {
		jobs <- i
	}
	close(jobs)
	latCh := make(chan time.Duration, N)
	errCount := make(chan int, CONC)
	t0 := time.Now()
	for w := 0; w < CONC; w++ {
		go func() {
			errs := 0
			for i := range jobs {
				author := members[i%len(members)]
				st := time.Now()
				if _, err := feeds.CreateComment(ctx, author.ID, p.ID, feedID, service.CommentRequest{Content: fmt.Sprintf("c%d", i)}); err != nil {
					errs++
				}
				latCh <- time.Since(st)
			}
			errCount <- errs
		}()
	}
	failed := 0
	for w := 0; w < CONC; w++ {
		failed += <-errCount
	}
	close(latCh)
	writeDur := time.Since(t0)
	close(quitSample)
	lats := make([]time.Duration, 0, N)
	for d := range latCh {
		lats = append(lats, d)
	}

	drainStart := time.Now()
	drainCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()
	if err := stop(drainCtx); err != nil {
		fmt.Printf("notification drain: %v (pending=%d)\n", err, dispatcher.QueueLen())
	}
	drainDur := time.Since(drainStart)
	landed := must(store.Notifications.Count(ctx, host.ID))

	q0 := time.Now()
	_, _ = feeds.ListComments(ctx, host.ID, p.ID, feedID, pagination.Request{Size: PAGE})
	listDur := time.Since(q0)

	fmt.Printf("N=%d MEMBERS=%d CONC=%d WORKERS=%d PAGE=%d\n", N, MEMBERS, CONC, WORKERS, PAGE)
	fmt.Printf("Comment write total: %v, per op: %v, p50: %v, p95: %v, p99: %v, failed: %d\n",
		writeDur, writeDur/time.Duration(N), pct(lats, 0.50), pct(lats, 0.95), pct(lats, 0.99), failed)
	fmt.Printf("Notifications landed for host: %d, maxQueue=%d, drain=%v\n", landed, maxQ, drainDur)
	fmt.Printf("List comments (%d) latency: %v\n", PAGE, listDur)
}
