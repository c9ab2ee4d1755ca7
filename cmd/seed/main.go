// seed 写入分类字典与管理员账号，可重复执行
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/PLUB2022/plub-server/config"
	"github.com/PLUB2022/plub-server/internal/model"
	"github.com/PLUB2022/plub-server/internal/repository"
	"github.com/PLUB2022/plub-server/internal/service"
	"github.com/PLUB2022/plub-server/pkg/cache"
	"github.com/PLUB2022/plub-server/pkg/database"
	"github.com/PLUB2022/plub-server/pkg/logger"
)

var categories = []struct {
	name string
	subs []string
}{
	{"예술", []string{"미술", "공예", "사진", "음악", "춤"}},
	{"스포츠/피트니스", []string{"러닝", "등산", "요가", "헬스", "수영", "자전거"}},
	{"투자/금융", []string{"주식", "부동산", "재테크"}},
	{"외국어", []string{"영어", "일본어", "중국어"}},
	{"음식", []string{"요리", "베이킹", "맛집탐방"}},
	{"문화", []string{"독서", "영화", "전시", "공연"}},
	{"자기계발", []string{"스터디", "자격증", "글쓰기"}},
	{"게임", []string{"보드게임", "온라인게임"}},
}

func main() {
	adminEmail := flag.String("admin-email", "admin@plub.com", "admin account email")
	adminPassword := flag.String("admin-password", os.Getenv("PLUB_ADMIN_PASSWORD"), "admin account password, empty to skip")
	flag.Parse()

	if err := run(*adminEmail, *adminPassword); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(adminEmail, adminPassword string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logger.Init(cfg.Server.Mode, cfg.Log.Level); err != nil {
		return err
	}
	defer logger.Sync()

	db, err := database.InitDB(cfg)
	if err != nil {
		return err
	}
	defer database.Close(db)
	if err := database.Migrate(db); err != nil {
		return err
	}
	ctx := context.Background()

	added, err := seedCategories(ctx, db)
	if err != nil {
		return err
	}
	logger.Info("categories seeded", zap.Int("added", added))

	if adminPassword != "" {
		if err := seedAdmin(ctx, db, adminEmail, adminPassword); err != nil {
			return err
		}
	}

	// 分类有变化时清掉读穿缓存
	if added > 0 {
		rdb, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logger.Warn("redis unavailable, category cache not invalidated", zap.Error(err))
			return nil
		}
		defer rdb.Close()
		if err := service.NewCategoryService(repository.NewStore(db), rdb).Invalidate(ctx); err != nil {
			return err
		}
	}
	return nil
}

func seedCategories(ctx context.Context, db *gorm.DB) (int, error) {
	added := 0
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, c := range categories {
			cat := model.Category{Name: c.name, Sequence: i + 1}
			res := tx.Where("name = ?", c.name).FirstOrCreate(&cat)
			if res.Error != nil {
				return res.Error
			}
			added += int(res.RowsAffected)
			for _, name := range c.subs {
				sub := model.SubCategory{CategoryID: cat.ID, Name: name}
				res := tx.Where("category_id = ? AND name = ?", cat.ID, name).FirstOrCreate(&sub)
				if res.Error != nil {
					return res.Error
				}
				added += int(res.RowsAffected)
			}
		}
		return nil
	})
	return added, err
}

func seedAdmin(ctx context.Context, db *gorm.DB, email, password string) error {
	hash, err := service.HashPassword(password)
	if err != nil {
		return err
	}
	admin := model.Account{
		Email:    email,
		Nickname: "관리자",
		Password: hash,
		Role:     model.RoleAdmin,
		Status:   model.AccountNormal,
	}
	res := db.WithContext(ctx).Where("email = ?", email).
		Assign(map[string]any{"password": hash, "role": model.RoleAdmin}).
		FirstOrCreate(&admin)
	if res.Error != nil {
		return res.Error
	}
	logger.Info("admin account ready", zap.String("email", email), zap.Int64("account_id", admin.ID))
	return nil
}
