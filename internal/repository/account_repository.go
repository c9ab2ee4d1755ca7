package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/PLUB2022/plub-server/internal/model"
	"github.com/PLUB2022/plub-server/pkg/errcode"
)

type AccountRepository interface {
	Create(ctx context.Context, a *model.Account) error
	Save(ctx context.Context, a *model.Account) error
	GetByID(ctx context.Context, id int64) (*model.Account, error)
	GetByEmail(ctx context.Context, email string) (*model.Account, error)
	GetByNickname(ctx context.Context, nickname string) (*model.Account, error)
	ListByIDs(ctx context.Context, ids []int64) (map[int64]*model.Account, error)
	ExistsByNickname(ctx context.Context, nickname string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status model.AccountStatus) error
	TouchLogin(ctx context.Context, id int64, at time.Time) error
	ReplaceCategories(ctx context.Context, accountID int64, subCategoryIDs []int64) error
	ListCategoryIDs(ctx context.Context, accountID int64) ([]int64, error)
}

type accountRepository struct{ db *gorm.DB }

func NewAccountRepository(db *gorm.DB) AccountRepository { return &accountRepository{db: db} }

func (r *accountRepository) Create(ctx context.Context, a *model.Account) error {
	return accountConflict(r.db.WithContext(ctx).Create(a).Error)
}

func (r *accountRepository) Save(ctx context.Context, a *model.Account) error {
	return accountConflict(r.db.WithContext(ctx).Save(a).Error)
}

// accountConflict 并发注册或改名撞上唯一索引时转成领域错误
func accountConflict(err error) error {
	switch {
	case err == nil:
		return nil
	case uniqueViolation(err, "nickname"):
		return errcode.New(errcode.NicknameDuplication)
	case uniqueViolation(err, "email"):
		return errcode.New(errcode.EmailDuplication)
	}
	return err
}

func (r *accountRepository) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	var a model.Account
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, notFound(err, errcode.NotFoundAccount)
	}
	return &a, nil
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*model.Account, error) {
	var a model.Account
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&a).Error; err != nil {
		return nil, notFound(err, errcode.NotFoundAccount)
	}
	return &a, nil
}

func (r *accountRepository) GetByNickname(ctx context.Context, nickname string) (*model.Account, error) {
	var a model.Account
	if err := r.db.WithContext(ctx).Where("nickname = ?", nickname).First(&a).Error; err != nil {
		return nil, notFound(err, errcode.NotFoundAccount)
	}
	return &a, nil
}

// ListByIDs 批量加载作者信息，按 id 建索引
func (r *accountRepository) ListByIDs(ctx context.Context, ids []int64) (map[int64]*model.Account, error) {
	res := make(map[int64]*model.Account, len(ids))
	if len(ids) == 0 {
		return res, nil
	}
	var rows []*model.Account
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, a := range rows {
		res[a.ID] = a
	}
	return res, nil
}

func (r *accountRepository) ExistsByNickname(ctx context.Context, nickname string) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Account{}).Where("nickname = ?", nickname).Count(&cnt).Error
	return cnt > 0, err
}

func (r *accountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Account{}).Where("email = ?", email).Count(&cnt).Error
	return cnt > 0, err
}

func (r *accountRepository) UpdateStatus(ctx context.Context, id int64, status model.AccountStatus) error {
	return r.db.WithContext(ctx).Model(&model.Account{}).Where("id = ?", id).Update("status", status).Error
}

func (r *accountRepository) TouchLogin(ctx context.Context, id int64, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Account{}).Where("id = ?", id).Update("last_login", at).Error
}

func (r *accountRepository) ReplaceCategories(ctx context.Context, accountID int64, subCategoryIDs []int64) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("account_id = ?", accountID).Delete(&model.AccountCategory{}).Error; err != nil {
		return err
	}
	if len(subCategoryIDs) == 0 {
		return nil
	}
	rows := make([]model.AccountCategory, len(subCategoryIDs))
	for i, id := range subCategoryIDs {
		rows[i] = model.AccountCategory{AccountID: accountID, SubCategoryID: id}
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}

func (r *accountRepository) ListCategoryIDs(ctx context.Context, accountID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&model.AccountCategory{}).
		Where("account_id = ?", accountID).
		Pluck("sub_category_id", &ids).Error
	return ids, err
}
