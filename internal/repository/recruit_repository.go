package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/PLUB2022/plub-server/internal/model"
	"github.com/PLUB2022/plub-server/pkg/errcode"
)

type RecruitRepository interface {
	Create(ctx context.Context, r *model.Recruit, questions []string) error
	Save(ctx context.Context, r *model.Recruit) error
	GetByID(ctx context.Context, id int64) (*model.Recruit, error)
	GetByPlubbing(ctx context.Context, plubbingID int64) (*model.Recruit, error)
	ListByIDs(ctx context.Context, ids []int64) ([]*model.Recruit, error)
	ListByPlubbings(ctx context.Context, plubbingIDs []int64) (map[int64]*model.Recruit, error)
	IncreaseViews(ctx context.Context, id int64) error
	ListQuestions(ctx context.Context, recruitID int64) ([]*model.Question, error)
	ReplaceQuestions(ctx context.Context, recruitID int64, questions []string) error

	// 申请
	FindApplicant(ctx context.Context, recruitID, accountID int64) (*model.AppliedAccount, error)
	CreateApplicant(ctx context.Context, a *model.AppliedAccount, answers []model.Answer) error
	DeleteApplicant(ctx context.Context, id int64) error
	ListApplicants(ctx context.Context, recruitID int64, status model.ApplicantStatus) ([]*model.AppliedAccount, error)
	ListAnswers(ctx context.Context, applicantIDs []int64) (map[int64][]*model.Answer, error)
	UpdateApplicantStatus(ctx context.Context, id int64, status model.ApplicantStatus) error
	ListAppliedByAccount(ctx context.Context, accountID int64) ([]*model.AppliedAccount, error)

	// 收藏
	ToggleBookmark(ctx context.Context, accountID, recruitID int64) (bool, error)
	IsBookmarked(ctx context.Context, accountID, recruitID int64) (bool, error)
	ListBookmarkedRecruitIDs(ctx context.Context, accountID int64) ([]int64, error)
}

type recruitRepository struct{ db *gorm.DB }

func NewRecruitRepository(db *gorm.DB) RecruitRepository { return &recruitRepository{db: db} }

func (r *recruitRepository) Create(ctx context.Context, rc *model.Recruit, questions []string) error {
	rc.QuestionNum = len(questions)
	if err := r.db.WithContext(ctx).Create(rc).Error; err != nil {
		return err
	}
	return r.insertQuestions(ctx, rc.ID, questions)
}

func (r *recruitRepository) insertQuestions(ctx context.Context, recruitID int64, questions []string) error {
	if len(questions) == 0 {
		return nil
	}
	rows := make([]model.Question, len(questions))
	for i, q := range questions {
		rows[i] = model.Question{RecruitID: recruitID, Title: q}
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *recruitRepository) Save(ctx context.Context, rc *model.Recruit) error {
	return r.db.WithContext(ctx).Save(rc).Error
}

func (r *recruitRepository) GetByID(ctx context.Context, id int64) (*model.Recruit, error) {
	var rc model.Recruit
	if err := r.db.WithContext(ctx).First(&rc, id).Error; err != nil {
		return nil, notFound(err, errcode.NotFoundRecruit)
	}
	return &rc, nil
}

func (r *recruitRepository) GetByPlubbing(ctx context.Context, plubbingID int64) (*model.Recruit, error) {
	var rc model.Recruit
	if err := r.db.WithContext(ctx).Where("plubbing_id = ?", plubbingID).First(&rc).Error; err != nil {
		return nil, notFound(err, errcode.NotFoundRecruit)
	}
	return &rc, nil
}

func (r *recruitRepository) ListByIDs(ctx context.Context, ids []int64) ([]*model.Recruit, error) {
	var res []*model.Recruit
	if len(ids) == 0 {
		return res, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id DESC").Find(&res).Error
	return res, err
}

// ListByPlubbings 以 plubbing_id 为键
func (r *recruitRepository) ListByPlubbings(ctx context.Context, plubbingIDs []int64) (map[int64]*model.Recruit, error) {
	res := make(map[int64]*model.Recruit, len(plubbingIDs))
	if len(plubbingIDs) == 0 {
		return res, nil
	}
	var rows []*model.Recruit
	if err := r.db.WithContext(ctx).Where("plubbing_id IN ?", plubbingIDs).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, rc := range rows {
		res[rc.PlubbingID] = rc
	}
	return res, nil
}

func (r *recruitRepository) IncreaseViews(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&model.Recruit{}).Where("id = ?", id).
		Update("views", delta("views", 1)).Error
}

func (r *recruitRepository) ListQuestions(ctx context.Context, recruitID int64) ([]*model.Question, error) {
	var res []*model.Question
	err := r.db.WithContext(ctx).Where("recruit_id = ?", recruitID).Order("id").Find(&res).Error
	return res, err
}

func (r *recruitRepository) ReplaceQuestions(ctx context.Context, recruitID int64, questions []string) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("recruit_id = ?", recruitID).Delete(&model.Question{}).Error; err != nil {
		return err
	}
	if err := db.Model(&model.Recruit{}).Where("id = ?", recruitID).Update("question_num", len(questions)).Error; err != nil {
		return err
	}
	return r.insertQuestions(ctx, recruitID, questions)
}

// FindApplicant 未申请返回 (nil, nil)
func (r *recruitRepository) FindApplicant(ctx context.Context, recruitID, accountID int64) (*model.AppliedAccount, error) {
	var a model.AppliedAccount
	err := r.db.WithContext(ctx).Where("recruit_id = ? AND account_id = ?", recruitID, accountID).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *recruitRepository) CreateApplicant(ctx context.Context, a *model.AppliedAccount, answers []model.Answer) error {
	db := r.db.WithContext(ctx)
	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(a)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errcode.New(errcode.AlreadyApplied)
	}
	if len(answers) == 0 {
		return nil
	}
	for i := range answers {
		answers[i].AppliedAccountID = a.ID
	}
	return db.Create(&answers).Error
}

func (r *recruitRepository) DeleteApplicant(ctx context.Context, id int64) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("applied_account_id = ?", id).Delete(&model.Answer{}).Error; err != nil {
		return err
	}
	return db.Delete(&model.AppliedAccount{}, id).Error
}

func (r *recruitRepository) ListApplicants(ctx context.Context, recruitID int64, status model.ApplicantStatus) ([]*model.AppliedAccount, error) {
	var res []*model.AppliedAccount
	err := r.db.WithContext(ctx).
		Where("recruit_id = ? AND status = ?", recruitID, status).
		Order("id").
		Find(&res).Error
	return res, err
}

func (r *recruitRepository) ListAnswers(ctx context.Context, applicantIDs []int64) (map[int64][]*model.Answer, error) {
	res := make(map[int64][]*model.Answer, len(applicantIDs))
	if len(applicantIDs) == 0 {
		return res, nil
	}
	var rows []*model.Answer
	if err := r.db.WithContext(ctx).Where("applied_account_id IN ?", applicantIDs).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, a := range rows {
		res[a.AppliedAccountID] = append(res[a.AppliedAccountID], a)
	}
	return res, nil
}

func (r *recruitRepository) UpdateApplicantStatus(ctx context.Context, id int64, status model.ApplicantStatus) error {
	return r.db.WithContext(ctx).Model(&model.AppliedAccount{}).Where("id = ?", id).Update("status", status).Error
}

func (r *recruitRepository) ListAppliedByAccount(ctx context.Context, accountID int64) ([]*model.AppliedAccount, error) {
	var res []*model.AppliedAccount
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND status = ?", accountID, model.ApplicantWaiting).
		Order("id DESC").
		Find(&res).Error
	return res, err
}

// ToggleBookmark 先删后插，返回切换后的状态
func (r *recruitRepository) ToggleBookmark(ctx context.Context, accountID, recruitID int64) (bool, error) {
	db := r.db.WithContext(ctx)
	res := db.Where("account_id = ? AND recruit_id = ?", accountID, recruitID).Delete(&model.Bookmark{})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return false, nil
	}
	err := db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.Bookmark{AccountID: accountID, RecruitID: recruitID}).Error
	return err == nil, err
}

func (r *recruitRepository) IsBookmarked(ctx context.Context, accountID, recruitID int64) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Bookmark{}).
		Where("account_id = ? AND recruit_id = ?", accountID, recruitID).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *recruitRepository) ListBookmarkedRecruitIDs(ctx context.Context, accountID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&model.Bookmark{}).
		Where("account_id = ?", accountID).
		Order("id DESC").
		Pluck("recruit_id", &ids).Error
	return ids, err
}
