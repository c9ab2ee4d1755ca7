package model

import "time"

type RecruitStatus string

const (
	RecruitRecruiting RecruitStatus = "RECRUITING"
	RecruitEnd        RecruitStatus = "END"
)

// Recruit 招募帖（每个小组一条）
type Recruit struct {
	ID          int64         `gorm:"primaryKey;autoIncrement"`
	PlubbingID  int64         `gorm:"not null;uniqueIndex"`
	Title       string        `gorm:"type:varchar(100)"`
	Introduce   string        `gorm:"type:text"`
	Status      RecruitStatus `gorm:"type:varchar(16);not null"`
	QuestionNum int           `gorm:"not null;default:0"`
	Views       int           `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Recruit) TableName() string { return "recruits" }

type Question struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	RecruitID int64  `gorm:"not null;index"`
	Title     string `gorm:"type:varchar(255)"`
}

func (Question) TableName() string { return "recruit_questions" }

type ApplicantStatus string

const (
	ApplicantWaiting  ApplicantStatus = "WAITING"
	ApplicantAccepted ApplicantStatus = "ACCEPTED"
	ApplicantRejected ApplicantStatus = "REJECTED"
)

// AppliedAccount 申请人
type AppliedAccount struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	RecruitID int64           `gorm:"not null;uniqueIndex:ux_recruit_applicant;index"`
	AccountID int64           `gorm:"not null;uniqueIndex:ux_recruit_applicant"`
	Status    ApplicantStatus `gorm:"type:varchar(16);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AppliedAccount) TableName() string { return "applied_accounts" }

type Answer struct {
	ID               int64  `gorm:"primaryKey;autoIncrement"`
	AppliedAccountID int64  `gorm:"not null;index"`
	QuestionID       int64  `gorm:"not null"`
	Content          string `gorm:"type:text"`
}

func (Answer) TableName() string { return "recruit_answers" }

// Bookmark 招募帖收藏，取消时物理删除
type Bookmark struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	AccountID int64 `gorm:"not null;uniqueIndex:ux_bookmark_pair;index"`
	RecruitID int64 `gorm:"not null;uniqueIndex:ux_bookmark_pair"`
	CreatedAt time.Time
}

func (Bookmark) TableName() string { return "bookmarks" }
