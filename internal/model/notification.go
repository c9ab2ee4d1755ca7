package model

import "time"

type Notification struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	AccountID int64  `gorm:"not null;index"`
	Title     string `gorm:"type:varchar(100)"`
	Body      string `gorm:"type:text"`
	IsRead    bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
}

func (Notification) TableName() string { return "notifications" }

// All 迁移用的全部模型
func All() []any {
	return []any{
		&Account{}, &AccountCategory{},
		&Category{}, &SubCategory{},
		&Plubbing{}, &AccountPlubbing{}, &PlubbingSubCategory{},
		&Recruit{}, &Question{}, &AppliedAccount{}, &Answer{}, &Bookmark{},
		&Feed{}, &FeedComment{}, &FeedLike{},
		&Notice{}, &NoticeComment{}, &NoticeLike{},
		&TodoTimeline{}, &Todo{}, &TodoLike{},
		&Report{},
		&Notification{},
	}
}
