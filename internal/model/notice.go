package model

import "time"

type Notice struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	PlubbingID   int64  `gorm:"not null;index"`
	AccountID    int64  `gorm:"not null"`
	Title        string `gorm:"type:varchar(100)"`
	Content      string `gorm:"type:text"`
	Visibility   bool   `gorm:"not null;default:true"`
	LikeCount    int    `gorm:"not null;default:0"`
	CommentCount int    `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Notice) TableName() string { return "notices" }

type NoticeComment struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	NoticeID   int64  `gorm:"not null;index"`
	AccountID  int64  `gorm:"not null"`
	Content    string `gorm:"type:text"`
	Visibility bool   `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (NoticeComment) TableName() string { return "notice_comments" }

type NoticeLike struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	AccountID int64 `gorm:"not null;uniqueIndex:ux_notice_like_pair"`
	NoticeID  int64 `gorm:"not null;uniqueIndex:ux_notice_like_pair"`
	CreatedAt time.Time
}

func (NoticeLike) TableName() string { return "notice_likes" }
