package model

import "time"

type ViewType string

const (
	ViewNormal ViewType = "NORMAL"
	ViewSystem ViewType = "SYSTEM"
)

// MaxPinnedFeeds 每个小组最多置顶的动态数
const MaxPinnedFeeds = 20

// Feed 小组动态
type Feed struct {
	ID           int64    `gorm:"primaryKey;autoIncrement"`
	PlubbingID   int64    `gorm:"not null;index:idx_feed_plubbing_pin"`
	AccountID    int64    `gorm:"not null;index"`
	Title        string   `gorm:"type:varchar(100)"`
	Content      string   `gorm:"type:text"`
	FeedImage    string   `gorm:"type:varchar(512)"`
	ViewType     ViewType `gorm:"type:varchar(16);not null"`
	Pin          bool     `gorm:"not null;default:false;index:idx_feed_plubbing_pin"`
	PinnedAt     *time.Time
	Visibility   bool `gorm:"not null;default:true"`
	LikeCount    int  `gorm:"not null;default:0"`
	CommentCount int  `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Feed) TableName() string { return "feeds" }

func (f *Feed) IsSystem() bool { return f.ViewType == ViewSystem }

// FeedComment 动态评论；CommentGroupID 恒等于根评论 ID
type FeedComment struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	FeedID         int64  `gorm:"not null;index:idx_comment_feed_group"`
	AccountID      int64  `gorm:"not null"`
	ParentID       *int64 `gorm:"index"`
	CommentGroupID int64  `gorm:"not null;default:0;index:idx_comment_feed_group"`
	Content        string `gorm:"type:text"`
	Visibility     bool   `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (FeedComment) TableName() string { return "feed_comments" }

// FeedLike 唯一键 (account_id, feed_id)，取消时物理删除
type FeedLike struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	AccountID int64 `gorm:"not null;uniqueIndex:ux_feed_like_pair"`
	FeedID    int64 `gorm:"not null;uniqueIndex:ux_feed_like_pair;index"`
	CreatedAt time.Time
}

func (FeedLike) TableName() string { return "feed_likes" }
