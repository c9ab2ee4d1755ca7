package model

import "time"

type SocialType string

const (
	SocialGoogle SocialType = "GOOGLE"
	SocialKakao  SocialType = "KAKAO"
	SocialApple  SocialType = "APPLE"
	SocialAdmin  SocialType = "ADMIN"
)

type Role string

const (
	RoleUser  Role = "ROLE_USER"
	RoleAdmin Role = "ROLE_ADMIN"
)

type AccountStatus string

const (
	AccountNormal    AccountStatus = "NORMAL"
	AccountPaused    AccountStatus = "PAUSED"
	AccountBanned    AccountStatus = "BANNED"
	// AccountWithdrawn 已注销：邮箱与昵称被改写，原社交账号可重新注册
	AccountWithdrawn AccountStatus = "WITHDRAWN"
)

// Account 用户账号
type Account struct {
	ID                   int64         `gorm:"primaryKey;autoIncrement" json:"accountId"`
	Email                string        `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password             string        `gorm:"type:varchar(255)" json:"-"`
	Nickname             string        `gorm:"type:varchar(30);uniqueIndex:ux_account_nickname;not null" json:"nickname"`
	Age                  int           `json:"age"`
	Birthday             string        `gorm:"type:varchar(10)" json:"birthday"`
	Gender               string        `gorm:"type:varchar(10)" json:"gender"`
	Introduce            string        `gorm:"type:varchar(255)" json:"introduce"`
	SocialType           SocialType    `gorm:"type:varchar(16)" json:"socialType"`
	ProfileImage         string        `gorm:"type:varchar(512)" json:"profileImage"`
	LastLogin            *time.Time    `json:"lastLogin"`
	FCMToken             string        `gorm:"column:fcm_token;type:varchar(512)" json:"-"`
	Role                 Role          `gorm:"type:varchar(16);not null;default:ROLE_USER" json:"role"`
	Status               AccountStatus `gorm:"type:varchar(16);not null;default:NORMAL" json:"status"`
	ProviderRefreshToken string        `gorm:"type:varchar(512)" json:"-"`
	CreatedAt            time.Time     `json:"createdAt"`
	UpdatedAt            time.Time     `json:"updatedAt"`
}

func (Account) TableName() string { return "accounts" }

// AccountCategory 用户感兴趣的子分类
type AccountCategory struct {
	ID            int64 `gorm:"primaryKey;autoIncrement"`
	AccountID     int64 `gorm:"not null;uniqueIndex:ux_account_sub_category"`
	SubCategoryID int64 `gorm:"not null;uniqueIndex:ux_account_sub_category"`
	CreatedAt     time.Time
}

func (AccountCategory) TableName() string { return "account_categories" }
