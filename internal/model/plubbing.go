package model

import (
	"strings"
	"time"
)

type PlubbingStatus string

const (
	PlubbingActive  PlubbingStatus = "ACTIVE"
	PlubbingEnd     PlubbingStatus = "END"
	PlubbingDeleted PlubbingStatus = "DELETED"
)

type OnOff string

const (
	On  OnOff = "ON"
	Off OnOff = "OFF"
)

// Plubbing 小组
type Plubbing struct {
	ID            int64          `gorm:"primaryKey;autoIncrement"`
	Name          string         `gorm:"type:varchar(50);not null"`
	Goal          string         `gorm:"type:varchar(100)"`
	MainImage     string         `gorm:"type:varchar(512)"`
	Status        PlubbingStatus `gorm:"type:varchar(16);not null;index"`
	Visibility    bool           `gorm:"not null;default:true"`
	OnOff         OnOff          `gorm:"type:varchar(8)"`
	Address       string         `gorm:"type:varchar(255)"`
	PlaceName     string         `gorm:"type:varchar(100)"`
	PositionX     float64
	PositionY     float64
	Days          string `gorm:"type:varchar(64)"` // MON,WED,...
	Time          string `gorm:"type:varchar(16)"`
	MaxAccountNum int    `gorm:"not null"`
	CurAccountNum int    `gorm:"not null;default:0"`
	Views         int    `gorm:"not null;default:0;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Plubbing) TableName() string { return "plubbings" }

// Active 未删除且进行中
func (p *Plubbing) Active() bool {
	return p.Visibility && p.Status == PlubbingActive
}

func (p *Plubbing) DayList() []string {
	if p.Days == "" {
		return []string{}
	}
	return strings.Split(p.Days, ",")
}

type MembershipStatus string

const (
	MembershipActive MembershipStatus = "ACTIVE"
	MembershipEnd    MembershipStatus = "END"
	MembershipExit   MembershipStatus = "EXIT"
)

// AccountPlubbing 小组成员关系
type AccountPlubbing struct {
	ID         int64            `gorm:"primaryKey;autoIncrement"`
	AccountID  int64            `gorm:"not null;uniqueIndex:ux_account_plubbing;index"`
	PlubbingID int64            `gorm:"not null;uniqueIndex:ux_account_plubbing;index"`
	IsHost     bool             `gorm:"not null;default:false"`
	Status     MembershipStatus `gorm:"type:varchar(16);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (AccountPlubbing) TableName() string { return "account_plubbings" }

// PlubbingSubCategory 小组所属子分类
type PlubbingSubCategory struct {
	ID            int64 `gorm:"primaryKey;autoIncrement"`
	PlubbingID    int64 `gorm:"not null;uniqueIndex:ux_plubbing_sub_category"`
	SubCategoryID int64 `gorm:"not null;uniqueIndex:ux_plubbing_sub_category;index"`
}

func (PlubbingSubCategory) TableName() string { return "plubbing_sub_categories" }
