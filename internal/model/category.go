package model

import "time"

type Category struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Icon      string `gorm:"type:varchar(512)" json:"icon"`
	Sequence  int    `gorm:"not null;default:0" json:"sequence"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Category) TableName() string { return "categories" }

type SubCategory struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID int64  `gorm:"not null;index;uniqueIndex:ux_sub_category_name" json:"categoryId"`
	Name       string `gorm:"type:varchar(50);not null;uniqueIndex:ux_sub_category_name" json:"name"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

func (SubCategory) TableName() string { return "sub_categories" }
