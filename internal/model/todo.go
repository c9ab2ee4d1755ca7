package model

import "time"

// MaxTodosPerDay 每天时间线最多待办数
const MaxTodosPerDay = 5

// DateLayout 待办/时间线日期格式
const DateLayout = "2006-01-02"

// TodoTimeline 按 (用户, 小组, 日期) 聚合的待办
type TodoTimeline struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	AccountID  int64  `gorm:"not null;uniqueIndex:ux_timeline_day"`
	PlubbingID int64  `gorm:"not null;uniqueIndex:ux_timeline_day;index"`
	Date       string `gorm:"type:varchar(10);not null;uniqueIndex:ux_timeline_day"`
	LikeCount  int    `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (TodoTimeline) TableName() string { return "todo_timelines" }

type TodoState string

const (
	TodoOpen    TodoState = "OPEN"
	TodoChecked TodoState = "CHECKED"
	TodoProofed TodoState = "PROOFED"
)

type Todo struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	TimelineID int64  `gorm:"not null;index"`
	AccountID  int64  `gorm:"not null;index"`
	PlubbingID int64  `gorm:"not null"`
	Content    string `gorm:"type:varchar(255)"`
	Date       string `gorm:"type:varchar(10);not null"`
	Checked    bool   `gorm:"not null;default:false"`
	Proof      bool   `gorm:"not null;default:false"`
	ProofImage string `gorm:"type:varchar(512)"`
	LikeCount  int    `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Todo) TableName() string { return "todos" }

// State OPEN → CHECKED → PROOFED
func (t *Todo) State() TodoState {
	switch {
	case t.Proof:
		return TodoProofed
	case t.Checked:
		return TodoChecked
	default:
		return TodoOpen
	}
}

// TodoLike 唯一键 (account_id, timeline_id)
type TodoLike struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	AccountID  int64 `gorm:"not null;uniqueIndex:ux_todo_like_pair"`
	TimelineID int64 `gorm:"not null;uniqueIndex:ux_todo_like_pair;index"`
	CreatedAt  time.Time
}

func (TodoLike) TableName() string { return "todo_likes" }
