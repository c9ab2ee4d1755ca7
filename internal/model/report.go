package model

import "time"

type ReportTarget string

const (
	TargetAccount     ReportTarget = "ACCOUNT"
	TargetPlubbing    ReportTarget = "PLUBBING"
	TargetFeed        ReportTarget = "FEED"
	TargetFeedComment ReportTarget = "FEED_COMMENT"
	TargetNotice      ReportTarget = "NOTICE"
	TargetRecruit     ReportTarget = "RECRUIT"
)

type ReportReason string

const (
	ReasonBadWords      ReportReason = "BAD_WORDS"
	ReasonFalseFact     ReportReason = "FALSE_FACT"
	ReasonAdvertisement ReportReason = "ADVERTISEMENT"
	ReasonObscene       ReportReason = "OBSCENE"
	ReasonFraud         ReportReason = "FRAUD"
	ReasonEtc           ReportReason = "ETC"
)

// ReportReasons 举报原因（保持顺序）
var ReportReasons = []struct {
	Reason  ReportReason
	Title   string
	Content string
}{
	{ReasonBadWords, "비속어 / 폭언 / 비하 / 음란성 내용", "욕설, 비하 발언, 음란성 내용이 포함된 경우"},
	{ReasonFalseFact, "갈등 조장 및 허위사실 유포", "갈등을 조장하거나 허위 사실을 유포한 경우"},
	{ReasonAdvertisement, "도배 및 광고시물", "같은 내용을 반복하거나 광고를 게시한 경우"},
	{ReasonObscene, "회원 분란 유도 / 회원 비방", "회원 간 분란을 유도하거나 비방한 경우"},
	{ReasonFraud, "사기 / 불법 행위", "사기 또는 불법 행위에 해당하는 경우"},
	{ReasonEtc, "기타", "기타 사유"},
}

// 举报累计阈值
const (
	ReportAccountWarningCount = 1
	ReportAccountPausedCount  = 3
	ReportAccountBanCount     = 6
	ReportPlubbingWarnCount   = 6
	ReportPlubbingPauseCount  = 18
)

type Report struct {
	ID         int64        `gorm:"primaryKey;autoIncrement"`
	ReporterID int64        `gorm:"not null;uniqueIndex:ux_report_once"`
	TargetType ReportTarget `gorm:"type:varchar(16);not null;uniqueIndex:ux_report_once;index:idx_report_target"`
	TargetID   int64        `gorm:"not null;uniqueIndex:ux_report_once;index:idx_report_target"`
	Reason     ReportReason `gorm:"type:varchar(32);not null"`
	Content    string       `gorm:"type:text"`
	CreatedAt  time.Time
}

func (Report) TableName() string { return "reports" }
