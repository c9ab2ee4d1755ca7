// Package errcode 定义全局统一的错误类型。
//
// 每个 Kind 对应 (HTTP 状态码, 业务状态码, 消息) 三元组，
// 由 response.Error 统一映射为 {statusCode, message, data} 响应体。
package errcode

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind 错误种类
type Kind int

const (
	Unknown Kind = iota

	// Common
	BadRequest
	InvalidInputValue
	MethodNotAllowed
	NotFoundPath
	InternalServerError
	HTTPClientError
	FileSizeExceeded
	FileUploadFail
	TooManyRequests

	// Auth
	FilterAccessDenied
	FilterRoleForbidden
	AppleLoginError
	SignupTokenError
	NotFoundRefreshToken
	UnsupportedSocialType
	SocialLoginError
	EncryptionFailure
	DecryptionFailure

	// Account
	NotFoundAccount
	NicknameDuplication
	EmailDuplication
	NicknameRuleError
	PausedAccount
	BannedAccount
	LoginFail

	// Category
	NotFoundCategory
	NotFoundSubCategory

	// Recruit
	NotFoundRecruit
	AlreadyApplied
	HostCannotApply
	NotApplied
	ClosedRecruit
	AlreadyAccepted
	FullMember

	// Plubbing
	NotFoundPlubbing
	ForbiddenAccessPlubbing
	NotHostError
	DeletedStatusPlubbing
	NotMemberError
	HostCannotLeave

	// Notice
	NotFoundNotice
	NotFoundNoticeComment
	NotNoticeAuthorError
	DeletedStatusNotice
	DeletedStatusNoticeComment

	// Feed
	NotFoundFeed
	NotFoundComment
	NotFeedAuthorError
	DeletedStatusFeed
	DeletedStatusComment
	CannotDeleteFeed
	MaxFeedPin

	// Todo
	NotFoundTodo
	NotFoundTodoTimeline
	TooManyTodo
	AlreadyCheckedTodo
	NotCompleteTodo
	AlreadyProofTodo
	NotTodoAuthor

	// Report
	NotFoundReportType
	DuplicateReport
	CannotReportSelf

	// Notification
	NotFoundNotification
)

type entry struct {
	name       string
	httpStatus int
	statusCode int
	message    string
}

var table = map[Kind]entry{
	Unknown: {"UNKNOWN", http.StatusInternalServerError, 9999, "unknown error."},

	BadRequest:          {"COMMON_BAD_REQUEST", http.StatusBadRequest, 9010, "bad request."},
	InvalidInputValue:   {"INVALID_INPUT_VALUE", http.StatusBadRequest, 9020, "invalid input value."},
	MethodNotAllowed:    {"METHOD_NOT_ALLOWED", http.StatusMethodNotAllowed, 9030, "method not allowed."},
	NotFoundPath:        {"NOT_FOUND_PATH", http.StatusNotFound, 9035, "not found path."},
	InternalServerError: {"INTERNAL_SERVER_ERROR", http.StatusInternalServerError, 9040, "server error."},
	HTTPClientError:     {"HTTP_CLIENT_ERROR", http.StatusBadRequest, 9050, "http client error."},
	FileSizeExceeded:    {"FILE_SIZE_EXCEEDED", http.StatusBadRequest, 9060, "file size exceeded."},
	FileUploadFail:      {"FILE_UPLOAD_FAIL", http.StatusBadRequest, 9070, "file upload fail."},
	TooManyRequests:     {"TOO_MANY_REQUESTS", http.StatusTooManyRequests, 9080, "too many requests."},

	FilterAccessDenied:    {"FILTER_ACCESS_DENIED", http.StatusUnauthorized, 2000, "access denied."},
	FilterRoleForbidden:   {"FILTER_ROLE_FORBIDDEN", http.StatusForbidden, 2010, "role forbidden."},
	AppleLoginError:       {"APPLE_LOGIN_ERROR", http.StatusBadRequest, 2020, "apple login error."},
	SignupTokenError:      {"SIGNUP_TOKEN_ERROR", http.StatusBadRequest, 2030, "invalid sign up token error."},
	NotFoundRefreshToken:  {"NOT_FOUND_REFRESH_TOKEN", http.StatusNotFound, 2040, "not found refresh token."},
	UnsupportedSocialType: {"UNSUPPORTED_SOCIAL_TYPE", http.StatusBadRequest, 2050, "unsupported social type."},
	SocialLoginError:      {"SOCIAL_LOGIN_ERROR", http.StatusBadRequest, 2060, "social login error."},
	EncryptionFailure:     {"ENCRYPTION_FAILURE", http.StatusBadRequest, 2100, "encryption failure."},
	DecryptionFailure:     {"DECRYPTION_FAILURE", http.StatusBadRequest, 2110, "decryption failed."},

	NotFoundAccount:     {"NOT_FOUND_ACCOUNT", http.StatusNotFound, 3000, "not found account."},
	NicknameDuplication: {"NICKNAME_DUPLICATION", http.StatusBadRequest, 3010, "nickname is duplicated."},
	EmailDuplication:    {"EMAIL_DUPLICATION", http.StatusBadRequest, 3020, "email is duplicated."},
	NicknameRuleError:   {"NICKNAME_RULE_ERROR", http.StatusBadRequest, 3030, "nickname rule error."},
	PausedAccount:       {"PAUSED_ACCOUNT", http.StatusForbidden, 3040, "paused account."},
	BannedAccount:       {"BANNED_ACCOUNT", http.StatusForbidden, 3050, "banned account."},
	LoginFail:           {"LOGIN_FAIL", http.StatusUnauthorized, 3060, "email or password mismatch."},

	NotFoundCategory:    {"NOT_FOUND_CATEGORY", http.StatusNotFound, 4000, "not found category."},
	NotFoundSubCategory: {"NOT_FOUND_SUB_CATEGORY", http.StatusNotFound, 4010, "not found sub category."},

	NotFoundRecruit: {"NOT_FOUND_RECRUIT", http.StatusNotFound, 5010, "not found recruit."},
	AlreadyApplied:  {"ALREADY_APPLIED_RECRUIT", http.StatusBadRequest, 5020, "already applied recruit."},
	HostCannotApply: {"HOST_CANNOT_APPLY", http.StatusBadRequest, 5030, "host cannot apply own recruit."},
	NotApplied:      {"NOT_APPLIED_RECRUIT", http.StatusNotFound, 5040, "not applied recruit."},
	ClosedRecruit:   {"CLOSED_RECRUIT", http.StatusBadRequest, 5050, "recruit is closed."},
	AlreadyAccepted: {"ALREADY_ACCEPTED", http.StatusBadRequest, 5060, "already accepted applicant."},
	FullMember:      {"FULL_MEMBER", http.StatusBadRequest, 5070, "plubbing is full."},

	NotFoundPlubbing:        {"NOT_FOUND_PLUBBING", http.StatusNotFound, 6010, "not found plubbing error."},
	ForbiddenAccessPlubbing: {"FORBIDDEN_ACCESS_PLUBBING", http.StatusForbidden, 6020, "this account is not joined this plubbing."},
	NotHostError:            {"NOT_HOST_ERROR", http.StatusForbidden, 6030, "not host error."},
	DeletedStatusPlubbing:   {"DELETED_STATUS_PLUBBING", http.StatusNotFound, 6040, "deleted/ended status error."},
	NotMemberError:          {"NOT_MEMBER_ERROR", http.StatusForbidden, 6100, "this account is not a member of this plubbing."},
	HostCannotLeave:         {"HOST_CANNOT_LEAVE", http.StatusBadRequest, 6120, "host cannot leave plubbing."},

	NotFoundNotice:             {"NOT_FOUND_NOTICE", http.StatusNotFound, 7010, "not found notice error."},
	NotFoundNoticeComment:      {"NOT_FOUND_NOTICE_COMMENT", http.StatusNotFound, 7020, "not found notice comment error."},
	NotNoticeAuthorError:       {"NOT_NOTICE_AUTHOR_ERROR", http.StatusForbidden, 7030, "not notice author error."},
	DeletedStatusNotice:        {"DELETED_STATUS_NOTICE", http.StatusBadRequest, 7040, "deleted status notice."},
	DeletedStatusNoticeComment: {"DELETED_STATUS_NOTICE_COMMENT", http.StatusBadRequest, 7050, "deleted status notice comment."},

	NotFoundFeed:         {"NOT_FOUND_FEED", http.StatusNotFound, 8010, "not found feed error."},
	NotFoundComment:      {"NOT_FOUND_COMMENT", http.StatusNotFound, 8020, "not found comment error."},
	NotFeedAuthorError:   {"NOT_FEED_AUTHOR_ERROR", http.StatusForbidden, 8030, "not feed author error."},
	DeletedStatusFeed:    {"DELETED_STATUS_FEED", http.StatusBadRequest, 8040, "deleted status feed."},
	DeletedStatusComment: {"DELETED_STATUS_COMMENT", http.StatusBadRequest, 8050, "deleted status comment."},
	CannotDeleteFeed:     {"CANNOT_DELETE_FEED", http.StatusBadRequest, 8060, "system feed cannot be edited or deleted."},
	MaxFeedPin:           {"MAX_FEED_PIN", http.StatusBadRequest, 8070, "max pinned feed is 20."},

	NotFoundTodo:         {"NOT_FOUND_TODO", http.StatusNotFound, 10010, "not found todo."},
	NotFoundTodoTimeline: {"NOT_FOUND_TODO_TIMELINE", http.StatusNotFound, 10020, "not found todo timeline."},
	TooManyTodo:          {"TOO_MANY_TODO", http.StatusBadRequest, 10030, "todo per day is at most 5."},
	AlreadyCheckedTodo:   {"ALREADY_CHECKED_TODO", http.StatusBadRequest, 10040, "already checked todo."},
	NotCompleteTodo:      {"NOT_COMPLETE_TODO", http.StatusBadRequest, 10050, "todo is not completed."},
	AlreadyProofTodo:     {"ALREADY_PROOF_TODO", http.StatusBadRequest, 10060, "already proofed todo."},
	NotTodoAuthor:        {"NOT_TODO_AUTHOR", http.StatusForbidden, 10070, "not todo author."},

	NotFoundReportType: {"NOT_FOUND_REPORT_TYPE", http.StatusNotFound, 11010, "not found report type."},
	DuplicateReport:    {"DUPLICATE_REPORT", http.StatusBadRequest, 11020, "already reported."},
	CannotReportSelf:   {"CANNOT_REPORT_SELF", http.StatusBadRequest, 11030, "cannot report yourself."},

	NotFoundNotification: {"NOT_FOUND_NOTIFICATION", http.StatusNotFound, 12010, "not found notification."},
}

func (k Kind) lookup() entry {
	if e, ok := table[k]; ok {
		return e
	}
	return table[Unknown]
}

// String 返回错误名，如 NOT_FOUND_FEED
func (k Kind) String() string { return k.lookup().name }

// HTTPStatus 返回映射的 HTTP 状态码
func (k Kind) HTTPStatus() int { return k.lookup().httpStatus }

// StatusCode 返回业务状态码
func (k Kind) StatusCode() int { return k.lookup().statusCode }

// Message 返回默认消息
func (k Kind) Message() string { return k.lookup().message }

// Error 领域错误
type Error struct {
	Kind   Kind
	Detail string
	Data   any
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Kind.String() + ": " + e.Kind.Message()
	}
	return e.Kind.String() + ": " + e.Kind.Message() + " " + e.Detail
}

// Is 允许 errors.Is(err, errcode.New(kind)) 按种类比较
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// New 创建指定种类的错误
func New(kind Kind) *Error { return &Error{Kind: kind} }

// Newf 创建带详情的错误
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// WithData 附带响应数据（如阻止注销的小组列表）
func WithData(kind Kind, data any) *Error {
	return &Error{Kind: kind, Data: data}
}

// KindOf 取出错误种类；非领域错误返回 Unknown
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// IsKind 判断错误是否为指定种类
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
