// Package pagination 提供 page/size/cursorId 查询参数与游标分页响应。
package pagination

const (
	DefaultSize = 10
	MaxSize     = 50
)

// Request 分页请求；CursorID 为 nil 表示第一页
type Request struct {
	Page     int    `form:"page"`
	Size     int    `form:"size"`
	CursorID *int64 `form:"cursorId"`
}

// Normalize 修正非法参数
func (r Request) Normalize() Request {
	if r.Page < 0 {
		r.Page = 0
	}
	if r.Size <= 0 {
		r.Size = DefaultSize
	}
	if r.Size > MaxSize {
		r.Size = MaxSize
	}
	if r.CursorID != nil && *r.CursorID <= 0 {
		r.CursorID = nil
	}
	return r
}

// Offset 偏移分页用
func (r Request) Offset() int { return r.Page * r.Size }

// Page 分页响应
type Page[T any] struct {
	TotalElements int64 `json:"totalElements"`
	Last          bool  `json:"last"`
	Content       []T   `json:"content"`
}

// OfCursor 由多取一条的结果构造游标分页：rows 长度 > size 表示还有下一页
func OfCursor[T any](rows []T, size int, total int64) Page[T] {
	last := len(rows) <= size
	if !last {
		rows = rows[:size]
	}
	if rows == nil {
		rows = []T{}
	}
	return Page[T]{TotalElements: total, Last: last, Content: rows}
}

// OfOffset 偏移分页响应
func OfOffset[T any](rows []T, req Request, total int64) Page[T] {
	if rows == nil {
		rows = []T{}
	}
	return Page[T]{TotalElements: total, Last: int64(req.Offset()+len(rows)) >= total, Content: rows}
}

// Map 转换内容类型
func Map[T, R any](p Page[T], fn func(T) R) Page[R] {
	out := make([]R, len(p.Content))
	for i, v := range p.Content {
		out[i] = fn(v)
	}
	return Page[R]{TotalElements: p.TotalElements, Last: p.Last, Content: out}
}
