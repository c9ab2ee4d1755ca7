package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"github.com/PLUB2022/plub-server/pkg/errcode"
)

// notFound 把 gorm.ErrRecordNotFound 转成对应的领域错误
func notFound(err error, kind errcode.Kind) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errcode.New(kind)
	}
	return err
}

// uniqueViolation 判断是否为 column 上的唯一索引冲突。
// postgres 报约束名（索引名含列名），sqlite 报 "table.column"
func uniqueViolation(err error, column string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, column)
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique && strings.Contains(liteErr.Error(), "."+column)
	}
	return false
}

// delta 计数字段原子增减
func delta(column string, n int) any {
	return gorm.Expr(column+" + ?", n)
}
