package rdb

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// dbFrom 优先使用ctx中的事务
func dbFrom(ctx context.Context, db *gorm.DB) *gorm.DB {
	if ctx == nil {
		ctx = context.Background()
	}
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

// isDuplicateError 唯一索引/主键冲突
// TranslateError未覆盖时按各驱动的错误信息兜底:
// - MySQL 1062: Duplicate entry 'xxx' for key 'yyy'
// - Postgres 23505: duplicate key value violates unique constraint
// - SQLite: UNIQUE constraint failed
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// isForeignKeyError 外键约束失败
func isForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "FOREIGN KEY constraint failed") ||
		strings.Contains(msg, "foreign key constraint")
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
