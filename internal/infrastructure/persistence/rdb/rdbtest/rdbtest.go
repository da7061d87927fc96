// Package rdbtest 为测试提供建好表的SQLite数据库
package rdbtest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/internal/infrastructure/persistence/rdb"
)

// Config 临时目录下的SQLite配置
func Config(t testing.TB) config.DatabaseConfig {
	t.Helper()
	return config.DatabaseConfig{
		Driver:   "sqlite",
		Path:     filepath.Join(t.TempDir(), "library.db"),
		LogLevel: "silent",
	}
}

// NewDB 打开并建表,测试结束时关闭
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := rdb.Open(Config(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close(db) })

	_, err = rdb.NewMigrator(db).Migrate(context.Background())
	require.NoError(t, err)
	return db
}
