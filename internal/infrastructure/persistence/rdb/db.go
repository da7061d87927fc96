package rdb

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/library/internal/infrastructure/config"
)

// NewDB 创建数据库连接池
// 1. 按database.driver选择方言(mysql / postgres / sqlite)
// 2. 开启TranslateError,唯一索引、外键冲突统一成gorm错误
// 3. 每个请求从池中取连接,事务提交或回滚后归还
// 4. database.auto_migrate为true时启动即建表
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := Open(cfg.Database)
	if err != nil {
		return nil, err
	}

	if cfg.Database.AutoMigrate {
		if _, err := NewMigrator(db).Migrate(context.Background()); err != nil {
			return nil, fmt.Errorf("数据库迁移失败: %w", err)
		}
	}
	return db, nil
}

// Open 只建立连接,不建表
func Open(dbCfg config.DatabaseConfig) (*gorm.DB, error) {
	dialector, err := dialectorFor(dbCfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel(dbCfg.LogLevel)),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	maxOpen, maxIdle := dbCfg.MaxOpenConns, dbCfg.MaxIdleConns
	if dbCfg.Driver == "sqlite" {
		// SQLite同一时刻只允许一个写者,单连接让事务排队而不是报database is locked
		maxOpen, maxIdle = 1, 1
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	if dbCfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(dbCfg.ConnMaxLifetime)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	zap.L().Info("数据库连接成功", zap.String("driver", dbCfg.Driver))
	return db, nil
}

func dialectorFor(dbCfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch dbCfg.Driver {
	case "", "mysql":
		return mysql.Open(dbCfg.DSN()), nil
	case "postgres":
		return postgres.Open(dbCfg.DSN()), nil
	case "sqlite":
		return sqlite.Open(SQLiteDSN(dbCfg.DSN())), nil
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %s", dbCfg.Driver)
	}
}

// SQLiteDSN 默认打开外键约束
func SQLiteDSN(path string) string {
	if strings.Contains(path, "_foreign_keys") || strings.Contains(path, "_fk=") {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}

func logLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "info":
		return logger.Info
	case "warn":
		return logger.Warn
	case "error":
		return logger.Error
	default:
		return logger.Silent
	}
}

// Close 关闭连接池
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
