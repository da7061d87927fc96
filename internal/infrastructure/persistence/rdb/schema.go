package rdb

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "github.com/xiebiao/library/pkg/errors"
)

// schemaModels 建表顺序:被引用的表在前
var schemaModels = []interface{ TableName() string }{
	&AuthorModel{},
	&GenreModel{},
	&PublisherModel{},
	&BookModel{},
	&UserModel{},
	&TransactionModel{},
	&BookAuthorModel{},
	&BookGenreModel{},
	&CartModel{},
	&CartItemModel{},
}

// Tables 全部表名,按建表顺序
func Tables() []string {
	names := make([]string, len(schemaModels))
	for i, m := range schemaModels {
		names[i] = m.TableName()
	}
	return names
}

// Migrator 建表
// 表已存在时只补缺失的列和索引,不删改已有数据
type Migrator struct {
	db *gorm.DB
}

// NewMigrator 创建建表器
func NewMigrator(db *gorm.DB) *Migrator {
	return &Migrator{db: db}
}

// Migrate 逐表执行,遇错即停并返回SchemaError;已建好的表不回滚
func (m *Migrator) Migrate(ctx context.Context) ([]string, error) {
	db := m.db.WithContext(ctx)
	done := make([]string, 0, len(schemaModels))
	for _, model := range schemaModels {
		table := model.TableName()
		if err := db.AutoMigrate(model); err != nil {
			zap.L().Error("建表失败", zap.String("table", table), zap.Error(err))
			return done, apperrors.WrapCode(err, apperrors.ErrCodeSchemaError, fmt.Sprintf("创建表%s失败", table))
		}
		done = append(done, table)
	}
	return done, nil
}
