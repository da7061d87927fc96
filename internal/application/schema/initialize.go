package schema

import (
	"context"

	"go.uber.org/zap"
)

// Migrator 按依赖顺序建表
type Migrator interface {
	Migrate(ctx context.Context) ([]string, error)
}

// InitializeUseCase 建表用例
// 可重复执行,已有数据保留;中途失败时已建好的表不回滚
type InitializeUseCase struct {
	migrator Migrator
}

// NewInitializeUseCase 创建建表用例
func NewInitializeUseCase(migrator Migrator) *InitializeUseCase {
	return &InitializeUseCase{migrator: migrator}
}

// InitializeResponse 建表结果
type InitializeResponse struct {
	Tables []string `json:"tables"`
}

// Execute 执行建表
func (uc *InitializeUseCase) Execute(ctx context.Context) (*InitializeResponse, error) {
	tables, err := uc.migrator.Migrate(ctx)
	if err != nil {
		return nil, err
	}
	zap.L().Info("数据库表已就绪", zap.Strings("tables", tables))
	return &InitializeResponse{Tables: tables}, nil
}
