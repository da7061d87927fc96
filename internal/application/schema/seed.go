package schema

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/domain/catalog"
	"github.com/xiebiao/library/internal/infrastructure/persistence/rdb"
)

// PopulateUseCase 写入初始馆藏
type PopulateUseCase struct {
	seedRepo  catalog.SeedRepository
	txManager *rdb.TxManager
	seed      *catalog.Seed
}

// NewPopulateUseCase 创建初始馆藏写入用例
func NewPopulateUseCase(seedRepo catalog.SeedRepository, txManager *rdb.TxManager) *PopulateUseCase {
	return &PopulateUseCase{seedRepo: seedRepo, txManager: txManager, seed: catalog.DefaultSeed()}
}

// PopulateResponse 新插入的行数,重复执行为0
type PopulateResponse struct {
	Created int `json:"created"`
}

// Execute 整个写入在一个事务内,失败全部回滚
func (uc *PopulateUseCase) Execute(ctx context.Context) (*PopulateResponse, error) {
	var created int
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		n, err := uc.seedRepo.Populate(txCtx, uc.seed)
		created = n
		return err
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("初始馆藏写入完成", zap.Int("created", created))
	return &PopulateResponse{Created: created}, nil
}

// AssociateUseCase 建立图书与作者、类型的关联
type AssociateUseCase struct {
	seedRepo  catalog.SeedRepository
	txManager *rdb.TxManager
	seed      *catalog.Seed
}

// NewAssociateUseCase 创建关联用例
func NewAssociateUseCase(seedRepo catalog.SeedRepository, txManager *rdb.TxManager) *AssociateUseCase {
	return &AssociateUseCase{seedRepo: seedRepo, txManager: txManager, seed: catalog.DefaultSeed()}
}

// AssociateResponse 新建的关联数
type AssociateResponse struct {
	Linked int `json:"linked"`
}

// Execute 种子数据缺失时返回InvalidState,不写入任何关联
func (uc *AssociateUseCase) Execute(ctx context.Context) (*AssociateResponse, error) {
	var linked int
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		n, err := uc.seedRepo.Associate(txCtx, uc.seed)
		linked = n
		return err
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("图书关联建立完成", zap.Int("linked", linked))
	return &AssociateResponse{Linked: linked}, nil
}
