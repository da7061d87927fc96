package book

import (
	"context"

	"github.com/xiebiao/library/internal/domain/catalog"
	"github.com/xiebiao/library/internal/infrastructure/persistence/rdb"
)

// RemoveBookUseCase 删除图书
// 有借阅记录的图书不能删除;关联行、车内条目与图书在同一事务内删除
type RemoveBookUseCase struct {
	catalogService catalog.Service
	txManager      *rdb.TxManager
}

// NewRemoveBookUseCase 创建删除用例
func NewRemoveBookUseCase(catalogService catalog.Service, txManager *rdb.TxManager) *RemoveBookUseCase {
	return &RemoveBookUseCase{catalogService: catalogService, txManager: txManager}
}

// Execute 执行删除
func (uc *RemoveBookUseCase) Execute(ctx context.Context, bookID uint) error {
	return uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		return uc.catalogService.RemoveBook(txCtx, bookID)
	})
}
