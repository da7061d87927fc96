package cart

import (
	"context"

	"github.com/xiebiao/library/internal/domain/cart"
	"github.com/xiebiao/library/internal/infrastructure/persistence/rdb"
)

// RemoveItemUseCase 把图书移出借书车
type RemoveItemUseCase struct {
	cartRepo  cart.Repository
	txManager *rdb.TxManager
}

// NewRemoveItemUseCase 创建移出用例
func NewRemoveItemUseCase(cartRepo cart.Repository, txManager *rdb.TxManager) *RemoveItemUseCase {
	return &RemoveItemUseCase{cartRepo: cartRepo, txManager: txManager}
}

// Execute 车内没有该书返回NotFound
func (uc *RemoveItemUseCase) Execute(ctx context.Context, req ItemRequest) error {
	return observe(ctx, "remove", func(ctx context.Context) error {
		return uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
			return uc.cartRepo.RemoveItem(txCtx, req.CartID, req.BookID)
		})
	})
}
