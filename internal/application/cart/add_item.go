package cart

import (
	"context"

	"github.com/xiebiao/library/internal/domain/cart"
	"github.com/xiebiao/library/internal/domain/catalog"
	"github.com/xiebiao/library/internal/infrastructure/persistence/rdb"
)

// AddItemUseCase 把图书加入借书车
// 车内没有数量概念,同一本书重复加入返回Conflict
type AddItemUseCase struct {
	cartRepo    cart.Repository
	catalogRepo catalog.Repository
	txManager   *rdb.TxManager
}

// NewAddItemUseCase 创建加车用例
func NewAddItemUseCase(cartRepo cart.Repository, catalogRepo catalog.Repository, txManager *rdb.TxManager) *AddItemUseCase {
	return &AddItemUseCase{cartRepo: cartRepo, catalogRepo: catalogRepo, txManager: txManager}
}

// ItemRequest 车与图书
type ItemRequest struct {
	CartID uint
	BookID uint
}

// AddItemResponse 加入的条目
type AddItemResponse struct {
	CartID   uint   `json:"cartID"`
	BookID   uint   `json:"bookID"`
	BookName string `json:"bookName"`
}

// Execute 车或图书不存在返回NotFound;加入时不校验册数,结账时才校验
func (uc *AddItemUseCase) Execute(ctx context.Context, req ItemRequest) (*AddItemResponse, error) {
	var item *cart.Item
	err := observe(ctx, "add", func(ctx context.Context) error {
		return uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
			if _, err := uc.cartRepo.FindByID(txCtx, req.CartID); err != nil {
				return err
			}
			b, err := uc.catalogRepo.FindBookByID(txCtx, req.BookID)
			if err != nil {
				return err
			}

			item = cart.NewItem(req.CartID, b.ID, b.Title)
			return uc.cartRepo.AddItem(txCtx, item)
		})
	})
	if err != nil {
		return nil, err
	}
	return &AddItemResponse{CartID: item.CartID, BookID: item.BookID, BookName: item.BookName}, nil
}
