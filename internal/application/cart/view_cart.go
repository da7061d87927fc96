package cart

import (
	"context"

	"github.com/xiebiao/library/internal/domain/cart"
)

// ViewCartUseCase 查看借书车
type ViewCartUseCase struct {
	cartRepo cart.Repository
}

// NewViewCartUseCase 创建查看用例
func NewViewCartUseCase(cartRepo cart.Repository) *ViewCartUseCase {
	return &ViewCartUseCase{cartRepo: cartRepo}
}

// ViewCartResponse 书名按加入顺序排列
type ViewCartResponse struct {
	CartID uint     `json:"cartID"`
	Books  []string `json:"books"`
}

// Execute 车不存在返回NotFound,空车返回空列表
func (uc *ViewCartUseCase) Execute(ctx context.Context, cartID uint) (*ViewCartResponse, error) {
	if _, err := uc.cartRepo.FindByID(ctx, cartID); err != nil {
		return nil, err
	}
	titles, err := uc.cartRepo.Titles(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return &ViewCartResponse{CartID: cartID, Books: titles}, nil
}
