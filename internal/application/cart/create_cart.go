package cart

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/xiebiao/library/internal/domain/cart"
	"github.com/xiebiao/library/internal/domain/user"
	"github.com/xiebiao/library/internal/infrastructure/persistence/rdb"
)

// CreateCartUseCase 为读者创建借书车
type CreateCartUseCase struct {
	userRepo  user.Repository
	cartRepo  cart.Repository
	txManager *rdb.TxManager
}

// NewCreateCartUseCase 创建建车用例
func NewCreateCartUseCase(userRepo user.Repository, cartRepo cart.Repository, txManager *rdb.TxManager) *CreateCartUseCase {
	return &CreateCartUseCase{userRepo: userRepo, cartRepo: cartRepo, txManager: txManager}
}

// CreateCartResponse 新车ID
type CreateCartResponse struct {
	CartID uint `json:"cartID"`
	UserID uint `json:"userID"`
}

// Execute 读者不存在返回NotFound,已有车返回Conflict
func (uc *CreateCartUseCase) Execute(ctx context.Context, userID uint) (*CreateCartResponse, error) {
	var created *cart.Cart
	err := observe(ctx, "create", func(ctx context.Context) error {
		trace.SpanFromContext(ctx).SetAttributes(attribute.Int64("user.id", int64(userID)))
		return uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
			if _, err := uc.userRepo.FindByID(txCtx, userID); err != nil {
				return err
			}

			if existing, err := uc.cartRepo.FindByUserID(txCtx, userID); err == nil {
				return cart.ErrCartExists.WithMessage("读者(ID=%d)已有借书车(ID=%d)", userID, existing.ID)
			} else if !errors.Is(err, cart.ErrCartNotFound) {
				return err
			}

			c := cart.NewCart(userID)
			if err := uc.cartRepo.Create(txCtx, c); err != nil {
				return err
			}
			created = c
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return &CreateCartResponse{CartID: created.ID, UserID: created.UserID}, nil
}
