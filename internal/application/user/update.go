package user

import (
	"context"

	"github.com/xiebiao/library/internal/domain/user"
	"github.com/xiebiao/library/internal/infrastructure/persistence/rdb"
)

// UpdateUseCase 修改读者姓名和联系方式
type UpdateUseCase struct {
	userService user.Service
	txManager   *rdb.TxManager
}

// NewUpdateUseCase 创建修改用例
func NewUpdateUseCase(userService user.Service, txManager *rdb.TxManager) *UpdateUseCase {
	return &UpdateUseCase{userService: userService, txManager: txManager}
}

// Execute 读者不存在返回NotFound,新联系方式属于他人返回Conflict
func (uc *UpdateUseCase) Execute(ctx context.Context, req UpdateRequest) (*UserResponse, error) {
	var u *user.User
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		updated, err := uc.userService.Update(txCtx, req.UserID, req.Name, req.ContactDetails)
		u = updated
		return err
	})
	if err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}
