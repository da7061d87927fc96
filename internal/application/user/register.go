package user

import (
	"context"

	"github.com/xiebiao/library/internal/domain/user"
	"github.com/xiebiao/library/internal/infrastructure/persistence/rdb"
)

// RegisterUseCase 读者注册
// 联系方式先查重再插入,并发重复由UNIQUE索引兜底
type RegisterUseCase struct {
	userService user.Service
	txManager   *rdb.TxManager
}

// NewRegisterUseCase 创建注册用例
func NewRegisterUseCase(userService user.Service, txManager *rdb.TxManager) *RegisterUseCase {
	return &RegisterUseCase{userService: userService, txManager: txManager}
}

// Execute 执行注册
func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (*UserResponse, error) {
	var u *user.User
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		created, err := uc.userService.Register(txCtx, req.Name, req.ContactDetails)
		u = created
		return err
	})
	if err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// =========================================
// 应用层DTO
// =========================================

// RegisterRequest 注册请求
type RegisterRequest struct {
	Name           string
	ContactDetails string
}

// UpdateRequest 修改请求
type UpdateRequest struct {
	UserID         uint
	Name           string
	ContactDetails string
}

// UserResponse 读者信息
type UserResponse struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	ContactDetails string `json:"contactDetails"`
}

func toUserResponse(u *user.User) *UserResponse {
	return &UserResponse{ID: u.ID, Name: u.Name, ContactDetails: u.ContactDetails}
}
