package user

import (
	"context"
)

// Repository 用户仓储接口
type Repository interface {
	// Create 联系方式重复返回ErrContactDuplicate
	Create(ctx context.Context, user *User) error

	// FindByID 不存在返回ErrUserNotFound
	FindByID(ctx context.Context, id uint) (*User, error)

	// FindByName 同名取ID最小者,不存在返回ErrUserNotFound
	FindByName(ctx context.Context, name string) (*User, error)

	// FindByContact 不存在返回ErrUserNotFound
	FindByContact(ctx context.Context, contact string) (*User, error)

	// Update 更新姓名和联系方式
	Update(ctx context.Context, user *User) error
}
