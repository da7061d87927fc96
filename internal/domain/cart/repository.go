package cart

import (
	"context"
)

// Repository 借书车仓储接口
type Repository interface {
	// Create 用户已有车返回ErrCartExists
	Create(ctx context.Context, cart *Cart) error

	// FindByID 不存在返回ErrCartNotFound
	FindByID(ctx context.Context, id uint) (*Cart, error)

	// FindByUserID 不存在返回ErrCartNotFound
	FindByUserID(ctx context.Context, userID uint) (*Cart, error)

	// AddItem 重复加入返回ErrItemExists
	AddItem(ctx context.Context, item *Item) error

	// RemoveItem 条目不存在返回ErrItemNotFound
	RemoveItem(ctx context.Context, cartID, bookID uint) error

	// ListItems 按加入顺序返回条目
	ListItems(ctx context.Context, cartID uint) ([]*Item, error)

	// Titles 按加入顺序返回书名;图书仍在时取当前书名,否则取快照
	Titles(ctx context.Context, cartID uint) ([]string, error)

	// ClearItems 删除车内全部条目,返回删除数
	ClearItems(ctx context.Context, cartID uint) (int64, error)
}
